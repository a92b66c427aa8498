package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const userNotFound = "user not found, id ="

// UserService is the authorization service's façade. Fail-fast batch
// policy. Password hashing happens in the controller before the dto
// reaches this layer.
type UserService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *UserService) FindByID(id uint) (*dto.UserDto, error) {
	user, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.NewNotFound(userNotFound, id)
	}
	return dto.ToUserDto(user), nil
}

// FindByProfileID serves the login path; it is not part of the CRUD
// surface.
func (s *UserService) FindByProfileID(profileID int64) (*models.User, error) {
	var user models.User
	err := s.DB.Where("profile_id = ?", profileID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindAllByID(ids []uint) ([]dto.UserDto, error) {
	users, err := common.ResolveAll(ids, userNotFound, s.lookup)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDtoList(users), nil
}

func (s *UserService) Create(payload *dto.UserDto, by string) (*dto.UserDto, error) {
	user := dto.ToUserEntity(payload)
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("user", by, user); err != nil {
		return nil, err
	}
	return dto.ToUserDto(user), nil
}

func (s *UserService) Update(id uint, patch *dto.UserDto, by string) (*dto.UserDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(userNotFound, id)
	}

	merged := dto.MergeUser(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("user", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToUserDto(merged), nil
}

func (s *UserService) lookup(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
