package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const branchNotFound = "branch not found, id ="

// BranchService: public-info service, size-check batch policy.
type BranchService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewBranchService(db *gorm.DB) *BranchService {
	return &BranchService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *BranchService) FindByID(id uint) (*dto.BranchDto, error) {
	branch, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, common.NewNotFound(branchNotFound, id)
	}
	return dto.ToBranchDto(branch), nil
}

func (s *BranchService) FindAllByID(ids []uint) ([]dto.BranchDto, error) {
	var found []models.Branch
	if err := s.DB.Find(&found, ids).Error; err != nil {
		return nil, err
	}

	branches, err := common.ResolveFound(ids, branchNotFound, found, func(b models.Branch) uint {
		return b.ID
	})
	if err != nil {
		return nil, err
	}
	return dto.ToBranchDtoList(branches), nil
}

func (s *BranchService) Create(payload *dto.BranchDto, by string) (*dto.BranchDto, error) {
	branch := dto.ToBranchEntity(payload)
	if err := s.DB.Create(branch).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("branch", by, branch); err != nil {
		return nil, err
	}
	return dto.ToBranchDto(branch), nil
}

func (s *BranchService) Update(id uint, patch *dto.BranchDto, by string) (*dto.BranchDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(branchNotFound, id)
	}

	merged := dto.MergeBranch(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("branch", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToBranchDto(merged), nil
}

func (s *BranchService) lookup(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := s.DB.First(&branch, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branch, nil
}
