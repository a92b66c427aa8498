package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const accountDetailsNotFound = "account details not found, id ="

// AccountDetailsService is the account service's façade over its own
// records. Batch reads are fail-fast: the first unresolved id aborts
// the whole batch.
type AccountDetailsService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewAccountDetailsService(db *gorm.DB) *AccountDetailsService {
	return &AccountDetailsService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *AccountDetailsService) FindByID(id uint) (*dto.AccountDetailsDto, error) {
	details, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, common.NewNotFound(accountDetailsNotFound, id)
	}
	return dto.ToAccountDetailsDto(details), nil
}

func (s *AccountDetailsService) FindAllByID(ids []uint) ([]dto.AccountDetailsDto, error) {
	details, err := common.ResolveAll(ids, accountDetailsNotFound, s.lookup)
	if err != nil {
		return nil, err
	}
	return dto.ToAccountDetailsDtoList(details), nil
}

func (s *AccountDetailsService) Create(payload *dto.AccountDetailsDto, by string) (*dto.AccountDetailsDto, error) {
	details := dto.ToAccountDetailsEntity(payload)
	if err := s.DB.Create(details).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("account_details", by, details); err != nil {
		return nil, err
	}
	return dto.ToAccountDetailsDto(details), nil
}

// Update merges the patch onto the stored record. A missing id aborts
// before any write; there is no upsert.
func (s *AccountDetailsService) Update(id uint, patch *dto.AccountDetailsDto, by string) (*dto.AccountDetailsDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(accountDetailsNotFound, id)
	}

	merged := dto.MergeAccountDetails(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("account_details", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToAccountDetailsDto(merged), nil
}

func (s *AccountDetailsService) lookup(id uint) (*models.AccountDetails, error) {
	var details models.AccountDetails
	err := s.DB.First(&details, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}
