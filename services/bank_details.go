package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const bankDetailsNotFound = "bank details not found, id ="

// BankDetailsService is part of the public-info service. Unlike the
// fail-fast services it fetches batch reads in bulk and reports the
// full missing set in one error.
type BankDetailsService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewBankDetailsService(db *gorm.DB) *BankDetailsService {
	return &BankDetailsService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *BankDetailsService) FindByID(id uint) (*dto.BankDetailsDto, error) {
	details, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, common.NewNotFound(bankDetailsNotFound, id)
	}
	return dto.ToBankDetailsDto(details), nil
}

func (s *BankDetailsService) FindAllByID(ids []uint) ([]dto.BankDetailsDto, error) {
	var found []models.BankDetails
	if err := s.DB.Find(&found, ids).Error; err != nil {
		return nil, err
	}

	details, err := common.ResolveFound(ids, bankDetailsNotFound, found, func(d models.BankDetails) uint {
		return d.ID
	})
	if err != nil {
		return nil, err
	}
	return dto.ToBankDetailsDtoList(details), nil
}

func (s *BankDetailsService) Create(payload *dto.BankDetailsDto, by string) (*dto.BankDetailsDto, error) {
	details := dto.ToBankDetailsEntity(payload)
	if err := s.DB.Create(details).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("bank_details", by, details); err != nil {
		return nil, err
	}
	return dto.ToBankDetailsDto(details), nil
}

func (s *BankDetailsService) Update(id uint, patch *dto.BankDetailsDto, by string) (*dto.BankDetailsDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(bankDetailsNotFound, id)
	}

	merged := dto.MergeBankDetails(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("bank_details", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToBankDetailsDto(merged), nil
}

func (s *BankDetailsService) lookup(id uint) (*models.BankDetails, error) {
	var details models.BankDetails
	err := s.DB.First(&details, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &details, nil
}
