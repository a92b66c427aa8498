package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const suspiciousTransferNotFound = "suspicious account transfer not found, id ="

// SuspiciousAccountTransferService is the antifraud façade. Fail-fast
// batch policy, same shape as the account service.
type SuspiciousAccountTransferService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewSuspiciousAccountTransferService(db *gorm.DB) *SuspiciousAccountTransferService {
	return &SuspiciousAccountTransferService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *SuspiciousAccountTransferService) FindByID(id uint) (*dto.SuspiciousAccountTransferDto, error) {
	transfer, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, common.NewNotFound(suspiciousTransferNotFound, id)
	}
	return dto.ToSuspiciousAccountTransferDto(transfer), nil
}

func (s *SuspiciousAccountTransferService) FindAllByID(ids []uint) ([]dto.SuspiciousAccountTransferDto, error) {
	transfers, err := common.ResolveAll(ids, suspiciousTransferNotFound, s.lookup)
	if err != nil {
		return nil, err
	}
	return dto.ToSuspiciousAccountTransferDtoList(transfers), nil
}

func (s *SuspiciousAccountTransferService) Create(payload *dto.SuspiciousAccountTransferDto, by string) (*dto.SuspiciousAccountTransferDto, error) {
	transfer := dto.ToSuspiciousAccountTransferEntity(payload)
	if err := s.DB.Create(transfer).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("suspicious_account_transfer", by, transfer); err != nil {
		return nil, err
	}
	return dto.ToSuspiciousAccountTransferDto(transfer), nil
}

func (s *SuspiciousAccountTransferService) Update(id uint, patch *dto.SuspiciousAccountTransferDto, by string) (*dto.SuspiciousAccountTransferDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(suspiciousTransferNotFound, id)
	}

	merged := dto.MergeSuspiciousAccountTransfer(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("suspicious_account_transfer", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToSuspiciousAccountTransferDto(merged), nil
}

func (s *SuspiciousAccountTransferService) lookup(id uint) (*models.SuspiciousAccountTransfer, error) {
	var transfer models.SuspiciousAccountTransfer
	err := s.DB.First(&transfer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}
