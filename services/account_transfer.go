package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

const accountTransferNotFound = "account transfer not found, id ="

// AccountTransferService is the transfer service's façade. Fail-fast
// batch policy.
type AccountTransferService struct {
	DB    *gorm.DB
	Audit *AuditRecorder
}

func NewAccountTransferService(db *gorm.DB) *AccountTransferService {
	return &AccountTransferService{DB: db, Audit: NewAuditRecorder(db)}
}

func (s *AccountTransferService) FindByID(id uint) (*dto.AccountTransferDto, error) {
	transfer, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, common.NewNotFound(accountTransferNotFound, id)
	}
	return dto.ToAccountTransferDto(transfer), nil
}

func (s *AccountTransferService) FindAllByID(ids []uint) ([]dto.AccountTransferDto, error) {
	transfers, err := common.ResolveAll(ids, accountTransferNotFound, s.lookup)
	if err != nil {
		return nil, err
	}
	return dto.ToAccountTransferDtoList(transfers), nil
}

func (s *AccountTransferService) Create(payload *dto.AccountTransferDto, by string) (*dto.AccountTransferDto, error) {
	transfer := dto.ToAccountTransferEntity(payload)
	if err := s.DB.Create(transfer).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordCreate("account_transfer", by, transfer); err != nil {
		return nil, err
	}
	return dto.ToAccountTransferDto(transfer), nil
}

func (s *AccountTransferService) Update(id uint, patch *dto.AccountTransferDto, by string) (*dto.AccountTransferDto, error) {
	existing, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, common.NewNotFound(accountTransferNotFound, id)
	}

	merged := dto.MergeAccountTransfer(patch, existing)
	if err := s.DB.Save(merged).Error; err != nil {
		return nil, err
	}
	if err := s.Audit.RecordUpdate("account_transfer", by, existing, merged); err != nil {
		return nil, err
	}
	return dto.ToAccountTransferDto(merged), nil
}

func (s *AccountTransferService) lookup(id uint) (*models.AccountTransfer, error) {
	var transfer models.AccountTransfer
	err := s.DB.First(&transfer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}
