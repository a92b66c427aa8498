package dto

import "github.com/mkuznecov/bank-app/models"

type AccountTransferDto struct {
	ID               *uint    `json:"id,omitempty"`
	AccountNumber    *int64   `json:"account_number,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	Purpose          *string  `json:"purpose,omitempty"`
	AccountDetailsID *int64   `json:"account_details_id,omitempty"`
}

func ToAccountTransferDto(e *models.AccountTransfer) *AccountTransferDto {
	if e == nil {
		return nil
	}
	return &AccountTransferDto{
		ID:               ptr(e.ID),
		AccountNumber:    ptr(e.AccountNumber),
		Amount:           ptr(e.Amount),
		Purpose:          ptr(e.Purpose),
		AccountDetailsID: ptr(e.AccountDetailsID),
	}
}

func ToAccountTransferEntity(d *AccountTransferDto) *models.AccountTransfer {
	if d == nil {
		return nil
	}
	return &models.AccountTransfer{
		AccountNumber:    deref(d.AccountNumber),
		Amount:           deref(d.Amount),
		Purpose:          deref(d.Purpose),
		AccountDetailsID: deref(d.AccountDetailsID),
	}
}

func MergeAccountTransfer(d *AccountTransferDto, e *models.AccountTransfer) *models.AccountTransfer {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.AccountNumber != nil {
		merged.AccountNumber = *d.AccountNumber
	}
	if d.Amount != nil {
		merged.Amount = *d.Amount
	}
	if d.Purpose != nil {
		merged.Purpose = *d.Purpose
	}
	if d.AccountDetailsID != nil {
		merged.AccountDetailsID = *d.AccountDetailsID
	}
	return &merged
}

func ToAccountTransferDtoList(es []models.AccountTransfer) []AccountTransferDto {
	if es == nil {
		return nil
	}
	dtos := make([]AccountTransferDto, len(es))
	for i := range es {
		dtos[i] = *ToAccountTransferDto(&es[i])
	}
	return dtos
}
