package dto

import "github.com/mkuznecov/bank-app/models"

type AccountDetailsDto struct {
	ID              *uint    `json:"id,omitempty"`
	PassportID      *int64   `json:"passport_id,omitempty"`
	AccountNumber   *int64   `json:"account_number,omitempty"`
	BankDetailsID   *int64   `json:"bank_details_id,omitempty"`
	Money           *float64 `json:"money,omitempty"`
	NegativeBalance *bool    `json:"negative_balance,omitempty"`
	ProfileID       *int64   `json:"profile_id,omitempty"`
}

func ToAccountDetailsDto(e *models.AccountDetails) *AccountDetailsDto {
	if e == nil {
		return nil
	}
	return &AccountDetailsDto{
		ID:              ptr(e.ID),
		PassportID:      ptr(e.PassportID),
		AccountNumber:   ptr(e.AccountNumber),
		BankDetailsID:   ptr(e.BankDetailsID),
		Money:           ptr(e.Money),
		NegativeBalance: ptr(e.NegativeBalance),
		ProfileID:       ptr(e.ProfileID),
	}
}

// ToAccountDetailsEntity maps a payload to a fresh entity. The id is
// not mapped; the store assigns it on save.
func ToAccountDetailsEntity(d *AccountDetailsDto) *models.AccountDetails {
	if d == nil {
		return nil
	}
	return &models.AccountDetails{
		PassportID:      deref(d.PassportID),
		AccountNumber:   deref(d.AccountNumber),
		BankDetailsID:   deref(d.BankDetailsID),
		Money:           deref(d.Money),
		NegativeBalance: deref(d.NegativeBalance),
		ProfileID:       deref(d.ProfileID),
	}
}

// MergeAccountDetails overlays the set fields of d onto a copy of e.
// A nil d is a no-op; the id always stays e's.
func MergeAccountDetails(d *AccountDetailsDto, e *models.AccountDetails) *models.AccountDetails {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.PassportID != nil {
		merged.PassportID = *d.PassportID
	}
	if d.AccountNumber != nil {
		merged.AccountNumber = *d.AccountNumber
	}
	if d.BankDetailsID != nil {
		merged.BankDetailsID = *d.BankDetailsID
	}
	if d.Money != nil {
		merged.Money = *d.Money
	}
	if d.NegativeBalance != nil {
		merged.NegativeBalance = *d.NegativeBalance
	}
	if d.ProfileID != nil {
		merged.ProfileID = *d.ProfileID
	}
	return &merged
}

func ToAccountDetailsDtoList(es []models.AccountDetails) []AccountDetailsDto {
	if es == nil {
		return nil
	}
	dtos := make([]AccountDetailsDto, len(es))
	for i := range es {
		dtos[i] = *ToAccountDetailsDto(&es[i])
	}
	return dtos
}
