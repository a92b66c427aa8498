package dto

import "github.com/mkuznecov/bank-app/models"

type BankDetailsDto struct {
	ID                *uint    `json:"id,omitempty"`
	Bik               *int64   `json:"bik,omitempty"`
	Inn               *int64   `json:"inn,omitempty"`
	Kpp               *int64   `json:"kpp,omitempty"`
	CorAccount        *float64 `json:"cor_account,omitempty"`
	City              *string  `json:"city,omitempty"`
	JointStockCompany *string  `json:"joint_stock_company,omitempty"`
	Name              *string  `json:"name,omitempty"`
}

func ToBankDetailsDto(e *models.BankDetails) *BankDetailsDto {
	if e == nil {
		return nil
	}
	return &BankDetailsDto{
		ID:                ptr(e.ID),
		Bik:               ptr(e.Bik),
		Inn:               ptr(e.Inn),
		Kpp:               ptr(e.Kpp),
		CorAccount:        ptr(e.CorAccount),
		City:              ptr(e.City),
		JointStockCompany: ptr(e.JointStockCompany),
		Name:              ptr(e.Name),
	}
}

func ToBankDetailsEntity(d *BankDetailsDto) *models.BankDetails {
	if d == nil {
		return nil
	}
	return &models.BankDetails{
		Bik:               deref(d.Bik),
		Inn:               deref(d.Inn),
		Kpp:               deref(d.Kpp),
		CorAccount:        deref(d.CorAccount),
		City:              deref(d.City),
		JointStockCompany: deref(d.JointStockCompany),
		Name:              deref(d.Name),
	}
}

func MergeBankDetails(d *BankDetailsDto, e *models.BankDetails) *models.BankDetails {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.Bik != nil {
		merged.Bik = *d.Bik
	}
	if d.Inn != nil {
		merged.Inn = *d.Inn
	}
	if d.Kpp != nil {
		merged.Kpp = *d.Kpp
	}
	if d.CorAccount != nil {
		merged.CorAccount = *d.CorAccount
	}
	if d.City != nil {
		merged.City = *d.City
	}
	if d.JointStockCompany != nil {
		merged.JointStockCompany = *d.JointStockCompany
	}
	if d.Name != nil {
		merged.Name = *d.Name
	}
	return &merged
}

func ToBankDetailsDtoList(es []models.BankDetails) []BankDetailsDto {
	if es == nil {
		return nil
	}
	dtos := make([]BankDetailsDto, len(es))
	for i := range es {
		dtos[i] = *ToBankDetailsDto(&es[i])
	}
	return dtos
}
