package dto

import "github.com/mkuznecov/bank-app/models"

type BranchDto struct {
	ID          *uint   `json:"id,omitempty"`
	Address     *string `json:"address,omitempty"`
	PhoneNumber *int64  `json:"phone_number,omitempty"`
	City        *string `json:"city,omitempty"`
	StartOfWork *string `json:"start_of_work,omitempty"`
	EndOfWork   *string `json:"end_of_work,omitempty"`
}

func ToBranchDto(e *models.Branch) *BranchDto {
	if e == nil {
		return nil
	}
	return &BranchDto{
		ID:          ptr(e.ID),
		Address:     ptr(e.Address),
		PhoneNumber: ptr(e.PhoneNumber),
		City:        ptr(e.City),
		StartOfWork: ptr(e.StartOfWork),
		EndOfWork:   ptr(e.EndOfWork),
	}
}

func ToBranchEntity(d *BranchDto) *models.Branch {
	if d == nil {
		return nil
	}
	return &models.Branch{
		Address:     deref(d.Address),
		PhoneNumber: deref(d.PhoneNumber),
		City:        deref(d.City),
		StartOfWork: deref(d.StartOfWork),
		EndOfWork:   deref(d.EndOfWork),
	}
}

func MergeBranch(d *BranchDto, e *models.Branch) *models.Branch {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.Address != nil {
		merged.Address = *d.Address
	}
	if d.PhoneNumber != nil {
		merged.PhoneNumber = *d.PhoneNumber
	}
	if d.City != nil {
		merged.City = *d.City
	}
	if d.StartOfWork != nil {
		merged.StartOfWork = *d.StartOfWork
	}
	if d.EndOfWork != nil {
		merged.EndOfWork = *d.EndOfWork
	}
	return &merged
}

func ToBranchDtoList(es []models.Branch) []BranchDto {
	if es == nil {
		return nil
	}
	dtos := make([]BranchDto, len(es))
	for i := range es {
		dtos[i] = *ToBranchDto(&es[i])
	}
	return dtos
}
