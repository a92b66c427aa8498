package dto

import (
	"time"

	"github.com/mkuznecov/bank-app/models"
)

// AuditDto is read-only: audit rows are written by the services
// themselves and exposed over HTTP for inspection only, so there is no
// entity mapping and no merge for it.
type AuditDto struct {
	ID            *uint      `json:"id,omitempty"`
	EntityType    *string    `json:"entity_type,omitempty"`
	OperationType *string    `json:"operation_type,omitempty"`
	CreatedBy     *string    `json:"created_by,omitempty"`
	ModifiedBy    *string    `json:"modified_by,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	ModifiedAt    *time.Time `json:"modified_at,omitempty"`
	NewEntityJSON *string    `json:"new_entity_json,omitempty"`
	EntityJSON    *string    `json:"entity_json,omitempty"`
}

func ToAuditDto(e *models.Audit) *AuditDto {
	if e == nil {
		return nil
	}
	return &AuditDto{
		ID:            ptr(e.ID),
		EntityType:    ptr(e.EntityType),
		OperationType: ptr(e.OperationType),
		CreatedBy:     ptr(e.CreatedBy),
		ModifiedBy:    ptr(e.ModifiedBy),
		CreatedAt:     ptr(e.CreatedAt),
		ModifiedAt:    e.ModifiedAt,
		NewEntityJSON: ptr(e.NewEntityJSON),
		EntityJSON:    ptr(e.EntityJSON),
	}
}

func ToAuditDtoList(es []models.Audit) []AuditDto {
	if es == nil {
		return nil
	}
	dtos := make([]AuditDto, len(es))
	for i := range es {
		dtos[i] = *ToAuditDto(&es[i])
	}
	return dtos
}
