package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

// AuditRecorder writes one audit row per create or update of a
// service's own records, with before/after JSON snapshots.
type AuditRecorder struct {
	DB *gorm.DB
}

func NewAuditRecorder(db *gorm.DB) *AuditRecorder {
	return &AuditRecorder{DB: db}
}

func (r *AuditRecorder) RecordCreate(entityType, by string, created interface{}) error {
	body, err := json.Marshal(created)
	if err != nil {
		return err
	}
	audit := models.Audit{
		EntityType:    entityType,
		OperationType: "CREATE",
		CreatedBy:     by,
		CreatedAt:     time.Now(),
		EntityJSON:    string(body),
	}
	return r.DB.Create(&audit).Error
}

func (r *AuditRecorder) RecordUpdate(entityType, by string, before, after interface{}) error {
	beforeBody, err := json.Marshal(before)
	if err != nil {
		return err
	}
	afterBody, err := json.Marshal(after)
	if err != nil {
		return err
	}
	now := time.Now()
	audit := models.Audit{
		EntityType:    entityType,
		OperationType: "UPDATE",
		CreatedBy:     by,
		ModifiedBy:    by,
		CreatedAt:     now,
		ModifiedAt:    &now,
		EntityJSON:    string(beforeBody),
		NewEntityJSON: string(afterBody),
	}
	return r.DB.Create(&audit).Error
}

// AuditService exposes a service's own audit trail read-only.
type AuditService struct {
	DB *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{DB: db}
}

func (s *AuditService) FindByID(id uint) (*dto.AuditDto, error) {
	var audit models.Audit
	if err := s.DB.First(&audit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFound("audit not found, id =", id)
		}
		return nil, err
	}
	return dto.ToAuditDto(&audit), nil
}

func (s *AuditService) FindAllByID(ids []uint) ([]dto.AuditDto, error) {
	audits, err := common.ResolveAll(ids, "audit not found, id =", func(id uint) (*models.Audit, error) {
		var audit models.Audit
		err := s.DB.First(&audit, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &audit, nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToAuditDtoList(audits), nil
}
