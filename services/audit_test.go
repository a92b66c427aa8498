package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/models"
)

func TestAuditServiceFindByID(t *testing.T) {
	db := setupTestDB(t, &models.Audit{})
	recorder := NewAuditRecorder(db)
	service := NewAuditService(db)

	err := recorder.RecordCreate("account_details", "system", &models.AccountDetails{AccountNumber: 123})
	assert.NoError(t, err)

	audit, err := service.FindByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "account_details", *audit.EntityType)
	assert.Equal(t, "CREATE", *audit.OperationType)
	assert.Equal(t, "system", *audit.CreatedBy)
	assert.Nil(t, audit.ModifiedAt)
	assert.Contains(t, *audit.EntityJSON, `"account_number":123`)

	_, err = service.FindByID(42)
	assert.True(t, common.IsNotFound(err))
	assert.Contains(t, err.Error(), "audit not found, id = 42")
}

// Audit reads fail fast on the first missing id.
func TestAuditServiceFindAllByIDFailsFast(t *testing.T) {
	db := setupTestDB(t, &models.Audit{})
	recorder := NewAuditRecorder(db)
	service := NewAuditService(db)

	assert.NoError(t, recorder.RecordCreate("branch", "system", &models.Branch{City: "Moscow"}))
	assert.NoError(t, recorder.RecordCreate("branch", "system", &models.Branch{City: "Kazan"}))

	audits, err := service.FindAllByID([]uint{2, 1})
	assert.NoError(t, err)
	assert.Len(t, audits, 2)
	assert.Equal(t, uint(2), *audits[0].ID)
	assert.Equal(t, uint(1), *audits[1].ID)

	_, err = service.FindAllByID([]uint{1, 9, 10})
	var nf *common.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, []uint{9}, nf.IDs)
}
