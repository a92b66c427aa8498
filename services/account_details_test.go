package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
	"github.com/mkuznecov/bank-app/utils"
)

func ptr[T any](v T) *T {
	return &v
}

// setupTestDB opens a per-test in-memory database so tests cannot see
// each other's rows.
func setupTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupDetailsService(t *testing.T) *AccountDetailsService {
	db := setupTestDB(t, &models.AccountDetails{}, &models.Audit{})
	return NewAccountDetailsService(db)
}

func seedDetails(t *testing.T, db *gorm.DB, n int) []models.AccountDetails {
	t.Helper()
	seeded := make([]models.AccountDetails, 0, n)
	for i := 1; i <= n; i++ {
		details := models.AccountDetails{
			PassportID:    int64(230 + i),
			AccountNumber: int64(1000 + i),
			BankDetailsID: 790,
			Money:         109,
			ProfileID:     290,
		}
		if err := db.Create(&details).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
		seeded = append(seeded, details)
	}
	return seeded
}

func TestAccountDetailsCreateAssignsIDAndAudits(t *testing.T) {
	service := setupDetailsService(t)

	created, err := service.Create(&dto.AccountDetailsDto{
		PassportID:    ptr(int64(230)),
		AccountNumber: ptr(int64(123)),
		BankDetailsID: ptr(int64(790)),
		Money:         ptr(109.0),
		ProfileID:     ptr(int64(290)),
	}, "teller-1")

	assert.NoError(t, err)
	assert.NotZero(t, *created.ID)

	var audit models.Audit
	assert.NoError(t, service.DB.First(&audit).Error)
	assert.Equal(t, "account_details", audit.EntityType)
	assert.Equal(t, "CREATE", audit.OperationType)
	assert.Equal(t, "teller-1", audit.CreatedBy)
	assert.Contains(t, audit.EntityJSON, `"account_number":123`)
	assert.Empty(t, audit.NewEntityJSON)
}

func TestAccountDetailsFindByIDNotFound(t *testing.T) {
	service := setupDetailsService(t)

	details, err := service.FindByID(100)

	assert.Nil(t, details)
	assert.True(t, common.IsNotFound(err))
	assert.Equal(t, "account details not found, id = 100", err.Error())
}

func TestAccountDetailsFindAllByIDPreservesOrder(t *testing.T) {
	service := setupDetailsService(t)
	seeded := seedDetails(t, service.DB, 3)

	result, err := service.FindAllByID([]uint{seeded[2].ID, seeded[0].ID, seeded[1].ID})

	assert.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, seeded[2].ID, *result[0].ID)
	assert.Equal(t, seeded[0].ID, *result[1].ID)
	assert.Equal(t, seeded[1].ID, *result[2].ID)
}

func TestAccountDetailsFindAllByIDFailsFast(t *testing.T) {
	service := setupDetailsService(t)
	seedDetails(t, service.DB, 2)

	result, err := service.FindAllByID([]uint{1, 2, 3})

	assert.Nil(t, result)
	var nf *common.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, []uint{3}, nf.IDs)
}

func TestAccountDetailsUpdateMergesPartialPatch(t *testing.T) {
	service := setupDetailsService(t)
	seeded := seedDetails(t, service.DB, 1)

	updated, err := service.Update(seeded[0].ID, &dto.AccountDetailsDto{
		Money:           ptr(432.0),
		NegativeBalance: ptr(true),
	}, "system")

	assert.NoError(t, err)
	assert.Equal(t, 432.0, *updated.Money)
	assert.True(t, *updated.NegativeBalance)
	assert.Equal(t, seeded[0].AccountNumber, *updated.AccountNumber)
	assert.Equal(t, seeded[0].PassportID, *updated.PassportID)

	var stored models.AccountDetails
	assert.NoError(t, service.DB.First(&stored, seeded[0].ID).Error)
	assert.Equal(t, 432.0, stored.Money)
	assert.Equal(t, seeded[0].AccountNumber, stored.AccountNumber)
}

func TestAccountDetailsUpdateNilPatchReturnsExisting(t *testing.T) {
	service := setupDetailsService(t)
	seeded := seedDetails(t, service.DB, 1)

	updated, err := service.Update(seeded[0].ID, nil, "system")

	assert.NoError(t, err)
	assert.Equal(t, seeded[0].ID, *updated.ID)
	assert.Equal(t, seeded[0].Money, *updated.Money)
	assert.Equal(t, seeded[0].AccountNumber, *updated.AccountNumber)
}

func TestAccountDetailsUpdateMissingIDNeverCreates(t *testing.T) {
	service := setupDetailsService(t)

	updated, err := service.Update(42, &dto.AccountDetailsDto{Money: ptr(1.0)}, "system")

	assert.Nil(t, updated)
	assert.True(t, common.IsNotFound(err))

	var count int64
	service.DB.Model(&models.AccountDetails{}).Count(&count)
	assert.Zero(t, count)
}

func TestAccountDetailsUpdateRecordsBeforeAndAfter(t *testing.T) {
	service := setupDetailsService(t)
	seeded := seedDetails(t, service.DB, 1)

	_, err := service.Update(seeded[0].ID, &dto.AccountDetailsDto{Money: ptr(500.0)}, "auditor")
	assert.NoError(t, err)

	var audit models.Audit
	assert.NoError(t, service.DB.Where("operation_type = ?", "UPDATE").First(&audit).Error)
	assert.Equal(t, "auditor", audit.ModifiedBy)
	assert.Contains(t, audit.EntityJSON, `"money":109`)
	assert.Contains(t, audit.NewEntityJSON, `"money":500`)
	assert.NotNil(t, audit.ModifiedAt)
}
