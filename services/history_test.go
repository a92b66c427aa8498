package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/models"
)

func setupHistoryService(t *testing.T) *HistoryService {
	db := setupTestDB(t, &models.History{})
	return NewHistoryService(db)
}

// A correlation record is built up incrementally: the transfer service
// records its audit id first, the others patch theirs in later. Ids
// not present in a patch must survive untouched.
func TestHistoryIncrementalCorrelation(t *testing.T) {
	service := setupHistoryService(t)

	created, err := service.Create(&dto.HistoryDto{TransferAuditID: ptr(int64(111))})
	assert.NoError(t, err)
	assert.Equal(t, int64(111), *created.TransferAuditID)
	assert.Nil(t, created.ProfileAuditID)

	updated, err := service.Update(*created.ID, &dto.HistoryDto{ProfileAuditID: ptr(int64(222))})
	assert.NoError(t, err)
	assert.Equal(t, int64(111), *updated.TransferAuditID)
	assert.Equal(t, int64(222), *updated.ProfileAuditID)
	assert.Nil(t, updated.AccountAuditID)
	assert.Nil(t, updated.AntiFraudAuditID)
	assert.Nil(t, updated.PublicBankInfoAuditID)
	assert.Nil(t, updated.AuthorizationAuditID)

	// persisted, not just returned
	stored, err := service.FindByID(*created.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(111), *stored.TransferAuditID)
	assert.Equal(t, int64(222), *stored.ProfileAuditID)
}

func TestHistoryFindAllByIDReportsFullMissingSet(t *testing.T) {
	service := setupHistoryService(t)

	first, err := service.Create(&dto.HistoryDto{AccountAuditID: ptr(int64(1))})
	assert.NoError(t, err)

	result, err := service.FindAllByID([]uint{*first.ID, 50, 60})

	assert.Nil(t, result)
	var nf *common.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, []uint{50, 60}, nf.IDs)
}

func TestHistoryFindAllByIDOrdersByRequest(t *testing.T) {
	service := setupHistoryService(t)

	first, _ := service.Create(&dto.HistoryDto{TransferAuditID: ptr(int64(1))})
	second, _ := service.Create(&dto.HistoryDto{TransferAuditID: ptr(int64(2))})

	result, err := service.FindAllByID([]uint{*second.ID, *first.ID})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, *second.ID, *result[0].ID)
	assert.Equal(t, *first.ID, *result[1].ID)
}

func TestHistoryUpdateMissingNeverCreates(t *testing.T) {
	service := setupHistoryService(t)

	_, err := service.Update(7, &dto.HistoryDto{TransferAuditID: ptr(int64(5))})
	assert.True(t, common.IsNotFound(err))

	var count int64
	service.DB.Model(&models.History{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
