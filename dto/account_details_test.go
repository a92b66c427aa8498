package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkuznecov/bank-app/models"
)

func detailsEntity() *models.AccountDetails {
	return &models.AccountDetails{
		ID:              10,
		PassportID:      230,
		AccountNumber:   123,
		BankDetailsID:   790,
		Money:           109,
		NegativeBalance: false,
		ProfileID:       290,
	}
}

func TestToAccountDetailsDtoAndBack(t *testing.T) {
	entity := detailsEntity()

	d := ToAccountDetailsDto(entity)

	assert.Equal(t, uint(10), *d.ID)
	assert.Equal(t, int64(230), *d.PassportID)
	assert.Equal(t, int64(123), *d.AccountNumber)

	// toEntity never maps the id; the store assigns it on save.
	back := ToAccountDetailsEntity(d)
	assert.Equal(t, uint(0), back.ID)
	assert.Equal(t, entity.PassportID, back.PassportID)
	assert.Equal(t, entity.Money, back.Money)
}

func TestAccountDetailsNilPropagation(t *testing.T) {
	assert.Nil(t, ToAccountDetailsDto(nil))
	assert.Nil(t, ToAccountDetailsEntity(nil))
	assert.Nil(t, ToAccountDetailsDtoList(nil))
}

func TestMergeAccountDetailsFullPatch(t *testing.T) {
	entity := detailsEntity()
	patch := &AccountDetailsDto{
		PassportID:      ptr(int64(123)),
		AccountNumber:   ptr(int64(645)),
		BankDetailsID:   ptr(int64(9341)),
		Money:           ptr(432.0),
		NegativeBalance: ptr(true),
		ProfileID:       ptr(int64(1230)),
	}

	merged := MergeAccountDetails(patch, entity)

	assert.Equal(t, &models.AccountDetails{
		ID:              10,
		PassportID:      123,
		AccountNumber:   645,
		BankDetailsID:   9341,
		Money:           432,
		NegativeBalance: true,
		ProfileID:       1230,
	}, merged)
}

func TestMergeAccountDetailsPartialPatch(t *testing.T) {
	entity := detailsEntity()
	patch := &AccountDetailsDto{Money: ptr(500.0)}

	merged := MergeAccountDetails(patch, entity)

	assert.Equal(t, 500.0, merged.Money)
	assert.Equal(t, entity.PassportID, merged.PassportID)
	assert.Equal(t, entity.AccountNumber, merged.AccountNumber)
	assert.Equal(t, entity.ProfileID, merged.ProfileID)
}

func TestMergeAccountDetailsNilPatchIsNoOp(t *testing.T) {
	entity := detailsEntity()

	merged := MergeAccountDetails(nil, entity)

	assert.Equal(t, entity, merged)
}

func TestMergeAccountDetailsIdempotentOnOwnValues(t *testing.T) {
	entity := detailsEntity()

	merged := MergeAccountDetails(ToAccountDetailsDto(entity), entity)

	assert.Equal(t, entity, merged)
}

func TestMergeAccountDetailsNeverTouchesID(t *testing.T) {
	entity := detailsEntity()
	patch := ToAccountDetailsDto(entity)
	patch.ID = ptr(uint(999))

	merged := MergeAccountDetails(patch, entity)

	assert.Equal(t, uint(10), merged.ID)
}

func TestMergeAccountDetailsDoesNotMutateExisting(t *testing.T) {
	entity := detailsEntity()
	MergeAccountDetails(&AccountDetailsDto{Money: ptr(1.0)}, entity)

	assert.Equal(t, 109.0, entity.Money)
}
