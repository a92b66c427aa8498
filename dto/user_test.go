package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkuznecov/bank-app/models"
)

func TestToUserDtoOmitsPassword(t *testing.T) {
	entity := &models.User{ID: 2, Role: "USER", Password: "$2a$10$hash", ProfileID: 99}

	d := ToUserDto(entity)

	assert.Nil(t, d.Password)
	assert.Equal(t, "USER", *d.Role)
	assert.Equal(t, int64(99), *d.ProfileID)
}

func TestMergeUserPartialPatch(t *testing.T) {
	entity := &models.User{ID: 2, Role: "USER", Password: "oldhash", ProfileID: 99}
	patch := &UserDto{Role: ptr("ADMIN")}

	merged := MergeUser(patch, entity)

	assert.Equal(t, "ADMIN", merged.Role)
	assert.Equal(t, "oldhash", merged.Password)
	assert.Equal(t, int64(99), merged.ProfileID)
	assert.Equal(t, uint(2), merged.ID)
}

func TestUserNilPropagation(t *testing.T) {
	assert.Nil(t, ToUserDto(nil))
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserDtoList(nil))
}
