package dto

import "github.com/mkuznecov/bank-app/models"

// UserDto carries the password only inbound; responses never include
// the stored hash.
type UserDto struct {
	ID        *uint   `json:"id,omitempty"`
	Role      *string `json:"role,omitempty"`
	Password  *string `json:"password,omitempty"`
	ProfileID *int64  `json:"profile_id,omitempty"`
}

func ToUserDto(e *models.User) *UserDto {
	if e == nil {
		return nil
	}
	return &UserDto{
		ID:        ptr(e.ID),
		Role:      ptr(e.Role),
		ProfileID: ptr(e.ProfileID),
	}
}

func ToUserEntity(d *UserDto) *models.User {
	if d == nil {
		return nil
	}
	return &models.User{
		Role:      deref(d.Role),
		Password:  deref(d.Password),
		ProfileID: deref(d.ProfileID),
	}
}

func MergeUser(d *UserDto, e *models.User) *models.User {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.Role != nil {
		merged.Role = *d.Role
	}
	if d.Password != nil {
		merged.Password = *d.Password
	}
	if d.ProfileID != nil {
		merged.ProfileID = *d.ProfileID
	}
	return &merged
}

func ToUserDtoList(es []models.User) []UserDto {
	if es == nil {
		return nil
	}
	dtos := make([]UserDto, len(es))
	for i := range es {
		dtos[i] = *ToUserDto(&es[i])
	}
	return dtos
}
