package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFound("account details not found, id =", 7)
	assert.Equal(t, "account details not found, id = 7", err.Error())
}

func TestNotFoundErrorMultipleIDs(t *testing.T) {
	err := NewNotFound("branch not found, id =", 3, 5)
	assert.Equal(t, "branch not found, id = 3, 5", err.Error())
}

func TestNotFoundErrorWithoutIDs(t *testing.T) {
	err := NewNotFound("nothing here")
	assert.Equal(t, "nothing here", err.Error())
}

func TestIsNotFound(t *testing.T) {
	err := NewNotFound("user not found, id =", 1)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(fmt.Errorf("reading user: %w", err)))
	assert.False(t, IsNotFound(errors.New("user not found, id = 1")))
	assert.False(t, IsNotFound(nil))
}
