package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errMissingIDs = errors.New("at least one id query parameter is required")

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// parseIDs reads the repeated id query parameter, preserving the
// caller's order and duplicates.
func parseIDs(c *gin.Context) ([]uint, error) {
	raw := c.QueryArray("id")
	if len(raw) == 0 {
		return nil, errMissingIDs
	}
	ids := make([]uint, len(raw))
	for i, r := range raw {
		id, err := strconv.ParseUint(r, 10, 32)
		if err != nil {
			return nil, errors.New("invalid id: " + r)
		}
		ids[i] = uint(id)
	}
	return ids, nil
}

// actor identifies who performs a mutation, for the audit trail.
func actor(c *gin.Context) string {
	if user := c.GetHeader("X-User"); user != "" {
		return user
	}
	return "system"
}
