package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/models"
)

func setupHistoryRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := setupTestDB(t, &models.History{})
	ctrl := NewHistoryController(db)

	r := gin.New()
	history := r.Group("/api/history")
	history.GET("/:id", ctrl.GetByID)
	history.GET("", ctrl.GetAllByID)
	history.POST("", ctrl.Create)
	history.PUT("/:id", ctrl.Update)
	return r, db
}

// The correlation record accumulates audit ids one patch at a time;
// ids absent from a patch stay as they were.
func TestHistoryCreateThenPatch(t *testing.T) {
	r, _ := setupHistoryRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/history", gin.H{"transfer_audit_id": 111})
	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "History created", resp.Message)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(111), data["transfer_audit_id"])
	assert.NotContains(t, data, "profile_audit_id")

	w = doJSON(t, r, http.MethodPut, "/api/history/1", gin.H{"profile_audit_id": 222})
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	data = resp.Data.(map[string]interface{})
	assert.Equal(t, float64(111), data["transfer_audit_id"])
	assert.Equal(t, float64(222), data["profile_audit_id"])
	assert.NotContains(t, data, "account_audit_id")
	assert.NotContains(t, data, "anti_fraud_audit_id")
	assert.NotContains(t, data, "public_bank_info_audit_id")
	assert.NotContains(t, data, "authorization_audit_id")
}

func TestHistoryGetAllReportsAllMissing(t *testing.T) {
	r, _ := setupHistoryRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/history", gin.H{"account_audit_id": 5})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/history?id=1&id=8&id=9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "history not found, id = 8, 9", resp.Message)
}

func TestHistoryUpdateMissingReturns404(t *testing.T) {
	r, db := setupHistoryRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/history/3", gin.H{"transfer_audit_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.History{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
