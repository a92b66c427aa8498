package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/models"
	"github.com/mkuznecov/bank-app/utils"
)

func setupTestDB(t *testing.T, entities ...interface{}) *gorm.DB {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(entities...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// The limiter must be part of the chain the routes are registered
// under; gin snapshots each route's handlers at registration, so a
// limiter Use'd on the engine afterwards would never run.
func TestRoutesAreRateLimited(t *testing.T) {
	db := setupTestDB(t, &models.History{})
	r := SetupHistoryRouter(db)

	blocked := 0
	for i := 0; i < rateLimitPerInterval+5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history/1", nil))
		if w.Code == http.StatusTooManyRequests {
			blocked++
		} else {
			assert.Equal(t, http.StatusNotFound, w.Code, "request %d", i)
		}
	}
	assert.Equal(t, 5, blocked)
}

func TestHistoryRouterServesRoutes(t *testing.T) {
	db := setupTestDB(t, &models.History{})
	db.Create(&models.History{TransferAuditID: ptrInt64(111)})
	r := SetupHistoryRouter(db)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"transfer_audit_id":%d`, 111))
}

func ptrInt64(v int64) *int64 {
	return &v
}
