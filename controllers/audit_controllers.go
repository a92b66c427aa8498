package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/services"
	"github.com/mkuznecov/bank-app/utils"
)

// AuditController exposes a service's own audit trail. Read-only: the
// rows are written by the service layer, never over HTTP.
type AuditController struct {
	service *services.AuditService
}

func NewAuditController(db *gorm.DB) *AuditController {
	return &AuditController{service: services.NewAuditService(db)}
}

// GetByID -> GET /api/<service>/audit/:id
func (ac *AuditController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	audit, err := ac.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Audit", audit)
}

// GetAllByID -> GET /api/<service>/audit?id=1&id=2
func (ac *AuditController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	audits, err := ac.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of audits", audits)
}
