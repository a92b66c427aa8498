package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mkuznecov/bank-app/common"
	"github.com/mkuznecov/bank-app/dto"
	"github.com/mkuznecov/bank-app/services"
	"github.com/mkuznecov/bank-app/utils"
)

type HistoryController struct {
	service *services.HistoryService
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{service: services.NewHistoryService(db)}
}

// GetByID -> GET /api/history/:id
func (hc *HistoryController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	history, err := hc.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "History", history)
}

// GetAllByID -> GET /api/history?id=1&id=2
func (hc *HistoryController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	histories, err := hc.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of histories", histories)
}

// Create -> POST /api/history
func (hc *HistoryController) Create(c *gin.Context) {
	var payload dto.HistoryDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := hc.service.Create(&payload)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("History %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "History created", created)
}

// Update -> PUT /api/history/:id
func (hc *HistoryController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.HistoryDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := hc.service.Update(id, &patch)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("History %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "History updated", updated)
}
