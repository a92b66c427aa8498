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

type SuspiciousAccountTransferController struct {
	service *services.SuspiciousAccountTransferService
}

func NewSuspiciousAccountTransferController(db *gorm.DB) *SuspiciousAccountTransferController {
	return &SuspiciousAccountTransferController{service: services.NewSuspiciousAccountTransferService(db)}
}

func (sc *SuspiciousAccountTransferController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	transfer, err := sc.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Suspicious account transfer", transfer)
}

func (sc *SuspiciousAccountTransferController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	transfers, err := sc.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of suspicious account transfers", transfers)
}

func (sc *SuspiciousAccountTransferController) Create(c *gin.Context) {
	var payload dto.SuspiciousAccountTransferDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := sc.service.Create(&payload, actor(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Suspicious account transfer %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Suspicious account transfer created", created)
}

func (sc *SuspiciousAccountTransferController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.SuspiciousAccountTransferDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := sc.service.Update(id, &patch, actor(c))
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Suspicious account transfer %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Suspicious account transfer updated", updated)
}
