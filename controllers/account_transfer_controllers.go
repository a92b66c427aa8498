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

type AccountTransferController struct {
	service *services.AccountTransferService
}

func NewAccountTransferController(db *gorm.DB) *AccountTransferController {
	return &AccountTransferController{service: services.NewAccountTransferService(db)}
}

func (tc *AccountTransferController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	transfer, err := tc.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Account transfer", transfer)
}

func (tc *AccountTransferController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	transfers, err := tc.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of account transfers", transfers)
}

func (tc *AccountTransferController) Create(c *gin.Context) {
	var payload dto.AccountTransferDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := tc.service.Create(&payload, actor(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Account transfer %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Account transfer created", created)
}

func (tc *AccountTransferController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.AccountTransferDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := tc.service.Update(id, &patch, actor(c))
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Account transfer %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Account transfer updated", updated)
}
