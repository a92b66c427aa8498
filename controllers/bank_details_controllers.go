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

type BankDetailsController struct {
	service *services.BankDetailsService
}

func NewBankDetailsController(db *gorm.DB) *BankDetailsController {
	return &BankDetailsController{service: services.NewBankDetailsService(db)}
}

func (bc *BankDetailsController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := bc.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bank details", details)
}

func (bc *BankDetailsController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := bc.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bank details", details)
}

func (bc *BankDetailsController) Create(c *gin.Context) {
	var payload dto.BankDetailsDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := bc.service.Create(&payload, actor(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Bank details %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Bank details created", created)
}

func (bc *BankDetailsController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.BankDetailsDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := bc.service.Update(id, &patch, actor(c))
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Bank details %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Bank details updated", updated)
}
