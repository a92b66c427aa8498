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

type AccountDetailsController struct {
	service *services.AccountDetailsService
}

func NewAccountDetailsController(db *gorm.DB) *AccountDetailsController {
	return &AccountDetailsController{service: services.NewAccountDetailsService(db)}
}

// GetByID -> GET /api/details/:id
func (ac *AccountDetailsController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := ac.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Account details", details)
}

// GetAllByID -> GET /api/details/read/all?id=1&id=2
func (ac *AccountDetailsController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	details, err := ac.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of account details", details)
}

// Create -> POST /api/details/create
func (ac *AccountDetailsController) Create(c *gin.Context) {
	var payload dto.AccountDetailsDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := ac.service.Create(&payload, actor(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Account details %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Account details created", created)
}

// Update -> PUT /api/details/update/:id
func (ac *AccountDetailsController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.AccountDetailsDto
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updated, err := ac.service.Update(id, &patch, actor(c))
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Account details %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Account details updated", updated)
}
