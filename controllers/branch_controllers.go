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

type BranchController struct {
	service *services.BranchService
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{service: services.NewBranchService(db)}
}

func (bc *BranchController) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branch, err := bc.service.FindByID(id)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch", branch)
}

func (bc *BranchController) GetAllByID(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	branches, err := bc.service.FindAllByID(ids)
	if err != nil {
		if common.IsNotFound(err) {
			utils.RespondNotFound(c, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of branches", branches)
}

func (bc *BranchController) Create(c *gin.Context) {
	var payload dto.BranchDto
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	created, err := bc.service.Create(&payload, actor(c))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Branch %d created", *created.ID)
	utils.RespondJSON(c, http.StatusCreated, "Branch created", created)
}

func (bc *BranchController) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var patch dto.BranchDto
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

	utils.InfoLogger.Printf("Branch %d updated", id)
	utils.RespondJSON(c, http.StatusOK, "Branch updated", updated)
}
