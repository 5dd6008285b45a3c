package controller

import (
	"errors"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RequirementController struct {
	Requirements *service.RequirementService
}

func NewRequirementController(requirements *service.RequirementService) *RequirementController {
	return &RequirementController{Requirements: requirements}
}

// List godoc
// @Summary All passing-score requirements
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.TestRequirement}
// @Router /admin/requirements [get]
func (c *RequirementController) List(ctx *gin.Context) {
	requirements, err := c.Requirements.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, requirements)
}

type CreateRequirementRequest struct {
	Tier         model.TestTier `json:"tier" binding:"required"`
	TestID       uint           `json:"test_id" binding:"required"`
	PassingScore *int           `json:"passing_score"`
}

// Create godoc
// @Summary Set the passing score for a test; a null score means auto-pass
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRequirementRequest true "requirement"
// @Success 201 {object} util.Response{data=model.TestRequirement}
// @Failure 400 {object} util.Response
// @Router /admin/requirements [post]
func (c *RequirementController) Create(ctx *gin.Context) {
	var req CreateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	requirement, err := c.Requirements.Create(req.Tier, req.TestID, req.PassingScore)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, requirement)
}

type UpdateRequirementRequest struct {
	PassingScore *int `json:"passing_score"`
}

// Update godoc
// @Summary Change a requirement's passing score
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "requirement id"
// @Param body body UpdateRequirementRequest true "requirement"
// @Success 200 {object} util.Response{data=model.TestRequirement}
// @Router /admin/requirements/{id} [put]
func (c *RequirementController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req UpdateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	requirement, err := c.Requirements.Update(id, req.PassingScore)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, requirement)
}

// Delete godoc
// @Summary Remove a requirement; its test reverts to auto-pass
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Param id path int true "requirement id"
// @Success 200 {object} util.Response
// @Router /admin/requirements/{id} [delete]
func (c *RequirementController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Requirements.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListLevelTestOneScores godoc
// @Summary All first level test thresholds
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.LevelTestOneScore}
// @Router /admin/leveltestone-scores [get]
func (c *RequirementController) ListLevelTestOneScores(ctx *gin.Context) {
	scores, err := c.Requirements.ListLevelTestOneScores()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, scores)
}

type LevelTestOneScoreRequest struct {
	LevelTestOneID uint `json:"leveltestone_id" binding:"required"`
	PassingScore   *int `json:"passing_score"`
}

// CreateLevelTestOneScore godoc
// @Summary Set the threshold for a first level test
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LevelTestOneScoreRequest true "threshold"
// @Success 201 {object} util.Response{data=model.LevelTestOneScore}
// @Router /admin/leveltestone-scores [post]
func (c *RequirementController) CreateLevelTestOneScore(ctx *gin.Context) {
	var req LevelTestOneScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	score, err := c.Requirements.CreateLevelTestOneScore(req.LevelTestOneID, req.PassingScore)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, score)
}

// UpdateLevelTestOneScore godoc
// @Summary Change a first level test threshold
// @Tags requirements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "threshold id"
// @Param body body UpdateRequirementRequest true "threshold"
// @Success 200 {object} util.Response{data=model.LevelTestOneScore}
// @Router /admin/leveltestone-scores/{id} [put]
func (c *RequirementController) UpdateLevelTestOneScore(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req UpdateRequirementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	score, err := c.Requirements.UpdateLevelTestOneScore(id, req.PassingScore)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, score)
}

// DeleteLevelTestOneScore godoc
// @Summary Remove a first level test threshold
// @Tags requirements
// @Produce json
// @Security BearerAuth
// @Param id path int true "threshold id"
// @Success 200 {object} util.Response
// @Router /admin/leveltestone-scores/{id} [delete]
func (c *RequirementController) DeleteLevelTestOneScore(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Requirements.DeleteLevelTestOneScore(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
