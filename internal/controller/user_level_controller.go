package controller

import (
	"errors"

	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserLevelController struct {
	Levels *service.UserLevelService
}

func NewUserLevelController(levels *service.UserLevelService) *UserLevelController {
	return &UserLevelController{Levels: levels}
}

// List godoc
// @Summary The level ladder, lowest threshold first
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserLevel}
// @Router /levels [get]
func (c *UserLevelController) List(ctx *gin.Context) {
	levels, err := c.Levels.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// Current godoc
// @Summary The caller's current level, null before any posttest counts
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserLevel}
// @Router /levels/me [get]
func (c *UserLevelController) Current(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	level, err := c.Levels.CurrentLevel(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, level)
}

type UserLevelRequest struct {
	Name     string `json:"level_name" binding:"required"`
	MinScore int    `json:"level_score"`
}

// Create godoc
// @Summary Add a rung to the level ladder
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UserLevelRequest true "level"
// @Success 201 {object} util.Response{data=model.UserLevel}
// @Failure 409 {object} util.Response
// @Router /admin/levels [post]
func (c *UserLevelController) Create(ctx *gin.Context) {
	var req UserLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := c.Levels.Create(req.Name, req.MinScore)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLevelNameTaken), errors.Is(err, util.ErrLevelScoreTaken):
			util.Error(ctx, 409, err.Error())
		case util.IsValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, level)
}

// Update godoc
// @Summary Rename a rung or move its threshold
// @Tags levels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "level id"
// @Param body body UserLevelRequest true "level"
// @Success 200 {object} util.Response{data=model.UserLevel}
// @Failure 409 {object} util.Response
// @Router /admin/levels/{id} [put]
func (c *UserLevelController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req UserLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	level, err := c.Levels.Update(id, req.Name, req.MinScore)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLevelNameTaken), errors.Is(err, util.ErrLevelScoreTaken):
			util.Error(ctx, 409, err.Error())
		case util.IsValidationError(err):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, level)
}

// Delete godoc
// @Summary Remove a rung from the level ladder
// @Tags levels
// @Produce json
// @Security BearerAuth
// @Param id path int true "level id"
// @Success 200 {object} util.Response
// @Router /admin/levels/{id} [delete]
func (c *UserLevelController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Levels.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
