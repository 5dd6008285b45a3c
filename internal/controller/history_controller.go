package controller

import (
	"errors"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Unlocks     *service.UnlockService
	Submissions *service.SubmissionService
}

func NewHistoryController(unlocks *service.UnlockService, submissions *service.SubmissionService) *HistoryController {
	return &HistoryController{Unlocks: unlocks, Submissions: submissions}
}

// MyUnlocks godoc
// @Summary Tests the caller has ever passed
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserUnlock}
// @Router /unlocks [get]
func (c *HistoryController) MyUnlocks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	unlocks, err := c.Unlocks.ListByUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, unlocks)
}

// MyAnswers godoc
// @Summary Everything the caller has answered across all tests
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UserAnswer}
// @Router /answers [get]
func (c *HistoryController) MyAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	answers, err := c.Submissions.ListUserAnswers(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, answers)
}

// ByUsername godoc
// @Summary A user's pass history grouped by tier, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param username path string true "username"
// @Success 200 {object} util.Response{data=[]service.HistoryEntry}
// @Failure 404 {object} util.Response
// @Router /admin/user-history/{username} [get]
func (c *HistoryController) ByUsername(ctx *gin.Context) {
	username := ctx.Param("username")
	if username == "" {
		util.BadRequest(ctx, "username is required")
		return
	}
	entries, err := c.Unlocks.HistoryByUsername(username)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entries)
}

type ResetTestRequest struct {
	UserID uint           `json:"user_id" binding:"required"`
	Tier   model.TestTier `json:"tier" binding:"required"`
	TestID uint           `json:"test_id" binding:"required"`
}

// ResetTest godoc
// @Summary Wipe a user's answers for one test; earned unlocks stay
// @Tags history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ResetTestRequest true "reset"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /admin/reset-test [post]
func (c *HistoryController) ResetTest(ctx *gin.Context) {
	var req ResetTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	deleted, err := c.Submissions.ResetTest(req.UserID, req.Tier, req.TestID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": deleted})
}
