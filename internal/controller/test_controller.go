package controller

import (
	"errors"
	"strconv"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"
	"thaimusic_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Submissions *service.SubmissionService
	Questions   *service.QuestionService
	Unlocks     *service.UnlockService
}

func NewTestController(
	submissions *service.SubmissionService,
	questions *service.QuestionService,
	unlocks *service.UnlockService,
) *TestController {
	return &TestController{
		Submissions: submissions,
		Questions:   questions,
		Unlocks:     unlocks,
	}
}

func (c *TestController) submit(ctx *gin.Context, tier model.TestTier, req service.SubmitRequest) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Submissions.Submit(claims.UserID, tier, req)
	if err != nil {
		if util.IsValidationError(err) || errors.Is(err, util.ErrUnknownTier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.ObserveSubmission(string(tier), result.Passed)
	util.Success(ctx, result)
}

type SubmitPretestRequest struct {
	PretestID    uint                               `json:"pretest_id" binding:"required"`
	InstrumentID uint                               `json:"instrument_id" binding:"required"`
	Answers      map[string]service.SubmittedAnswer `json:"answers" binding:"required"`
}

// SubmitPretest godoc
// @Summary Submit pretest answers
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitPretestRequest true "submission"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /submit-pretest [post]
func (c *TestController) SubmitPretest(ctx *gin.Context) {
	var req SubmitPretestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, model.TierPretest, service.SubmitRequest{
		TestID:    req.PretestID,
		ContextID: req.InstrumentID,
		Answers:   req.Answers,
	})
}

type SubmitPosttestRequest struct {
	PosttestID   uint                               `json:"posttest_id" binding:"required"`
	InstrumentID uint                               `json:"instrument_id" binding:"required"`
	Answers      map[string]service.SubmittedAnswer `json:"answers" binding:"required"`
}

// SubmitPosttest godoc
// @Summary Submit posttest answers; the score feeds the user's level
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitPosttestRequest true "submission"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /submit-posttest [post]
func (c *TestController) SubmitPosttest(ctx *gin.Context) {
	var req SubmitPosttestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, model.TierPosttest, service.SubmitRequest{
		TestID:    req.PosttestID,
		ContextID: req.InstrumentID,
		Answers:   req.Answers,
	})
}

type SubmitLevelTestOneRequest struct {
	LevelTestOneID uint                               `json:"leveltestone_id" binding:"required"`
	InstrumentID   uint                               `json:"instrument_id" binding:"required"`
	Answers        map[string]service.SubmittedAnswer `json:"answers" binding:"required"`
}

// SubmitLevelTestOne godoc
// @Summary Submit first level test answers
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitLevelTestOneRequest true "submission"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /submit-leveltestone [post]
func (c *TestController) SubmitLevelTestOne(ctx *gin.Context) {
	var req SubmitLevelTestOneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, model.TierLevelTestOne, service.SubmitRequest{
		TestID:    req.LevelTestOneID,
		ContextID: req.InstrumentID,
		Answers:   req.Answers,
	})
}

type SubmitLevelTestTwoRequest struct {
	LevelTestTwoID uint                               `json:"leveltesttwo_id" binding:"required"`
	LessonID       uint                               `json:"lesson_id" binding:"required"`
	Answers        map[string]service.SubmittedAnswer `json:"answers" binding:"required"`
}

// SubmitLevelTestTwo godoc
// @Summary Submit second level test answers
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitLevelTestTwoRequest true "submission"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /submit-leveltesttwo [post]
func (c *TestController) SubmitLevelTestTwo(ctx *gin.Context) {
	var req SubmitLevelTestTwoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, model.TierLevelTestTwo, service.SubmitRequest{
		TestID:    req.LevelTestTwoID,
		ContextID: req.LessonID,
		Answers:   req.Answers,
	})
}

type SubmitLevelTestThreeRequest struct {
	LevelTestThreeID uint                               `json:"leveltestthree_id" binding:"required"`
	LessonID         uint                               `json:"lesson_id" binding:"required"`
	Answers          map[string]service.SubmittedAnswer `json:"answers" binding:"required"`
}

// SubmitLevelTestThree godoc
// @Summary Submit third level test answers
// @Tags tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitLevelTestThreeRequest true "submission"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response
// @Router /submit-leveltestthree [post]
func (c *TestController) SubmitLevelTestThree(ctx *gin.Context) {
	var req SubmitLevelTestThreeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	c.submit(ctx, model.TierLevelTestThree, service.SubmitRequest{
		TestID:    req.LevelTestThreeID,
		ContextID: req.LessonID,
		Answers:   req.Answers,
	})
}

// Questions godoc
// @Summary Deliverable questions for a test, minus ones already answered
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param tier path string true "test tier" Enums(pretest, posttest, leveltestone, leveltesttwo, leveltestthree)
// @Param testId path int true "test id"
// @Success 200 {object} util.Response{data=[]service.QuestionBundle}
// @Failure 400 {object} util.Response
// @Router /tests/{tier}/{testId}/questions [get]
func (c *TestController) ListQuestions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tier := model.TestTier(ctx.Param("tier"))
	testID, err := strconv.ParseUint(ctx.Param("testId"), 10, 64)
	if err != nil || testID == 0 {
		util.BadRequest(ctx, "invalid test id")
		return
	}

	bundles, err := c.Questions.AssembleQuestions(ctx.Request.Context(), tier, uint(testID), claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, bundles)
}

// Status godoc
// @Summary A user's standing on a tier's first test in a scope
// @Tags tests
// @Produce json
// @Security BearerAuth
// @Param tier path string true "test tier" Enums(pretest, posttest, leveltestone, leveltesttwo, leveltestthree)
// @Param contextId path int true "instrument or lesson id"
// @Success 200 {object} util.Response{data=service.TierStatus}
// @Failure 400 {object} util.Response
// @Router /tests/{tier}/status/{contextId} [get]
func (c *TestController) Status(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tier := model.TestTier(ctx.Param("tier"))
	contextID, err := strconv.ParseUint(ctx.Param("contextId"), 10, 64)
	if err != nil || contextID == 0 {
		util.BadRequest(ctx, "invalid context id")
		return
	}

	status, err := c.Unlocks.Status(claims.UserID, tier, uint(contextID))
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, status)
}
