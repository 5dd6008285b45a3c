package controller

import (
	"errors"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Admin *service.QuestionAdminService
}

func NewQuestionController(admin *service.QuestionAdminService) *QuestionController {
	return &QuestionController{Admin: admin}
}

// ListByTest godoc
// @Summary Questions of a test with answers, for authoring
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param tier path string true "test tier" Enums(pretest, posttest, leveltestone, leveltesttwo, leveltestthree)
// @Param testId path int true "test id"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response
// @Router /admin/questions/{tier}/{testId} [get]
func (c *QuestionController) ListByTest(ctx *gin.Context) {
	tier := model.TestTier(ctx.Param("tier"))
	testID, ok := parseIDParam(ctx, "testId")
	if !ok {
		return
	}
	questions, err := c.Admin.ListByTest(tier, testID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

type CreateQuestionRequest struct {
	Tier           model.TestTier `json:"tier" binding:"required"`
	TestID         uint           `json:"test_id" binding:"required"`
	Text           string         `json:"question_text" binding:"required"`
	QuestionTypeID *uint          `json:"questiontype_id"`
}

// Create godoc
// @Summary Create a question under a test
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateQuestionRequest true "question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Router /admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.Admin.Create(ctx.Request.Context(), req.Tier, req.TestID, req.Text, req.QuestionTypeID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, question)
}

type UpdateQuestionRequest struct {
	Text string `json:"question_text" binding:"required"`
}

// Update godoc
// @Summary Update a question's text
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body UpdateQuestionRequest true "question"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	question, err := c.Admin.UpdateText(ctx.Request.Context(), id, req.Text)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary Delete a question with its answers and media
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Success 200 {object} util.Response
// @Router /admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Admin.Delete(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type ChoiceRequest struct {
	AnswerText string `json:"answer_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

// AddChoice godoc
// @Summary Add a choice answer to a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body ChoiceRequest true "choice"
// @Success 201 {object} util.Response{data=model.ChoiceAnswer}
// @Router /admin/questions/{id}/choices [post]
func (c *QuestionController) AddChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.Admin.AddChoice(ctx.Request.Context(), id, req.AnswerText, req.IsCorrect)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, choice)
}

// UpdateChoice godoc
// @Summary Update a choice answer
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param choiceId path int true "choice id"
// @Param body body ChoiceRequest true "choice"
// @Success 200 {object} util.Response{data=model.ChoiceAnswer}
// @Router /admin/questions/choices/{choiceId} [put]
func (c *QuestionController) UpdateChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "choiceId")
	if !ok {
		return
	}
	var req ChoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	choice, err := c.Admin.UpdateChoice(ctx.Request.Context(), id, req.AnswerText, req.IsCorrect)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, choice)
}

// DeleteChoice godoc
// @Summary Delete a choice answer
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param choiceId path int true "choice id"
// @Success 200 {object} util.Response
// @Router /admin/questions/choices/{choiceId} [delete]
func (c *QuestionController) DeleteChoice(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "choiceId")
	if !ok {
		return
	}
	if err := c.Admin.DeleteChoice(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type PairRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	Response string `json:"response" binding:"required"`
}

// AddPair godoc
// @Summary Add a matching pair to a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body PairRequest true "pair"
// @Success 201 {object} util.Response{data=model.MatchPair}
// @Router /admin/questions/{id}/pairs [post]
func (c *QuestionController) AddPair(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req PairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	pair, err := c.Admin.AddPair(ctx.Request.Context(), id, req.Prompt, req.Response)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, pair)
}

// UpdatePair godoc
// @Summary Update a matching pair
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pairId path int true "pair id"
// @Param body body PairRequest true "pair"
// @Success 200 {object} util.Response{data=model.MatchPair}
// @Router /admin/questions/pairs/{pairId} [put]
func (c *QuestionController) UpdatePair(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "pairId")
	if !ok {
		return
	}
	var req PairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	pair, err := c.Admin.UpdatePair(ctx.Request.Context(), id, req.Prompt, req.Response)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, pair)
}

// DeletePair godoc
// @Summary Delete a matching pair
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param pairId path int true "pair id"
// @Success 200 {object} util.Response
// @Router /admin/questions/pairs/{pairId} [delete]
func (c *QuestionController) DeletePair(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "pairId")
	if !ok {
		return
	}
	if err := c.Admin.DeletePair(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type QuestionMediaRequest struct {
	ImageURL string `json:"questionmedia_image"`
	AudioURL string `json:"questionmedia_audio"`
}

// AddMedia godoc
// @Summary Attach media URLs to a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "question id"
// @Param body body QuestionMediaRequest true "media"
// @Success 201 {object} util.Response{data=model.QuestionMedia}
// @Router /admin/questions/{id}/media [post]
func (c *QuestionController) AddMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req QuestionMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	media := &model.QuestionMedia{
		QuestionID: id,
		ImageURL:   req.ImageURL,
		AudioURL:   req.AudioURL,
	}
	if err := c.Admin.AddMedia(ctx.Request.Context(), media); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, media)
}

// DeleteMedia godoc
// @Summary Remove question media
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param mediaId path int true "media id"
// @Success 200 {object} util.Response
// @Router /admin/questions/media/{mediaId} [delete]
func (c *QuestionController) DeleteMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "mediaId")
	if !ok {
		return
	}
	if err := c.Admin.DeleteMedia(ctx.Request.Context(), id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListQuestionTypes godoc
// @Summary All question types
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.QuestionType}
// @Router /admin/question-types [get]
func (c *QuestionController) ListQuestionTypes(ctx *gin.Context) {
	types, err := c.Admin.ListQuestionTypes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, types)
}

type QuestionTypeRequest struct {
	Name string `json:"questiontype_name" binding:"required"`
}

// CreateQuestionType godoc
// @Summary Create a question type
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body QuestionTypeRequest true "question type"
// @Success 201 {object} util.Response{data=model.QuestionType}
// @Router /admin/question-types [post]
func (c *QuestionController) CreateQuestionType(ctx *gin.Context) {
	var req QuestionTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	qt, err := c.Admin.CreateQuestionType(req.Name)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, qt)
}
