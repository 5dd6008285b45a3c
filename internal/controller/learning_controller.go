package controller

import (
	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	Learning *service.LearningService
}

func NewLearningController(learning *service.LearningService) *LearningController {
	return &LearningController{Learning: learning}
}

// ListLessons godoc
// @Summary Lessons for an instrument, with the caller's access flag
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Param instrumentId path int true "instrument id"
// @Success 200 {object} util.Response
// @Router /learning/{instrumentId} [get]
func (c *LearningController) ListLessons(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	instrumentID, ok := parseIDParam(ctx, "instrumentId")
	if !ok {
		return
	}
	lessons, canAccess, err := c.Learning.ListLessons(claims.UserID, instrumentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"lessons":    lessons,
		"can_access": canAccess,
	})
}

// GetLesson godoc
// @Summary One lesson with its media
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response{data=service.LessonDetail}
// @Failure 404 {object} util.Response
// @Router /learning/lessons/{id} [get]
func (c *LearningController) GetLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.Learning.GetLesson(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if detail == nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, detail)
}

type LessonRequest struct {
	InstrumentID uint   `json:"thaiinstrument_id" binding:"required"`
	Name         string `json:"lesson_name" binding:"required"`
	Detail       string `json:"lesson_detail"`
	Order        int    `json:"lesson_order"`
}

// CreateLesson godoc
// @Summary Create a lesson under an instrument
// @Tags learning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body LessonRequest true "lesson"
// @Success 201 {object} util.Response{data=model.Lesson}
// @Router /admin/lessons [post]
func (c *LearningController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson := &model.Lesson{
		InstrumentID: req.InstrumentID,
		Name:         req.Name,
		Detail:       req.Detail,
		Order:        req.Order,
	}
	if err := c.Learning.CreateLesson(lesson); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, lesson)
}

// UpdateLesson godoc
// @Summary Update a lesson
// @Tags learning
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param body body LessonRequest true "lesson"
// @Success 200 {object} util.Response{data=model.Lesson}
// @Router /admin/lessons/{id} [put]
func (c *LearningController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson := &model.Lesson{
		ID:           id,
		InstrumentID: req.InstrumentID,
		Name:         req.Name,
		Detail:       req.Detail,
		Order:        req.Order,
	}
	if err := c.Learning.UpdateLesson(lesson); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, lesson)
}

// DeleteLesson godoc
// @Summary Delete a lesson and its media
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Success 200 {object} util.Response
// @Router /admin/lessons/{id} [delete]
func (c *LearningController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Learning.DeleteLesson(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadMedia godoc
// @Summary Upload a video, audio, or document for a lesson
// @Tags learning
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "lesson id"
// @Param media_type formData string true "media type" Enums(video, audio, doc)
// @Param title formData string false "display title"
// @Param file formData file true "media file"
// @Success 201 {object} util.Response{data=model.LearningMedia}
// @Router /admin/lessons/{id}/media [post]
func (c *LearningController) UploadMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	mediaType := ctx.PostForm("media_type")
	title := ctx.PostForm("title")
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	media, err := c.Learning.UploadMedia(ctx.Request.Context(), id, mediaType, title, file)
	if err != nil {
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
// @Summary Remove a lesson media entry
// @Tags learning
// @Produce json
// @Security BearerAuth
// @Param mediaId path int true "media id"
// @Success 200 {object} util.Response
// @Router /admin/lessons/media/{mediaId} [delete]
func (c *LearningController) DeleteMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "mediaId")
	if !ok {
		return
	}
	if err := c.Learning.DeleteMedia(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
