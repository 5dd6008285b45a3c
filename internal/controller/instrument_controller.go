package controller

import (
	"strconv"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstrumentController struct {
	Instruments *service.InstrumentService
}

func NewInstrumentController(instruments *service.InstrumentService) *InstrumentController {
	return &InstrumentController{Instruments: instruments}
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// List godoc
// @Summary All instruments
// @Tags instruments
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Instrument}
// @Router /instruments [get]
func (c *InstrumentController) List(ctx *gin.Context) {
	instruments, err := c.Instruments.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, instruments)
}

// Get godoc
// @Summary One instrument with its component media
// @Tags instruments
// @Produce json
// @Param id path int true "instrument id"
// @Success 200 {object} util.Response{data=service.InstrumentDetail}
// @Failure 404 {object} util.Response
// @Router /instruments/{id} [get]
func (c *InstrumentController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.Instruments.Get(id)
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

type InstrumentRequest struct {
	Name        string `json:"thaiinstrument_name" binding:"required"`
	Description string `json:"thaiinstrument_detail"`
}

// Create godoc
// @Summary Create an instrument
// @Tags instruments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body InstrumentRequest true "instrument"
// @Success 201 {object} util.Response{data=model.Instrument}
// @Router /admin/instruments [post]
func (c *InstrumentController) Create(ctx *gin.Context) {
	var req InstrumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	instrument := &model.Instrument{Name: req.Name, Description: req.Description}
	if err := c.Instruments.Create(instrument); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, instrument)
}

// Update godoc
// @Summary Update an instrument's name and description
// @Tags instruments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "instrument id"
// @Param body body InstrumentRequest true "instrument"
// @Success 200 {object} util.Response{data=model.Instrument}
// @Router /admin/instruments/{id} [put]
func (c *InstrumentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req InstrumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	instrument := &model.Instrument{ID: id, Name: req.Name, Description: req.Description}
	if err := c.Instruments.Update(instrument); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, instrument)
}

// Delete godoc
// @Summary Delete an instrument and its component media
// @Tags instruments
// @Produce json
// @Security BearerAuth
// @Param id path int true "instrument id"
// @Success 200 {object} util.Response
// @Router /admin/instruments/{id} [delete]
func (c *InstrumentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.Instruments.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadMedia godoc
// @Summary Upload the instrument's display image or sound sample
// @Tags instruments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "instrument id"
// @Param kind formData string true "media kind" Enums(image, audio)
// @Param file formData file true "media file"
// @Success 200 {object} util.Response
// @Router /admin/instruments/{id}/media [post]
func (c *InstrumentController) UploadMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	kind := ctx.PostForm("kind")
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	url, err := c.Instruments.UploadMedia(ctx.Request.Context(), id, kind, file)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

type ComponentMediaRequest struct {
	Name     string `json:"componentmedia_name" binding:"required"`
	ImageURL string `json:"componentmedia_image"`
	AudioURL string `json:"componentmedia_audio"`
}

// AddComponentMedia godoc
// @Summary Attach a component image/audio pair to an instrument
// @Tags instruments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "instrument id"
// @Param body body ComponentMediaRequest true "component media"
// @Success 201 {object} util.Response{data=model.ComponentMedia}
// @Router /admin/instruments/{id}/components [post]
func (c *InstrumentController) AddComponentMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req ComponentMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	media := &model.ComponentMedia{
		InstrumentID: id,
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		AudioURL:     req.AudioURL,
	}
	if err := c.Instruments.AddComponentMedia(media); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, media)
}

// DeleteComponentMedia godoc
// @Summary Remove a component media entry
// @Tags instruments
// @Produce json
// @Security BearerAuth
// @Param mediaId path int true "component media id"
// @Success 200 {object} util.Response
// @Router /admin/instruments/components/{mediaId} [delete]
func (c *InstrumentController) DeleteComponentMedia(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "mediaId")
	if !ok {
		return
	}
	if err := c.Instruments.DeleteComponentMedia(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
