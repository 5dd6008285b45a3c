package controller

import (
	"errors"

	"thaimusic_backend/internal/model"
	"thaimusic_backend/internal/service"
	"thaimusic_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *service.CatalogService
}

func NewCatalogController(catalog *service.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// ListByInstrument godoc
// @Summary Tests of an instrument-scoped tier, with a configured flag per test
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param tier path string true "test tier" Enums(pretest, posttest, leveltestone)
// @Param instrumentId path int true "instrument id"
// @Success 200 {object} util.Response{data=[]service.CatalogEntry}
// @Failure 400 {object} util.Response
// @Router /admin/catalog/{tier}/instrument/{instrumentId} [get]
func (c *CatalogController) ListByInstrument(ctx *gin.Context) {
	tier := model.TestTier(ctx.Param("tier"))
	instrumentID, ok := parseIDParam(ctx, "instrumentId")
	if !ok {
		return
	}
	entries, err := c.Catalog.ListByInstrument(tier, instrumentID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entries)
}

// ListByLesson godoc
// @Summary Tests of a lesson-scoped tier, with a configured flag per test
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param tier path string true "test tier" Enums(leveltesttwo, leveltestthree)
// @Param lessonId path int true "lesson id"
// @Success 200 {object} util.Response{data=[]service.CatalogEntry}
// @Failure 400 {object} util.Response
// @Router /admin/catalog/{tier}/lesson/{lessonId} [get]
func (c *CatalogController) ListByLesson(ctx *gin.Context) {
	tier := model.TestTier(ctx.Param("tier"))
	lessonID, ok := parseIDParam(ctx, "lessonId")
	if !ok {
		return
	}
	entries, err := c.Catalog.ListByLesson(tier, lessonID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entries)
}

type CreateTestRequest struct {
	Tier      model.TestTier `json:"tier" binding:"required"`
	Name      string         `json:"name" binding:"required"`
	ContextID uint           `json:"context_id" binding:"required"`
}

// CreateTest godoc
// @Summary Create a test under an instrument or lesson
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTestRequest true "context_id is an instrument id for pretest/posttest/leveltestone and a lesson id for leveltesttwo/leveltestthree"
// @Success 201 {object} util.Response{data=service.CatalogEntry}
// @Failure 400 {object} util.Response
// @Router /admin/catalog/tests [post]
func (c *CatalogController) CreateTest(ctx *gin.Context) {
	var req CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	entry, err := c.Catalog.CreateTest(req.Tier, req.Name, req.ContextID)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTier) || util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, entry)
}
