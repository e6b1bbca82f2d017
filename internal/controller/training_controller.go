package controller

import (
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TrainingController struct {
	TrainingService *service.TrainingService
	GroupService    *service.GroupService
}

func NewTrainingController(trainingService *service.TrainingService, groupService *service.GroupService) *TrainingController {
	return &TrainingController{TrainingService: trainingService, GroupService: groupService}
}

// Create godoc
// @Summary Create a training
// @Description Creates a training; with no levels given the default 4x6 structure is generated
// @Tags trainings
// @Accept json
// @Produce json
// @Param body body service.TrainingCreateRequest true "training"
// @Success 201 {object} util.Response{data=model.Training}
// @Router /api/trainings [post]
func (c *TrainingController) Create(ctx *gin.Context) {
	var req service.TrainingCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	training, err := c.TrainingService.Create(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, training)
}

// List godoc
// @Summary List trainings
// @Tags trainings
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Training}
// @Router /api/trainings [get]
func (c *TrainingController) List(ctx *gin.Context) {
	trainings, err := c.TrainingService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, trainings)
}

// Get godoc
// @Summary Fetch one training with its level structure
// @Tags trainings
// @Produce json
// @Param id path string true "training id"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 404 {object} util.Response
// @Router /api/trainings/{id} [get]
func (c *TrainingController) Get(ctx *gin.Context) {
	training, err := c.TrainingService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, training)
}

// Sessions godoc
// @Summary Flat session list in level-then-session order
// @Tags trainings
// @Produce json
// @Param id path string true "training id"
// @Success 200 {object} util.Response{data=[]model.FlatSession}
// @Router /api/trainings/{id}/sessions [get]
func (c *TrainingController) Sessions(ctx *gin.Context) {
	sessions, err := c.TrainingService.FlatSessions(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// Groups godoc
// @Summary Groups attached to a training
// @Tags trainings
// @Produce json
// @Param id path string true "training id"
// @Success 200 {object} util.Response{data=[]model.Group}
// @Router /api/trainings/{id}/groups [get]
func (c *TrainingController) Groups(ctx *gin.Context) {
	groups, err := c.GroupService.ListByTraining(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// Update godoc
// @Summary Update a training
// @Description Structure edits are rejected once any attendance exists
// @Tags trainings
// @Accept json
// @Produce json
// @Param id path string true "training id"
// @Param body body service.TrainingUpdateRequest true "fields"
// @Success 200 {object} util.Response{data=model.Training}
// @Failure 409 {object} util.Response
// @Router /api/trainings/{id} [put]
func (c *TrainingController) Update(ctx *gin.Context) {
	var req service.TrainingUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	training, err := c.TrainingService.Update(ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, training)
}

// Delete godoc
// @Summary Delete a training
// @Tags trainings
// @Produce json
// @Param id path string true "training id"
// @Success 200 {object} util.Response
// @Router /api/trainings/{id} [delete]
func (c *TrainingController) Delete(ctx *gin.Context) {
	if err := c.TrainingService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
