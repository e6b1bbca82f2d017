package controller

import (
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// Create godoc
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Param body body service.GroupCreateRequest true "group"
// @Success 201 {object} util.Response{data=model.Group}
// @Router /api/groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	var req service.GroupCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	group, err := c.GroupService.Create(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// List godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Group}
// @Router /api/groups [get]
func (c *GroupController) List(ctx *gin.Context) {
	groups, err := c.GroupService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// Get godoc
// @Summary Fetch one group
// @Tags groups
// @Produce json
// @Param id path string true "group id"
// @Success 200 {object} util.Response{data=model.Group}
// @Failure 404 {object} util.Response
// @Router /api/groups/{id} [get]
func (c *GroupController) Get(ctx *gin.Context) {
	group, err := c.GroupService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// Update godoc
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "group id"
// @Param body body service.GroupUpdateRequest true "fields"
// @Success 200 {object} util.Response{data=model.Group}
// @Router /api/groups/{id} [put]
func (c *GroupController) Update(ctx *gin.Context) {
	var req service.GroupUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	group, err := c.GroupService.Update(ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// Delete godoc
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "group id"
// @Success 200 {object} util.Response
// @Router /api/groups/{id} [delete]
func (c *GroupController) Delete(ctx *gin.Context) {
	if err := c.GroupService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddStudent godoc
// @Summary Add a student to the roster
// @Description Also enrolls the student in the group's training when missing
// @Tags groups
// @Produce json
// @Param id path string true "group id"
// @Param studentId path string true "student id"
// @Success 200 {object} util.Response{data=model.Group}
// @Router /api/groups/{id}/students/{studentId} [post]
func (c *GroupController) AddStudent(ctx *gin.Context) {
	group, err := c.GroupService.AddStudent(ctx.Param("id"), ctx.Param("studentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// RemoveStudent godoc
// @Summary Remove a student from the roster
// @Description Enrollment and attendance history are kept
// @Tags groups
// @Produce json
// @Param id path string true "group id"
// @Param studentId path string true "student id"
// @Success 200 {object} util.Response{data=model.Group}
// @Router /api/groups/{id}/students/{studentId} [delete]
func (c *GroupController) RemoveStudent(ctx *gin.Context) {
	group, err := c.GroupService.RemoveStudent(ctx.Param("id"), ctx.Param("studentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, group)
}
