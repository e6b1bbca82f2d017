package controller

import (
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService    *service.StudentService
	EnrollmentService *service.EnrollmentService
	ProgressService   *service.ProgressService
}

func NewStudentController(
	studentService *service.StudentService,
	enrollmentService *service.EnrollmentService,
	progressService *service.ProgressService,
) *StudentController {
	return &StudentController{
		StudentService:    studentService,
		EnrollmentService: enrollmentService,
		ProgressService:   progressService,
	}
}

// Create godoc
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param body body service.StudentCreateRequest true "student"
// @Success 201 {object} util.Response{data=model.Student}
// @Router /api/students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req service.StudentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	student, err := c.StudentService.Create(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// List godoc
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Student}
// @Router /api/students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.StudentService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// Get godoc
// @Summary Fetch one student
// @Tags students
// @Produce json
// @Param id path string true "student id"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 404 {object} util.Response
// @Router /api/students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	student, err := c.StudentService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// Update godoc
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "student id"
// @Param body body service.StudentUpdateRequest true "fields"
// @Success 200 {object} util.Response{data=model.Student}
// @Router /api/students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var req service.StudentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	student, err := c.StudentService.Update(ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "student id"
// @Success 200 {object} util.Response
// @Router /api/students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.StudentService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Enrollments godoc
// @Summary Enrollments of a student
// @Tags students
// @Produce json
// @Param id path string true "student id"
// @Success 200 {object} util.Response{data=[]model.Enrollment}
// @Router /api/students/{id}/enrollments [get]
func (c *StudentController) Enrollments(ctx *gin.Context) {
	enrollments, err := c.EnrollmentService.ListByStudent(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// Progress godoc
// @Summary Progress across all of a student's enrollments
// @Description Derived from attendance on every call, never stored
// @Tags students
// @Produce json
// @Param id path string true "student id"
// @Success 200 {object} util.Response{data=[]model.TrainingProgress}
// @Router /api/students/{id}/progress [get]
func (c *StudentController) Progress(ctx *gin.Context) {
	progress, err := c.ProgressService.GetStudentProgress(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
