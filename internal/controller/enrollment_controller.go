package controller

import (
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService  *service.EnrollmentService
	AttendanceService  *service.AttendanceService
	ProgressService    *service.ProgressService
	CertificateService *service.CertificateService
}

func NewEnrollmentController(
	enrollmentService *service.EnrollmentService,
	attendanceService *service.AttendanceService,
	progressService *service.ProgressService,
	certificateService *service.CertificateService,
) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService:  enrollmentService,
		AttendanceService:  attendanceService,
		ProgressService:    progressService,
		CertificateService: certificateService,
	}
}

// Create godoc
// @Summary Enroll a student in a training
// @Tags enrollments
// @Accept json
// @Produce json
// @Param body body service.EnrollRequest true "enrollment"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 409 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Create(ctx *gin.Context) {
	var req service.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	enrollment, err := c.EnrollmentService.Create(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// Get godoc
// @Summary Fetch one enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id} [get]
func (c *EnrollmentController) Get(ctx *gin.Context) {
	enrollment, err := c.EnrollmentService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// Delete godoc
// @Summary Withdraw an enrollment
// @Description Attendance records of the enrollment are removed with it
// @Tags enrollments
// @Produce json
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response
// @Router /api/enrollments/{id} [delete]
func (c *EnrollmentController) Delete(ctx *gin.Context) {
	if err := c.EnrollmentService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Attendance godoc
// @Summary Attendance records of an enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord}
// @Router /api/enrollments/{id}/attendance [get]
func (c *EnrollmentController) Attendance(ctx *gin.Context) {
	records, err := c.AttendanceService.ListByEnrollment(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Progress godoc
// @Summary Progress roll-up for an enrollment
// @Description Attended means present or excused; a level validates when all its sessions are attended
// @Tags enrollments
// @Produce json
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response{data=model.TrainingProgress}
// @Router /api/enrollments/{id}/progress [get]
func (c *EnrollmentController) Progress(ctx *gin.Context) {
	progress, err := c.ProgressService.GetProgress(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Certificate godoc
// @Summary Certificate metadata for a completed enrollment
// @Tags enrollments
// @Produce json
// @Param id path string true "enrollment id"
// @Success 200 {object} util.Response{data=model.CertificateMeta}
// @Failure 422 {object} util.Response
// @Router /api/enrollments/{id}/certificate [get]
func (c *EnrollmentController) Certificate(ctx *gin.Context) {
	meta, err := c.CertificateService.Meta(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, meta)
}
