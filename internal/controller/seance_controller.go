package controller

import (
	"strconv"
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/service"
	"training_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SeanceController struct {
	SeanceService     *service.SeanceService
	CalendarService   *service.CalendarService
	AttendanceService *service.AttendanceService
	GroupRepo         *repository.GroupRepository
}

func NewSeanceController(
	seanceService *service.SeanceService,
	calendarService *service.CalendarService,
	attendanceService *service.AttendanceService,
	groupRepo *repository.GroupRepository,
) *SeanceController {
	return &SeanceController{
		SeanceService:     seanceService,
		CalendarService:   calendarService,
		AttendanceService: attendanceService,
		GroupRepo:         groupRepo,
	}
}

// Create godoc
// @Summary Schedule a seance
// @Description Rejects past dates, inverted windows and trainer double booking
// @Tags seances
// @Accept json
// @Produce json
// @Param body body service.SeanceCreateRequest true "seance"
// @Success 201 {object} util.Response{data=model.Seance}
// @Failure 409 {object} util.Response
// @Router /api/seances [post]
func (c *SeanceController) Create(ctx *gin.Context) {
	var req service.SeanceCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	seance, err := c.SeanceService.Create(&req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, seance)
}

// List godoc
// @Summary List seances
// @Description Optional date filter, otherwise the full schedule ordered by date and start time
// @Tags seances
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.Seance}
// @Router /api/seances [get]
func (c *SeanceController) List(ctx *gin.Context) {
	var (
		seances []model.Seance
		err     error
	)
	if date := ctx.Query("date"); date != "" {
		seances, err = c.SeanceService.ListByDate(date)
	} else {
		seances, err = c.SeanceService.List()
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seances)
}

// Get godoc
// @Summary Fetch one seance
// @Tags seances
// @Produce json
// @Param id path string true "seance id"
// @Success 200 {object} util.Response{data=model.Seance}
// @Failure 404 {object} util.Response
// @Router /api/seances/{id} [get]
func (c *SeanceController) Get(ctx *gin.Context) {
	seance, err := c.SeanceService.Get(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seance)
}

// Update godoc
// @Summary Reschedule a planned seance
// @Description Conflict checking excludes the seance's own slot
// @Tags seances
// @Accept json
// @Produce json
// @Param id path string true "seance id"
// @Param body body service.SeanceUpdateRequest true "fields"
// @Success 200 {object} util.Response{data=model.Seance}
// @Failure 409 {object} util.Response
// @Router /api/seances/{id} [put]
func (c *SeanceController) Update(ctx *gin.Context) {
	var req service.SeanceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	seance, err := c.SeanceService.Update(ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seance)
}

// Delete godoc
// @Summary Delete a seance
// @Tags seances
// @Produce json
// @Param id path string true "seance id"
// @Success 200 {object} util.Response
// @Router /api/seances/{id} [delete]
func (c *SeanceController) Delete(ctx *gin.Context) {
	if err := c.SeanceService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Availability godoc
// @Summary Advisory trainer availability check
// @Description The create and update paths re-check authoritatively
// @Tags seances
// @Produce json
// @Param trainerId query string true "trainer id"
// @Param date query string true "YYYY-MM-DD"
// @Param startTime query string true "HH:MM"
// @Param endTime query string true "HH:MM"
// @Param excludeId query string false "seance id to ignore"
// @Success 200 {object} util.Response{data=service.Availability}
// @Router /api/seances/availability [get]
func (c *SeanceController) Availability(ctx *gin.Context) {
	availability, err := c.SeanceService.CheckAvailability(
		ctx.Query("trainerId"),
		ctx.Query("date"),
		ctx.Query("startTime"),
		ctx.Query("endTime"),
		ctx.Query("excludeId"),
	)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, availability)
}

// Calendar godoc
// @Summary Month grid with seances bucketed by day
// @Description Always 42 cells, Monday first, padded with adjacent months
// @Tags seances
// @Produce json
// @Param year query int false "defaults to current year"
// @Param month query int false "1-12, defaults to current month"
// @Success 200 {object} util.Response{data=model.CalendarMonth}
// @Router /api/seances/calendar [get]
func (c *SeanceController) Calendar(ctx *gin.Context) {
	now := time.Now()
	year, err := intQuery(ctx, "year", now.Year())
	if err != nil {
		util.BadRequest(ctx, "invalid year")
		return
	}
	month, err := intQuery(ctx, "month", int(now.Month()))
	if err != nil || month < 1 || month > 12 {
		util.BadRequest(ctx, "invalid month")
		return
	}

	view, err := c.CalendarService.MonthView(year, month)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// UpdateStatus godoc
// @Summary Move a seance through its lifecycle
/// @Description Allowed: PLANNED to IN_PROGRESS or CANCELLED, IN_PROGRESS to COMPLETED. Starting marks the whole group absent.
// @Tags seances
// @Accept json
// @Produce json
// @Param id path string true "seance id"
// @Param body body StatusRequest true "target status"
// @Success 200 {object} util.Response{data=model.Seance}
// @Failure 422 {object} util.Response
// @Router /api/seances/{id}/status [patch]
func (c *SeanceController) UpdateStatus(ctx *gin.Context) {
	var req StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	claims := util.GetUserFromContext(ctx)
	seance, err := c.SeanceService.UpdateStatus(ctx.Param("id"), model.SeanceStatus(req.Status), claims)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seance)
}

// StatusRequest carries the target lifecycle status.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Report godoc
// @Summary Report a planned seance as not deliverable
// @Description Only the assigned trainer may report; admins and managers get notified
// @Tags seances
// @Accept json
// @Produce json
// @Param id path string true "seance id"
// @Param body body service.ReportRequest true "reason, optional suggested date"
// @Success 201 {object} util.Response{data=model.SessionReport}
// @Failure 403 {object} util.Response
// @Router /api/seances/{id}/report [post]
func (c *SeanceController) Report(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	var req service.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	report, err := c.SeanceService.Report(ctx.Param("id"), claims.UserID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, report)
}

// MySeances godoc
// @Summary Seances assigned to the authenticated trainer
// @Tags seances
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Seance}
// @Router /api/seances/my [get]
func (c *SeanceController) MySeances(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	seances, err := c.SeanceService.ListByTrainer(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seances)
}

// MyReports godoc
// @Summary Reports filed by the authenticated trainer
// @Tags seances
// @Produce json
// @Success 200 {object} util.Response{data=[]model.SessionReport}
// @Router /api/seances/reports/my [get]
func (c *SeanceController) MyReports(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	reports, err := c.SeanceService.ListReportsByTrainer(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, reports)
}

// MarkAttendance godoc
// @Summary Record attendance for a seance's slot
// @Description Re-marking a student overwrites the previous value
// @Tags seances
// @Accept json
// @Produce json
// @Param id path string true "seance id"
// @Param body body service.MarkRequest true "marks"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord}
// @Router /api/seances/{id}/attendance [post]
func (c *SeanceController) MarkAttendance(ctx *gin.Context) {
	var req service.MarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	claims := util.GetUserFromContext(ctx)
	records, err := c.AttendanceService.MarkForSeance(ctx.Param("id"), &req, claims)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// AttendanceSheet godoc
// @Summary Roster with current marks for a seance's slot
// @Tags seances
// @Produce json
// @Param id path string true "seance id"
// @Success 200 {object} util.Response{data=[]service.SheetEntry}
// @Router /api/seances/{id}/attendance [get]
func (c *SeanceController) AttendanceSheet(ctx *gin.Context) {
	entries, err := c.AttendanceService.Sheet(ctx.Param("id"), c.GroupRepo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

func intQuery(ctx *gin.Context, key string, fallback int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
