package service

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
	"training_backend/pkg/logger"
	"training_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stripeCount spreads the per-(trainer, date) locks over a fixed set of
// mutexes so the map never grows with traffic.
const stripeCount = 64

type SeanceService struct {
	DB             *gorm.DB
	SeanceRepo     *repository.SeanceRepository
	ReportRepo     *repository.SessionReportRepository
	GroupRepo      *repository.GroupRepository
	UserRepo       *repository.UserRepository
	EnrollmentRepo *repository.EnrollmentRepository
	AttendanceRepo *repository.AttendanceRepository
	TrainingSvc    *TrainingService
	NotifySvc      *NotificationService

	stripes [stripeCount]sync.Mutex

	// Overridable in tests.
	today    func() string
	nowClock func() string
}

func NewSeanceService(
	db *gorm.DB,
	seanceRepo *repository.SeanceRepository,
	reportRepo *repository.SessionReportRepository,
	groupRepo *repository.GroupRepository,
	userRepo *repository.UserRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	attendanceRepo *repository.AttendanceRepository,
	trainingSvc *TrainingService,
	notifySvc *NotificationService,
) *SeanceService {
	return &SeanceService{
		DB:             db,
		SeanceRepo:     seanceRepo,
		ReportRepo:     reportRepo,
		GroupRepo:      groupRepo,
		UserRepo:       userRepo,
		EnrollmentRepo: enrollmentRepo,
		AttendanceRepo: attendanceRepo,
		TrainingSvc:    trainingSvc,
		NotifySvc:      notifySvc,
		today:          util.Today,
		nowClock:       util.NowClock,
	}
}

type SeanceCreateRequest struct {
	TrainingID    string `json:"trainingId" binding:"required"`
	GroupID       string `json:"groupId" binding:"required"`
	TrainerID     string `json:"trainerId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	LevelNumber   int    `json:"levelNumber" binding:"required"`
	SessionNumber int    `json:"sessionNumber" binding:"required"`
	Title         string `json:"title"`
}

type SeanceUpdateRequest struct {
	TrainerID     *string `json:"trainerId"`
	GroupID       *string `json:"groupId"`
	Date          *string `json:"date"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	LevelNumber   *int    `json:"levelNumber"`
	SessionNumber *int    `json:"sessionNumber"`
	Title         *string `json:"title"`
}

type ReportRequest struct {
	Reason        string `json:"reason" binding:"required"`
	SuggestedDate string `json:"suggestedDate"`
}

// Availability is the advisory answer for the planning UI. The create and
// update paths re-check inside a transaction regardless of what it said.
type Availability struct {
	Available bool          `json:"available"`
	Conflict  *model.Seance `json:"conflict,omitempty"`
}

func (s *SeanceService) Create(req *SeanceCreateRequest) (*model.Seance, error) {
	if err := s.validateWindow(req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	trainer, err := s.UserRepo.FindByID(req.TrainerID)
	if err != nil {
		return nil, err
	}
	if trainer.Role != model.RoleTrainer {
		return nil, util.ErrNotATrainer
	}

	training, err := s.TrainingSvc.Get(req.TrainingID)
	if err != nil {
		return nil, err
	}
	group, err := s.GroupRepo.FindByID(req.GroupID)
	if err != nil {
		return nil, err
	}

	session, err := training.ResolveSession(req.LevelNumber, req.SessionNumber)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = model.DefaultSeanceTitle(session.Title, req.LevelNumber, req.SessionNumber)
	}

	seance := &model.Seance{
		TrainingID:    training.ID,
		SessionID:     session.SessionID,
		GroupID:       group.ID,
		TrainerID:     trainer.ID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		LevelNumber:   req.LevelNumber,
		SessionNumber: req.SessionNumber,
		Title:         title,
		Status:        model.SeancePlanned,
	}

	if err := s.scheduleLocked(seance, ""); err != nil {
		return nil, err
	}

	s.NotifySvc.NotifyUser(trainer.ID, model.NotifSeanceAssigned,
		"New seance assigned",
		fmt.Sprintf("%s on %s at %s", seance.Title, seance.Date, seance.StartTime),
		"/seances/"+seance.ID)

	logger.Log.Info("seance scheduled",
		zap.String("id", seance.ID),
		zap.String("trainer", seance.TrainerID),
		zap.String("date", seance.Date))
	return seance, nil
}

func (s *SeanceService) Update(id string, req *SeanceUpdateRequest) (*model.Seance, error) {
	seance, err := s.SeanceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if seance.Status != model.SeancePlanned {
		return nil, util.ErrInvalidTransition
	}

	if req.TrainerID != nil {
		trainer, err := s.UserRepo.FindByID(*req.TrainerID)
		if err != nil {
			return nil, err
		}
		if trainer.Role != model.RoleTrainer {
			return nil, util.ErrNotATrainer
		}
		seance.TrainerID = trainer.ID
	}
	if req.GroupID != nil {
		group, err := s.GroupRepo.FindByID(*req.GroupID)
		if err != nil {
			return nil, err
		}
		seance.GroupID = group.ID
	}

	var training *model.Training
	if req.LevelNumber != nil || req.SessionNumber != nil {
		training, err = s.TrainingSvc.Get(seance.TrainingID)
		if err != nil {
			return nil, err
		}
	}
	if err := applySeanceUpdate(seance, req, training); err != nil {
		return nil, err
	}

	if err := s.validateWindow(seance.Date, seance.StartTime, seance.EndTime); err != nil {
		return nil, err
	}

	if err := s.scheduleLocked(seance, seance.ID); err != nil {
		return nil, err
	}

	s.NotifySvc.NotifyUser(seance.TrainerID, model.NotifSeanceUpdated,
		"Seance updated",
		fmt.Sprintf("%s moved to %s at %s", seance.Title, seance.Date, seance.StartTime),
		"/seances/"+seance.ID)
	return seance, nil
}

// applySeanceUpdate merges the request into the seance. Moving the seance to
// another (level, session) slot re-resolves the session template, so the
// session id always matches the slot; a default title follows the new slot
// unless the request sets one explicitly.
func applySeanceUpdate(seance *model.Seance, req *SeanceUpdateRequest, training *model.Training) error {
	if req.Date != nil {
		seance.Date = *req.Date
	}
	if req.StartTime != nil {
		seance.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		seance.EndTime = *req.EndTime
	}
	if req.LevelNumber != nil || req.SessionNumber != nil {
		level, session := seance.LevelNumber, seance.SessionNumber
		if req.LevelNumber != nil {
			level = *req.LevelNumber
		}
		if req.SessionNumber != nil {
			session = *req.SessionNumber
		}
		resolved, err := training.ResolveSession(level, session)
		if err != nil {
			return err
		}
		seance.LevelNumber = level
		seance.SessionNumber = session
		seance.SessionID = resolved.SessionID
		if req.Title == nil {
			seance.Title = model.DefaultSeanceTitle(resolved.Title, level, session)
		}
	}
	if req.Title != nil && *req.Title != "" {
		seance.Title = *req.Title
	}
	return nil
}

// scheduleLocked serializes the check-then-write per (trainer, date) and runs
// both inside one transaction, so two racing writers cannot both pass the
// conflict scan.
func (s *SeanceService) scheduleLocked(seance *model.Seance, excludeID string) error {
	mu := s.stripeFor(seance.TrainerID, seance.Date)
	mu.Lock()
	defer mu.Unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.SeanceRepo.ListByTrainerAndDateTx(tx, seance.TrainerID, seance.Date)
		if err != nil {
			return err
		}
		if conflict := findConflict(existing, seance.StartTime, seance.EndTime, excludeID); conflict != nil {
			monitoring.SchedulingConflicts.Inc()
			return &util.ConflictError{
				Date:      conflict.Date,
				StartTime: conflict.StartTime,
				EndTime:   conflict.EndTime,
				Title:     conflict.Title,
			}
		}
		return tx.Save(seance).Error
	})
}

// findConflict returns the first seance whose window overlaps the candidate
// one. Windows are half open, so back to back seances sharing a boundary do
// not collide. A cancelled seance frees its slot.
func findConflict(existing []model.Seance, startTime, endTime, excludeID string) *model.Seance {
	for i := range existing {
		other := &existing[i]
		if other.ID == excludeID {
			continue
		}
		if other.Status == model.SeanceCancelled {
			continue
		}
		if other.Overlaps(startTime, endTime) {
			return other
		}
	}
	return nil
}

// CheckAvailability answers the advisory lookup used while filling the form.
func (s *SeanceService) CheckAvailability(trainerID, date, startTime, endTime, excludeID string) (*Availability, error) {
	if !util.ValidDate(date) || !util.ValidClock(startTime) || !util.ValidClock(endTime) {
		return nil, util.ErrInvalidTimeRange
	}
	if endTime <= startTime {
		return nil, util.ErrInvalidTimeRange
	}
	existing, err := s.SeanceRepo.ListByTrainerAndDate(trainerID, date)
	if err != nil {
		return nil, err
	}
	if conflict := findConflict(existing, startTime, endTime, excludeID); conflict != nil {
		return &Availability{Available: false, Conflict: conflict}, nil
	}
	return &Availability{Available: true}, nil
}

// UpdateStatus walks the lifecycle machine. Starting a seance also marks the
// whole group absent so the trainer only flips the students who showed up.
func (s *SeanceService) UpdateStatus(id string, next model.SeanceStatus, actor *util.Claims) (*model.Seance, error) {
	if !next.Valid() {
		return nil, util.ErrInvalidTransition
	}
	seance, err := s.SeanceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !seance.Status.CanTransitionTo(next) {
		return nil, util.ErrInvalidTransition
	}
	if next == model.SeanceReported {
		return nil, util.ErrInvalidTransition
	}
	if actor != nil && actor.Role == model.RoleTrainer && seance.TrainerID != actor.UserID {
		return nil, util.ErrNotAssigned
	}

	if next == model.SeanceInProgress {
		if seance.Date > s.today() ||
			(seance.Date == s.today() && seance.StartTime > s.nowClock()) {
			return nil, util.ErrNotYetStarted
		}
	}

	seance.Status = next
	if err := s.SeanceRepo.Save(seance); err != nil {
		return nil, err
	}

	if next == model.SeanceInProgress {
		s.seedAbsences(seance)
	}
	return seance, nil
}

// seedAbsences best effort: a failed default mark never blocks the start,
// the trainer can still mark the slot by hand.
func (s *SeanceService) seedAbsences(seance *model.Seance) {
	group, err := s.GroupRepo.FindByID(seance.GroupID)
	if err != nil {
		logger.Log.Warn("absence seeding skipped", zap.String("seance", seance.ID), zap.Error(err))
		return
	}
	for _, studentID := range group.StudentIDs {
		enrollment, err := s.EnrollmentRepo.FindByStudentAndTraining(studentID, seance.TrainingID)
		if err != nil {
			continue
		}
		record := &model.AttendanceRecord{
			EnrollmentID:  enrollment.ID,
			LevelNumber:   seance.LevelNumber,
			SessionNumber: seance.SessionNumber,
			Status:        model.AttendanceAbsent,
			MarkedAt:      time.Now(),
		}
		if err := s.AttendanceRepo.Upsert(record); err != nil {
			logger.Log.Warn("absence seed failed",
				zap.String("enrollment", enrollment.ID),
				zap.Error(err))
		}
	}
}

// validateSuggestedDate checks a report's replacement date. The date is
// optional; a trainer may report without proposing one.
func (s *SeanceService) validateSuggestedDate(suggested string) error {
	if suggested == "" {
		return nil
	}
	if !util.ValidDate(suggested) {
		return util.ErrInvalidTimeRange
	}
	if suggested < s.today() {
		return util.ErrPastDate
	}
	return nil
}

// Report lets the assigned trainer flag a planned seance as not deliverable,
// optionally proposing a new date. Managers get notified and reschedule by
// hand.
func (s *SeanceService) Report(id string, trainerID string, req *ReportRequest) (*model.SessionReport, error) {
	seance, err := s.SeanceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if seance.Status != model.SeancePlanned {
		return nil, util.ErrInvalidTransition
	}
	if seance.TrainerID != trainerID {
		return nil, util.ErrNotAssigned
	}
	if err := s.validateSuggestedDate(req.SuggestedDate); err != nil {
		return nil, err
	}

	report := &model.SessionReport{
		SeanceID:      seance.ID,
		TrainerID:     trainerID,
		Reason:        req.Reason,
		SuggestedDate: req.SuggestedDate,
		Status:        model.ReportPending,
	}

	// The report row and the status flip stand or fall together.
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}
		seance.Status = model.SeanceReported
		return tx.Save(seance).Error
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s on %s reported: %s", seance.Title, seance.Date, req.Reason)
	if req.SuggestedDate != "" {
		message = fmt.Sprintf("%s (suggested %s)", message, req.SuggestedDate)
	}
	s.NotifySvc.NotifyRole(model.RoleAdmin, model.NotifSeanceReported, "Seance reported", message, "/seances/"+seance.ID)
	s.NotifySvc.NotifyRole(model.RoleManager, model.NotifSeanceReported, "Seance reported", message, "/seances/"+seance.ID)

	logger.Log.Info("seance reported",
		zap.String("id", seance.ID),
		zap.String("trainer", trainerID),
		zap.String("suggested", req.SuggestedDate))
	return report, nil
}

func (s *SeanceService) Get(id string) (*model.Seance, error) {
	return s.SeanceRepo.FindByID(id)
}

func (s *SeanceService) Delete(id string) error {
	seance, err := s.SeanceRepo.FindByID(id)
	if err != nil {
		return err
	}
	if seance.Status != model.SeancePlanned && seance.Status != model.SeanceCancelled {
		return util.ErrInvalidTransition
	}
	return s.SeanceRepo.Delete(id)
}

func (s *SeanceService) List() ([]model.Seance, error) {
	return s.SeanceRepo.List()
}

func (s *SeanceService) ListByDate(date string) ([]model.Seance, error) {
	if !util.ValidDate(date) {
		return nil, util.ErrInvalidTimeRange
	}
	return s.SeanceRepo.ListByDate(date)
}

func (s *SeanceService) ListByTrainer(trainerID string) ([]model.Seance, error) {
	return s.SeanceRepo.ListByTrainer(trainerID)
}

func (s *SeanceService) ListReportsByTrainer(trainerID string) ([]model.SessionReport, error) {
	return s.ReportRepo.ListByTrainer(trainerID)
}

func (s *SeanceService) validateWindow(date, startTime, endTime string) error {
	if !util.ValidDate(date) || !util.ValidClock(startTime) || !util.ValidClock(endTime) {
		return util.ErrInvalidTimeRange
	}
	if endTime <= startTime {
		return util.ErrInvalidTimeRange
	}
	if date < s.today() {
		return util.ErrPastDate
	}
	return nil
}

func (s *SeanceService) stripeFor(trainerID, date string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(trainerID))
	h.Write([]byte{'|'})
	h.Write([]byte(date))
	return &s.stripes[h.Sum32()%stripeCount]
}
