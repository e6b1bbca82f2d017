package service

import (
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	EnrollmentRepo *repository.EnrollmentRepository
	SeanceRepo     *repository.SeanceRepository
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	seanceRepo *repository.SeanceRepository,
) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		EnrollmentRepo: enrollmentRepo,
		SeanceRepo:     seanceRepo,
	}
}

type AttendanceMark struct {
	StudentID string                 `json:"studentId" binding:"required"`
	Status    model.AttendanceStatus `json:"status" binding:"required"`
}

type MarkRequest struct {
	Marks []AttendanceMark `json:"marks" binding:"required,dive"`
}

// MarkForSeance records attendance for a seance's slot. Re-marking the same
// student overwrites the previous value, so the trainer can correct mistakes.
func (s *AttendanceService) MarkForSeance(seanceID string, req *MarkRequest, actor *util.Claims) ([]model.AttendanceRecord, error) {
	seance, err := s.SeanceRepo.FindByID(seanceID)
	if err != nil {
		return nil, err
	}
	if actor != nil && actor.Role == model.RoleTrainer && seance.TrainerID != actor.UserID {
		return nil, util.ErrNotAssigned
	}
	if seance.Status != model.SeanceInProgress && seance.Status != model.SeanceCompleted {
		return nil, util.ErrNotYetStarted
	}

	records := make([]model.AttendanceRecord, 0, len(req.Marks))
	for _, mark := range req.Marks {
		if !mark.Status.Valid() {
			return nil, util.ErrInvalidTransition
		}
		enrollment, err := s.EnrollmentRepo.FindByStudentAndTraining(mark.StudentID, seance.TrainingID)
		if err != nil {
			return nil, err
		}
		record := model.AttendanceRecord{
			EnrollmentID:  enrollment.ID,
			LevelNumber:   seance.LevelNumber,
			SessionNumber: seance.SessionNumber,
			Status:        mark.Status,
			MarkedAt:      time.Now(),
		}
		if err := s.AttendanceRepo.Upsert(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *AttendanceService) ListByEnrollment(enrollmentID string) ([]model.AttendanceRecord, error) {
	if _, err := s.EnrollmentRepo.FindByID(enrollmentID); err != nil {
		return nil, err
	}
	return s.AttendanceRepo.ListByEnrollment(enrollmentID)
}

// SheetEntry pairs a student with their mark for one slot of a seance.
type SheetEntry struct {
	StudentID string                 `json:"studentId"`
	Status    model.AttendanceStatus `json:"status"`
	Marked    bool                   `json:"marked"`
}

// Sheet returns the per-student state for a seance's slot, students without
// a record yet included as unmarked.
func (s *AttendanceService) Sheet(seanceID string, groupRepo *repository.GroupRepository) ([]SheetEntry, error) {
	seance, err := s.SeanceRepo.FindByID(seanceID)
	if err != nil {
		return nil, err
	}
	group, err := groupRepo.FindByID(seance.GroupID)
	if err != nil {
		return nil, err
	}

	entries := make([]SheetEntry, 0, len(group.StudentIDs))
	for _, studentID := range group.StudentIDs {
		entry := SheetEntry{StudentID: studentID}
		enrollment, err := s.EnrollmentRepo.FindByStudentAndTraining(studentID, seance.TrainingID)
		if err == nil {
			record, err := s.AttendanceRepo.FindBySlot(enrollment.ID, seance.LevelNumber, seance.SessionNumber)
			if err == nil {
				entry.Status = record.Status
				entry.Marked = true
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
