package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
)

type ProgressService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	AttendanceRepo *repository.AttendanceRepository
	TrainingSvc    *TrainingService
}

func NewProgressService(
	enrollmentRepo *repository.EnrollmentRepository,
	attendanceRepo *repository.AttendanceRepository,
	trainingSvc *TrainingService,
) *ProgressService {
	return &ProgressService{
		EnrollmentRepo: enrollmentRepo,
		AttendanceRepo: attendanceRepo,
		TrainingSvc:    trainingSvc,
	}
}

type slot struct {
	level, session int
}

// ComputeProgress rolls attendance records up against the training's fixed
// level/session structure. Pure function of its inputs: a level is validated
// when every one of its sessions is PRESENT or EXCUSED, the training is
// completed when every level is validated, and certificate eligibility is
// exactly completion.
func ComputeProgress(enrollment *model.Enrollment, training *model.Training, records []model.AttendanceRecord) *model.TrainingProgress {
	marks := make(map[slot]model.AttendanceStatus, len(records))
	for _, r := range records {
		marks[slot{r.LevelNumber, r.SessionNumber}] = r.Status
	}

	progress := &model.TrainingProgress{
		EnrollmentID:   enrollment.ID,
		TrainingID:     training.ID,
		TotalLevels:    len(training.Levels),
		TotalSessions:  training.TotalSessions(),
		Levels:         make([]model.LevelProgress, 0, len(training.Levels)),
		MissedSessions: []model.MissedSession{},
	}

	for _, level := range training.Levels {
		lp := model.LevelProgress{
			LevelNumber:   level.LevelNumber,
			TotalSessions: len(level.Sessions),
		}
		for _, session := range level.Sessions {
			status, marked := marks[slot{level.LevelNumber, session.SessionNumber}]
			if marked && status.CountsAsAttended() {
				lp.SessionsCompleted++
				continue
			}
			missed := model.MissedSession{
				SessionID:     session.SessionID,
				LevelNumber:   level.LevelNumber,
				SessionNumber: session.SessionNumber,
				SessionTitle:  session.Title,
			}
			if marked {
				missed.Status = status
			}
			progress.MissedSessions = append(progress.MissedSessions, missed)
		}
		lp.Validated = len(level.Sessions) > 0 && lp.SessionsCompleted == len(level.Sessions)
		if lp.Validated {
			progress.LevelsValidated++
		}
		progress.SessionsCompleted += lp.SessionsCompleted
		progress.Levels = append(progress.Levels, lp)
	}

	progress.Completed = progress.TotalLevels > 0 && progress.LevelsValidated == progress.TotalLevels
	progress.EligibleForCertificate = progress.Completed
	return progress
}

// GetProgress recomputes an enrollment's progress from stored records.
// Never cached: a late correction must change eligibility on the next read.
func (s *ProgressService) GetProgress(enrollmentID string) (*model.TrainingProgress, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		return nil, err
	}

	training, err := s.TrainingSvc.Get(enrollment.TrainingID)
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepo.ListByEnrollment(enrollmentID)
	if err != nil {
		return nil, err
	}

	return ComputeProgress(enrollment, training, records), nil
}

// GetStudentProgress computes progress for every training the student is
// enrolled in.
func (s *ProgressService) GetStudentProgress(studentID string) ([]*model.TrainingProgress, error) {
	enrollments, err := s.EnrollmentRepo.ListByStudent(studentID)
	if err != nil {
		return nil, err
	}

	result := make([]*model.TrainingProgress, 0, len(enrollments))
	for i := range enrollments {
		training, err := s.TrainingSvc.Get(enrollments[i].TrainingID)
		if err != nil {
			return nil, err
		}
		records, err := s.AttendanceRepo.ListByEnrollment(enrollments[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, ComputeProgress(&enrollments[i], training, records))
	}
	return result, nil
}
