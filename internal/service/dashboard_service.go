package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
)

type DashboardService struct {
	StudentRepo    *repository.StudentRepository
	TrainingRepo   *repository.TrainingRepository
	SeanceRepo     *repository.SeanceRepository
	AttendanceRepo *repository.AttendanceRepository

	today func() string
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	trainingRepo *repository.TrainingRepository,
	seanceRepo *repository.SeanceRepository,
	attendanceRepo *repository.AttendanceRepository,
	today func() string,
) *DashboardService {
	return &DashboardService{
		StudentRepo:    studentRepo,
		TrainingRepo:   trainingRepo,
		SeanceRepo:     seanceRepo,
		AttendanceRepo: attendanceRepo,
		today:          today,
	}
}

func (s *DashboardService) Stats() (*model.DashboardStats, error) {
	students, err := s.StudentRepo.Count()
	if err != nil {
		return nil, err
	}
	trainings, err := s.TrainingRepo.Count()
	if err != nil {
		return nil, err
	}
	sessionsToday, err := s.SeanceRepo.CountByDate(s.today())
	if err != nil {
		return nil, err
	}
	eligible, err := s.AttendanceRepo.CountFullyAttendedEnrollments(model.SessionsPerTraining)
	if err != nil {
		return nil, err
	}
	return &model.DashboardStats{
		TotalStudents:        students,
		TotalTrainings:       trainings,
		SessionsToday:        sessionsToday,
		EligibleCertificates: eligible,
	}, nil
}
