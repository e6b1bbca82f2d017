package service

import (
	"time"
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
	"training_backend/pkg/logger"

	"go.uber.org/zap"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	AttendanceRepo *repository.AttendanceRepository
	StudentRepo    *repository.StudentRepository
	TrainingSvc    *TrainingService
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	trainingSvc *TrainingService,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		AttendanceRepo: attendanceRepo,
		StudentRepo:    studentRepo,
		TrainingSvc:    trainingSvc,
	}
}

type EnrollRequest struct {
	StudentID  string `json:"studentId" binding:"required"`
	TrainingID string `json:"trainingId" binding:"required"`
	GroupID    string `json:"groupId"`
}

func (s *EnrollmentService) Create(req *EnrollRequest) (*model.Enrollment, error) {
	if _, err := s.StudentRepo.FindByID(req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.TrainingSvc.Get(req.TrainingID); err != nil {
		return nil, err
	}

	exists, err := s.EnrollmentRepo.ExistsByStudentAndTraining(req.StudentID, req.TrainingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{
		StudentID:  req.StudentID,
		TrainingID: req.TrainingID,
		GroupID:    req.GroupID,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// AutoEnroll backs the group roster flow: adding a student to a group
// creates the enrollment if it is not already there.
func (s *EnrollmentService) AutoEnroll(studentID, trainingID, groupID string) error {
	exists, err := s.EnrollmentRepo.ExistsByStudentAndTraining(studentID, trainingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	enrollment := &model.Enrollment{
		StudentID:  studentID,
		TrainingID: trainingID,
		GroupID:    groupID,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return err
	}
	logger.Log.Debug("student auto-enrolled",
		zap.String("student", studentID),
		zap.String("training", trainingID))
	return nil
}

func (s *EnrollmentService) Get(id string) (*model.Enrollment, error) {
	return s.EnrollmentRepo.FindByID(id)
}

func (s *EnrollmentService) ListByStudent(studentID string) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByStudent(studentID)
}

func (s *EnrollmentService) ListByTraining(trainingID string) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByTraining(trainingID)
}

// Delete removes the enrollment and every attendance record hanging off it.
func (s *EnrollmentService) Delete(id string) error {
	if _, err := s.EnrollmentRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.AttendanceRepo.DeleteByEnrollment(id); err != nil {
		return err
	}
	return s.EnrollmentRepo.Delete(id)
}
