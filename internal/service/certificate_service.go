package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
)

// CertificateService answers eligibility and the metadata a downstream
// generator needs. Rendering the document itself is out of scope here.
type CertificateService struct {
	ProgressSvc    *ProgressService
	EnrollmentRepo *repository.EnrollmentRepository
	StudentRepo    *repository.StudentRepository
	TrainingSvc    *TrainingService
}

func NewCertificateService(
	progressSvc *ProgressService,
	enrollmentRepo *repository.EnrollmentRepository,
	studentRepo *repository.StudentRepository,
	trainingSvc *TrainingService,
) *CertificateService {
	return &CertificateService{
		ProgressSvc:    progressSvc,
		EnrollmentRepo: enrollmentRepo,
		StudentRepo:    studentRepo,
		TrainingSvc:    trainingSvc,
	}
}

// Meta returns the certificate payload for an enrollment, or ErrNotEligible
// while any level remains unvalidated.
func (s *CertificateService) Meta(enrollmentID string) (*model.CertificateMeta, error) {
	progress, err := s.ProgressSvc.GetProgress(enrollmentID)
	if err != nil {
		return nil, err
	}
	if !progress.EligibleForCertificate {
		return nil, util.ErrNotEligible
	}

	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		return nil, err
	}
	student, err := s.StudentRepo.FindByID(enrollment.StudentID)
	if err != nil {
		return nil, err
	}
	training, err := s.TrainingSvc.Get(enrollment.TrainingID)
	if err != nil {
		return nil, err
	}

	return &model.CertificateMeta{
		Eligible:      true,
		StudentName:   student.FirstName + " " + student.LastName,
		TrainingTitle: training.Title,
	}, nil
}
