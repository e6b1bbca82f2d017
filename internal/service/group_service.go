package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
)

type GroupService struct {
	GroupRepo     *repository.GroupRepository
	StudentRepo   *repository.StudentRepository
	UserRepo      *repository.UserRepository
	TrainingSvc   *TrainingService
	EnrollmentSvc *EnrollmentService
}

func NewGroupService(
	groupRepo *repository.GroupRepository,
	studentRepo *repository.StudentRepository,
	userRepo *repository.UserRepository,
	trainingSvc *TrainingService,
	enrollmentSvc *EnrollmentService,
) *GroupService {
	return &GroupService{
		GroupRepo:     groupRepo,
		StudentRepo:   studentRepo,
		UserRepo:      userRepo,
		TrainingSvc:   trainingSvc,
		EnrollmentSvc: enrollmentSvc,
	}
}

type GroupCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	TrainingID string `json:"trainingId" binding:"required"`
	TrainerID  string `json:"trainerId"`
	DayOfWeek  string `json:"dayOfWeek"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

type GroupUpdateRequest struct {
	Name      *string `json:"name"`
	TrainerID *string `json:"trainerId"`
	DayOfWeek *string `json:"dayOfWeek"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

func (s *GroupService) Create(req *GroupCreateRequest) (*model.Group, error) {
	if _, err := s.TrainingSvc.Get(req.TrainingID); err != nil {
		return nil, err
	}
	if req.TrainerID != "" {
		trainer, err := s.UserRepo.FindByID(req.TrainerID)
		if err != nil {
			return nil, err
		}
		if trainer.Role != model.RoleTrainer {
			return nil, util.ErrNotATrainer
		}
	}
	if err := validSlot(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	group := &model.Group{
		Name:       req.Name,
		TrainingID: req.TrainingID,
		TrainerID:  req.TrainerID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		StudentIDs: model.StringList{},
	}
	if err := s.GroupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) Get(id string) (*model.Group, error) {
	return s.GroupRepo.FindByID(id)
}

func (s *GroupService) List() ([]model.Group, error) {
	return s.GroupRepo.List()
}

func (s *GroupService) ListByTraining(trainingID string) ([]model.Group, error) {
	return s.GroupRepo.ListByTraining(trainingID)
}

func (s *GroupService) Update(id string, req *GroupUpdateRequest) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.TrainerID != nil && *req.TrainerID != "" {
		trainer, err := s.UserRepo.FindByID(*req.TrainerID)
		if err != nil {
			return nil, err
		}
		if trainer.Role != model.RoleTrainer {
			return nil, util.ErrNotATrainer
		}
		group.TrainerID = trainer.ID
	}
	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.DayOfWeek != nil {
		group.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		group.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		group.EndTime = *req.EndTime
	}
	if err := validSlot(group.StartTime, group.EndTime); err != nil {
		return nil, err
	}
	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) Delete(id string) error {
	if _, err := s.GroupRepo.FindByID(id); err != nil {
		return err
	}
	return s.GroupRepo.Delete(id)
}

// AddStudent puts the student on the roster and enrolls them in the group's
// training, so attendance can be recorded right away.
func (s *GroupService) AddStudent(groupID, studentID string) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	if _, err := s.StudentRepo.FindByID(studentID); err != nil {
		return nil, err
	}
	if group.HasStudent(studentID) {
		return group, nil
	}

	group.StudentIDs = append(group.StudentIDs, studentID)
	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}
	if err := s.EnrollmentSvc.AutoEnroll(studentID, group.TrainingID, group.ID); err != nil {
		return nil, err
	}
	return group, nil
}

// RemoveStudent drops the roster entry only. The enrollment and its
// attendance history stay, the student may continue in another group.
func (s *GroupService) RemoveStudent(groupID, studentID string) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		return nil, err
	}
	filtered := make(model.StringList, 0, len(group.StudentIDs))
	for _, id := range group.StudentIDs {
		if id != studentID {
			filtered = append(filtered, id)
		}
	}
	group.StudentIDs = filtered
	if err := s.GroupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

func validSlot(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if !util.ValidClock(start) || !util.ValidClock(end) || end <= start {
		return util.ErrInvalidTimeRange
	}
	return nil
}
