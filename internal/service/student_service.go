package service

import (
	"training_backend/internal/model"
	"training_backend/internal/repository"
	"training_backend/internal/util"
)

type StudentService struct {
	StudentRepo *repository.StudentRepository
}

func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{StudentRepo: studentRepo}
}

type StudentCreateRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Notes     string `json:"notes"`
}

type StudentUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	BirthDate *string `json:"birthDate"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Notes     *string `json:"notes"`
}

func (s *StudentService) Create(req *StudentCreateRequest) (*model.Student, error) {
	if req.BirthDate != "" && !util.ValidDate(req.BirthDate) {
		return nil, util.ErrInvalidTimeRange
	}
	student := &model.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
		Email:     req.Email,
		Notes:     req.Notes,
	}
	if err := s.StudentRepo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Get(id string) (*model.Student, error) {
	return s.StudentRepo.FindByID(id)
}

func (s *StudentService) List() ([]model.Student, error) {
	return s.StudentRepo.List()
}

func (s *StudentService) Update(id string, req *StudentUpdateRequest) (*model.Student, error) {
	student, err := s.StudentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.BirthDate != nil {
		if *req.BirthDate != "" && !util.ValidDate(*req.BirthDate) {
			return nil, util.ErrInvalidTimeRange
		}
		student.BirthDate = *req.BirthDate
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Notes != nil {
		student.Notes = *req.Notes
	}
	if err := s.StudentRepo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(id string) error {
	if _, err := s.StudentRepo.FindByID(id); err != nil {
		return err
	}
	return s.StudentRepo.Delete(id)
}
