package repository

import (
	"errors"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) FindByStudentAndTraining(studentID, trainingID string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.First(&enrollment, "student_id = ? AND training_id = ?", studentID, trainingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) ExistsByStudentAndTraining(studentID, trainingID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).
		Where("student_id = ? AND training_id = ?", studentID, trainingID).
		Count(&count).Error
	return count > 0, err
}

func (r *EnrollmentRepository) ListByStudent(studentID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("student_id = ?", studentID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) ListByTraining(trainingID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("training_id = ?", trainingID).Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) CountByTraining(trainingID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Enrollment{}).Where("training_id = ?", trainingID).Count(&count).Error
	return count, err
}

func (r *EnrollmentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Enrollment{}, "id = ?", id).Error
}
