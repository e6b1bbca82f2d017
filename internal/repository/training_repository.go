package repository

import (
	"errors"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"gorm.io/gorm"
)

type TrainingRepository struct {
	DB *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{DB: db}
}

func (r *TrainingRepository) Create(training *model.Training) error {
	return r.DB.Create(training).Error
}

func (r *TrainingRepository) FindByID(id string) (*model.Training, error) {
	var training model.Training
	err := r.DB.First(&training, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepository) List() ([]model.Training, error) {
	var trainings []model.Training
	err := r.DB.Order("title").Find(&trainings).Error
	return trainings, err
}

func (r *TrainingRepository) Update(training *model.Training) error {
	return r.DB.Save(training).Error
}

func (r *TrainingRepository) Delete(id string) error {
	return r.DB.Delete(&model.Training{}, "id = ?", id).Error
}

func (r *TrainingRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Training{}).Count(&count).Error
	return count, err
}
