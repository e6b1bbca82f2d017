package repository

import (
	"errors"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindByID(id string) (*model.Group, error) {
	var group model.Group
	err := r.DB.First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) List() ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Order("name").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) ListByTraining(trainingID string) ([]model.Group, error) {
	var groups []model.Group
	err := r.DB.Where("training_id = ?", trainingID).Order("name").Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) Update(group *model.Group) error {
	return r.DB.Save(group).Error
}

func (r *GroupRepository) Delete(id string) error {
	return r.DB.Delete(&model.Group{}, "id = ?", id).Error
}
