package repository

import (
	"errors"
	"training_backend/internal/model"
	"training_backend/internal/util"

	"gorm.io/gorm"
)

type SeanceRepository struct {
	DB *gorm.DB
}

func NewSeanceRepository(db *gorm.DB) *SeanceRepository {
	return &SeanceRepository{DB: db}
}

func (r *SeanceRepository) Create(seance *model.Seance) error {
	return r.DB.Create(seance).Error
}

func (r *SeanceRepository) Save(seance *model.Seance) error {
	return r.DB.Save(seance).Error
}

func (r *SeanceRepository) FindByID(id string) (*model.Seance, error) {
	var seance model.Seance
	err := r.DB.First(&seance, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seance, nil
}

func (r *SeanceRepository) Delete(id string) error {
	return r.DB.Delete(&model.Seance{}, "id = ?", id).Error
}

func (r *SeanceRepository) List() ([]model.Seance, error) {
	var seances []model.Seance
	err := r.DB.Order("date, start_time").Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) ListByDate(date string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.DB.Where("date = ?", date).Order("start_time").Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) ListByDateRange(from, to string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.DB.Where("date BETWEEN ? AND ?", from, to).
		Order("date, start_time").
		Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) ListByTrainer(trainerID string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.DB.Where("trainer_id = ?", trainerID).
		Order("date, start_time").
		Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) ListByTrainerAndDate(trainerID, date string) ([]model.Seance, error) {
	return listTrainerDate(r.DB, trainerID, date)
}

// ListByTrainerAndDateTx is the transactional variant used by the
// authoritative availability check, so the conflict scan and the write
// observe the same snapshot.
func (r *SeanceRepository) ListByTrainerAndDateTx(tx *gorm.DB, trainerID, date string) ([]model.Seance, error) {
	return listTrainerDate(tx, trainerID, date)
}

func listTrainerDate(db *gorm.DB, trainerID, date string) ([]model.Seance, error) {
	var seances []model.Seance
	err := db.Where("trainer_id = ? AND date = ?", trainerID, date).
		Order("start_time").
		Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) ListByTrainerAndRange(trainerID, from, to string) ([]model.Seance, error) {
	var seances []model.Seance
	err := r.DB.Where("trainer_id = ? AND date BETWEEN ? AND ?", trainerID, from, to).
		Order("date, start_time").
		Find(&seances).Error
	return seances, err
}

func (r *SeanceRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Seance{}).Where("date = ?", date).Count(&count).Error
	return count, err
}
