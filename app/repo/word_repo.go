package repo

import (
	"wordquest/app/models"

	"gorm.io/gorm"
)

type WordRepository struct{ db *gorm.DB }

func NewWordRepository(db *gorm.DB) *WordRepository { return &WordRepository{db: db} }

func (r *WordRepository) CountByText(text string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Word{}).Where("text = ?", text).Count(&count).Error
}

func (r *WordRepository) Create(w *models.Word) error { return r.db.Create(w).Error }

func (r *WordRepository) FindByID(id uint) (*models.Word, error) {
	var w models.Word
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WordRepository) ListAll() ([]models.Word, error) {
	var words []models.Word
	return words, r.db.Find(&words).Error
}

// ListOrdered returns every word ordered by (level, text) for the admin table.
func (r *WordRepository) ListOrdered() ([]models.Word, error) {
	var words []models.Word
	return words, r.db.Order("level, text").Find(&words).Error
}

func (r *WordRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Word{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
