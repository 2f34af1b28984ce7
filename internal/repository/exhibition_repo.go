package repository

import (
	"context"

	"github.com/expotech/exhibition-service/internal/models"
	"gorm.io/gorm"
)

type ExhibitionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Exhibition, error)
	FindParticipant(ctx context.Context, id uint) (*models.Participant, error)
}

type exhibitionRepository struct {
	db *gorm.DB
}

func NewExhibitionRepository(db *gorm.DB) ExhibitionRepository {
	return &exhibitionRepository{db: db}
}

func (r *exhibitionRepository) FindByID(ctx context.Context, id uint) (*models.Exhibition, error) {
	var exhibition models.Exhibition
	if err := r.db.WithContext(ctx).First(&exhibition, id).Error; err != nil {
		return nil, err
	}
	return &exhibition, nil
}

// FindParticipant loads a participant with its exhibition so callers can reach
// the owning date range in one query.
func (r *exhibitionRepository) FindParticipant(ctx context.Context, id uint) (*models.Participant, error) {
	var participant models.Participant
	if err := r.db.WithContext(ctx).
		Preload("Exhibition").
		First(&participant, id).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}
