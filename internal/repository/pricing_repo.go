package repository

import (
	"context"

	"github.com/expotech/exhibition-service/internal/models"
	"gorm.io/gorm"
)

type PricingRepository interface {
	FindActiveRules(ctx context.Context, exhibitionID uint) ([]models.PricingRule, error)
	FindPackageByID(ctx context.Context, id uint) (*models.Package, error)
}

type pricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepository{db: db}
}

// FindActiveRules returns active rules ordered by priority (highest first).
// Equal priorities keep primary-key order, i.e. creation order, so repeated
// quotes for the same inputs apply rules in the same sequence.
func (r *pricingRepository) FindActiveRules(ctx context.Context, exhibitionID uint) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	err := r.db.WithContext(ctx).
		Where("exhibition_id = ? AND is_active = ?", exhibitionID, true).
		Order("priority DESC, id ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *pricingRepository) FindPackageByID(ctx context.Context, id uint) (*models.Package, error) {
	var pkg models.Package
	if err := r.db.WithContext(ctx).First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}
