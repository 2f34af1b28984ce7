package repository

import (
	"context"
	"time"

	"github.com/expotech/exhibition-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EquipmentRepository interface {
	FindAll(ctx context.Context) ([]models.Equipment, error)
	FindByID(ctx context.Context, id uint) (*models.Equipment, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Equipment, error)
	SumBookedOverlapping(ctx context.Context, tx *gorm.DB, equipmentID uint, start, end time.Time) (int64, error)
	CountActiveMaintenance(ctx context.Context, tx *gorm.DB, equipmentID uint) (int64, error)
	CreateBooking(ctx context.Context, tx *gorm.DB, booking *models.EquipmentBooking) error
	GetDB() *gorm.DB
}

type equipmentRepository struct {
	db *gorm.DB
}

func NewEquipmentRepository(db *gorm.DB) EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *equipmentRepository) FindAll(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var item models.Equipment
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate acquires a row-level lock on the equipment within the given
// transaction, serializing concurrent booking attempts on the same item.
func (r *equipmentRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Equipment, error) {
	var item models.Equipment
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SumBookedOverlapping totals booking quantities for the equipment across all
// exhibitions whose date range overlaps [start, end]. Boundaries are inclusive:
// two exhibitions sharing a single day overlap, and an exhibition overlaps itself.
func (r *equipmentRepository) SumBookedOverlapping(ctx context.Context, tx *gorm.DB, equipmentID uint, start, end time.Time) (int64, error) {
	var total int64
	err := tx.WithContext(ctx).
		Model(&models.EquipmentBooking{}).
		Select("COALESCE(SUM(equipment_bookings.quantity), 0)").
		Joins("JOIN participants ON participants.id = equipment_bookings.participant_id").
		Joins("JOIN exhibitions ON exhibitions.id = participants.exhibition_id").
		Where("equipment_bookings.equipment_id = ?", equipmentID).
		Where("exhibitions.start_date <= ? AND ? <= exhibitions.end_date", end, start).
		Scan(&total).Error
	return total, err
}

// CountActiveMaintenance counts planned and in-progress holds with no date
// filter: maintenance removes stock globally, not just for overlapping dates.
func (r *equipmentRepository) CountActiveMaintenance(ctx context.Context, tx *gorm.DB, equipmentID uint) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.MaintenanceHold{}).
		Where("equipment_id = ? AND status IN ?", equipmentID,
			[]models.MaintenanceStatus{models.MaintenancePlanned, models.MaintenanceInProgress}).
		Count(&count).Error
	return count, err
}

func (r *equipmentRepository) CreateBooking(ctx context.Context, tx *gorm.DB, booking *models.EquipmentBooking) error {
	return tx.WithContext(ctx).Create(booking).Error
}
