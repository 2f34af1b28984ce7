package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/expotech/exhibition-service/internal/models"
	"github.com/expotech/exhibition-service/internal/repository"
	"github.com/expotech/exhibition-service/pkg/rabbitmq"
)

// EquipmentAvailability is the per-item availability result for an exhibition's
// date window. AvailableQuantity is never negative.
type EquipmentAvailability struct {
	ID                uint
	CodeName          string
	Quantity          int
	Price             float64
	BookedQuantity    int64
	AvailableQuantity int
}

type BookEquipmentInput struct {
	EquipmentID   uint
	ParticipantID uint
	Quantity      int
}

type AvailabilityService interface {
	GetCatalogAvailability(ctx context.Context, exhibitionID uint) ([]EquipmentAvailability, error)
	GetEquipmentAvailability(ctx context.Context, equipmentID, exhibitionID uint) (*EquipmentAvailability, error)
	BookEquipment(ctx context.Context, input BookEquipmentInput) (*models.EquipmentBooking, error)
}

type availabilityService struct {
	equipmentRepo  repository.EquipmentRepository
	exhibitionRepo repository.ExhibitionRepository
	publisher      *rabbitmq.Publisher
}

func NewAvailabilityService(
	equipmentRepo repository.EquipmentRepository,
	exhibitionRepo repository.ExhibitionRepository,
	publisher *rabbitmq.Publisher,
) AvailabilityService {
	return &availabilityService{
		equipmentRepo:  equipmentRepo,
		exhibitionRepo: exhibitionRepo,
		publisher:      publisher,
	}
}

// GetCatalogAvailability computes availability for every equipment item against
// the exhibition's date range. Items are independent read-only aggregations, so
// they are computed concurrently.
func (s *availabilityService) GetCatalogAvailability(ctx context.Context, exhibitionID uint) ([]EquipmentAvailability, error) {
	exhibition, err := s.findExhibition(ctx, exhibitionID)
	if err != nil {
		return nil, err
	}

	items, err := s.equipmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]EquipmentAvailability, len(items))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			availability, err := s.computeAvailability(gctx, s.equipmentRepo.GetDB(), &item, exhibition)
			if err != nil {
				return err
			}
			results[i] = *availability
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *availabilityService) GetEquipmentAvailability(ctx context.Context, equipmentID, exhibitionID uint) (*EquipmentAvailability, error) {
	exhibition, err := s.findExhibition(ctx, exhibitionID)
	if err != nil {
		return nil, err
	}

	item, err := s.equipmentRepo.FindByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return s.computeAvailability(ctx, s.equipmentRepo.GetDB(), item, exhibition)
}

// BookEquipment re-checks availability and inserts the booking inside a single
// transaction holding a row lock on the equipment, so two concurrent requests
// for the last units cannot both succeed. A failed write is never retried.
func (s *availabilityService) BookEquipment(ctx context.Context, input BookEquipmentInput) (*models.EquipmentBooking, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	participant, err := s.exhibitionRepo.FindParticipant(ctx, input.ParticipantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	if participant.Exhibition == nil {
		return nil, ErrExhibitionNotFound
	}
	if err := validateDates(participant.Exhibition); err != nil {
		return nil, err
	}

	var result *models.EquipmentBooking

	err = s.equipmentRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.equipmentRepo.FindByIDForUpdate(ctx, tx, input.EquipmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEquipmentNotFound
			}
			return err
		}

		availability, err := s.computeAvailability(ctx, tx, item, participant.Exhibition)
		if err != nil {
			return err
		}
		if input.Quantity > availability.AvailableQuantity {
			return ErrInsufficientStock
		}

		booking := &models.EquipmentBooking{
			EquipmentID:   input.EquipmentID,
			ParticipantID: input.ParticipantID,
			Quantity:      input.Quantity,
		}
		if err := s.equipmentRepo.CreateBooking(ctx, tx, booking); err != nil {
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: downstream notification services pick this up.
	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", result)
	}

	return result, nil
}

func (s *availabilityService) findExhibition(ctx context.Context, id uint) (*models.Exhibition, error) {
	exhibition, err := s.exhibitionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExhibitionNotFound
		}
		return nil, err
	}
	if err := validateDates(exhibition); err != nil {
		return nil, err
	}
	return exhibition, nil
}

// computeAvailability applies available = quantity - booked - maintenance,
// clamped at zero. "Booked" counts bookings of any exhibition whose dates
// overlap the target's (including the target itself); maintenance holds count
// unconditionally.
func (s *availabilityService) computeAvailability(ctx context.Context, tx *gorm.DB, item *models.Equipment, exhibition *models.Exhibition) (*EquipmentAvailability, error) {
	booked, err := s.equipmentRepo.SumBookedOverlapping(ctx, tx, item.ID, exhibition.StartDate, exhibition.EndDate)
	if err != nil {
		return nil, err
	}
	maintenance, err := s.equipmentRepo.CountActiveMaintenance(ctx, tx, item.ID)
	if err != nil {
		return nil, err
	}

	available := item.Quantity - int(booked) - int(maintenance)
	if available < 0 {
		available = 0
	}

	return &EquipmentAvailability{
		ID:                item.ID,
		CodeName:          item.CodeName,
		Quantity:          item.Quantity,
		Price:             item.Price,
		BookedQuantity:    booked,
		AvailableQuantity: available,
	}, nil
}

func validateDates(exhibition *models.Exhibition) error {
	if exhibition.StartDate.IsZero() || exhibition.EndDate.IsZero() {
		return fmt.Errorf("%w: exhibition %d has no date range", ErrValidation, exhibition.ID)
	}
	if exhibition.EndDate.Before(exhibition.StartDate) {
		return fmt.Errorf("%w: exhibition %d ends before it starts", ErrValidation, exhibition.ID)
	}
	return nil
}
