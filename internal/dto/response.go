package dto

import (
	"time"

	"github.com/expotech/exhibition-service/internal/models"
	"github.com/expotech/exhibition-service/internal/service"
)

type EquipmentAvailabilityResponse struct {
	ID                uint    `json:"id"`
	CodeName          string  `json:"code_name"`
	Quantity          int     `json:"quantity"`
	Price             float64 `json:"price"`
	BookedQuantity    int64   `json:"booked_quantity"`
	AvailableQuantity int     `json:"available_quantity"`
}

type BookingResponse struct {
	ID            uint      `json:"id"`
	EquipmentID   uint      `json:"equipment_id"`
	ParticipantID uint      `json:"participant_id"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

type AppliedDiscountResponse struct {
	RuleName           string  `json:"rule_name"`
	RuleType           string  `json:"rule_type"`
	DiscountAmount     float64 `json:"discount_amount"`
	DiscountPercentage float64 `json:"discount_percentage"`
	FixedAmount        float64 `json:"fixed_amount"`
}

type PriceQuoteResponse struct {
	BasePrice        float64                   `json:"base_price"`
	DiscountAmount   float64                   `json:"discount_amount"`
	FinalPrice       float64                   `json:"final_price"`
	AppliedDiscounts []AppliedDiscountResponse `json:"applied_discounts"`
	PricePerSqm      float64                   `json:"price_per_sqm"`
	BoothSize        float64                   `json:"booth_size"`
}

type PackagePriceResponse struct {
	PackageID       uint             `json:"package_id"`
	CurrentPrice    float64          `json:"current_price"`
	PriceType       models.PriceType `json:"price_type"`
	RegularPrice    float64          `json:"regular_price"`
	EarlyBirdPrice  *float64         `json:"early_bird_price"`
	LastMinutePrice *float64         `json:"last_minute_price"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToAvailabilityResponse(a *service.EquipmentAvailability) EquipmentAvailabilityResponse {
	return EquipmentAvailabilityResponse{
		ID:                a.ID,
		CodeName:          a.CodeName,
		Quantity:          a.Quantity,
		Price:             a.Price,
		BookedQuantity:    a.BookedQuantity,
		AvailableQuantity: a.AvailableQuantity,
	}
}

func ToBookingResponse(b *models.EquipmentBooking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		EquipmentID:   b.EquipmentID,
		ParticipantID: b.ParticipantID,
		Quantity:      b.Quantity,
		CreatedAt:     b.CreatedAt,
	}
}

func ToPriceQuoteResponse(q *service.PriceQuote) PriceQuoteResponse {
	applied := make([]AppliedDiscountResponse, len(q.AppliedDiscounts))
	for i, d := range q.AppliedDiscounts {
		applied[i] = AppliedDiscountResponse{
			RuleName:           d.RuleName,
			RuleType:           d.RuleType,
			DiscountAmount:     d.DiscountAmount,
			DiscountPercentage: d.DiscountPercentage,
			FixedAmount:        d.FixedAmount,
		}
	}
	return PriceQuoteResponse{
		BasePrice:        q.BasePrice,
		DiscountAmount:   q.DiscountAmount,
		FinalPrice:       q.FinalPrice,
		AppliedDiscounts: applied,
		PricePerSqm:      q.PricePerSqm,
		BoothSize:        q.BoothSize,
	}
}

func ToPackagePriceResponse(p *service.PackagePrice) PackagePriceResponse {
	return PackagePriceResponse{
		PackageID:       p.PackageID,
		CurrentPrice:    p.CurrentPrice,
		PriceType:       p.PriceType,
		RegularPrice:    p.Package.Price,
		EarlyBirdPrice:  p.Package.EarlyBirdPrice,
		LastMinutePrice: p.Package.LastMinutePrice,
	}
}
