package models

import "time"

// PricingRule applies a discount to booth pricing within an exhibition.
// Nil constraint fields mean "no constraint"; a zero value is a real bound.
type PricingRule struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	ExhibitionID        uint       `gorm:"not null;index" json:"exhibition_id"`
	Name                string     `gorm:"not null" json:"name"`
	RuleType            string     `json:"rule_type"`
	DiscountPercentage  float64    `json:"discount_percentage"`
	FixedDiscountAmount float64    `json:"fixed_discount_amount"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	MinAreaSqm          *float64   `json:"min_area_sqm,omitempty"`
	MaxAreaSqm          *float64   `json:"max_area_sqm,omitempty"`
	MinParticipants     *int       `json:"min_participants,omitempty"`
	Priority            int        `gorm:"not null;default:0" json:"priority"`
	IsActive            bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type Package struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	ExhibitionID        uint       `gorm:"not null;index" json:"exhibition_id"`
	Name                string     `gorm:"not null" json:"name"`
	Price               float64    `gorm:"not null" json:"price"`
	EarlyBirdPrice      *float64   `json:"early_bird_price,omitempty"`
	EarlyBirdEndDate    *time.Time `json:"early_bird_end_date,omitempty"`
	LastMinutePrice     *float64   `json:"last_minute_price,omitempty"`
	LastMinuteStartDate *time.Time `json:"last_minute_start_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type PriceType string

const (
	PriceRegular    PriceType = "regular"
	PriceEarlyBird  PriceType = "early_bird"
	PriceLastMinute PriceType = "last_minute"
)
