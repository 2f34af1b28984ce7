package models

import "time"

type Exhibition struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Venue       string    `json:"venue"`
	PricePerSqm float64   `gorm:"not null" json:"price_per_sqm"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Participant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExhibitionID uint      `gorm:"not null" json:"exhibition_id"`
	CompanyName  string    `gorm:"not null" json:"company_name"`
	BoothSize    float64   `json:"booth_size"`
	RegisteredAt time.Time `json:"registered_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Exhibition *Exhibition `gorm:"foreignKey:ExhibitionID" json:"exhibition,omitempty"`
}
