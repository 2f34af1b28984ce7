package models

import "time"

type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CodeName  string    `gorm:"not null;uniqueIndex" json:"code_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EquipmentBooking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	EquipmentID   uint      `gorm:"not null;index" json:"equipment_id"`
	ParticipantID uint      `gorm:"not null;index" json:"participant_id"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Equipment   *Equipment   `gorm:"foreignKey:EquipmentID" json:"equipment,omitempty"`
	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
}

type MaintenanceStatus string

const (
	MaintenancePlanned    MaintenanceStatus = "planned"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceDone       MaintenanceStatus = "done"
)

// MaintenanceHold takes stock out of circulation for every exhibition while
// planned or in progress, regardless of date overlap.
type MaintenanceHold struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	EquipmentID uint              `gorm:"not null;index" json:"equipment_id"`
	Status      MaintenanceStatus `gorm:"type:varchar(20);not null;default:'planned'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
