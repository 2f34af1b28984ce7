package dto

type BookEquipmentRequest struct {
	EquipmentID   uint `json:"equipment_id"`
	ParticipantID uint `json:"participant_id"`
	Quantity      int  `json:"quantity"`
}

type CalculatePriceRequest struct {
	ExhibitionID     uint    `json:"exhibition_id"`
	BoothSize        float64 `json:"booth_size"`
	RegistrationDate string  `json:"registration_date,omitempty"`
	ParticipantCount int     `json:"participant_count,omitempty"`
}
