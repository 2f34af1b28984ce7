package service

import "errors"

var (
	ErrExhibitionNotFound  = errors.New("exhibition not found")
	ErrEquipmentNotFound   = errors.New("equipment not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrValidation          = errors.New("invalid input")
	ErrInsufficientStock   = errors.New("not enough equipment available for the requested dates")
)
