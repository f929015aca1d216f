package dto

import (
	"github.com/shopspring/decimal"
)

// Upstream DTOs

// DoctorRecord is one entry of the upstream doctor feed, in the feed's own
// field naming.
type DoctorRecord struct {
	ID           string          `json:"id" validate:"omitempty,max=64"`
	Name         string          `json:"name" validate:"required,max=255"`
	Specialty    []string        `json:"specialty" validate:"dive,required"`
	Fee          decimal.Decimal `json:"fee"`
	City         string          `json:"city" validate:"omitempty,max=100"`
	ClinicName   string          `json:"clinicName" validate:"omitempty,max=255"`
	Experience   int             `json:"experience" validate:"gte=0"`
	Photo        string          `json:"photo"`
	VideoConsult bool            `json:"videoConsult"`
	InClinic     bool            `json:"inClinic"`
}

// Request DTOs

type SuggestDoctorsRequest struct {
	Query string `json:"q" validate:"max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Specialty    []string        `json:"specialty"`
	Fee          decimal.Decimal `json:"fee"`
	Experience   int             `json:"experience"`
	City         string          `json:"city"`
	ClinicName   string          `json:"clinic_name"`
	Photo        string          `json:"photo"`
	VideoConsult bool            `json:"video_consult"`
	InClinic     bool            `json:"in_clinic"`
}

type ListingStateResponse struct {
	Query       string   `json:"query"`
	ConsultType string   `json:"consult_type,omitempty"`
	Specialties []string `json:"specialties"`
	SortBy      string   `json:"sort_by,omitempty"`
}

type DoctorListingResponse struct {
	Status         string               `json:"status"`
	Message        string               `json:"message,omitempty"`
	Doctors        []DoctorResponse     `json:"doctors"`
	Total          int                  `json:"total"`
	Specialties    []string             `json:"specialties"`
	State          ListingStateResponse `json:"state"`
	CanonicalQuery string               `json:"canonical_query"`
}

type DoctorSuggestionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DoctorSuggestionListResponse struct {
	Suggestions []DoctorSuggestionResponse `json:"suggestions"`
	Total       int                        `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}
