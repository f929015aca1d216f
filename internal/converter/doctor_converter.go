package converter

import (
	"fmt"
	"slices"
	"strings"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/listing"
	"doctor-directory/pkg/validator"

	"github.com/google/uuid"
)

// doctorIDNamespace seeds name-based ids for feed records that arrive without one.
var doctorIDNamespace = uuid.MustParse("7d1c7e0e-3f5a-4b8e-9a43-2f6f0c1d5b21")

// DoctorRecordsToEntities normalizes upstream records into the dataset.
//
// Records that fail validation or carry a negative fee are dropped and
// reported in issues. A missing id is replaced by a stable name-based UUID.
// When ids collide the first record wins. Feed order is kept in Position.
func DoctorRecordsToEntities(records []dto.DoctorRecord, v *validator.CustomValidator) ([]entity.Doctor, []error) {
	doctors := make([]entity.Doctor, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	var issues []error

	for i, record := range records {
		record.Name = strings.TrimSpace(record.Name)
		if err := v.Validate(&record); err != nil {
			issues = append(issues, fmt.Errorf("record %d: %v", i, v.FormatValidationErrors(err)))
			continue
		}
		if record.Fee.IsNegative() {
			issues = append(issues, fmt.Errorf("record %d: negative fee %s", i, record.Fee))
			continue
		}

		id := strings.TrimSpace(record.ID)
		if id == "" {
			id = uuid.NewSHA1(doctorIDNamespace, []byte(record.Name+"|"+record.ClinicName+"|"+record.City)).String()
		}
		if _, dup := seen[id]; dup {
			issues = append(issues, fmt.Errorf("record %d: duplicate id %q", i, id))
			continue
		}
		seen[id] = struct{}{}

		doctors = append(doctors, entity.Doctor{
			ID:           id,
			Name:         record.Name,
			Specialty:    slices.Clone(record.Specialty),
			Fee:          record.Fee,
			Experience:   record.Experience,
			City:         record.City,
			ClinicName:   record.ClinicName,
			Photo:        strings.TrimSpace(record.Photo),
			VideoConsult: record.VideoConsult,
			InClinic:     record.InClinic,
			Position:     len(doctors),
		})
	}

	return doctors, issues
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO. An absent
// photo is replaced by placeholder.
func DoctorToResponse(doctor *entity.Doctor, placeholder string) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	photo := doctor.Photo
	if photo == "" {
		photo = placeholder
	}

	specialty := doctor.Specialty
	if specialty == nil {
		specialty = []string{}
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    specialty,
		Fee:          doctor.Fee,
		Experience:   doctor.Experience,
		City:         doctor.City,
		ClinicName:   doctor.ClinicName,
		Photo:        photo,
		VideoConsult: doctor.VideoConsult,
		InClinic:     doctor.InClinic,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor, placeholder string) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i], placeholder)
	}
	return responses
}

func DoctorsToSuggestions(doctors []entity.Doctor) []dto.DoctorSuggestionResponse {
	suggestions := make([]dto.DoctorSuggestionResponse, len(doctors))
	for i, doctor := range doctors {
		suggestions[i] = dto.DoctorSuggestionResponse{
			ID:   doctor.ID,
			Name: doctor.Name,
		}
	}
	return suggestions
}

func ListingStateToResponse(state listing.FilterSortState) dto.ListingStateResponse {
	specialties := state.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return dto.ListingStateResponse{
		Query:       state.SearchText,
		ConsultType: state.ConsultMode.Param(),
		Specialties: specialties,
		SortBy:      state.SortKey.Param(),
	}
}

// ListingViewToResponse converts a ready or empty listing view to its DTO.
func ListingViewToResponse(view listing.View, placeholder string) *dto.DoctorListingResponse {
	specialties := view.Specialties
	if specialties == nil {
		specialties = []string{}
	}
	return &dto.DoctorListingResponse{
		Status:         string(view.Status),
		Message:        view.Message,
		Doctors:        DoctorsToResponses(view.Doctors, placeholder),
		Total:          len(view.Doctors),
		Specialties:    specialties,
		State:          ListingStateToResponse(view.State),
		CanonicalQuery: view.Query.Encode(),
	}
}
