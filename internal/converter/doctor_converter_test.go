package converter

import (
	"net/url"
	"testing"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/listing"
	"doctor-directory/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRecordsToEntities_DropsAndCoercesUniformly(t *testing.T) {
	records := []dto.DoctorRecord{
		{ID: " 7 ", Name: "  Dr. Priya Menon ", Specialty: []string{"Ayurveda"}, Fee: decimal.NewFromInt(350), Experience: 8, Photo: " "},
		{ID: "8", Name: "Dr. Broken", Specialty: []string{""}},
		{ID: "9", Name: "Dr. Negative", Experience: -3},
		{Name: "Dr. Sameer Khan", ClinicName: "Apollo", City: "Delhi"},
		{Name: "Dr. Sameer Khan", ClinicName: "Apollo", City: "Delhi"},
	}

	doctors, issues := DoctorRecordsToEntities(records, validator.NewValidator())

	require.Len(t, doctors, 2)
	assert.Len(t, issues, 3)

	assert.Equal(t, "7", doctors[0].ID)
	assert.Equal(t, "Dr. Priya Menon", doctors[0].Name)
	assert.Empty(t, doctors[0].Photo)
	assert.Equal(t, 0, doctors[0].Position)

	assert.Len(t, doctors[1].ID, 36)
	assert.Equal(t, 1, doctors[1].Position)

	again, _ := DoctorRecordsToEntities(records[3:4], validator.NewValidator())
	assert.Equal(t, doctors[1].ID, again[0].ID, "generated ids are stable across loads")
}

func TestDoctorToResponse_PhotoPlaceholder(t *testing.T) {
	withPhoto := &entity.Doctor{ID: "1", Photo: "https://img.example/1.jpg"}
	without := &entity.Doctor{ID: "2"}

	assert.Equal(t, "https://img.example/1.jpg", DoctorToResponse(withPhoto, "/placeholder.svg").Photo)
	assert.Equal(t, "/placeholder.svg", DoctorToResponse(without, "/placeholder.svg").Photo)
	assert.Equal(t, []string{}, DoctorToResponse(without, "").Specialty)
	assert.Nil(t, DoctorToResponse(nil, ""))
}

func TestListingViewToResponse(t *testing.T) {
	view := listing.View{
		Status:  listing.StatusReady,
		Doctors: []entity.Doctor{{ID: "1", Name: "Dr. A", Fee: decimal.NewFromInt(100)}},
		State: listing.FilterSortState{
			SearchText:  "a",
			ConsultMode: listing.ConsultVideoOnly,
			SortKey:     listing.SortExperienceDescending,
		},
		Query: url.Values{"query": {"a"}, "consultType": {"videoConsult"}, "sortBy": {"experience"}},
	}

	resp := ListingViewToResponse(view, "/placeholder.svg")

	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, []string{}, resp.Specialties)
	assert.Equal(t, dto.ListingStateResponse{
		Query:       "a",
		ConsultType: "videoConsult",
		Specialties: []string{},
		SortBy:      "experience",
	}, resp.State)
	assert.Equal(t, "consultType=videoConsult&query=a&sortBy=experience", resp.CanonicalQuery)
}
