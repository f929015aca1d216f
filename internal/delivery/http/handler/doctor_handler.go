package handler

import (
	"errors"
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/listing"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
)

type DoctorHandler struct {
	listingUsecase usecase.DoctorListingUsecase
	validator      *validator.CustomValidator
}

func NewDoctorHandler(listingUsecase usecase.DoctorListingUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		listingUsecase: listingUsecase,
		validator:      validator,
	}
}

// GetDoctors answers the listing for the filter state carried in the query
// string and echoes the canonical query string back.
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	listingResp, err := h.listingUsecase.GetListing(r.Context(), r.URL.Query())
	if err != nil {
		h.writeListingError(w, err)
		return
	}

	message := "Doctors retrieved successfully"
	if listingResp.Status == string(listing.StatusEmpty) {
		message = listingResp.Message
	}

	response.Success(w, http.StatusOK, message, listingResp)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	req := dto.SuggestDoctorsRequest{
		Query: r.URL.Query().Get("q"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.listingUsecase.SuggestDoctors(r.Context(), &req)
	if err != nil {
		h.writeListingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.listingUsecase.GetSpecialties(r.Context())
	if err != nil {
		h.writeListingError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) writeListingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrListingLoading):
		response.ServiceUnavailable(w, listing.MessageLoading)
	case errors.Is(err, usecase.ErrListingUnavailable):
		response.ServiceUnavailable(w, listing.MessageFailed)
	default:
		response.InternalServerError(w, "Failed to get doctors")
	}
}
