package usecase

import (
	"context"
	"errors"
	"net/url"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/listing"

	"github.com/sirupsen/logrus"
)

var (
	ErrListingLoading     = errors.New("doctor listing is still loading")
	ErrListingUnavailable = errors.New("doctor listing is unavailable")
)

type DoctorListingUsecase interface {
	// Start loads the dataset once; safe to call from a background goroutine.
	Start(ctx context.Context) error
	GetListing(ctx context.Context, params url.Values) (*dto.DoctorListingResponse, error)
	SuggestDoctors(ctx context.Context, req *dto.SuggestDoctorsRequest) (*dto.DoctorSuggestionListResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
}

type doctorListingUsecase struct {
	log         *logrus.Logger
	root        *listing.Orchestrator
	placeholder string
}

func NewDoctorListingUsecase(log *logrus.Logger, source listing.DoctorSource, placeholder string) DoctorListingUsecase {
	return &doctorListingUsecase{
		log:         log,
		root:        listing.NewOrchestrator(source, nil, log, nil),
		placeholder: placeholder,
	}
}

func (u *doctorListingUsecase) Start(ctx context.Context) error {
	if err := u.root.Start(ctx); err != nil {
		u.log.Warnf("Failed to start doctor listing: %+v", err)
		return ErrListingUnavailable
	}
	return nil
}

func (u *doctorListingUsecase) GetListing(ctx context.Context, params url.Values) (*dto.DoctorListingResponse, error) {
	session := u.root.Fork(params, nil)

	view := session.View()
	if err := statusError(view.Status); err != nil {
		return nil, err
	}

	return converter.ListingViewToResponse(view, u.placeholder), nil
}

func (u *doctorListingUsecase) SuggestDoctors(ctx context.Context, req *dto.SuggestDoctorsRequest) (*dto.DoctorSuggestionListResponse, error) {
	session := u.root.Fork(nil, nil)
	if err := statusError(session.Status()); err != nil {
		return nil, err
	}

	session.Type(req.Query)
	suggestions := converter.DoctorsToSuggestions(session.View().Suggestions)

	return &dto.DoctorSuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (u *doctorListingUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	view := u.root.View()
	if err := statusError(view.Status); err != nil {
		return nil, err
	}

	specialties := view.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

func statusError(status listing.Status) error {
	switch status {
	case listing.StatusLoading:
		return ErrListingLoading
	case listing.StatusFailed:
		return ErrListingUnavailable
	default:
		return nil
	}
}
