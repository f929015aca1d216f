package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

// DoctorRepository is the backing store for the doctor dataset.
type DoctorRepository interface {
	// FindAll returns every doctor in feed order.
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
	// ReplaceAll swaps the stored dataset for doctors in one transaction.
	ReplaceAll(ctx context.Context, doctors []entity.Doctor) error
}
