package repository

import (
	"context"
	"time"

	"doctor-directory/internal/domain/entity"
)

// DoctorCache holds a serialized copy of the whole dataset. Get reports
// found=false on a miss.
type DoctorCache interface {
	Get(ctx context.Context) (doctors []entity.Doctor, found bool, err error)
	Set(ctx context.Context, doctors []entity.Doctor, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
