package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"doctor-directory/internal/domain/entity"
	domainRepo "doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// DoctorsKey stores the whole dataset as one JSON array.
const DoctorsKey = "doctors:all"

type doctorCache struct {
	client *redis.Client
}

func NewDoctorCache(client *redis.Client) domainRepo.DoctorCache {
	return &doctorCache{client: client}
}

func (c *doctorCache) Get(ctx context.Context) ([]entity.Doctor, bool, error) {
	data, err := c.client.Get(ctx, DoctorsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", DoctorsKey, err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", DoctorsKey, err)
	}
	return doctors, true, nil
}

func (c *doctorCache) Set(ctx context.Context, doctors []entity.Doctor, ttl time.Duration) error {
	data, err := json.Marshal(doctors)
	if err != nil {
		return fmt.Errorf("encode %s: %w", DoctorsKey, err)
	}
	if err := c.client.Set(ctx, DoctorsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", DoctorsKey, err)
	}
	return nil
}

func (c *doctorCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, DoctorsKey).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", DoctorsKey, err)
	}
	return nil
}
