package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// =============================================================================
// Errors
// =============================================================================

// ErrSourceUnavailable wraps every failure to produce a dataset.
var ErrSourceUnavailable = errors.New("doctor source unavailable")

// =============================================================================
// Constants
// =============================================================================

const (
	// singleflight key shared by every concurrent FetchAll
	fetchAllKey = "doctors:fetch-all"

	// Upper bound for cache writes so a slow Redis never stalls a load
	cacheWriteTimeout = 3 * time.Second
)

// =============================================================================
// Types
// =============================================================================

// DoctorFeed reads the upstream doctor records.
type DoctorFeed interface {
	FetchRecords(ctx context.Context) ([]dto.DoctorRecord, error)
}

// DoctorSource produces the full doctor dataset.
//
// Lookup order (cache-aside, load-if-empty-then-populate):
// 1. Redis copy of the dataset
// 2. Postgres doctors table, then written back to Redis
// 3. Upstream feed, then written to Postgres and Redis
//
// Redis problems only degrade to the next tier. Concurrent callers share one
// load through singleflight, so FetchAll is safe to call repeatedly.
type DoctorSource struct {
	repo      repository.DoctorRepository
	cache     repository.DoctorCache
	feed      DoctorFeed
	validator *validator.CustomValidator
	log       *logrus.Logger
	cacheTTL  time.Duration

	group singleflight.Group
}

// =============================================================================
// Constructor
// =============================================================================

func NewDoctorSource(
	repo repository.DoctorRepository,
	cache repository.DoctorCache,
	feed DoctorFeed,
	validator *validator.CustomValidator,
	log *logrus.Logger,
	cacheTTL time.Duration,
) *DoctorSource {
	return &DoctorSource{
		repo:      repo,
		cache:     cache,
		feed:      feed,
		validator: validator,
		log:       log,
		cacheTTL:  cacheTTL,
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// FetchAll returns the dataset in feed order.
func (s *DoctorSource) FetchAll(ctx context.Context) ([]entity.Doctor, error) {
	v, err, shared := s.group.Do(fetchAllKey, func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug("Doctor dataset load shared with a concurrent caller")
	}
	return v.([]entity.Doctor), nil
}

// Refresh pulls the upstream feed and overwrites Postgres and Redis with it.
// Unlike FetchAll, a Postgres write failure is returned.
func (s *DoctorSource) Refresh(ctx context.Context) ([]entity.Doctor, error) {
	doctors, err := s.fetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceAll(ctx, doctors); err != nil {
		s.log.Warnf("Failed to store doctors: %+v", err)
		return nil, fmt.Errorf("%w: store doctors: %v", ErrSourceUnavailable, err)
	}

	s.writeCache(ctx, doctors)
	s.log.Infof("Doctor dataset refreshed from feed: %d doctors", len(doctors))
	return doctors, nil
}

// Count returns how many doctors are stored in Postgres.
func (s *DoctorSource) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count doctors: %v", ErrSourceUnavailable, err)
	}
	return count, nil
}

// =============================================================================
// Private Methods
// =============================================================================

func (s *DoctorSource) load(ctx context.Context) ([]entity.Doctor, error) {
	startTime := time.Now()

	doctors, found, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warnf("Failed to read doctors from Redis, falling back to database: %+v", err)
	}
	if found && len(doctors) > 0 {
		s.log.Debugf("Doctor dataset served from Redis: %d doctors", len(doctors))
		return doctors, nil
	}

	doctors, err = s.repo.FindAll(ctx)
	if err != nil {
		s.log.Warnf("Failed to read doctors from database: %+v", err)
		return nil, fmt.Errorf("%w: find doctors: %v", ErrSourceUnavailable, err)
	}
	if len(doctors) > 0 {
		s.writeCache(ctx, doctors)
		s.log.Infof("Doctor dataset loaded from database: %d doctors in %v", len(doctors), time.Since(startTime))
		return doctors, nil
	}

	doctors, err = s.fetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	if len(doctors) > 0 {
		if err := s.repo.ReplaceAll(ctx, doctors); err != nil {
			// The dataset is still usable; the next load will retry the seed.
			s.log.Warnf("Failed to seed doctors into database: %+v", err)
		} else {
			s.writeCache(ctx, doctors)
		}
	}

	s.log.Infof("Doctor dataset loaded from feed: %d doctors in %v", len(doctors), time.Since(startTime))
	return doctors, nil
}

func (s *DoctorSource) fetchFeed(ctx context.Context) ([]entity.Doctor, error) {
	records, err := s.feed.FetchRecords(ctx)
	if err != nil {
		s.log.Warnf("Failed to fetch doctor feed: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	doctors, issues := converter.DoctorRecordsToEntities(records, s.validator)
	for _, issue := range issues {
		s.log.Warnf("Dropped doctor record: %v", issue)
	}
	return doctors, nil
}

func (s *DoctorSource) writeCache(ctx context.Context, doctors []entity.Doctor) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()

	if err := s.cache.Set(ctx, doctors, s.cacheTTL); err != nil {
		s.log.Warnf("Failed to cache doctors in Redis: %+v", err)
	}
}
