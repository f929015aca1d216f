package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorRepository) ReplaceAll(ctx context.Context, doctors []entity.Doctor) error {
	args := m.Called(ctx, doctors)
	return args.Error(0)
}

type MockDoctorCache struct {
	mock.Mock
}

func (m *MockDoctorCache) Get(ctx context.Context) ([]entity.Doctor, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.Doctor), args.Bool(1), args.Error(2)
}

func (m *MockDoctorCache) Set(ctx context.Context, doctors []entity.Doctor, ttl time.Duration) error {
	args := m.Called(ctx, doctors, ttl)
	return args.Error(0)
}

func (m *MockDoctorCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockDoctorFeed struct {
	mock.Mock
}

func (m *MockDoctorFeed) FetchRecords(ctx context.Context) ([]dto.DoctorRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DoctorRecord), args.Error(1)
}

const testTTL = 10 * time.Minute

type sourceFixture struct {
	repo   *MockDoctorRepository
	cache  *MockDoctorCache
	feed   *MockDoctorFeed
	source *DoctorSource
}

func newSourceFixture() *sourceFixture {
	log, _ := test.NewNullLogger()
	f := &sourceFixture{
		repo:  new(MockDoctorRepository),
		cache: new(MockDoctorCache),
		feed:  new(MockDoctorFeed),
	}
	f.source = NewDoctorSource(f.repo, f.cache, f.feed, validator.NewValidator(), log, testTTL)
	return f
}

func (f *sourceFixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
	f.feed.AssertExpectations(t)
}

func storedDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "1", Name: "Dr. A", Specialty: []string{"Dentist"}, Fee: decimal.NewFromInt(500), Position: 0},
		{ID: "2", Name: "Dr. B", Specialty: []string{"Homeopath"}, Fee: decimal.NewFromInt(300), Position: 1},
	}
}

func TestDoctorSource_FetchAll_CacheHit(t *testing.T) {
	f := newSourceFixture()
	f.cache.On("Get", mock.Anything).Return(storedDoctors(), true, nil).Once()

	doctors, err := f.source.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, storedDoctors(), doctors)
	f.assertExpectations(t)
	f.repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestDoctorSource_FetchAll_DatabaseFillsCache(t *testing.T) {
	f := newSourceFixture()
	f.cache.On("Get", mock.Anything).Return(nil, false, nil).Once()
	f.repo.On("FindAll", mock.Anything).Return(storedDoctors(), nil).Once()
	f.cache.On("Set", mock.Anything, storedDoctors(), testTTL).Return(nil).Once()

	doctors, err := f.source.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	f.assertExpectations(t)
}

func TestDoctorSource_FetchAll_RedisErrorFallsBack(t *testing.T) {
	f := newSourceFixture()
	f.cache.On("Get", mock.Anything).Return(nil, false, errors.New("redis down")).Once()
	f.repo.On("FindAll", mock.Anything).Return(storedDoctors(), nil).Once()
	f.cache.On("Set", mock.Anything, mock.Anything, testTTL).Return(errors.New("redis down")).Once()

	doctors, err := f.source.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, doctors, 2)
	f.assertExpectations(t)
}

func TestDoctorSource_FetchAll_SeedsFromFeedWhenEmpty(t *testing.T) {
	f := newSourceFixture()
	records := []dto.DoctorRecord{
		{ID: "d1", Name: "Dr. Ishaan Verma", Specialty: []string{"Dentist"}, Fee: decimal.NewFromInt(400), Experience: 6, VideoConsult: true},
		{ID: "d2", Name: "", Specialty: []string{"Dentist"}},
		{ID: "d3", Name: "Dr. Tara Bose", Fee: decimal.NewFromInt(-1)},
		{Name: "Dr. No Id", ClinicName: "City Clinic", Fee: decimal.NewFromInt(250), InClinic: true},
		{ID: "d1", Name: "Dr. Duplicate"},
	}

	f.cache.On("Get", mock.Anything).Return(nil, false, nil).Once()
	f.repo.On("FindAll", mock.Anything).Return([]entity.Doctor{}, nil).Once()
	f.feed.On("FetchRecords", mock.Anything).Return(records, nil).Once()
	f.repo.On("ReplaceAll", mock.Anything, mock.AnythingOfType("[]entity.Doctor")).Return(nil).Once()
	f.cache.On("Set", mock.Anything, mock.AnythingOfType("[]entity.Doctor"), testTTL).Return(nil).Once()

	doctors, err := f.source.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "d1", doctors[0].ID)
	assert.Equal(t, "Dr. Ishaan Verma", doctors[0].Name)
	assert.Equal(t, 0, doctors[0].Position)
	assert.Equal(t, "Dr. No Id", doctors[1].Name)
	assert.Len(t, doctors[1].ID, 36)
	assert.Equal(t, 1, doctors[1].Position)
	f.assertExpectations(t)
}

func TestDoctorSource_FetchAll_SeedFailureStillServesFeed(t *testing.T) {
	f := newSourceFixture()
	records := []dto.DoctorRecord{{ID: "d1", Name: "Dr. A", Fee: decimal.NewFromInt(100)}}

	f.cache.On("Get", mock.Anything).Return(nil, false, nil).Once()
	f.repo.On("FindAll", mock.Anything).Return(nil, nil).Once()
	f.feed.On("FetchRecords", mock.Anything).Return(records, nil).Once()
	f.repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("read-only transaction")).Once()

	doctors, err := f.source.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, doctors, 1)
	f.assertExpectations(t)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestDoctorSource_FetchAll_Failures(t *testing.T) {
	t.Run("database error", func(t *testing.T) {
		f := newSourceFixture()
		f.cache.On("Get", mock.Anything).Return(nil, false, nil).Once()
		f.repo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		_, err := f.source.FetchAll(context.Background())

		assert.ErrorIs(t, err, ErrSourceUnavailable)
		f.assertExpectations(t)
	})

	t.Run("feed error", func(t *testing.T) {
		f := newSourceFixture()
		f.cache.On("Get", mock.Anything).Return(nil, false, nil).Once()
		f.repo.On("FindAll", mock.Anything).Return(nil, nil).Once()
		f.feed.On("FetchRecords", mock.Anything).Return(nil, errors.New("status 503")).Once()

		_, err := f.source.FetchAll(context.Background())

		assert.ErrorIs(t, err, ErrSourceUnavailable)
		f.assertExpectations(t)
	})
}

func TestDoctorSource_Refresh(t *testing.T) {
	f := newSourceFixture()
	records := []dto.DoctorRecord{{ID: "d1", Name: "Dr. A", Fee: decimal.NewFromInt(100)}}

	f.feed.On("FetchRecords", mock.Anything).Return(records, nil).Once()
	f.repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(nil).Once()
	f.cache.On("Set", mock.Anything, mock.Anything, testTTL).Return(nil).Once()

	doctors, err := f.source.Refresh(context.Background())

	require.NoError(t, err)
	assert.Len(t, doctors, 1)
	f.assertExpectations(t)
}

func TestDoctorSource_RefreshStoreFailure(t *testing.T) {
	f := newSourceFixture()
	f.feed.On("FetchRecords", mock.Anything).Return([]dto.DoctorRecord{}, nil).Once()
	f.repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.source.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	f.assertExpectations(t)
}

func TestDoctorSource_Count(t *testing.T) {
	f := newSourceFixture()
	f.repo.On("Count", mock.Anything).Return(int64(42), nil).Once()

	count, err := f.source.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
