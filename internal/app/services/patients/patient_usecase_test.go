package patients

import (
	"context"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/exceptions"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindPatients(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Patient, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) CountPatients(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatientByID(ctx context.Context, id string, update bson.M) (int64, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UpdateVitalsByID(ctx context.Context, id string, vitals *models.Vitals) (int64, error) {
	args := m.Called(ctx, id, vitals)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) DeletePatientByID(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error) {
	args := m.Called(ctx, pipeline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockPatientRepository) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestPatientUsecase(mockRepo *MockPatientRepository) (PatientUsecase, *MockRedisRepository) {
	mockRedis := new(MockRedisRepository)
	mockRedis.On("Delete", mock.Anything, mock.Anything).Return(nil)
	return NewPatientUsecase(mockRepo, mockRedis, zap.NewNop()), mockRedis
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("CreatePatient", mock.Anything, mock.AnythingOfType("*models.Patient")).Return("mongo-id-1", nil)

	usecase, mockRedis := newTestPatientUsecase(mockRepo)
	result, err := usecase.CreatePatient(context.Background(), &requests.CreatePatient{
		Name:           "Alice Johnson",
		Age:            34,
		Gender:         "female",
		Contact:        "555-0101",
		MedicalHistory: []string{"diabetes"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "mongo-id-1", result.ID)
	assert.NotEmpty(t, result.PatientID)

	stored := mockRepo.Calls[0].Arguments.Get(1).(*models.Patient)
	assert.Equal(t, result.PatientID, stored.PatientID)
	assert.False(t, stored.CreatedAt.IsZero())

	mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyConditionCounts)
	mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyGenderCounts)
}

func TestPatientUsecase_SearchPatients(t *testing.T) {
	t.Run("Maps filter, pagination and results", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("CountPatients", mock.Anything, mock.Anything).Return(int64(12), nil)
		mockRepo.On("FindPatients", mock.Anything, mock.Anything, int64(5), int64(5)).Return([]models.Patient{
			{PatientID: "p-1", Name: "Alice Johnson", Age: 34, Gender: "female", Contact: "555-0101"},
		}, nil)

		usecase, _ := newTestPatientUsecase(mockRepo)
		params := url.Values{"name": {"ali"}, "page": {"2"}, "limit": {"5"}}
		result, err := usecase.SearchPatients(context.Background(), params)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, 5, result.Limit)
		assert.Equal(t, int64(12), result.Total)
		assert.Len(t, result.Results, 1)
		assert.Equal(t, "Alice Johnson", result.Results[0].Name)

		filter := mockRepo.Calls[0].Arguments.Get(1).(bson.M)
		assert.Contains(t, filter, "name")
	})

	t.Run("No matches yields empty results, not nil error", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("CountPatients", mock.Anything, mock.Anything).Return(int64(0), nil)
		mockRepo.On("FindPatients", mock.Anything, mock.Anything, int64(0), int64(5)).Return([]models.Patient{}, nil)

		usecase, _ := newTestPatientUsecase(mockRepo)
		result, err := usecase.SearchPatients(context.Background(), url.Values{"name": {"nobody"}})

		assert.NoError(t, err)
		assert.Empty(t, result.Results)
		assert.Equal(t, int64(0), result.Total)
	})
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	t.Run("Only provided fields enter the update", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("UpdatePatientByID", mock.Anything, "p-1", mock.Anything).Return(int64(1), nil)

		usecase, mockRedis := newTestPatientUsecase(mockRepo)
		err := usecase.UpdatePatient(context.Background(), "p-1", &requests.UpdatePatient{
			Contact: "555-0199",
		})

		assert.NoError(t, err)
		update := mockRepo.Calls[0].Arguments.Get(2).(bson.M)
		assert.Equal(t, "555-0199", update["contact"])
		assert.Contains(t, update, "updatedAt")
		assert.NotContains(t, update, "name")
		assert.NotContains(t, update, "age")
		mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyConditionCounts)
		mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyGenderCounts)
	})

	t.Run("Empty update is rejected before storage", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)

		usecase, _ := newTestPatientUsecase(mockRepo)
		err := usecase.UpdatePatient(context.Background(), "p-1", &requests.UpdatePatient{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "UpdatePatientByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown patient is not found", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("UpdatePatientByID", mock.Anything, "missing", mock.Anything).Return(int64(0), nil)

		usecase, mockRedis := newTestPatientUsecase(mockRepo)
		err := usecase.UpdatePatient(context.Background(), "missing", &requests.UpdatePatient{Name: "X"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
		mockRedis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPatientUsecase_UpdateVitals(t *testing.T) {
	t.Run("Stores vitals for an existing patient", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("UpdateVitalsByID", mock.Anything, "p-1", mock.AnythingOfType("*models.Vitals")).Return(int64(1), nil)

		usecase, mockRedis := newTestPatientUsecase(mockRepo)
		err := usecase.UpdateVitals(context.Background(), "p-1", &requests.Vitals{
			BloodPressure: "120/80",
			HeartRate:     72,
		})

		assert.NoError(t, err)
		vitals := mockRepo.Calls[0].Arguments.Get(2).(*models.Vitals)
		assert.Equal(t, "120/80", vitals.BloodPressure)
		assert.Equal(t, 72, vitals.HeartRate)

		// Vitals feed neither aggregate, so the cache stays put.
		mockRedis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown patient is not found", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("UpdateVitalsByID", mock.Anything, "missing", mock.AnythingOfType("*models.Vitals")).Return(int64(0), nil)

		usecase, _ := newTestPatientUsecase(mockRepo)
		err := usecase.UpdateVitals(context.Background(), "missing", &requests.Vitals{HeartRate: 72})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestPatientUsecase_DeletePatient(t *testing.T) {
	t.Run("Deletes an existing patient", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("DeletePatientByID", mock.Anything, "p-1").Return(int64(1), nil)

		usecase, mockRedis := newTestPatientUsecase(mockRepo)
		assert.NoError(t, usecase.DeletePatient(context.Background(), "p-1"))

		mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyConditionCounts)
		mockRedis.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyGenderCounts)
	})

	t.Run("Unknown patient is not found", func(t *testing.T) {
		mockRepo := new(MockPatientRepository)
		mockRepo.On("DeletePatientByID", mock.Anything, "missing").Return(int64(0), nil)

		usecase, mockRedis := newTestPatientUsecase(mockRepo)
		err := usecase.DeletePatient(context.Background(), "missing")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
		mockRedis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
