package patients

import (
	"context"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/app/services/shared/redis"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
	"medirecord-service/internal/pkg/exceptions"
	"medirecord-service/internal/pkg/queries"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	RedisRepository   redis.RedisRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientMongoRepository PatientRepository, redisRepository redis.RedisRepository, logger *zap.Logger) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		RedisRepository:   redisRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	now := time.Now()
	patient := &models.Patient{
		PatientID:      uuid.New().String(),
		Name:           request.Name,
		Age:            request.Age,
		Gender:         request.Gender,
		Contact:        request.Contact,
		MedicalHistory: request.MedicalHistory,
		Vitals:         buildVitalsModel(request.Vitals),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	id, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	uc.invalidateAnalyticsCache(ctx)

	return &responses.CreatePatient{
		ID:        id,
		PatientID: patient.PatientID,
	}, nil
}

func (uc *patientUsecase) SearchPatients(ctx context.Context, params url.Values) (*responses.PatientSearch, error) {
	filter := queries.BuildPatientSearchFilter(params)
	page := queries.BuildPageRequest(params)

	total, err := uc.PatientRepository.CountPatients(ctx, filter)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.FindPatients(ctx, filter, int64(page.Skip), int64(page.Limit))
	if err != nil {
		return nil, err
	}

	results := make([]responses.Patient, 0, len(patients))
	for _, patient := range patients {
		results = append(results, buildPatientResponse(patient))
	}

	return &responses.PatientSearch{
		Page:    page.Page,
		Limit:   page.Limit,
		Total:   total,
		Results: results,
	}, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) error {
	update := bson.M{}
	if request.Name != "" {
		update["name"] = request.Name
	}
	if request.Age > 0 {
		update["age"] = request.Age
	}
	if request.Gender != "" {
		update["gender"] = request.Gender
	}
	if request.Contact != "" {
		update["contact"] = request.Contact
	}
	if len(request.MedicalHistory) > 0 {
		update["medical_history"] = request.MedicalHistory
	}
	if request.Vitals != nil {
		update["vitals"] = buildVitalsModel(request.Vitals)
	}
	if len(update) == 0 {
		return exceptions.ErrEmptyUpdate(nil)
	}
	update["updatedAt"] = time.Now()

	matched, err := uc.PatientRepository.UpdatePatientByID(ctx, patientID, update)
	if err != nil {
		return err
	}
	if matched == 0 {
		return exceptions.ErrPatientNotExist(nil)
	}
	uc.invalidateAnalyticsCache(ctx)
	return nil
}

func (uc *patientUsecase) UpdateVitals(ctx context.Context, patientID string, request *requests.Vitals) error {
	modified, err := uc.PatientRepository.UpdateVitalsByID(ctx, patientID, buildVitalsModel(request))
	if err != nil {
		return err
	}
	if modified == 0 {
		return exceptions.ErrPatientNotExist(nil)
	}
	return nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) error {
	deleted, err := uc.PatientRepository.DeletePatientByID(ctx, patientID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return exceptions.ErrPatientNotExist(nil)
	}
	uc.invalidateAnalyticsCache(ctx)
	return nil
}

// invalidateAnalyticsCache drops the cached aggregates after a mutation that
// can change them. Vitals updates are excluded since neither aggregate reads
// vitals. Cache failures only cost staleness until the TTL runs out.
func (uc *patientUsecase) invalidateAnalyticsCache(ctx context.Context) {
	for _, key := range []string{constvars.RedisKeyConditionCounts, constvars.RedisKeyGenderCounts} {
		if err := uc.RedisRepository.Delete(ctx, key); err != nil {
			uc.Log.Warn("analytics cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func buildVitalsModel(vitals *requests.Vitals) *models.Vitals {
	if vitals == nil {
		return nil
	}
	return &models.Vitals{
		BloodPressure:    vitals.BloodPressure,
		HeartRate:        vitals.HeartRate,
		Temperature:      vitals.Temperature,
		RespiratoryRate:  vitals.RespiratoryRate,
		OxygenSaturation: vitals.OxygenSaturation,
	}
}

func buildPatientResponse(patient models.Patient) responses.Patient {
	response := responses.Patient{
		PatientID:      patient.PatientID,
		Name:           patient.Name,
		Age:            patient.Age,
		Gender:         patient.Gender,
		Contact:        patient.Contact,
		MedicalHistory: patient.MedicalHistory,
	}
	if !patient.ID.IsZero() {
		response.ID = patient.ID.Hex()
	}
	if patient.Vitals != nil {
		response.Vitals = &responses.Vitals{
			BloodPressure:    patient.Vitals.BloodPressure,
			HeartRate:        patient.Vitals.HeartRate,
			Temperature:      patient.Vitals.Temperature,
			RespiratoryRate:  patient.Vitals.RespiratoryRate,
			OxygenSaturation: patient.Vitals.OxygenSaturation,
		}
	}
	return response
}
