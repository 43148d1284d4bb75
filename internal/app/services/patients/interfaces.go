package patients

import (
	"context"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatients(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Patient, error)
	CountPatients(ctx context.Context, filter bson.M) (int64, error)
	UpdatePatientByID(ctx context.Context, id string, update bson.M) (matched int64, err error)
	UpdateVitalsByID(ctx context.Context, id string, vitals *models.Vitals) (modified int64, err error)
	DeletePatientByID(ctx context.Context, id string) (deleted int64, err error)
	Aggregate(ctx context.Context, pipeline []bson.M) ([]bson.M, error)
	EnsureIndexes(ctx context.Context) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error)
	SearchPatients(ctx context.Context, params url.Values) (*responses.PatientSearch, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) error
	UpdateVitals(ctx context.Context, patientID string, request *requests.Vitals) error
	DeletePatient(ctx context.Context, patientID string) error
}
