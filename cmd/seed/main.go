package main

import (
	"context"
	"log"
	"medirecord-service/internal/app/config"
	"medirecord-service/internal/app/drivers/database"
	"medirecord-service/internal/app/models"
	"medirecord-service/internal/app/services/patients"
	"medirecord-service/internal/app/services/users"
	"medirecord-service/internal/pkg/constvars"
	"medirecord-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the database with an admin account and a handful of sample
// patients so a fresh deployment has something to log in with.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoDB := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepository := users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	patientRepository := patients.NewPatientMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	if err := patientRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure patient indexes: %v", err)
	}

	seedAdmin(ctx, userRepository)
	seedPatients(ctx, patientRepository)

	log.Println("Seeding complete")
}

func seedAdmin(ctx context.Context, userRepository users.UserRepository) {
	adminEmail := utils.GetEnvString("ADMIN_EMAIL", "admin@medirecord.local")
	adminPassword := utils.GetEnvString("ADMIN_PASSWORD", "")
	if adminPassword == "" {
		log.Fatalf("ADMIN_PASSWORD must be set")
	}

	existing, err := userRepository.FindByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("Failed to look up admin user: %v", err)
	}
	if existing != nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
		return
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	now := time.Now()
	_, err = userRepository.CreateUser(ctx, &models.User{
		Name:     utils.GetEnvString("ADMIN_NAME", "System Administrator"),
		Email:    adminEmail,
		Password: hashed,
		Role:     constvars.RoleAdmin,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s", adminEmail)
}

func seedPatients(ctx context.Context, patientRepository patients.PatientRepository) {
	total, err := patientRepository.CountPatients(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count patients: %v", err)
	}
	if total > 0 {
		log.Printf("Patients collection already has %d documents, skipping", total)
		return
	}

	now := time.Now()
	samples := []models.Patient{
		{
			Name:           "Alice Johnson",
			Age:            34,
			Gender:         "female",
			Contact:        "555-0101",
			MedicalHistory: []string{"diabetes", "hypertension"},
			Vitals: &models.Vitals{
				BloodPressure: "130/85",
				HeartRate:     78,
				Temperature:   36.8,
			},
		},
		{
			Name:           "Robert Chen",
			Age:            52,
			Gender:         "male",
			Contact:        "555-0102",
			MedicalHistory: []string{"asthma"},
		},
		{
			Name:           "Maria Garcia",
			Age:            41,
			Gender:         "female",
			Contact:        "555-0103",
			MedicalHistory: []string{"hypertension"},
		},
		{
			Name:    "Sam Okafor",
			Age:     27,
			Gender:  "other",
			Contact: "555-0104",
		},
	}

	for i := range samples {
		samples[i].PatientID = uuid.New().String()
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
		if _, err := patientRepository.CreatePatient(ctx, &samples[i]); err != nil {
			log.Fatalf("Failed to seed patient %s: %v", samples[i].Name, err)
		}
	}

	log.Printf("Seeded %d sample patients", len(samples))
}
