package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Vitals struct {
	BloodPressure    string  `bson:"blood_pressure,omitempty"`
	HeartRate        int     `bson:"heart_rate,omitempty"`
	Temperature      float64 `bson:"temperature,omitempty"`
	RespiratoryRate  int     `bson:"respiratory_rate,omitempty"`
	OxygenSaturation float64 `bson:"oxygen_saturation,omitempty"`
}

type Patient struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	PatientID      string             `bson:"patient_id"`
	Name           string             `bson:"name"`
	Age            int                `bson:"age"`
	Gender         string             `bson:"gender"`
	Contact        string             `bson:"contact"`
	MedicalHistory []string           `bson:"medical_history"`
	Vitals         *Vitals            `bson:"vitals,omitempty"`
	TimeModel      `bson:",inline"`
}
