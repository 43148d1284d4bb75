package responses

type CreatePatient struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
}

type Patient struct {
	ID             string   `json:"id,omitempty"`
	PatientID      string   `json:"patient_id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Contact        string   `json:"contact"`
	MedicalHistory []string `json:"medical_history"`
	Vitals         *Vitals  `json:"vitals,omitempty"`
}

type Vitals struct {
	BloodPressure    string  `json:"blood_pressure,omitempty"`
	HeartRate        int     `json:"heart_rate,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	RespiratoryRate  int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation float64 `json:"oxygen_saturation,omitempty"`
}

type PatientSearch struct {
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int64     `json:"total"`
	Results []Patient `json:"results"`
}
