package requests

type Vitals struct {
	BloodPressure    string  `json:"blood_pressure" validate:"omitempty"`
	HeartRate        int     `json:"heart_rate" validate:"omitempty,gt=0"`
	Temperature      float64 `json:"temperature" validate:"omitempty,gt=0"`
	RespiratoryRate  int     `json:"respiratory_rate" validate:"omitempty,gt=0"`
	OxygenSaturation float64 `json:"oxygen_saturation" validate:"omitempty,gt=0,lte=100"`
}

type CreatePatient struct {
	Name           string   `json:"name" validate:"required"`
	Age            int      `json:"age" validate:"required,gt=0"`
	Gender         string   `json:"gender" validate:"required,oneof=male female other"`
	Contact        string   `json:"contact" validate:"required"`
	MedicalHistory []string `json:"medical_history" validate:"omitempty,dive,required"`
	Vitals         *Vitals  `json:"vitals" validate:"omitempty"`
}

type UpdatePatient struct {
	Name           string   `json:"name" validate:"omitempty"`
	Age            int      `json:"age" validate:"omitempty,gt=0"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Contact        string   `json:"contact" validate:"omitempty"`
	MedicalHistory []string `json:"medical_history" validate:"omitempty,dive,required"`
	Vitals         *Vitals  `json:"vitals" validate:"omitempty"`
}
