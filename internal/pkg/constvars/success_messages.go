package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// User-related messages
	UserCreatedSuccess = "user registered successfully"
	UserDeletedSuccess = "user deleted successfully"
	UserListSuccess    = "users fetched successfully"

	// Auth messages
	LoginSuccess = "successfully login"

	// Patient-related messages
	PatientCreatedSuccess = "patient added successfully"
	PatientUpdatedSuccess = "patient record updated successfully"
	PatientDeletedSuccess = "patient deleted successfully"
	PatientSearchSuccess  = "patients fetched successfully"
	VitalsUpdatedSuccess  = "vitals updated successfully"

	// Analytics messages
	AnalyticsSuccess = "analytics fetched successfully"
)
