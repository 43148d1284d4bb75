package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY     ContextKey = "request_id"
	CONTEXT_SESSION_CLAIMS_KEY ContextKey = "session_claims"
)

const (
	REQUEST_ID_PREFIX = "MDRC_SVC_"
)

const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
)

const (
	MongoCollectionUsers    = "users"
	MongoCollectionPatients = "patients"
)

const (
	URLParamPatientID = "patient_id"

	URLQueryParamName      = "name"
	URLQueryParamContact   = "contact"
	URLQueryParamCondition = "condition"
	URLQueryParamPage      = "page"
	URLQueryParamLimit     = "limit"
)

const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 5
)

const (
	RedisKeyConditionCounts = "analytics:conditions"
	RedisKeyGenderCounts    = "analytics:gender"
)
