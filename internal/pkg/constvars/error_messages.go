package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"role":     "must be one of [admin, doctor, nurse, receptionist]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientRoleOnly                      = "%s access only"
	ErrClientInvalidPatientID              = "invalid patient id"
	ErrClientNothingToUpdate               = "nothing to update"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON into struct or other data types"
	ErrDevValidationFailed      = "validation failed"
	ErrDevMissingRequiredFields = "missing required fields"
	ErrDevEmptyUpdatePayload    = "update payload contains no fields"

	// Usecase messages
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevUserNotExists        = "user not exists in our system"
	ErrDevPatientNotExists     = "patient not exists in our system"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevFailedToHashPassword = "failed to hash password"

	// Authentication messages
	ErrDevAuthSigningMethod     = "unexpected signing method"
	ErrDevAuthTokenMissing      = "token missing"
	ErrDevAuthTokenMalformed    = "token malformed or signature mismatch"
	ErrDevAuthTokenExpired      = "token expired"
	ErrDevAuthHeaderMalformed   = "authorization header is not a bearer scheme/token pair"
	ErrDevAuthGenerateToken     = "failed to generate token"
	ErrDevAuthRoleDoesntMatch   = "request done by user with a different role than required"
	ErrDevAuthTooManyAttempts   = "login attempt rate exceeded"
	ErrDevAuthClaimsNotAttached = "session claims missing from request context"

	// Database messages
	ErrDevDBFailedToInsertDocument     = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument     = "failed to update document into database"
	ErrDevDBFailedToFindDocument       = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument     = "failed when do delete document on database"
	ErrDevDBFailedToCountDocuments     = "failed when counting documents on database"
	ErrDevDBFailedToIterateDocuments   = "failed when iterating documents from database"
	ErrDevDBFailedToAggregateDocuments = "failed when aggregating documents on database"
	ErrDevDBStringNotObjectID          = "given ID is not valid object ID"
	ErrDevServerDeadlineExceeded       = "server deadline exceeded while waiting for a collaborator"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
)
