package utils

import (
	"medirecord-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	request := &requests.RegisterUser{
		Name:  "  Jane Doe  ",
		Email: " jane@example.com ",
		Role:  " Doctor ",
	}

	SanitizeRegisterUserRequest(request)

	assert.Equal(t, "Jane Doe", request.Name)
	assert.Equal(t, "jane@example.com", request.Email)
	assert.Equal(t, "doctor", request.Role)
}

func TestSanitizeCreatePatientRequest(t *testing.T) {
	request := &requests.CreatePatient{
		Name:           " Alice Johnson ",
		Gender:         " Female ",
		Contact:        " 555-0101 ",
		MedicalHistory: []string{" diabetes ", "asthma "},
	}

	SanitizeCreatePatientRequest(request)

	assert.Equal(t, "Alice Johnson", request.Name)
	assert.Equal(t, "female", request.Gender)
	assert.Equal(t, "555-0101", request.Contact)
	assert.Equal(t, []string{"diabetes", "asthma"}, request.MedicalHistory)
}

func TestSanitizeDeleteUserRequest(t *testing.T) {
	request := &requests.DeleteUser{Email: " gone@example.com "}

	SanitizeDeleteUserRequest(request)

	assert.Equal(t, "gone@example.com", request.Email)
}
