package utils

import (
	"medirecord-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(input.Email)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Contact = strings.TrimSpace(input.Contact)
	input.MedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.MedicalHistory)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(strings.ToLower(input.Gender))
	input.Contact = strings.TrimSpace(input.Contact)
	input.MedicalHistory = cleanWhiteSpaceFromEachStringOfAnArray(input.MedicalHistory)
}

func SanitizeDeleteUserRequest(input *requests.DeleteUser) {
	input.Email = strings.TrimSpace(input.Email)
}
