package request

import (
	"strings"

	"reborn_api/internal/domain/entities"
)

// BirthCertificateRequest is the body of POST /documents/reborns/{reborn_id}/birth-certificate.
// Every certificate field is optional and falls back to a default when blank.
type BirthCertificateRequest struct {
	TemplateID         string `json:"template_id" binding:"required" example:"6f1b3c2e-8a4d-4e0f-9b1a-1c2d3e4f5a01"`
	Format             string `json:"format" example:"png"`
	Hospital           string `json:"hospital" example:"Hospital das Bonecas"`
	Doctor             string `json:"doctor" example:"Dr. Reborn Silva"`
	RegistrationNumber string `json:"registration_number" example:"REG-2024-001"`
	MotherName         string `json:"mother_name" example:"Maria Silva"`
	City               string `json:"city" example:"São Paulo"`
	State              string `json:"state" example:"SP"`
}

// ResolveFormat defaults to png when the client omits the format.
func (r BirthCertificateRequest) ResolveFormat() entities.DocumentFormat {
	f := strings.ToLower(strings.TrimSpace(r.Format))
	if f == "" {
		return entities.DocumentFormatPNG
	}
	return entities.DocumentFormat(f)
}

func (r BirthCertificateRequest) Fields() entities.CertificateFields {
	return entities.CertificateFields{
		Hospital:           strings.TrimSpace(r.Hospital),
		Doctor:             strings.TrimSpace(r.Doctor),
		RegistrationNumber: strings.TrimSpace(r.RegistrationNumber),
		MotherName:         strings.TrimSpace(r.MotherName),
		City:               strings.TrimSpace(r.City),
		State:              strings.TrimSpace(r.State),
	}
}
