package model

import "fmt"

// Patient is registered dynamically through the registry. NIC is the
// natural unique key and is immutable after creation.
type Patient struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	NIC           string `json:"nic"`
}

func (p *Patient) ContactInfo() string {
	return fmt.Sprintf("Name: %s, Email: %s, Contact: %s", p.Name, p.Email, p.ContactNumber)
}

// RegisterPatientRequest carries the non-empty-field contract for
// registration. No format validation beyond required: email and NIC are
// accepted as supplied.
type RegisterPatientRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	NIC           string `json:"nic" validate:"required"`
}
