package model

import "fmt"

// Doctor is seeded at startup. EmployeeID is the natural unique key.
// Schedule is carried for forward compatibility but never populated.
type Doctor struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	ContactNumber string   `json:"contact_number"`
	EmployeeID    string   `json:"employee_id"`
	Schedule      []string `json:"schedule,omitempty"`
}

func (d *Doctor) ContactInfo() string {
	return fmt.Sprintf("Name: %s, Email: %s, Contact: %s", d.Name, d.Email, d.ContactNumber)
}

func (d *Doctor) EmployeeDetails() string {
	return fmt.Sprintf("Employee ID: %s, %s", d.EmployeeID, d.ContactInfo())
}
