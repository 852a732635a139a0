package model

import "fmt"

type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "BOOKED"
	AppointmentStatusCanceled  AppointmentStatus = "CANCELED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// RegistrationFee is charged on every booking and never varies.
const RegistrationFee = 500.0

// Appointment references its patient and doctor by pointer: both live
// in the registry and may be shared across appointments. Date and Time
// are free-text tokens (date is expected to be Mon/Wed/Fri/Sat but is
// not validated).
type Appointment struct {
	ID              int               `json:"id"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Status          AppointmentStatus `json:"status"`
	Patient         *Patient          `json:"patient"`
	Doctor          *Doctor           `json:"doctor"`
	Treatment       Treatment         `json:"treatment"`
	RegistrationFee float64           `json:"registration_fee"`
}

func (a *Appointment) Details() string {
	return fmt.Sprintf("Appointment ID: %d, Date: %s, Time: %s, Status: %s, Patient: %s, Doctor: %s, Treatment: %s",
		a.ID, a.Date, a.Time, a.Status, a.Patient.Name, a.Doctor.Name, a.Treatment.Details())
}
