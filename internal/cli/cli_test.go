package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository/memory"
	appointmentsvc "github.com/auroraskincare/clinic/internal/service/appointment"
	auditsvc "github.com/auroraskincare/clinic/internal/service/audit"
	billingsvc "github.com/auroraskincare/clinic/internal/service/billing"
	doctorsvc "github.com/auroraskincare/clinic/internal/service/doctor"
	patientsvc "github.com/auroraskincare/clinic/internal/service/patient"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

// runSession drives the menu with scripted input and returns everything
// it printed.
func runSession(t *testing.T, input string) string {
	t.Helper()

	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	m := metrics.New("test")
	auditor := auditsvc.NewService(memory.NewAuditStore())

	doctors := doctorsvc.NewService(memory.NewDoctorStore(), auditor, log)
	ctx := context.Background()
	require.NoError(t, doctors.Register(ctx, &model.Doctor{
		Name: "Dr. Ijlan", Email: "ijlan@example.com", ContactNumber: "0776778795", EmployeeID: "D001",
	}))
	require.NoError(t, doctors.Register(ctx, &model.Doctor{
		Name: "Dr. Brian", Email: "brian@example.com", ContactNumber: "0764517561", EmployeeID: "D002",
	}))

	patients := patientsvc.NewService(memory.NewPatientStore(), auditor, m, log)
	appointments := appointmentsvc.NewService(memory.NewAppointmentStore(), auditor, m, log)
	billing := billingsvc.NewService(auditor, m, log, 5*time.Minute)
	treatments := memory.NewTreatmentStore(model.DefaultTreatments())

	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, "Aurora Skin Care Clinic",
		patients, doctors, appointments, billing, treatments)
	require.NoError(t, c.Run(ctx))
	return out.String()
}

func TestRegisterBookInvoiceFlow(t *testing.T) {
	input := strings.Join([]string{
		"1",                // register patient
		"Amal Perera",      //
		"amal@example.com", //
		"0771234567",       //
		"123",              // NIC
		"2",                // make appointment
		"123",              // patient NIC
		"Mon",              //
		"10:00am",          //
		"1",                // Dr. Ijlan
		"1",                // Acne Treatment
		"9",                // generate invoice
		"1",                // appointment ID
		"1",                // Acne Treatment
		"10",               // exit
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "Patient Registered Successfully.")
	assert.Contains(t, out, "Appointment booked successfully.")
	assert.Contains(t, out, "Appointment ID: 1,")
	assert.Contains(t, out, "Status: BOOKED")
	assert.Contains(t, out, "Patient: Amal Perera")
	assert.Contains(t, out, "Total:             LKR 2818.75")
	assert.Contains(t, out, "Exiting the system. Goodbye!")
}

func TestRegisterWithEmptyFieldPrintsMessage(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"", // missing name
		"amal@example.com",
		"0771234567",
		"123",
		"7", // the patient was not stored
		"123",
		"10",
	}, "\n") + "\n"

	out := runSession(t, input)

	assert.Contains(t, out, "All fields are required. Please try again.")
	assert.Contains(t, out, "Patient not found. Please check the name or NIC and try again.")
}

func TestBookingUnknownPatientAsksToRegister(t *testing.T) {
	input := strings.Join([]string{
		"2",
		"999", // unknown NIC
		"10",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Patient not found. Please register the patient first.")
}

func TestDoctorSelectionOutOfRange(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"Amal Perera",
		"amal@example.com",
		"0771234567",
		"123",
		"2",
		"123",
		"Mon",
		"10:00am",
		"5", // only two doctors
		"10",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Invalid selection. Please try again.")
}

func TestCancelAndSearchFlow(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"Amal Perera",
		"amal@example.com",
		"0771234567",
		"123",
		"2",
		"123",
		"Mon",
		"10:00am",
		"1",
		"1",
		"8", // cancel
		"1",
		"5", // search by name
		"amal perera",
		"10",
	}, "\n") + "\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Appointment canceled.")
	assert.Contains(t, out, "Status: CANCELED")
}

func TestInvalidMenuInput(t *testing.T) {
	input := "abc\n42\n10\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Invalid input. Please enter a number.")
	assert.Contains(t, out, "Invalid option, please try again.")
}

func TestSearchDoctorByID(t *testing.T) {
	input := "6\nd002\n10\n"

	out := runSession(t, input)
	assert.Contains(t, out, "Doctor Found: Employee ID: D002, Name: Dr. Brian")
}
