package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository"
	appointmentsvc "github.com/auroraskincare/clinic/internal/service/appointment"
	billingsvc "github.com/auroraskincare/clinic/internal/service/billing"
	doctorsvc "github.com/auroraskincare/clinic/internal/service/doctor"
	patientsvc "github.com/auroraskincare/clinic/internal/service/patient"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
)

// CLI is the interactive menu front-end. It owns no state of its own:
// every action resolves references through the services and prints the
// result. All errors are messages back to the menu, never fatal.
type CLI struct {
	scanner      *bufio.Scanner
	out          io.Writer
	clinicName   string
	patients     *patientsvc.Service
	doctors      *doctorsvc.Service
	appointments *appointmentsvc.Service
	billing      *billingsvc.Service
	treatments   repository.TreatmentRepository
}

func New(in io.Reader, out io.Writer, clinicName string,
	patients *patientsvc.Service, doctors *doctorsvc.Service,
	appointments *appointmentsvc.Service, billing *billingsvc.Service,
	treatments repository.TreatmentRepository) *CLI {
	return &CLI{
		scanner:      bufio.NewScanner(in),
		out:          out,
		clinicName:   clinicName,
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		billing:      billing,
		treatments:   treatments,
	}
}

// Run loops over the menu until the exit option or end of input.
func (c *CLI) Run(ctx context.Context) error {
	for {
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			return nil
		}
		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}

		switch option {
		case 1:
			c.registerPatient(ctx)
		case 2:
			c.makeAppointment(ctx)
		case 3:
			c.updateAppointment(ctx)
		case 4:
			c.viewAppointmentsByDate(ctx)
		case 5:
			c.searchAppointment(ctx)
		case 6:
			c.searchDoctor(ctx)
		case 7:
			c.searchPatient(ctx)
		case 8:
			c.cancelAppointment(ctx)
		case 9:
			c.generateInvoice(ctx)
		case 10:
			fmt.Fprintln(c.out, "Exiting the system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option, please try again.")
		}
	}
}

func (c *CLI) printMenu() {
	rule := strings.Repeat("=", 40)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintf(c.out, "       Welcome to %s\n", c.clinicName)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, "1. Register Patient")
	fmt.Fprintln(c.out, "2. Make Appointment")
	fmt.Fprintln(c.out, "3. Update Appointment Details")
	fmt.Fprintln(c.out, "4. View Appointment Details by Date")
	fmt.Fprintln(c.out, "5. Search for Appointment by Name or ID")
	fmt.Fprintln(c.out, "6. Search Doctor by Name or ID")
	fmt.Fprintln(c.out, "7. Search Patient by Name or NIC")
	fmt.Fprintln(c.out, "8. Cancel Appointment")
	fmt.Fprintln(c.out, "9. Generate Invoice")
	fmt.Fprintln(c.out, "10. Exit")
	fmt.Fprint(c.out, "Select an option: ")
}

func (c *CLI) registerPatient(ctx context.Context) {
	req := &model.RegisterPatientRequest{
		Name:          c.prompt("Enter Patient Name: "),
		Email:         c.prompt("Enter Email: "),
		ContactNumber: c.prompt("Enter Contact Number: "),
		NIC:           c.prompt("Enter NIC: "),
	}

	if _, err := c.patients.Register(ctx, req); err != nil {
		if apperrors.IsValidation(err) {
			fmt.Fprintln(c.out, "All fields are required. Please try again.")
			return
		}
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Patient Registered Successfully.")
}

func (c *CLI) makeAppointment(ctx context.Context) {
	nic := c.prompt("Enter Patient NIC: ")
	patient, err := c.patients.FindByNIC(ctx, nic)
	if err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Patient not found. Please register the patient first.")
			return
		}
		c.printError(err)
		return
	}

	date := c.prompt("Enter Date (| Mon | Wed | Fri | Sat |): ")
	timeSlot := c.prompt("Enter Time (e.g., 10:00am): ")

	doctor, err := c.selectDoctor(ctx)
	if err != nil {
		c.printError(err)
		return
	}

	treatment, err := c.selectTreatment(ctx)
	if err != nil {
		c.printError(err)
		return
	}

	apt, err := c.appointments.Book(ctx, date, timeSlot, patient, doctor, treatment)
	if err != nil {
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "Appointment booked successfully.")
	fmt.Fprintln(c.out, "Appointment Details: "+apt.Details())
}

func (c *CLI) updateAppointment(ctx context.Context) {
	id, err := c.promptInt("Enter Appointment ID to update: ")
	if err != nil {
		c.printError(err)
		return
	}

	newDate := c.prompt("Enter New Date (| Mon | Wed | Fri | Sat |): ")
	newTime := c.prompt("Enter New Time (e.g., 10:00am): ")

	apt, err := c.appointments.Update(ctx, id, newDate, newTime)
	if err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Appointment not found. Please check the ID and try again.")
			return
		}
		c.printError(err)
		return
	}

	fmt.Fprintln(c.out, "Appointment updated successfully.")
	fmt.Fprintln(c.out, "Updated Appointment Details: "+apt.Details())
}

func (c *CLI) viewAppointmentsByDate(ctx context.Context) {
	date := c.prompt("Enter Date (| Mon | Wed | Fri | Sat |) to filter appointments: ")

	appointments, err := c.appointments.ListByDate(ctx, date)
	if err != nil {
		c.printError(err)
		return
	}
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "No appointments found for the date: "+date)
		return
	}
	for _, apt := range appointments {
		fmt.Fprintln(c.out, apt.Details())
	}
}

func (c *CLI) searchAppointment(ctx context.Context) {
	input := c.prompt("Enter Appointment ID or Patient Name to search: ")

	if id, err := strconv.Atoi(input); err == nil {
		apt, err := c.appointments.FindByID(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				fmt.Fprintf(c.out, "No appointment found with ID: %d\n", id)
				return
			}
			c.printError(err)
			return
		}
		fmt.Fprintln(c.out, apt.Details())
		return
	}

	appointments, err := c.appointments.FindByPatientName(ctx, input)
	if err != nil {
		c.printError(err)
		return
	}
	if len(appointments) == 0 {
		fmt.Fprintln(c.out, "No appointments found for patient: "+input)
		return
	}
	for _, apt := range appointments {
		fmt.Fprintln(c.out, apt.Details())
	}
}

func (c *CLI) searchDoctor(ctx context.Context) {
	query := c.prompt("Enter Doctor Name or ID (D***): ")

	doctor, err := c.doctors.Search(ctx, query)
	if err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Doctor not found. Please check the name or ID and try again.")
			return
		}
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Doctor Found: "+doctor.EmployeeDetails())
}

func (c *CLI) searchPatient(ctx context.Context) {
	query := c.prompt("Enter Patient Name or NIC to search: ")

	patient, err := c.patients.Search(ctx, query)
	if err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Patient not found. Please check the name or NIC and try again.")
			return
		}
		c.printError(err)
		return
	}
	fmt.Fprintf(c.out, "Patient Found: %s, NIC: %s\n", patient.ContactInfo(), patient.NIC)
}

func (c *CLI) cancelAppointment(ctx context.Context) {
	id, err := c.promptInt("Enter Appointment ID to cancel: ")
	if err != nil {
		c.printError(err)
		return
	}

	if err := c.appointments.Cancel(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Appointment not found.")
			return
		}
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out, "Appointment canceled.")
}

func (c *CLI) generateInvoice(ctx context.Context) {
	id, err := c.promptInt("Enter Appointment ID: ")
	if err != nil {
		c.printError(err)
		return
	}

	apt, err := c.appointments.FindByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			fmt.Fprintln(c.out, "Appointment not found.")
			return
		}
		c.printError(err)
		return
	}

	treatment, err := c.selectTreatment(ctx)
	if err != nil {
		c.printError(err)
		return
	}

	invoice, err := c.billing.GenerateInvoice(ctx, apt, treatment)
	if err != nil {
		c.printError(err)
		return
	}
	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, c.billing.Render(invoice))
}

func (c *CLI) selectDoctor(ctx context.Context) (*model.Doctor, error) {
	doctors, err := c.doctors.List(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(c.out, "Select Doctor:")
	for i, d := range doctors {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, d.Name)
	}

	choice, err := c.promptInt(fmt.Sprintf("Select Doctor (1-%d): ", len(doctors)))
	if err != nil {
		return nil, err
	}
	if choice < 1 || choice > len(doctors) {
		return nil, apperrors.SelectionOutOfRange("invalid doctor selection")
	}
	return doctors[choice-1], nil
}

func (c *CLI) selectTreatment(ctx context.Context) (model.Treatment, error) {
	treatments, err := c.treatments.List(ctx)
	if err != nil {
		return model.Treatment{}, err
	}

	fmt.Fprintln(c.out, "Select Treatment Type:")
	for i, t := range treatments {
		fmt.Fprintf(c.out, "%d: %s\n", i+1, t.Details())
	}

	choice, err := c.promptInt(fmt.Sprintf("Select Treatment (1-%d): ", len(treatments)))
	if err != nil {
		return model.Treatment{}, err
	}
	if choice < 1 || choice > len(treatments) {
		return model.Treatment{}, apperrors.SelectionOutOfRange("invalid treatment selection")
	}
	return treatments[choice-1], nil
}

func (c *CLI) prompt(label string) string {
	fmt.Fprint(c.out, label)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *CLI) promptInt(label string) (int, error) {
	input := c.prompt(label)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, apperrors.Validation("please enter a number", err)
	}
	return n, nil
}

func (c *CLI) readLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

func (c *CLI) printError(err error) {
	switch {
	case apperrors.IsValidation(err):
		fmt.Fprintln(c.out, "Invalid input: "+err.Error())
	case apperrors.IsConflict(err):
		fmt.Fprintln(c.out, "Cannot proceed: "+err.Error())
	case apperrors.IsSelectionOutOfRange(err):
		fmt.Fprintln(c.out, "Invalid selection. Please try again.")
	case apperrors.IsNotFound(err):
		fmt.Fprintln(c.out, "Not found: "+err.Error())
	default:
		fmt.Fprintln(c.out, "Something went wrong: "+err.Error())
	}
}
