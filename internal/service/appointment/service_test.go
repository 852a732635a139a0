package appointment

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository/memory"
	"github.com/auroraskincare/clinic/internal/service/audit"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

type fixture struct {
	svc        *Service
	metrics    *metrics.Metrics
	auditStore *memory.AuditStore
	patient    *model.Patient
	doctor     *model.Doctor
	treatment  model.Treatment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	auditStore := memory.NewAuditStore()
	m := metrics.New("test")
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return &fixture{
		svc:        NewService(memory.NewAppointmentStore(), audit.NewService(auditStore), m, log),
		metrics:    m,
		auditStore: auditStore,
		patient:    &model.Patient{Name: "Amal Perera", Email: "amal@example.com", ContactNumber: "0771234567", NIC: "991234567V"},
		doctor:     &model.Doctor{Name: "Dr. Ijlan", Email: "ijlan@example.com", ContactNumber: "0776778795", EmployeeID: "D001"},
		treatment:  model.Treatment{ID: 1, Name: "Acne Treatment", Price: 2750.00},
	}
}

func (f *fixture) book(t *testing.T, date, timeSlot string) *model.Appointment {
	t.Helper()
	apt, err := f.svc.Book(context.Background(), date, timeSlot, f.patient, f.doctor, f.treatment)
	require.NoError(t, err)
	return apt
}

func TestBookAssignsIncreasingIDsFromOne(t *testing.T) {
	f := newFixture(t)

	for want := 1; want <= 4; want++ {
		apt := f.book(t, "Mon", "10:00am")
		assert.Equal(t, want, apt.ID)
		assert.Equal(t, model.AppointmentStatusBooked, apt.Status)
		assert.Equal(t, 500.0, apt.RegistrationFee)
	}

	snapshot, err := f.metrics.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 4.0, snapshot["test_appointments_booked_total"])
}

func TestBookRequiresResolvedReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, "Mon", "10:00am", nil, f.doctor, f.treatment)
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.svc.Book(ctx, "Mon", "10:00am", f.patient, nil, f.treatment)
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.svc.Book(ctx, "Mon", "10:00am", f.patient, f.doctor, model.Treatment{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestBookPermitsDoubleBooking(t *testing.T) {
	f := newFixture(t)

	// Same doctor, same slot: both succeed, no conflict check.
	first := f.book(t, "Mon", "10:00am")
	second := f.book(t, "Mon", "10:00am")
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUpdateChangesOnlyDateAndTime(t *testing.T) {
	f := newFixture(t)
	apt := f.book(t, "Mon", "10:00am")

	updated, err := f.svc.Update(context.Background(), apt.ID, "Wed", "2:00pm")
	require.NoError(t, err)

	assert.Equal(t, "Wed", updated.Date)
	assert.Equal(t, "2:00pm", updated.Time)
	assert.Equal(t, apt.ID, updated.ID)
	assert.Equal(t, model.AppointmentStatusBooked, updated.Status)
	assert.Same(t, f.patient, updated.Patient)
	assert.Same(t, f.doctor, updated.Doctor)
	assert.Equal(t, f.treatment, updated.Treatment)
}

func TestUpdateIgnoresStatus(t *testing.T) {
	f := newFixture(t)
	apt := f.book(t, "Mon", "10:00am")

	require.NoError(t, f.svc.Cancel(context.Background(), apt.ID))

	// A canceled appointment can still be rescheduled.
	updated, err := f.svc.Update(context.Background(), apt.ID, "Sat", "9:00am")
	require.NoError(t, err)
	assert.Equal(t, "Sat", updated.Date)
	assert.Equal(t, model.AppointmentStatusCanceled, updated.Status)
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), 42, "Mon", "10:00am")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCancelIsIdempotent(t *testing.T) {
	f := newFixture(t)
	apt := f.book(t, "Mon", "10:00am")
	ctx := context.Background()

	require.NoError(t, f.svc.Cancel(ctx, apt.ID))
	assert.Equal(t, model.AppointmentStatusCanceled, apt.Status)

	require.NoError(t, f.svc.Cancel(ctx, apt.ID))
	assert.Equal(t, model.AppointmentStatusCanceled, apt.Status)

	assert.True(t, apperrors.IsNotFound(f.svc.Cancel(ctx, 99)))
}

func TestCompleteOnlyFromBooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt := f.book(t, "Mon", "10:00am")
	require.NoError(t, f.svc.Complete(ctx, apt.ID))
	assert.Equal(t, model.AppointmentStatusCompleted, apt.Status)

	// COMPLETED is terminal.
	assert.True(t, apperrors.IsConflict(f.svc.Complete(ctx, apt.ID)))

	// So is CANCELED.
	canceled := f.book(t, "Wed", "11:00am")
	require.NoError(t, f.svc.Cancel(ctx, canceled.ID))
	assert.True(t, apperrors.IsConflict(f.svc.Complete(ctx, canceled.ID)))
}

func TestFindByIDUnissuedAndNonPositive(t *testing.T) {
	f := newFixture(t)
	f.book(t, "Mon", "10:00am")
	ctx := context.Background()

	got, err := f.svc.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	for _, id := range []int{0, -1, 2, 100} {
		_, err := f.svc.FindByID(ctx, id)
		assert.True(t, apperrors.IsNotFound(err), "id %d", id)
	}
}

func TestFindByPatientNameReturnsAllMatches(t *testing.T) {
	f := newFixture(t)
	f.book(t, "Mon", "10:00am")
	f.book(t, "Wed", "11:00am")

	other := *f
	other.patient = &model.Patient{Name: "Nimal Silva", NIC: "881234567V"}
	other.book(t, "Mon", "10:00am")

	got, err := f.svc.FindByPatientName(context.Background(), "amal perera")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestListByDateInsertionOrder(t *testing.T) {
	f := newFixture(t)
	f.book(t, "Mon", "10:00am")
	f.book(t, "Wed", "11:00am")
	f.book(t, "Mon", "3:00pm")

	got, err := f.svc.ListByDate(context.Background(), "Mon")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	empty, err := f.svc.ListByDate(context.Background(), "mon")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMutationsAreAudited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt := f.book(t, "Mon", "10:00am")
	_, err := f.svc.Update(ctx, apt.ID, "Wed", "2:00pm")
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, apt.ID))

	events, err := f.auditStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "book", events[0].Action)
	assert.Equal(t, "update", events[1].Action)
	assert.Equal(t, "cancel", events[2].Action)
	for _, e := range events {
		assert.Equal(t, "appointment", e.EntityType)
		assert.Equal(t, "1", e.EntityKey)
		assert.NotEqual(t, e.ID.String(), "00000000-0000-0000-0000-000000000000")
	}
}
