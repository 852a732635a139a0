package billing

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/service/audit"
	apperrors "github.com/auroraskincare/clinic/pkg/errors"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

// Service computes tax-inclusive totals and renders invoices. It owns
// the invoice ID counter: IDs start at 1 and are never reused.
type Service struct {
	mu          sync.Mutex
	nextID      int
	renderCache *cache.Cache
	auditor     *audit.Service
	metrics     *metrics.Metrics
	logger      *logger.Logger
}

func NewService(auditor *audit.Service, m *metrics.Metrics, log *logger.Logger, renderTTL time.Duration) *Service {
	return &Service{
		nextID:      1,
		renderCache: cache.New(renderTTL, 2*renderTTL),
		auditor:     auditor,
		metrics:     m,
		logger:      log,
	}
}

// Tax returns the raw 2.5% tax on a treatment price. It is not rounded;
// display formatting trims it to two decimals.
func (s *Service) Tax(price float64) float64 {
	return price * model.TaxRate
}

// Total returns the tax-inclusive total, rounded half away from zero on
// the cent. Tax and Total are independent expressions and may disagree
// with price+Tax by a cent; that matches the billing contract.
func (s *Service) Total(price float64) float64 {
	return math.Round(price*(1+model.TaxRate)*100) / 100
}

// GenerateInvoice assigns the next invoice ID and derives the payment
// from the treatment price. The treatment is passed independently of
// the appointment's own treatment and wins if they differ.
func (s *Service) GenerateInvoice(ctx context.Context, apt *model.Appointment, treatment model.Treatment) (*model.Invoice, error) {
	if apt == nil {
		return nil, apperrors.Validation("appointment is required", nil)
	}
	if treatment.ID == 0 {
		return nil, apperrors.Validation("treatment is required", nil)
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.mu.Unlock()

	invoice := &model.Invoice{
		ID:          id,
		Appointment: apt,
		Treatment:   treatment,
		Payment:     model.Payment{Amount: treatment.FinalPrice()},
	}

	s.auditor.Log(ctx, "generate", "invoice", strconv.Itoa(id), &audit.LogOptions{
		Changes: invoice,
	})
	s.metrics.InvoicesGenerated.Inc()
	s.logger.Info("invoice generated", "id", id, "appointment_id", apt.ID, "total", fmt.Sprintf("%.2f", invoice.Payment.Total()))

	return invoice, nil
}

// Render produces the invoice text. The layout is deterministic and the
// rendered form is memoised per invoice ID for the cache TTL.
func (s *Service) Render(invoice *model.Invoice) string {
	key := strconv.Itoa(invoice.ID)
	if cached, ok := s.renderCache.Get(key); ok {
		return cached.(string)
	}

	var b strings.Builder
	rule := strings.Repeat("=", 30)
	line := func(label string, format string, args ...interface{}) {
		fmt.Fprintf(&b, "%-19s"+format+"\n", append([]interface{}{label}, args...)...)
	}

	b.WriteString(rule + "\n")
	b.WriteString("           INVOICE\n")
	b.WriteString(rule + "\n")
	line("Appointment ID:", "%d", invoice.Appointment.ID)
	line("Patient:", "%s", invoice.Appointment.Patient.Name)
	line("Date:", "%s", invoice.Appointment.Date)
	line("Time:", "%s", invoice.Appointment.Time)
	b.WriteString(strings.Repeat("-", 30) + "\n")
	line("Treatment:", "%s", invoice.Treatment.Name)
	line("Price:", "LKR %.2f", invoice.Treatment.Price)
	line("Registration Fee:", "LKR %.2f", invoice.Appointment.RegistrationFee)
	line("Tax (2.5%):", "LKR %.2f", s.Tax(invoice.Treatment.FinalPrice()))
	line("Total:", "LKR %.2f", invoice.Payment.Total())
	b.WriteString(rule + "\n")
	b.WriteString("Thank you for choosing our services!\n")
	b.WriteString(rule + "\n")

	rendered := b.String()
	s.renderCache.Set(key, rendered, cache.DefaultExpiration)
	return rendered
}
