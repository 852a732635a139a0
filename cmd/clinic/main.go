package main

import (
	"context"
	"os"
	"time"

	"github.com/auroraskincare/clinic/internal/cli"
	"github.com/auroraskincare/clinic/internal/config"
	"github.com/auroraskincare/clinic/internal/model"
	"github.com/auroraskincare/clinic/internal/repository/memory"
	appointmentService "github.com/auroraskincare/clinic/internal/service/appointment"
	auditService "github.com/auroraskincare/clinic/internal/service/audit"
	billingService "github.com/auroraskincare/clinic/internal/service/billing"
	doctorService "github.com/auroraskincare/clinic/internal/service/doctor"
	patientService "github.com/auroraskincare/clinic/internal/service/patient"
	"github.com/auroraskincare/clinic/pkg/logger"
	"github.com/auroraskincare/clinic/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; construct a default one just to fail loudly.
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		TimeFormat: time.RFC3339,
		Output:     os.Stderr,
	})

	// Initialize stores
	patientStore := memory.NewPatientStore()
	doctorStore := memory.NewDoctorStore()
	appointmentStore := memory.NewAppointmentStore()
	treatmentStore := memory.NewTreatmentStore(model.DefaultTreatments())
	auditStore := memory.NewAuditStore()

	// Initialize services
	m := metrics.New("clinic")
	auditSvc := auditService.NewService(auditStore)
	patientSvc := patientService.NewService(patientStore, auditSvc, m, log)
	doctorSvc := doctorService.NewService(doctorStore, auditSvc, log)
	appointmentSvc := appointmentService.NewService(appointmentStore, auditSvc, m, log)
	billingSvc := billingService.NewService(auditSvc, m, log, cfg.RenderCacheTTL)

	ctx := context.Background()

	if cfg.Seed {
		if err := seedDoctors(ctx, doctorSvc); err != nil {
			log.Fatal(err, "failed to seed doctors")
		}
	}

	front := cli.New(os.Stdin, os.Stdout, cfg.ClinicName,
		patientSvc, doctorSvc, appointmentSvc, billingSvc, treatmentStore)

	if err := front.Run(ctx); err != nil {
		log.Fatal(err, "menu loop failed")
	}

	if snapshot, err := m.Snapshot(); err == nil {
		log.Info("session summary", "metrics", snapshot)
	}
}

func seedDoctors(ctx context.Context, svc *doctorService.Service) error {
	doctors := []*model.Doctor{
		{Name: "Dr. Ijlan", Email: "mohamedijlan02@gmail.com", ContactNumber: "0776778795", EmployeeID: "D001"},
		{Name: "Dr. Brian", Email: "jacobmichaelbrian01@gmail.com", ContactNumber: "0764517561", EmployeeID: "D002"},
	}
	for _, d := range doctors {
		if err := svc.Register(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
