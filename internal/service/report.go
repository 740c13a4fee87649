package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
)

// ReportService builds aggregate reports over the registry.
type ReportService struct {
	rideRepo   repository.RideRepository
	driverRepo repository.DriverRepository
	riderRepo  repository.RiderRepository
	now        func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(
	rideRepo repository.RideRepository,
	driverRepo repository.DriverRepository,
	riderRepo repository.RiderRepository,
) *ReportService {
	return &ReportService{
		rideRepo:   rideRepo,
		driverRepo: driverRepo,
		riderRepo:  riderRepo,
		now:        time.Now,
	}
}

// Revenue totals the fares of every registered ride.
func (s *ReportService) Revenue(ctx context.Context) (*domain.RevenueReport, error) {
	rides, err := s.rideRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := domain.Summarize(rides)
	report.ID = uuid.New().String()
	report.GeneratedAt = s.now()
	return &report, nil
}

// Overview renders every ride, every driver summary, every rider history and
// the total revenue line.
func (s *ReportService) Overview(ctx context.Context) (string, error) {
	rides, err := s.rideRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	drivers, err := s.driverRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}
	riders, err := s.riderRepo.GetAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("All rides:\n")
	for _, r := range rides {
		b.WriteString(r.Describe())
		b.WriteByte('\n')
	}

	b.WriteString("\n---- Driver Summaries ----\n")
	for _, d := range drivers {
		b.WriteString(d.Summary())
		b.WriteByte('\n')
	}

	b.WriteString("---- Rider Histories ----\n")
	for _, r := range riders {
		b.WriteString(r.History())
		b.WriteByte('\n')
	}

	b.WriteString(domain.RevenueLine(domain.TotalRevenue(rides)))
	b.WriteByte('\n')
	return b.String(), nil
}

// tierOrder fixes the row order of FormatReport.
var tierOrder = []domain.RideTier{
	domain.RideTierBase,
	domain.RideTierStandard,
	domain.RideTierPremium,
}

// FormatReport formats the revenue report as a string (for print).
func (s *ReportService) FormatReport(report *domain.RevenueReport) string {
	var b strings.Builder
	b.WriteString("=====================================\n")
	b.WriteString("        REVENUE REPORT\n")
	b.WriteString("=====================================\n")
	fmt.Fprintf(&b, "Report ID: %s\n", report.ID)
	fmt.Fprintf(&b, "Date: %s\n", report.GeneratedAt.Format("Jan 02, 2006 3:04 PM"))
	b.WriteString("\nBY TIER\n")
	b.WriteString("-------------------------------------\n")
	for _, tier := range tierOrder {
		tr, ok := report.ByTier[tier]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%-9s %3d rides  %s\n", tier, tr.RideCount, domain.FormatMoney(tr.Revenue))
	}
	b.WriteString("-------------------------------------\n")
	fmt.Fprintf(&b, "TOTAL     %3d rides  %s\n", report.RideCount, domain.FormatMoney(report.TotalRevenue))
	b.WriteString("=====================================\n")
	return b.String()
}
