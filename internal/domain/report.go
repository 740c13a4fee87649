package domain

import (
	"fmt"
	"strings"
	"time"
)

// TotalRevenue sums the fares of rides, skipping absent entries.
func TotalRevenue(rides []Ride) float64 {
	total := 0.0
	for _, r := range rides {
		if !present(r) {
			continue
		}
		total += r.Fare()
	}
	return total
}

// FormatMoney renders an amount as dollars with two decimal places.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// RevenueLine renders the system-wide revenue line.
func RevenueLine(total float64) string {
	return "Total revenue from all created rides: " + FormatMoney(total)
}

// writeDetails writes one Describe line per present ride.
func writeDetails(b *strings.Builder, rides []Ride) {
	for _, r := range rides {
		if !present(r) {
			continue
		}
		b.WriteString(r.Describe())
		b.WriteByte('\n')
	}
}

// RevenueReport is an aggregate over every ride in the registry.
type RevenueReport struct {
	ID           string
	RideCount    int
	TotalRevenue float64
	ByTier       map[RideTier]TierRevenue
	GeneratedAt  time.Time
}

// TierRevenue is the share of a RevenueReport for one tier.
type TierRevenue struct {
	RideCount int
	Revenue   float64
}

// Summarize groups rides by tier and totals their fares.
// The returned report has no ID or timestamp.
func Summarize(rides []Ride) RevenueReport {
	report := RevenueReport{
		ByTier: make(map[RideTier]TierRevenue),
	}
	for _, r := range rides {
		if !present(r) {
			continue
		}
		fare := r.Fare()
		report.RideCount++
		report.TotalRevenue += fare

		tr := report.ByTier[r.Tier()]
		tr.RideCount++
		tr.Revenue += fare
		report.ByTier[r.Tier()] = tr
	}
	return report
}
