// Package derive holds the attribute rules that are computed, never sampled.
// Keeping them as pure functions makes every cross-column consistency rule
// in the dataset checkable after the fact: a verifier can recompute each
// derived column from its inputs and demand an exact match.
package derive

import (
	"fmt"
	"math"
	"time"

	"github.com/fieldforge/fieldforge/internal/domain"
)

// Round2 rounds to two decimal places, half away from zero. All money in
// the dataset is rounded at computation time, so downstream sums and
// exports never see float dust.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds to one decimal place, for hour quantities.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// LaborCost is the hours-times-rate charge for a visit.
func LaborCost(durationHours float64, hourlyRate int) float64 {
	return Round2(durationHours * float64(hourlyRate))
}

// InvoiceAmounts computes the tax and grand total for a subtotal at the
// given rate. Tax is rounded before the total is formed, so the three
// amount columns always reconcile to the cent.
func InvoiceAmounts(subtotal, taxRate float64) (tax, total float64) {
	tax = Round2(subtotal * taxRate)
	total = Round2(subtotal + tax)
	return tax, total
}

// TermDays returns the day count a payment-terms label grants.
func TermDays(terms string) int {
	switch terms {
	case "Due on Receipt":
		return 0
	case "Net 15":
		return 15
	case "Net 30":
		return 30
	case "Net 45":
		return 45
	}
	panic(fmt.Sprintf("derive: unknown payment terms %q", terms))
}

// DueDate applies the payment terms to an issue date.
func DueDate(issue time.Time, terms string) time.Time {
	return issue.AddDate(0, 0, TermDays(terms))
}

// WarrantyEnd extends an install date by the warranty term in months.
func WarrantyEnd(install time.Time, months int) time.Time {
	return install.AddDate(0, months, 0)
}

// ContractEnd extends a subscription start by the contract term in months.
// Calendar months, not thirty-day blocks: a 12 month contract starting
// 2024-02-01 ends 2025-02-01.
func ContractEnd(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// SeverityForResponse infers incident severity from the dispatch response
// time: the faster the crew rolled, the worse the incident was.
func SeverityForResponse(responseMinutes int) string {
	switch {
	case responseMinutes <= 30:
		return domain.SeverityCritical
	case responseMinutes <= 60:
		return domain.SeverityHigh
	case responseMinutes <= 120:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// PriorityForServiceType maps a service call type to its work priority.
func PriorityForServiceType(serviceType string) string {
	switch serviceType {
	case domain.ServiceEmergency:
		return domain.PriorityEmergency
	case domain.ServiceRepair:
		return domain.PriorityHigh
	case domain.ServiceInstallation:
		return domain.PriorityMedium
	case domain.ServiceMaintenance, domain.ServiceInspection:
		return domain.PriorityLow
	}
	panic(fmt.Sprintf("derive: unknown service type %q", serviceType))
}

// SatisfactionCategory buckets an overall rating on the 1..10 scale.
func SatisfactionCategory(overall int) string {
	switch {
	case overall >= 8:
		return domain.SatisfactionPositive
	case overall >= 5:
		return domain.SatisfactionNeutral
	default:
		return domain.SatisfactionNegative
	}
}

// WouldRecommend follows the overall rating rather than an independent coin
// flip: customers rating 7 or better recommend the company.
func WouldRecommend(overall int) bool {
	return overall >= 7
}

// StockStatus compares stock on hand against the reorder point.
func StockStatus(currentStock, reorderPoint int) string {
	if currentStock <= reorderPoint {
		return domain.StockLow
	}
	return domain.StockInStock
}

// StockValue is the on-hand quantity priced at unit cost.
func StockValue(currentStock int, unitCost float64) float64 {
	return Round2(float64(currentStock) * unitCost)
}

// QuoteTotal sums the three quoted cost components. The total is exactly
// the sum of the stored columns so a reviewer can reconcile any quote.
func QuoteTotal(laborCost, equipmentCost, partsCost float64) float64 {
	return Round2(laborCost + equipmentCost + partsCost)
}

// Reference-number formats. Sequence numbers are the row IDs, so the
// references stay unique across incremental extensions.

func InvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

func QuoteNumber(year, seq int) string {
	return fmt.Sprintf("QUO-%d-%04d", year, seq)
}

func WorkOrderNumber(year, seq int) string {
	return fmt.Sprintf("WO-%d-%04d", year, seq)
}

func VehicleNumber(seq int) string {
	return fmt.Sprintf("HVAC-%03d", seq)
}
