package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fieldforge/fieldforge/internal/domain"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2349))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestLaborCost(t *testing.T) {
	assert.Equal(t, 262.5, LaborCost(3.5, 75))
	assert.Equal(t, 25.0, LaborCost(1, 25))
	assert.Equal(t, 82.5, LaborCost(1.5, 55))
}

func TestInvoiceAmounts(t *testing.T) {
	tax, total := InvoiceAmounts(300.00, 0.08)
	assert.Equal(t, 24.00, tax)
	assert.Equal(t, 324.00, total)

	tax, total = InvoiceAmounts(199.99, 0.065)
	assert.Equal(t, 13.00, tax)
	assert.Equal(t, 212.99, total)
}

func TestDueDateFollowsTerms(t *testing.T) {
	issue := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, issue, DueDate(issue, "Due on Receipt"))
	assert.Equal(t, issue.AddDate(0, 0, 15), DueDate(issue, "Net 15"))
	assert.Equal(t, issue.AddDate(0, 0, 30), DueDate(issue, "Net 30"))
	assert.Equal(t, issue.AddDate(0, 0, 45), DueDate(issue, "Net 45"))
	assert.Panics(t, func() { DueDate(issue, "Net 60") })
}

func TestWarrantyEndCalendarMonths(t *testing.T) {
	install := time.Date(2022, 1, 31, 0, 0, 0, 0, time.UTC)
	// AddDate normalizes 2023-02-31 to 2023-03-03.
	assert.Equal(t, time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC), WarrantyEnd(install, 13))

	install = time.Date(2022, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), WarrantyEnd(install, 36))
}

func TestContractEndCalendarMonths(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), ContractEnd(start, 12))
	assert.Equal(t, time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC), ContractEnd(start, 36))
}

func TestSeverityForResponse(t *testing.T) {
	assert.Equal(t, domain.SeverityCritical, SeverityForResponse(15))
	assert.Equal(t, domain.SeverityCritical, SeverityForResponse(30))
	assert.Equal(t, domain.SeverityHigh, SeverityForResponse(31))
	assert.Equal(t, domain.SeverityHigh, SeverityForResponse(60))
	assert.Equal(t, domain.SeverityMedium, SeverityForResponse(61))
	assert.Equal(t, domain.SeverityMedium, SeverityForResponse(120))
	assert.Equal(t, domain.SeverityLow, SeverityForResponse(121))
	assert.Equal(t, domain.SeverityLow, SeverityForResponse(240))
}

func TestPriorityForServiceType(t *testing.T) {
	assert.Equal(t, domain.PriorityEmergency, PriorityForServiceType(domain.ServiceEmergency))
	assert.Equal(t, domain.PriorityHigh, PriorityForServiceType(domain.ServiceRepair))
	assert.Equal(t, domain.PriorityMedium, PriorityForServiceType(domain.ServiceInstallation))
	assert.Equal(t, domain.PriorityLow, PriorityForServiceType(domain.ServiceMaintenance))
	assert.Equal(t, domain.PriorityLow, PriorityForServiceType(domain.ServiceInspection))
	assert.Panics(t, func() { PriorityForServiceType("Consultation") })
}

func TestSatisfactionCategory(t *testing.T) {
	assert.Equal(t, domain.SatisfactionPositive, SatisfactionCategory(10))
	assert.Equal(t, domain.SatisfactionPositive, SatisfactionCategory(8))
	assert.Equal(t, domain.SatisfactionNeutral, SatisfactionCategory(7))
	assert.Equal(t, domain.SatisfactionNeutral, SatisfactionCategory(5))
	assert.Equal(t, domain.SatisfactionNegative, SatisfactionCategory(4))
	assert.Equal(t, domain.SatisfactionNegative, SatisfactionCategory(1))
}

func TestWouldRecommendTracksOverall(t *testing.T) {
	assert.True(t, WouldRecommend(7))
	assert.True(t, WouldRecommend(10))
	assert.False(t, WouldRecommend(6))
	assert.False(t, WouldRecommend(1))
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, domain.StockLow, StockStatus(5, 5))
	assert.Equal(t, domain.StockLow, StockStatus(0, 5))
	assert.Equal(t, domain.StockInStock, StockStatus(6, 5))
}

func TestStockValue(t *testing.T) {
	assert.Equal(t, 1234.50, StockValue(30, 41.15))
	assert.Equal(t, 0.0, StockValue(0, 99.99))
}

func TestQuoteTotal(t *testing.T) {
	assert.Equal(t, 1850.75, QuoteTotal(800.00, 1000.00, 50.75))
	assert.Equal(t, 130.10, QuoteTotal(100.10, 0, 30.00))
}

func TestReferenceNumbers(t *testing.T) {
	assert.Equal(t, "INV-2024-0042", InvoiceNumber(2024, 42))
	assert.Equal(t, "QUO-2023-1203", QuoteNumber(2023, 1203))
	assert.Equal(t, "WO-2024-0007", WorkOrderNumber(2024, 7))
	assert.Equal(t, "HVAC-003", VehicleNumber(3))
}
