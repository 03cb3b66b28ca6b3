package verify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/generate"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

var auditAnchor = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

const auditHorizonDays = 90

func auditCounts() generate.Counts {
	return generate.Counts{
		Customers:        40,
		Technicians:      5,
		EquipmentTypes:   6,
		Parts:            10,
		InstalledDevices: 20,
		ServiceCalls:     60,
		Incidents:        8,
		Vehicles:         4,
		MailingProspects: 10,
		Subscriptions:    12,
		Appointments:     70,
		Quotes:           15,
		Feedback:         30,
		Leads:            20,
		InvoicePercent:   0.85,
		MaxPartsPerCall:  3,
	}
}

func auditDataset(t *testing.T, seed int64) *dataset.Dataset {
	t.Helper()
	s := sample.New(seed)
	res, err := generate.Run(s, timeline.NewPicker(s, auditAnchor, auditHorizonDays), auditCounts())
	require.NoError(t, err)
	return res.Dataset
}

func entityResult(t *testing.T, report *Report, entity string) *Result {
	t.Helper()
	for _, res := range report.Results {
		if res.Entity == entity {
			return res
		}
	}
	t.Fatalf("no result for entity %s", entity)
	return nil
}

func TestCleanDatasetPasses(t *testing.T) {
	d := auditDataset(t, 7)
	report := Check(d)

	assert.True(t, report.OK())
	assert.Zero(t, report.Total())
	require.Len(t, report.Results, len(dataset.All()))
	for i, tab := range dataset.All() {
		assert.Equal(t, tab.Name, report.Results[i].Entity)
		assert.Equal(t, tab.Len(d), report.Results[i].Rows)
	}
}

func TestExtendedDatasetPasses(t *testing.T) {
	d := auditDataset(t, 11)
	s := sample.New(13)
	_, err := generate.Extend(s, timeline.NewPicker(s, auditAnchor, auditHorizonDays), generate.DefaultIncrements(), d)
	require.NoError(t, err)

	report := Check(d)
	assert.True(t, report.OK(), "merged dataset should audit clean: %v", report.Results)
}

func TestDetectsTamperedDerivedValues(t *testing.T) {
	d := auditDataset(t, 17)
	d.ServiceCalls[0].LaborCost += 1
	d.Invoices[0].TaxAmount += 0.01
	d.WorkOrders[0].Priority = ""
	d.Inventory[0].StockStatus = ""
	d.Feedback[0].Category = ""
	d.Quotes[0].Total += 0.01

	report := Check(d)
	require.False(t, report.OK())

	calls := entityResult(t, report, domain.ServiceCalls)
	require.NotZero(t, calls.Count)
	assert.Contains(t, calls.Violations[0], "labor cost")

	// The padded labor cost also breaks the call's recomputed total.
	assert.GreaterOrEqual(t, calls.Count, 2)

	assert.NotZero(t, entityResult(t, report, domain.Invoices).Count)
	assert.NotZero(t, entityResult(t, report, domain.WorkOrders).Count)
	assert.NotZero(t, entityResult(t, report, domain.Inventory).Count)
	assert.NotZero(t, entityResult(t, report, domain.CustomerFeedback).Count)
	assert.NotZero(t, entityResult(t, report, domain.Quotes).Count)
}

func TestDetectsBrokenReferences(t *testing.T) {
	d := auditDataset(t, 19)
	require.NotEmpty(t, d.PartsUsage)
	require.NotEmpty(t, d.Payments)

	d.ServiceCalls[0].CustomerID = 99999
	d.PartsUsage[0].PartID = 99999
	d.Payments[0].InvoiceID = 99999

	report := Check(d)
	require.False(t, report.OK())

	calls := entityResult(t, report, domain.ServiceCalls)
	require.NotZero(t, calls.Count)
	assert.Contains(t, calls.Violations[0], "unknown customer")
	assert.NotZero(t, entityResult(t, report, domain.PartsUsage).Count)
	assert.NotZero(t, entityResult(t, report, domain.Payments).Count)
}

func TestDetectsIDRegression(t *testing.T) {
	d := auditDataset(t, 23)
	d.Customers[1].ID = d.Customers[0].ID

	report := Check(d)
	customers := entityResult(t, report, domain.Customers)
	require.NotZero(t, customers.Count)
	assert.Contains(t, customers.Violations[0], "not greater than previous")
}

func TestDetectsPaymentOverrun(t *testing.T) {
	d := auditDataset(t, 29)
	require.NotEmpty(t, d.Payments)

	var invoice *domain.Invoice
	for i := range d.Invoices {
		if d.Invoices[i].ID == d.Payments[0].InvoiceID {
			invoice = &d.Invoices[i]
			break
		}
	}
	require.NotNil(t, invoice)
	d.Payments[0].Amount += invoice.Total + 1

	report := Check(d)
	payments := entityResult(t, report, domain.Payments)
	require.NotZero(t, payments.Count)

	found := false
	for _, v := range payments.Violations {
		if strings.Contains(v, "payments total") && strings.Contains(v, "exceed") {
			found = true
		}
	}
	assert.True(t, found, "expected an overrun violation, got %v", payments.Violations)
}

func TestViolationListIsCapped(t *testing.T) {
	d := auditDataset(t, 31)
	for i := range d.Customers {
		d.Customers[i].ID = 1
	}

	report := Check(d)
	customers := entityResult(t, report, domain.Customers)
	assert.Greater(t, customers.Count, MaxShown)
	assert.Len(t, customers.Violations, MaxShown)
}
