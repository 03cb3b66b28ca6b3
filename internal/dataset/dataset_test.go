package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforge/fieldforge/internal/domain"
)

func TestRegistryMatchesDomain(t *testing.T) {
	all := All()
	require.Len(t, all, len(domain.Entities))
	for i, tab := range all {
		assert.Equal(t, domain.Entities[i], tab.Name, "table %d out of order", i)
		byName, ok := ByName(tab.Name)
		require.True(t, ok)
		assert.Equal(t, tab.Name, byName.Name)
	}
	_, ok := ByName("no_such_table")
	assert.False(t, ok)
}

func TestRowWidthMatchesHeader(t *testing.T) {
	d := sampleDataset()
	for _, tab := range All() {
		require.Equal(t, 1, tab.Len(d), "%s should hold one sample row", tab.Name)
		row := tab.Row(d, 0)
		assert.Len(t, row, len(tab.Columns), "%s row width", tab.Name)
		assert.Len(t, tab.Header(), len(tab.Columns))
	}
}

func TestCellFormats(t *testing.T) {
	assert.Equal(t, "324.00", formatMoney(324))
	assert.Equal(t, "85.50", formatMoney(85.5))
	assert.Equal(t, "0.065", formatRate(0.065))
	assert.Equal(t, "0.08", formatRate(0.08))
	assert.Equal(t, "3.0", formatDecimal(3))
	assert.Equal(t, "2.5", formatDecimal(2.5))
	assert.Equal(t, "true", formatBool(true))
	assert.Equal(t, "", formatIntPtr(nil))
	assert.Equal(t, "", formatDatePtr(nil))

	day := time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-03", formatDate(day))
	ts := time.Date(2024, 2, 3, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-03 14:30:00", formatDateTime(ts))
}

func TestInvoiceRowRoundTrip(t *testing.T) {
	d := sampleDataset()
	row := invoicesTable.Row(d, 0)

	var back Dataset
	require.NoError(t, invoicesTable.Scan(&back, row))
	require.Len(t, back.Invoices, 1)
	assert.Equal(t, d.Invoices[0], back.Invoices[0])
}

func TestAppointmentRowRoundTripWithNils(t *testing.T) {
	d := sampleDataset()
	d.Appointments[0].ServiceCallID = nil
	d.Appointments[0].ConfirmedDate = nil
	row := appointmentsTable.Row(d, 0)
	assert.Equal(t, "", row[3], "nil FK encodes as empty cell")

	var back Dataset
	require.NoError(t, appointmentsTable.Scan(&back, row))
	require.Len(t, back.Appointments, 1)
	assert.Nil(t, back.Appointments[0].ServiceCallID)
	assert.Nil(t, back.Appointments[0].ConfirmedDate)
	assert.Equal(t, d.Appointments[0], back.Appointments[0])
}

func TestScanRejectsMalformedCells(t *testing.T) {
	var d Dataset
	err := customersTable.Scan(&d, []string{"x", "A", "B", "C", "residential", "2024-01-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customers")

	err = customersTable.Scan(&d, []string{"1", "A", "B"})
	require.Error(t, err)

	err = customersTable.Scan(&d, []string{"1", "A", "B", "C", "residential", "2024-01-01", "extra"})
	require.Error(t, err)
	assert.Empty(t, d.Customers, "failed scans must not append")
}

func TestMaxID(t *testing.T) {
	d := &Dataset{}
	assert.Equal(t, 0, MaxID(d, customersTable))
	d.Customers = []domain.Customer{{ID: 3}, {ID: 7}, {ID: 5}}
	assert.Equal(t, 7, MaxID(d, customersTable))
}

func TestReadDirRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := sampleDataset()
	writeCSVDir(t, dir, d)

	got, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, len(All()), got.Rows())
}

func TestReadDirMissingFile(t *testing.T) {
	dir := t.TempDir()
	d := sampleDataset()
	writeCSVDir(t, dir, d)
	require.NoError(t, os.Remove(filepath.Join(dir, "payments.csv")))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payments.csv")
}

func TestReadDirRejectsForeignHeader(t *testing.T) {
	dir := t.TempDir()
	d := sampleDataset()
	writeCSVDir(t, dir, d)
	bad := "customer_id,name\n1,Ann\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customers.csv"), []byte(bad), 0o644))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header")
}

func writeCSVDir(t *testing.T, dir string, d *Dataset) {
	t.Helper()
	for _, tab := range All() {
		f, err := os.Create(filepath.Join(dir, tab.Name+".csv"))
		require.NoError(t, err)
		w := csv.NewWriter(f)
		require.NoError(t, w.Write(tab.Header()))
		for i := 0; i < tab.Len(d); i++ {
			require.NoError(t, w.Write(tab.Row(d, i)))
		}
		w.Flush()
		require.NoError(t, w.Error())
		require.NoError(t, f.Close())
	}
}

// sampleDataset builds one row per table with every optional field set.
func sampleDataset() *Dataset {
	day := func(y int, m time.Month, dd int) time.Time {
		return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	}
	ts := func(y int, m time.Month, dd, hh, mm int) time.Time {
		return time.Date(y, m, dd, hh, mm, 0, 0, time.UTC)
	}
	intp := func(v int) *int { return &v }
	timep := func(v time.Time) *time.Time { return &v }

	return &Dataset{
		Customers: []domain.Customer{{
			ID: 1, Name: "Summit Properties", Address: "12 Oak Avenue, Salem, OH 44460",
			Phone: "555-0100", Type: domain.CustomerCommercial, CreatedAt: day(2023, 2, 1),
		}},
		Technicians: []domain.Technician{{
			ID: 1, Name: "Dana Walker", Phone: "555-0101", Level: domain.LevelSenior,
			HourlyRate: 48, HireDate: day(2021, 5, 10), YearsExperience: 9,
			CertificationLevel: "Advanced",
			Skills: domain.SkillSet{
				HVACInstallation: 6, Electrical: 5, Refrigeration: 7,
				Ductwork: 6, Diagnostics: 8, CustomerService: 6, SafetyProtocols: 7,
			},
		}},
		EquipmentTypes: []domain.EquipmentType{{
			ID: 1, Brand: "Carrier", Model: "Pro450", Type: "Heat Pump",
			BTURating: 36000, EnergyRating: 16.5,
		}},
		Parts: []domain.Part{{
			ID: 1, Name: "Filter - Apex", Category: "Filter", UnitCost: 24.99,
			Supplier: "Allied HVAC Supply",
		}},
		InstalledDevices: []domain.InstalledDevice{{
			ID: 1, CustomerID: 1, EquipmentID: 1, InstallDate: day(2023, 4, 2),
			WarrantyEnd: day(2026, 4, 2), SerialNumber: "AB12-3456-7890",
			Location: "Basement", Status: "Active", LastMaintenance: timep(day(2024, 1, 15)),
		}},
		ServiceCalls: []domain.ServiceCall{{
			ID: 1, CustomerID: 1, TechnicianID: 1, EquipmentID: 1,
			ServiceDate: day(2024, 3, 5), ServiceType: domain.ServiceRepair,
			DurationHours: 2.5, LaborCost: 120, PartsCost: 54.5, TotalCost: 174.5,
		}},
		PartsUsage: []domain.PartsUsage{{
			ID: 1, ServiceCallID: 1, PartID: 1, Quantity: 2, UsageDate: day(2024, 3, 5),
		}},
		Incidents: []domain.IncidentResponse{{
			ID: 1, ServiceCallID: 1, IncidentType: "System Failure",
			Severity: domain.SeverityHigh, ReportedTime: ts(2024, 3, 5, 8, 15),
			ResponseMinutes: 45, ResolutionMinutes: 180, RespondingTechID: 1,
			BackupTechID: intp(1), ResolutionStatus: "Resolved",
			CustomerSatisfaction: 8, FollowUpRequired: false,
		}},
		Vehicles: []domain.Vehicle{{
			ID: 1, Number: "HVAC-001", Make: "Ford", Model: "Transit", Year: 2020,
			Type: "Van", LicensePlate: "KTR-4821", VIN: "1FTBW2CM5LKA08291",
			AssignedTechID: intp(1), PurchaseDate: day(2020, 6, 1),
			CurrentMileage: 84000, LastMaintenance: day(2024, 2, 10),
			NextMaintenanceMileage: 89000, Status: "Active", FuelType: "Gasoline",
			GPSEnabled: true,
		}},
		MailingList: []domain.MailingContact{{
			ID: 1, CustomerID: intp(1), Email: "summit@example.com",
			FirstName: "Summit", LastName: "Properties", Phone: "555-0100",
			Address: "12 Oak Avenue, Salem, OH 44460", Source: "Existing Customer",
			SubscriptionStatus: "Subscribed", SubscriptionDate: day(2023, 6, 1),
			PreferredContact: "Email", Interests: "Seasonal Offers",
		}},
		Subscriptions: []domain.Subscription{{
			ID: 1, CustomerID: 1, Plan: "Premium", StartDate: day(2023, 7, 1),
			EndDate: day(2025, 7, 1), AnnualCost: 200, PaymentFrequency: "Quarterly",
			Status: "Active", AutoRenewal: true,
			ServicesIncluded: "Bi-annual Maintenance, Parts Discount",
			DiscountPercent:  10, NextServiceDate: timep(day(2024, 9, 1)),
		}},
		Invoices: []domain.Invoice{{
			ID: 1, Number: "INV-2024-0001", ServiceCallID: 1, CustomerID: 1,
			IssueDate: day(2024, 3, 6), DueDate: day(2024, 4, 5),
			PaymentTerms: "Net 30", Subtotal: 300, TaxRate: 0.08, TaxAmount: 24,
			Total: 324, Status: domain.InvoicePaid, Notes: "Thank you for your business",
		}},
		Payments: []domain.Payment{{
			ID: 1, InvoiceID: 1, PaymentDate: day(2024, 3, 20), Amount: 324,
			Method: "Check", TransactionID: "TXN-48210375", Status: "Completed",
			ProcessingFee: 0, Notes: "",
		}},
		Inventory: []domain.InventoryItem{{
			ID: 1, PartID: 1, WarehouseLocation: "A-07-3", CurrentStock: 40,
			ReorderPoint: 10, MaxStock: 120, LastRestockDate: day(2024, 2, 1),
			LastRestockQty: 60, AvgMonthlyUsage: 12, StockStatus: domain.StockInStock,
			SupplierLeadTimeDays: 7, ABCClass: "B", LastCountDate: day(2024, 2, 20),
			UnitCost: 24.99, TotalValue: 999.6,
		}},
		Appointments: []domain.Appointment{{
			ID: 1, CustomerID: 1, TechnicianID: 1, ServiceCallID: intp(1),
			Date: day(2024, 3, 5), ScheduledTime: ts(2024, 3, 1, 9, 30),
			Type: domain.ServiceRepair, EstimatedDurationHours: 2.5,
			Status: "Completed", Priority: domain.PriorityHigh,
			SpecialInstructions: "Gate code 4417, lock the gate when leaving",
			CreatedDate:         day(2024, 2, 26), ConfirmedDate: timep(ts(2024, 2, 27, 10, 0)),
		}},
		Quotes: []domain.Quote{{
			ID: 1, Number: "QUO-2024-0001", CustomerID: 1, EquipmentID: intp(1),
			QuoteDate: day(2024, 2, 12), ValidUntil: day(2024, 3, 13),
			Type: "Installation", Description: "High-efficiency heat pump installation with new line set",
			LaborHours: 8, LaborRate: 95, LaborCost: 760, EquipmentCost: 4200,
			PartsCost: 350.25, Total: 5310.25, Status: "Pending",
			CreatedBy: "Sales Rep 2", FollowUpDate: timep(day(2024, 2, 20)),
			Notes: "Comparing quotes from two other contractors",
		}},
		WorkOrders: []domain.WorkOrder{{
			ID: 1, ServiceCallID: 1, TechnicianID: 1, Number: "WO-2024-0001",
			Description:        "Replace failed blower motor and verify airflow at registers",
			Instructions:       "Verify power is isolated at the disconnect before opening panels",
			SafetyRequirements: "Electrical Safety", EstimatedHours: 2.5,
			ActualHours: 3, Status: "Completed", Priority: domain.PriorityHigh,
			CompletionNotes:   "Replaced the faulty component and verified normal operation",
			SignatureRequired: true,
		}},
		Feedback: []domain.CustomerFeedback{{
			ID: 1, ServiceCallID: 1, CustomerID: 1, FeedbackDate: day(2024, 3, 12),
			Type: "Survey", Overall: 9, TechnicianRating: 9, TimelinessRating: 8,
			QualityRating: 9, ValueRating: 7, Category: domain.SatisfactionPositive,
			Comments:       "Technician arrived on time and explained the work clearly",
			WouldRecommend: true, FollowUpRequired: false, Source: "Email Survey",
		}},
		Leads: []domain.Lead{{
			ID: 1, FirstName: "Carlos", LastName: "Nguyen", CompanyName: "",
			Phone: "555-0188", Email: "carlos.nguyen@example.com",
			Address: "98 Cedar Lane, Madison, WI 53703", Source: "Website",
			ServiceInterest: "Installation", EstimatedValue: 4200.5, Urgency: "High",
			Status: "Qualified", CreatedDate: day(2024, 1, 20),
			LastContactDate: timep(day(2024, 2, 2)), AssignedTo: "Sales Rep 3",
			Notes:                 "Wants an estimate before the summer season",
			ConversionProbability: 65,
		}},
	}
}
