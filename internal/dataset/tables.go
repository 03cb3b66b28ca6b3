package dataset

import (
	"github.com/fieldforge/fieldforge/internal/domain"
)

// Table binds an entity type to its flat representation. Columns is the
// export contract: order is fixed and identical across full runs and
// extensions.
type Table struct {
	Name    string
	Columns []Column
	Len     func(d *Dataset) int
	ID      func(d *Dataset, i int) int
	Row     func(d *Dataset, i int) []string
	Scan    func(d *Dataset, record []string) error
}

// Header returns the column names in export order.
func (t Table) Header() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// All returns every table in generation order.
func All() []Table {
	return tables
}

// ByName looks a table up by entity name.
func ByName(name string) (Table, bool) {
	t, ok := tablesByName[name]
	return t, ok
}

var tables = []Table{
	customersTable,
	techniciansTable,
	equipmentTypesTable,
	partsTable,
	installedDevicesTable,
	serviceCallsTable,
	partsUsageTable,
	incidentsTable,
	vehiclesTable,
	mailingListTable,
	subscriptionsTable,
	invoicesTable,
	paymentsTable,
	inventoryTable,
	appointmentsTable,
	quotesTable,
	workOrdersTable,
	feedbackTable,
	leadsTable,
}

var tablesByName = func() map[string]Table {
	m := make(map[string]Table, len(tables))
	for _, t := range tables {
		m[t.Name] = t
	}
	return m
}()

var customersTable = Table{
	Name: domain.Customers,
	Columns: []Column{
		{"customer_id", Int},
		{"customer_name", Text},
		{"address", Text},
		{"phone", Text},
		{"customer_type", Text},
		{"created_at", Date},
	},
	Len: func(d *Dataset) int { return len(d.Customers) },
	ID:  func(d *Dataset, i int) int { return d.Customers[i].ID },
	Row: func(d *Dataset, i int) []string {
		c := d.Customers[i]
		return []string{
			formatInt(c.ID), c.Name, c.Address, c.Phone, c.Type,
			formatDate(c.CreatedAt),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Customers, record)
		c := domain.Customer{
			ID:        r.Int(),
			Name:      r.Text(),
			Address:   r.Text(),
			Phone:     r.Text(),
			Type:      r.Text(),
			CreatedAt: r.Date(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Customers = append(d.Customers, c)
		return nil
	},
}

var techniciansTable = Table{
	Name: domain.Technicians,
	Columns: []Column{
		{"technician_id", Int},
		{"technician_name", Text},
		{"phone", Text},
		{"technician_level", Text},
		{"hourly_rate", Int},
		{"hire_date", Date},
		{"years_experience", Int},
		{"certification_level", Text},
		{"hvac_installation_skill", Int},
		{"electrical_skill", Int},
		{"refrigeration_skill", Int},
		{"ductwork_skill", Int},
		{"diagnostics_skill", Int},
		{"customer_service_skill", Int},
		{"safety_protocols_skill", Int},
	},
	Len: func(d *Dataset) int { return len(d.Technicians) },
	ID:  func(d *Dataset, i int) int { return d.Technicians[i].ID },
	Row: func(d *Dataset, i int) []string {
		t := d.Technicians[i]
		return []string{
			formatInt(t.ID), t.Name, t.Phone, t.Level,
			formatInt(t.HourlyRate), formatDate(t.HireDate),
			formatInt(t.YearsExperience), t.CertificationLevel,
			formatInt(t.Skills.HVACInstallation), formatInt(t.Skills.Electrical),
			formatInt(t.Skills.Refrigeration), formatInt(t.Skills.Ductwork),
			formatInt(t.Skills.Diagnostics), formatInt(t.Skills.CustomerService),
			formatInt(t.Skills.SafetyProtocols),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Technicians, record)
		t := domain.Technician{
			ID:                 r.Int(),
			Name:               r.Text(),
			Phone:              r.Text(),
			Level:              r.Text(),
			HourlyRate:         r.Int(),
			HireDate:           r.Date(),
			YearsExperience:    r.Int(),
			CertificationLevel: r.Text(),
			Skills: domain.SkillSet{
				HVACInstallation: r.Int(),
				Electrical:       r.Int(),
				Refrigeration:    r.Int(),
				Ductwork:         r.Int(),
				Diagnostics:      r.Int(),
				CustomerService:  r.Int(),
				SafetyProtocols:  r.Int(),
			},
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Technicians = append(d.Technicians, t)
		return nil
	},
}

var equipmentTypesTable = Table{
	Name: domain.EquipmentTypes,
	Columns: []Column{
		{"equipment_id", Int},
		{"brand", Text},
		{"model", Text},
		{"equipment_type", Text},
		{"btu_rating", Int},
		{"energy_rating", Decimal},
	},
	Len: func(d *Dataset) int { return len(d.EquipmentTypes) },
	ID:  func(d *Dataset, i int) int { return d.EquipmentTypes[i].ID },
	Row: func(d *Dataset, i int) []string {
		e := d.EquipmentTypes[i]
		return []string{
			formatInt(e.ID), e.Brand, e.Model, e.Type,
			formatInt(e.BTURating), formatDecimal(e.EnergyRating),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.EquipmentTypes, record)
		e := domain.EquipmentType{
			ID:           r.Int(),
			Brand:        r.Text(),
			Model:        r.Text(),
			Type:         r.Text(),
			BTURating:    r.Int(),
			EnergyRating: r.Float(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.EquipmentTypes = append(d.EquipmentTypes, e)
		return nil
	},
}

var partsTable = Table{
	Name: domain.Parts,
	Columns: []Column{
		{"part_id", Int},
		{"part_name", Text},
		{"part_category", Text},
		{"unit_cost", Money},
		{"supplier", Text},
	},
	Len: func(d *Dataset) int { return len(d.Parts) },
	ID:  func(d *Dataset, i int) int { return d.Parts[i].ID },
	Row: func(d *Dataset, i int) []string {
		p := d.Parts[i]
		return []string{
			formatInt(p.ID), p.Name, p.Category,
			formatMoney(p.UnitCost), p.Supplier,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Parts, record)
		p := domain.Part{
			ID:       r.Int(),
			Name:     r.Text(),
			Category: r.Text(),
			UnitCost: r.Float(),
			Supplier: r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Parts = append(d.Parts, p)
		return nil
	},
}

var installedDevicesTable = Table{
	Name: domain.InstalledDevices,
	Columns: []Column{
		{"installation_id", Int},
		{"customer_id", Int},
		{"equipment_id", Int},
		{"installation_date", Date},
		{"warranty_end_date", Date},
		{"serial_number", Text},
		{"installation_location", Text},
		{"status", Text},
		{"last_maintenance_date", Date},
	},
	Len: func(d *Dataset) int { return len(d.InstalledDevices) },
	ID:  func(d *Dataset, i int) int { return d.InstalledDevices[i].ID },
	Row: func(d *Dataset, i int) []string {
		dev := d.InstalledDevices[i]
		return []string{
			formatInt(dev.ID), formatInt(dev.CustomerID), formatInt(dev.EquipmentID),
			formatDate(dev.InstallDate), formatDate(dev.WarrantyEnd),
			dev.SerialNumber, dev.Location, dev.Status,
			formatDatePtr(dev.LastMaintenance),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.InstalledDevices, record)
		dev := domain.InstalledDevice{
			ID:              r.Int(),
			CustomerID:      r.Int(),
			EquipmentID:     r.Int(),
			InstallDate:     r.Date(),
			WarrantyEnd:     r.Date(),
			SerialNumber:    r.Text(),
			Location:        r.Text(),
			Status:          r.Text(),
			LastMaintenance: r.DatePtr(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.InstalledDevices = append(d.InstalledDevices, dev)
		return nil
	},
}

var serviceCallsTable = Table{
	Name: domain.ServiceCalls,
	Columns: []Column{
		{"service_call_id", Int},
		{"customer_id", Int},
		{"technician_id", Int},
		{"equipment_id", Int},
		{"service_date", Date},
		{"service_type", Text},
		{"duration_hours", Decimal},
		{"labor_cost", Money},
		{"parts_cost", Money},
		{"total_cost", Money},
	},
	Len: func(d *Dataset) int { return len(d.ServiceCalls) },
	ID:  func(d *Dataset, i int) int { return d.ServiceCalls[i].ID },
	Row: func(d *Dataset, i int) []string {
		c := d.ServiceCalls[i]
		return []string{
			formatInt(c.ID), formatInt(c.CustomerID), formatInt(c.TechnicianID),
			formatInt(c.EquipmentID), formatDate(c.ServiceDate), c.ServiceType,
			formatDecimal(c.DurationHours), formatMoney(c.LaborCost),
			formatMoney(c.PartsCost), formatMoney(c.TotalCost),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.ServiceCalls, record)
		c := domain.ServiceCall{
			ID:            r.Int(),
			CustomerID:    r.Int(),
			TechnicianID:  r.Int(),
			EquipmentID:   r.Int(),
			ServiceDate:   r.Date(),
			ServiceType:   r.Text(),
			DurationHours: r.Float(),
			LaborCost:     r.Float(),
			PartsCost:     r.Float(),
			TotalCost:     r.Float(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.ServiceCalls = append(d.ServiceCalls, c)
		return nil
	},
}

var partsUsageTable = Table{
	Name: domain.PartsUsage,
	Columns: []Column{
		{"usage_id", Int},
		{"service_call_id", Int},
		{"part_id", Int},
		{"quantity_used", Int},
		{"usage_date", Date},
	},
	Len: func(d *Dataset) int { return len(d.PartsUsage) },
	ID:  func(d *Dataset, i int) int { return d.PartsUsage[i].ID },
	Row: func(d *Dataset, i int) []string {
		u := d.PartsUsage[i]
		return []string{
			formatInt(u.ID), formatInt(u.ServiceCallID), formatInt(u.PartID),
			formatInt(u.Quantity), formatDate(u.UsageDate),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.PartsUsage, record)
		u := domain.PartUsage{
			ID:            r.Int(),
			ServiceCallID: r.Int(),
			PartID:        r.Int(),
			Quantity:      r.Int(),
			UsageDate:     r.Date(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.PartsUsage = append(d.PartsUsage, u)
		return nil
	},
}

var incidentsTable = Table{
	Name: domain.IncidentResponse,
	Columns: []Column{
		{"incident_id", Int},
		{"service_call_id", Int},
		{"incident_type", Text},
		{"severity_level", Text},
		{"reported_time", DateTime},
		{"response_time_minutes", Int},
		{"resolution_time_minutes", Int},
		{"responding_technician_id", Int},
		{"backup_technician_id", Int},
		{"resolution_status", Text},
		{"customer_satisfaction", Int},
		{"follow_up_required", Bool},
	},
	Len: func(d *Dataset) int { return len(d.Incidents) },
	ID:  func(d *Dataset, i int) int { return d.Incidents[i].ID },
	Row: func(d *Dataset, i int) []string {
		in := d.Incidents[i]
		return []string{
			formatInt(in.ID), formatInt(in.ServiceCallID), in.IncidentType,
			in.Severity, formatDateTime(in.ReportedTime),
			formatInt(in.ResponseMinutes), formatInt(in.ResolutionMinutes),
			formatInt(in.RespondingTechID), formatIntPtr(in.BackupTechID),
			in.ResolutionStatus, formatInt(in.CustomerSatisfaction),
			formatBool(in.FollowUpRequired),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.IncidentResponse, record)
		in := domain.Incident{
			ID:                   r.Int(),
			ServiceCallID:        r.Int(),
			IncidentType:         r.Text(),
			Severity:             r.Text(),
			ReportedTime:         r.DateTime(),
			ResponseMinutes:      r.Int(),
			ResolutionMinutes:    r.Int(),
			RespondingTechID:     r.Int(),
			BackupTechID:         r.IntPtr(),
			ResolutionStatus:     r.Text(),
			CustomerSatisfaction: r.Int(),
			FollowUpRequired:     r.Bool(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Incidents = append(d.Incidents, in)
		return nil
	},
}

var vehiclesTable = Table{
	Name: domain.VehicleFleet,
	Columns: []Column{
		{"vehicle_id", Int},
		{"vehicle_number", Text},
		{"make", Text},
		{"model", Text},
		{"year", Int},
		{"vehicle_type", Text},
		{"license_plate", Text},
		{"vin", Text},
		{"assigned_technician_id", Int},
		{"purchase_date", Date},
		{"current_mileage", Int},
		{"last_maintenance_date", Date},
		{"next_maintenance_mileage", Int},
		{"status", Text},
		{"fuel_type", Text},
		{"gps_enabled", Bool},
	},
	Len: func(d *Dataset) int { return len(d.Vehicles) },
	ID:  func(d *Dataset, i int) int { return d.Vehicles[i].ID },
	Row: func(d *Dataset, i int) []string {
		v := d.Vehicles[i]
		return []string{
			formatInt(v.ID), v.Number, v.Make, v.Model, formatInt(v.Year),
			v.Type, v.LicensePlate, v.VIN, formatIntPtr(v.AssignedTechID),
			formatDate(v.PurchaseDate), formatInt(v.CurrentMileage),
			formatDate(v.LastMaintenance), formatInt(v.NextMaintenanceMileage),
			v.Status, v.FuelType, formatBool(v.GPSEnabled),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.VehicleFleet, record)
		v := domain.Vehicle{
			ID:                     r.Int(),
			Number:                 r.Text(),
			Make:                   r.Text(),
			Model:                  r.Text(),
			Year:                   r.Int(),
			Type:                   r.Text(),
			LicensePlate:           r.Text(),
			VIN:                    r.Text(),
			AssignedTechID:         r.IntPtr(),
			PurchaseDate:           r.Date(),
			CurrentMileage:         r.Int(),
			LastMaintenance:        r.Date(),
			NextMaintenanceMileage: r.Int(),
			Status:                 r.Text(),
			FuelType:               r.Text(),
			GPSEnabled:             r.Bool(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Vehicles = append(d.Vehicles, v)
		return nil
	},
}

var mailingListTable = Table{
	Name: domain.MailingList,
	Columns: []Column{
		{"contact_id", Int},
		{"customer_id", Int},
		{"email", Text},
		{"first_name", Text},
		{"last_name", Text},
		{"phone", Text},
		{"address", Text},
		{"contact_source", Text},
		{"subscription_status", Text},
		{"subscription_date", Date},
		{"preferred_contact_method", Text},
		{"interests", Text},
	},
	Len: func(d *Dataset) int { return len(d.MailingList) },
	ID:  func(d *Dataset, i int) int { return d.MailingList[i].ID },
	Row: func(d *Dataset, i int) []string {
		m := d.MailingList[i]
		return []string{
			formatInt(m.ID), formatIntPtr(m.CustomerID), m.Email,
			m.FirstName, m.LastName, m.Phone, m.Address, m.Source,
			m.SubscriptionStatus, formatDate(m.SubscriptionDate),
			m.PreferredContact, m.Interests,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.MailingList, record)
		m := domain.MailingContact{
			ID:                 r.Int(),
			CustomerID:         r.IntPtr(),
			Email:              r.Text(),
			FirstName:          r.Text(),
			LastName:           r.Text(),
			Phone:              r.Text(),
			Address:            r.Text(),
			Source:             r.Text(),
			SubscriptionStatus: r.Text(),
			SubscriptionDate:   r.Date(),
			PreferredContact:   r.Text(),
			Interests:          r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.MailingList = append(d.MailingList, m)
		return nil
	},
}

var subscriptionsTable = Table{
	Name: domain.Subscriptions,
	Columns: []Column{
		{"subscription_id", Int},
		{"customer_id", Int},
		{"service_plan", Text},
		{"start_date", Date},
		{"end_date", Date},
		{"annual_cost", Int},
		{"payment_frequency", Text},
		{"status", Text},
		{"auto_renewal", Bool},
		{"services_included", Text},
		{"discount_percentage", Int},
		{"next_service_date", Date},
	},
	Len: func(d *Dataset) int { return len(d.Subscriptions) },
	ID:  func(d *Dataset, i int) int { return d.Subscriptions[i].ID },
	Row: func(d *Dataset, i int) []string {
		s := d.Subscriptions[i]
		return []string{
			formatInt(s.ID), formatInt(s.CustomerID), s.Plan,
			formatDate(s.StartDate), formatDate(s.EndDate),
			formatInt(s.AnnualCost), s.PaymentFrequency, s.Status,
			formatBool(s.AutoRenewal), s.ServicesIncluded,
			formatInt(s.DiscountPercent), formatDatePtr(s.NextServiceDate),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Subscriptions, record)
		s := domain.Subscription{
			ID:               r.Int(),
			CustomerID:       r.Int(),
			Plan:             r.Text(),
			StartDate:        r.Date(),
			EndDate:          r.Date(),
			AnnualCost:       r.Int(),
			PaymentFrequency: r.Text(),
			Status:           r.Text(),
			AutoRenewal:      r.Bool(),
			ServicesIncluded: r.Text(),
			DiscountPercent:  r.Int(),
			NextServiceDate:  r.DatePtr(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Subscriptions = append(d.Subscriptions, s)
		return nil
	},
}

var invoicesTable = Table{
	Name: domain.Invoices,
	Columns: []Column{
		{"invoice_id", Int},
		{"invoice_number", Text},
		{"service_call_id", Int},
		{"customer_id", Int},
		{"issue_date", Date},
		{"due_date", Date},
		{"payment_terms", Text},
		{"subtotal", Money},
		{"tax_rate", Rate},
		{"tax_amount", Money},
		{"total_amount", Money},
		{"status", Text},
		{"notes", Text},
	},
	Len: func(d *Dataset) int { return len(d.Invoices) },
	ID:  func(d *Dataset, i int) int { return d.Invoices[i].ID },
	Row: func(d *Dataset, i int) []string {
		v := d.Invoices[i]
		return []string{
			formatInt(v.ID), v.Number, formatInt(v.ServiceCallID),
			formatInt(v.CustomerID), formatDate(v.IssueDate),
			formatDate(v.DueDate), v.PaymentTerms, formatMoney(v.Subtotal),
			formatRate(v.TaxRate), formatMoney(v.TaxAmount),
			formatMoney(v.Total), v.Status, v.Notes,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Invoices, record)
		v := domain.Invoice{
			ID:            r.Int(),
			Number:        r.Text(),
			ServiceCallID: r.Int(),
			CustomerID:    r.Int(),
			IssueDate:     r.Date(),
			DueDate:       r.Date(),
			PaymentTerms:  r.Text(),
			Subtotal:      r.Float(),
			TaxRate:       r.Float(),
			TaxAmount:     r.Float(),
			Total:         r.Float(),
			Status:        r.Text(),
			Notes:         r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Invoices = append(d.Invoices, v)
		return nil
	},
}

var paymentsTable = Table{
	Name: domain.Payments,
	Columns: []Column{
		{"payment_id", Int},
		{"invoice_id", Int},
		{"payment_date", Date},
		{"amount", Money},
		{"payment_method", Text},
		{"transaction_id", Text},
		{"status", Text},
		{"processing_fee", Money},
		{"notes", Text},
	},
	Len: func(d *Dataset) int { return len(d.Payments) },
	ID:  func(d *Dataset, i int) int { return d.Payments[i].ID },
	Row: func(d *Dataset, i int) []string {
		p := d.Payments[i]
		return []string{
			formatInt(p.ID), formatInt(p.InvoiceID), formatDate(p.PaymentDate),
			formatMoney(p.Amount), p.Method, p.TransactionID, p.Status,
			formatMoney(p.ProcessingFee), p.Notes,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Payments, record)
		p := domain.Payment{
			ID:            r.Int(),
			InvoiceID:     r.Int(),
			PaymentDate:   r.Date(),
			Amount:        r.Float(),
			Method:        r.Text(),
			TransactionID: r.Text(),
			Status:        r.Text(),
			ProcessingFee: r.Float(),
			Notes:         r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Payments = append(d.Payments, p)
		return nil
	},
}

var inventoryTable = Table{
	Name: domain.Inventory,
	Columns: []Column{
		{"inventory_id", Int},
		{"part_id", Int},
		{"warehouse_location", Text},
		{"current_stock", Int},
		{"reorder_point", Int},
		{"max_stock_level", Int},
		{"last_restock_date", Date},
		{"last_restock_quantity", Int},
		{"avg_monthly_usage", Int},
		{"stock_status", Text},
		{"supplier_lead_time_days", Int},
		{"abc_classification", Text},
		{"last_count_date", Date},
		{"unit_cost", Money},
		{"total_value", Money},
	},
	Len: func(d *Dataset) int { return len(d.Inventory) },
	ID:  func(d *Dataset, i int) int { return d.Inventory[i].ID },
	Row: func(d *Dataset, i int) []string {
		v := d.Inventory[i]
		return []string{
			formatInt(v.ID), formatInt(v.PartID), v.WarehouseLocation,
			formatInt(v.CurrentStock), formatInt(v.ReorderPoint),
			formatInt(v.MaxStock), formatDate(v.LastRestockDate),
			formatInt(v.LastRestockQty), formatInt(v.AvgMonthlyUsage),
			v.StockStatus, formatInt(v.SupplierLeadTimeDays), v.ABCClass,
			formatDate(v.LastCountDate), formatMoney(v.UnitCost),
			formatMoney(v.TotalValue),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Inventory, record)
		v := domain.InventoryItem{
			ID:                   r.Int(),
			PartID:               r.Int(),
			WarehouseLocation:    r.Text(),
			CurrentStock:         r.Int(),
			ReorderPoint:         r.Int(),
			MaxStock:             r.Int(),
			LastRestockDate:      r.Date(),
			LastRestockQty:       r.Int(),
			AvgMonthlyUsage:      r.Int(),
			StockStatus:          r.Text(),
			SupplierLeadTimeDays: r.Int(),
			ABCClass:             r.Text(),
			LastCountDate:        r.Date(),
			UnitCost:             r.Float(),
			TotalValue:           r.Float(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Inventory = append(d.Inventory, v)
		return nil
	},
}

var appointmentsTable = Table{
	Name: domain.Appointments,
	Columns: []Column{
		{"appointment_id", Int},
		{"customer_id", Int},
		{"technician_id", Int},
		{"service_call_id", Int},
		{"appointment_date", Date},
		{"scheduled_time", DateTime},
		{"appointment_type", Text},
		{"estimated_duration_hours", Decimal},
		{"status", Text},
		{"priority", Text},
		{"special_instructions", Text},
		{"created_date", Date},
		{"confirmed_date", DateTime},
	},
	Len: func(d *Dataset) int { return len(d.Appointments) },
	ID:  func(d *Dataset, i int) int { return d.Appointments[i].ID },
	Row: func(d *Dataset, i int) []string {
		a := d.Appointments[i]
		return []string{
			formatInt(a.ID), formatInt(a.CustomerID), formatInt(a.TechnicianID),
			formatIntPtr(a.ServiceCallID), formatDate(a.Date),
			formatDateTime(a.ScheduledTime), a.Type,
			formatDecimal(a.EstimatedDurationHours), a.Status, a.Priority,
			a.SpecialInstructions, formatDate(a.CreatedDate),
			formatDateTimePtr(a.ConfirmedDate),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Appointments, record)
		a := domain.Appointment{
			ID:                     r.Int(),
			CustomerID:             r.Int(),
			TechnicianID:           r.Int(),
			ServiceCallID:          r.IntPtr(),
			Date:                   r.Date(),
			ScheduledTime:          r.DateTime(),
			Type:                   r.Text(),
			EstimatedDurationHours: r.Float(),
			Status:                 r.Text(),
			Priority:               r.Text(),
			SpecialInstructions:    r.Text(),
			CreatedDate:            r.Date(),
			ConfirmedDate:          r.DateTimePtr(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Appointments = append(d.Appointments, a)
		return nil
	},
}

var quotesTable = Table{
	Name: domain.Quotes,
	Columns: []Column{
		{"quote_id", Int},
		{"quote_number", Text},
		{"customer_id", Int},
		{"equipment_id", Int},
		{"quote_date", Date},
		{"valid_until", Date},
		{"quote_type", Text},
		{"description", Text},
		{"labor_hours", Decimal},
		{"labor_rate", Int},
		{"labor_cost", Money},
		{"equipment_cost", Money},
		{"parts_cost", Money},
		{"total_amount", Money},
		{"status", Text},
		{"created_by", Text},
		{"follow_up_date", Date},
		{"notes", Text},
	},
	Len: func(d *Dataset) int { return len(d.Quotes) },
	ID:  func(d *Dataset, i int) int { return d.Quotes[i].ID },
	Row: func(d *Dataset, i int) []string {
		q := d.Quotes[i]
		return []string{
			formatInt(q.ID), q.Number, formatInt(q.CustomerID),
			formatIntPtr(q.EquipmentID), formatDate(q.QuoteDate),
			formatDate(q.ValidUntil), q.Type, q.Description,
			formatDecimal(q.LaborHours), formatInt(q.LaborRate),
			formatMoney(q.LaborCost), formatMoney(q.EquipmentCost),
			formatMoney(q.PartsCost), formatMoney(q.Total), q.Status,
			q.CreatedBy, formatDatePtr(q.FollowUpDate), q.Notes,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Quotes, record)
		q := domain.Quote{
			ID:            r.Int(),
			Number:        r.Text(),
			CustomerID:    r.Int(),
			EquipmentID:   r.IntPtr(),
			QuoteDate:     r.Date(),
			ValidUntil:    r.Date(),
			Type:          r.Text(),
			Description:   r.Text(),
			LaborHours:    r.Float(),
			LaborRate:     r.Int(),
			LaborCost:     r.Float(),
			EquipmentCost: r.Float(),
			PartsCost:     r.Float(),
			Total:         r.Float(),
			Status:        r.Text(),
			CreatedBy:     r.Text(),
			FollowUpDate:  r.DatePtr(),
			Notes:         r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Quotes = append(d.Quotes, q)
		return nil
	},
}

var workOrdersTable = Table{
	Name: domain.WorkOrders,
	Columns: []Column{
		{"work_order_id", Int},
		{"service_call_id", Int},
		{"technician_id", Int},
		{"work_order_number", Text},
		{"description", Text},
		{"instructions", Text},
		{"safety_requirements", Text},
		{"estimated_hours", Decimal},
		{"actual_hours", Decimal},
		{"status", Text},
		{"priority", Text},
		{"completion_notes", Text},
		{"customer_signature_required", Bool},
	},
	Len: func(d *Dataset) int { return len(d.WorkOrders) },
	ID:  func(d *Dataset, i int) int { return d.WorkOrders[i].ID },
	Row: func(d *Dataset, i int) []string {
		w := d.WorkOrders[i]
		return []string{
			formatInt(w.ID), formatInt(w.ServiceCallID), formatInt(w.TechnicianID),
			w.Number, w.Description, w.Instructions, w.SafetyRequirements,
			formatDecimal(w.EstimatedHours), formatDecimal(w.ActualHours),
			w.Status, w.Priority, w.CompletionNotes,
			formatBool(w.SignatureRequired),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.WorkOrders, record)
		w := domain.WorkOrder{
			ID:                 r.Int(),
			ServiceCallID:      r.Int(),
			TechnicianID:       r.Int(),
			Number:             r.Text(),
			Description:        r.Text(),
			Instructions:       r.Text(),
			SafetyRequirements: r.Text(),
			EstimatedHours:     r.Float(),
			ActualHours:        r.Float(),
			Status:             r.Text(),
			Priority:           r.Text(),
			CompletionNotes:    r.Text(),
			SignatureRequired:  r.Bool(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.WorkOrders = append(d.WorkOrders, w)
		return nil
	},
}

var feedbackTable = Table{
	Name: domain.CustomerFeedback,
	Columns: []Column{
		{"feedback_id", Int},
		{"service_call_id", Int},
		{"customer_id", Int},
		{"feedback_date", Date},
		{"feedback_type", Text},
		{"overall_satisfaction", Int},
		{"technician_rating", Int},
		{"timeliness_rating", Int},
		{"quality_rating", Int},
		{"value_rating", Int},
		{"satisfaction_category", Text},
		{"comments", Text},
		{"would_recommend", Bool},
		{"follow_up_required", Bool},
		{"source", Text},
	},
	Len: func(d *Dataset) int { return len(d.Feedback) },
	ID:  func(d *Dataset, i int) int { return d.Feedback[i].ID },
	Row: func(d *Dataset, i int) []string {
		f := d.Feedback[i]
		return []string{
			formatInt(f.ID), formatInt(f.ServiceCallID), formatInt(f.CustomerID),
			formatDate(f.FeedbackDate), f.Type, formatInt(f.Overall),
			formatInt(f.TechnicianRating), formatInt(f.TimelinessRating),
			formatInt(f.QualityRating), formatInt(f.ValueRating), f.Category,
			f.Comments, formatBool(f.WouldRecommend),
			formatBool(f.FollowUpRequired), f.Source,
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.CustomerFeedback, record)
		f := domain.CustomerFeedback{
			ID:               r.Int(),
			ServiceCallID:    r.Int(),
			CustomerID:       r.Int(),
			FeedbackDate:     r.Date(),
			Type:             r.Text(),
			Overall:          r.Int(),
			TechnicianRating: r.Int(),
			TimelinessRating: r.Int(),
			QualityRating:    r.Int(),
			ValueRating:      r.Int(),
			Category:         r.Text(),
			Comments:         r.Text(),
			WouldRecommend:   r.Bool(),
			FollowUpRequired: r.Bool(),
			Source:           r.Text(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Feedback = append(d.Feedback, f)
		return nil
	},
}

var leadsTable = Table{
	Name: domain.Leads,
	Columns: []Column{
		{"lead_id", Int},
		{"first_name", Text},
		{"last_name", Text},
		{"company_name", Text},
		{"phone", Text},
		{"email", Text},
		{"address", Text},
		{"lead_source", Text},
		{"service_interest", Text},
		{"estimated_value", Money},
		{"urgency", Text},
		{"status", Text},
		{"created_date", Date},
		{"last_contact_date", Date},
		{"assigned_to", Text},
		{"notes", Text},
		{"conversion_probability", Int},
	},
	Len: func(d *Dataset) int { return len(d.Leads) },
	ID:  func(d *Dataset, i int) int { return d.Leads[i].ID },
	Row: func(d *Dataset, i int) []string {
		l := d.Leads[i]
		return []string{
			formatInt(l.ID), l.FirstName, l.LastName, l.CompanyName, l.Phone,
			l.Email, l.Address, l.Source, l.ServiceInterest,
			formatMoney(l.EstimatedValue), l.Urgency, l.Status,
			formatDate(l.CreatedDate), formatDatePtr(l.LastContactDate),
			l.AssignedTo, l.Notes, formatInt(l.ConversionProbability),
		}
	},
	Scan: func(d *Dataset, record []string) error {
		r := newRowReader(domain.Leads, record)
		l := domain.Lead{
			ID:                    r.Int(),
			FirstName:             r.Text(),
			LastName:              r.Text(),
			CompanyName:           r.Text(),
			Phone:                 r.Text(),
			Email:                 r.Text(),
			Address:               r.Text(),
			Source:                r.Text(),
			ServiceInterest:       r.Text(),
			EstimatedValue:        r.Float(),
			Urgency:               r.Text(),
			Status:                r.Text(),
			CreatedDate:           r.Date(),
			LastContactDate:       r.DatePtr(),
			AssignedTo:            r.Text(),
			Notes:                 r.Text(),
			ConversionProbability: r.Int(),
		}
		if err := r.Err(); err != nil {
			return err
		}
		d.Leads = append(d.Leads, l)
		return nil
	},
}
