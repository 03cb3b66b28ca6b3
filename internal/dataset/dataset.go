// Package dataset holds a generated dataset in memory and knows how each
// entity table maps to flat rows: column names, column kinds, cell encoding
// and decoding. Generation, export, verification, and loading all speak
// through the table registry here, so the column contract lives in exactly
// one place.
package dataset

import "github.com/fieldforge/fieldforge/internal/domain"

// Dataset is one complete relational dataset. Slices are ordered by ID; the
// generator appends in ID order and the reader preserves file order, so
// position i always holds ID i+1 in a well-formed dataset.
type Dataset struct {
	Customers        []domain.Customer
	Technicians      []domain.Technician
	EquipmentTypes   []domain.EquipmentType
	Parts            []domain.Part
	InstalledDevices []domain.InstalledDevice
	ServiceCalls     []domain.ServiceCall
	PartsUsage       []domain.PartUsage
	Incidents        []domain.Incident
	Vehicles         []domain.Vehicle
	MailingList      []domain.MailingContact
	Subscriptions    []domain.Subscription
	Invoices         []domain.Invoice
	Payments         []domain.Payment
	Inventory        []domain.InventoryItem
	Appointments     []domain.Appointment
	Quotes           []domain.Quote
	WorkOrders       []domain.WorkOrder
	Feedback         []domain.Feedback
	Leads            []domain.Lead
}

// Rows returns the total row count across all tables.
func (d *Dataset) Rows() int {
	total := 0
	for _, t := range All() {
		total += t.Len(d)
	}
	return total
}

// MaxID returns the highest ID present in t, or 0 when the table is empty.
// IDs are dense and increasing in well-formed datasets, but MaxID scans
// anyway so a hand-edited file cannot silently produce colliding IDs.
func MaxID(d *Dataset, t Table) int {
	max := 0
	for i := 0; i < t.Len(d); i++ {
		if id := t.ID(d, i); id > max {
			max = id
		}
	}
	return max
}
