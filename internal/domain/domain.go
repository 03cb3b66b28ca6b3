// Package domain declares the fixed business schema of the generated dataset:
// the nineteen entity types, their parent relationships, and the categorical
// value pools every generator samples from. Nothing in this package touches
// randomness or I/O; it is pure declaration.
package domain

// Entity table names. These double as the exported file stems (customers.csv,
// service_calls.csv, ...) and as the keys accepted by the counts/increments
// configuration maps.
const (
	Customers        = "customers"
	Technicians      = "technicians"
	EquipmentTypes   = "equipment_types"
	Parts            = "parts"
	InstalledDevices = "installed_devices"
	ServiceCalls     = "service_calls"
	PartsUsage       = "parts_usage"
	IncidentResponse = "incident_response"
	VehicleFleet     = "vehicle_fleet"
	MailingList      = "mailing_list"
	Subscriptions    = "subscriptions"
	Invoices         = "invoices"
	Payments         = "payments"
	Inventory        = "inventory"
	Appointments     = "appointments"
	Quotes           = "quotes"
	WorkOrders       = "work_orders"
	CustomerFeedback = "customer_feedback"
	Leads            = "leads"
)

// Entities lists every entity type in declaration order. The dependency
// scheduler uses this order as its deterministic tiebreak, so with the DAG
// below the computed generation order is exactly this slice. Exports follow
// the same order.
var Entities = []string{
	Customers,
	Technicians,
	EquipmentTypes,
	Parts,
	InstalledDevices,
	ServiceCalls,
	PartsUsage,
	IncidentResponse,
	VehicleFleet,
	MailingList,
	Subscriptions,
	Invoices,
	Payments,
	Inventory,
	Appointments,
	Quotes,
	WorkOrders,
	CustomerFeedback,
	Leads,
}

// Parents declares the foreign-key dependency graph: each entity maps to the
// entity types it references. Root entities are present with a nil list so
// the scheduler can detect unknown names in configuration.
var Parents = map[string][]string{
	Customers:        nil,
	Technicians:      nil,
	EquipmentTypes:   nil,
	Parts:            nil,
	Leads:            nil,
	InstalledDevices: {Customers, EquipmentTypes},
	ServiceCalls:     {Customers, Technicians, EquipmentTypes},
	PartsUsage:       {ServiceCalls, Parts},
	IncidentResponse: {ServiceCalls, Technicians},
	VehicleFleet:     {Technicians},
	MailingList:      {Customers},
	Subscriptions:    {Customers},
	Invoices:         {ServiceCalls, Customers},
	Payments:         {Invoices},
	Inventory:        {Parts},
	Appointments:     {Customers, Technicians, ServiceCalls},
	Quotes:           {Customers, EquipmentTypes},
	WorkOrders:       {ServiceCalls, Technicians},
	CustomerFeedback: {ServiceCalls, Customers},
}

// Known reports whether name is a declared entity type.
func Known(name string) bool {
	_, ok := Parents[name]
	return ok
}
