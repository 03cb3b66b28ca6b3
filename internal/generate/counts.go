package generate

// Counts sizes one generation run. Independent entities carry explicit row
// counts; dependent entities (work orders, invoices, payments, parts usage,
// inventory, per-customer mailing contacts) size themselves from their
// parents through the knobs at the bottom.
type Counts struct {
	Customers        int `mapstructure:"customers" json:"customers"`
	Technicians      int `mapstructure:"technicians" json:"technicians"`
	EquipmentTypes   int `mapstructure:"equipment_types" json:"equipment_types"`
	Parts            int `mapstructure:"parts" json:"parts"`
	InstalledDevices int `mapstructure:"installed_devices" json:"installed_devices"`
	ServiceCalls     int `mapstructure:"service_calls" json:"service_calls"`
	Incidents        int `mapstructure:"incidents" json:"incidents"`
	Vehicles         int `mapstructure:"vehicles" json:"vehicles"`
	MailingProspects int `mapstructure:"mailing_prospects" json:"mailing_prospects"`
	Subscriptions    int `mapstructure:"subscriptions" json:"subscriptions"`
	Appointments     int `mapstructure:"appointments" json:"appointments"`
	Quotes           int `mapstructure:"quotes" json:"quotes"`
	Feedback         int `mapstructure:"feedback" json:"feedback"`
	Leads            int `mapstructure:"leads" json:"leads"`

	// InvoicePercent is the share of service calls that get invoiced; the
	// rest are treated as warranty or goodwill visits.
	InvoicePercent float64 `mapstructure:"invoice_percent" json:"invoice_percent"`
	// MaxPartsPerCall caps the parts-usage rows drawn per service call.
	MaxPartsPerCall int `mapstructure:"max_parts_per_call" json:"max_parts_per_call"`
}

// DefaultCounts sizes a full dataset: a mid-size service company with two
// years of history.
func DefaultCounts() Counts {
	return Counts{
		Customers:        500,
		Technicians:      15,
		EquipmentTypes:   50,
		Parts:            200,
		InstalledDevices: 800,
		ServiceCalls:     2000,
		Incidents:        150,
		Vehicles:         20,
		MailingProspects: 300,
		Subscriptions:    250,
		Appointments:     500,
		Quotes:           400,
		Feedback:         800,
		Leads:            600,
		InvoicePercent:   0.85,
		MaxPartsPerCall:  4,
	}
}

// DefaultIncrements sizes an extension: a few weeks of organic growth. The
// stable fleet and install base do not grow by default, while call volume
// and the sales pipeline do.
func DefaultIncrements() Counts {
	return Counts{
		Customers:        5,
		Technicians:      2,
		EquipmentTypes:   3,
		Parts:            10,
		InstalledDevices: 0,
		ServiceCalls:     200,
		Incidents:        50,
		Vehicles:         0,
		MailingProspects: 0,
		Subscriptions:    0,
		Appointments:     50,
		Quotes:           30,
		Feedback:         100,
		Leads:            50,
		InvoicePercent:   0.85,
		MaxPartsPerCall:  4,
	}
}
