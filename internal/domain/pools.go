package domain

// Value pools for fabricated text fields. Pools are fixed vars so that two
// runs with the same seed draw identical values; generators index into them
// through the shared sampler and never mutate them.

// Person and company naming.
var (
	FirstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
		"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Carlos", "Karen", "Daniel",
		"Lisa", "Matthew", "Nancy", "Anthony", "Betty", "Marcus", "Sandra",
		"Steven", "Ashley", "Andre", "Emily", "Joshua", "Michelle", "Kevin",
		"Amanda", "Brian", "Melissa", "Luis", "Deborah",
	}
	LastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez",
		"Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
		"Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	}
	CompanyCores = []string{
		"Summit", "Pinnacle", "Riverside", "Metro", "Lakeview", "Cornerstone",
		"Heritage", "Crestwood", "Oakmont", "Sterling", "Harbor", "Evergreen",
		"Redstone", "Brightway", "Northgate", "Clearwater",
	}
	CompanySuffixes = []string{
		"Properties", "Holdings", "Group", "Partners", "Enterprises",
		"Management", "Realty", "Restaurants", "Retail", "Logistics",
		"Manufacturing", "Medical Center",
	}
	Suppliers = []string{
		"Allied HVAC Supply", "Johnstone Supply", "Ferguson Distribution",
		"Baker Wholesale", "Gemaire Distributors", "Midwest Parts Depot",
		"United Refrigeration", "ClimateSource Inc", "ProFlow Supply Co",
		"Keystone Mechanical Supply",
	}
)

// Address fabrication.
var (
	StreetNames = []string{
		"Maple Street", "Oak Avenue", "Cedar Lane", "Elm Drive", "Washington Boulevard",
		"Lincoln Road", "Park Avenue", "Sunset Drive", "Highland Court", "Ridge Road",
		"Willow Way", "Birch Street", "Franklin Avenue", "Jefferson Street",
		"Lakeshore Drive", "Meadow Lane", "Canyon Road", "Harbor Street",
	}
	Cities = []string{
		"Springfield", "Riverton", "Fairview", "Georgetown", "Clinton",
		"Salem", "Madison", "Bristol", "Clayton", "Dayton", "Lexington",
		"Milford", "Ashland", "Burlington", "Dover", "Hudson",
	}
	States = []string{
		"OH", "IL", "IN", "MI", "PA", "NC", "GA", "TN", "MO", "WI",
		"KY", "VA", "TX", "FL", "CO", "AZ",
	}
)

// Equipment catalog.
var (
	EquipmentBrands    = []string{"Carrier", "Trane", "Lennox", "Rheem", "Goodman", "York", "Daikin"}
	EquipmentKinds     = []string{"Central AC", "Heat Pump", "Furnace", "Ductless Mini-Split", "Package Unit"}
	ModelPrefixes      = []string{"X", "Pro", "Elite", "Prime"}
	BTURatings         = []int{18000, 24000, 36000, 48000, 60000}
	DeviceLocations    = []string{"Main Floor", "Basement", "Attic", "Garage", "Roof"}
	DeviceStatuses     = []string{"Active", "Inactive", "Under Maintenance", "Replaced"}
	WarrantyMonthTerms = []int{12, 24, 36, 60}
)

// Parts catalog. Part names compose a category with a descriptor word.
var (
	PartCategories = []string{
		"Filter", "Compressor", "Coil", "Fan Motor", "Thermostat",
		"Capacitor", "Contactor", "Refrigerant", "Ductwork", "Valve",
	}
	PartDescriptors = []string{
		"Apex", "Titan", "Vortex", "Summit", "Polar", "Nimbus", "Quantum",
		"Delta", "Omega", "Falcon", "Atlas", "Zenith", "Breeze", "Glacier",
		"Ember", "Orion",
	}
)

// Technician credentials.
var (
	TechnicianLevels    = []string{LevelJunior, LevelSenior, LevelLead, LevelSpecialist}
	CertificationLevels = []string{"Basic", "Intermediate", "Advanced", "Master"}
)

// Service and incident vocabulary.
var (
	ServiceTypes = []string{
		ServiceMaintenance, ServiceRepair, ServiceInstallation,
		ServiceInspection, ServiceEmergency,
	}
	IncidentTypes = []string{
		"No Heat/AC", "Gas Leak", "Electrical Issue", "Water Damage",
		"System Failure", "Carbon Monoxide Alert",
	}
	ResolutionStatuses = []string{"Resolved", "Pending", "Escalated", "Requires Follow-up"}
	SafetyRequirements = []string{"Standard PPE", "Electrical Safety", "Confined Space", "Height Work"}
	WorkOrderStatuses  = []string{"Open", "In Progress", "Completed", "On Hold", "Cancelled"}
)

// Scheduling vocabulary.
var (
	AppointmentTypes = []string{
		"Maintenance", "Repair", "Installation", "Inspection", "Emergency", "Consultation",
	}
	FutureAppointmentStatuses = []string{"Scheduled", "Confirmed"}
	FuturePriorities          = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// Billing vocabulary.
var (
	PaymentTermsOptions = []string{"Net 15", "Net 30", "Due on Receipt", "Net 45"}
	InvoiceStatuses     = []string{InvoicePaid, InvoicePending, InvoiceOverdue, "Cancelled"}
	TaxRates            = []float64{0.065, 0.075, 0.08, 0.085}
	PaymentMethods      = []string{"Credit Card", "Check", "Cash", "ACH Transfer", "Online Payment"}
)

// Subscription plans.
var (
	ServicePlans         = []string{"Basic", "Premium", "Comprehensive", "Commercial"}
	SubscriptionStatuses = []string{"Active", "Expired", "Cancelled", "Suspended"}
	PaymentFrequencies   = []string{"Monthly", "Quarterly", "Annual"}
	ContractMonthTerms   = []int{12, 24, 36}
	DiscountPercentages  = []int{0, 5, 10, 15, 20}
	ServiceBundles       = []string{
		"Seasonal Tune-ups, Priority Service",
		"Bi-annual Maintenance, Parts Discount",
		"Quarterly Inspections, Emergency Service",
		"Monthly Monitoring, Full Coverage",
	}
)

// PlanCosts maps each service plan to its flat annual cost in dollars.
var PlanCosts = map[string]int{
	"Basic":         120,
	"Premium":       200,
	"Comprehensive": 350,
	"Commercial":    500,
}

// Quoting vocabulary.
var (
	QuoteTypes    = []string{"Repair", "Installation", "Replacement", "Maintenance Contract", "System Upgrade"}
	QuoteStatuses = []string{"Pending", "Accepted", "Declined", "Expired", "Revised"}
)

// Fleet vocabulary. Models are drawn per make so the pairing stays plausible.
var (
	VehicleMakes    = []string{"Ford", "Chevrolet", "Ram", "GMC", "Mercedes"}
	VehicleTypes    = []string{"Van", "Truck", "SUV"}
	VehicleStatuses = []string{"Active", "Maintenance", "Out of Service", "Retired"}
	FuelTypes       = []string{"Gasoline", "Diesel", "Hybrid"}
	VehicleModels   = map[string][]string{
		"Ford":      {"Transit", "E-350", "F-250"},
		"Chevrolet": {"Express", "Silverado 2500", "Tahoe"},
		"Ram":       {"ProMaster", "2500", "1500"},
		"GMC":       {"Savana", "Sierra 2500", "Yukon"},
		"Mercedes":  {"Sprinter", "Metris", "GLE"},
	}
)

// Marketing vocabulary.
var (
	ProspectSources        = []string{"Website", "Referral", "Trade Show", "Social Media", "Direct Mail"}
	MailingStatuses        = []string{"Subscribed", "Unsubscribed"}
	ContactMethods         = []string{"Email", "Phone", "Mail"}
	MailingInterests       = []string{"Maintenance Tips", "Seasonal Offers", "New Products", "Energy Efficiency"}
	EmailDomains           = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "icloud.com"}
	ExistingCustomerSource = "Existing Customer"
)

// Lead pipeline vocabulary.
var (
	LeadSources      = []string{"Website", "Referral", "Cold Call", "Trade Show", "Social Media", "Advertisement"}
	LeadStatuses     = []string{"New", "Contacted", "Qualified", "Converted", "Lost", "Nurturing"}
	ServiceInterests = []string{"AC Repair", "Heating Repair", "Installation", "Maintenance", "Emergency Service"}
	UrgencyLevels    = []string{"Low", "Medium", "High"}
)

// Feedback vocabulary.
var (
	FeedbackTypes   = []string{"Survey", "Review", "Complaint", "Compliment", "Suggestion"}
	FeedbackSources = []string{"Email Survey", "Phone Call", "Online Review", "In Person"}
)

// Inventory vocabulary.
var (
	WarehouseAisles = []string{"A", "B", "C"}
	ABCClasses      = []string{"A", "B", "C"}
)

// Free-text phrase pools. Longer narrative fields stitch two or three of
// these together rather than drawing lorem ipsum.
var (
	WorkDescriptions = []string{
		"Customer reported uneven cooling across the second floor",
		"Annual maintenance visit covering full system inspection",
		"Replace failed blower motor and verify airflow at registers",
		"Refrigerant level check after reported loss of cooling capacity",
		"Install replacement condenser unit and recharge system",
		"Inspect heat exchanger for cracks and test for carbon monoxide",
		"Thermostat reading inconsistent with measured room temperature",
		"Condensate drain line backing up into the secondary pan",
		"Recurring breaker trips when compressor engages",
		"Seasonal tune-up including coil cleaning and filter change",
	}
	WorkInstructions = []string{
		"Verify power is isolated at the disconnect before opening panels",
		"Check static pressure before and after filter replacement",
		"Record refrigerant pressures on both sides of the system",
		"Confirm thermostat calibration against a reference thermometer",
		"Photograph the nameplate and existing wiring before replacement",
		"Test safety switches and float valves before leaving the site",
		"Flush the condensate line and treat with algaecide tablets",
		"Torque electrical lugs to manufacturer specification",
	}
	CompletionNotes = []string{
		"Work completed as described, system operating within spec",
		"Replaced the faulty component and verified normal operation",
		"System tested across two full cycles with no faults",
		"Advised customer on filter replacement schedule",
		"Minor corrosion noted on the condenser, recommend monitoring",
		"All safety checks passed, paperwork left with the customer",
	}
	FeedbackComments = []string{
		"Technician arrived on time and explained the work clearly",
		"Service took longer than quoted but the result was solid",
		"Very professional crew, cleaned up thoroughly after the job",
		"Pricing felt high for the time spent on site",
		"Our system has run flawlessly since the visit",
		"Scheduling was easy and the reminder calls were helpful",
		"Would have liked more detail on the invoice line items",
		"The repair did not hold and we had to call back a week later",
		"Friendly technician who answered all of our questions",
		"Booking took two attempts but the visit itself went well",
	}
	SpecialInstructions = []string{
		"Gate code 4417, lock the gate when leaving",
		"Dog in the backyard, call before entering",
		"Use the service entrance on the north side",
		"Customer prefers afternoon arrival after 1pm",
		"Parking available behind the building only",
		"Attic access is through the master bedroom closet",
	}
	InvoiceNotes = []string{
		"Thank you for your business",
		"Warranty covered the replacement part",
		"Includes seasonal service discount",
		"Second notice, please remit promptly",
		"Applied returning customer credit",
	}
	QuoteDescriptions = []string{
		"Full replacement of aging rooftop package unit including crane lift",
		"High-efficiency heat pump installation with new line set",
		"Ductwork reroute and sealing for the finished basement",
		"Two-stage furnace upgrade with smart thermostat integration",
		"Annual maintenance contract covering two seasonal visits",
		"Mini-split installation for the garage conversion",
		"Compressor replacement under extended parts warranty",
		"Zoning system addition with three independent dampers",
	}
	LeadNotes = []string{
		"Asked for a callback next week to discuss financing",
		"Comparing quotes from two other contractors",
		"Current system is fifteen years old and failing",
		"Referred by an existing maintenance customer",
		"Wants an estimate before the summer season",
		"Budget conscious, emphasized rebate eligibility",
	}
)
