package domain

import "time"

// Service call types. Type frequency and technician assignment skew are
// declared in weights.go.
const (
	ServiceMaintenance  = "Maintenance"
	ServiceRepair       = "Repair"
	ServiceInstallation = "Installation"
	ServiceInspection   = "Inspection"
	ServiceEmergency    = "Emergency"
)

// Incident severities, ordered from most to least urgent. Severity is derived
// from response time, never sampled.
const (
	SeverityCritical = "Critical"
	SeverityHigh     = "High"
	SeverityMedium   = "Medium"
	SeverityLow      = "Low"
)

// Work priorities shared by work orders and appointments.
const (
	PriorityEmergency = "Emergency"
	PriorityHigh      = "High"
	PriorityMedium    = "Medium"
	PriorityLow       = "Low"
)

type InstalledDevice struct {
	ID              int
	CustomerID      int
	EquipmentID     int
	InstallDate     time.Time
	WarrantyEnd     time.Time
	SerialNumber    string
	Location        string
	Status          string
	LastMaintenance *time.Time
}

type ServiceCall struct {
	ID            int
	CustomerID    int
	TechnicianID  int
	EquipmentID   int
	ServiceDate   time.Time
	ServiceType   string
	DurationHours float64
	LaborCost     float64
	PartsCost     float64
	TotalCost     float64
}

type PartUsage struct {
	ID            int
	ServiceCallID int
	PartID        int
	Quantity      int
	UsageDate     time.Time
}

type Incident struct {
	ID                   int
	ServiceCallID        int
	IncidentType         string
	Severity             string
	ReportedTime         time.Time
	ResponseMinutes      int
	ResolutionMinutes    int
	RespondingTechID     int
	BackupTechID         *int
	ResolutionStatus     string
	CustomerSatisfaction int
	FollowUpRequired     bool
}

type WorkOrder struct {
	ID                 int
	ServiceCallID      int
	TechnicianID       int
	Number             string
	Description        string
	Instructions       string
	SafetyRequirements string
	EstimatedHours     float64
	ActualHours        float64
	Status             string
	Priority           string
	CompletionNotes    string
	SignatureRequired  bool
}

type Appointment struct {
	ID                     int
	CustomerID             int
	TechnicianID           int
	ServiceCallID          *int
	Date                   time.Time
	ScheduledTime          time.Time
	Type                   string
	EstimatedDurationHours float64
	Status                 string
	Priority               string
	SpecialInstructions    string
	CreatedDate            time.Time
	ConfirmedDate          *time.Time
}
