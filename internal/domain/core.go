package domain

import "time"

// Customer types. Lowercase is deliberate: the values predate this tool and
// downstream reports match on them exactly.
const (
	CustomerResidential = "residential"
	CustomerCommercial  = "commercial"
)

type Customer struct {
	ID        int
	Name      string
	Address   string
	Phone     string
	Type      string
	CreatedAt time.Time
}

// Technician skill levels, in ascending seniority.
const (
	LevelJunior     = "junior"
	LevelSenior     = "senior"
	LevelLead       = "lead"
	LevelSpecialist = "specialist"
)

// SkillSet holds the per-discipline proficiency scores (1..10) carried by
// every technician. Scores cluster around the level's base competency.
type SkillSet struct {
	HVACInstallation int
	Electrical       int
	Refrigeration    int
	Ductwork         int
	Diagnostics      int
	CustomerService  int
	SafetyProtocols  int
}

type Technician struct {
	ID                 int
	Name               string
	Phone              string
	Level              string
	HourlyRate         int
	HireDate           time.Time
	YearsExperience    int
	CertificationLevel string
	Skills             SkillSet
}

type EquipmentType struct {
	ID           int
	Brand        string
	Model        string
	Type         string
	BTURating    int
	EnergyRating float64
}

type Part struct {
	ID       int
	Name     string
	Category string
	UnitCost float64
	Supplier string
}

type Lead struct {
	ID                    int
	FirstName             string
	LastName              string
	CompanyName           string
	Phone                 string
	Email                 string
	Address               string
	Source                string
	ServiceInterest       string
	EstimatedValue        float64
	Urgency               string
	Status                string
	CreatedDate           time.Time
	LastContactDate       *time.Time
	AssignedTo            string
	Notes                 string
	ConversionProbability int
}
