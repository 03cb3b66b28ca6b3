package domain

import "time"

// Inventory stock statuses. Status is derived from the stock level against
// the reorder point, never sampled.
const (
	StockInStock = "In Stock"
	StockLow     = "Low Stock"
)

// Feedback satisfaction categories, derived from the overall rating.
const (
	SatisfactionPositive = "Positive"
	SatisfactionNeutral  = "Neutral"
	SatisfactionNegative = "Negative"
)

type Vehicle struct {
	ID                     int
	Number                 string
	Make                   string
	Model                  string
	Year                   int
	Type                   string
	LicensePlate           string
	VIN                    string
	AssignedTechID         *int
	PurchaseDate           time.Time
	CurrentMileage         int
	LastMaintenance        time.Time
	NextMaintenanceMileage int
	Status                 string
	FuelType               string
	GPSEnabled             bool
}

type MailingContact struct {
	ID                 int
	CustomerID         *int
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	Address            string
	Source             string
	SubscriptionStatus string
	SubscriptionDate   time.Time
	PreferredContact   string
	Interests          string
}

type InventoryItem struct {
	ID                   int
	PartID               int
	WarehouseLocation    string
	CurrentStock         int
	ReorderPoint         int
	MaxStock             int
	LastRestockDate      time.Time
	LastRestockQty       int
	AvgMonthlyUsage      int
	StockStatus          string
	SupplierLeadTimeDays int
	ABCClass             string
	LastCountDate        time.Time
	UnitCost             float64
	TotalValue           float64
}

type Feedback struct {
	ID               int
	ServiceCallID    int
	CustomerID       int
	FeedbackDate     time.Time
	Type             string
	Overall          int
	TechnicianRating int
	TimelinessRating int
	QualityRating    int
	ValueRating      int
	Category         string
	Comments         string
	WouldRecommend   bool
	FollowUpRequired bool
	Source           string
}
