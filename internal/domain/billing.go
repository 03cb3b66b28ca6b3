package domain

import "time"

// Invoice statuses. Paid invoices settle in full; pending ones may carry a
// partial payment.
const (
	InvoicePaid    = "Paid"
	InvoicePending = "Pending"
	InvoiceOverdue = "Overdue"
)

type Invoice struct {
	ID            int
	Number        string
	ServiceCallID int
	CustomerID    int
	IssueDate     time.Time
	DueDate       time.Time
	PaymentTerms  string
	Subtotal      float64
	TaxRate       float64
	TaxAmount     float64
	Total         float64
	Status        string
	Notes         string
}

type Payment struct {
	ID            int
	InvoiceID     int
	PaymentDate   time.Time
	Amount        float64
	Method        string
	TransactionID string
	Status        string
	ProcessingFee float64
	Notes         string
}

type Subscription struct {
	ID               int
	CustomerID       int
	Plan             string
	StartDate        time.Time
	EndDate          time.Time
	AnnualCost       int
	PaymentFrequency string
	Status           string
	AutoRenewal      bool
	ServicesIncluded string
	DiscountPercent  int
	NextServiceDate  *time.Time
}

type Quote struct {
	ID            int
	Number        string
	CustomerID    int
	EquipmentID   *int
	QuoteDate     time.Time
	ValidUntil    time.Time
	Type          string
	Description   string
	LaborHours    float64
	LaborRate     int
	LaborCost     float64
	EquipmentCost float64
	PartsCost     float64
	Total         float64
	Status        string
	CreatedBy     string
	FollowUpDate  *time.Time
	Notes         string
}
