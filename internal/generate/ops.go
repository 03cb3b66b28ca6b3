package generate

import (
	"strings"

	"github.com/fieldforge/fieldforge/internal/derive"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

func (g *generator) vehicles() {
	for i := 0; i < g.counts.Vehicles; i++ {
		id := g.nextID(domain.VehicleFleet)
		brand := sample.Pick(g.s, domain.VehicleMakes)
		purchase := g.clock.DateBetween(g.clock.Now().AddDate(-8, 0, 0), g.clock.Now().AddDate(-1, 0, 0))
		mileage := g.s.Int(20000, 150000)
		v := domain.Vehicle{
			ID:                     id,
			Number:                 derive.VehicleNumber(id),
			Make:                   brand,
			Model:                  sample.Pick(g.s, domain.VehicleModels[brand]),
			Year:                   purchase.Year() - g.s.Int(0, 2),
			Type:                   sample.Pick(g.s, domain.VehicleTypes),
			LicensePlate:           licensePlate(g.s),
			VIN:                    vin(g.s),
			PurchaseDate:           purchase,
			CurrentMileage:         mileage,
			LastMaintenance:        g.clock.DateBetween(purchase, g.clock.Now()),
			NextMaintenanceMileage: mileage + g.s.Int(3000, 8000),
			Status:                 sample.Pick(g.s, domain.VehicleStatuses),
			FuelType:               sample.Pick(g.s, domain.FuelTypes),
			GPSEnabled:             g.s.Bool(),
		}
		if g.s.Bool() {
			tech := g.pickTechnician()
			v.AssignedTechID = &tech.ID
		}
		g.d.Vehicles = append(g.d.Vehicles, v)
	}
}

func (g *generator) mailingList() {
	// Every customer added by this run gets a contact row sourced from the
	// account itself.
	for _, customer := range g.d.Customers[g.first[domain.Customers]:] {
		first, last := splitContactName(customer.Name)
		g.d.MailingList = append(g.d.MailingList, domain.MailingContact{
			ID:                 g.nextID(domain.MailingList),
			CustomerID:         &customer.ID,
			Email:              email(g.s, first, last),
			FirstName:          first,
			LastName:           last,
			Phone:              customer.Phone,
			Address:            customer.Address,
			Source:             domain.ExistingCustomerSource,
			SubscriptionStatus: sample.Pick(g.s, domain.MailingStatuses),
			SubscriptionDate:   g.clock.DateBetween(customer.CreatedAt, g.clock.Now()),
			PreferredContact:   sample.Pick(g.s, domain.ContactMethods),
			Interests:          sample.Pick(g.s, domain.MailingInterests),
		})
	}

	for i := 0; i < g.counts.MailingProspects; i++ {
		first, last := personName(g.s)
		g.d.MailingList = append(g.d.MailingList, domain.MailingContact{
			ID:                 g.nextID(domain.MailingList),
			Email:              email(g.s, first, last),
			FirstName:          first,
			LastName:           last,
			Phone:              phone(g.s),
			Address:            address(g.s),
			Source:             sample.Pick(g.s, domain.ProspectSources),
			SubscriptionStatus: sample.Pick(g.s, domain.MailingStatuses),
			SubscriptionDate:   g.clock.PastDate(1, 0, 0),
			PreferredContact:   sample.Pick(g.s, domain.ContactMethods),
			Interests:          sample.Pick(g.s, domain.MailingInterests),
		})
	}
}

// splitContactName turns an account name into mailing first/last fields:
// a person's name splits at the first space, a single-word name leaves the
// last name empty.
func splitContactName(name string) (first, last string) {
	idx := strings.IndexByte(name, ' ')
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[strings.LastIndexByte(name, ' ')+1:]
}

func (g *generator) inventory() {
	// One stock row per part, keyed by the part's own ID.
	for _, part := range g.d.Parts[g.first[domain.Parts]:] {
		stock := g.s.Int(0, 100)
		reorder := g.s.Int(5, 25)
		g.d.Inventory = append(g.d.Inventory, domain.InventoryItem{
			ID:                   part.ID,
			PartID:               part.ID,
			WarehouseLocation:    warehouseSlot(g.s),
			CurrentStock:         stock,
			ReorderPoint:         reorder,
			MaxStock:             g.s.Int(50, 200),
			LastRestockDate:      g.clock.PastDate(0, 6, 0),
			LastRestockQty:       g.s.Int(20, 100),
			AvgMonthlyUsage:      g.s.Int(2, 30),
			StockStatus:          derive.StockStatus(stock, reorder),
			SupplierLeadTimeDays: g.s.Int(3, 21),
			ABCClass:             sample.Pick(g.s, domain.ABCClasses),
			LastCountDate:        g.clock.PastDate(0, 3, 0),
			UnitCost:             part.UnitCost,
			TotalValue:           derive.StockValue(stock, part.UnitCost),
		})
	}
}

func (g *generator) feedback() {
	calls := g.newServiceCalls()
	count := g.counts.Feedback
	if count > len(calls) {
		count = len(calls)
	}
	for _, idx := range g.s.PickN(len(calls), count) {
		call := calls[idx]
		overall := g.s.Int(1, 10)
		g.d.Feedback = append(g.d.Feedback, domain.Feedback{
			ID:            g.nextID(domain.CustomerFeedback),
			ServiceCallID: call.ID,
			CustomerID:    call.CustomerID,
			FeedbackDate: g.clock.DateBetween(
				call.ServiceDate,
				timeline.Earlier(call.ServiceDate.AddDate(0, 0, 14), g.clock.Now()),
			),
			Type:             sample.Pick(g.s, domain.FeedbackTypes),
			Overall:          overall,
			TechnicianRating: g.s.Int(1, 10),
			TimelinessRating: g.s.Int(1, 10),
			QualityRating:    g.s.Int(1, 10),
			ValueRating:      g.s.Int(1, 10),
			Category:         derive.SatisfactionCategory(overall),
			Comments:         sentence(g.s, domain.FeedbackComments),
			WouldRecommend:   derive.WouldRecommend(overall),
			FollowUpRequired: g.s.Bool(),
			Source:           sample.Pick(g.s, domain.FeedbackSources),
		})
	}
}
