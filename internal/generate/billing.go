package generate

import (
	"time"

	"github.com/fieldforge/fieldforge/internal/derive"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

func (g *generator) invoices() {
	calls := g.newServiceCalls()
	count := int(g.counts.InvoicePercent * float64(len(calls)))
	for _, idx := range g.s.PickN(len(calls), count) {
		call := calls[idx]
		id := g.nextID(domain.Invoices)
		issue := g.clock.DateBetween(
			call.ServiceDate,
			timeline.Earlier(call.ServiceDate.AddDate(0, 0, 3), g.clock.Now()),
		)
		terms := sample.Pick(g.s, domain.PaymentTermsOptions)
		subtotal := derive.Round2(call.TotalCost * g.s.Float(1.1, 1.3))
		taxRate := sample.Pick(g.s, domain.TaxRates)
		tax, total := derive.InvoiceAmounts(subtotal, taxRate)
		g.d.Invoices = append(g.d.Invoices, domain.Invoice{
			ID:            id,
			Number:        derive.InvoiceNumber(issue.Year(), id),
			ServiceCallID: call.ID,
			CustomerID:    call.CustomerID,
			IssueDate:     issue,
			DueDate:       derive.DueDate(issue, terms),
			PaymentTerms:  terms,
			Subtotal:      subtotal,
			TaxRate:       taxRate,
			TaxAmount:     tax,
			Total:         total,
			Status:        sample.Pick(g.s, domain.InvoiceStatuses),
			Notes:         maybe(g.s, sentence(g.s, domain.InvoiceNotes)),
		})
	}
}

func (g *generator) payments() {
	for _, invoice := range g.d.Invoices[g.first[domain.Invoices]:] {
		switch invoice.Status {
		case domain.InvoicePaid:
			latest := timeline.Earlier(invoice.DueDate.AddDate(0, 0, 30), g.clock.Now())
			g.d.Payments = append(g.d.Payments, domain.Payment{
				ID:            g.nextID(domain.Payments),
				InvoiceID:     invoice.ID,
				PaymentDate:   g.clock.DateBetween(invoice.IssueDate, latest),
				Amount:        invoice.Total,
				Method:        sample.Pick(g.s, domain.PaymentMethods),
				TransactionID: transactionID(g.s),
				Status:        "Completed",
				ProcessingFee: g.processingFee(invoice.Total),
			})
		case domain.InvoicePending:
			if !g.s.Bool() {
				continue
			}
			amount := derive.Round2(invoice.Total * g.s.Float(0.3, 0.8))
			g.d.Payments = append(g.d.Payments, domain.Payment{
				ID:            g.nextID(domain.Payments),
				InvoiceID:     invoice.ID,
				PaymentDate:   g.clock.DateBetween(invoice.IssueDate, g.clock.Now()),
				Amount:        amount,
				Method:        sample.Pick(g.s, domain.PaymentMethods),
				TransactionID: transactionID(g.s),
				Status:        sample.Pick(g.s, []string{"Completed", "Pending"}),
				ProcessingFee: g.processingFee(amount),
				Notes:         "Partial payment",
			})
		}
	}
}

// processingFee applies the card-network cut to roughly half the payments;
// the rest settle by check or ACH at no cost.
func (g *generator) processingFee(amount float64) float64 {
	fee := derive.Round2(amount * g.s.Float(0.02, 0.035))
	if g.s.Bool() {
		return fee
	}
	return 0
}

func (g *generator) subscriptions() {
	floor := g.resumeAfter(
		g.clock.Now().AddDate(-2, 0, 0),
		latestDate(g.first[domain.Subscriptions], func(i int) time.Time { return g.d.Subscriptions[i].StartDate }),
	)
	for i := 0; i < g.counts.Subscriptions; i++ {
		customer := g.pickCustomer()
		plan := sample.Pick(g.s, domain.ServicePlans)
		start := g.clock.DateBetween(timeline.Later(customer.CreatedAt, floor), g.clock.Now())
		months := sample.Pick(g.s, domain.ContractMonthTerms)
		s := domain.Subscription{
			ID:               g.nextID(domain.Subscriptions),
			CustomerID:       customer.ID,
			Plan:             plan,
			StartDate:        start,
			EndDate:          derive.ContractEnd(start, months),
			AnnualCost:       domain.PlanCosts[plan],
			PaymentFrequency: sample.Pick(g.s, domain.PaymentFrequencies),
			Status:           sample.Pick(g.s, domain.SubscriptionStatuses),
			AutoRenewal:      g.s.Bool(),
			ServicesIncluded: sample.Pick(g.s, domain.ServiceBundles),
			DiscountPercent:  sample.Pick(g.s, domain.DiscountPercentages),
		}
		if g.s.Bool() {
			next := g.clock.Future()
			s.NextServiceDate = &next
		}
		g.d.Subscriptions = append(g.d.Subscriptions, s)
	}
}

func (g *generator) quotes() {
	floor := g.resumeAfter(
		g.clock.Now().AddDate(0, -6, 0),
		latestDate(g.first[domain.Quotes], func(i int) time.Time { return g.d.Quotes[i].QuoteDate }),
	)
	for i := 0; i < g.counts.Quotes; i++ {
		customer := g.pickCustomer()
		id := g.nextID(domain.Quotes)
		quoteDate := g.clock.DateBetween(timeline.Later(customer.CreatedAt, floor), g.clock.Now())

		laborHours := derive.Round1(g.s.Float(2, 16))
		laborRate := g.s.Int(75, 125)
		laborCost := derive.LaborCost(laborHours, laborRate)
		partsCost := derive.Round2(g.s.Float(50, 1200))

		q := domain.Quote{
			ID:          id,
			Number:      derive.QuoteNumber(quoteDate.Year(), id),
			CustomerID:  customer.ID,
			QuoteDate:   quoteDate,
			ValidUntil:  quoteDate.AddDate(0, 0, g.s.Int(15, 45)),
			Type:        sample.Pick(g.s, domain.QuoteTypes),
			Description: sentence(g.s, domain.QuoteDescriptions),
			LaborHours:  laborHours,
			LaborRate:   laborRate,
			LaborCost:   laborCost,
			PartsCost:   partsCost,
			Status:      sample.Pick(g.s, domain.QuoteStatuses),
			CreatedBy:   salesRep(g.s),
			Notes:       maybe(g.s, sentence(g.s, domain.LeadNotes)),
		}
		// Quotes that include new equipment reference the catalog entry
		// being priced; labor-only quotes carry neither.
		if g.s.Bool() {
			equipment := g.pickEquipment()
			q.EquipmentID = &equipment.ID
			q.EquipmentCost = derive.Round2(g.s.Float(500, 8000))
		}
		q.Total = derive.QuoteTotal(q.LaborCost, q.EquipmentCost, q.PartsCost)
		if g.s.Bool() {
			follow := quoteDate.AddDate(0, 0, g.s.Int(3, 14))
			q.FollowUpDate = &follow
		}
		g.d.Quotes = append(g.d.Quotes, q)
	}
}
