// Package verify audits an exported dataset against the rules the generator
// promises: identifier monotonicity, referential integrity, temporal
// ordering, and exact derived values. It recomputes every derived column
// from its inputs rather than trusting the file.
package verify

import (
	"fmt"
	"time"

	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/derive"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

// MaxShown caps the violations kept per entity; Count keeps the full tally.
const MaxShown = 20

// moneyTolerance absorbs float summation error when adding 2-decimal
// amounts. Individual derived values are compared exactly.
const moneyTolerance = 0.005

// Result is the audit outcome for one entity table.
type Result struct {
	Entity     string
	Rows       int
	Count      int
	Violations []string
}

func (r *Result) OK() bool { return r.Count == 0 }

// Report holds one Result per entity, in export order.
type Report struct {
	Results []*Result
}

func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Total is the number of violations across all entities.
func (r *Report) Total() int {
	n := 0
	for _, res := range r.Results {
		n += res.Count
	}
	return n
}

type checker struct {
	d       *dataset.Dataset
	results map[string]*Result

	customers   map[int]domain.Customer
	technicians map[int]domain.Technician
	equipment   map[int]domain.EquipmentType
	parts       map[int]domain.Part
	calls       map[int]domain.ServiceCall
	invoices    map[int]domain.Invoice
}

// Check audits d and returns the per-entity report.
func Check(d *dataset.Dataset) *Report {
	c := &checker{
		d:           d,
		results:     make(map[string]*Result, len(dataset.All())),
		customers:   make(map[int]domain.Customer, len(d.Customers)),
		technicians: make(map[int]domain.Technician, len(d.Technicians)),
		equipment:   make(map[int]domain.EquipmentType, len(d.EquipmentTypes)),
		parts:       make(map[int]domain.Part, len(d.Parts)),
		calls:       make(map[int]domain.ServiceCall, len(d.ServiceCalls)),
		invoices:    make(map[int]domain.Invoice, len(d.Invoices)),
	}

	report := &Report{}
	for _, t := range dataset.All() {
		res := &Result{Entity: t.Name, Rows: t.Len(d)}
		c.results[t.Name] = res
		report.Results = append(report.Results, res)
	}

	for _, v := range d.Customers {
		c.customers[v.ID] = v
	}
	for _, v := range d.Technicians {
		c.technicians[v.ID] = v
	}
	for _, v := range d.EquipmentTypes {
		c.equipment[v.ID] = v
	}
	for _, v := range d.Parts {
		c.parts[v.ID] = v
	}
	for _, v := range d.ServiceCalls {
		c.calls[v.ID] = v
	}
	for _, v := range d.Invoices {
		c.invoices[v.ID] = v
	}

	c.checkIDOrder()
	c.checkTechnicians()
	c.checkDevices()
	c.checkServiceCalls()
	c.checkPartsUsage()
	c.checkIncidents()
	c.checkVehicles()
	c.checkMailingList()
	c.checkSubscriptions()
	c.checkInvoices()
	c.checkPayments()
	c.checkInventory()
	c.checkAppointments()
	c.checkQuotes()
	c.checkWorkOrders()
	c.checkFeedback()
	c.checkLeads()

	return report
}

func (c *checker) fail(entity, format string, args ...any) {
	r := c.results[entity]
	r.Count++
	if len(r.Violations) < MaxShown {
		r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
	}
}

// checkIDOrder requires strictly increasing identifiers in every table,
// which also makes them unique. Extended datasets stay monotonic because new
// rows continue past the prior maximum.
func (c *checker) checkIDOrder() {
	for _, t := range dataset.All() {
		prev := 0
		for i := 0; i < t.Len(c.d); i++ {
			id := t.ID(c.d, i)
			if id <= prev {
				c.fail(t.Name, "row %d: id %d not greater than previous id %d", i+1, id, prev)
			}
			prev = id
		}
	}
}

func (c *checker) checkTechnicians() {
	for _, t := range c.d.Technicians {
		lo, hi := domain.LevelRateBand(t.Level)
		if t.HourlyRate < lo || t.HourlyRate > hi {
			c.fail(domain.Technicians, "technician %d: rate %d outside %d..%d for level %s",
				t.ID, t.HourlyRate, lo, hi, t.Level)
		}
		skills := []struct {
			name  string
			score int
		}{
			{"hvac_installation", t.Skills.HVACInstallation},
			{"electrical", t.Skills.Electrical},
			{"refrigeration", t.Skills.Refrigeration},
			{"ductwork", t.Skills.Ductwork},
			{"diagnostics", t.Skills.Diagnostics},
			{"customer_service", t.Skills.CustomerService},
			{"safety_protocols", t.Skills.SafetyProtocols},
		}
		for _, s := range skills {
			if s.score < 1 || s.score > 10 {
				c.fail(domain.Technicians, "technician %d: %s skill %d outside 1..10", t.ID, s.name, s.score)
			}
		}
	}
}

func (c *checker) checkDevices() {
	for _, dev := range c.d.InstalledDevices {
		customer, ok := c.customers[dev.CustomerID]
		if !ok {
			c.fail(domain.InstalledDevices, "device %d: unknown customer %d", dev.ID, dev.CustomerID)
		} else if dev.InstallDate.Before(customer.CreatedAt) {
			c.fail(domain.InstalledDevices, "device %d: installed %s before customer created %s",
				dev.ID, day(dev.InstallDate), day(customer.CreatedAt))
		}
		if _, ok := c.equipment[dev.EquipmentID]; !ok {
			c.fail(domain.InstalledDevices, "device %d: unknown equipment type %d", dev.ID, dev.EquipmentID)
		}
		if !validWarranty(dev.InstallDate, dev.WarrantyEnd) {
			c.fail(domain.InstalledDevices, "device %d: warranty end %s is not a standard term from %s",
				dev.ID, day(dev.WarrantyEnd), day(dev.InstallDate))
		}
		if dev.LastMaintenance != nil && dev.LastMaintenance.Before(dev.InstallDate) {
			c.fail(domain.InstalledDevices, "device %d: maintained %s before install %s",
				dev.ID, day(*dev.LastMaintenance), day(dev.InstallDate))
		}
	}
}

func validWarranty(install, end time.Time) bool {
	for _, months := range domain.WarrantyMonthTerms {
		if derive.WarrantyEnd(install, months).Equal(end) {
			return true
		}
	}
	return false
}

func (c *checker) checkServiceCalls() {
	for _, call := range c.d.ServiceCalls {
		customer, ok := c.customers[call.CustomerID]
		if !ok {
			c.fail(domain.ServiceCalls, "call %d: unknown customer %d", call.ID, call.CustomerID)
		} else if call.ServiceDate.Before(customer.CreatedAt) {
			c.fail(domain.ServiceCalls, "call %d: serviced %s before customer created %s",
				call.ID, day(call.ServiceDate), day(customer.CreatedAt))
		}
		tech, ok := c.technicians[call.TechnicianID]
		if !ok {
			c.fail(domain.ServiceCalls, "call %d: unknown technician %d", call.ID, call.TechnicianID)
			continue
		}
		if _, ok := c.equipment[call.EquipmentID]; !ok {
			c.fail(domain.ServiceCalls, "call %d: unknown equipment type %d", call.ID, call.EquipmentID)
		}
		if want := derive.LaborCost(call.DurationHours, tech.HourlyRate); call.LaborCost != want {
			c.fail(domain.ServiceCalls, "call %d: labor cost %.2f, want %.2f (%.1fh at %d/h)",
				call.ID, call.LaborCost, want, call.DurationHours, tech.HourlyRate)
		}
		if want := derive.Round2(call.LaborCost + call.PartsCost); call.TotalCost != want {
			c.fail(domain.ServiceCalls, "call %d: total cost %.2f, want %.2f", call.ID, call.TotalCost, want)
		}
	}
}

func (c *checker) checkPartsUsage() {
	for _, u := range c.d.PartsUsage {
		call, ok := c.calls[u.ServiceCallID]
		if !ok {
			c.fail(domain.PartsUsage, "usage %d: unknown service call %d", u.ID, u.ServiceCallID)
		} else if !u.UsageDate.Equal(call.ServiceDate) {
			c.fail(domain.PartsUsage, "usage %d: used %s but call %d ran %s",
				u.ID, day(u.UsageDate), call.ID, day(call.ServiceDate))
		}
		if _, ok := c.parts[u.PartID]; !ok {
			c.fail(domain.PartsUsage, "usage %d: unknown part %d", u.ID, u.PartID)
		}
		if u.Quantity < 1 {
			c.fail(domain.PartsUsage, "usage %d: quantity %d below 1", u.ID, u.Quantity)
		}
	}
}

func (c *checker) checkIncidents() {
	for _, in := range c.d.Incidents {
		call, ok := c.calls[in.ServiceCallID]
		if !ok {
			c.fail(domain.IncidentResponse, "incident %d: unknown service call %d", in.ID, in.ServiceCallID)
		} else {
			if call.ServiceType != domain.ServiceEmergency {
				c.fail(domain.IncidentResponse, "incident %d: call %d is %s, not an emergency",
					in.ID, call.ID, call.ServiceType)
			}
			if !timeline.Day(in.ReportedTime).Equal(call.ServiceDate) {
				c.fail(domain.IncidentResponse, "incident %d: reported %s but call ran %s",
					in.ID, day(in.ReportedTime), day(call.ServiceDate))
			}
		}
		if _, ok := c.technicians[in.RespondingTechID]; !ok {
			c.fail(domain.IncidentResponse, "incident %d: unknown responding technician %d", in.ID, in.RespondingTechID)
		}
		if in.BackupTechID != nil {
			if _, ok := c.technicians[*in.BackupTechID]; !ok {
				c.fail(domain.IncidentResponse, "incident %d: unknown backup technician %d", in.ID, *in.BackupTechID)
			} else if *in.BackupTechID == in.RespondingTechID {
				c.fail(domain.IncidentResponse, "incident %d: backup equals responding technician %d", in.ID, in.RespondingTechID)
			}
		}
		if want := derive.SeverityForResponse(in.ResponseMinutes); in.Severity != want {
			c.fail(domain.IncidentResponse, "incident %d: severity %s, want %s for %d min response",
				in.ID, in.Severity, want, in.ResponseMinutes)
		}
		if in.ResolutionMinutes <= in.ResponseMinutes {
			c.fail(domain.IncidentResponse, "incident %d: resolved in %d min, not after %d min response",
				in.ID, in.ResolutionMinutes, in.ResponseMinutes)
		}
	}
}

func (c *checker) checkVehicles() {
	for _, v := range c.d.Vehicles {
		if v.AssignedTechID != nil {
			if _, ok := c.technicians[*v.AssignedTechID]; !ok {
				c.fail(domain.VehicleFleet, "vehicle %d: unknown technician %d", v.ID, *v.AssignedTechID)
			}
		}
		if v.Year > v.PurchaseDate.Year() {
			c.fail(domain.VehicleFleet, "vehicle %d: model year %d after purchase in %d",
				v.ID, v.Year, v.PurchaseDate.Year())
		}
		if v.NextMaintenanceMileage <= v.CurrentMileage {
			c.fail(domain.VehicleFleet, "vehicle %d: next maintenance at %d not past current %d",
				v.ID, v.NextMaintenanceMileage, v.CurrentMileage)
		}
		if v.LastMaintenance.Before(v.PurchaseDate) {
			c.fail(domain.VehicleFleet, "vehicle %d: maintained %s before purchase %s",
				v.ID, day(v.LastMaintenance), day(v.PurchaseDate))
		}
	}
}

func (c *checker) checkMailingList() {
	for _, m := range c.d.MailingList {
		linked := m.CustomerID != nil
		if linked {
			if _, ok := c.customers[*m.CustomerID]; !ok {
				c.fail(domain.MailingList, "contact %d: unknown customer %d", m.ID, *m.CustomerID)
			}
		}
		if sourced := m.Source == domain.ExistingCustomerSource; sourced != linked {
			c.fail(domain.MailingList, "contact %d: source %q does not match customer link", m.ID, m.Source)
		}
	}
}

func (c *checker) checkSubscriptions() {
	for _, s := range c.d.Subscriptions {
		customer, ok := c.customers[s.CustomerID]
		if !ok {
			c.fail(domain.Subscriptions, "subscription %d: unknown customer %d", s.ID, s.CustomerID)
		} else if s.StartDate.Before(customer.CreatedAt) {
			c.fail(domain.Subscriptions, "subscription %d: starts %s before customer created %s",
				s.ID, day(s.StartDate), day(customer.CreatedAt))
		}
		if !validContractEnd(s.StartDate, s.EndDate) {
			c.fail(domain.Subscriptions, "subscription %d: end %s is not a standard term from %s",
				s.ID, day(s.EndDate), day(s.StartDate))
		}
		if want, ok := domain.PlanCosts[s.Plan]; !ok {
			c.fail(domain.Subscriptions, "subscription %d: unknown plan %q", s.ID, s.Plan)
		} else if s.AnnualCost != want {
			c.fail(domain.Subscriptions, "subscription %d: annual cost %d, want %d for %s plan",
				s.ID, s.AnnualCost, want, s.Plan)
		}
	}
}

func validContractEnd(start, end time.Time) bool {
	for _, months := range domain.ContractMonthTerms {
		if derive.ContractEnd(start, months).Equal(end) {
			return true
		}
	}
	return false
}

func (c *checker) checkInvoices() {
	for _, v := range c.d.Invoices {
		call, ok := c.calls[v.ServiceCallID]
		if !ok {
			c.fail(domain.Invoices, "invoice %d: unknown service call %d", v.ID, v.ServiceCallID)
		} else {
			if v.CustomerID != call.CustomerID {
				c.fail(domain.Invoices, "invoice %d: customer %d does not match call customer %d",
					v.ID, v.CustomerID, call.CustomerID)
			}
			if v.IssueDate.Before(call.ServiceDate) {
				c.fail(domain.Invoices, "invoice %d: issued %s before service on %s",
					v.ID, day(v.IssueDate), day(call.ServiceDate))
			}
		}
		if _, ok := c.customers[v.CustomerID]; !ok {
			c.fail(domain.Invoices, "invoice %d: unknown customer %d", v.ID, v.CustomerID)
		}
		tax, total := derive.InvoiceAmounts(v.Subtotal, v.TaxRate)
		if v.TaxAmount != tax || v.Total != total {
			c.fail(domain.Invoices, "invoice %d: amounts %.2f/%.2f, want %.2f/%.2f from %.2f at %v",
				v.ID, v.TaxAmount, v.Total, tax, total, v.Subtotal, v.TaxRate)
		}
		if want := derive.DueDate(v.IssueDate, v.PaymentTerms); !v.DueDate.Equal(want) {
			c.fail(domain.Invoices, "invoice %d: due %s, want %s for terms %q",
				v.ID, day(v.DueDate), day(want), v.PaymentTerms)
		}
		if want := derive.InvoiceNumber(v.IssueDate.Year(), v.ID); v.Number != want {
			c.fail(domain.Invoices, "invoice %d: number %q, want %q", v.ID, v.Number, want)
		}
	}
}

func (c *checker) checkPayments() {
	paid := make(map[int]float64, len(c.d.Payments))
	for _, p := range c.d.Payments {
		invoice, ok := c.invoices[p.InvoiceID]
		if !ok {
			c.fail(domain.Payments, "payment %d: unknown invoice %d", p.ID, p.InvoiceID)
			continue
		}
		if p.PaymentDate.Before(invoice.IssueDate) {
			c.fail(domain.Payments, "payment %d: paid %s before invoice issued %s",
				p.ID, day(p.PaymentDate), day(invoice.IssueDate))
		}
		if p.Amount <= 0 {
			c.fail(domain.Payments, "payment %d: amount %.2f not positive", p.ID, p.Amount)
		}
		paid[p.InvoiceID] += p.Amount
	}
	for _, v := range c.d.Invoices {
		if sum, ok := paid[v.ID]; ok && sum > v.Total+moneyTolerance {
			c.fail(domain.Payments, "invoice %d: payments total %.2f exceed invoice total %.2f",
				v.ID, sum, v.Total)
		}
	}
}

func (c *checker) checkInventory() {
	if len(c.d.Inventory) != len(c.d.Parts) {
		c.fail(domain.Inventory, "%d inventory rows for %d parts, want one each",
			len(c.d.Inventory), len(c.d.Parts))
	}
	for _, item := range c.d.Inventory {
		part, ok := c.parts[item.PartID]
		if !ok {
			c.fail(domain.Inventory, "inventory %d: unknown part %d", item.ID, item.PartID)
			continue
		}
		if item.ID != item.PartID {
			c.fail(domain.Inventory, "inventory %d: id does not mirror part %d", item.ID, item.PartID)
		}
		if item.UnitCost != part.UnitCost {
			c.fail(domain.Inventory, "inventory %d: unit cost %.2f differs from part cost %.2f",
				item.ID, item.UnitCost, part.UnitCost)
		}
		if want := derive.StockValue(item.CurrentStock, item.UnitCost); item.TotalValue != want {
			c.fail(domain.Inventory, "inventory %d: total value %.2f, want %.2f", item.ID, item.TotalValue, want)
		}
		if want := derive.StockStatus(item.CurrentStock, item.ReorderPoint); item.StockStatus != want {
			c.fail(domain.Inventory, "inventory %d: status %q, want %q for stock %d, reorder %d",
				item.ID, item.StockStatus, want, item.CurrentStock, item.ReorderPoint)
		}
	}
}

func (c *checker) checkAppointments() {
	for _, a := range c.d.Appointments {
		if _, ok := c.customers[a.CustomerID]; !ok {
			c.fail(domain.Appointments, "appointment %d: unknown customer %d", a.ID, a.CustomerID)
		}
		if _, ok := c.technicians[a.TechnicianID]; !ok {
			c.fail(domain.Appointments, "appointment %d: unknown technician %d", a.ID, a.TechnicianID)
		}
		if a.ServiceCallID != nil {
			call, ok := c.calls[*a.ServiceCallID]
			if !ok {
				c.fail(domain.Appointments, "appointment %d: unknown service call %d", a.ID, *a.ServiceCallID)
			} else {
				if !a.Date.Equal(call.ServiceDate) {
					c.fail(domain.Appointments, "appointment %d: dated %s but call %d ran %s",
						a.ID, day(a.Date), call.ID, day(call.ServiceDate))
				}
				if a.TechnicianID != call.TechnicianID {
					c.fail(domain.Appointments, "appointment %d: technician %d does not match call technician %d",
						a.ID, a.TechnicianID, call.TechnicianID)
				}
			}
		} else if !timeline.Day(a.ScheduledTime).Equal(timeline.Day(a.Date)) {
			c.fail(domain.Appointments, "appointment %d: scheduled %s is not on appointment day %s",
				a.ID, day(a.ScheduledTime), day(a.Date))
		}
		if timeline.Day(a.CreatedDate).After(timeline.Day(a.ScheduledTime)) {
			c.fail(domain.Appointments, "appointment %d: created %s after scheduled %s",
				a.ID, day(a.CreatedDate), day(a.ScheduledTime))
		}
		if a.ConfirmedDate != nil && a.ConfirmedDate.Before(timeline.Day(a.CreatedDate)) {
			c.fail(domain.Appointments, "appointment %d: confirmed %s before created %s",
				a.ID, day(*a.ConfirmedDate), day(a.CreatedDate))
		}
	}
}

func (c *checker) checkQuotes() {
	for _, q := range c.d.Quotes {
		if _, ok := c.customers[q.CustomerID]; !ok {
			c.fail(domain.Quotes, "quote %d: unknown customer %d", q.ID, q.CustomerID)
		}
		if q.EquipmentID != nil {
			if _, ok := c.equipment[*q.EquipmentID]; !ok {
				c.fail(domain.Quotes, "quote %d: unknown equipment type %d", q.ID, *q.EquipmentID)
			}
		} else if q.EquipmentCost != 0 {
			c.fail(domain.Quotes, "quote %d: equipment cost %.2f without an equipment reference",
				q.ID, q.EquipmentCost)
		}
		if want := derive.LaborCost(q.LaborHours, q.LaborRate); q.LaborCost != want {
			c.fail(domain.Quotes, "quote %d: labor cost %.2f, want %.2f", q.ID, q.LaborCost, want)
		}
		if want := derive.QuoteTotal(q.LaborCost, q.EquipmentCost, q.PartsCost); q.Total != want {
			c.fail(domain.Quotes, "quote %d: total %.2f, want %.2f", q.ID, q.Total, want)
		}
		if !q.ValidUntil.After(q.QuoteDate) {
			c.fail(domain.Quotes, "quote %d: valid until %s, not after quote date %s",
				q.ID, day(q.ValidUntil), day(q.QuoteDate))
		}
		if want := derive.QuoteNumber(q.QuoteDate.Year(), q.ID); q.Number != want {
			c.fail(domain.Quotes, "quote %d: number %q, want %q", q.ID, q.Number, want)
		}
	}
}

func (c *checker) checkWorkOrders() {
	if len(c.d.WorkOrders) != len(c.d.ServiceCalls) {
		c.fail(domain.WorkOrders, "%d work orders for %d service calls, want one each",
			len(c.d.WorkOrders), len(c.d.ServiceCalls))
	}
	for _, w := range c.d.WorkOrders {
		call, ok := c.calls[w.ServiceCallID]
		if !ok {
			c.fail(domain.WorkOrders, "work order %d: unknown service call %d", w.ID, w.ServiceCallID)
			continue
		}
		if w.ID != w.ServiceCallID {
			c.fail(domain.WorkOrders, "work order %d: id does not mirror call %d", w.ID, w.ServiceCallID)
		}
		if w.TechnicianID != call.TechnicianID {
			c.fail(domain.WorkOrders, "work order %d: technician %d does not match call technician %d",
				w.ID, w.TechnicianID, call.TechnicianID)
		}
		if w.EstimatedHours != call.DurationHours {
			c.fail(domain.WorkOrders, "work order %d: estimate %.1fh differs from call duration %.1fh",
				w.ID, w.EstimatedHours, call.DurationHours)
		}
		if w.ActualHours < 0.5 {
			c.fail(domain.WorkOrders, "work order %d: actual hours %.1f below 0.5", w.ID, w.ActualHours)
		}
		if want := derive.PriorityForServiceType(call.ServiceType); w.Priority != want {
			c.fail(domain.WorkOrders, "work order %d: priority %s, want %s for %s call",
				w.ID, w.Priority, want, call.ServiceType)
		}
		if want := derive.WorkOrderNumber(call.ServiceDate.Year(), w.ID); w.Number != want {
			c.fail(domain.WorkOrders, "work order %d: number %q, want %q", w.ID, w.Number, want)
		}
	}
}

func (c *checker) checkFeedback() {
	for _, f := range c.d.Feedback {
		call, ok := c.calls[f.ServiceCallID]
		if !ok {
			c.fail(domain.CustomerFeedback, "feedback %d: unknown service call %d", f.ID, f.ServiceCallID)
		} else {
			if f.CustomerID != call.CustomerID {
				c.fail(domain.CustomerFeedback, "feedback %d: customer %d does not match call customer %d",
					f.ID, f.CustomerID, call.CustomerID)
			}
			if f.FeedbackDate.Before(call.ServiceDate) {
				c.fail(domain.CustomerFeedback, "feedback %d: dated %s before service on %s",
					f.ID, day(f.FeedbackDate), day(call.ServiceDate))
			}
		}
		if want := derive.SatisfactionCategory(f.Overall); f.Category != want {
			c.fail(domain.CustomerFeedback, "feedback %d: category %s, want %s for rating %d",
				f.ID, f.Category, want, f.Overall)
		}
		if want := derive.WouldRecommend(f.Overall); f.WouldRecommend != want {
			c.fail(domain.CustomerFeedback, "feedback %d: would-recommend %v, want %v for rating %d",
				f.ID, f.WouldRecommend, want, f.Overall)
		}
	}
}

func (c *checker) checkLeads() {
	for _, l := range c.d.Leads {
		if l.LastContactDate != nil && l.LastContactDate.Before(l.CreatedDate) {
			c.fail(domain.Leads, "lead %d: contacted %s before created %s",
				l.ID, day(*l.LastContactDate), day(l.CreatedDate))
		}
		if l.ConversionProbability < 0 || l.ConversionProbability > 100 {
			c.fail(domain.Leads, "lead %d: conversion probability %d outside 0..100",
				l.ID, l.ConversionProbability)
		}
	}
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}
