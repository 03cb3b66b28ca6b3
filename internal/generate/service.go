package generate

import (
	"time"

	"github.com/fieldforge/fieldforge/internal/derive"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

func (g *generator) installedDevices() {
	floor := g.resumeAfter(
		time.Time{},
		latestDate(g.first[domain.InstalledDevices], func(i int) time.Time { return g.d.InstalledDevices[i].InstallDate }),
	)
	for i := 0; i < g.counts.InstalledDevices; i++ {
		customer := g.pickCustomer()
		equipment := g.pickEquipment()
		install := g.clock.DateBetween(timeline.Later(customer.CreatedAt, floor), g.clock.Now())
		months := sample.Pick(g.s, domain.WarrantyMonthTerms)
		dev := domain.InstalledDevice{
			ID:           g.nextID(domain.InstalledDevices),
			CustomerID:   customer.ID,
			EquipmentID:  equipment.ID,
			InstallDate:  install,
			WarrantyEnd:  derive.WarrantyEnd(install, months),
			SerialNumber: serialNumber(g.s),
			Location:     sample.Pick(g.s, domain.DeviceLocations),
			Status:       sample.Pick(g.s, domain.DeviceStatuses),
		}
		if g.s.Bool() {
			maint := g.clock.DateBetween(install, g.clock.Now())
			dev.LastMaintenance = &maint
		}
		g.d.InstalledDevices = append(g.d.InstalledDevices, dev)
	}
}

func (g *generator) serviceCalls() {
	floor := g.resumeAfter(
		g.clock.Now().AddDate(-1, 0, 0),
		latestDate(g.first[domain.ServiceCalls], func(i int) time.Time { return g.d.ServiceCalls[i].ServiceDate }),
	)
	for i := 0; i < g.counts.ServiceCalls; i++ {
		customer := g.pickCustomer()
		serviceType := sample.PickWeighted(g.s, domain.ServiceTypes, domain.ServiceTypeWeights)
		tech := g.pickTechnicianFor(serviceType)
		equipment := g.pickEquipment()

		from := timeline.Later(customer.CreatedAt, floor)
		duration := derive.Round1(g.s.Float(1, 8))
		labor := derive.LaborCost(duration, tech.HourlyRate)
		parts := derive.Round2(g.s.Float(0, 300))
		g.d.ServiceCalls = append(g.d.ServiceCalls, domain.ServiceCall{
			ID:            g.nextID(domain.ServiceCalls),
			CustomerID:    customer.ID,
			TechnicianID:  tech.ID,
			EquipmentID:   equipment.ID,
			ServiceDate:   g.clock.DateBetween(from, g.clock.Now()),
			ServiceType:   serviceType,
			DurationHours: duration,
			LaborCost:     labor,
			PartsCost:     parts,
			TotalCost:     derive.Round2(labor + parts),
		})
	}
}

func (g *generator) partsUsage() {
	for _, call := range g.newServiceCalls() {
		n := g.s.Int(0, g.counts.MaxPartsPerCall)
		for j := 0; j < n; j++ {
			g.d.PartsUsage = append(g.d.PartsUsage, domain.PartUsage{
				ID:            g.nextID(domain.PartsUsage),
				ServiceCallID: call.ID,
				PartID:        g.pickPart().ID,
				Quantity:      g.s.Int(1, 5),
				UsageDate:     call.ServiceDate,
			})
		}
	}
}

func (g *generator) incidents() {
	count := 0
	for _, call := range g.newServiceCalls() {
		if call.ServiceType != domain.ServiceEmergency {
			continue
		}
		if count >= g.counts.Incidents {
			break
		}
		count++

		dayEnd := call.ServiceDate.Add(24*time.Hour - time.Second)
		response := g.s.Int(15, 240)
		in := domain.Incident{
			ID:                   g.nextID(domain.IncidentResponse),
			ServiceCallID:        call.ID,
			IncidentType:         sample.Pick(g.s, domain.IncidentTypes),
			ReportedTime:         g.clock.TimeBetween(call.ServiceDate, dayEnd),
			ResponseMinutes:      response,
			Severity:             derive.SeverityForResponse(response),
			ResolutionMinutes:    response + g.s.Int(15, 240),
			RespondingTechID:     call.TechnicianID,
			ResolutionStatus:     sample.Pick(g.s, domain.ResolutionStatuses),
			CustomerSatisfaction: g.s.Int(1, 10),
			FollowUpRequired:     g.s.Bool(),
		}
		if g.s.Bool() {
			backup := g.backupTechnician(call.TechnicianID)
			in.BackupTechID = &backup
		}
		g.d.Incidents = append(g.d.Incidents, in)
	}
}

// backupTechnician picks any technician other than the one already on site.
func (g *generator) backupTechnician(respondingID int) int {
	t := g.pickTechnician()
	for t.ID == respondingID && len(g.d.Technicians) > 1 {
		t = g.pickTechnician()
	}
	return t.ID
}

func (g *generator) workOrders() {
	for _, call := range g.newServiceCalls() {
		actual := derive.Round1(call.DurationHours + g.s.Float(-0.5, 1))
		if actual < 0.5 {
			actual = 0.5
		}
		// Work order IDs mirror their service call IDs one-to-one, so
		// nextID is not consulted here.
		g.d.WorkOrders = append(g.d.WorkOrders, domain.WorkOrder{
			ID:                 call.ID,
			ServiceCallID:      call.ID,
			TechnicianID:       call.TechnicianID,
			Number:             derive.WorkOrderNumber(call.ServiceDate.Year(), call.ID),
			Description:        narrative(g.s, domain.WorkDescriptions),
			Instructions:       sentence(g.s, domain.WorkInstructions),
			SafetyRequirements: sample.Pick(g.s, domain.SafetyRequirements),
			EstimatedHours:     call.DurationHours,
			ActualHours:        actual,
			Status:             "Completed",
			Priority:           derive.PriorityForServiceType(call.ServiceType),
			CompletionNotes:    sentence(g.s, domain.CompletionNotes),
			SignatureRequired:  g.s.Bool(),
		})
	}
}

func (g *generator) appointments() {
	realized := 0
	for _, call := range g.newServiceCalls() {
		customer := g.customerByID(call.CustomerID)
		earliest := timeline.Later(call.ServiceDate.AddDate(0, 0, -14), customer.CreatedAt)
		scheduled := g.clock.TimeBetween(earliest, call.ServiceDate)
		created := timeline.Day(scheduled).AddDate(0, 0, -g.s.Int(1, 7))

		callID := call.ID
		a := domain.Appointment{
			ID:                     g.nextID(domain.Appointments),
			CustomerID:             call.CustomerID,
			TechnicianID:           call.TechnicianID,
			ServiceCallID:          &callID,
			Date:                   call.ServiceDate,
			ScheduledTime:          scheduled,
			Type:                   call.ServiceType,
			EstimatedDurationHours: call.DurationHours,
			Status:                 "Completed",
			Priority:               derive.PriorityForServiceType(call.ServiceType),
			SpecialInstructions:    maybe(g.s, sentence(g.s, domain.SpecialInstructions)),
			CreatedDate:            created,
		}
		if g.s.Bool() {
			confirmed := g.confirmation(created, scheduled)
			a.ConfirmedDate = &confirmed
		}
		g.d.Appointments = append(g.d.Appointments, a)
		realized++
	}

	for i := realized; i < g.counts.Appointments; i++ {
		customer := g.pickCustomer()
		tech := g.pickTechnician()
		date := g.clock.Future()
		scheduled := g.clock.OnDay(date)
		created := g.clock.DateBetween(g.clock.Now().AddDate(0, 0, -14), g.clock.Now())
		a := domain.Appointment{
			ID:                     g.nextID(domain.Appointments),
			CustomerID:             customer.ID,
			TechnicianID:           tech.ID,
			Date:                   date,
			ScheduledTime:          scheduled,
			Type:                   sample.Pick(g.s, domain.AppointmentTypes),
			EstimatedDurationHours: derive.Round1(g.s.Float(1, 6)),
			Status:                 sample.Pick(g.s, domain.FutureAppointmentStatuses),
			Priority:               sample.Pick(g.s, domain.FuturePriorities),
			SpecialInstructions:    maybe(g.s, sentence(g.s, domain.SpecialInstructions)),
			CreatedDate:            created,
		}
		if g.s.Bool() {
			confirmed := g.confirmation(created, scheduled)
			a.ConfirmedDate = &confirmed
		}
		g.d.Appointments = append(g.d.Appointments, a)
	}
}

// confirmation draws the moment an appointment was confirmed: after booking,
// before the visit, and never in the future relative to the anchor.
func (g *generator) confirmation(created time.Time, scheduled time.Time) time.Time {
	latest := timeline.Earlier(scheduled, g.clock.Now().Add(24*time.Hour-time.Second))
	return g.clock.TimeBetween(created, latest)
}
