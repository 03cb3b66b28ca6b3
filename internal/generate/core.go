package generate

import (
	"time"

	"github.com/fieldforge/fieldforge/internal/derive"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/sample"
)

func (g *generator) customers() {
	from := g.resumeAfter(
		g.clock.Now().AddDate(-2, 0, 0),
		latestDate(g.first[domain.Customers], func(i int) time.Time { return g.d.Customers[i].CreatedAt }),
	)
	for i := 0; i < g.counts.Customers; i++ {
		c := domain.Customer{
			ID:      g.nextID(domain.Customers),
			Address: address(g.s),
			Phone:   phone(g.s),
		}
		// Commercial accounts carry company names, residential ones
		// personal names; the split is an even coin.
		if g.s.Bool() {
			c.Name = companyName(g.s)
			c.Type = domain.CustomerCommercial
		} else {
			first, last := personName(g.s)
			c.Name = first + " " + last
			c.Type = domain.CustomerResidential
		}
		c.CreatedAt = g.clock.DateBetween(from, g.clock.Now())
		g.d.Customers = append(g.d.Customers, c)
	}
}

func (g *generator) technicians() {
	from := g.resumeAfter(
		g.clock.Now().AddDate(-5, 0, 0),
		latestDate(g.first[domain.Technicians], func(i int) time.Time { return g.d.Technicians[i].HireDate }),
	)
	for i := 0; i < g.counts.Technicians; i++ {
		first, last := personName(g.s)
		level := sample.Pick(g.s, domain.TechnicianLevels)
		lo, hi := domain.LevelRateBand(level)
		t := domain.Technician{
			ID:                 g.nextID(domain.Technicians),
			Name:               first + " " + last,
			Phone:              phone(g.s),
			Level:              level,
			HourlyRate:         g.s.Int(lo, hi),
			HireDate:           g.clock.DateBetween(from, g.clock.Now()),
			YearsExperience:    g.s.Int(1, 20),
			CertificationLevel: sample.Pick(g.s, domain.CertificationLevels),
			Skills: domain.SkillSet{
				HVACInstallation: g.skill(level),
				Electrical:       g.skill(level),
				Refrigeration:    g.skill(level),
				Ductwork:         g.skill(level),
				Diagnostics:      g.skill(level),
				CustomerService:  g.skill(level),
				SafetyProtocols:  g.skill(level),
			},
		}
		g.d.Technicians = append(g.d.Technicians, t)
	}
}

// skill draws one proficiency score around the level's base, clamped to the
// 1..10 scale.
func (g *generator) skill(level string) int {
	v := domain.LevelBaseSkill(level) + g.s.Int(-2, 2)
	if v < 1 {
		v = 1
	}
	if v > 10 {
		v = 10
	}
	return v
}

func (g *generator) equipmentTypes() {
	for i := 0; i < g.counts.EquipmentTypes; i++ {
		e := domain.EquipmentType{
			ID:           g.nextID(domain.EquipmentTypes),
			Brand:        sample.Pick(g.s, domain.EquipmentBrands),
			Model:        equipmentModel(g.s),
			Type:         sample.Pick(g.s, domain.EquipmentKinds),
			BTURating:    sample.Pick(g.s, domain.BTURatings),
			EnergyRating: derive.Round1(g.s.Float(13, 20)),
		}
		g.d.EquipmentTypes = append(g.d.EquipmentTypes, e)
	}
}

func (g *generator) parts() {
	for i := 0; i < g.counts.Parts; i++ {
		category := sample.Pick(g.s, domain.PartCategories)
		p := domain.Part{
			ID:       g.nextID(domain.Parts),
			Name:     partName(g.s, category),
			Category: category,
			UnitCost: derive.Round2(g.s.Float(5, 500)),
			Supplier: sample.Pick(g.s, domain.Suppliers),
		}
		g.d.Parts = append(g.d.Parts, p)
	}
}

func (g *generator) leads() {
	from := g.resumeAfter(
		g.clock.Now().AddDate(-1, 0, 0),
		latestDate(g.first[domain.Leads], func(i int) time.Time { return g.d.Leads[i].CreatedDate }),
	)
	for i := 0; i < g.counts.Leads; i++ {
		first, last := personName(g.s)
		l := domain.Lead{
			ID:                    g.nextID(domain.Leads),
			FirstName:             first,
			LastName:              last,
			CompanyName:           maybe(g.s, companyName(g.s)),
			Phone:                 phone(g.s),
			Email:                 email(g.s, first, last),
			Address:               address(g.s),
			Source:                sample.Pick(g.s, domain.LeadSources),
			ServiceInterest:       sample.Pick(g.s, domain.ServiceInterests),
			EstimatedValue:        derive.Round2(g.s.Float(200, 5000)),
			Urgency:               sample.Pick(g.s, domain.UrgencyLevels),
			Status:                sample.Pick(g.s, domain.LeadStatuses),
			CreatedDate:           g.clock.DateBetween(from, g.clock.Now()),
			AssignedTo:            salesRep(g.s),
			Notes:                 sentence(g.s, domain.LeadNotes),
			ConversionProbability: g.s.Int(10, 90),
		}
		if g.s.Bool() {
			contact := g.clock.DateBetween(l.CreatedDate, g.clock.Now())
			l.LastContactDate = &contact
		}
		g.d.Leads = append(g.d.Leads, l)
	}
}
