// Package generate builds datasets: full runs from nothing and incremental
// extensions of a previously exported dataset. Both paths share one set of
// entity generators; an extension is a run whose dataset starts non-empty,
// with IDs continuing past the existing maxima and date windows resuming
// after the existing history.
package generate

import (
	"fmt"
	"time"

	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/graph"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

// Result is a finished run. First marks, per table, the index of the first
// row this run appended; rows before it were loaded from the prior dataset
// and are never rewritten.
type Result struct {
	Dataset *dataset.Dataset
	First   map[string]int
}

// NewRows returns how many rows the run added to table t.
func (r *Result) NewRows(t dataset.Table) int {
	return t.Len(r.Dataset) - r.First[t.Name]
}

// Run generates a complete dataset from scratch.
func Run(s *sample.Sampler, clock *timeline.Picker, counts Counts) (*Result, error) {
	return run(s, clock, counts, &dataset.Dataset{})
}

// Extend grows an existing dataset in place and returns it with the append
// markers set. Parent pools cover existing and new rows alike, so a new
// service call may reference a three-year-old customer or one created in
// the same run.
func Extend(s *sample.Sampler, clock *timeline.Picker, counts Counts, existing *dataset.Dataset) (*Result, error) {
	return run(s, clock, counts, existing)
}

func run(s *sample.Sampler, clock *timeline.Picker, counts Counts, base *dataset.Dataset) (*Result, error) {
	order, err := graph.Order(domain.Entities, domain.Parents)
	if err != nil {
		return nil, fmt.Errorf("failed to order entity graph: %w", err)
	}

	g := &generator{
		s:      s,
		clock:  clock,
		counts: counts,
		d:      base,
		first:  make(map[string]int, len(dataset.All())),
		lastID: make(map[string]int, len(dataset.All())),
	}
	for _, t := range dataset.All() {
		g.first[t.Name] = t.Len(base)
		g.lastID[t.Name] = dataset.MaxID(base, t)
	}

	for _, name := range order {
		step, ok := steps[name]
		if !ok {
			return nil, fmt.Errorf("no generator for entity %q", name)
		}
		step(g)
	}

	return &Result{Dataset: g.d, First: g.first}, nil
}

// steps maps each entity to its generator. The run walks these in graph
// order, so a step may sample freely from every parent slice.
var steps = map[string]func(*generator){
	domain.Customers:        (*generator).customers,
	domain.Technicians:      (*generator).technicians,
	domain.EquipmentTypes:   (*generator).equipmentTypes,
	domain.Parts:            (*generator).parts,
	domain.InstalledDevices: (*generator).installedDevices,
	domain.ServiceCalls:     (*generator).serviceCalls,
	domain.PartsUsage:       (*generator).partsUsage,
	domain.IncidentResponse: (*generator).incidents,
	domain.VehicleFleet:     (*generator).vehicles,
	domain.MailingList:      (*generator).mailingList,
	domain.Subscriptions:    (*generator).subscriptions,
	domain.Invoices:         (*generator).invoices,
	domain.Payments:         (*generator).payments,
	domain.Inventory:        (*generator).inventory,
	domain.Appointments:     (*generator).appointments,
	domain.Quotes:           (*generator).quotes,
	domain.WorkOrders:       (*generator).workOrders,
	domain.CustomerFeedback: (*generator).feedback,
	domain.Leads:            (*generator).leads,
}

type generator struct {
	s      *sample.Sampler
	clock  *timeline.Picker
	counts Counts
	d      *dataset.Dataset
	first  map[string]int
	lastID map[string]int
}

// nextID hands out the next identifier for an entity type. Extensions start
// past the prior maximum, so IDs stay unique across the whole history.
func (g *generator) nextID(name string) int {
	g.lastID[name]++
	return g.lastID[name]
}

// resumeAfter returns the start of a date window. Full runs use base as-is;
// extensions move it past the latest date already in the table so new
// history lands after old history, capped at the anchor so the window never
// inverts.
func (g *generator) resumeAfter(base time.Time, latestExisting time.Time) time.Time {
	if latestExisting.IsZero() {
		return base
	}
	next := timeline.Earlier(latestExisting.AddDate(0, 0, 1), g.clock.Now())
	return timeline.Later(base, next)
}

// latestDate folds the maximum of at(i) over rows [0, n).
func latestDate(n int, at func(i int) time.Time) time.Time {
	var latest time.Time
	for i := 0; i < n; i++ {
		if d := at(i); d.After(latest) {
			latest = d
		}
	}
	return latest
}

// pickCustomer, pickTechnician, pickEquipment, pickPart sample parents
// uniformly from the combined pool. pickTechnicianFor applies the declared
// level skew for demanding service types.

func (g *generator) pickCustomer() domain.Customer {
	return sample.Pick(g.s, g.d.Customers)
}

func (g *generator) pickTechnician() domain.Technician {
	return sample.Pick(g.s, g.d.Technicians)
}

func (g *generator) pickTechnicianFor(serviceType string) domain.Technician {
	weights := make([]float64, len(g.d.Technicians))
	for i, t := range g.d.Technicians {
		weights[i] = domain.TechnicianLevelWeight(t.Level, serviceType)
	}
	return g.d.Technicians[g.s.WeightedIndex(weights)]
}

func (g *generator) pickEquipment() domain.EquipmentType {
	return sample.Pick(g.s, g.d.EquipmentTypes)
}

func (g *generator) pickPart() domain.Part {
	return sample.Pick(g.s, g.d.Parts)
}

// newServiceCalls returns the calls appended by this run.
func (g *generator) newServiceCalls() []domain.ServiceCall {
	return g.d.ServiceCalls[g.first[domain.ServiceCalls]:]
}

// customerByID resolves a call's customer for date bounds. Rows are ID
// ordered in well-formed datasets, which makes this a direct index; the
// fallback scan covers datasets whose files were pruned by hand.
func (g *generator) customerByID(id int) domain.Customer {
	if id >= 1 && id <= len(g.d.Customers) && g.d.Customers[id-1].ID == id {
		return g.d.Customers[id-1]
	}
	for _, c := range g.d.Customers {
		if c.ID == id {
			return c
		}
	}
	panic(fmt.Sprintf("generate: unknown customer id %d", id))
}
