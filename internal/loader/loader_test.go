package loader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/domain"
	"github.com/fieldforge/fieldforge/internal/generate"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

func TestCanonicalProviders(t *testing.T) {
	for alias, want := range map[string]string{
		"sqlite":     "sqlite",
		"sqlite3":    "sqlite",
		"postgres":   "postgres",
		"postgresql": "postgres",
		"mysql":      "mysql",
	} {
		got, err := canonical(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got)
	}

	_, err := canonical("mongodb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestCreateTableSQLPerProvider(t *testing.T) {
	invoices, ok := dataset.ByName(domain.Invoices)
	require.True(t, ok)
	appointments, ok := dataset.ByName(domain.Appointments)
	require.True(t, ok)

	pg := createTableSQL("postgres", invoices)
	assert.Contains(t, pg, "CREATE TABLE IF NOT EXISTS invoices")
	assert.Contains(t, pg, "invoice_id INTEGER PRIMARY KEY")
	assert.Contains(t, pg, "issue_date DATE")
	assert.Contains(t, pg, "tax_rate DOUBLE PRECISION")

	my := createTableSQL("mysql", appointments)
	assert.Contains(t, my, "scheduled_time DATETIME")
	assert.Contains(t, my, "appointment_id INT PRIMARY KEY")

	lite := createTableSQL("sqlite", invoices)
	assert.Contains(t, lite, "issue_date TEXT")
	assert.Contains(t, lite, "subtotal REAL")
}

func loadableDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	s := sample.New(61)
	res, err := generate.Run(s, timeline.NewPicker(s, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 90), generate.Counts{
		Customers:        6,
		Technicians:      3,
		EquipmentTypes:   4,
		Parts:            5,
		InstalledDevices: 5,
		ServiceCalls:     10,
		Incidents:        2,
		Vehicles:         2,
		MailingProspects: 2,
		Subscriptions:    3,
		Appointments:     12,
		Quotes:           4,
		Feedback:         5,
		Leads:            4,
		InvoicePercent:   0.85,
		MaxPartsPerCall:  3,
	})
	require.NoError(t, err)
	return res.Dataset
}

func TestLoadSQLiteEndToEnd(t *testing.T) {
	ctx := context.Background()
	d := loadableDataset(t)

	l, err := Open(ctx, "sqlite", ":memory:")
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Load(ctx, d, false))

	for _, tab := range dataset.All() {
		var n int
		require.NoError(t, l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+tab.Name).Scan(&n))
		assert.Equal(t, tab.Len(d), n, "%s row count", tab.Name)
	}

	var name string
	require.NoError(t, l.db.QueryRowContext(ctx,
		"SELECT technician_name FROM technicians WHERE technician_id = 1").Scan(&name))
	assert.Equal(t, d.Technicians[0].Name, name)

	// Reloading without truncate collides on primary keys.
	require.Error(t, l.Load(ctx, d, false))

	// Truncate clears the prior rows, so counts stay flat.
	require.NoError(t, l.Load(ctx, d, true))
	var customers int
	require.NoError(t, l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&customers))
	assert.Equal(t, len(d.Customers), customers)
}
