package export

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/generate"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

var exportAnchor = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

const exportHorizonDays = 90

func tinyCounts() generate.Counts {
	return generate.Counts{
		Customers:        8,
		Technicians:      3,
		EquipmentTypes:   4,
		Parts:            5,
		InstalledDevices: 6,
		ServiceCalls:     12,
		Incidents:        3,
		Vehicles:         2,
		MailingProspects: 3,
		Subscriptions:    4,
		Appointments:     15,
		Quotes:           5,
		Feedback:         6,
		Leads:            5,
		InvoicePercent:   0.85,
		MaxPartsPerCall:  3,
	}
}

func tinyDataset(t *testing.T, seed int64) *generate.Result {
	t.Helper()
	s := sample.New(seed)
	res, err := generate.Run(s, timeline.NewPicker(s, exportAnchor, exportHorizonDays), tinyCounts())
	require.NoError(t, err)
	return res
}

func TestCSVWritesEveryTable(t *testing.T) {
	res := tinyDataset(t, 5)
	dir := t.TempDir()
	require.NoError(t, CSV(res.Dataset, dir))

	for _, tab := range dataset.All() {
		path := filepath.Join(dir, tab.Name+".csv")
		data, err := os.ReadFile(path)
		require.NoError(t, err, "missing export for %s", tab.Name)

		lines := strings.Count(string(data), "\n")
		assert.Equal(t, 1+tab.Len(res.Dataset), lines, "%s line count", tab.Name)
		assert.True(t, strings.HasPrefix(string(data), strings.Join(tab.Header(), ",")+"\n"),
			"%s should start with its header", tab.Name)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	res := tinyDataset(t, 9)
	dir := t.TempDir()
	require.NoError(t, CSV(res.Dataset, dir))

	loaded, err := dataset.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, res.Dataset, loaded)
}

func TestAppendWritesRowsWithoutHeader(t *testing.T) {
	res := tinyDataset(t, 15)
	dir := t.TempDir()
	require.NoError(t, CSV(res.Dataset, dir))

	s := sample.New(16)
	inc := tinyCounts()
	inc.ServiceCalls = 6
	inc.Customers = 2
	ext, err := generate.Extend(s, timeline.NewPicker(s, exportAnchor, exportHorizonDays), inc, res.Dataset)
	require.NoError(t, err)
	require.NoError(t, Append(ext.Dataset, ext.First, dir))

	data, err := os.ReadFile(filepath.Join(dir, "customers.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "customer_id"),
		"append must not write a second header")
	assert.Equal(t, 1+len(ext.Dataset.Customers), strings.Count(string(data), "\n"))

	loaded, err := dataset.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, ext.Dataset, loaded)
}

func TestAppendRequiresExistingFiles(t *testing.T) {
	res := tinyDataset(t, 21)
	err := Append(res.Dataset, map[string]int{}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "for append")
}

func TestSQLiteArtifact(t *testing.T) {
	res := tinyDataset(t, 33)
	path := filepath.Join(t.TempDir(), "fieldforge.db")
	require.NoError(t, SQLite(context.Background(), res.Dataset, path))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, tab := range dataset.All() {
		var n int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+tab.Name).Scan(&n))
		assert.Equal(t, tab.Len(res.Dataset), n, "%s row count", tab.Name)
	}

	var name string
	require.NoError(t, db.QueryRow("SELECT customer_name FROM customers WHERE customer_id = 1").Scan(&name))
	assert.Equal(t, res.Dataset.Customers[0].Name, name)

	var total float64
	require.NoError(t, db.QueryRow("SELECT total_amount FROM invoices WHERE invoice_id = 1").Scan(&total))
	assert.Equal(t, res.Dataset.Invoices[0].Total, total)

	// A second run replaces the artifact instead of failing on the old file.
	require.NoError(t, db.Close())
	require.NoError(t, SQLite(context.Background(), res.Dataset, path))
}

func TestWriteManifest(t *testing.T) {
	res := tinyDataset(t, 27)
	dir := t.TempDir()
	require.NoError(t, WriteManifest(res.Dataset, 27, exportAnchor, dir))

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, 1, m.Version)
	assert.Equal(t, int64(27), m.Seed)
	assert.Equal(t, "2025-04-01", m.Anchor)
	assert.Equal(t, res.Dataset.Rows(), m.TotalRows)
	require.Len(t, m.Tables, len(dataset.All()))

	first := m.Tables[0]
	assert.Equal(t, "customers", first.Name)
	assert.Equal(t, "customers.csv", first.File)
	assert.Equal(t, len(res.Dataset.Customers), first.Rows)
	require.NotEmpty(t, first.Columns)
	assert.Equal(t, "customer_id", first.Columns[0].Name)
	assert.Equal(t, "int", first.Columns[0].Type)
}
