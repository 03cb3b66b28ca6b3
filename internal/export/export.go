// Package export writes datasets out: one CSV per entity table, an optional
// single-file SQLite artifact, and a YAML manifest describing the export for
// downstream loaders. CSV files are the contract; the artifact and manifest
// are conveniences layered on top of them.
package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"gopkg.in/yaml.v3"

	"github.com/fieldforge/fieldforge/internal/dataset"
)

// ManifestName is the manifest file written next to the CSVs.
const ManifestName = "seed_schema.yml"

// insertBatch is the number of rows per INSERT in the SQLite artifact.
const insertBatch = 100

// CSV writes every table of d into dir as <table>.csv, header first. Tables
// are written concurrently; on failure the files already written stay in
// place so a partial export can be inspected.
func CSV(d *dataset.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return eachTable(func(t dataset.Table) error {
		return writeTable(d, t, filepath.Join(dir, t.Name+".csv"))
	})
}

// Append adds the rows of d from index first[table] onward to the existing
// CSV files in dir, without headers. Rows before the marker are assumed to be
// in the files already and are never rewritten.
func Append(d *dataset.Dataset, first map[string]int, dir string) error {
	return eachTable(func(t dataset.Table) error {
		return appendTable(d, t, first[t.Name], filepath.Join(dir, t.Name+".csv"))
	})
}

// eachTable runs fn once per table on its own goroutine and collects the
// failures into one error, sorted for a stable message.
func eachTable(fn func(t dataset.Table) error) error {
	tables := dataset.All()
	results := make(chan error, len(tables))
	var wg sync.WaitGroup

	for _, t := range tables {
		wg.Add(1)
		go func(t dataset.Table) {
			defer wg.Done()
			results <- fn(t)
		}(t)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var failures []string
	for err := range results {
		if err != nil {
			failures = append(failures, err.Error())
		}
	}
	if len(failures) > 0 {
		sort.Strings(failures)
		return fmt.Errorf("export failed: %s", strings.Join(failures, "; "))
	}
	return nil
}

func writeTable(d *dataset.Dataset, t dataset.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file at %s: %w", t.Name, path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(t.Header()); err != nil {
		return fmt.Errorf("failed to write %s header: %w", t.Name, err)
	}
	for i := 0; i < t.Len(d); i++ {
		if err := w.Write(t.Row(d, i)); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", t.Name, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s to %s: %w", t.Name, path, err)
	}
	return nil
}

func appendTable(d *dataset.Dataset, t dataset.Table, from int, path string) error {
	if from >= t.Len(d) {
		return nil
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append at %s: %w", t.Name, path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for i := from; i < t.Len(d); i++ {
		if err := w.Write(t.Row(d, i)); err != nil {
			return fmt.Errorf("failed to append %s row %d: %w", t.Name, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s to %s: %w", t.Name, path, err)
	}
	return nil
}

// sqliteTypes maps column kinds onto SQLite storage classes. Dates stay in
// their text form so the artifact matches the CSVs cell for cell.
var sqliteTypes = map[dataset.Kind]string{
	dataset.Int:      "INTEGER",
	dataset.Money:    "REAL",
	dataset.Decimal:  "REAL",
	dataset.Rate:     "REAL",
	dataset.Text:     "TEXT",
	dataset.Date:     "TEXT",
	dataset.DateTime: "TEXT",
	dataset.Bool:     "INTEGER",
}

// SQLite writes the whole dataset into a single-file SQLite database at
// path, replacing any previous artifact. All tables land in one transaction,
// so a failed run leaves no half-written file behind.
func SQLite(ctx context.Context, d *dataset.Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace artifact at %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to create SQLite artifact at %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start artifact transaction: %w", err)
	}
	defer tx.Rollback()

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	for _, t := range dataset.All() {
		if _, err := tx.ExecContext(ctx, createTableSQL(t)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
		if err := insertRows(ctx, tx, qb, d, t); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit artifact: %w", err)
	}
	return nil
}

func createTableSQL(t dataset.Table) string {
	defs := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		defs[i] = col.Name + " " + sqliteTypes[col.Kind]
		if i == 0 {
			defs[i] += " PRIMARY KEY"
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(defs, ", "))
}

func insertRows(ctx context.Context, tx *sql.Tx, qb squirrel.StatementBuilderType, d *dataset.Dataset, t dataset.Table) error {
	for start := 0; start < t.Len(d); start += insertBatch {
		end := start + insertBatch
		if end > t.Len(d) {
			end = t.Len(d)
		}

		builder := qb.Insert(t.Name).Columns(t.Header()...)
		for i := start; i < end; i++ {
			vals, err := rowValues(t, t.Row(d, i))
			if err != nil {
				return fmt.Errorf("failed to encode %s row %d: %w", t.Name, i+1, err)
			}
			builder = builder.Values(vals...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", t.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", t.Name, err)
		}
	}
	return nil
}

func rowValues(t dataset.Table, row []string) ([]any, error) {
	vals := make([]any, len(row))
	for i, cell := range row {
		v, err := t.Columns[i].Value(cell)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// Manifest describes one exported dataset: where each table lives, its
// column schema, and the run parameters that produced it.
type Manifest struct {
	Version     int             `yaml:"version"`
	GeneratedAt string          `yaml:"generated_at"`
	Seed        int64           `yaml:"seed"`
	Anchor      string          `yaml:"anchor"`
	TotalRows   int             `yaml:"total_rows"`
	Tables      []ManifestTable `yaml:"tables"`
}

type ManifestTable struct {
	Name    string           `yaml:"name"`
	File    string           `yaml:"file"`
	Rows    int              `yaml:"rows"`
	Columns []ManifestColumn `yaml:"columns"`
}

type ManifestColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// WriteManifest writes the seed-schema manifest for d into dir.
func WriteManifest(d *dataset.Dataset, seed int64, anchor time.Time, dir string) error {
	m := Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
		Seed:        seed,
		Anchor:      anchor.Format("2006-01-02"),
		TotalRows:   d.Rows(),
	}
	for _, t := range dataset.All() {
		mt := ManifestTable{
			Name: t.Name,
			File: t.Name + ".csv",
			Rows: t.Len(d),
		}
		for _, col := range t.Columns {
			mt.Columns = append(mt.Columns, ManifestColumn{Name: col.Name, Type: col.Kind.String()})
		}
		m.Tables = append(m.Tables, mt)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest to %s: %w", path, err)
	}
	return nil
}
