// Package loader bulk-inserts an exported dataset into a local analytics
// database. The CSV files remain the downstream contract; loading them into
// sqlite, postgres, or mysql is a dev-loop convenience.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fieldforge/fieldforge/internal/dataset"
)

// insertBatch is the number of rows per INSERT statement.
const insertBatch = 100

type Loader struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	provider string
}

// Open connects to the database behind provider and dsn and verifies the
// connection with a ping.
func Open(ctx context.Context, provider, dsn string) (*Loader, error) {
	name, err := canonical(provider)
	if err != nil {
		return nil, err
	}

	driver, placeholder := drivers[name], placeholders[name]
	if name == "sqlite" {
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", name, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	if name == "sqlite" && strings.Contains(dsn, ":memory:") {
		// A pooled :memory: DSN gives every connection its own empty
		// database; the whole load has to share one.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", name, err)
	}

	return &Loader{
		db:       db,
		qb:       squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		provider: name,
	}, nil
}

func (l *Loader) Close() error {
	return l.db.Close()
}

// canonical folds provider aliases onto one name per engine.
func canonical(provider string) (string, error) {
	switch provider {
	case "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	}
	return "", fmt.Errorf("unsupported provider %q (want sqlite, postgresql, or mysql)", provider)
}

var drivers = map[string]string{
	"sqlite":   "sqlite3",
	"postgres": "pgx",
	"mysql":    "mysql",
}

var placeholders = map[string]squirrel.PlaceholderFormat{
	"sqlite":   squirrel.Question,
	"postgres": squirrel.Dollar,
	"mysql":    squirrel.Question,
}

// columnTypes maps column kinds onto each engine's column types.
var columnTypes = map[string]map[dataset.Kind]string{
	"sqlite": {
		dataset.Int:      "INTEGER",
		dataset.Money:    "REAL",
		dataset.Decimal:  "REAL",
		dataset.Rate:     "REAL",
		dataset.Text:     "TEXT",
		dataset.Date:     "TEXT",
		dataset.DateTime: "TEXT",
		dataset.Bool:     "INTEGER",
	},
	"postgres": {
		dataset.Int:      "INTEGER",
		dataset.Money:    "DOUBLE PRECISION",
		dataset.Decimal:  "DOUBLE PRECISION",
		dataset.Rate:     "DOUBLE PRECISION",
		dataset.Text:     "TEXT",
		dataset.Date:     "DATE",
		dataset.DateTime: "TIMESTAMP",
		dataset.Bool:     "BOOLEAN",
	},
	"mysql": {
		dataset.Int:      "INT",
		dataset.Money:    "DOUBLE",
		dataset.Decimal:  "DOUBLE",
		dataset.Rate:     "DOUBLE",
		dataset.Text:     "TEXT",
		dataset.Date:     "DATE",
		dataset.DateTime: "DATETIME",
		dataset.Bool:     "BOOLEAN",
	},
}

// Load creates the tables and inserts every row of d in dependency order,
// inside one transaction. With truncate set, existing rows are cleared first
// in reverse dependency order.
func (l *Loader) Load(ctx context.Context, d *dataset.Dataset, truncate bool) error {
	tables := dataset.All()

	for _, t := range tables {
		if _, err := l.db.ExecContext(ctx, createTableSQL(l.provider, t)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}

	if truncate {
		if err := l.clear(ctx, tables); err != nil {
			return err
		}
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range tables {
		color.Cyan("  📝 Loading %s (%d rows)...", t.Name, t.Len(d))
		if err := loadTable(ctx, tx, l.qb, d, t); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}
	color.Green("✅ Loaded %d rows across %d tables", d.Rows(), len(tables))
	return nil
}

func createTableSQL(provider string, t dataset.Table) string {
	types := columnTypes[provider]
	defs := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		defs[i] = col.Name + " " + types[col.Kind]
		if i == 0 {
			defs[i] += " PRIMARY KEY"
		}
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(defs, ", "))
}

func (l *Loader) clear(ctx context.Context, tables []dataset.Table) error {
	color.Yellow("🗑️  Clearing existing rows...")
	for i := len(tables) - 1; i >= 0; i-- {
		name := tables[i].Name
		var query string
		switch l.provider {
		case "postgres":
			query = fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", name)
		case "mysql":
			query = fmt.Sprintf("TRUNCATE TABLE %s", name)
		default:
			query = fmt.Sprintf("DELETE FROM %s", name)
		}
		if _, err := l.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}
	return nil
}

func loadTable(ctx context.Context, tx *sql.Tx, qb squirrel.StatementBuilderType, d *dataset.Dataset, t dataset.Table) error {
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
