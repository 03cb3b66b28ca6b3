package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// Kind is the export type of a column. It decides how a Go value becomes a
// cell, how a cell is parsed back, and which SQL type the column gets.
type Kind int

const (
	Int      Kind = iota // plain integer
	Money                // two decimal places
	Decimal              // one decimal place, hours and ratings
	Rate                 // shortest exact form, e.g. 0.065
	Text                 // verbatim string, empty means absent
	Date                 // 2006-01-02
	DateTime             // 2006-01-02 15:04:05
	Bool                 // true / false
)

// String names the kind for manifests and error messages.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Money:
		return "money"
	case Decimal:
		return "decimal"
	case Rate:
		return "rate"
	case Text:
		return "text"
	case Date:
		return "date"
	case DateTime:
		return "datetime"
	case Bool:
		return "bool"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

type Column struct {
	Name string
	Kind Kind
}

// Value converts an encoded cell into a driver value for SQL inserts:
// numeric kinds become int64/float64, bools stay bool, dates keep their
// encoded text. An empty cell is NULL.
func (c Column) Value(cell string) (any, error) {
	if cell == "" {
		return nil, nil
	}
	switch c.Kind {
	case Int:
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		return v, nil
	case Money, Decimal, Rate:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		return v, nil
	case Bool:
		v, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Name, err)
		}
		return v, nil
	default:
		return cell, nil
	}
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Cell encoders. Optional values encode the nil case as an empty cell.

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

func formatDateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateTimeLayout)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

// rowReader walks one CSV record left to right. The first malformed cell
// parks an error and every later accessor returns a zero value, so table
// Scan funcs read as a flat field list with a single error check at the end.
type rowReader struct {
	table  string
	record []string
	pos    int
	err    error
}

func newRowReader(table string, record []string) *rowReader {
	return &rowReader{table: table, record: record}
}

func (r *rowReader) next() (string, bool) {
	if r.err != nil {
		return "", false
	}
	if r.pos >= len(r.record) {
		r.err = fmt.Errorf("%s: record has only %d cells", r.table, len(r.record))
		return "", false
	}
	cell := r.record[r.pos]
	r.pos++
	return cell, true
}

func (r *rowReader) fail(cell string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("%s: column %d: %q: %w", r.table, r.pos, cell, err)
	}
}

func (r *rowReader) Int() int {
	cell, ok := r.next()
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		r.fail(cell, err)
		return 0
	}
	return v
}

func (r *rowReader) IntPtr() *int {
	cell, ok := r.next()
	if !ok || cell == "" {
		return nil
	}
	v, err := strconv.Atoi(cell)
	if err != nil {
		r.fail(cell, err)
		return nil
	}
	return &v
}

func (r *rowReader) Float() float64 {
	cell, ok := r.next()
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		r.fail(cell, err)
		return 0
	}
	return v
}

func (r *rowReader) Text() string {
	cell, _ := r.next()
	return cell
}

func (r *rowReader) Date() time.Time {
	cell, ok := r.next()
	if !ok {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateLayout, cell, time.UTC)
	if err != nil {
		r.fail(cell, err)
		return time.Time{}
	}
	return t
}

func (r *rowReader) DatePtr() *time.Time {
	cell, ok := r.next()
	if !ok || cell == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, cell, time.UTC)
	if err != nil {
		r.fail(cell, err)
		return nil
	}
	return &t
}

func (r *rowReader) DateTime() time.Time {
	cell, ok := r.next()
	if !ok {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dateTimeLayout, cell, time.UTC)
	if err != nil {
		r.fail(cell, err)
		return time.Time{}
	}
	return t
}

func (r *rowReader) DateTimePtr() *time.Time {
	cell, ok := r.next()
	if !ok || cell == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, cell, time.UTC)
	if err != nil {
		r.fail(cell, err)
		return nil
	}
	return &t
}

func (r *rowReader) Bool() bool {
	cell, ok := r.next()
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(cell)
	if err != nil {
		r.fail(cell, err)
		return false
	}
	return v
}

func (r *rowReader) Err() error {
	if r.err != nil {
		return r.err
	}
	if r.pos != len(r.record) {
		return fmt.Errorf("%s: record has %d cells, consumed %d", r.table, len(r.record), r.pos)
	}
	return nil
}
