package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadDir loads a previously exported dataset from dir. Every table file
// must be present with its exact header; a dataset with missing or reshaped
// files is not one this tool wrote, and extending it would corrupt it.
func ReadDir(dir string) (*Dataset, error) {
	d := &Dataset{}
	for _, t := range All() {
		path := filepath.Join(dir, t.Name+".csv")
		if err := readTable(d, t, path); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return d, nil
}

func readTable(d *Dataset, t Table, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return fmt.Errorf("empty file, expected a header row")
	}
	if err != nil {
		return err
	}
	if err := checkHeader(t, header); err != nil {
		return err
	}

	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := t.Scan(d, record); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func checkHeader(t Table, header []string) error {
	want := t.Header()
	if len(header) != len(want) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(want))
	}
	for i, name := range want {
		if header[i] != name {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], name)
		}
	}
	return nil
}
