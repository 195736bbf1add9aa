package model

import "strings"

// Record is one contact row. Values are fixed once created.
type Record struct {
	name    string
	address string
	email   string
}

// NewRecord builds a Record. The address may span several lines.
func NewRecord(name, address, email string) Record {
	return Record{name: name, address: address, email: email}
}

// Name returns the primary field.
func (r Record) Name() string { return r.name }

// Address returns the multi-line secondary field.
func (r Record) Address() string { return r.address }

// AddressLines splits the address on line boundaries, tolerating CRLF.
func (r Record) AddressLines() []string {
	return SplitLines(r.address)
}

// Email returns the tertiary field.
func (r Record) Email() string { return r.email }

// Fields returns the three values in column order (name, address, email).
func (r Record) Fields() [3]string {
	return [3]string{r.name, r.address, r.email}
}

// SplitLines splits s into lines the way a text viewer would: "\n" separates
// lines, a trailing "\r" on a line is dropped and a trailing newline does not
// produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Dataset is the ordered, fixed-length set of records shown in the table.
type Dataset struct {
	records []Record
}

// NewDataset sorts records by name and returns the dataset. An empty input
// is rejected with ErrEmptyDataset since selection needs at least one row.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortByName(sorted)
	return &Dataset{records: sorted}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// At returns the record at index i.
func (d *Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy of the rows in display order.
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}
