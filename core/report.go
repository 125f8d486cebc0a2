package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteReport prints every breakdown entry in evaluation order, one per
// line, with the inertia in kg*m^2. This is the bench's human-readable
// output format.
func WriteReport(w io.Writer, rigName string, b *Breakdown) error {
	if b == nil {
		return fmt.Errorf("WriteReport: nil breakdown")
	}
	if _, err := fmt.Fprintf(w, "Rotational inertia report: %s\n", rigName); err != nil {
		return err
	}
	for _, it := range b.Items() {
		if _, err := fmt.Fprintf(w, "  %-24s %.12e kg*m^2\n", it.Name, it.Value); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON emits the breakdown as an ordered array of entries, so
// JSON consumers see the same fixed order as the text report.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.items)
}
