package batch

import (
	"encoding/csv"
	"fmt"
	"io"
)

// reportHeader is the fixed first row of every report.
var reportHeader = []string{"action", "username", "result"}

// WriteReport renders the three-column CSV report: one header row, then
// one row per result in input order.
func WriteReport(w io.Writer, results []Result) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for _, res := range results {
		row := []string{res.Action, res.Username, res.Outcome}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write report row for %s: %w", res.Username, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
