package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/rpggio/pairwork/internal/domain/overlap"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ValidateFormat reports ErrUnknownFormat for a format Report cannot write.
// The empty string selects text.
func ValidateFormat(format string) error {
	if format == "" || slices.Contains(Formats(), format) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Report writes a report to w in the requested format.
// text and table print results only; json and yaml include rejected rows and counts.
func Report(w io.Writer, report *overlap.Report, format string) error {
	switch format {
	case "", FormatText:
		return writeText(w, report.Results)
	case FormatTable:
		return writeTable(w, report.Results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, results []overlap.ProjectResult) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "Project ID: %d, Total Days: %d, Emp1: %d, Emp2: %d\n",
			r.ProjectID, r.DaysWorkedTogether, r.EmployeeOneID, r.EmployeeTwoID)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []overlap.ProjectResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tDAYS\tEMP1\tEMP2")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", r.ProjectID, r.DaysWorkedTogether, r.EmployeeOneID, r.EmployeeTwoID)
	}
	return tw.Flush()
}
