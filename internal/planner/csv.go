package planner

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const csvHeader = "Project,Customer,Address,Amount,Schedule Date,Days,Crew"

// WriteCSV writes one row per materialized event, text fields quoted.
func WriteCSV(w io.Writer, events []Event) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return err
	}
	for _, e := range events {
		row := fmt.Sprintf("%s,%s,%s,%s,%s,%d,%s\n",
			quote(e.Project.Name),
			quote(displayName(e.Project.Name)),
			quote(e.Project.Address),
			// plain decimal, never scientific notation on large amounts
			strconv.FormatFloat(e.Project.Amount, 'f', -1, 64),
			e.Date,
			e.Span,
			quote(e.Crew),
		)
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
	}
	return nil
}

// quote wraps a text field in double quotes, doubling embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
