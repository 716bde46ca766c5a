package main

import (
	"encoding/json"
	"fmt"
	"io"

	"formvalidator/internal/core/domain/validation"
)

type report struct {
	Record int                 `json:"record"`
	Valid  bool                `json:"valid"`
	Errors validation.ErrorMap `json:"errors"`
	failed []string
}

func newReport(index int, result validation.Result) report {
	return report{
		Record: index,
		Valid:  result.Valid(),
		Errors: result.Errors(),
		failed: result.Errors().Failed(),
	}
}

func countInvalid(reports []report) int {
	n := 0
	for _, r := range reports {
		if !r.Valid {
			n++
		}
	}
	return n
}

func writeReports(w io.Writer, format string, reports []report) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		if r.Valid {
			if _, err := fmt.Fprintf(w, "record %d: valid\n", r.Record); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "record %d: invalid\n", r.Record); err != nil {
			return err
		}
		for _, field := range r.failed {
			for _, msg := range r.Errors[field] {
				if _, err := fmt.Fprintf(w, "  %s: %s\n", field, msg); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d of %d records invalid\n", countInvalid(reports), len(reports))
	return err
}
