package diagnostics

import (
	"fmt"
	"io"

	glossaryterm "github.com/goliatone/go-glossary/term"
)

// ProbeResult records whether an exact term string is present in the store.
type ProbeResult struct {
	TermString string
	Exists     bool
}

// Report holds the outcome of a diagnostics run.
type Report struct {
	Probes          []ProbeResult
	Total           int
	SampleSize      int
	Sample          []*glossaryterm.Term
	Contains        string
	ContainsMatches []*glossaryterm.Term
	ContainsCount   int
	HasContains     bool
}

// WriteTo renders the report in the plain text layout used by the checkdb
// command.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var written int64

	printf := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}

	for _, probe := range r.Probes {
		if err := printf("%s exists: %t\n", probe.TermString, probe.Exists); err != nil {
			return written, err
		}
	}

	if err := printf("Total terms in database: %d\n", r.Total); err != nil {
		return written, err
	}

	if err := printf("\nFirst %d terms:\n", r.SampleSize); err != nil {
		return written, err
	}
	for _, record := range r.Sample {
		if err := printf("- %s (ID: %s, Status: %s)\n", record.TermString, record.ID, record.Status); err != nil {
			return written, err
		}
	}

	if r.HasContains {
		if err := printf("\nTerms containing '%s': %d\n", r.Contains, r.ContainsCount); err != nil {
			return written, err
		}
		for _, record := range r.ContainsMatches {
			if err := printf("- %s\n", record.TermString); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}
