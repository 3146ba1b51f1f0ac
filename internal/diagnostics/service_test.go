package diagnostics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-glossary/internal/diagnostics"
	"github.com/goliatone/go-glossary/internal/terms"
)

func newSeededTermService(t *testing.T, seeds ...string) terms.Service {
	t.Helper()
	svc := terms.NewService(terms.NewMemoryTermRepository())
	ctx := context.Background()
	for _, seed := range seeds {
		if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: seed}); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
	}
	return svc
}

func TestDiagnosticsRunProbesAndCounts(t *testing.T) {
	svc := diagnostics.NewService(newSeededTermService(t, "White ice", "Young ice", "Nilas"))

	report, err := svc.Run(context.Background(), diagnostics.ReportOptions{
		Probes:   []string{"White ice", "Pancake ice"},
		Contains: "ice",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(report.Probes) != 2 {
		t.Fatalf("expected 2 probe results got %d", len(report.Probes))
	}
	if !report.Probes[0].Exists {
		t.Fatalf("expected %q probe to exist", report.Probes[0].TermString)
	}
	if report.Probes[1].Exists {
		t.Fatalf("expected %q probe to be absent", report.Probes[1].TermString)
	}
	if report.Total != 3 {
		t.Fatalf("expected total 3 got %d", report.Total)
	}
	if len(report.Sample) != 3 {
		t.Fatalf("expected 3 sampled terms got %d", len(report.Sample))
	}
	if report.ContainsCount != 2 {
		t.Fatalf("expected 2 substring matches got %d", report.ContainsCount)
	}
}

func TestDiagnosticsRunLimitsSample(t *testing.T) {
	svc := diagnostics.NewService(newSeededTermService(t, "a", "b", "c", "d"))

	report, err := svc.Run(context.Background(), diagnostics.ReportOptions{SampleSize: 2})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if report.Total != 4 {
		t.Fatalf("expected total 4 got %d", report.Total)
	}
	if len(report.Sample) != 2 {
		t.Fatalf("expected 2 sampled terms got %d", len(report.Sample))
	}
}

func TestDiagnosticsReportLayout(t *testing.T) {
	svc := diagnostics.NewService(newSeededTermService(t, "White ice", "Young ice"))

	report, err := svc.Run(context.Background(), diagnostics.ReportOptions{
		Probes:   []string{"White ice"},
		Contains: "ice",
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var buf strings.Builder
	if _, err := report.WriteTo(&buf); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"White ice exists: true\n",
		"Total terms in database: 2\n",
		"First 10 terms:\n",
		"- White ice (ID: ",
		", Status: vernacular)\n",
		"Terms containing 'ice': 2\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected report to contain %q, got:\n%s", want, out)
		}
	}

	tail := out[strings.Index(out, "Terms containing 'ice': 2\n"):]
	for _, want := range []string{"- White ice\n", "- Young ice\n"} {
		if !strings.Contains(tail, want) {
			t.Fatalf("expected matched term line %q after contains count, got:\n%s", want, out)
		}
	}
}

func TestDiagnosticsReportEmptyTable(t *testing.T) {
	svc := diagnostics.NewService(newSeededTermService(t))

	report, err := svc.Run(context.Background(), diagnostics.ReportOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var buf strings.Builder
	if _, err := report.WriteTo(&buf); err != nil {
		t.Fatalf("write report: %v", err)
	}
	out := buf.String()

	if out != "Total terms in database: 0\n\nFirst 10 terms:\n" {
		t.Fatalf("expected zero count and empty listing for empty table, got:\n%q", out)
	}
}

func TestDiagnosticsRunAppliesConfiguredDefaults(t *testing.T) {
	svc := diagnostics.NewService(newSeededTermService(t, "White ice", "Nilas"),
		diagnostics.WithDefaults(diagnostics.ReportOptions{
			Probes:     []string{"White ice"},
			SampleSize: 1,
			Contains:   "ice",
		}),
	)

	report, err := svc.Run(context.Background(), diagnostics.ReportOptions{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(report.Probes) != 1 || !report.Probes[0].Exists {
		t.Fatalf("expected configured probe to run, got %+v", report.Probes)
	}
	if len(report.Sample) != 1 {
		t.Fatalf("expected configured sample size 1, got %d sampled terms", len(report.Sample))
	}
	if !report.HasContains || report.ContainsCount != 1 {
		t.Fatalf("expected configured contains probe to match once, got %+v", report)
	}
	if len(report.ContainsMatches) != 1 || report.ContainsMatches[0].TermString != "White ice" {
		t.Fatalf("expected matched records on the report, got %+v", report.ContainsMatches)
	}
}
