package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/oracheck/oracheck/pkg/report"
)

func init() {
	color.NoColor = true
}

func TestTextRenderer_Render(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	report.NewTextRenderer(buf).Render(testReport())
	exp := `Check: orphaned_triggers
Triggers owned by application schemas.
Review these triggers before migration.
Result:
  - (APP, TRG1)
  - (APP, TRG2)

`
	if diff := cmp.Diff(exp, buf.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestTextRenderer_Render_empty(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	report.NewTextRenderer(buf).Render(&report.Report{Host: "db1"})
	if got := buf.String(); got != "No findings.\n" {
		t.Fatalf("wanted %q, got %q", "No findings.\n", got)
	}
}

func TestTextRenderer_Render_failures(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	report.NewTextRenderer(buf).Render(&report.Report{
		Host: "db1",
		Outcomes: []report.Outcome{
			{Name: "broken_check", Err: errors.New("ORA-00942")},
		},
	})
	if !strings.Contains(buf.String(), "ERROR Check broken_check failed: ORA-00942") {
		t.Fatalf("failures must be printed:\n%s", buf.String())
	}
}

func TestReport_Results(t *testing.T) {
	t.Parallel()
	rep := &report.Report{
		GeneratedAt: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Outcomes: []report.Outcome{
			{Name: "a", Result: &report.CheckResult{Name: "a", Rows: []report.Row{{1}}}},
			{Name: "b"},
			{Name: "c", Err: errors.New("failed")},
			{Name: "d", Result: &report.CheckResult{Name: "d", Rows: []report.Row{{2}}}},
		},
	}
	results := rep.Results()
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	if diff := cmp.Diff([]string{"a", "d"}, names); diff != "" {
		t.Fatal(diff)
	}
	for _, r := range results {
		if len(r.Rows) == 0 {
			t.Fatalf("the result %q must have rows", r.Name)
		}
	}
	failures := rep.Failures()
	if len(failures) != 1 || failures[0].Name != "c" {
		t.Fatalf("wanted the failure of c, got %v", failures)
	}
}
