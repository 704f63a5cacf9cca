// Package report defines the data contract between check execution and
// rendering, and the text and HTML renderers that consume it.
package report

import "time"

// Row is one finding returned by a check query. Column values keep the
// types the driver produced, so a row is heterogeneous.
type Row []any

// CheckResult holds the findings of a single check whose query returned
// at least one row.
type CheckResult struct {
	Name        string
	Description string
	Warning     string
	Rows        []Row
}

// Outcome is the result of running one check. Exactly one of the
// following holds: Result is non-nil (the check found something), Err is
// non-nil (the check failed, keep-going mode only), or both are nil (the
// check ran and found nothing).
type Outcome struct {
	Name   string
	Result *CheckResult
	Err    error
}

// Report is the outcome of one audit run. Outcomes appear in the same
// order as the check definitions they came from. A Report is not mutated
// after construction.
type Report struct {
	Host          string
	ServerVersion string
	GeneratedAt   time.Time
	Outcomes      []Outcome
}

// Results returns the non-empty check results in definition order.
func (r *Report) Results() []*CheckResult {
	results := make([]*CheckResult, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		if o.Result != nil {
			results = append(results, o.Result)
		}
	}
	return results
}

// Failures returns the outcomes whose checks failed, in definition order.
func (r *Report) Failures() []Outcome {
	var failures []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failures = append(failures, o)
		}
	}
	return failures
}
