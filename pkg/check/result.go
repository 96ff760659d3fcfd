// Package check holds the result type shared by the layout checks.
package check

import "fmt"

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   `json:"name"`    // e.g., "script: /opt/app/app.pl"
	Status  Status   `json:"status"`  // OK, WARN or FAIL
	Details []string `json:"details"` // human-readable details
	Err     error    `json:"-"`       // underlying error for failures
}

// OK returns true unless the check failed. Warnings pass.
func (r Result) OK() bool {
	return r.Status != StatusFail
}

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// FailErr fails the result with the error text as the detail.
func (r *Result) FailErr(err error) Result {
	return r.Fail(err.Error(), err)
}

// Warn downgrades an OK result to a warning with a detail message.
func (r *Result) Warn(detail string) *Result {
	if r.Status != StatusFail {
		r.Status = StatusWarn
	}
	r.Details = append(r.Details, detail)
	return r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}

// Checker is implemented by the layout checks.
type Checker interface {
	Run() Result
}
