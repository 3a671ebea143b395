package datasource

import (
	"context"
	"fmt"
)

// CountProvider supplies the observed record count for a data type from the
// current store.
type CountProvider interface {
	CountRecords(ctx context.Context, dataType string) (int64, error)
}

// Result is the tri-state verification outcome for one data type.
type Result struct {
	DataType          string `json:"data_type"`
	Mode              Mode   `json:"mode"`
	IsValid           bool   `json:"is_valid"`
	SourceVerified    bool   `json:"source_verified"`
	CountVerified     bool   `json:"count_verified"`
	IntegrityVerified bool   `json:"integrity_verified"`
	ExpectedCount     int64  `json:"expected_count"`
	ActualCount       int64  `json:"actual_count"`
	Error             string `json:"error,omitempty"`
}

type Validator struct {
	settings *Settings
	counts   CountProvider
}

func NewValidator(settings *Settings, counts CountProvider) *Validator {
	return &Validator{settings: settings, counts: counts}
}

// Validate cross-checks the observed count for dataType against the expected
// table of the current mode. Store failures come back as an invalid Result
// with the error string set; Validate itself never returns an error.
func (v *Validator) Validate(ctx context.Context, dataType string) Result {
	mode := v.settings.Mode()
	res := Result{DataType: dataType, Mode: mode}

	expected, ok := ExpectedCount(mode, dataType)
	if !ok {
		res.Error = fmt.Sprintf("unknown data type %q", dataType)
		return res
	}
	res.ExpectedCount = expected

	actual, err := v.counts.CountRecords(ctx, dataType)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.ActualCount = actual

	// Demo mode serves baked-in data, so the source is trusted by
	// definition; in database mode a successful count query is the probe.
	res.SourceVerified = true
	res.CountVerified = actual == expected
	if mode == ModeDemo {
		res.IntegrityVerified = actual > 0 && actual == expected
	} else {
		res.IntegrityVerified = actual == expected
	}
	res.IsValid = res.SourceVerified && res.CountVerified && res.IntegrityVerified

	return res
}

// ValidateAll runs Validate for every known data type.
func (v *Validator) ValidateAll(ctx context.Context) []Result {
	types := DataTypes()
	out := make([]Result, 0, len(types))
	for _, dt := range types {
		out = append(out, v.Validate(ctx, dt))
	}
	return out
}
