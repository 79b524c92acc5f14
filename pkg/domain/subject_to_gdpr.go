package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	dErrors "consentkit/pkg/domain-errors"
)

// SubjectToGDPR states whether a data subject falls under GDPR scope.
// Invariant: the value is one of SubjectToGDPRUnknown, SubjectToGDPRNo or
// SubjectToGDPRYes, and the numeric tags (-1/0/1) are stable on the wire.
//
// Usage: construct via ParseSubjectToGDPR or SubjectToGDPRFromInt at trust
// boundaries; direct conversion from an int bypasses validation.
type SubjectToGDPR int

const (
	// SubjectToGDPRUnknown means applicability has not been determined yet.
	SubjectToGDPRUnknown SubjectToGDPR = -1
	// SubjectToGDPRNo means the subject is determined not to be under GDPR scope.
	SubjectToGDPRNo SubjectToGDPR = 0
	// SubjectToGDPRYes means the subject is determined to be under GDPR scope.
	SubjectToGDPRYes SubjectToGDPR = 1
)

var subjectToGDPRNames = map[SubjectToGDPR]string{
	SubjectToGDPRUnknown: "unknown",
	SubjectToGDPRNo:      "no",
	SubjectToGDPRYes:     "yes",
}

// AllSubjectToGDPR returns every valid value in numeric order.
func AllSubjectToGDPR() []SubjectToGDPR {
	return []SubjectToGDPR{SubjectToGDPRUnknown, SubjectToGDPRNo, SubjectToGDPRYes}
}

// SubjectToGDPRFromInt decodes a numeric tag.
//
// Errors: returns CodeInvalidInput for any value other than -1, 0 or 1.
func SubjectToGDPRFromInt(n int) (SubjectToGDPR, error) {
	v := SubjectToGDPR(n)
	if !v.IsValid() {
		return SubjectToGDPRUnknown, dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("invalid subject to GDPR value: %d", n))
	}
	return v, nil
}

// ParseSubjectToGDPR decodes external text. Both the numeric tag ("-1", "0",
// "1") and the canonical name ("unknown", "no", "yes") are accepted; matching
// is exact.
//
// Errors: returns CodeInvalidInput when the value is empty or unrecognized.
func ParseSubjectToGDPR(s string) (SubjectToGDPR, error) {
	if s == "" {
		return SubjectToGDPRUnknown, dErrors.New(dErrors.CodeInvalidInput, "subject to GDPR cannot be empty")
	}
	for v, name := range subjectToGDPRNames {
		if s == name {
			return v, nil
		}
	}
	switch s {
	case "-1":
		return SubjectToGDPRUnknown, nil
	case "0":
		return SubjectToGDPRNo, nil
	case "1":
		return SubjectToGDPRYes, nil
	}
	return SubjectToGDPRUnknown, dErrors.New(dErrors.CodeInvalidInput,
		fmt.Sprintf("invalid subject to GDPR value: %q", s))
}

// IsValid checks if the value is one of the three supported states.
func (v SubjectToGDPR) IsValid() bool {
	_, ok := subjectToGDPRNames[v]
	return ok
}

// IsDetermined reports whether applicability has been decided either way.
func (v SubjectToGDPR) IsDetermined() bool {
	return v == SubjectToGDPRYes || v == SubjectToGDPRNo
}

// Int returns the numeric tag.
func (v SubjectToGDPR) Int() int {
	return int(v)
}

// String returns the canonical name of the value.
func (v SubjectToGDPR) String() string {
	if name, ok := subjectToGDPRNames[v]; ok {
		return name
	}
	return fmt.Sprintf("SubjectToGDPR(%d)", int(v))
}

// LogValue implements slog.LogValuer.
func (v SubjectToGDPR) LogValue() slog.Value {
	return slog.StringValue(v.String())
}

func (v SubjectToGDPR) validate() error {
	if !v.IsValid() {
		return dErrors.New(dErrors.CodeInvalidInput,
			fmt.Sprintf("invalid subject to GDPR value: %d", int(v)))
	}
	return nil
}

// MarshalJSON encodes the value as its bare numeric tag.
func (v SubjectToGDPR) MarshalJSON() ([]byte, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(v))), nil
}

// UnmarshalJSON accepts a JSON integer tag. null decodes to
// SubjectToGDPRUnknown.
func (v *SubjectToGDPR) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = SubjectToGDPRUnknown
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "subject to GDPR must be an integer")
	}
	decoded, err := SubjectToGDPRFromInt(n)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalText encodes the value as its decimal tag.
func (v SubjectToGDPR) MarshalText() ([]byte, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(int(v))), nil
}

// UnmarshalText accepts any form ParseSubjectToGDPR does.
func (v *SubjectToGDPR) UnmarshalText(text []byte) error {
	decoded, err := ParseSubjectToGDPR(string(text))
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Value implements the driver.Valuer interface for SubjectToGDPR.
func (v SubjectToGDPR) Value() (driver.Value, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	return int64(v), nil
}

// Scan implements the sql.Scanner interface for SubjectToGDPR.
// NULL scans to SubjectToGDPRUnknown.
func (v *SubjectToGDPR) Scan(value interface{}) error {
	switch src := value.(type) {
	case nil:
		*v = SubjectToGDPRUnknown
		return nil
	case int64:
		if src < -1 || src > 1 {
			return dErrors.New(dErrors.CodeInvalidInput,
				fmt.Sprintf("invalid subject to GDPR value: %d", src))
		}
		*v = SubjectToGDPR(src)
		return nil
	case []byte:
		return v.scanText(string(src))
	case string:
		return v.scanText(src)
	default:
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("cannot scan %T into SubjectToGDPR", value))
	}
}

func (v *SubjectToGDPR) scanText(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "subject to GDPR must be an integer")
	}
	decoded, err := SubjectToGDPRFromInt(n)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
