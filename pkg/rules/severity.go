package rules

import (
	"strings"

	"github.com/cockroachdb/errors"

	errUtils "github.com/mdlint/mdlint/errors"
)

// Severity overrides how a rule's findings are reported.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity accepts error, warning or info in any case.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(strings.ToLower(strings.TrimSpace(s))); sev {
	case SeverityError, SeverityWarning, SeverityInfo:
		return sev, nil
	}
	return "", errors.Wrapf(errUtils.ErrInvalidSeverity, "%q (expected error, warning or info)", s)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
