package services

import (
	"strings"
	"time"

	"github.com/unifiedacademics/uap-backend/internal/pkg/helpers"
)

// parseOptionalDate turns a loosely formatted date string into a stored
// optional date; unparseable input degrades to absent, not an error.
func parseOptionalDate(s string) *time.Time {
	return helpers.CoerceDate(s)
}

// strValue unwraps an optional field for duplicate probes.
func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// optional turns a form value into a stored optional field; empty strings are
// persisted as absent.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// joinFields renders clashing field labels for skip reasons, e.g.
// "email, phone".
func joinFields(fields []string) string {
	return strings.Join(fields, ", ")
}
