// Package prefix renders and decodes the UTC timestamp prefixes used to name
// migration files so that lexical order matches creation order.
package prefix

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	// Layout is the reference layout for a prefix (%Y%m%d%H%M%S).
	Layout = "20060102150405"
	// Length is the number of digits in every prefix.
	Length = len(Layout)
)

// ErrInvalidPrefix reports input that is not a 14-digit, calendar-valid prefix.
var ErrInvalidPrefix = errors.New("prefix: invalid migration prefix")

// Clock returns the current instant.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Generator renders prefixes from its clock. The zero value uses SystemClock.
type Generator struct {
	Now Clock
}

// New returns a Generator reading from clock. A nil clock selects SystemClock.
func New(clock Clock) Generator {
	return Generator{Now: clock}
}

// Generate renders the prefix for the generator's current instant.
func (g Generator) Generate() string {
	now := g.Now
	if now == nil {
		now = SystemClock
	}
	return Format(now())
}

// Generate renders the prefix for the current wall-clock instant in UTC.
func Generate() string {
	return Generator{}.Generate()
}

// Format renders t as a prefix. The instant is converted to UTC first and
// sub-second precision is dropped.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Parse decodes a prefix into the UTC instant it encodes.
func Parse(s string) (time.Time, error) {
	if len(s) != Length {
		return time.Time{}, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidPrefix, s, len(s), Length)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, fmt.Errorf("%w: %q contains non-digit %q at offset %d", ErrInvalidPrefix, s, s[i], i)
		}
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidPrefix, s, err)
	}
	return t, nil
}

// Valid reports whether s is a well-formed prefix.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromFilename extracts the prefix from a migration filename such as
// 20241003195340_users.sql. The candidate is the portion of the base name that
// precedes the first "_" or "-" separator, falling back to the stem when none
// are present.
func FromFilename(name string) (string, error) {
	if name == "" {
		return "", errors.New("prefix: empty filename")
	}
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		return "", fmt.Errorf("prefix: could not derive prefix from %q", name)
	}

	candidate := base
	if idx := strings.IndexAny(base, "_-"); idx > 0 {
		candidate = base[:idx]
	}
	if _, err := Parse(candidate); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return candidate, nil
}
