// Package domain models the remedies tracked by the HomeoInvent inventory.
package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for expiry dates.
const DateLayout = "2006-01-02"

// Medicine is one remedy kept in the household inventory.
type Medicine struct {
	ID        string
	Name      string
	Potency   Potency
	Form      Form
	Quantity  int
	Unit      string
	Location  string
	Notes     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Label renders the name and potency, e.g. "Arnica montana 30C".
func (m Medicine) Label() string {
	if m.Potency.IsZero() {
		return m.Name
	}
	return m.Name + " " + m.Potency.String()
}

// HasExpiry reports whether an expiry date is recorded.
func (m Medicine) HasExpiry() bool {
	return !m.ExpiresAt.IsZero()
}

// IsLowStock reports whether the quantity is at or below threshold.
func (m Medicine) IsLowStock(threshold int) bool {
	return m.Quantity <= threshold
}

// IsExpired reports whether the expiry date lies before now's calendar day.
func (m Medicine) IsExpired(now time.Time) bool {
	if !m.HasExpiry() {
		return false
	}
	return m.ExpiresAt.Before(startOfDay(now))
}

// ExpiresWithin reports whether an unexpired remedy expires within window of now.
func (m Medicine) ExpiresWithin(now time.Time, window time.Duration) bool {
	if !m.HasExpiry() || m.IsExpired(now) {
		return false
	}
	return !m.ExpiresAt.After(now.Add(window))
}

// DedupKey identifies remedies that would be duplicates of each other:
// the same name, potency and form.
func (m Medicine) DedupKey() string {
	return strings.ToLower(strings.Join(strings.Fields(m.Name), " ")) + "|" + m.Potency.String() + "|" + string(m.Form)
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
