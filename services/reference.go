package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FinancialYear returns the Australian financial year (July to June) that t
// falls in. Jun 2026 → "25-26", Jul 2026 → "26-27".
func FinancialYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.July {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// NewPriceListReference returns a document reference such as
// PL-25-26-3F9A12BC: the financial year of now and a random suffix.
func NewPriceListReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("PL-%s-%s", FinancialYear(now), suffix)
}
