package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// currencySymbols are stripped from price strings before parsing.
const currencySymbols = "$€£¥"

// fallbackDateLayouts are tried, in order, for inputs that are neither
// slash-formatted nor already canonical. Month-first is the assumed
// convention for ambiguous dates.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01-02-2006",
	"20060102",
}

// NormalizeDate converts a raw date string into a calendar date.
// It never returns an error: absent input yields (nil, true) and
// unparseable input yields (nil, false) so the caller can note the
// absorbed failure. "ASAP" (any case) means today. Slash-formatted
// input is read as month/day/year; canonical year-month-day input is
// passed through.
func NormalizeDate(raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}

	if strings.EqualFold(raw, "ASAP") {
		return datePtr(time.Now()), true
	}

	if strings.Contains(raw, "/") {
		for _, layout := range []string{"1/2/2006", "1/2/06"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return datePtr(t), true
			}
		}
		return nil, false
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return datePtr(t), true
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return datePtr(t), true
		}
	}

	return nil, false
}

// NormalizationNote records one value-level input that was absorbed
// during normalization instead of failing the request. Notes carry the
// field name and the raw value so the degradation can be logged.
type NormalizationNote struct {
	Field string
	Raw   string
}

// NormalizeQuantity parses a quantity string, stripping thousands
// separators. Absent or unparseable input yields zero.
func NormalizeQuantity(raw string) decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return decimal.Zero
	}
	qty, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return qty
}

// NormalizeUnitPrice parses a price string, stripping currency symbols
// and thousands separators first. Absent or unparseable input yields
// zero.
func NormalizeUnitPrice(raw string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(currencySymbols, r) || r == ',' {
			return -1
		}
		return r
	}, raw)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// NormalizeUnit returns the unit of measure, falling back to the size
// field and finally to "EACH" when both are absent.
func NormalizeUnit(raw, fallbackSize string) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return raw
	}
	if fallbackSize = strings.TrimSpace(fallbackSize); fallbackSize != "" {
		return fallbackSize
	}
	return "EACH"
}

// NormalizeWeight parses an optional weight value; absent or
// unparseable input yields nil rather than zero so that "no weight" is
// distinguishable downstream.
func NormalizeWeight(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if raw == "" {
		return nil
	}
	w, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &w
}

// NormalizeConversionRate parses a currency conversion rate, defaulting
// to 1 when absent or unparseable.
func NormalizeConversionRate(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NewFromInt(1)
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NewFromInt(1)
	}
	return rate
}

// datePtr truncates a time to its calendar date in UTC
func datePtr(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
