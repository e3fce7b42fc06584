package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point amount stored with two decimal places.
type Money struct {
	value decimal.Decimal
}

// NewMoneyFromString parses an amount like "25000.00".
func NewMoneyFromString(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Money{}, fmt.Errorf("money value is empty")
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q: %w", s, err)
	}
	return Money{value: value.Round(2)}, nil
}

// NewMoneyFromDecimal builds Money from a decimal value.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{value: d.Round(2)}
}

// NewMoneyFromInt builds Money from whole currency units.
func NewMoneyFromInt(n int64) Money {
	return Money{value: decimal.NewFromInt(n)}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value).Round(2)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value).Round(2)}
}

// MulInt returns m multiplied by an integer quantity.
func (m Money) MulInt(n int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(n)).Round(2)}
}

// Cmp compares two amounts, returning -1, 0 or 1.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// String renders the amount with exactly two decimal places.
func (m Money) String() string {
	return m.value.StringFixed(2)
}

// MarshalJSON renders the amount as a JSON string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both string and number forms.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		m.value = decimal.Zero
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := NewMoneyFromString(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer. Amounts are stored as strings so
// sqlite and postgres round-trip without float drift.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(src interface{}) error {
	if src == nil {
		m.value = decimal.Zero
		return nil
	}
	switch v := src.(type) {
	case string:
		parsed, err := NewMoneyFromString(v)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case []byte:
		parsed, err := NewMoneyFromString(string(v))
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	case int64:
		m.value = decimal.NewFromInt(v)
		return nil
	case float64:
		m.value = decimal.NewFromFloat(v).Round(2)
		return nil
	default:
		return fmt.Errorf("unsupported money source type %T", src)
	}
}
