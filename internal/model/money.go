package model

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount stored as integer hundredths, so increments
// in SQL stay exact on every driver. JSON encoding is the decimal's.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// Cents returns the amount in hundredths, failing on finer precision.
func (m Money) Cents() (int64, error) {
	shifted := m.Shift(2)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than two decimal places", m.String())
	}
	return shifted.IntPart(), nil
}

func (m Money) Value() (driver.Value, error) {
	return m.Cents()
}

func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		m.Decimal = decimal.Zero
	case int64:
		m.Decimal = decimal.New(v, -2)
	case float64:
		m.Decimal = decimal.NewFromFloat(v).Shift(-2)
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
	return nil
}

func (m *Money) scanString(s string) error {
	if cents, err := strconv.ParseInt(s, 10, 64); err == nil {
		m.Decimal = decimal.New(cents, -2)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	m.Decimal = d.Shift(-2)
	return nil
}
