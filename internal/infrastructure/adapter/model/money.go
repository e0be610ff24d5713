package model

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
)

// Money is an amount in cents stored in a numeric(10,2) column.
// It is written as a 2-decimal string so no float conversion happens on the way in.
type Money int64

// Cents returns the amount in cents
func (m Money) Cents() int64 {
	return int64(m)
}

// Value implements driver.Valuer
func (m Money) Value() (driver.Value, error) {
	return entity.AmountInCentsToString(int64(m)), nil
}

// Scan implements sql.Scanner. PostgreSQL returns numeric values as text;
// SQLite applies numeric affinity and returns INTEGER for whole amounts
// and REAL otherwise.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = 0
		return nil
	case int64:
		*m = Money(v * 100)
		return nil
	case float64:
		*m = Money(math.Round(v * 100))
		return nil
	case []byte:
		return m.scanString(string(v))
	case string:
		return m.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", src)
	}
}

func (m *Money) scanString(s string) error {
	cents, err := entity.ValidateAndConvertAmount(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Money: %w", s, err)
	}
	*m = Money(cents)
	return nil
}
