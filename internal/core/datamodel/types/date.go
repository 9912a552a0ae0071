package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateString holds a calendar date as its YYYY-MM-DD text form. Postgres
// DATE columns come back through database/sql as time.Time (or an RFC3339
// string, depending on the driver); scanning through this type keeps the
// plain date shape the API exposes.
type DateString string

func (d *DateString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = DateString(v.Format(time.DateOnly))
	case string:
		*d = DateString(normalizeDate(v))
	case []byte:
		*d = DateString(normalizeDate(string(v)))
	default:
		return fmt.Errorf("cannot scan %T into DateString", value)
	}
	return nil
}

func (d DateString) Value() (driver.Value, error) {
	return string(d), nil
}

func normalizeDate(s string) string {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(time.DateOnly)
	}
	return s
}
