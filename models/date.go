package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire and storage format of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// the "YYYY-MM-DD" form both in JSON and in the database.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value, err)
	}

	*d = Date{parsed}
	return nil
}

// Value implements [driver.Valuer] so a Date can be passed directly as a
// query argument.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements [sql.Scanner]. Postgres returns DATE columns as time.Time;
// SQLite stores them as text.
func (d *Date) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{value}
		return nil
	case string:
		// SQLite stores bound time.Time values with a time-of-day suffix;
		// only the calendar date part matters here.
		if len(value) > len(dateLayout) {
			value = value[:len(dateLayout)]
		}
		parsed, err := time.Parse(dateLayout, value)
		if err != nil {
			return fmt.Errorf("cannot scan %q into Date: %w", value, err)
		}
		*d = Date{parsed}
		return nil
	case []byte:
		return d.Scan(string(value))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
