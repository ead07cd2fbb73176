package entity

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// UTCTime is a timestamp column that always carries the UTC location,
// no matter which driver or session timezone produced the value.
type UTCTime time.Time

func NewUTCTime(t time.Time) UTCTime {
	return UTCTime(t.UTC())
}

func NowUTC() UTCTime {
	return UTCTime(time.Now().UTC())
}

func (t UTCTime) Time() time.Time {
	return time.Time(t)
}

func (t UTCTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t UTCTime) Equal(u UTCTime) bool {
	return time.Time(t).Equal(time.Time(u))
}

// Layouts emitted by drivers that hand timestamps back as text.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
}

func (t *UTCTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = UTCTime{}
		return nil
	case time.Time:
		*t = UTCTime(v.UTC())
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan invalid data type %T", value)
	}
}

func (t *UTCTime) scanString(s string) error {
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			*t = UTCTime(parsed.UTC())
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as timestamp", s)
}

func (t UTCTime) Value() (driver.Value, error) {
	return time.Time(t).UTC(), nil
}

func (t UTCTime) MarshalJSON() ([]byte, error) {
	return time.Time(t).UTC().MarshalJSON()
}

func (t *UTCTime) UnmarshalJSON(data []byte) error {
	var parsed time.Time
	if err := parsed.UnmarshalJSON(data); err != nil {
		return err
	}

	*t = UTCTime(parsed.UTC())

	return nil
}

func (UTCTime) GormDataType() string {
	return "time"
}

func (UTCTime) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "DATETIME(6)"
	case "postgres":
		return "TIMESTAMPTZ"
	default:
		return "DATETIME"
	}
}
