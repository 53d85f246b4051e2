package holiday

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the wire format of holiday dates
const dateLayout = "2006-01-02"

// Holiday is a single occurrence of a holiday Category on a calendar date
type Holiday struct {
	// Date is midnight UTC of the calendar date the holiday falls on
	Date     time.Time
	Category Category
	Name     string
}

// makeHoliday creates a Holiday named after its category
func makeHoliday(date time.Time, category Category) Holiday {
	return Holiday{
		Date:     dateOf(date),
		Category: category,
		Name:     category.String(),
	}
}

// String formats the holiday as "<name> (dd/mm-yyyy)"
func (h Holiday) String() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.Date.Format("02/01-2006"))
}

// OnDate reports whether the holiday falls on the calendar date of t
func (h Holiday) OnDate(t time.Time) bool {
	return h.Date.Equal(dateOf(t))
}

type jsonHoliday struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Mask     uint32 `json:"mask"`
	Name     string `json:"name"`
}

// MarshalJSON writes the date as YYYY-MM-DD along with category name and bit value
func (h Holiday) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonHoliday{
		Date:     h.Date.Format(dateLayout),
		Category: h.Category.String(),
		Mask:     uint32(h.Category),
		Name:     h.Name,
	})
}

// UnmarshalJSON reads the form produced by MarshalJSON
func (h *Holiday) UnmarshalJSON(data []byte) error {
	var j jsonHoliday
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	date, err := ParseDate(j.Date)
	if err != nil {
		return err
	}
	h.Date = date
	h.Category = Category(j.Mask)
	h.Name = j.Name
	return nil
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return date, nil
}

// FormatDate formats the calendar date of t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return dateOf(t).Format(dateLayout)
}

// dateOf drops the time of day from t, keeping the calendar date as seen in t's own location
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
