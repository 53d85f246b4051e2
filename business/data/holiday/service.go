package holiday

import (
	"github.com/rickar/cal/v2"
	logger "log"
	"sync"
	"time"
)

// Service answers holiday queries, deriving and caching the holidays of each year on first use.
// Every query takes optional category masks: no mask means All, several masks are combined with OR.
// Service is safe for concurrent use.
type Service struct {
	log   *logger.Logger
	years *yearCache

	calendarsMu sync.Mutex
	calendars   map[Category]*cal.BusinessCalendar
}

// NewService creates a Service. log may be nil
func NewService(log *logger.Logger) *Service {
	return &Service{
		log:       log,
		years:     makeYearCache(),
		calendars: make(map[Category]*cal.BusinessCalendar),
	}
}

// GetHolidaysForYear returns the holidays in year whose category is contained in the mask, in derivation order
func (s *Service) GetHolidaysForYear(year int, types ...Category) []Holiday {
	mask := combineMasks(types)
	holidays := s.years.getOrCompute(year, s.derive)
	results := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		if h.Category.Matches(mask) {
			results = append(results, h)
		}
	}
	return results
}

// GetHolidaysForDate returns the holidays on the calendar date of date whose category is contained in the mask.
// Several holidays may fall on the same date.
func (s *Service) GetHolidaysForDate(date time.Time, types ...Category) []Holiday {
	results := make([]Holiday, 0)
	for _, h := range s.GetHolidaysForYear(dateOf(date).Year(), types...) {
		if h.OnDate(date) {
			results = append(results, h)
		}
	}
	return results
}

// IsHoliday reports whether any holiday contained in the mask falls on the calendar date of date
func (s *Service) IsHoliday(date time.Time, types ...Category) bool {
	return len(s.GetHolidaysForDate(date, types...)) > 0
}

// CachedYears returns the number of years derived so far
func (s *Service) CachedYears() int {
	return s.years.size()
}

// derive calculates the holidays of year, used by the year cache
func (s *Service) derive(year int) []Holiday {
	if s.log != nil {
		s.log.Printf("deriving holidays for year %d", year)
	}
	return deriveYear(year)
}

// businessCalendar returns a cal.BusinessCalendar with Monday to Friday workdays and the holidays contained in
// mask as days off. Holidays are looked up through the year cache. Calendars are built once per mask and shared,
// so they must not be modified.
func (s *Service) businessCalendar(mask Category) *cal.BusinessCalendar {
	s.calendarsMu.Lock()
	defer s.calendarsMu.Unlock()
	if calendar, present := s.calendars[mask]; present {
		return calendar
	}
	calendar := cal.NewBusinessCalendar()
	calendar.WorkdayFunc = func(date time.Time) bool {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday && !s.IsHoliday(date, mask)
	}
	s.calendars[mask] = calendar
	return calendar
}

// IsWorkday reports whether date is a weekday and not a holiday contained in the mask
func (s *Service) IsWorkday(date time.Time, types ...Category) bool {
	return s.businessCalendar(combineMasks(types)).IsWorkday(dateOf(date))
}

// WorkdaysInRange counts the workdays from start to end, both inclusive
func (s *Service) WorkdaysInRange(start, end time.Time, types ...Category) int {
	return s.businessCalendar(combineMasks(types)).WorkdaysInRange(dateOf(start), dateOf(end))
}

// AddWorkdays moves date forward (or backward for negative n) by n workdays
func (s *Service) AddWorkdays(date time.Time, n int, types ...Category) time.Time {
	return dateOf(s.businessCalendar(combineMasks(types)).WorkdaysFrom(dateOf(date), n))
}
