package holidaysvc

import (
	"fmt"
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"time"
)

//YearResponse lists the holidays of a year
type YearResponse struct {
	Year     int               `json:"year"`
	Types    string            `json:"types"`
	Holidays []holiday.Holiday `json:"holidays"`
}

//DateResponse lists the holidays on a date
type DateResponse struct {
	Date      string            `json:"date"`
	Types     string            `json:"types"`
	IsHoliday bool              `json:"is_holiday"`
	Holidays  []holiday.Holiday `json:"holidays"`
}

//WorkdaysResponse holds the number of workdays from Start to End inclusive
type WorkdaysResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Types    string `json:"types"`
	Workdays int    `json:"workdays"`
}

//ErrorResponse is returned for requests that could not be answered
type ErrorResponse struct {
	Error string `json:"error"`
}

//makeYearResponse answers a holidays by year request
func makeYearResponse(service *holiday.Service, year int, mask holiday.Category) *YearResponse {
	return &YearResponse{
		Year:     year,
		Types:    mask.String(),
		Holidays: service.GetHolidaysForYear(year, mask),
	}
}

//makeDateResponse answers a holidays by date request
func makeDateResponse(service *holiday.Service, date time.Time, mask holiday.Category) *DateResponse {
	holidays := service.GetHolidaysForDate(date, mask)
	return &DateResponse{
		Date:      holiday.FormatDate(date),
		Types:     mask.String(),
		IsHoliday: len(holidays) > 0,
		Holidays:  holidays,
	}
}

//makeWorkdaysResponse answers a workday count request
func makeWorkdaysResponse(service *holiday.Service,
	start time.Time,
	end time.Time,
	mask holiday.Category) (*WorkdaysResponse, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end %s is before start %s", holiday.FormatDate(end), holiday.FormatDate(start))
	}
	return &WorkdaysResponse{
		Start:    holiday.FormatDate(start),
		End:      holiday.FormatDate(end),
		Types:    mask.String(),
		Workdays: service.WorkdaysInRange(start, end, mask),
	}, nil
}

//makeDate builds a date from path components, rejecting dates that time.Date would normalize
func makeDate(year int, month int, day int) (time.Time, error) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return date, nil
}
