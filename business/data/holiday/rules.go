package holiday

import (
	"github.com/rickar/cal/v2"
	"time"
)

// rule pairs a Category with the cal.Holiday that calculates its date
type rule struct {
	category Category
	holiday  *cal.Holiday
}

// danishRules contains every holiday rule in derivation order. Holidays returned by Service keep this order.
// Grundlovsdag, Juleaftensdag and Nytaarsaften are traditions rather than official holidays.
var danishRules = []rule{
	{Nytaarsdag, fixedDate(Nytaarsdag, time.January, 1, cal.ObservancePublic)},
	{Grundlovsdag, fixedDate(Grundlovsdag, time.June, 5, cal.ObservanceOther)},
	{Juleaftensdag, fixedDate(Juleaftensdag, time.December, 24, cal.ObservanceOther)},
	{FoersteJuledag, fixedDate(FoersteJuledag, time.December, 25, cal.ObservancePublic)},
	{AndenJuledag, fixedDate(AndenJuledag, time.December, 26, cal.ObservancePublic)},
	{Nytaarsaften, fixedDate(Nytaarsaften, time.December, 31, cal.ObservanceOther)},
	{SkaerTorsdag, easterOffset(SkaerTorsdag, -3)},
	{LangFredag, easterOffset(LangFredag, -2)},
	{PaaskeSoendag, easterOffset(PaaskeSoendag, 0)},
	{AndenPaaskedag, easterOffset(AndenPaaskedag, 1)},
	{StoreBededag, easterOffset(StoreBededag, 26)},
	{KristiHimmelfartsdag, easterOffset(KristiHimmelfartsdag, 39)},
	{PinseSoendag, easterOffset(PinseSoendag, 49)},
	{AndenPinsedag, easterOffset(AndenPinsedag, 50)},
}

// fixedDate builds a cal.Holiday on the same month and day every year
func fixedDate(category Category, month time.Month, day int, observance cal.ObservanceType) *cal.Holiday {
	return &cal.Holiday{
		Name:  category.String(),
		Type:  observance,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

// easterOffset builds a cal.Holiday falling offset days from Easter Sunday
func easterOffset(category Category, offset int) *cal.Holiday {
	return &cal.Holiday{
		Name:   category.String(),
		Type:   cal.ObservancePublic,
		Offset: offset,
		Func:   calcEasterOffset,
	}
}

// calcEasterOffset is a cal.HolidayFn adding h.Offset days to FindEasterSunday
func calcEasterOffset(h *cal.Holiday, year int) time.Time {
	return FindEasterSunday(year).AddDate(0, 0, h.Offset)
}

// deriveYear calculates every holiday in year from danishRules
func deriveYear(year int) []Holiday {
	holidays := make([]Holiday, 0, len(danishRules))
	for _, r := range danishRules {
		actual, _ := r.holiday.Calc(year)
		holidays = append(holidays, makeHoliday(actual, r.category))
	}
	return holidays
}
