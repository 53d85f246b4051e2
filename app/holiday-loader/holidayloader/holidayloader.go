// Package holidayloader records derived holidays in the database
package holidayloader

import (
	"fmt"
	"github.com/OpenTransitTools/helligdage/business/data/holiday"
	"github.com/OpenTransitTools/helligdage/foundation/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	logger "log"
	"time"
)

// loadBatch holds every holiday derived for a range of years, ready to be recorded
type loadBatch struct {
	loadId   uuid.UUID
	fromYear int
	toYear   int
	holidays []holiday.StoredHoliday
}

// buildLoadBatch derives all holidays from fromYear to toYear inclusive
func buildLoadBatch(service *holiday.Service, fromYear int, toYear int, now time.Time) (*loadBatch, error) {
	if toYear < fromYear {
		return nil, fmt.Errorf("toYear %d is before fromYear %d", toYear, fromYear)
	}
	batch := loadBatch{
		loadId:   uuid.New(),
		fromYear: fromYear,
		toYear:   toYear,
		holidays: make([]holiday.StoredHoliday, 0, (toYear-fromYear+1)*len(holiday.All.Categories())),
	}
	for year := fromYear; year <= toYear; year++ {
		batch.holidays = append(batch.holidays,
			holiday.MakeStoredHolidays(batch.loadId, now, service.GetHolidaysForYear(year))...)
	}
	return &batch, nil
}

// LoadHolidays records every holiday from fromYear to toYear in a single transaction
func LoadHolidays(log *logger.Logger, db *sqlx.DB, fromYear int, toYear int) error {
	batch, err := buildLoadBatch(holiday.NewService(log), fromYear, toYear, time.Now())
	if err != nil {
		return err
	}
	if err = holiday.CreateSchema(db); err != nil {
		return fmt.Errorf("creating holiday table: %w", err)
	}
	log.Printf("recording %d holidays for years %d to %d with load id %s",
		len(batch.holidays), batch.fromYear, batch.toYear, batch.loadId)
	err = database.WithTransaction(db, func(tx *sqlx.Tx) error {
		return holiday.RecordHolidays(tx, batch.holidays)
	})
	if err != nil {
		return fmt.Errorf("recording holidays: %w", err)
	}
	log.Printf("finished load %s", batch.loadId)
	return nil
}

// ListHolidays logs every holiday recorded for year
func ListHolidays(log *logger.Logger, db *sqlx.DB, year int) error {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	stored, err := holiday.GetStoredHolidays(db, start, end)
	if err != nil {
		return fmt.Errorf("retrieving holidays for %d: %w", year, err)
	}
	if len(stored) == 0 {
		log.Printf("no holidays recorded for %d", year)
		return nil
	}
	for _, s := range stored {
		log.Printf("%s load:%s", s.Holiday(), s.LoadId)
	}
	return nil
}
