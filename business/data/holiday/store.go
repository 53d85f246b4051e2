package holiday

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"time"
)

// schema creates the holiday table used by RecordHolidays and GetStoredHolidays
const schema = "create table if not exists holiday ( " +
	"load_id uuid not null, " +
	"holiday_date date not null, " +
	"category integer not null, " +
	"name text not null, " +
	"created_at timestamp not null, " +
	"primary key (holiday_date, category))"

// CreateSchema creates the holiday table if it does not exist
func CreateSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}

// StoredHoliday is a Holiday as recorded in the holiday table
type StoredHoliday struct {
	LoadId      string    `db:"load_id"`
	HolidayDate time.Time `db:"holiday_date"`
	Category    int64     `db:"category"`
	Name        string    `db:"name"`
	CreatedAt   time.Time `db:"created_at"`
}

// Holiday converts StoredHoliday back to Holiday
func (s StoredHoliday) Holiday() Holiday {
	return Holiday{
		Date:     dateOf(s.HolidayDate),
		Category: Category(s.Category),
		Name:     s.Name,
	}
}

// MakeStoredHolidays prepares holidays for recording, all sharing loadId and createdAt
func MakeStoredHolidays(loadId uuid.UUID, createdAt time.Time, holidays []Holiday) []StoredHoliday {
	results := make([]StoredHoliday, 0, len(holidays))
	for _, h := range holidays {
		results = append(results, StoredHoliday{
			LoadId:      loadId.String(),
			HolidayDate: h.Date,
			Category:    int64(h.Category),
			Name:        h.Name,
			CreatedAt:   createdAt,
		})
	}
	return results
}

// RecordHolidays inserts storedHolidays in tx, replacing earlier records of the same date and category
func RecordHolidays(tx *sqlx.Tx, storedHolidays []StoredHoliday) error {
	deleteStatement := tx.Rebind("delete from holiday where holiday_date = ? and category = ?")
	insertStatement := tx.Rebind("insert into holiday ( " +
		"load_id, " +
		"holiday_date, " +
		"category, " +
		"name, " +
		"created_at) " +
		"values (" +
		":load_id, " +
		":holiday_date, " +
		":category, " +
		":name, " +
		":created_at)")
	for _, s := range storedHolidays {
		if _, err := tx.Exec(deleteStatement, s.HolidayDate, s.Category); err != nil {
			return err
		}
		if _, err := tx.NamedExec(insertStatement, s); err != nil {
			return err
		}
	}
	return nil
}

// GetStoredHolidays retrieves recorded holidays from start to end inclusive, ordered by date
func GetStoredHolidays(db *sqlx.DB, start time.Time, end time.Time) ([]StoredHoliday, error) {
	query := db.Rebind("select load_id, holiday_date, category, name, created_at from holiday " +
		"where holiday_date between ? and ? order by holiday_date, category")
	var results []StoredHoliday
	err := db.Select(&results, query, dateOf(start), dateOf(end))
	return results, err
}
