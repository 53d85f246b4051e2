package holiday

import (
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/OpenTransitTools/helligdage/foundation/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/matryer/is"
	"regexp"
	"testing"
	"time"
)

const (
	deleteHolidayQuery = "delete from holiday where holiday_date = $1 and category = $2"
	insertHolidayQuery = "insert into holiday ( load_id, holiday_date, category, name, created_at) " +
		"values ($1, $2, $3, $4, $5)"
	selectHolidayQuery = "select load_id, holiday_date, category, name, created_at from holiday " +
		"where holiday_date between $1 and $2 order by holiday_date, category"
)

// newMockDB returns a sqlx.DB backed by sqlmock, using the pgx bind type
func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unable to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func TestMakeStoredHolidays(t *testing.T) {
	is := is.New(t)
	loadId := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	holidays := NewService(nil).GetHolidaysForYear(2025, PaaskeSoendag|Grundlovsdag)

	stored := MakeStoredHolidays(loadId, createdAt, holidays)

	is.Equal(len(stored), 2)
	is.Equal(stored[0].LoadId, loadId.String())
	is.Equal(stored[0].Category, int64(Grundlovsdag))
	is.Equal(stored[1].HolidayDate, utcDate(2025, 4, 20))
	is.Equal(stored[1].CreatedAt, createdAt)
	for i, s := range stored {
		is.Equal(s.Holiday(), holidays[i]) // stored holiday converts back
	}
}

func TestRecordHolidays(t *testing.T) {
	is := is.New(t)
	db, mock := newMockDB(t)
	loadId := uuid.New()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	stored := MakeStoredHolidays(loadId, createdAt, NewService(nil).GetHolidaysForYear(2025, Nytaarsdag|FoersteJuledag))

	mock.ExpectBegin()
	for _, s := range stored {
		mock.ExpectExec(regexp.QuoteMeta(deleteHolidayQuery)).
			WithArgs(s.HolidayDate, s.Category).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(insertHolidayQuery)).
			WithArgs(loadId.String(), s.HolidayDate, s.Category, s.Name, createdAt).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	is.NoErr(database.WithTransaction(db, func(tx *sqlx.Tx) error {
		return RecordHolidays(tx, stored)
	}))
	is.NoErr(mock.ExpectationsWereMet()) // each holiday deleted then inserted, then committed
}

func TestRecordHolidays_insertFails(t *testing.T) {
	is := is.New(t)
	db, mock := newMockDB(t)
	stored := MakeStoredHolidays(uuid.New(), time.Now(), NewService(nil).GetHolidaysForYear(2025, Grundlovsdag))
	insertErr := errors.New("unique violation")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteHolidayQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertHolidayQuery)).WillReturnError(insertErr)
	mock.ExpectRollback()

	err := database.WithTransaction(db, func(tx *sqlx.Tx) error {
		return RecordHolidays(tx, stored)
	})
	is.True(errors.Is(err, insertErr))
	is.NoErr(mock.ExpectationsWereMet()) // rolled back, never committed
}

func TestGetStoredHolidays(t *testing.T) {
	is := is.New(t)
	db, mock := newMockDB(t)
	loadId := uuid.New().String()
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"load_id", "holiday_date", "category", "name", "created_at"}).
		AddRow(loadId, utcDate(2025, 4, 18), int64(LangFredag), "LangFredag", createdAt).
		AddRow(loadId, utcDate(2025, 4, 20), int64(PaaskeSoendag), "PaaskeSoendag", createdAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectHolidayQuery)).
		WithArgs(utcDate(2025, 4, 1), utcDate(2025, 4, 30)).
		WillReturnRows(rows)

	stored, err := GetStoredHolidays(db, time.Date(2025, 4, 1, 13, 0, 0, 0, time.UTC), utcDate(2025, 4, 30))
	is.NoErr(err)
	is.NoErr(mock.ExpectationsWereMet())
	is.Equal(len(stored), 2)
	is.Equal(stored[0].LoadId, loadId)
	is.Equal(stored[0].Holiday(), Holiday{Date: utcDate(2025, 4, 18), Category: LangFredag, Name: "LangFredag"})
	is.Equal(stored[1].Holiday().Category, PaaskeSoendag)
}

func TestGetStoredHolidays_queryFails(t *testing.T) {
	is := is.New(t)
	db, mock := newMockDB(t)
	queryErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(selectHolidayQuery)).WillReturnError(queryErr)

	_, err := GetStoredHolidays(db, utcDate(2025, 1, 1), utcDate(2025, 12, 31))
	is.True(errors.Is(err, queryErr))
	is.NoErr(mock.ExpectationsWereMet())
}
