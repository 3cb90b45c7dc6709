package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablequeue/waitlist/internal/model"
)

var entryRowColumns = []string{"id", "cust_LName", "cust_FName", "phone_num", "party_size", "position_inLine", "checkIn_date", "checkIn_time", "is_deleted"}

func newMockRepo(t *testing.T) (*WaitlistRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewWaitlistRepo(db, time.Second), mock
}

func jones() model.WaitlistFields {
	return model.WaitlistFields{
		LastName:       "Jones",
		FirstName:      "Bob",
		Phone:          "1800101010",
		PartySize:      4,
		PositionInLine: 3,
		CheckInDate:    "2021-10-27",
		CheckInTime:    "14:15:20",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	f := jones()
	mock.ExpectExec(qInsert).
		WithArgs(f.LastName, f.FirstName, f.Phone, f.PartySize, f.PositionInLine, f.CheckInDate, f.CheckInTime, f.IsDeleted).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := repo.Create(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
}

func TestCreateStoreError(t *testing.T) {
	repo, mock := newMockRepo(t)
	driverErr := &mysql.MySQLError{Number: 1048, Message: "Column 'cust_LName' cannot be null"}
	mock.ExpectExec(qInsert).WillReturnError(driverErr)

	_, err := repo.Create(context.Background(), jones())
	require.Error(t, err)
	assert.True(t, IsStoreError(err))
	assert.Equal(t, driverErr.Error(), err.Error())

	var me *mysql.MySQLError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, uint16(1048), me.Number)
}

func TestListActive(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(qListActive).WillReturnRows(
		sqlmock.NewRows(entryRowColumns).
			AddRow(1, "Jones", "Bob", "1800101010", 4, 3, "2021-10-27", "14:15:20", false).
			AddRow(2, "McKenzie", "Matthew", "6504506693", 2, 2, "2021-10-25", "11:22:20", false),
	)

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.WaitlistEntry{
		ID: 1, LastName: "Jones", FirstName: "Bob", Phone: "1800101010",
		PartySize: 4, PositionInLine: 3, CheckInDate: "2021-10-27", CheckInTime: "14:15:20",
	}, got[0])
	assert.Equal(t, "McKenzie", got[1].LastName)
}

func TestListActiveEmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(qListActive).WillReturnRows(sqlmock.NewRows(entryRowColumns))

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByLastName(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(qListByLName).WithArgs("Jones").WillReturnRows(
		sqlmock.NewRows(entryRowColumns).
			AddRow(7, "Jones", "Ann", "1", 2, 1, "2021-10-27", "14:00:00", false).
			AddRow(3, "Jones", "Bob", "2", 4, 3, "2021-10-27", "14:15:20", false),
	)

	got, err := repo.ListByLastName(context.Background(), "Jones")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].PositionInLine)
	assert.Equal(t, 3, got[1].PositionInLine)
}

func TestListScanError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(qListActive).WillReturnRows(
		sqlmock.NewRows(entryRowColumns).
			AddRow("not-a-number", "Jones", "Bob", "1", 4, 3, "2021-10-27", "14:15:20", false),
	)

	_, err := repo.ListActive(context.Background())
	assert.True(t, IsStoreError(err))
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(qGetByID).WithArgs(uint64(9)).WillReturnRows(sqlmock.NewRows(entryRowColumns))

	got, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestZeroIDIssuesNoSQL(t *testing.T) {
	repo, _ := newMockRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, repo.Update(ctx, 0, jones()), ErrInvalidID)
	assert.ErrorIs(t, repo.SoftDelete(ctx, 0), ErrInvalidID)
}

func TestUpdateZeroRowsIsSuccess(t *testing.T) {
	repo, mock := newMockRepo(t)
	f := jones()
	f.IsDeleted = true
	mock.ExpectExec(qUpdate).
		WithArgs(f.LastName, f.FirstName, f.Phone, f.PartySize, f.PositionInLine, f.CheckInDate, f.CheckInTime, true, uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Update(context.Background(), 99, f))
}

func TestSoftDelete(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(qSoftDelete).WithArgs(uint64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SoftDelete(context.Background(), 5))
}

func TestSoftDeleteStoreError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(qSoftDelete).WithArgs(uint64(5)).WillReturnError(sql.ErrConnDone)

	err := repo.SoftDelete(context.Background(), 5)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.True(t, IsStoreError(err))
}
