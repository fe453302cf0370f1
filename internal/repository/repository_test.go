package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return &dbpg.DB{Master: db}, mock
}

var bookingRowColumns = []string{
	"id", "customer_name", "customer_email", "customer_phone", "service_id",
	"service_name", "booking_date", "booking_time", "status", "created_at",
}

const (
	updateStatusQuery = `UPDATE bookings\s+SET status = \$2\s+WHERE id = \$1 AND status = ANY\(\$3\)`
	statusCheckQuery  = `SELECT status FROM bookings WHERE id = \$1`
)

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(updateStatusQuery).
		WithArgs(int64(7), "confirmed", `{"pending","confirmed"}`).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			int64(7), "Jane Doe", "jane@example.com", "555-0100", int64(1),
			"Haircut", date, "10:00", "confirmed", date,
		))

	b, err := repo.UpdateStatus(context.Background(), 7, domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	require.NotNil(t, b.ServiceID)
	assert.Equal(t, int64(1), *b.ServiceID)
}

func TestBookingRepository_UpdateStatus_ForbiddenTransition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(updateStatusQuery).
		WithArgs(int64(7), "confirmed", `{"pending","confirmed"}`).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))
	mock.ExpectQuery(statusCheckQuery).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	b, err := repo.UpdateStatus(context.Background(), 7, domain.BookingStatusConfirmed)

	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "cancelled -> confirmed")
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(updateStatusQuery).
		WithArgs(int64(99), "cancelled", `{"pending","confirmed","cancelled"}`).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns))
	mock.ExpectQuery(statusCheckQuery).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	_, err := repo.UpdateStatus(context.Background(), 99, domain.BookingStatusCancelled)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_UpdateStatus_UnknownStoredStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(updateStatusQuery).
		WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
			int64(7), "Jane Doe", "jane@example.com", "555-0100", nil,
			"Haircut", date, "10:00", "archived", date,
		))

	_, err := repo.UpdateStatus(context.Background(), 7, domain.BookingStatusConfirmed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "archived"`)
}

func TestBookingRepository_Create_MissingService(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: "23503"})

	serviceID := int64(3)
	err := repo.Create(context.Background(), &domain.Booking{
		CustomerName: "Jane Doe",
		ServiceID:    &serviceID,
		BookingDate:  time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:       domain.BookingStatusPending,
	})

	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestBookingRepository_Create_OtherError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectQuery(`INSERT INTO bookings`).WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &domain.Booking{Status: domain.BookingStatusPending})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestWorkingHoursRepository_SetAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkingHoursRepo(db)

	mock.ExpectExec(`UPDATE working_hours SET is_available = \$2 WHERE id = \$1$`).
		WithArgs(int64(6), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetAvailability(context.Background(), 6, true))
}

func TestWorkingHoursRepository_SetAvailability_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkingHoursRepo(db)

	mock.ExpectExec(`UPDATE working_hours SET is_available`).
		WithArgs(int64(42), false).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.SetAvailability(context.Background(), 42, false), domain.ErrWorkingHoursNotFound)
}

func TestServiceRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewServiceRepo(db)

	mock.ExpectExec(`DELETE FROM services WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 5), domain.ErrServiceNotFound)
}
