package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/russkiih/bookapp/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// defaultStrategy is used for reads only. Writes run once so a transient
// failure never turns into a duplicate row.
func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, customer_name, customer_email, customer_phone, service_id,
			  service_name, booking_date, booking_time, status, created_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (customer_name, customer_email, customer_phone, service_id,
			  service_name, booking_date, booking_time, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.ServiceID,
		b.ServiceName, b.BookingDate.Format("2006-01-02"), b.BookingTime, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrServiceNotFound
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// UpdateStatus moves a booking to status if its current status allows it.
// When nothing is updated the row is re-read to tell a missing booking from
// a forbidden transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2
			  WHERE id = $1 AND status = ANY($3)
			  RETURNING ` + bookingColumns

	sources := domain.TransitionSources(status)
	allowed := make([]string, 0, len(sources))
	for _, s := range sources {
		allowed = append(allowed, string(s))
	}

	row := r.db.Master.QueryRowContext(ctx, query, id, status, pq.Array(allowed))
	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	var current string
	checkQuery := `SELECT status FROM bookings WHERE id = $1`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("check booking status: %w", err)
	}

	return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, status)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		serviceID sql.NullInt64
	)
	if err := row.Scan(
		&b.ID, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &serviceID,
		&b.ServiceName, &b.BookingDate, &b.BookingTime, &b.Status, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	if !b.Status.Valid() {
		return nil, fmt.Errorf("booking %d has unknown status %q", b.ID, b.Status)
	}
	if serviceID.Valid {
		id := serviceID.Int64
		b.ServiceID = &id
	}
	return &b, nil
}
