package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tablequeue/waitlist/internal/model"
)

// entryColumns is the projection shared by every read.  Dates and times are
// formatted in SQL so the driver hands back plain strings regardless of
// parseTime.
const entryColumns = `id, cust_LName, cust_FName, phone_num, party_size, position_inLine,
	DATE_FORMAT(checkIn_date, '%Y-%m-%d'), TIME_FORMAT(checkIn_time, '%H:%i:%s'), is_deleted`

const (
	qInsert = `INSERT INTO waitlist (cust_LName, cust_FName, phone_num, party_size, position_inLine, checkIn_date, checkIn_time, is_deleted)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	qListActive  = `SELECT ` + entryColumns + ` FROM waitlist WHERE is_deleted = false`
	qListByLName = `SELECT ` + entryColumns + ` FROM waitlist WHERE cust_LName = ? AND is_deleted = false ORDER BY position_inLine`
	qGetByID     = `SELECT ` + entryColumns + ` FROM waitlist WHERE id = ? AND is_deleted = false`
	qUpdate      = `UPDATE waitlist
	           SET cust_LName = ?, cust_FName = ?, phone_num = ?, party_size = ?, position_inLine = ?, checkIn_date = ?, checkIn_time = ?, is_deleted = ?
	           WHERE id = ?`
	qSoftDelete = `UPDATE waitlist SET is_deleted = true WHERE id = ?`
)

// WaitlistRepo encapsulates all database queries related to the waitlist.
// It depends on a sql.DB pool configured elsewhere.  Every method issues
// exactly one statement; there are no transactions.
type WaitlistRepo struct {
	db      *sql.DB
	timeout time.Duration // per-call bound; 0 leaves the caller's context alone
}

// NewWaitlistRepo constructs a WaitlistRepo with the provided DB handle.
func NewWaitlistRepo(db *sql.DB, timeout time.Duration) *WaitlistRepo {
	return &WaitlistRepo{db: db, timeout: timeout}
}

func (r *WaitlistRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Create inserts a new party and returns the auto-generated id.
func (r *WaitlistRepo) Create(ctx context.Context, f model.WaitlistFields) (uint64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, qInsert,
		f.LastName, f.FirstName, f.Phone, f.PartySize, f.PositionInLine, f.CheckInDate, f.CheckInTime, f.IsDeleted)
	if err != nil {
		return 0, storeErr("create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storeErr("create", err)
	}
	return uint64(id), nil
}

// ListActive returns every entry that has not been soft-deleted, in store
// order.
func (r *WaitlistRepo) ListActive(ctx context.Context) ([]model.WaitlistEntry, error) {
	return r.query(ctx, "list", qListActive)
}

// ListByLastName returns active entries whose last name equals name exactly,
// ordered by position in line.
func (r *WaitlistRepo) ListByLastName(ctx context.Context, name string) ([]model.WaitlistEntry, error) {
	return r.query(ctx, "list by last name", qListByLName, name)
}

// GetByID returns the active entry with the given id as a slice of zero or
// one elements.
func (r *WaitlistRepo) GetByID(ctx context.Context, id uint64) ([]model.WaitlistEntry, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return r.query(ctx, "get", qGetByID, id)
}

// Update overwrites all eight caller fields of the row.  A missing row is
// not an error: the statement simply affects zero rows.
func (r *WaitlistRepo) Update(ctx context.Context, id uint64, f model.WaitlistFields) error {
	if id == 0 {
		return ErrInvalidID
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx, qUpdate,
		f.LastName, f.FirstName, f.Phone, f.PartySize, f.PositionInLine, f.CheckInDate, f.CheckInTime, f.IsDeleted, id)
	return storeErr("update", err)
}

// SoftDelete flags the row as deleted.  Like Update it does not check that
// the row exists.
func (r *WaitlistRepo) SoftDelete(ctx context.Context, id uint64) error {
	if id == 0 {
		return ErrInvalidID
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.db.ExecContext(ctx, qSoftDelete, id)
	return storeErr("delete", err)
}

func (r *WaitlistRepo) query(ctx context.Context, op, q string, args ...any) ([]model.WaitlistEntry, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storeErr(op, err)
	}
	defer rows.Close()

	out := make([]model.WaitlistEntry, 0)
	for rows.Next() {
		var e model.WaitlistEntry
		if err := rows.Scan(&e.ID, &e.LastName, &e.FirstName, &e.Phone, &e.PartySize, &e.PositionInLine,
			&e.CheckInDate, &e.CheckInTime, &e.IsDeleted); err != nil {
			return nil, storeErr(op, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, err)
	}
	return out, nil
}
