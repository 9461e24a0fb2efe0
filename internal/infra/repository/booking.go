package repository

import (
	"context"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	sqlStr, args, err := dialect.Insert("bookings").Prepared(true).
		Rows(goqu.Record{
			"item_id":   b.ItemID(),
			"booker_id": b.BookerID(),
			"start_at":  b.Window().Start(),
			"end_at":    b.Window().End(),
			"status":    b.Status().String(),
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("booking references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	sqlStr, args, err := dialect.From("bookings").Prepared(true).
		Select("id", "item_id", "booker_id", "start_at", "end_at", "status", "version", "created_at").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking select", err)
	}

	var (
		bookingID, itemID, bookerID, version int64
		startAt, endAt, createdAt            time.Time
		status                               string
	)
	row := r.db.QueryRow(ctx, sqlStr, args...)
	if err := row.Scan(&bookingID, &itemID, &bookerID, &startAt, &endAt, &status, &version, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return booking.ReconstructBooking(
		bookingID, itemID, bookerID,
		booking.ReconstructWindow(startAt, endAt),
		booking.Status(status),
		version, createdAt,
	), nil
}

// UpdateStatus compares-and-swaps on the version column. Zero affected rows
// means another writer got there first.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status, version int64) error {
	sqlStr, args, err := dialect.Update("bookings").Prepared(true).
		Set(goqu.Record{
			"status":  status.String(),
			"version": goqu.L("version + 1"),
		}).
		Where(goqu.Ex{"id": id, "version": version}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build booking update", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking version changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookingRepository) HasResolvedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	sqlStr, args, err := dialect.From("bookings").Prepared(true).
		Select(goqu.L("1")).
		Where(goqu.Ex{
			"item_id":   itemID,
			"booker_id": bookerID,
			"status":    booking.StatusApproved.String(),
			"end_at":    goqu.Op{"lt": now},
		}).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build resolved booking select", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check resolved booking", err)
	}
	return true, nil
}
