package readstore

import (
	"context"
	"time"

	"lendshare/internal/domain/booking"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"
	"lendshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	sqlStr, args, err := baseBookingQuery().
		Where(goqu.I("b.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking view select", err)
	}

	view, err := scanBookingView(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) FindByBooker(ctx context.Context, bookerID int64, filter queries.BucketFilter) ([]*queries.BookingView, error) {
	ds := baseBookingQuery().Where(goqu.I("b.booker_id").Eq(bookerID))
	return r.list(ctx, ds, filter)
}

func (r *BookingReadStore) FindByOwnerItems(ctx context.Context, ownerID int64, filter queries.BucketFilter) ([]*queries.BookingView, error) {
	ds := baseBookingQuery().Where(goqu.I("i.owner_id").Eq(ownerID))
	return r.list(ctx, ds, filter)
}

func (r *BookingReadStore) list(ctx context.Context, ds *goqu.SelectDataset, filter queries.BucketFilter) ([]*queries.BookingView, error) {
	if exprs := bucketExpressions(filter.Bucket, filter.Now); len(exprs) > 0 {
		ds = ds.Where(exprs...)
	}

	sqlStr, args, err := ds.
		Order(goqu.I("b.start_at").Desc(), goqu.I("b.id").Asc()).
		Offset(uint(filter.Page.Offset)).
		Limit(uint(filter.Page.Limit)).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list select", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	result := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func baseBookingQuery() *goqu.SelectDataset {
	return dialect.From(goqu.T("bookings").As("b")).Prepared(true).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("b.booker_id").Eq(goqu.I("u.id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.start_at"),
			goqu.I("b.end_at"),
			goqu.I("b.status"),
			goqu.I("b.created_at"),
			goqu.I("i.id"),
			goqu.I("i.name"),
			goqu.I("i.owner_id"),
			goqu.I("u.id"),
			goqu.I("u.name"),
		)
}

// bucketExpressions translates a bucket into SQL predicates against the
// single evaluation time of the call.
func bucketExpressions(bucket booking.Bucket, now time.Time) []goqu.Expression {
	switch bucket {
	case booking.BucketCurrent:
		return []goqu.Expression{
			goqu.I("b.start_at").Lte(now),
			goqu.I("b.end_at").Gte(now),
		}
	case booking.BucketPast:
		return []goqu.Expression{goqu.I("b.end_at").Lt(now)}
	case booking.BucketFuture:
		return []goqu.Expression{goqu.I("b.start_at").Gt(now)}
	case booking.BucketWaiting:
		return []goqu.Expression{goqu.I("b.status").Eq(booking.StatusWaiting.String())}
	case booking.BucketRejected:
		return []goqu.Expression{goqu.I("b.status").Eq(booking.StatusRejected.String())}
	default: // BucketAll
		return nil
	}
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID,
		&view.Start,
		&view.End,
		&view.Status,
		&view.CreatedAt,
		&view.Item.ID,
		&view.Item.Name,
		&view.OwnerID,
		&view.Booker.ID,
		&view.Booker.Name,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
