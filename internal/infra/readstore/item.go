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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemReadStore struct {
	db *pgxpool.Pool
}

func NewItemReadStore(db *pgxpool.Pool) *ItemReadStore {
	return &ItemReadStore{db: db}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	sqlStr, args, err := baseItemQuery().
		Where(goqu.I("i.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item view select", err)
	}

	view, err := scanItemView(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item view by ID", err)
	}
	return view, nil
}

func (r *ItemReadStore) FindByOwner(ctx context.Context, ownerID int64) ([]*queries.ItemView, error) {
	sqlStr, args, err := baseItemQuery().
		Where(goqu.I("i.owner_id").Eq(ownerID)).
		Order(goqu.I("i.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build owner items select", err)
	}
	return r.listItems(ctx, sqlStr, args)
}

func (r *ItemReadStore) Search(ctx context.Context, text string) ([]*queries.ItemView, error) {
	pattern := "%" + text + "%"
	sqlStr, args, err := baseItemQuery().
		Where(
			goqu.I("i.available").IsTrue(),
			goqu.Or(
				goqu.I("i.name").ILike(pattern),
				goqu.I("i.description").ILike(pattern),
			),
		).
		Order(goqu.I("i.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item search select", err)
	}
	return r.listItems(ctx, sqlStr, args)
}

func (r *ItemReadStore) FindComments(ctx context.Context, itemID int64) ([]*queries.CommentView, error) {
	sqlStr, args, err := dialect.From(goqu.T("comments").As("c")).Prepared(true).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("c.author_id").Eq(goqu.I("u.id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.text"),
			goqu.I("u.name"),
			goqu.I("c.created_at"),
		).
		Where(goqu.I("c.item_id").Eq(itemID)).
		Order(goqu.I("c.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build comments select", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments", err)
	}
	defer rows.Close()

	result := make([]*queries.CommentView, 0)
	for rows.Next() {
		var view queries.CommentView
		if err := rows.Scan(&view.ID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return result, nil
}

func (r *ItemReadStore) FindLastBooking(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	ds := bookingRefQuery(itemID).
		Where(goqu.I("start_at").Lte(now)).
		Order(goqu.I("end_at").Desc())
	return r.findBookingRef(ctx, ds)
}

func (r *ItemReadStore) FindNextBooking(ctx context.Context, itemID int64, now time.Time) (*queries.BookingRef, error) {
	ds := bookingRefQuery(itemID).
		Where(goqu.I("start_at").Gt(now)).
		Order(goqu.I("start_at").Asc())
	return r.findBookingRef(ctx, ds)
}

func (r *ItemReadStore) findBookingRef(ctx context.Context, ds *goqu.SelectDataset) (*queries.BookingRef, error) {
	sqlStr, args, err := ds.Limit(1).ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking ref select", err)
	}

	var ref queries.BookingRef
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&ref.ID, &ref.BookerID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking ref", err)
	}
	return &ref, nil
}

func (r *ItemReadStore) listItems(ctx context.Context, sqlStr string, args []interface{}) ([]*queries.ItemView, error) {
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	result := make([]*queries.ItemView, 0)
	for rows.Next() {
		view, err := scanItemView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return result, nil
}

func baseItemQuery() *goqu.SelectDataset {
	return dialect.From(goqu.T("items").As("i")).Prepared(true).
		Select(
			goqu.I("i.id"),
			goqu.I("i.owner_id"),
			goqu.I("i.name"),
			goqu.I("i.description"),
			goqu.I("i.available"),
			goqu.I("i.request_id"),
		)
}

func bookingRefQuery(itemID int64) *goqu.SelectDataset {
	return dialect.From("bookings").Prepared(true).
		Select("id", "booker_id").
		Where(
			goqu.I("item_id").Eq(itemID),
			goqu.I("status").Eq(booking.StatusApproved.String()),
		)
}

func scanItemView(row pgx.Row) (*queries.ItemView, error) {
	var (
		view      queries.ItemView
		requestID pgtype.Int8
	)
	err := row.Scan(
		&view.ID,
		&view.OwnerID,
		&view.Name,
		&view.Description,
		&view.Available,
		&requestID,
	)
	if err != nil {
		return nil, err
	}
	view.RequestID = pgconv.Int64PtrFromPgtype(requestID)
	view.Comments = []*queries.CommentView{}
	return &view, nil
}
