package readstore

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"
	"lendshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestReadStore struct {
	db *pgxpool.Pool
}

func NewRequestReadStore(db *pgxpool.Pool) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	sqlStr, args, err := baseRequestQuery().
		Where(goqu.I("r.id").Eq(id)).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request view select", err)
	}

	view, err := scanRequestView(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request view by ID", err)
	}
	return view, nil
}

func (r *RequestReadStore) FindByRequestor(ctx context.Context, requestorID int64) ([]*queries.RequestView, error) {
	ds := baseRequestQuery().
		Where(goqu.I("r.requestor_id").Eq(requestorID)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc())
	return r.listRequests(ctx, ds)
}

func (r *RequestReadStore) FindOthers(ctx context.Context, excludeRequestorID int64, page queries.Page) ([]*queries.RequestView, error) {
	ds := baseRequestQuery().
		Where(goqu.I("r.requestor_id").Neq(excludeRequestorID)).
		Order(goqu.I("r.created_at").Desc(), goqu.I("r.id").Desc()).
		Offset(uint(page.Offset)).
		Limit(uint(page.Limit))
	return r.listRequests(ctx, ds)
}

func (r *RequestReadStore) FindRespondingItems(ctx context.Context, requestID int64) ([]*queries.RequestItemRef, error) {
	sqlStr, args, err := dialect.From("items").Prepared(true).
		Select("id", "name", "description", "available", "request_id").
		Where(goqu.I("request_id").Eq(requestID)).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build responding items select", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list responding items", err)
	}
	defer rows.Close()

	result := make([]*queries.RequestItemRef, 0)
	for rows.Next() {
		var ref queries.RequestItemRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Description, &ref.Available, &ref.RequestID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan responding item row", err)
		}
		result = append(result, &ref)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate responding item rows", err)
	}
	return result, nil
}

func (r *RequestReadStore) listRequests(ctx context.Context, ds *goqu.SelectDataset) ([]*queries.RequestView, error) {
	sqlStr, args, err := ds.ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build request list select", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	result := make([]*queries.RequestView, 0)
	for rows.Next() {
		view, err := scanRequestView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return result, nil
}

func baseRequestQuery() *goqu.SelectDataset {
	return dialect.From(goqu.T("requests").As("r")).Prepared(true).
		Select(
			goqu.I("r.id"),
			goqu.I("r.requestor_id"),
			goqu.I("r.description"),
			goqu.I("r.created_at"),
		)
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var view queries.RequestView
	err := row.Scan(
		&view.ID,
		&view.RequestorID,
		&view.Description,
		&view.Created,
	)
	if err != nil {
		return nil, err
	}
	view.Items = []*queries.RequestItemRef{}
	return &view, nil
}
