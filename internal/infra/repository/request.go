package repository

import (
	"context"

	"lendshare/internal/domain/request"
	"lendshare/internal/infra"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (int64, error) {
	sqlStr, args, err := dialect.Insert("requests").Prepared(true).
		Rows(goqu.Record{
			"requestor_id": req.RequestorID(),
			"description":  req.Description(),
			"created_at":   req.Created(),
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build request insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("request references missing user", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create request", err)
	}
	return id, nil
}
