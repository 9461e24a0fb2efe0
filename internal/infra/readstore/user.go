package readstore

import (
	"context"

	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"
	"lendshare/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	sqlStr, args, err := dialect.From("users").Prepared(true).
		Select("id", "name", "email").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user view select", err)
	}

	var view queries.UserView
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&view.ID, &view.Name, &view.Email); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user view by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) Exists(ctx context.Context, id int64) (bool, error) {
	sqlStr, args, err := dialect.From("users").Prepared(true).
		Select(goqu.L("1")).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build user exists select", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&one); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return true, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	sqlStr, args, err := dialect.From("users").Prepared(true).
		Select("id", "name", "email").
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build users select", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := make([]*queries.UserView, 0)
	for rows.Next() {
		var view queries.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}
