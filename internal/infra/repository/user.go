package repository

import (
	"context"

	"lendshare/internal/domain/user"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	sqlStr, args, err := dialect.Insert("users").Prepared(true).
		Rows(goqu.Record{
			"name":  u.Name(),
			"email": u.Email(),
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build user insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, infra.WrapRepoErr("user email already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	sqlStr, args, err := dialect.From("users").Prepared(true).
		Select("id", "name", "email").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user select", err)
	}

	var (
		userID      int64
		name, email string
	)
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&userID, &name, &email); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return user.ReconstructUser(userID, name, email), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	sqlStr, args, err := dialect.Update("users").Prepared(true).
		Set(goqu.Record{
			"name":  u.Name(),
			"email": u.Email(),
		}).
		Where(goqu.Ex{"id": u.ID()}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build user update", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("user email already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := dialect.Delete("users").Prepared(true).
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build user delete", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
