package repository

import (
	"context"

	"lendshare/internal/domain/comment"
	"lendshare/internal/infra"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	sqlStr, args, err := dialect.Insert("comments").Prepared(true).
		Rows(goqu.Record{
			"item_id":    c.ItemID(),
			"author_id":  c.AuthorID(),
			"text":       c.Text(),
			"created_at": c.Created(),
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build comment insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("comment references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
