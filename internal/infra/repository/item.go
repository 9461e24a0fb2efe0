package repository

import (
	"context"
	"time"

	"lendshare/internal/domain/item"
	"lendshare/internal/infra"
	"lendshare/internal/pkg/pgconv"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (int64, error) {
	sqlStr, args, err := dialect.Insert("items").Prepared(true).
		Rows(goqu.Record{
			"owner_id":    i.OwnerID(),
			"name":        i.Name(),
			"description": i.Description(),
			"available":   i.Available(),
			"request_id":  pgconv.Int64PtrToPgtype(i.RequestID()),
		}).
		Returning("id").
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build item insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return 0, infra.WrapRepoErr("item references missing row", err, infra.KindForeignKeyViolated)
		}
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	sqlStr, args, err := dialect.From("items").Prepared(true).
		Select("id", "owner_id", "name", "description", "available", "request_id", "created_at").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build item select", err)
	}

	var (
		itemID, ownerID   int64
		name, description string
		available         bool
		requestID         pgtype.Int8
		createdAt         time.Time
	)
	row := r.db.QueryRow(ctx, sqlStr, args...)
	if err := row.Scan(&itemID, &ownerID, &name, &description, &available, &requestID, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}

	return item.ReconstructItem(itemID, ownerID, name, description, available, pgconv.Int64PtrFromPgtype(requestID), createdAt), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	sqlStr, args, err := dialect.Update("items").Prepared(true).
		Set(goqu.Record{
			"name":        i.Name(),
			"description": i.Description(),
			"available":   i.Available(),
		}).
		Where(goqu.Ex{"id": i.ID()}).
		ToSQL()
	if err != nil {
		return infra.WrapRepoErr("failed to build item update", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
