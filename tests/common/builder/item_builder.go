//go:build unit || e2e

package builder

import (
	"time"

	"lendshare/internal/domain/item"
	reqdto "lendshare/internal/handler/dto/request"
	"lendshare/internal/usecase/queries"
)

type ItemBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          10,
		OwnerID:     1,
		Name:        "Cordless drill",
		Description: "18V cordless drill with two batteries",
		Available:   true,
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(i.OwnerID, i.Name, i.Description, i.Available, i.RequestID)
}

func (i *ItemBuilder) BuildReconstructed() *item.Item {
	return item.ReconstructItem(i.ID, i.OwnerID, i.Name, i.Description, i.Available, i.RequestID, i.CreatedAt)
}

func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		Comments:    []*queries.CommentView{},
	}
}

func (i *ItemBuilder) BuildCreateRequestDTO() reqdto.CreateItemRequest {
	available := i.Available
	return reqdto.CreateItemRequest{
		Name:        i.Name,
		Description: i.Description,
		Available:   &available,
		RequestID:   i.RequestID,
	}
}
