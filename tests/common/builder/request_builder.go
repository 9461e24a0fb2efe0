//go:build unit || e2e

package builder

import (
	"time"

	"lendshare/internal/domain/request"
	reqdto "lendshare/internal/handler/dto/request"
	"lendshare/internal/usecase/queries"
)

type RequestBuilder struct {
	ID          int64
	RequestorID int64
	Description string
	Created     time.Time
	Items       []*queries.RequestItemRef
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:          200,
		RequestorID: 2,
		Description: "Looking for a cordless drill for the weekend",
		Created:     Anchor,
		Items:       []*queries.RequestItemRef{},
	}
}

func (r *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(r)
	return r
}

func (r *RequestBuilder) BuildDomain(now time.Time) (*request.Request, error) {
	return request.NewRequest(r.RequestorID, r.Description, now)
}

func (r *RequestBuilder) BuildReconstructed() *request.Request {
	return request.ReconstructRequest(r.ID, r.RequestorID, r.Description, r.Created)
}

func (r *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:          r.ID,
		RequestorID: r.RequestorID,
		Description: r.Description,
		Created:     r.Created,
		Items:       r.Items,
	}
}

func (r *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateRequestRequest {
	return reqdto.CreateRequestRequest{
		Description: r.Description,
	}
}
