package response

import (
	"time"

	"appointment-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProviderResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProviderView(v *queries.ProviderView) *ProviderResponse {
	var resp ProviderResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProviderViews(views []*queries.ProviderView) []*ProviderResponse {
	resp := make([]*ProviderResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromProviderView(v))
	}
	return resp
}
