package repository

import (
	"context"

	"pagecaster/domain/model"
)

// IPublishEvents delivers publish notifications to a message broker. Emission
// is best-effort; callers log failures and move on.
type IPublishEvents interface {
	Emit(ctx context.Context, event model.PublishEvent) error
}

// IInsightsCache is a read-through cache for post insight lookups.
type IInsightsCache interface {
	Get(ctx context.Context, postID string) (*model.PostInsights, error)
	Set(ctx context.Context, insights *model.PostInsights) error
}
