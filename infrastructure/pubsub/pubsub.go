package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub"
)

// NewPubSub creates a Pub/Sub client for the given project.
func NewPubSub(ctx context.Context, projectID string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, nil
	}
	return pubsub.NewClient(ctx, projectID)
}
