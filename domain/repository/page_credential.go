package repository

import (
	"context"

	"pagecaster/domain/model"
)

// IPageCredential is the durable store mapping a page to its access token.
// Get must be a strongly-consistent point lookup; absence is reported as a
// nil credential with no error.
type IPageCredential interface {
	Get(ctx context.Context, pageID string) (*model.PageCredential, error)
	Upsert(ctx context.Context, cred *model.PageCredential) error
	List(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error)
	Delete(ctx context.Context, pageID string) error
}
