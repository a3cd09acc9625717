package repository

import (
	"context"

	"pagecaster/domain/model"
)

// IGraph abstracts the remote publishing API. Every call is authenticated by
// the access token passed per request; implementations hold no credential
// state of their own.
type IGraph interface {
	// Asset uploads. published=false keeps the asset a hidden media object
	// awaiting attachment.
	UploadPhotoURL(ctx context.Context, pageID, accessToken, imageURL string, published bool) (*model.MediaHandle, error)
	UploadPhotoFile(ctx context.Context, pageID, accessToken string, asset model.FileAsset, published bool) (*model.MediaHandle, error)

	// Create-post calls, one per publish shape.
	CreateFeedPost(ctx context.Context, pageID, accessToken string, opts model.FeedPostOptions) (*model.PublishResult, error)
	CreatePhotoPost(ctx context.Context, pageID, accessToken string, opts model.PhotoPostOptions) (*model.PublishResult, error)
	CreateVideoPost(ctx context.Context, pageID, accessToken string, opts model.VideoPostOptions) (*model.PublishResult, error)

	// Instagram two-phase container protocol.
	LinkedInstagramAccount(ctx context.Context, pageID, accessToken string) (*model.InstagramAccount, error)
	CreateMediaContainer(ctx context.Context, igUserID, accessToken string, spec model.ContainerSpec) (string, error)
	PublishMediaContainer(ctx context.Context, igUserID, accessToken, creationID string) (*model.PublishResult, error)

	// Post management reads and writes.
	ListPosts(ctx context.Context, pageID, accessToken string, limit int, after string) (*model.PagePostList, error)
	EditPost(ctx context.Context, postID, accessToken, message string) error
	SetPostHidden(ctx context.Context, postID, accessToken string, hidden bool) error
	DeletePost(ctx context.Context, postID, accessToken string) error
	PostInsights(ctx context.Context, postID, accessToken string, metrics []string) (*model.PostInsights, error)

	// Page listing for the authorized identity (user token, not page token).
	ListUserPages(ctx context.Context, userAccessToken string) ([]model.FacebookPage, error)
}
