package usecase

import (
	"context"
	"time"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
	"pagecaster/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

type IPublishUsecase interface {
	Publish(ctx context.Context, intent *model.PublishIntent) (*model.PublishResult, error)
	ListPosts(ctx context.Context, pageID string, limit int, after string) (*model.PagePostList, error)
	EditPost(ctx context.Context, pageID, postID, message string) error
	SetPostHidden(ctx context.Context, pageID, postID string, hidden bool) error
	DeletePost(ctx context.Context, pageID, postID string) error
	GetPostInsights(ctx context.Context, pageID, postID string) (*model.PostInsights, error)
}

type publishUsecase struct {
	graph          repository.IGraph
	credentials    repository.IPageCredential
	events         []repository.IPublishEvents // optional fan-out
	insightsCache  repository.IInsightsCache   // optional
	insightMetrics []string
}

// Option configures optional collaborators of the publish usecase.
type Option func(*publishUsecase)

// WithPublishEvents attaches a best-effort publish-event notifier. May be
// given more than once; every notifier receives each event.
func WithPublishEvents(events repository.IPublishEvents) Option {
	return func(u *publishUsecase) { u.events = append(u.events, events) }
}

// WithInsightsCache attaches a read-through cache for insight lookups.
func WithInsightsCache(cache repository.IInsightsCache) Option {
	return func(u *publishUsecase) { u.insightsCache = cache }
}

func NewPublishUsecase(graph repository.IGraph, credentials repository.IPageCredential, insightMetrics []string, opts ...Option) IPublishUsecase {
	u := &publishUsecase{
		graph:          graph,
		credentials:    credentials,
		insightMetrics: insightMetrics,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Publish turns one publish intent into the ordered remote calls its derived
// shape requires. Exactly one credential lookup happens per run; the
// credential is held only for the duration of the request.
func (u *publishUsecase) Publish(ctx context.Context, intent *model.PublishIntent) (*model.PublishResult, error) {
	if intent.PageID == "" {
		return nil, &ValidationError{Reason: "page_id is required"}
	}
	cred, err := u.credentials.Get(ctx, intent.PageID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrPageNotRegistered
	}

	if intent.Target == model.PlatformSecondary {
		return u.publishSecondary(ctx, intent, cred)
	}

	// Scheduling applies to every primary shape and aborts before any remote
	// call. A valid schedule forces an unpublished post even when publish_now
	// was also supplied.
	var scheduledAt int64
	published := true
	if intent.ScheduledAt != nil {
		ts, err := ValidateScheduleTime(intent.ScheduledAt)
		if err != nil {
			return nil, err
		}
		scheduledAt = ts
		published = false
	} else if intent.WantsDraft() {
		published = false
	}

	shape := deriveShape(intent)
	var result *model.PublishResult
	switch shape {
	case model.ShapeVideo:
		result, err = u.publishVideo(ctx, intent, cred, scheduledAt, published)
	case model.ShapeMultiAsset:
		result, err = u.publishMultiAsset(ctx, intent, cred, scheduledAt, published)
	case model.ShapeSinglePhoto:
		result, err = u.publishSinglePhoto(ctx, intent, cred, scheduledAt, published)
	case model.ShapeText:
		result, err = u.publishText(ctx, intent, cred, scheduledAt, published)
	default:
		return nil, &ValidationError{Reason: "message is required when no media is supplied"}
	}
	if err != nil {
		return nil, err
	}
	u.emitPublished(ctx, intent, result, shape, scheduledAt > 0)
	return result, nil
}

// deriveShape picks exactly one publish shape from the intent. The compose
// flag keeps galleries on the upload-then-attach path even with one image.
func deriveShape(intent *model.PublishIntent) model.PublishShape {
	switch {
	case intent.VideoURL != "":
		return model.ShapeVideo
	case intent.Compose || len(intent.Files) > 0 || len(intent.ImageURLs) > 1:
		return model.ShapeMultiAsset
	case len(intent.ImageURLs) == 1:
		return model.ShapeSinglePhoto
	case intent.Message != "":
		return model.ShapeText
	}
	return ""
}

func (u *publishUsecase) publishText(ctx context.Context, intent *model.PublishIntent, cred *model.PageCredential, scheduledAt int64, published bool) (*model.PublishResult, error) {
	res, err := u.graph.CreateFeedPost(ctx, intent.PageID, cred.AccessToken, model.FeedPostOptions{
		Message:     intent.Message,
		Link:        intent.Link,
		ScheduledAt: scheduledAt,
		Published:   published,
	})
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return res, nil
}

func (u *publishUsecase) publishSinglePhoto(ctx context.Context, intent *model.PublishIntent, cred *model.PageCredential, scheduledAt int64, published bool) (*model.PublishResult, error) {
	res, err := u.graph.CreatePhotoPost(ctx, intent.PageID, cred.AccessToken, model.PhotoPostOptions{
		URL:         intent.ImageURLs[0],
		Caption:     intent.Message,
		ScheduledAt: scheduledAt,
		Published:   published,
	})
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return res, nil
}

func (u *publishUsecase) publishVideo(ctx context.Context, intent *model.PublishIntent, cred *model.PageCredential, scheduledAt int64, published bool) (*model.PublishResult, error) {
	res, err := u.graph.CreateVideoPost(ctx, intent.PageID, cred.AccessToken, model.VideoPostOptions{
		FileURL:     intent.VideoURL,
		Description: intent.Message,
		ScheduledAt: scheduledAt,
		Published:   published,
	})
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return res, nil
}

// publishMultiAsset uploads every asset unpublished, joins all uploads, then
// issues one create-post call attaching the collected handles in input order
// (URLs first, then files). Partial upload successes are discarded on
// failure; nothing is cleaned up remotely.
func (u *publishUsecase) publishMultiAsset(ctx context.Context, intent *model.PublishIntent, cred *model.PageCredential, scheduledAt int64, published bool) (*model.PublishResult, error) {
	if len(intent.ImageURLs) == 0 && len(intent.Files) == 0 && intent.Message == "" {
		return nil, ErrNothingToPost
	}

	handles := make([]model.MediaHandle, len(intent.ImageURLs)+len(intent.Files))
	g, gctx := errgroup.WithContext(ctx)

	// URL uploads race each other; each writes into its input slot so the
	// attachment list stays order-preserving regardless of completion order.
	for i, imageURL := range intent.ImageURLs {
		g.Go(func() error {
			h, err := u.graph.UploadPhotoURL(gctx, intent.PageID, cred.AccessToken, imageURL, false)
			if err != nil {
				return &UploadFailedError{Source: imageURL, Err: err}
			}
			handles[i] = *h
			return nil
		})
	}

	// Byte-sourced files upload sequentially to bound concurrent memory use.
	if len(intent.Files) > 0 {
		base := len(intent.ImageURLs)
		g.Go(func() error {
			for j, asset := range intent.Files {
				h, err := u.graph.UploadPhotoFile(gctx, intent.PageID, cred.AccessToken, asset, false)
				if err != nil {
					return &UploadFailedError{Source: asset.Name, Err: err}
				}
				handles[base+j] = *h
			}
			return nil
		})
	}

	// All-or-none join: the final call never starts before every upload
	// settled.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts := model.FeedPostOptions{
		Message:     intent.Message,
		ScheduledAt: scheduledAt,
		Published:   published,
	}
	if len(handles) > 0 {
		opts.AttachedMedia = handles
	} else if intent.Link != "" {
		// A link is only attached when no media exists at all, never both.
		opts.Link = intent.Link
	}
	res, err := u.graph.CreateFeedPost(ctx, intent.PageID, cred.AccessToken, opts)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return res, nil
}

// publishSecondary delegates entirely to the two-phase container protocol.
// The secondary path has no scheduling support; an intent requesting both is
// rejected rather than silently dropping the schedule.
func (u *publishUsecase) publishSecondary(ctx context.Context, intent *model.PublishIntent, cred *model.PageCredential) (*model.PublishResult, error) {
	if intent.ScheduledAt != nil {
		return nil, &ValidationError{Reason: "scheduling is not supported for the secondary platform"}
	}

	spec := model.ContainerSpec{Caption: intent.Message}
	switch {
	case intent.VideoURL != "":
		spec.VideoURL = intent.VideoURL
		spec.ShareToFeed = intent.ShareToFeed
	case len(intent.ImageURLs) == 1 && len(intent.Files) == 0:
		spec.ImageURL = intent.ImageURLs[0]
	default:
		return nil, &ValidationError{Reason: "secondary platform requires exactly one image url or a video url"}
	}

	ig, err := u.graph.LinkedInstagramAccount(ctx, intent.PageID, cred.AccessToken)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	if ig == nil {
		return nil, ErrNoLinkedAccount
	}

	twoPhase, err := u.publishTwoPhase(ctx, ig.ID, cred.AccessToken, spec)
	if err != nil {
		return nil, err
	}
	result := &model.PublishResult{ID: twoPhase.PublishedID, CreationID: twoPhase.CreationID}
	u.emitPublished(ctx, intent, result, deriveShape(intent), false)
	return result, nil
}

// publishTwoPhase creates a media container then publishes it by reference.
// The publish phase only runs when creation succeeded; a failed publish
// still reports the creation id of the orphaned container.
func (u *publishUsecase) publishTwoPhase(ctx context.Context, igUserID, accessToken string, spec model.ContainerSpec) (*model.InstagramPublishResult, error) {
	creationID, err := u.graph.CreateMediaContainer(ctx, igUserID, accessToken, spec)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	res, err := u.graph.PublishMediaContainer(ctx, igUserID, accessToken, creationID)
	if err != nil {
		return nil, &RemoteAPIError{CreationID: creationID, Err: err}
	}
	return &model.InstagramPublishResult{CreationID: creationID, PublishedID: res.ID}, nil
}

func (u *publishUsecase) emitPublished(ctx context.Context, intent *model.PublishIntent, result *model.PublishResult, shape model.PublishShape, scheduled bool) {
	if len(u.events) == 0 || result == nil {
		return
	}
	platform := "facebook"
	if intent.Target == model.PlatformSecondary {
		platform = "instagram"
	}
	event := model.PublishEvent{
		PageID:     intent.PageID,
		Platform:   platform,
		PostID:     result.ID,
		Shape:      string(shape),
		Scheduled:  scheduled,
		OccurredAt: time.Now().UTC(),
	}
	for _, sink := range u.events {
		if err := sink.Emit(ctx, event); err != nil {
			logger.GetLogger().WithField("error", err).Warn("publish event emission failed")
		}
	}
}

// resolve fetches the page credential for read and management operations.
func (u *publishUsecase) resolve(ctx context.Context, pageID string) (*model.PageCredential, error) {
	cred, err := u.credentials.Get(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, ErrPageNotRegistered
	}
	return cred, nil
}

func (u *publishUsecase) ListPosts(ctx context.Context, pageID string, limit int, after string) (*model.PagePostList, error) {
	cred, err := u.resolve(ctx, pageID)
	if err != nil {
		return nil, err
	}
	list, err := u.graph.ListPosts(ctx, pageID, cred.AccessToken, limit, after)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return list, nil
}

func (u *publishUsecase) EditPost(ctx context.Context, pageID, postID, message string) error {
	if message == "" {
		return &ValidationError{Reason: "message is required"}
	}
	cred, err := u.resolve(ctx, pageID)
	if err != nil {
		return err
	}
	if err := u.graph.EditPost(ctx, postID, cred.AccessToken, message); err != nil {
		return &RemoteAPIError{Err: err}
	}
	return nil
}

func (u *publishUsecase) SetPostHidden(ctx context.Context, pageID, postID string, hidden bool) error {
	cred, err := u.resolve(ctx, pageID)
	if err != nil {
		return err
	}
	if err := u.graph.SetPostHidden(ctx, postID, cred.AccessToken, hidden); err != nil {
		return &RemoteAPIError{Err: err}
	}
	return nil
}

func (u *publishUsecase) DeletePost(ctx context.Context, pageID, postID string) error {
	cred, err := u.resolve(ctx, pageID)
	if err != nil {
		return err
	}
	if err := u.graph.DeletePost(ctx, postID, cred.AccessToken); err != nil {
		return &RemoteAPIError{Err: err}
	}
	return nil
}

// GetPostInsights reads through the optional cache; the publish path itself
// never caches anything.
func (u *publishUsecase) GetPostInsights(ctx context.Context, pageID, postID string) (*model.PostInsights, error) {
	cred, err := u.resolve(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if u.insightsCache != nil {
		if cached, cErr := u.insightsCache.Get(ctx, postID); cErr == nil && cached != nil {
			return cached, nil
		}
	}
	insights, err := u.graph.PostInsights(ctx, postID, cred.AccessToken, u.insightMetrics)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	if u.insightsCache != nil {
		if cErr := u.insightsCache.Set(ctx, insights); cErr != nil {
			logger.GetLogger().WithField("error", cErr).Warn("insights cache write failed")
		}
	}
	return insights, nil
}
