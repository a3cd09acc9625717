package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"pagecaster/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGraph struct{ mock.Mock }

func (m *mockGraph) UploadPhotoURL(ctx context.Context, pageID, accessToken, imageURL string, published bool) (*model.MediaHandle, error) {
	args := m.Called(ctx, pageID, accessToken, imageURL, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaHandle), args.Error(1)
}

func (m *mockGraph) UploadPhotoFile(ctx context.Context, pageID, accessToken string, asset model.FileAsset, published bool) (*model.MediaHandle, error) {
	args := m.Called(ctx, pageID, accessToken, asset, published)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaHandle), args.Error(1)
}

func (m *mockGraph) CreateFeedPost(ctx context.Context, pageID, accessToken string, opts model.FeedPostOptions) (*model.PublishResult, error) {
	args := m.Called(ctx, pageID, accessToken, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublishResult), args.Error(1)
}

func (m *mockGraph) CreatePhotoPost(ctx context.Context, pageID, accessToken string, opts model.PhotoPostOptions) (*model.PublishResult, error) {
	args := m.Called(ctx, pageID, accessToken, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublishResult), args.Error(1)
}

func (m *mockGraph) CreateVideoPost(ctx context.Context, pageID, accessToken string, opts model.VideoPostOptions) (*model.PublishResult, error) {
	args := m.Called(ctx, pageID, accessToken, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublishResult), args.Error(1)
}

func (m *mockGraph) LinkedInstagramAccount(ctx context.Context, pageID, accessToken string) (*model.InstagramAccount, error) {
	args := m.Called(ctx, pageID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InstagramAccount), args.Error(1)
}

func (m *mockGraph) CreateMediaContainer(ctx context.Context, igUserID, accessToken string, spec model.ContainerSpec) (string, error) {
	args := m.Called(ctx, igUserID, accessToken, spec)
	return args.String(0), args.Error(1)
}

func (m *mockGraph) PublishMediaContainer(ctx context.Context, igUserID, accessToken, creationID string) (*model.PublishResult, error) {
	args := m.Called(ctx, igUserID, accessToken, creationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PublishResult), args.Error(1)
}

func (m *mockGraph) ListPosts(ctx context.Context, pageID, accessToken string, limit int, after string) (*model.PagePostList, error) {
	args := m.Called(ctx, pageID, accessToken, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PagePostList), args.Error(1)
}

func (m *mockGraph) EditPost(ctx context.Context, postID, accessToken, message string) error {
	return m.Called(ctx, postID, accessToken, message).Error(0)
}

func (m *mockGraph) SetPostHidden(ctx context.Context, postID, accessToken string, hidden bool) error {
	return m.Called(ctx, postID, accessToken, hidden).Error(0)
}

func (m *mockGraph) DeletePost(ctx context.Context, postID, accessToken string) error {
	return m.Called(ctx, postID, accessToken).Error(0)
}

func (m *mockGraph) PostInsights(ctx context.Context, postID, accessToken string, metrics []string) (*model.PostInsights, error) {
	args := m.Called(ctx, postID, accessToken, metrics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostInsights), args.Error(1)
}

func (m *mockGraph) ListUserPages(ctx context.Context, userAccessToken string) ([]model.FacebookPage, error) {
	args := m.Called(ctx, userAccessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FacebookPage), args.Error(1)
}

type mockCredentialStore struct{ mock.Mock }

func (m *mockCredentialStore) Get(ctx context.Context, pageID string) (*model.PageCredential, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PageCredential), args.Error(1)
}

func (m *mockCredentialStore) Upsert(ctx context.Context, cred *model.PageCredential) error {
	return m.Called(ctx, cred).Error(0)
}

func (m *mockCredentialStore) List(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PageCredential), args.Error(1)
}

func (m *mockCredentialStore) Delete(ctx context.Context, pageID string) error {
	return m.Called(ctx, pageID).Error(0)
}

type mockPublishEvents struct{ mock.Mock }

func (m *mockPublishEvents) Emit(ctx context.Context, event model.PublishEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockInsightsCache struct{ mock.Mock }

func (m *mockInsightsCache) Get(ctx context.Context, postID string) (*model.PostInsights, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostInsights), args.Error(1)
}

func (m *mockInsightsCache) Set(ctx context.Context, insights *model.PostInsights) error {
	return m.Called(ctx, insights).Error(0)
}

func registeredStore(pageID string) *mockCredentialStore {
	store := &mockCredentialStore{}
	store.On("Get", mock.Anything, pageID).Return(&model.PageCredential{
		PageID:      pageID,
		PageName:    "Test Page",
		AccessToken: "page-token",
	}, nil)
	return store
}

func TestPublish_PageNotRegistered(t *testing.T) {
	graphMock := &mockGraph{}
	store := &mockCredentialStore{}
	store.On("Get", mock.Anything, "unknown").Return(nil, nil)

	u := NewPublishUsecase(graphMock, store, nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{PageID: "unknown", Message: "hi"})
	assert.ErrorIs(t, err, ErrPageNotRegistered)
	graphMock.AssertNotCalled(t, "CreateFeedPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	graphMock.AssertExpectations(t)
}

func TestPublish_TextPost(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", model.FeedPostOptions{
		Message:   "hello world",
		Link:      "https://example.com",
		Published: true,
	}).Return(&model.PublishResult{ID: "p1_100"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	res, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:  "p1",
		Message: "hello world",
		Link:    "https://example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1_100", res.ID)
	graphMock.AssertExpectations(t)
}

func TestPublish_ScheduleBeatsPublishNow(t *testing.T) {
	when := float64(time.Now().Unix() + 3600)
	publishNow := true

	graphMock := &mockGraph{}
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.MatchedBy(func(opts model.FeedPostOptions) bool {
		return !opts.Published && opts.ScheduledAt == int64(when)
	})).Return(&model.PublishResult{ID: "p1_101"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:      "p1",
		Message:     "later",
		ScheduledAt: &when,
		PublishNow:  &publishNow,
	})
	require.NoError(t, err)
	graphMock.AssertExpectations(t)
}

func TestPublish_InvalidScheduleAbortsBeforeRemoteCall(t *testing.T) {
	tooSoon := float64(time.Now().Unix() + 60)
	graphMock := &mockGraph{}

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:      "p1",
		Message:     "later",
		ScheduledAt: &tooSoon,
	})
	var scheduleErr *InvalidScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, ScheduleTooSoon, scheduleErr.Reason)
	graphMock.AssertNotCalled(t, "CreateFeedPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_ExplicitDraft(t *testing.T) {
	publishNow := false
	graphMock := &mockGraph{}
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.MatchedBy(func(opts model.FeedPostOptions) bool {
		return !opts.Published && opts.ScheduledAt == 0
	})).Return(&model.PublishResult{ID: "p1_102"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:     "p1",
		Message:    "draft",
		PublishNow: &publishNow,
	})
	require.NoError(t, err)
	graphMock.AssertExpectations(t)
}

func TestPublish_SinglePhoto(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("CreatePhotoPost", mock.Anything, "p1", "page-token", model.PhotoPostOptions{
		URL:       "https://img.example/a.jpg",
		Caption:   "one photo",
		Published: true,
	}).Return(&model.PublishResult{ID: "photo_1"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	res, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		Message:   "one photo",
		ImageURLs: []string{"https://img.example/a.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "photo_1", res.ID)
	graphMock.AssertExpectations(t)
}

func TestPublish_MultiAssetPreservesInputOrder(t *testing.T) {
	graphMock := &mockGraph{}
	// The first upload finishes last; attachment order must still follow
	// input order.
	graphMock.On("UploadPhotoURL", mock.Anything, "p1", "page-token", "https://img.example/1.jpg", false).
		Run(func(args mock.Arguments) { time.Sleep(30 * time.Millisecond) }).
		Return(&model.MediaHandle{ID: "fbid-1"}, nil)
	graphMock.On("UploadPhotoURL", mock.Anything, "p1", "page-token", "https://img.example/2.jpg", false).
		Return(&model.MediaHandle{ID: "fbid-2"}, nil)
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.MatchedBy(func(opts model.FeedPostOptions) bool {
		return len(opts.AttachedMedia) == 2 &&
			opts.AttachedMedia[0].ID == "fbid-1" &&
			opts.AttachedMedia[1].ID == "fbid-2" &&
			opts.Link == ""
	})).Return(&model.PublishResult{ID: "gallery_1"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	res, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		Message:   "gallery",
		Link:      "https://example.com/dropped",
		ImageURLs: []string{"https://img.example/1.jpg", "https://img.example/2.jpg"},
		Compose:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "gallery_1", res.ID)
	graphMock.AssertExpectations(t)
}

func TestPublish_MultiAssetFilesAfterURLs(t *testing.T) {
	asset := model.FileAsset{Name: "local.jpg", Mime: "image/jpeg", Data: []byte{1, 2}}

	graphMock := &mockGraph{}
	graphMock.On("UploadPhotoURL", mock.Anything, "p1", "page-token", "https://img.example/1.jpg", false).
		Return(&model.MediaHandle{ID: "fbid-url"}, nil)
	graphMock.On("UploadPhotoFile", mock.Anything, "p1", "page-token", asset, false).
		Return(&model.MediaHandle{ID: "fbid-file"}, nil)
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.MatchedBy(func(opts model.FeedPostOptions) bool {
		return len(opts.AttachedMedia) == 2 &&
			opts.AttachedMedia[0].ID == "fbid-url" &&
			opts.AttachedMedia[1].ID == "fbid-file"
	})).Return(&model.PublishResult{ID: "gallery_2"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://img.example/1.jpg"},
		Files:     []model.FileAsset{asset},
	})
	require.NoError(t, err)
	graphMock.AssertExpectations(t)
}

func TestPublish_MultiAssetNothingToPost(t *testing.T) {
	graphMock := &mockGraph{}
	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:  "p1",
		Compose: true,
	})
	assert.ErrorIs(t, err, ErrNothingToPost)
	graphMock.AssertNotCalled(t, "UploadPhotoURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	graphMock.AssertNotCalled(t, "CreateFeedPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_MultiAssetUploadFailureIsAllOrNone(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("UploadPhotoURL", mock.Anything, "p1", "page-token", "https://img.example/good.jpg", false).
		Return(&model.MediaHandle{ID: "fbid-good"}, nil).Maybe()
	graphMock.On("UploadPhotoURL", mock.Anything, "p1", "page-token", "https://img.example/bad.jpg", false).
		Return(nil, errors.New("boom"))

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://img.example/good.jpg", "https://img.example/bad.jpg"},
	})
	var uploadErr *UploadFailedError
	require.ErrorAs(t, err, &uploadErr)
	assert.Equal(t, "https://img.example/bad.jpg", uploadErr.Source)
	graphMock.AssertNotCalled(t, "CreateFeedPost", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_Video(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("CreateVideoPost", mock.Anything, "p1", "page-token", model.VideoPostOptions{
		FileURL:     "https://vid.example/v.mp4",
		Description: "watch this",
		Published:   true,
	}).Return(&model.PublishResult{ID: "video_1"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	res, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:   "p1",
		Message:  "watch this",
		VideoURL: "https://vid.example/v.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "video_1", res.ID)
	graphMock.AssertExpectations(t)
}

func TestPublish_NoContentIsValidationError(t *testing.T) {
	graphMock := &mockGraph{}
	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{PageID: "p1"})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPublishSecondary_RejectsScheduling(t *testing.T) {
	when := float64(time.Now().Unix() + 3600)
	graphMock := &mockGraph{}

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:      "p1",
		ImageURLs:   []string{"https://img.example/a.jpg"},
		ScheduledAt: &when,
		Target:      model.PlatformSecondary,
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	graphMock.AssertNotCalled(t, "LinkedInstagramAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishSecondary_NoLinkedAccount(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("LinkedInstagramAccount", mock.Anything, "p1", "page-token").Return(nil, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://img.example/a.jpg"},
		Target:    model.PlatformSecondary,
	})
	assert.ErrorIs(t, err, ErrNoLinkedAccount)
	graphMock.AssertNotCalled(t, "CreateMediaContainer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishSecondary_TwoPhaseSuccess(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("LinkedInstagramAccount", mock.Anything, "p1", "page-token").
		Return(&model.InstagramAccount{ID: "ig-9", Username: "brand"}, nil)
	graphMock.On("CreateMediaContainer", mock.Anything, "ig-9", "page-token", model.ContainerSpec{
		ImageURL: "https://img.example/a.jpg",
		Caption:  "ig caption",
	}).Return("container-1", nil)
	graphMock.On("PublishMediaContainer", mock.Anything, "ig-9", "page-token", "container-1").
		Return(&model.PublishResult{ID: "ig-post-1"}, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	res, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		Message:   "ig caption",
		ImageURLs: []string{"https://img.example/a.jpg"},
		Target:    model.PlatformSecondary,
	})
	require.NoError(t, err)
	assert.Equal(t, "ig-post-1", res.ID)
	assert.Equal(t, "container-1", res.CreationID)
	graphMock.AssertExpectations(t)
}

func TestPublishSecondary_ContainerFailureSkipsPublish(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("LinkedInstagramAccount", mock.Anything, "p1", "page-token").
		Return(&model.InstagramAccount{ID: "ig-9"}, nil)
	graphMock.On("CreateMediaContainer", mock.Anything, "ig-9", "page-token", mock.Anything).
		Return("", errors.New("media rejected"))

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://img.example/a.jpg"},
		Target:    model.PlatformSecondary,
	})
	var remoteErr *RemoteAPIError
	require.ErrorAs(t, err, &remoteErr)
	assert.Empty(t, remoteErr.CreationID)
	graphMock.AssertNotCalled(t, "PublishMediaContainer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishSecondary_PublishFailureKeepsCreationID(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("LinkedInstagramAccount", mock.Anything, "p1", "page-token").
		Return(&model.InstagramAccount{ID: "ig-9"}, nil)
	graphMock.On("CreateMediaContainer", mock.Anything, "ig-9", "page-token", mock.Anything).
		Return("container-7", nil)
	graphMock.On("PublishMediaContainer", mock.Anything, "ig-9", "page-token", "container-7").
		Return(nil, errors.New("publish rejected"))

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://img.example/a.jpg"},
		Target:    model.PlatformSecondary,
	})
	var remoteErr *RemoteAPIError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "container-7", remoteErr.CreationID)
}

func TestPublishSecondary_RequiresExactlyOneMedia(t *testing.T) {
	graphMock := &mockGraph{}
	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil)
	_, err := u.Publish(context.Background(), &model.PublishIntent{
		PageID:    "p1",
		ImageURLs: []string{"https://a.jpg", "https://b.jpg"},
		Target:    model.PlatformSecondary,
	})
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestGetPostInsights_CacheHit(t *testing.T) {
	cached := &model.PostInsights{PostID: "post-1", Metrics: map[string]int64{"post_impressions": 42}}

	graphMock := &mockGraph{}
	cacheMock := &mockInsightsCache{}
	cacheMock.On("Get", mock.Anything, "post-1").Return(cached, nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), []string{"post_impressions"}, WithInsightsCache(cacheMock))
	got, err := u.GetPostInsights(context.Background(), "p1", "post-1")
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	graphMock.AssertNotCalled(t, "PostInsights", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPostInsights_CacheMissFetchesAndStores(t *testing.T) {
	fresh := &model.PostInsights{PostID: "post-2", Metrics: map[string]int64{"post_impressions": 7}}

	graphMock := &mockGraph{}
	graphMock.On("PostInsights", mock.Anything, "post-2", "page-token", []string{"post_impressions"}).Return(fresh, nil)
	cacheMock := &mockInsightsCache{}
	cacheMock.On("Get", mock.Anything, "post-2").Return(nil, nil)
	cacheMock.On("Set", mock.Anything, fresh).Return(nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), []string{"post_impressions"}, WithInsightsCache(cacheMock))
	got, err := u.GetPostInsights(context.Background(), "p1", "post-2")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	cacheMock.AssertExpectations(t)
}

func TestPublish_EmitsEventAfterSuccess(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.Anything).
		Return(&model.PublishResult{ID: "p1_200"}, nil)

	events := &mockPublishEvents{}
	events.On("Emit", mock.Anything, mock.MatchedBy(func(e model.PublishEvent) bool {
		return e.PageID == "p1" && e.Platform == "facebook" && e.PostID == "p1_200" && e.Shape == string(model.ShapeText)
	})).Return(nil)

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil, WithPublishEvents(events))
	_, err := u.Publish(context.Background(), &model.PublishIntent{PageID: "p1", Message: "hi"})
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestPublish_EventFailureDoesNotFailPublish(t *testing.T) {
	graphMock := &mockGraph{}
	graphMock.On("CreateFeedPost", mock.Anything, "p1", "page-token", mock.Anything).
		Return(&model.PublishResult{ID: "p1_201"}, nil)

	events := &mockPublishEvents{}
	events.On("Emit", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	u := NewPublishUsecase(graphMock, registeredStore("p1"), nil, WithPublishEvents(events))
	res, err := u.Publish(context.Background(), &model.PublishIntent{PageID: "p1", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "p1_201", res.ID)
}

func TestListPosts_UnregisteredPageSkipsRemoteCall(t *testing.T) {
	graphMock := &mockGraph{}
	store := &mockCredentialStore{}
	store.On("Get", mock.Anything, "unknown").Return(nil, nil)

	u := NewPublishUsecase(graphMock, store, nil)
	_, err := u.ListPosts(context.Background(), "unknown", 10, "")
	assert.ErrorIs(t, err, ErrPageNotRegistered)
	graphMock.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEditPost_RequiresMessage(t *testing.T) {
	u := NewPublishUsecase(&mockGraph{}, registeredStore("p1"), nil)
	err := u.EditPost(context.Background(), "p1", "post-1", "")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
