package usecase

import (
	"context"
	"time"

	"pagecaster/domain/model"
	"pagecaster/domain/repository"
)

type IPageUsecase interface {
	ListAvailablePages(ctx context.Context, userAccessToken string) ([]model.FacebookPage, error)
	SavePage(ctx context.Context, pageID, pageName, accessToken, ownerUserID string) error
	ListRegisteredPages(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error)
	RemovePage(ctx context.Context, pageID string) error
}

type pageUsecase struct {
	graph       repository.IGraph
	credentials repository.IPageCredential
}

func NewPageUsecase(graph repository.IGraph, credentials repository.IPageCredential) IPageUsecase {
	return &pageUsecase{graph: graph, credentials: credentials}
}

func (u *pageUsecase) ListAvailablePages(ctx context.Context, userAccessToken string) ([]model.FacebookPage, error) {
	if userAccessToken == "" {
		return nil, ErrUnauthorized
	}
	pages, err := u.graph.ListUserPages(ctx, userAccessToken)
	if err != nil {
		return nil, &RemoteAPIError{Err: err}
	}
	return pages, nil
}

func (u *pageUsecase) SavePage(ctx context.Context, pageID, pageName, accessToken, ownerUserID string) error {
	if pageID == "" {
		return &ValidationError{Reason: "page_id is required"}
	}
	if accessToken == "" {
		return &ValidationError{Reason: "access_token is required"}
	}
	now := time.Now().UTC()
	return u.credentials.Upsert(ctx, &model.PageCredential{
		PageID:      pageID,
		PageName:    pageName,
		AccessToken: accessToken,
		OwnerUserID: ownerUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *pageUsecase) ListRegisteredPages(ctx context.Context, ownerUserID string) ([]*model.PageCredential, error) {
	return u.credentials.List(ctx, ownerUserID)
}

func (u *pageUsecase) RemovePage(ctx context.Context, pageID string) error {
	if pageID == "" {
		return &ValidationError{Reason: "page_id is required"}
	}
	return u.credentials.Delete(ctx, pageID)
}
