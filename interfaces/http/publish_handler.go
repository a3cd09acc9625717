package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"pagecaster/domain/dto"
	"pagecaster/domain/model"
	"pagecaster/infrastructure/clients/graph"
	"pagecaster/infrastructure/logger"
	"pagecaster/usecase"

	"github.com/gin-gonic/gin"
)

const ErrorUnmarshal = "Error while unmarshal"

type IPublishHandler interface {
	Publish(c *gin.Context)
	Compose(c *gin.Context)
	ListPosts(c *gin.Context)
	EditPost(c *gin.Context)
	HidePost(c *gin.Context)
	DeletePost(c *gin.Context)
	PostInsights(c *gin.Context)
}

type PublishHandler struct {
	publishUsecase usecase.IPublishUsecase
}

func NewPublishHandler(publishUsecase usecase.IPublishUsecase) IPublishHandler {
	return &PublishHandler{publishUsecase: publishUsecase}
}

func (handler *PublishHandler) Publish(c *gin.Context) {
	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	intent := &model.PublishIntent{
		PageID:      req.PageID,
		Message:     req.Message,
		Link:        req.Link,
		ImageURLs:   req.ImageURLs,
		VideoURL:    req.VideoURL,
		Compose:     req.Compose,
		ScheduledAt: req.ScheduledAt,
		PublishNow:  req.PublishNow,
		Target:      model.PlatformPrimary,
		ShareToFeed: req.ShareToFeed,
	}
	if req.Target == "secondary" {
		intent.Target = model.PlatformSecondary
	}

	result, err := handler.publishUsecase.Publish(c.Request.Context(), intent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Compose accepts a multipart gallery publish with raw image files alongside
// optional image URLs.
func (handler *PublishHandler) Compose(c *gin.Context) {
	var form dto.ComposeForm
	if err := c.ShouldBind(&form); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	var files []model.FileAsset
	for _, fh := range multipartForm.File["images"] {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cannot open file %s", fh.Filename)})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cannot read file %s", fh.Filename)})
			return
		}
		files = append(files, model.FileAsset{
			Name: fh.Filename,
			Mime: fh.Header.Get("Content-Type"),
			Data: data,
		})
	}

	intent := &model.PublishIntent{
		PageID:      form.PageID,
		Message:     form.Message,
		Link:        form.Link,
		ImageURLs:   form.ImageURLs,
		Files:       files,
		Compose:     true,
		ScheduledAt: form.ScheduledAt,
		PublishNow:  form.PublishNow,
		Target:      model.PlatformPrimary,
	}

	result, err := handler.publishUsecase.Publish(c.Request.Context(), intent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (handler *PublishHandler) ListPosts(c *gin.Context) {
	var req dto.ListPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	list, err := handler.publishUsecase.ListPosts(c.Request.Context(), c.Param("pageId"), req.Limit, req.After)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (handler *PublishHandler) EditPost(c *gin.Context) {
	var req dto.EditPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := handler.publishUsecase.EditPost(c.Request.Context(), c.Param("pageId"), c.Param("postId"), req.Message); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (handler *PublishHandler) HidePost(c *gin.Context) {
	var req dto.HidePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := handler.publishUsecase.SetPostHidden(c.Request.Context(), c.Param("pageId"), c.Param("postId"), req.Hidden); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (handler *PublishHandler) DeletePost(c *gin.Context) {
	if err := handler.publishUsecase.DeletePost(c.Request.Context(), c.Param("pageId"), c.Param("postId")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (handler *PublishHandler) PostInsights(c *gin.Context) {
	insights, err := handler.publishUsecase.GetPostInsights(c.Request.Context(), c.Param("pageId"), c.Param("postId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// writeError maps the publish error taxonomy onto HTTP responses. Remote
// provider failures pass the provider payload through unmodified so callers
// see the original error body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPageNotRegistered):
		c.JSON(http.StatusNotFound, gin.H{"error": "page_not_registered"})
		return
	case errors.Is(err, usecase.ErrNoLinkedAccount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no_linked_instagram_account"})
		return
	case errors.Is(err, usecase.ErrNothingToPost):
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing_to_post"})
		return
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"})
		return
	}

	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		return
	}
	var scheduleErr *usecase.InvalidScheduleError
	if errors.As(err, &scheduleErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_schedule", "reason": string(scheduleErr.Reason)})
		return
	}

	var uploadErr *usecase.UploadFailedError
	if errors.As(err, &uploadErr) {
		status, payload := providerPayload(uploadErr.Err)
		c.JSON(status, gin.H{"error": "upload_failed", "source": uploadErr.Source, "detail": payload})
		return
	}
	var remoteErr *usecase.RemoteAPIError
	if errors.As(err, &remoteErr) {
		status, payload := providerPayload(remoteErr.Err)
		body := gin.H{"error": "remote_api_error", "detail": payload}
		if remoteErr.CreationID != "" {
			body["creation_id"] = remoteErr.CreationID
		}
		c.JSON(status, body)
		return
	}

	logger.GetLogger().WithField("error", err).Error("Unhandled publish error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}

// providerPayload extracts the raw provider body and status when the wrapped
// error is a remote API failure.
func providerPayload(err error) (int, interface{}) {
	var apiErr *graph.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode, json.RawMessage(apiErr.Raw)
	}
	return http.StatusBadGateway, err.Error()
}
