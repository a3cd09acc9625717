package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pagecaster/domain/model"
)

type feedPostParams struct {
	Message              string `url:"message,omitempty"`
	Link                 string `url:"link,omitempty"`
	Published            *bool  `url:"published,omitempty"`
	ScheduledPublishTime int64  `url:"scheduled_publish_time,omitempty"`
	AccessToken          string `url:"access_token"`
}

// CreateFeedPost issues one create-post call against the page feed. Attached
// media handles are sent as an indexed media reference list.
func (c *Client) CreateFeedPost(ctx context.Context, pageID, accessToken string, opts model.FeedPostOptions) (*model.PublishResult, error) {
	published := opts.Published
	vals, err := encode(feedPostParams{
		Message:              opts.Message,
		Link:                 opts.Link,
		Published:            &published,
		ScheduledPublishTime: opts.ScheduledAt,
		AccessToken:          accessToken,
	})
	if err != nil {
		return nil, err
	}
	for i, h := range opts.AttachedMedia {
		ref, _ := json.Marshal(map[string]string{"media_fbid": h.ID})
		vals.Set(fmt.Sprintf("attached_media[%d]", i), string(ref))
	}
	var raw json.RawMessage
	if err := c.postForm(ctx, pageID+"/feed", vals, &raw); err != nil {
		return nil, err
	}
	return resultFromRaw(raw)
}

// CreatePhotoPost publishes a single photo by URL with an optional caption.
func (c *Client) CreatePhotoPost(ctx context.Context, pageID, accessToken string, opts model.PhotoPostOptions) (*model.PublishResult, error) {
	published := opts.Published
	vals, err := encode(photoURLParams{
		URL:         opts.URL,
		Caption:     opts.Caption,
		Published:   &published,
		AccessToken: accessToken,
	})
	if err != nil {
		return nil, err
	}
	if opts.ScheduledAt > 0 {
		vals.Set("scheduled_publish_time", strconv.FormatInt(opts.ScheduledAt, 10))
	}
	var raw json.RawMessage
	if err := c.postForm(ctx, pageID+"/photos", vals, &raw); err != nil {
		return nil, err
	}
	return resultFromRaw(raw)
}

type videoPostParams struct {
	FileURL              string `url:"file_url"`
	Description          string `url:"description,omitempty"`
	Published            *bool  `url:"published,omitempty"`
	ScheduledPublishTime int64  `url:"scheduled_publish_time,omitempty"`
	AccessToken          string `url:"access_token"`
}

// CreateVideoPost publishes a video by remote URL.
func (c *Client) CreateVideoPost(ctx context.Context, pageID, accessToken string, opts model.VideoPostOptions) (*model.PublishResult, error) {
	published := opts.Published
	vals, err := encode(videoPostParams{
		FileURL:              opts.FileURL,
		Description:          opts.Description,
		Published:            &published,
		ScheduledPublishTime: opts.ScheduledAt,
		AccessToken:          accessToken,
	})
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.postForm(ctx, pageID+"/videos", vals, &raw); err != nil {
		return nil, err
	}
	return resultFromRaw(raw)
}

// resultFromRaw extracts the post identifier while keeping the provider
// payload attached verbatim.
func resultFromRaw(raw json.RawMessage) (*model.PublishResult, error) {
	var ids idResponse
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("graph create-post response parse failed: %w", err)
	}
	id := ids.PostID
	if id == "" {
		id = ids.ID
	}
	return &model.PublishResult{ID: id, Raw: raw}, nil
}

const postListFields = "id,message,created_time,permalink_url,is_hidden,attachments"

type listPostsParams struct {
	Fields      string `url:"fields"`
	Limit       int    `url:"limit,omitempty"`
	After       string `url:"after,omitempty"`
	AccessToken string `url:"access_token"`
}

// ListPosts returns one page of the feed listing with cursors passed through.
func (c *Client) ListPosts(ctx context.Context, pageID, accessToken string, limit int, after string) (*model.PagePostList, error) {
	vals, err := encode(listPostsParams{
		Fields:      postListFields,
		Limit:       limit,
		After:       after,
		AccessToken: accessToken,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		Data   []model.PagePost `json:"data"`
		Paging struct {
			Cursors struct {
				Before string `json:"before"`
				After  string `json:"after"`
			} `json:"cursors"`
		} `json:"paging"`
	}
	if err := c.getJSON(ctx, pageID+"/posts", vals, &out); err != nil {
		return nil, err
	}
	return &model.PagePostList{
		Posts:  out.Data,
		After:  out.Paging.Cursors.After,
		Before: out.Paging.Cursors.Before,
	}, nil
}

type editPostParams struct {
	Message     string `url:"message"`
	AccessToken string `url:"access_token"`
}

// EditPost replaces the message of an existing post.
func (c *Client) EditPost(ctx context.Context, postID, accessToken, message string) error {
	vals, err := encode(editPostParams{Message: message, AccessToken: accessToken})
	if err != nil {
		return err
	}
	return c.postForm(ctx, postID, vals, nil)
}

type hidePostParams struct {
	IsHidden    bool   `url:"is_hidden"`
	AccessToken string `url:"access_token"`
}

// SetPostHidden toggles the hidden flag of a post.
func (c *Client) SetPostHidden(ctx context.Context, postID, accessToken string, hidden bool) error {
	vals, err := encode(hidePostParams{IsHidden: hidden, AccessToken: accessToken})
	if err != nil {
		return err
	}
	return c.postForm(ctx, postID, vals, nil)
}

type tokenParams struct {
	AccessToken string `url:"access_token"`
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, postID, accessToken string) error {
	vals, err := encode(tokenParams{AccessToken: accessToken})
	if err != nil {
		return err
	}
	return c.deleteJSON(ctx, postID, vals, nil)
}

type insightsParams struct {
	Metric      string `url:"metric"`
	AccessToken string `url:"access_token"`
}

// PostInsights fetches the requested metrics for a post and merges them into
// a single name-to-value map. Non-scalar metric values are skipped.
func (c *Client) PostInsights(ctx context.Context, postID, accessToken string, metrics []string) (*model.PostInsights, error) {
	vals, err := encode(insightsParams{Metric: strings.Join(metrics, ","), AccessToken: accessToken})
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.getJSON(ctx, postID+"/insights", vals, &raw); err != nil {
		return nil, err
	}
	var out struct {
		Data []struct {
			Name   string `json:"name"`
			Values []struct {
				Value interface{} `json:"value"`
			} `json:"values"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("graph insights response parse failed: %w", err)
	}
	merged := make(map[string]int64, len(out.Data))
	for _, metric := range out.Data {
		if len(metric.Values) == 0 {
			continue
		}
		if v, ok := metric.Values[0].Value.(float64); ok {
			merged[metric.Name] = int64(v)
		}
	}
	return &model.PostInsights{PostID: postID, Metrics: merged, Raw: raw}, nil
}

// ListUserPages lists the pages available to the authorized identity using
// the session user token.
func (c *Client) ListUserPages(ctx context.Context, userAccessToken string) ([]model.FacebookPage, error) {
	vals, err := encode(tokenParams{AccessToken: userAccessToken})
	if err != nil {
		return nil, err
	}
	var out struct {
		Data []model.FacebookPage `json:"data"`
	}
	if err := c.getJSON(ctx, "me/accounts", vals, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
