package graph

import (
	"context"
	"encoding/json"

	"pagecaster/domain/model"
)

type linkedAccountParams struct {
	Fields      string `url:"fields"`
	AccessToken string `url:"access_token"`
}

// LinkedInstagramAccount resolves the Instagram business account linked to a
// Page. A page without a linked account returns (nil, nil); callers decide
// how to report that.
func (c *Client) LinkedInstagramAccount(ctx context.Context, pageID, accessToken string) (*model.InstagramAccount, error) {
	vals, err := encode(linkedAccountParams{
		Fields:      "instagram_business_account{id,username}",
		AccessToken: accessToken,
	})
	if err != nil {
		return nil, err
	}
	var out struct {
		InstagramBusinessAccount *model.InstagramAccount `json:"instagram_business_account"`
	}
	if err := c.getJSON(ctx, pageID, vals, &out); err != nil {
		return nil, err
	}
	return out.InstagramBusinessAccount, nil
}

type containerParams struct {
	ImageURL    string `url:"image_url,omitempty"`
	VideoURL    string `url:"video_url,omitempty"`
	MediaType   string `url:"media_type,omitempty"`
	ShareToFeed *bool  `url:"share_to_feed,omitempty"`
	Caption     string `url:"caption,omitempty"`
	AccessToken string `url:"access_token"`
}

// CreateMediaContainer stages an unpublished media container on the linked
// account and returns its creation identifier.
func (c *Client) CreateMediaContainer(ctx context.Context, igUserID, accessToken string, spec model.ContainerSpec) (string, error) {
	p := containerParams{
		ImageURL:    spec.ImageURL,
		Caption:     spec.Caption,
		AccessToken: accessToken,
	}
	if spec.VideoURL != "" {
		p.VideoURL = spec.VideoURL
		p.MediaType = "VIDEO"
		share := spec.ShareToFeed
		p.ShareToFeed = &share
	}
	vals, err := encode(p)
	if err != nil {
		return "", err
	}
	var out idResponse
	if err := c.postForm(ctx, igUserID+"/media", vals, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

type publishContainerParams struct {
	CreationID  string `url:"creation_id"`
	AccessToken string `url:"access_token"`
}

// PublishMediaContainer publishes a previously created container by
// reference and returns the final post identifier.
func (c *Client) PublishMediaContainer(ctx context.Context, igUserID, accessToken, creationID string) (*model.PublishResult, error) {
	vals, err := encode(publishContainerParams{CreationID: creationID, AccessToken: accessToken})
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.postForm(ctx, igUserID+"/media_publish", vals, &raw); err != nil {
		return nil, err
	}
	return resultFromRaw(raw)
}
