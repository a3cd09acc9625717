package graph

import (
	"bytes"
	"context"
	"net/url"
	"strconv"

	"pagecaster/domain/model"
)

type photoURLParams struct {
	URL         string `url:"url"`
	Caption     string `url:"caption,omitempty"`
	Published   *bool  `url:"published,omitempty"`
	AccessToken string `url:"access_token"`
}

type idResponse struct {
	ID     string `json:"id"`
	PostID string `json:"post_id,omitempty"`
}

// UploadPhotoURL ingests a remote image by URL. With published=false the
// photo stays a hidden media object awaiting attachment.
func (c *Client) UploadPhotoURL(ctx context.Context, pageID, accessToken, imageURL string, published bool) (*model.MediaHandle, error) {
	vals, err := encode(photoURLParams{
		URL:         imageURL,
		Published:   &published,
		AccessToken: accessToken,
	})
	if err != nil {
		return nil, err
	}
	var out idResponse
	if err := c.postForm(ctx, pageID+"/photos", vals, &out); err != nil {
		return nil, err
	}
	return &model.MediaHandle{ID: out.ID}, nil
}

// UploadPhotoFile ingests raw bytes through the multipart endpoint, streaming
// the payload.
func (c *Client) UploadPhotoFile(ctx context.Context, pageID, accessToken string, asset model.FileAsset, published bool) (*model.MediaHandle, error) {
	fields := url.Values{}
	fields.Set("published", strconv.FormatBool(published))
	fields.Set("access_token", accessToken)
	var out idResponse
	if err := c.postMultipart(ctx, pageID+"/photos", fields, "source", asset.Name, asset.Mime, bytes.NewReader(asset.Data), &out); err != nil {
		return nil, err
	}
	return &model.MediaHandle{ID: out.ID}, nil
}
