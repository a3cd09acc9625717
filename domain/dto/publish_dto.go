package dto

// Res is the generic response envelope used by middleware failures.
type Res struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
}

// PublishRequest is the JSON body for the publish endpoints. File assets
// arrive separately as multipart parts on the compose endpoint.
type PublishRequest struct {
	PageID      string   `json:"page_id" binding:"required"`
	Message     string   `json:"message,omitempty"`
	Link        string   `json:"link,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	VideoURL    string   `json:"video_url,omitempty"`
	Compose     bool     `json:"compose,omitempty"`
	ScheduledAt *float64 `json:"scheduled_at,omitempty"`
	PublishNow  *bool    `json:"publish_now,omitempty"`
	Target      string   `json:"target,omitempty"` // primary (default) | secondary
	ShareToFeed bool     `json:"share_to_feed,omitempty"`
}

// ComposeForm is the multipart form for gallery publishes with raw files.
type ComposeForm struct {
	PageID      string   `form:"page_id" binding:"required"`
	Message     string   `form:"message"`
	Link        string   `form:"link"`
	ImageURLs   []string `form:"image_urls"`
	ScheduledAt *float64 `form:"scheduled_at"`
	PublishNow  *bool    `form:"publish_now"`
}

// EditPostRequest updates the message of an existing post.
type EditPostRequest struct {
	Message string `json:"message" binding:"required"`
}

// HidePostRequest toggles the hidden flag of a post.
type HidePostRequest struct {
	Hidden bool `json:"hidden"`
}

// ListPostsRequest paginates a page feed listing.
type ListPostsRequest struct {
	Limit int    `form:"limit"`
	After string `form:"after"`
}

// SavePageRequest registers a selected page and its page token.
type SavePageRequest struct {
	PageID      string `json:"page_id" binding:"required"`
	PageName    string `json:"page_name"`
	AccessToken string `json:"access_token" binding:"required"`
}
