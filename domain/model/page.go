package model

import (
	"encoding/json"
	"time"
)

// PageCredential maps a managed Facebook Page to its durable page access token.
// The token is only ever held for the duration of a single request and must
// never be logged or echoed back to a client.
type PageCredential struct {
	PageID      string    `json:"page_id" bson:"pageId"`
	PageName    string    `json:"page_name" bson:"pageName"`
	AccessToken string    `json:"-" bson:"accessToken"`
	OwnerUserID string    `json:"owner_user_id" bson:"ownerUserId"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt"`
}

// FacebookPage is one entry of the me/accounts listing during page selection.
type FacebookPage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	AccessToken string `json:"access_token"`
}

// MediaHandle references an unpublished uploaded asset awaiting attachment.
type MediaHandle struct {
	ID string `json:"id"`
}

// PublishResult is the normalized outcome of one publish orchestration.
// Raw carries the provider payload through unmodified.
type PublishResult struct {
	ID string `json:"id"`
	// CreationID is set for two-phase publishes so the container id stays
	// visible next to the final post id.
	CreationID string          `json:"creation_id,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

// InstagramAccount is the business account linked to a Page.
type InstagramAccount struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

// InstagramPublishResult reports both phases of a container publish. CreationID
// is kept even when the publish phase fails so an orphaned container stays
// diagnosable.
type InstagramPublishResult struct {
	CreationID  string `json:"creation_id"`
	PublishedID string `json:"id"`
}

// PagePost is one entry of a Page feed listing.
type PagePost struct {
	ID           string          `json:"id"`
	Message      string          `json:"message,omitempty"`
	CreatedTime  string          `json:"created_time,omitempty"`
	PermalinkURL string          `json:"permalink_url,omitempty"`
	IsHidden     bool            `json:"is_hidden"`
	Attachments  json.RawMessage `json:"attachments,omitempty"`
}

// PagePostList is a paginated feed listing with the cursors passed through.
type PagePostList struct {
	Posts  []PagePost `json:"posts"`
	After  string     `json:"after,omitempty"`
	Before string     `json:"before,omitempty"`
}

// PostInsights merges the insight metrics of a single post.
type PostInsights struct {
	PostID  string           `json:"post_id"`
	Metrics map[string]int64 `json:"metrics"`
	Raw     json.RawMessage  `json:"raw,omitempty"`
}

// PublishEvent is emitted best-effort after a successful publish.
type PublishEvent struct {
	PageID     string    `json:"page_id"`
	Platform   string    `json:"platform"`
	PostID     string    `json:"post_id"`
	Shape      string    `json:"shape"`
	Scheduled  bool      `json:"scheduled"`
	OccurredAt time.Time `json:"occurred_at"`
}
