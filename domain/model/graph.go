package model

// FeedPostOptions shapes a create-post call against a Page feed.
type FeedPostOptions struct {
	Message       string
	Link          string
	AttachedMedia []MediaHandle
	// ScheduledAt is a validated unix timestamp; zero means no schedule.
	ScheduledAt int64
	Published   bool
}

// PhotoPostOptions shapes a single-photo create-post call.
type PhotoPostOptions struct {
	URL         string
	Caption     string
	ScheduledAt int64
	Published   bool
}

// VideoPostOptions shapes a video create-post call.
type VideoPostOptions struct {
	FileURL     string
	Description string
	ScheduledAt int64
	Published   bool
}

// ContainerSpec describes an Instagram media container. Exactly one of
// ImageURL or VideoURL is set.
type ContainerSpec struct {
	ImageURL    string
	VideoURL    string
	Caption     string
	ShareToFeed bool
}
