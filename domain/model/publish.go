package model

// TargetPlatform selects the destination of a publish intent.
type TargetPlatform string

const (
	PlatformPrimary   TargetPlatform = "primary"   // the Facebook Page itself
	PlatformSecondary TargetPlatform = "secondary" // the linked Instagram account
)

// PublishShape is the call pattern derived from a PublishIntent.
type PublishShape string

const (
	ShapeText        PublishShape = "text"
	ShapeSinglePhoto PublishShape = "single_photo"
	ShapeMultiAsset  PublishShape = "multi_asset"
	ShapeVideo       PublishShape = "video"
)

// FileAsset is an in-memory upload received from the client.
type FileAsset struct {
	Name string
	Mime string
	Data []byte
}

// PublishIntent is the normalized input to one orchestration run. It is built
// per request and discarded after the run.
type PublishIntent struct {
	PageID    string
	Message   string
	Link      string
	ImageURLs []string
	Files     []FileAsset
	VideoURL  string
	// Compose forces the multi-asset path even for a single image so galleries
	// keep their upload-then-attach semantics.
	Compose bool
	// ScheduledAt is a unix-seconds timestamp; nil means not scheduled.
	ScheduledAt *float64
	// PublishNow distinguishes "explicitly false" (draft) from absent (publish).
	PublishNow *bool
	Target     TargetPlatform
	// ShareToFeed only applies to secondary video publishes.
	ShareToFeed bool
}

// WantsDraft reports whether the intent asked for an unpublished post without
// a schedule.
func (i *PublishIntent) WantsDraft() bool {
	return i.ScheduledAt == nil && i.PublishNow != nil && !*i.PublishNow
}
