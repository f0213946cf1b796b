package domain

// ContentType classifies what a saved link points at.
// The set is closed; unknown values are rejected at the API boundary.
type ContentType string

// The six supported content types.
const (
	ContentTypeArticle  ContentType = "article"
	ContentTypeVideo    ContentType = "video"
	ContentTypeTweet    ContentType = "tweet"
	ContentTypeDocument ContentType = "document"
	ContentTypeImage    ContentType = "image"
	ContentTypeLink     ContentType = "link"
)

// ContentTypeValues returns the supported content types as a display string
// for validation error messages.
func ContentTypeValues() string {
	return "article video tweet document image link"
}

// IsValid reports whether t is one of the supported content types.
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeArticle, ContentTypeVideo, ContentTypeTweet,
		ContentTypeDocument, ContentTypeImage, ContentTypeLink:
		return true
	}
	return false
}

// Content is a user-owned record referencing an external link, classified by
// type and optionally tagged. Tags are opaque references into the tag
// vocabulary; they are not verified against the tag store before insert.
type Content struct {
	Record
	Link   string      `json:"link"`
	Type   ContentType `json:"type"`
	Title  string      `json:"title"`
	Tags   []string    `json:"tags"`
	UserID string      `json:"user_id"`
}
