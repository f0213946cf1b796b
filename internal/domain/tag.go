package domain

import "strings"

// Tag is a shared vocabulary entry for classifying content.
// Tags have no ownership model and no HTTP creation path; the seed command
// populates them.
type Tag struct {
	Record
	Title string `json:"title"`
}

// NormalizeTagTitle canonicalizes a tag title for storage and uniqueness checks.
func NormalizeTagTitle(title string) string {
	return strings.TrimSpace(title)
}
