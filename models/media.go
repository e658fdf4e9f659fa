package models

// MediaUploadResult carries the public URLs of an uploaded media file.
// Clients pass MediaURL back as mediaUrl when creating an issue.
type MediaUploadResult struct {
	MediaURL     string `json:"mediaUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}
