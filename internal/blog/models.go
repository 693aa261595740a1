package blog

import (
	"strings"
	"time"

	dErrors "roamtable/pkg/domain-errors"
)

// Post is a blog entry as the backend returns it.
type Post struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Author      string     `json:"author,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// UpsertPostRequest is the admin write payload for creating or updating a
// post.
type UpsertPostRequest struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt,omitempty"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

func (r *UpsertPostRequest) Normalize() {
	if r == nil {
		return
	}
	r.Slug = strings.TrimSpace(strings.ToLower(r.Slug))
	r.Title = strings.TrimSpace(r.Title)
}

func (r *UpsertPostRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	r.Normalize()
	if r.Slug == "" {
		return dErrors.New(dErrors.CodeValidation, "slug is required")
	}
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.Content == "" {
		return dErrors.New(dErrors.CodeValidation, "content is required")
	}
	return nil
}
