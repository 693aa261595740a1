// Package blog exposes the content side of the platform: public post reads
// and admin-only writes.
package blog

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"roamtable/internal/gateway"
	dErrors "roamtable/pkg/domain-errors"
)

type Service struct {
	fetch gateway.Fetcher
	log   *slog.Logger
}

// New creates a blog service over the given fetcher.
func New(fetch gateway.Fetcher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{fetch: fetch, log: log}
}

// ListPosts returns published posts, newest first.
func (s *Service) ListPosts(ctx context.Context, page, perPage int) ([]Post, error) {
	path := "/blog/posts"
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	res := s.fetch.FetchWithAuth(ctx, path, gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var posts []Post
	if res.Data == nil {
		return posts, nil
	}
	if err := res.Decode(&posts); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode posts")
	}
	return posts, nil
}

// GetPost returns one post by slug.
func (s *Service) GetPost(ctx context.Context, slug string) (*Post, error) {
	if slug == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "slug is required")
	}

	res := s.fetch.FetchWithAuth(ctx, "/blog/posts/"+slug, gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var post Post
	if err := res.Decode(&post); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode post")
	}
	return &post, nil
}

// CreatePost publishes a new post. Admin only.
func (s *Service) CreatePost(ctx context.Context, req *UpsertPostRequest) (*Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/blog/posts", gateway.FetchOptions{
		Method: http.MethodPost,
		Body:   req,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var post Post
	if err := res.Decode(&post); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode post")
	}
	s.log.InfoContext(ctx, "post created", "slug", post.Slug)
	return &post, nil
}

// UpdatePost replaces a post. Admin only.
func (s *Service) UpdatePost(ctx context.Context, id string, req *UpsertPostRequest) (*Post, error) {
	if id == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/blog/posts/"+id, gateway.FetchOptions{
		Method: http.MethodPut,
		Body:   req,
	})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var post Post
	if err := res.Decode(&post); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode post")
	}
	return &post, nil
}

// DeletePost removes a post. Admin only.
func (s *Service) DeletePost(ctx context.Context, id string) error {
	if id == "" {
		return dErrors.New(dErrors.CodeValidation, "id is required")
	}

	res := s.fetch.FetchWithAuth(ctx, "/admin/blog/posts/"+id, gateway.FetchOptions{
		Method: http.MethodDelete,
	})
	return gateway.AsError(res)
}
