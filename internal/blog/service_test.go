package blog

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"roamtable/internal/gateway"
	"roamtable/internal/gateway/mocks"
	dErrors "roamtable/pkg/domain-errors"
)

type BlogServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	service *Service
}

func (s *BlogServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.service = New(s.fetcher, nil)
}

func TestBlogServiceSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceSuite))
}

func (s *BlogServiceSuite) TestListPostsPaginated() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/blog/posts?page=2&per_page=10",
			gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{
			Data:   []byte(`[{"id":"post-1","slug":"street-food-bangkok","title":"Street Food in Bangkok"}]`),
			Status: http.StatusOK,
		})

	posts, err := s.service.ListPosts(context.Background(), 2, 10)

	s.Require().NoError(err)
	s.Require().Len(posts, 1)
	s.Equal("street-food-bangkok", posts[0].Slug)
}

func (s *BlogServiceSuite) TestGetPost() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/blog/posts/street-food-bangkok",
			gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{
			Data:   []byte(`{"id":"post-1","slug":"street-food-bangkok","title":"Street Food in Bangkok","content":"..."}`),
			Status: http.StatusOK,
		})

	post, err := s.service.GetPost(context.Background(), "street-food-bangkok")

	s.Require().NoError(err)
	s.Equal("Street Food in Bangkok", post.Title)
}

func (s *BlogServiceSuite) TestCreatePostValidation() {
	_, err := s.service.CreatePost(context.Background(), &UpsertPostRequest{Title: "No slug or content"})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.CreatePost(context.Background(), nil)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *BlogServiceSuite) TestCreatePost() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/admin/blog/posts", gomock.Cond(func(opts gateway.FetchOptions) bool {
			return opts.Method == http.MethodPost && !opts.SkipAuth
		})).
		Return(gateway.Result{
			Data:   []byte(`{"id":"post-2","slug":"esim-guide","title":"Choosing an eSIM"}`),
			Status: http.StatusCreated,
		})

	post, err := s.service.CreatePost(context.Background(), &UpsertPostRequest{
		Slug:    "eSIM-Guide",
		Title:   "Choosing an eSIM",
		Content: "body",
	})

	s.Require().NoError(err)
	s.Equal("post-2", post.ID)
}

func (s *BlogServiceSuite) TestDeletePostUnavailable() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/admin/blog/posts/post-1",
			gateway.FetchOptions{Method: http.MethodDelete}).
		Return(gateway.Result{Status: 0, Err: "connection refused"})

	err := s.service.DeletePost(context.Background(), "post-1")
	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}
