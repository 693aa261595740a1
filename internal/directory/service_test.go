package directory

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

type DirectoryServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	service *Service
}

func (s *DirectoryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.service = New(s.fetcher, nil)
}

func TestDirectoryServiceSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceSuite))
}

func (s *DirectoryServiceSuite) TestListRestaurantsPublicRead() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/restaurants?cuisine=thai&location_id=loc-1",
			gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{
			Data:   []byte(`[{"id":"r-1","name":"Baan Thai","slug":"baan-thai","location_id":"loc-1"}]`),
			Status: http.StatusOK,
		})

	restaurants, err := s.service.ListRestaurants(context.Background(), RestaurantFilter{
		LocationID: "loc-1",
		Cuisine:    "thai",
	})

	s.Require().NoError(err)
	s.Require().Len(restaurants, 1)
	s.Equal("baan-thai", restaurants[0].Slug)
}

func (s *DirectoryServiceSuite) TestListRestaurantsEmptyBody() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/restaurants", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Status: http.StatusOK})

	restaurants, err := s.service.ListRestaurants(context.Background(), RestaurantFilter{})

	s.Require().NoError(err)
	s.Empty(restaurants)
}

func (s *DirectoryServiceSuite) TestGetRestaurantNotFound() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/restaurants/nope", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Status: http.StatusNotFound, Err: "restaurant not found"})

	_, err := s.service.GetRestaurant(context.Background(), "nope")

	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *DirectoryServiceSuite) TestGetRestaurantRequiresSlug() {
	_, err := s.service.GetRestaurant(context.Background(), "")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *DirectoryServiceSuite) TestCreateRestaurantAuthenticatedWrite() {
	req := &UpsertRestaurantRequest{
		Name:       "  Baan Thai  ",
		Slug:       "Baan-Thai",
		LocationID: "loc-1",
	}

	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/admin/restaurants", gomock.Cond(func(opts gateway.FetchOptions) bool {
			return opts.Method == http.MethodPost && !opts.SkipAuth
		})).
		Return(gateway.Result{
			Data:   []byte(`{"id":"r-1","name":"Baan Thai","slug":"baan-thai","location_id":"loc-1"}`),
			Status: http.StatusCreated,
		})

	restaurant, err := s.service.CreateRestaurant(context.Background(), req)

	s.Require().NoError(err)
	s.Equal("r-1", restaurant.ID)
	// Normalized before sending.
	s.Equal("Baan Thai", req.Name)
	s.Equal("baan-thai", req.Slug)
}

func (s *DirectoryServiceSuite) TestCreateRestaurantValidation() {
	_, err := s.service.CreateRestaurant(context.Background(), &UpsertRestaurantRequest{Name: "No Slug"})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *DirectoryServiceSuite) TestCreateRestaurantSessionExpired() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/admin/restaurants", gomock.Any()).
		Return(gateway.Result{Status: http.StatusForbidden, Err: "Forbidden", SessionExpired: true})

	_, err := s.service.CreateRestaurant(context.Background(), &UpsertRestaurantRequest{
		Name:       "Baan Thai",
		Slug:       "baan-thai",
		LocationID: "loc-1",
	})

	s.True(dErrors.HasCode(err, dErrors.CodeSessionExpired))
}

func (s *DirectoryServiceSuite) TestDeleteRestaurant() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/admin/restaurants/r-1",
			gateway.FetchOptions{Method: http.MethodDelete}).
		Return(gateway.Result{Status: http.StatusNoContent})

	s.NoError(s.service.DeleteRestaurant(context.Background(), "r-1"))
}

func (s *DirectoryServiceSuite) TestListLocations() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/locations", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{
			Data:   []byte(`[{"id":"loc-1","name":"Bangkok","slug":"bangkok","country":"TH"}]`),
			Status: http.StatusOK,
		})

	locations, err := s.service.ListLocations(context.Background())

	s.Require().NoError(err)
	s.Require().Len(locations, 1)
	s.Equal("TH", locations[0].Country)
}
