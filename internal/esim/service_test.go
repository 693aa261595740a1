package esim

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

type ESIMServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fetcher *mocks.MockFetcher
	service *Service
}

func (s *ESIMServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fetcher = mocks.NewMockFetcher(s.ctrl)
	s.service = New(s.fetcher, nil)
}

func TestESIMServiceSuite(t *testing.T) {
	suite.Run(t, new(ESIMServiceSuite))
}

const (
	providersBody = `[{"id":"p-1","name":"Globetrotter Mobile","countries":["TH","VN"]}]`
	packagesBody  = `[{"id":"pkg-1","provider_id":"p-1","name":"Asia 10GB","data_amount_mb":10240,"validity_days":30,"price_cents":1999,"currency":"USD"}]`
)

func (s *ESIMServiceSuite) TestListProviders() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/providers", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Data: []byte(providersBody), Status: http.StatusOK})

	providers, err := s.service.ListProviders(context.Background())

	s.Require().NoError(err)
	s.Require().Len(providers, 1)
	s.Equal("Globetrotter Mobile", providers[0].Name)
}

func (s *ESIMServiceSuite) TestListPackagesWithFilter() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/packages?country=TH&provider_id=p-1",
			gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Data: []byte(packagesBody), Status: http.StatusOK})

	packages, err := s.service.ListPackages(context.Background(), PackageFilter{
		ProviderID: "p-1",
		Country:    "TH",
	})

	s.Require().NoError(err)
	s.Require().Len(packages, 1)
	s.Equal(10240, packages[0].DataAmountMB)
}

func (s *ESIMServiceSuite) TestFetchCatalogParallel() {
	// Both listings are independent requests; order is not guaranteed.
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/providers", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Data: []byte(providersBody), Status: http.StatusOK})
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/packages", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Data: []byte(packagesBody), Status: http.StatusOK})

	catalog, err := s.service.FetchCatalog(context.Background())

	s.Require().NoError(err)
	s.Len(catalog.Providers, 1)
	s.Len(catalog.Packages, 1)
}

func (s *ESIMServiceSuite) TestFetchCatalogPartialFailure() {
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/providers", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Data: []byte(providersBody), Status: http.StatusOK}).
		MaxTimes(1)
	s.fetcher.EXPECT().
		FetchWithAuth(gomock.Any(), "/sim/packages", gateway.FetchOptions{SkipAuth: true}).
		Return(gateway.Result{Status: 0, Err: "connection refused"})

	_, err := s.service.FetchCatalog(context.Background())

	s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
}
