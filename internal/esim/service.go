// Package esim exposes the travel-SIM provider and package catalog. All
// reads are public. FetchCatalog issues the two listings as independent
// concurrent requests; they share nothing but the read-only token lookup.
package esim

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"roamtable/internal/gateway"
	dErrors "roamtable/pkg/domain-errors"
)

type Service struct {
	fetch gateway.Fetcher
	log   *slog.Logger
}

// New creates an esim service over the given fetcher.
func New(fetch gateway.Fetcher, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{fetch: fetch, log: log}
}

// ListProviders returns all travel-SIM operators.
func (s *Service) ListProviders(ctx context.Context) ([]Provider, error) {
	res := s.fetch.FetchWithAuth(ctx, "/sim/providers", gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var providers []Provider
	if res.Data == nil {
		return providers, nil
	}
	if err := res.Decode(&providers); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode providers")
	}
	return providers, nil
}

// ListPackages returns plans matching the filter.
func (s *Service) ListPackages(ctx context.Context, filter PackageFilter) ([]Package, error) {
	path := "/sim/packages"
	if q := filter.query(); len(q) > 0 {
		path += "?" + q.Encode()
	}

	res := s.fetch.FetchWithAuth(ctx, path, gateway.FetchOptions{SkipAuth: true})
	if err := gateway.AsError(res); err != nil {
		return nil, err
	}

	var packages []Package
	if res.Data == nil {
		return packages, nil
	}
	if err := res.Decode(&packages); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "decode packages")
	}
	return packages, nil
}

// FetchCatalog loads providers and packages in parallel. Either failure
// fails the whole catalog; the caller retries by calling again.
func (s *Service) FetchCatalog(ctx context.Context) (*Catalog, error) {
	var catalog Catalog

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		providers, err := s.ListProviders(ctx)
		if err != nil {
			return err
		}
		catalog.Providers = providers
		return nil
	})
	g.Go(func() error {
		packages, err := s.ListPackages(ctx, PackageFilter{})
		if err != nil {
			return err
		}
		catalog.Packages = packages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &catalog, nil
}
