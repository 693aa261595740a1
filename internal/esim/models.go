package esim

import (
	"net/url"
	"strconv"
)

// Provider is a travel-SIM operator in the catalog.
type Provider struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LogoURL   string   `json:"logo_url,omitempty"`
	Countries []string `json:"countries,omitempty"`
}

// Package is a purchasable eSIM data plan.
type Package struct {
	ID           string   `json:"id"`
	ProviderID   string   `json:"provider_id"`
	Name         string   `json:"name"`
	DataAmountMB int      `json:"data_amount_mb"`
	ValidityDays int      `json:"validity_days"`
	PriceCents   int      `json:"price_cents"`
	Currency     string   `json:"currency"`
	Countries    []string `json:"countries,omitempty"`
}

// Catalog bundles the provider and package listings a storefront page
// renders together.
type Catalog struct {
	Providers []Provider
	Packages  []Package
}

// PackageFilter narrows a package listing. Zero value lists everything.
type PackageFilter struct {
	ProviderID string
	Country    string
	Page       int
	PerPage    int
}

func (f PackageFilter) query() url.Values {
	q := url.Values{}
	if f.ProviderID != "" {
		q.Set("provider_id", f.ProviderID)
	}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}
