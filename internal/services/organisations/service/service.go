// Package service contains organisation lookup workflows
package service

import (
	"context"

	"orggate/internal/adapters/downstream"
	"orggate/internal/core/normalize"
	"orggate/internal/core/outcome"
	perrs "orggate/internal/platform/errors"
	"orggate/internal/services/organisations/domain"
)

// minQueryLen is the shortest search term accepted before any downstream call
const minQueryLen = 3

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service defines the service contract for organisations
type Service interface{ domain.ServicePort }

// Gateway is the slice of the organisation downstream API this service needs
type Gateway interface {
	Search(ctx context.Context, query string, page, size int) (downstream.Outcome, error)
	Get(ctx context.Context, id string) (downstream.Outcome, error)
}

// Svc implements the Service interface
type Svc struct {
	gw   Gateway
	norm *normalize.Normalizer
}

// New creates a new organisations service
func New(gw Gateway) *Svc {
	if gw == nil {
		panic("organisations.Service requires a non nil Gateway")
	}
	return &Svc{gw: gw, norm: normalize.New()}
}

// Search normalizes the term, validates it locally and passes the downstream page through
func (s *Svc) Search(ctx context.Context, query string, page, size int) (domain.SearchResult, error) {
	var zero domain.SearchResult

	q := s.norm.Normalize(query)
	if len([]rune(q)) < minQueryLen {
		return zero, perrs.WithField(
			perrs.Validationf("query must be at least %d characters", minQueryLen), "query")
	}
	if page < 1 {
		page = defaultPage
	}
	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	out, err := s.gw.Search(ctx, q, page, size)
	if err != nil {
		return zero, outcome.Transport("organisations.search", err)
	}
	if err := outcome.Classify("organisations.search", out.Status, out.Body); err != nil {
		return zero, err
	}

	pageOut, err := downstream.DecodeJSON[downstream.SearchPage]("organisations", out)
	if err != nil {
		return zero, err
	}

	res := domain.SearchResult{
		Items:       make([]domain.Organisation, 0, len(pageOut.Items)),
		CurrentPage: pageOut.CurrentPage,
		PageSize:    pageOut.PageSize,
		TotalItems:  pageOut.TotalItems,
	}
	for _, o := range pageOut.Items {
		res.Items = append(res.Items, toDomain(o))
	}
	return res, nil
}

// Get fetches one organisation by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Organisation, error) {
	var zero domain.Organisation

	if id == "" {
		return zero, perrs.WithField(perrs.Validationf("organisation id is required"), "id")
	}

	out, err := s.gw.Get(ctx, id)
	if err != nil {
		return zero, outcome.Transport("organisations.get", err)
	}
	if err := outcome.Classify("organisations.get", out.Status, out.Body); err != nil {
		return zero, err
	}

	org, err := downstream.DecodeJSON[downstream.Organisation]("organisations", out)
	if err != nil {
		return zero, err
	}
	return toDomain(org), nil
}

func toDomain(o downstream.Organisation) domain.Organisation {
	return domain.Organisation{
		ID:              o.ID,
		Name:            o.Name,
		ReferenceNumber: o.ReferenceNumber,
		Nations:         o.Nations,
	}
}
