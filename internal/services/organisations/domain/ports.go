package domain

import "context"

// ServicePort defines the service contract for organisations
type ServicePort interface {
	Search(ctx context.Context, query string, page, size int) (SearchResult, error)
	Get(ctx context.Context, id string) (Organisation, error)
}
