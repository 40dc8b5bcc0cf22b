package module

import (
	"context"

	orgsdom "orggate/internal/services/organisations/domain"
	orgssvc "orggate/internal/services/organisations/service"
)

// Ports carries the collaborators the organisations module is constructed from
type Ports struct {
	Gateway orgssvc.Gateway
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort adapts the organisations service to the domain port interface
type adaptServicePort struct{ svc orgssvc.Service }

// Search implements the domain ServicePort interface
func (a adaptServicePort) Search(ctx context.Context, query string, page, size int) (orgsdom.SearchResult, error) {
	return a.svc.Search(ctx, query, page, size)
}

// Get implements the domain ServicePort interface
func (a adaptServicePort) Get(ctx context.Context, id string) (orgsdom.Organisation, error) {
	return a.svc.Get(ctx, id)
}
