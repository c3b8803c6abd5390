package unitofwork

import "context"

// RepositoryFactory hands out request-scoped units of work. Services hold
// the factory, never a unit of work directly.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
