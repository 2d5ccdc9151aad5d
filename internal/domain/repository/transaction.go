package repository

import "context"

// TransactionManager runs use case steps atomically without exposing the driver.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. Repositories
	// taken from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory yields repositories bound to the surrounding transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewReviewRepository() ReviewRepository
}
