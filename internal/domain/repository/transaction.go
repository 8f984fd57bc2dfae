package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so a lifecycle transition and its point awards commit or roll back together.
type RepositoryFactory interface {
	// NewAnnouncementRepository returns an AnnouncementRepository bound to the current transaction.
	NewAnnouncementRepository() AnnouncementRepository

	// NewCollectionRepository returns a CollectionRepository bound to the current transaction.
	NewCollectionRepository() CollectionRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
