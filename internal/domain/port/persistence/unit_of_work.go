package persistence

import (
	"context"
	"fmt"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetEventRepository returns an event repository bound to the current transaction
	GetEventRepository(ctx context.Context) EventRepository

	// GetPurchaseRepository returns a purchase repository bound to the current transaction
	GetPurchaseRepository(ctx context.Context) PurchaseRepository
}

// Retrier is implemented by units of work that can replay a whole
// transaction after a transient failure such as a serialization conflict
type Retrier interface {
	Retry(ctx context.Context, attempt func() error) error
}

// WithinTransaction runs fn inside a transaction. The transaction is rolled
// back when fn returns an error or panics and committed otherwise.
// When uow is a Retrier the whole transaction, fn included, may run more than once.
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) error {
	attempt := func() error {
		return runTransaction(ctx, uow, fn)
	}
	if r, ok := uow.(Retrier); ok {
		return r.Retry(ctx, attempt)
	}
	return attempt()
}

func runTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return uow.Commit(txCtx)
}
