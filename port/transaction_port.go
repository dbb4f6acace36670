package port

//go:generate mockgen -source=transaction_port.go -destination=../mocks/mock_transaction_port.go -package=mocks

import "context"

// TransactionManager wraps a function in a storage transaction. Repository
// calls made with the context passed to fn join the transaction. The
// transaction commits when fn returns nil and rolls back otherwise; fn's
// error is propagated unchanged.
type TransactionManager interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
