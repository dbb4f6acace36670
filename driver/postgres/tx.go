package postgres

import (
	"context"
	"fmt"
	"log/slog"
)

// TransactionManager opens a transaction, binds it to the context and runs
// the given function inside it. Repositories called with that context route
// their statements through the transaction.
type TransactionManager struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTransactionManager creates a new TransactionManager instance
func NewTransactionManager(db DatabaseIface, logger *slog.Logger) *TransactionManager {
	return &TransactionManager{
		db:     db,
		logger: logger.With("component", "transaction_manager"),
	}
}

// Run executes fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise; fn's error is returned unchanged so
// callers can match on domain errors.
func (m *TransactionManager) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txContextKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			m.logger.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
