// internal/service/tx.go
package service

import (
	"context"
	"fmt"

	"pocketbook/internal/repository"
	"pocketbook/pkg/db"
)

// beginTxExecutor starts a transaction and exposes it as a DBExecutor for
// the repositories. Every reconciliation runs inside exactly one of these;
// the caller is responsible for the deferred rollback and the final commit.
func beginTxExecutor(ctx context.Context, beginTx db.BeginTxFunc, dbBeginner db.DBTxBeginner) (db.TxController, repository.DBExecutor, error) {
	txController, err := beginTx(ctx, dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		_ = txController.Rollback()
		return nil, nil, fmt.Errorf("transaction controller does not implement DBExecutor")
	}
	return txController, txExecutor, nil
}
