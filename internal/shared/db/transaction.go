// Package db carries a gorm transaction through context so that repositories
// called from the same use case share one unit of work.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager starts transactions on the application database.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside a transaction. The transaction handle is
// stashed in the context passed to fn; repositories pick it up through
// GetTxFromContext. An error from fn rolls the whole unit of work back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTxFromContext returns the transaction carried by ctx, or defaultDB bound
// to ctx when the caller did not open one. Repositories always go through
// this, so they work the same inside and outside a transaction.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
