package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// withTx runs fn inside one transaction on a context-bound session. The
// transaction commits when fn returns nil and rolls back on an error or a
// panic; the connection goes back to the pool either way.
func withTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// read returns a session for plain SELECTs, served by the replica when one is
// registered.
func read(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Clauses(dbresolver.Read)
}
