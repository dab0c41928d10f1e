// Package store is the single persistence layer for the funding ledger.
// Raised amounts are never stored; they are recomputed from confirmed
// donations on every read so concurrent donation writes need no locking.
package store

import (
	"gorm.io/gorm"
)

// Ledger wraps the database handle with the ledger queries.
type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}
