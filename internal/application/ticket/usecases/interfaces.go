package usecases

import (
	"context"
	"io"
)

// TransactionManager runs a function inside a database transaction, with
// the transaction carried in the returned context.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FileStore persists uploaded attachment bytes outside the database.
type FileStore interface {
	GenerateFilename(ticketID uint, originalName string) (string, error)
	Save(filename string, src io.Reader) (string, error)
	Remove(filename string) error
}
