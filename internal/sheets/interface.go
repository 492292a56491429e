package sheets

import "context"

// ValueSource is the read side of the backing spreadsheet; readers depend on
// this instead of the concrete client so tests can feed rows directly.
type ValueSource interface {
	GetRange(ctx context.Context, a1Range string) ([][]string, error)
}

// RowSink is the write side: append, in-place rewrite, and row removal.
type RowSink interface {
	AppendRow(ctx context.Context, a1Range string, row []any) error
	UpdateRow(ctx context.Context, a1Range string, row []any) error
	DeleteRow(ctx context.Context, tab string, rowIndex int) error
}
