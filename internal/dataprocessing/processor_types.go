package dataprocessing

import (
	"context"

	"optpaircli/pkg/contracts/domain"
)

// Recorder receives progress counts from a pipeline run.
type Recorder interface {
	FolderScanned(ctx context.Context)
	FileProcessed(ctx context.Context, status string)
	RowsMatched(ctx context.Context, n int)
	BaseDirMissing(ctx context.Context)
}

type nopRecorder struct{}

func (nopRecorder) FolderScanned(context.Context) {}
func (nopRecorder) FileProcessed(context.Context, string) {}
func (nopRecorder) RowsMatched(context.Context, int) {}
func (nopRecorder) BaseDirMissing(context.Context) {}

// Result is the outcome of one pipeline run.
type Result struct {
	// Table is the consolidated result; it has no rows when nothing matched.
	Table  *domain.Table
	Report *domain.RunReport
}

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	Schema    domain.ColumnSchema
	Projector *Projector
	Recorder  Recorder
}
