package dataprocessing

import (
	"context"
	"errors"
	"log/slog"

	"optpaircli/internal/files"
	"optpaircli/pkg/contracts/domain"
)

// Pipeline turns dated folders of option-chain workbooks into one
// consolidated table of matched call/put pairs. It runs sequentially.
type Pipeline struct {
	scanner    *files.Scanner
	discovery  *files.Discovery
	loader     *Loader
	reconciler *Reconciler
	projector  *Projector
	recorder   Recorder
	logger     *slog.Logger
}

// NewPipeline wires the pipeline stages.
func NewPipeline(logger *slog.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Schema == (domain.ColumnSchema{}) {
		opts.Schema = domain.DefaultColumnSchema()
	}
	if opts.Projector == nil {
		opts.Projector = NewDefaultProjector()
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}

	return &Pipeline{
		scanner:    files.NewScanner(logger),
		discovery:  files.NewDiscovery(""),
		loader:     NewLoader(opts.Schema),
		reconciler: NewReconciler(opts.Schema),
		projector:  opts.Projector,
		recorder:   opts.Recorder,
		logger:     logger,
	}
}

// Run processes every folder of every base directory in order. Per-file
// failures are recorded in the report and never abort the run. When no
// row matched, the returned result has an empty table and the error is
// ErrNoMatches.
func (p *Pipeline) Run(ctx context.Context, baseDirs []string) (*Result, error) {
	report := &domain.RunReport{BaseDirs: baseDirs}
	acc := NewAccumulator()

	for _, baseDir := range baseDirs {
		folders, err := p.scanner.Folders(baseDir)
		if err != nil {
			report.MissingDirs = append(report.MissingDirs, baseDir)
			p.recorder.BaseDirMissing(ctx)
			continue
		}

		for folder := range folders {
			report.FoldersScanned++
			p.recorder.FolderScanned(ctx)
			p.processFolder(ctx, folder, acc, report)
		}
	}

	table, err := acc.Table()
	report.MatchedRows = table.Len()
	report.Costs = costs(table)

	p.logger.InfoContext(ctx, "Aggregation finished",
		slog.Int("folders", report.FoldersScanned),
		slog.Int("files", len(report.Files)),
		slog.Int("failed", report.Count(domain.FileFailed)),
		slog.Int("skipped", report.Count(domain.FileSkipped)),
		slog.Int("total_records", report.MatchedRows))

	return &Result{Table: table, Report: report}, err
}

// processFolder loads, reconciles and accumulates every workbook in folder
func (p *Pipeline) processFolder(ctx context.Context, folder files.Folder, acc *Accumulator, report *domain.RunReport) {
	workbooks, err := p.discovery.FindExcelFiles(folder.Path)
	if err != nil {
		p.logger.WarnContext(ctx, "Failed to list folder",
			slog.String("folder", folder.Path),
			slog.String("error", err.Error()))
		return
	}

	p.logger.DebugContext(ctx, "Processing folder",
		slog.String("folder", folder.Name),
		slog.String("date", folder.DateTag),
		slog.Int("files", len(workbooks)))

	for _, wb := range workbooks {
		result := p.processFile(ctx, wb.Path, folder, acc)
		report.Files = append(report.Files, result)
		p.recorder.FileProcessed(ctx, string(result.Status))
		if result.MatchedRows > 0 {
			p.recorder.RowsMatched(ctx, result.MatchedRows)
		}
	}
}

// processFile handles one workbook and reports its outcome
func (p *Pipeline) processFile(ctx context.Context, path string, folder files.Folder, acc *Accumulator) domain.FileResult {
	result := domain.FileResult{
		Path:    path,
		Folder:  folder.Name,
		DateTag: folder.DateTag,
	}

	table, err := p.loader.Load(path)
	switch {
	case errors.Is(err, ErrMissingColumns):
		result.Status = domain.FileSkipped
		result.RawRows = table.Len()
		result.Reason = err.Error()
		p.logger.DebugContext(ctx, "Skipping file without required columns",
			slog.String("path", path),
			slog.String("reason", err.Error()))
		return result
	case err != nil:
		result.Status = domain.FileFailed
		result.Reason = err.Error()
		p.logger.ErrorContext(ctx, "Error processing file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return result
	}

	result.Status = domain.FileLoaded
	result.RawRows = table.Len()

	matched := p.projector.Project(p.reconciler.Reconcile(table))
	if acc.Add(matched, folder.DateTag) {
		result.MatchedRows = matched.Len()
	}

	p.logger.DebugContext(ctx, "Records processed from file",
		slog.String("path", path),
		slog.Int("raw_rows", result.RawRows),
		slog.Int("matched_rows", result.MatchedRows))

	return result
}

// costs collects the numeric cost values of the consolidated table
func costs(t *domain.Table) []float64 {
	idx := t.Column(domain.CostColumn)
	if idx < 0 {
		return nil
	}
	var out []float64
	for _, row := range t.Rows {
		if row[idx].IsNumber() {
			out = append(out, row[idx].Num)
		}
	}
	return out
}
