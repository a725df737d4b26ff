// Package dataprocessing turns dated folders of option-chain workbooks into
// one consolidated table of matched call/put pairs.
//
// # Architecture
//
// The package is organized into the stages of a sequential pipeline:
//
//  1. Loader: reads the first sheet of a workbook into a domain.Table
//  2. Reconciler: splits rows by side, joins calls and puts on strike price,
//     keeps pairs with exactly equal volume and derives cost
//  3. Projector: drops the fixed set of columns not needed downstream
//  4. Accumulator: tags each batch with its folder date and concatenates
//
// Pipeline drives the stages over files.Scanner folders and records one
// domain.FileResult per workbook.
//
// # Usage
//
//	p := dataprocessing.NewPipeline(logger, dataprocessing.Options{Schema: cfg.Columns})
//	res, err := p.Run(ctx, cfg.Aggregation.Dirs())
//	if errors.Is(err, dataprocessing.ErrNoMatches) {
//	    // informational: nothing to write
//	}
//
// # Data Flow
//
//	folder → *.xlsx → Loader → Reconciler → Projector → Accumulator → Table
//
// # Error Handling
//
// A workbook that cannot be opened or read is logged with its path and
// recorded as failed; a workbook without the volume, strike and side columns
// is recorded as skipped. Neither stops the run.
package dataprocessing
