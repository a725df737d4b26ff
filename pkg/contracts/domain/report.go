package domain

// FileStatus is the outcome of processing one spreadsheet.
type FileStatus string

const (
	FileLoaded  FileStatus = "loaded"
	FileSkipped FileStatus = "skipped"
	FileFailed  FileStatus = "failed"
)

// FileResult records what happened to one input file.
type FileResult struct {
	Path        string     `csv:"path"`
	Folder      string     `csv:"folder"`
	DateTag     string     `csv:"date"`
	Status      FileStatus `csv:"status"`
	RawRows     int        `csv:"raw_rows"`
	MatchedRows int        `csv:"matched_rows"`
	Reason      string     `csv:"reason"`
}

// RunReport aggregates per-file outcomes of one pipeline run.
type RunReport struct {
	BaseDirs       []string
	MissingDirs    []string
	FoldersScanned int
	Files          []FileResult
	MatchedRows    int
	Costs          []float64
}

// Count returns the number of files with the given status.
func (r *RunReport) Count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the results of files that could not be loaded.
func (r *RunReport) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Status == FileFailed {
			out = append(out, f)
		}
	}
	return out
}
