package files

import (
	"iter"
	"log/slog"

	apperrors "optpaircli/internal/errors"
)

// DateTagLength is the number of leading folder-name characters used as the
// date tag of every row read from that folder.
const DateTagLength = 6

// Folder is one dated subdirectory of a base directory.
type Folder struct {
	Name    string
	Path    string
	DateTag string
}

// Scanner enumerates dated folders under the configured base directories.
type Scanner struct {
	discovery *Discovery
	logger    *slog.Logger
}

// NewScanner creates a scanner that logs through logger.
func NewScanner(logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		discovery: NewDiscovery(""),
		logger:    logger,
	}
}

// ExtractDateTag returns the first DateTagLength characters of a folder
// name, or the whole name when it is shorter. The result is positional only:
// it is not parsed or validated as a calendar date, so a malformed name
// passes through as its literal prefix.
func ExtractDateTag(folderName string) string {
	r := []rune(folderName)
	if len(r) <= DateTagLength {
		return folderName
	}
	return string(r[:DateTagLength])
}

// Folders returns a sequence over the immediate subdirectories of baseDir in
// name order. A base directory that does not exist is logged as a warning
// and reported through the returned NOT_FOUND error; the sequence is then
// empty.
func (s *Scanner) Folders(baseDir string) (iter.Seq[Folder], error) {
	if !DirExists(baseDir) {
		s.logger.Warn("Base directory does not exist, skipping",
			slog.String("base_dir", baseDir))
		return func(func(Folder) bool) {}, apperrors.NewNotFoundError("base directory").
			WithContext("path", baseDir)
	}

	return func(yield func(Folder) bool) {
		dirs, err := s.discovery.ListDirectories(baseDir)
		if err != nil {
			s.logger.Warn("Failed to list base directory",
				slog.String("base_dir", baseDir),
				slog.String("error", err.Error()))
			return
		}
		for _, d := range dirs {
			folder := Folder{
				Name:    d.Name,
				Path:    d.Path,
				DateTag: ExtractDateTag(d.Name),
			}
			if !yield(folder) {
				return
			}
		}
	}, nil
}
