package models

// FileStatus is the terminal state of one HTML file after an injector run
type FileStatus string

const (
	StatusUpdated   FileStatus = "updated"
	StatusUnchanged FileStatus = "unchanged"
	StatusSkipped   FileStatus = "skipped"
	StatusErrored   FileStatus = "errored"
)

// FileResult records what happened to a single HTML file
type FileResult struct {
	Path    string
	Status  FileStatus
	Applied []string // names of rules that changed the content
	Err     error
}

// Summary holds per-run file counts
type Summary struct {
	Discovered int
	Updated    int
	Unchanged  int
	Skipped    int
	Errored    int
}

// Add counts a file result against the summary
func (s *Summary) Add(r FileResult) {
	switch r.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusSkipped:
		s.Skipped++
	case StatusErrored:
		s.Errored++
	}
}
