package ports

import "context"

// WorkContext describes the git surroundings of a session, stamped onto
// phase records so history shows what you were focusing on.
type WorkContext struct {
	Branch     string
	Commit     string
	Repository string
}

// WorkContextDetector resolves the git context of a working directory.
// This is a driven port (implemented by adapters).
type WorkContextDetector interface {
	// Detect scans the working directory for git context.
	Detect(ctx context.Context, workingDir string) (*WorkContext, error)

	// IsAvailable reports whether a git repository is reachable from the
	// current directory.
	IsAvailable() bool
}
