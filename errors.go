package nanohighlight

import (
	"errors"
	"fmt"
	"io/fs"
)

// FilesystemError reports a directory or file operation that failed while
// generating the configuration.  Nothing recovers from it locally; callers
// hand it up to the top-level boundary.
type FilesystemError struct {
	Op   string // e.g. "create directory", "write"
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	// *fs.PathError already names a path.
	var pe *fs.PathError
	if errors.As(e.Err, &pe) {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
