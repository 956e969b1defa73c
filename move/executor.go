package move

import (
	"os"
	"path/filepath"

	"github.com/anasdove2020/robocopy-migration/list"
)

// Executor processes one entry at a time: it computes the destination,
// performs the transfer through its Mover and classifies the outcome. Errors
// never escape MoveOne; every path through it ends in a Result.
type Executor struct {
	Mover Mover

	// AllowDirs permits directory entries; when false they are skipped.
	AllowDirs bool
}

func (e *Executor) MoveOne(entry list.Entry, targetRoot string) Result {
	result := Result{
		Line:   entry.Line,
		Source: entry.Path,
	}

	info, err := os.Stat(entry.Path)
	if os.IsNotExist(err) {
		result.Status = StatusNotFound
		result.Message = "source not found"
		return result
	}
	if err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		return result
	}

	if info.IsDir() && !e.AllowDirs {
		result.Status = StatusSkipped
		result.Message = "directories are not supported by this operation"
		return result
	}

	dst, err := Destination(entry.Path, targetRoot)
	if err != nil {
		result.Status = StatusError
		result.Message = err.Error()
		return result
	}
	result.Destination = dst

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		result.Status = StatusError
		result.Message = "create destination directory: " + err.Error()
		return result
	}

	if err := e.Mover.Move(entry.Path, dst); err != nil {
		// A failed transfer must not leave a partial copy at the
		// destination.
		if _, statErr := os.Stat(dst); statErr == nil {
			os.RemoveAll(dst)
		}
		result.Status = StatusError
		result.Message = err.Error()
		return result
	}

	if _, err := os.Stat(dst); err != nil {
		result.Status = StatusError
		result.Message = "transfer did not complete"
		return result
	}
	if _, err := os.Stat(entry.Path); err == nil {
		// The source survived the move; drop the duplicate at the
		// destination rather than leaving both copies behind.
		os.RemoveAll(dst)
		result.Status = StatusError
		result.Message = "source appears locked or in use"
		return result
	}

	result.Status = StatusSuccess
	result.Message = "moved"
	return result
}
