package move

import (
	"path/filepath"
	"strings"
)

// InvalidPathError reports a source path without a recognizable root
// designator, which cannot be re-rooted.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return "path has no recognizable root: " + e.Path
}

// Destination computes where a source path lands under targetRoot: the
// source's root designator is stripped and the remainder is re-joined under
// targetRoot, preserving the full directory structure below the root.
//
// Pure function; no directories are created here.
func Destination(sourcePath, targetRoot string) (string, error) {
	root, rest := splitRoot(sourcePath)
	if root == "" {
		return "", &InvalidPathError{Path: sourcePath}
	}
	rest = strings.TrimLeft(rest, `/\`)
	if rest == "" {
		// The root itself is not a movable entry.
		return "", &InvalidPathError{Path: sourcePath}
	}
	rest = strings.ReplaceAll(rest, `\`, "/")
	return filepath.Join(targetRoot, filepath.FromSlash(rest)), nil
}

// splitRoot separates a path into its root designator and the remainder.
// Recognized roots, regardless of the host platform: a drive letter followed
// by a separator (`D:\` or `D:/`), a UNC share (`\\server\share`), and a
// POSIX root (`/`). Returns an empty root when none applies.
func splitRoot(path string) (root, rest string) {
	if len(path) >= 3 && isDriveLetter(path[0]) && path[1] == ':' && isSeparator(path[2]) {
		return path[:2], path[2:]
	}
	if len(path) >= 2 && isSeparator(path[0]) && isSeparator(path[1]) && !isSeparator(safeAt(path, 2)) {
		// For \\server\share\... the share is part of the root.
		trimmed := path[2:]
		sep := strings.IndexAny(trimmed, `/\`)
		if sep <= 0 {
			return "", path
		}
		after := trimmed[sep+1:]
		end := strings.IndexAny(after, `/\`)
		if end < 0 {
			if after == "" {
				return "", path
			}
			return path, ""
		}
		return path[:2+sep+1+end], path[2+sep+1+end:]
	}
	if len(path) >= 1 && path[0] == '/' {
		return "/", path[1:]
	}
	return "", path
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

func safeAt(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i]
}
