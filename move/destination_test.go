package move

import (
	"path/filepath"
	"testing"
)

func TestSplitRoot(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantRoot string
		wantRest string
	}{
		{
			name:     "drive letter with backslash",
			path:     `D:\Data\file.txt`,
			wantRoot: "D:",
			wantRest: `\Data\file.txt`,
		},
		{
			name:     "drive letter with forward slash",
			path:     "d:/data/file.txt",
			wantRoot: "d:",
			wantRest: "/data/file.txt",
		},
		{
			name:     "posix root",
			path:     "/data/file.txt",
			wantRoot: "/",
			wantRest: "data/file.txt",
		},
		{
			name:     "unc share",
			path:     `\\server\share\docs\file.txt`,
			wantRoot: `\\server\share`,
			wantRest: `\docs\file.txt`,
		},
		{
			name:     "unc share only",
			path:     `\\server\share`,
			wantRoot: `\\server\share`,
			wantRest: "",
		},
		{
			name:     "relative path has no root",
			path:     `Data\file.txt`,
			wantRoot: "",
			wantRest: `Data\file.txt`,
		},
		{
			name:     "drive letter without separator",
			path:     "D:file.txt",
			wantRoot: "",
			wantRest: "D:file.txt",
		},
		{
			name:     "empty path",
			path:     "",
			wantRoot: "",
			wantRest: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, rest := splitRoot(tt.path)
			if root != tt.wantRoot || rest != tt.wantRest {
				t.Errorf("splitRoot(%q) = (%q, %q); want (%q, %q)", tt.path, root, rest, tt.wantRoot, tt.wantRest)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		target  string
		want    string
		wantErr bool
	}{
		{
			name:   "drive letter source",
			source: `D:\A\x.txt`,
			target: filepath.Join("target", "out"),
			want:   filepath.Join("target", "out", "A", "x.txt"),
		},
		{
			name:   "posix source",
			source: "/data/photos/2021/img.jpg",
			target: "/backup",
			want:   filepath.Join("/backup", "data", "photos", "2021", "img.jpg"),
		},
		{
			name:   "unc source",
			source: `\\fileserver\projects\alpha\spec.docx`,
			target: "/archive",
			want:   filepath.Join("/archive", "alpha", "spec.docx"),
		},
		{
			name:    "relative source is rejected",
			source:  "data/file.txt",
			target:  "/out",
			wantErr: true,
		},
		{
			name:    "bare root is rejected",
			source:  "/",
			target:  "/out",
			wantErr: true,
		},
		{
			name:    "bare drive is rejected",
			source:  `D:\`,
			target:  "/out",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Destination(tt.source, tt.target)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Destination(%q, %q) = %q, expected error", tt.source, tt.target, got)
				}
				if _, ok := err.(*InvalidPathError); !ok {
					t.Errorf("Destination(%q, %q) error = %T; want *InvalidPathError", tt.source, tt.target, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Destination(%q, %q) error = %v, expected nil", tt.source, tt.target, err)
			}
			if got != tt.want {
				t.Errorf("Destination(%q, %q) = %q; want %q", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestDestination_Deterministic(t *testing.T) {
	first, err := Destination(`D:\Data\reports\q1.xlsx`, "/out")
	if err != nil {
		t.Fatalf("Destination() error = %v, expected nil", err)
	}
	second, err := Destination(`D:\Data\reports\q1.xlsx`, "/out")
	if err != nil {
		t.Fatalf("Destination() error = %v, expected nil", err)
	}
	if first != second {
		t.Errorf("Destination() not deterministic: %q vs %q", first, second)
	}
}

func TestInvalidPathError_Error(t *testing.T) {
	err := &InvalidPathError{Path: "relative/path.txt"}
	expected := "path has no recognizable root: relative/path.txt"
	if err.Error() != expected {
		t.Errorf("InvalidPathError.Error() = %q; want %q", err.Error(), expected)
	}
}
