package move

import (
	"reflect"
	"testing"
)

func TestRobocopy_Args(t *testing.T) {
	r := &Robocopy{Retries: 2, WaitSeconds: 5, Threads: 8}

	tests := []struct {
		name     string
		srcDir   string
		dstDir   string
		filter   string
		excludes []string
		expected []string
	}{
		{
			name:   "single entry",
			srcDir: `D:\Data`,
			dstDir: `E:\Out\Data`,
			filter: "report.txt",
			expected: []string{
				`D:\Data`, `E:\Out\Data`, "report.txt",
				"/MOV", "/R:2", "/W:5", "/MT:8",
				"/NJH", "/NJS", "/NDL", "/NFL",
			},
		},
		{
			name:     "with exclusions",
			srcDir:   "/src",
			dstDir:   "/dst",
			filter:   "*.*",
			excludes: []string{"thumbs.db", "desktop.ini"},
			expected: []string{
				"/src", "/dst", "*.*",
				"/MOV", "/R:2", "/W:5", "/MT:8",
				"/NJH", "/NJS", "/NDL", "/NFL",
				"/XF", "thumbs.db", "desktop.ini",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.args(tt.srcDir, tt.dstDir, tt.filter, tt.excludes)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("args() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestRobocopy_Args_Tuning(t *testing.T) {
	r := &Robocopy{Retries: 10, WaitSeconds: 30, Threads: 32}
	got := r.args("/a", "/b", "*.*", nil)

	want := map[string]bool{"/R:10": false, "/W:30": false, "/MT:32": false}
	for _, arg := range got {
		if _, ok := want[arg]; ok {
			want[arg] = true
		}
	}
	for flag, seen := range want {
		if !seen {
			t.Errorf("args() missing %s in %v", flag, got)
		}
	}
}
