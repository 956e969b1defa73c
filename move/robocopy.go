package move

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Robocopy delegates transfers to the external robocopy utility. Retries,
// wait time and worker count are passed straight through; any parallelism is
// internal to the tool and opaque here.
type Robocopy struct {
	Retries     int
	WaitSeconds int
	Threads     int
}

func (r *Robocopy) Move(src, dst string) error {
	args := r.args(filepath.Dir(src), filepath.Dir(dst), filepath.Base(src), nil)
	return r.run(args)
}

// MoveTree transfers a whole subtree in one invocation, skipping the given
// file names. Used by the bulk migration variant.
func (r *Robocopy) MoveTree(srcRoot, dstRoot string, excludes []string) error {
	args := r.args(srcRoot, dstRoot, "*.*", excludes)
	args = append(args, "/E")
	return r.run(args)
}

func (r *Robocopy) args(srcDir, dstDir, filter string, excludes []string) []string {
	args := []string{
		srcDir, dstDir, filter,
		"/MOV",
		fmt.Sprintf("/R:%d", r.Retries),
		fmt.Sprintf("/W:%d", r.WaitSeconds),
		fmt.Sprintf("/MT:%d", r.Threads),
		"/NJH", "/NJS", "/NDL", "/NFL",
	}
	if len(excludes) > 0 {
		args = append(args, "/XF")
		args = append(args, excludes...)
	}
	return args
}

func (r *Robocopy) run(args []string) error {
	cmd := exec.Command("robocopy", args...)
	err := cmd.Run()
	if err == nil {
		return nil
	}
	// Robocopy exit codes below 8 flag what was copied or skipped, not a
	// failure; 8 and above indicate at least one hard error.
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() < 8 {
		return nil
	}
	return err
}
