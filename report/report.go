package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/anasdove2020/robocopy-migration/move"
)

var columns = []string{"Timestamp", "Status", "Line", "Source", "Destination", "Message"}

// Recorder accumulates one row per processed entry, in processing order, and
// writes the whole run to a CSV report at the end. The timestamp is captured
// once per run; per-item precision is not needed.
type Recorder struct {
	runID     string
	timestamp string
	results   []move.Result
}

func NewRecorder() *Recorder {
	return &Recorder{
		runID:     uuid.New().String(),
		timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}
}

// RunID identifies this run in log output so console events and report rows
// can be correlated.
func (r *Recorder) RunID() string {
	return r.runID
}

func (r *Recorder) Record(result move.Result) {
	r.results = append(r.results, result)
}

func (r *Recorder) Results() []move.Result {
	return r.results
}

// Flush writes the report, header included, even when no entries were
// processed. Called exactly once per run.
func (r *Recorder) Flush(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return err
	}
	for _, result := range r.results {
		row := []string{
			r.timestamp,
			result.Status.String(),
			strconv.Itoa(result.Line),
			result.Source,
			result.Destination,
			result.Message,
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultPath derives a timestamped report name so repeated runs never
// clobber each other's output.
func DefaultPath(dir string) string {
	name := "move-report-" + time.Now().Format("20060102-150405") + ".csv"
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
