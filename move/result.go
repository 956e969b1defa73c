package move

// Status classifies the terminal outcome of processing one list entry.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusSkipped
	StatusWarning
	StatusNotFound
)

var statusNames = map[Status]string{
	StatusSuccess:  "SUCCESS",
	StatusError:    "ERROR",
	StatusSkipped:  "SKIPPED",
	StatusWarning:  "WARNING",
	StatusNotFound: "NOT_FOUND",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Result is the outcome of one move attempt. Exactly one Result is produced
// per entry; Destination stays empty when it was never computed.
type Result struct {
	Line        int
	Status      Status
	Source      string
	Destination string
	Message     string
}
