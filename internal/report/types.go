package report

// Report records one ingestion run of the CLI.
type Report struct {
	Version     int        `json:"version"`
	GeneratedAt string     `json:"generated_at"`
	Encoder     string     `json:"encoder"`
	Input       InputInfo  `json:"input"`
	Output      OutputInfo `json:"output"`
}

// InputInfo describes the source file as declared.
type InputInfo struct {
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Size      int64  `json:"size"`
}

// OutputInfo describes the file handed back to the caller.
type OutputInfo struct {
	Path          string  `json:"path"`              // relative to the report's directory
	Filename      string  `json:"filename"`
	MediaType     string  `json:"media_type"`
	Size          int64   `json:"size"`
	WasCompressed bool    `json:"was_compressed"`
	Width         int     `json:"width,omitempty"`
	Height        int     `json:"height,omitempty"`
	Quality       float64 `json:"quality,omitempty"`
	Attempts      int     `json:"attempts"`
	StorageKey    string  `json:"storage_key"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1

// FileName is the report written next to the output file.
const FileName = "imgbudget.report.json"
