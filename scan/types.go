package scan

import "time"

// BlockInfo summarizes one block of a parsed component.
type BlockInfo struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes,omitempty"` // rendered as they appear in the start tag
	Lang       string   `json:"lang,omitempty"`       // value of the lang attribute, if any
	Bytes      int      `json:"bytes"`                // content length after trimming
}

// Result is the outcome for a single file. Err is empty when the file
// parsed cleanly.
type Result struct {
	Path     string      `json:"path"`
	Sections int         `json:"sections"`
	Blocks   []BlockInfo `json:"blocks,omitempty"`
	Err      string      `json:"error,omitempty"`
}

// OK reports whether the file parsed cleanly.
func (r Result) OK() bool { return r.Err == "" }

// Report aggregates one directory scan. Results are ordered by path.
type Report struct {
	ID      string        `json:"id"`
	Root    string        `json:"root"`
	Files   int           `json:"files"`
	Parsed  int           `json:"parsed"`
	Failed  int           `json:"failed"`
	Elapsed time.Duration `json:"elapsed"`
	Results []Result      `json:"results"`
}
