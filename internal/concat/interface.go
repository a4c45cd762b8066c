// Package concat joins the transcripts of an ordered list of unit folders
// into a single text file.
package concat

import "context"

// Concatenator joins transcripts folder by folder.
type Concatenator interface {
	Run(ctx context.Context) (Result, error)
}

// Result reports what a Run collected.
type Result struct {
	Output  string
	Files   []string
	Missing []string
	Failed  []string
}
