package scanner

import (
	"fmt"
	"io"

	"imagecleaner/logging"
)

// progressInterval is how many files are processed between progress lines.
const progressInterval = 10

// ProgressTracker tracks progress of the scan operation
type ProgressTracker struct {
	out        io.Writer
	processed  int
	errors     int
	totalFiles int
}

// NewProgressTracker initializes the progress tracker
func NewProgressTracker(out io.Writer, totalFiles int) *ProgressTracker {
	return &ProgressTracker{
		out:        out,
		totalFiles: totalFiles,
	}
}

// Update records the outcome of processing one file and prints a progress
// line every tenth file.
func (p *ProgressTracker) Update(result ProcessImageResult) {
	p.processed++

	if result.Success {
		logging.LogImageProcessed(result.Path, true, "")
	} else {
		p.errors++
		if result.Error != nil {
			fmt.Fprintf(p.out, "Error processing %s: %v\n", result.Path, result.Error)
			logging.LogImageProcessed(result.Path, false, result.Error.Error())
		}
	}

	if p.processed%progressInterval == 0 {
		fmt.Fprintf(p.out, "Processing %d/%d...\n", p.processed, p.totalFiles)
	}
}

// Processed returns the number of files handled so far.
func (p *ProgressTracker) Processed() int {
	return p.processed
}

// Errors returns the number of files that failed to hash.
func (p *ProgressTracker) Errors() int {
	return p.errors
}
