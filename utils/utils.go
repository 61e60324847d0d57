package utils

import (
	"fmt"
	"strconv"

	"imagecleaner/grouper"
)

// ParseThreshold parses and validates the similarity threshold argument.
// Valid values are integers between 0 and 10 inclusive.
func ParseThreshold(thresholdStr string) (int, error) {
	threshold, err := strconv.Atoi(thresholdStr)
	if err != nil {
		return 0, fmt.Errorf("invalid similarity threshold %q: must be an integer between %d and %d",
			thresholdStr, grouper.MinThreshold, grouper.MaxThreshold)
	}
	if threshold < grouper.MinThreshold || threshold > grouper.MaxThreshold {
		return 0, fmt.Errorf("similarity threshold %d out of range: must be between %d and %d",
			threshold, grouper.MinThreshold, grouper.MaxThreshold)
	}
	return threshold, nil
}

// FormatBytes renders a byte count in a human readable unit.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
