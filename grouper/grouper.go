// Package grouper clusters image records into duplicate groups by Hamming
// distance between their fingerprints.
package grouper

import (
	"imagecleaner/logging"
	"imagecleaner/types"
)

// Threshold bounds for the similarity distance. 0 matches only identical
// fingerprints; higher values are more lenient.
const (
	MinThreshold     = 0
	MaxThreshold     = 10
	DefaultThreshold = 5
)

// GroupDuplicates partitions records into duplicate groups using greedy
// clustering in scan order: each unassigned record in turn becomes a group's
// original, and every later unassigned record within the threshold joins it
// and leaves the pool. The first-encountered record is always the original.
// Groups without duplicates are dropped. The result depends on record order;
// this is an accepted approximation rather than an optimal partition.
func GroupDuplicates(records []types.ImageRecord, threshold int) []types.DuplicateGroup {
	var groups []types.DuplicateGroup
	assigned := make([]bool, len(records))

	for i := range records {
		if assigned[i] {
			continue
		}

		group := types.DuplicateGroup{Original: records[i]}

		for j := i + 1; j < len(records); j++ {
			if assigned[j] {
				continue
			}

			distance, err := records[i].Fingerprint.Distance(records[j].Fingerprint)
			if err != nil {
				logging.LogWarning("cannot compare %s with %s: %v",
					records[i].Path, records[j].Path, err)
				continue
			}

			if distance <= threshold {
				group.Duplicates = append(group.Duplicates, types.DuplicateEntry{
					Record:   records[j],
					Distance: distance,
				})
				assigned[j] = true
			}
		}

		if len(group.Duplicates) > 0 {
			groups = append(groups, group)
		}
	}

	return groups
}

// TotalDuplicates counts the duplicate files across all groups.
func TotalDuplicates(groups []types.DuplicateGroup) int {
	total := 0
	for _, group := range groups {
		total += group.DuplicateCount()
	}
	return total
}
