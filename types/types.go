package types

import "github.com/corona10/goimagehash"

// ImageRecord holds the path, size and perceptual fingerprint of a
// successfully hashed image. Records are immutable after creation.
type ImageRecord struct {
	Path        string
	Size        int64
	Fingerprint *goimagehash.ImageHash
}

// DuplicateEntry pairs a duplicate record with its Hamming distance to the
// group's original.
type DuplicateEntry struct {
	Record   ImageRecord
	Distance int
}

// DuplicateGroup is one original plus the duplicates found within the
// configured distance threshold. Each record belongs to at most one group,
// as either the original or a duplicate.
type DuplicateGroup struct {
	Original   ImageRecord
	Duplicates []DuplicateEntry
}

// DuplicateCount returns the number of duplicate files in the group.
func (g DuplicateGroup) DuplicateCount() int {
	return len(g.Duplicates)
}
