// Package cleaner reports duplicate groups and deletes the redundant files.
package cleaner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"imagecleaner/grouper"
	"imagecleaner/logging"
	"imagecleaner/types"
	"imagecleaner/utils"
)

const separatorWidth = 80

// Options controls how the cleaner interacts with the operator.
type Options struct {
	// Interactive asks for confirmation before deleting anything.
	Interactive bool
	In          io.Reader
	Out         io.Writer
}

// Report prints every duplicate group: the original, then each duplicate
// with its size and distance to the original.
func Report(out io.Writer, groups []types.DuplicateGroup) {
	total := grouper.TotalDuplicates(groups)

	fmt.Fprintf(out, "\nFound %d duplicate images across %d groups.\n", total, len(groups))
	fmt.Fprintf(out, "\nDuplicate groups:\n")
	fmt.Fprintln(out, strings.Repeat("-", separatorWidth))

	for _, group := range groups {
		fmt.Fprintf(out, "\nOriginal: %s\n", group.Original.Path)
		fmt.Fprintf(out, "  Size: %d bytes\n", group.Original.Size)
		fmt.Fprintf(out, "  Duplicates (%d):\n", group.DuplicateCount())

		for _, entry := range group.Duplicates {
			fmt.Fprintf(out, "    - %s\n", entry.Record.Path)
			fmt.Fprintf(out, "      Size: %d bytes\n", entry.Record.Size)
			fmt.Fprintf(out, "      Similarity distance: %d\n", entry.Distance)
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", separatorWidth))
}

// Confirm asks the operator whether count duplicate files should be deleted.
// Only "yes" or "y" (case-insensitive) confirms.
func Confirm(in io.Reader, out io.Writer, count int) bool {
	fmt.Fprintf(out, "\nDelete %d duplicate files? (yes/no): ", count)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	response := strings.ToLower(strings.TrimSpace(line))
	return response == "yes" || response == "y"
}

// DeleteDuplicates removes every duplicate file in every group, keeping each
// group's original. Per-file failures are reported and do not stop the
// remaining deletions. It returns the number of files deleted and the bytes
// freed.
func DeleteDuplicates(out io.Writer, groups []types.DuplicateGroup) (int, int64) {
	deleted := 0
	var freed int64

	for _, group := range groups {
		for _, entry := range group.Duplicates {
			path := entry.Record.Path

			size := entry.Record.Size
			if info, err := os.Stat(path); err == nil {
				size = info.Size()
			}

			if err := os.Remove(path); err != nil {
				fmt.Fprintf(out, "Error deleting %s: %v\n", path, err)
				logging.LogError("failed to delete %s: %v", path, err)
				continue
			}

			deleted++
			freed += size
			fmt.Fprintf(out, "Deleted: %s\n", path)
			logging.DebugLog("deleted %s (%d bytes)", path, size)
		}
	}

	return deleted, freed
}

// Run reports the groups and deletes the duplicates, prompting first in
// interactive mode. A run with no duplicates or a declined prompt deletes
// nothing.
func Run(groups []types.DuplicateGroup, options Options) {
	out := options.Out

	if grouper.TotalDuplicates(groups) == 0 {
		fmt.Fprintln(out, "\nNo duplicate images found!")
		return
	}

	Report(out, groups)

	if options.Interactive {
		if !Confirm(options.In, out, grouper.TotalDuplicates(groups)) {
			fmt.Fprintln(out, "Deletion cancelled.")
			return
		}
	}

	deleted, freed := DeleteDuplicates(out, groups)

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", separatorWidth))
	fmt.Fprintf(out, "Successfully deleted %d duplicate files.\n", deleted)
	fmt.Fprintf(out, "Total space freed: %d bytes (%s)\n", freed, utils.FormatBytes(freed))
}
