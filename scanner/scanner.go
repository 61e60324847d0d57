// Package scanner enumerates image files under a folder and hashes them one
// at a time.
package scanner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"imagecleaner/imageprocessor"
	"imagecleaner/logging"
	"imagecleaner/types"
)

// CollectImageFiles walks the folder tree and returns the paths of all files
// whose extension is on the image allow-list, in walk order. Entries that
// cannot be accessed are skipped with a warning.
func CollectImageFiles(folderPath string) ([]string, error) {
	var files []string

	err := filepath.Walk(folderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			logging.LogWarning("skipping %s: %v", path, err)
			return nil
		}
		if !info.IsDir() && IsImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", folderPath, err)
	}

	return files, nil
}

// ScanFolder collects and hashes every supported image under the folder,
// reporting progress to out. Files that fail to decode are reported and
// excluded; the scan itself only fails if the folder cannot be walked.
func ScanFolder(out io.Writer, options ScanOptions) ([]types.ImageRecord, error) {
	if options.DebugMode {
		logging.DebugLog("starting image scan on folder: %s", options.FolderPath)
		logging.DebugLog("supported extensions: %s", SupportedExtensionList())
	}

	files, err := CollectImageFiles(options.FolderPath)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Found %d image files to process...\n", len(files))

	tracker := NewProgressTracker(out, len(files))
	records := make([]types.ImageRecord, 0, len(files))

	for _, path := range files {
		record, err := imageprocessor.HashImageFile(path)
		if err != nil {
			tracker.Update(ProcessImageResult{Path: path, Success: false, Error: err})
			continue
		}
		records = append(records, record)
		tracker.Update(ProcessImageResult{Path: path, Success: true})
	}

	fmt.Fprintf(out, "Successfully processed %d images.\n", len(records))
	if options.DebugMode {
		logging.DebugLog("scan finished: %d processed, %d errors", tracker.Processed(), tracker.Errors())
	}

	return records, nil
}
