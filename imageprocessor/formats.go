package imageprocessor

import (
	"path/filepath"
	"sort"
	"strings"
)

// FormatType represents a supported image format
type FormatType string

// Supported image format types
const (
	FormatJPEG FormatType = "jpeg"
	FormatPNG  FormatType = "png"
	FormatGIF  FormatType = "gif"
	FormatBMP  FormatType = "bmp"
	FormatTIFF FormatType = "tiff"
	FormatWEBP FormatType = "webp"
)

// formatsByExtension maps lowercase file extensions to their format type.
// Only these extensions are ever scanned or decoded.
var formatsByExtension = map[string]FormatType{
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tiff": FormatTIFF,
	".webp": FormatWEBP,
}

// FormatFromPath returns the image format for a file path based on its
// extension. The second return value is false for unsupported extensions.
func FormatFromPath(path string) (FormatType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := formatsByExtension[ext]
	return format, ok
}

// IsSupportedPath checks whether the file extension belongs to a supported
// image format.
func IsSupportedPath(path string) bool {
	_, ok := FormatFromPath(path)
	return ok
}

// SupportedExtensions returns the extension allow-list in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(formatsByExtension))
	for ext := range formatsByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
