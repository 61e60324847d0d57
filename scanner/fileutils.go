package scanner

import (
	"strings"

	"imagecleaner/imageprocessor"
)

// IsImageFile checks if a file extension belongs to a supported image file
func IsImageFile(path string) bool {
	return imageprocessor.IsSupportedPath(path)
}

// SupportedExtensionList returns the allow-list as a printable string
func SupportedExtensionList() string {
	return strings.Join(imageprocessor.SupportedExtensions(), ", ")
}
