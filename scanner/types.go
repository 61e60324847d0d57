package scanner

// ScanOptions defines the options for scanning
type ScanOptions struct {
	FolderPath string
	DebugMode  bool
}

// ProcessImageResult holds the result of processing an image
type ProcessImageResult struct {
	Path    string
	Success bool
	Error   error
}
