package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"imagecleaner/cleaner"
	"imagecleaner/grouper"
	"imagecleaner/logging"
	"imagecleaner/scanner"
	"imagecleaner/signalhandler"
	"imagecleaner/utils"
)

var (
	autoMode    bool
	debugMode   bool
	logFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "imagecleaner <folder_path> [similarity_threshold]",
	Short: "Find and delete visually similar images in a folder",
	Long: `imagecleaner recursively scans a folder for images, fingerprints them with a
perceptual hash and groups files whose Hamming distance is within the
similarity threshold. All but the first file of each group can then be
deleted.

The similarity threshold is an integer between 0 and 10 (default 5).
Lower values are stricter, higher values are more lenient.`,
	Example: `  imagecleaner ~/Pictures
  imagecleaner ~/Pictures 3
  imagecleaner ~/Pictures 5 --auto`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClean,
}

func init() {
	rootCmd.Flags().BoolVar(&autoMode, "auto", false, "delete duplicates without asking for confirmation")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVar(&logFilePath, "logfile", "", "write logs to this file instead of stderr")
}

func runClean(cmd *cobra.Command, args []string) error {
	folderPath := args[0]

	threshold := grouper.DefaultThreshold
	if len(args) == 2 {
		parsed, err := utils.ParseThreshold(args[1])
		if err != nil {
			return err
		}
		threshold = parsed
	}

	folderInfo, err := os.Stat(folderPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("folder %q does not exist", folderPath)
		}
		return fmt.Errorf("cannot access folder %q: %w", folderPath, err)
	}
	if !folderInfo.IsDir() {
		return fmt.Errorf("%q is not a directory", folderPath)
	}

	if debugMode || logFilePath != "" {
		if err := logging.SetupLogger(logFilePath, debugMode); err != nil {
			fmt.Printf("Warning: failed to setup logging: %v\n", err)
		}
		defer logging.CloseLogger()
	}

	signalhandler.SetupHandler()

	mode := "Interactive"
	if autoMode {
		mode = "Automatic"
	}
	fmt.Printf("Scanning folder: %s\n", folderPath)
	fmt.Printf("Similarity threshold: %d\n", threshold)
	fmt.Printf("Mode: %s\n", mode)
	fmt.Println(strings.Repeat("=", 80))

	records, err := scanner.ScanFolder(os.Stdout, scanner.ScanOptions{
		FolderPath: folderPath,
		DebugMode:  debugMode,
	})
	if err != nil {
		return err
	}

	groups := grouper.GroupDuplicates(records, threshold)

	cleaner.Run(groups, cleaner.Options{
		Interactive: !autoMode,
		In:          os.Stdin,
		Out:         os.Stdout,
	})

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
