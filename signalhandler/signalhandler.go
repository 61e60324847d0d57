package signalhandler

import (
	"os"
	"os/signal"
	"syscall"

	"imagecleaner/logging"
)

// SetupHandler installs a handler that flushes pending log entries before
// the process exits on SIGINT or SIGTERM. There is no mid-run cancellation;
// termination is the only way to stop a scan.
func SetupHandler() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logging.CloseLogger()
		os.Exit(1)
	}()
}
