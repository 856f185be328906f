package runner

import "github.com/flintlabs/flint/pkg/config"

// Options controls a multi-document run.
type Options struct {
	// Paths are dump files or directories to search for dumps.
	Paths []string

	// Config is the resolved configuration, including fix mode.
	Config *config.Config

	// Jobs is the number of documents processed concurrently.
	// Zero or negative means one worker per CPU.
	Jobs int

	// Backup creates a sidecar backup before writing a fixed dump.
	Backup bool
}
