package drive

import "os"

// DefaultScratchPrefix names downloaded scratch files.
const DefaultScratchPrefix = "drive"

// Config holds the drive source configuration.
type Config struct {
	// RootFolderID is the folder the enumeration walk starts from.
	RootFolderID string

	// PageSize is the page size for listing requests.
	PageSize int64

	// ScratchDir is where binary files are downloaded before decoding.
	// Empty means the system temp directory.
	ScratchDir string

	// ScratchPrefix is the leading token of scratch file names.
	ScratchPrefix string
}

func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
	if c.ScratchDir == "" {
		c.ScratchDir = os.TempDir()
	}
	if c.ScratchPrefix == "" {
		c.ScratchPrefix = DefaultScratchPrefix
	}
	return c
}
