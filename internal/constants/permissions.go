package constants

import "os"

// Directory permission constants.
const (
	// DirPermStandard is the standard directory permission (owner rwx, group r-x).
	DirPermStandard os.FileMode = 0750
)

// File permission constants.
const (
	// FilePermLog is the permission for log files (owner rw, group r).
	FilePermLog os.FileMode = 0640
)
