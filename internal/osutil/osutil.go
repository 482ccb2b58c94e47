package osutil

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission    = 0o755
	FilePermission   = 0o644
	DBFilePermission = 0o600
)
