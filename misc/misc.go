// Package misc holds program identification values set at build time.
package misc

var (
	appName = "draftr"
	version = "dev"
	gitHash = "unknown"
)

// GetAppName returns the name used for loggers and log files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, normally injected with -ldflags.
func GetVersion() string {
	return version
}

// GetGitHash returns the commit the program was built from.
func GetGitHash() string {
	return gitHash
}
