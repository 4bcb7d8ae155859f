package util

// Version and GitCommit are stamped at build time:
//
//	go build -ldflags "-X coolchart/lib/util.Version=1.0.0 -X coolchart/lib/util.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)
