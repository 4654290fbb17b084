package app

import "log/slog"

// Set at link time, e.g.
// go build -ldflags "-X github.com/heartmarshall/brandvoice-backend/internal/app.Version=v1.2.0 -X github.com/heartmarshall/brandvoice-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is what /health and `brandvoice --version` report: the
// release, plus the commit when one was stamped in.
func BuildVersion() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}

func buildAttr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}
