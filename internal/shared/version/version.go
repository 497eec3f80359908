// Package version exposes the build identity the display uses to detect a new deployment.
package version

// DevelopmentBuild is reported when no build time was stamped at link time or in config.
const DevelopmentBuild = "development"

// BuildTime is set with -ldflags "-X github.com/lumenhq/lumen/internal/shared/version.BuildTime=...".
var BuildTime = ""

// Resolve returns the effective build identity: the configured override,
// then the link-time stamp, then DevelopmentBuild.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}
	if BuildTime != "" {
		return BuildTime
	}
	return DevelopmentBuild
}
