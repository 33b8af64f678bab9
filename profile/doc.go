// Package profile provides optional runtime profiling for multitext.
//
// Profiling is backed by [github.com/pkg/profile] and is compiled in only when
// building with the "pprof" tag:
//
//	go build -tags pprof .
//
// Without the tag every [Config.Start] returns a no-op controller, and
// [Modes] is empty.
//
// A profiler is described by a [Config] closure refined with options:
//
//	var cfg profile.Config = func() (string, string, bool) { return "", "", false }
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/multitext")(cfg)
//	defer cfg.Start().Stop()
//
// Profiles are written to the configured directory as <mode>.pprof and can be
// inspected with "go tool pprof". Building with the tag also registers the
// net/http/pprof handlers on the default mux.
package profile

// Tag is the build tag that enables profiling.
const Tag = `pprof`
