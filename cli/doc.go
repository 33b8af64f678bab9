// Package cli contains the command line interface for multitext.
//
// # Usage
//
//	multitext [flags] [command]
//
// Every command reads one document, named with --source (standard input by
// default). A relative path that does not exist in the working directory is
// searched for in the "sections" subdirectory of the configuration directory
// and then in each directory listed in $MULTITEXT_PATH.
//
// # Commands
//
//   - list: print section names (the default). --where filters with an
//     expression over name, body, lines, bytes and index.
//   - get NAME...: print section bodies.
//   - fmt native|json|yaml: reformat the document.
//   - env NAME: print a section holding dotenv assignments.
//   - browse: pick a section interactively and print it.
//   - init: write the configuration file from the current flags.
//
// # Configuration
//
// The configuration file is itself a multitext document whose sections are
// named after flags:
//
//	# multitext header
//	# log-level
//	debug
//	# strict
//	true
//
// A config.json file next to it is read as well. Flags given on the command
// line take precedence.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory
package cli
