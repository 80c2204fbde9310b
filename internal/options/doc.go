// Package options builds the command line switches for p4 commands.
//
// Each command has a bitflag type for its boolean switches and a builder that
// turns those flags plus a few typed parameters into an ordered set of switches:
//
//	o := options.SyncFiles(options.SyncForce, 10, options.ParallelOptions{Threads: 4})
//	o.Args() // [-f -m 10 --parallel threads=4]
//
// Builders never fail. Flags that don't apply to a command are ignored, and
// conflicting flags are settled by a fixed precedence.
package options
