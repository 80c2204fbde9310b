package main

import (
	"fmt"

	"github.com/danbrakeley/p4opts/internal/options"
	"github.com/spf13/pflag"
)

// requestFlags binds command line flags to an options.Request.
type requestFlags struct {
	r  options.Request
	fs *pflag.FlagSet
}

func newRequestFlags(fs *pflag.FlagSet) *requestFlags {
	rf := &requestFlags{fs: fs}
	r := &rf.r

	fs.StringSliceVarP(&r.Flags, "flag", "f", nil, `flag names, repeated or comma separated (see "p4opts flags <command>")`)

	fs.IntVarP(&r.Changelist, "changelist", "c", options.NoChangelist, "changelist (0 for the default changelist); for fstat -e, files changed at or after it")
	fs.IntVar(&r.Target, "target", options.NoChangelist, "second changelist, ie the target of unshelve or the shelf of unlock")
	fs.IntVarP(&r.Max, "max", "m", 0, "limit the number of items")

	fs.StringVarP(&r.FileType, "filetype", "t", "", "file type, ie binary+l")
	fs.StringVar(&r.Type, "type", "", "change, depot, stream or submit type, or change status")
	fs.StringVarP(&r.User, "user", "u", "", "user name")
	fs.StringVar(&r.Owner, "owner", "", "group owner")
	fs.StringVar(&r.Group, "group", "", "group name")
	fs.StringVar(&r.Client, "client", "", "client name")
	fs.StringVar(&r.Host, "host", "", "host name or address")
	fs.StringVarP(&r.Stream, "stream", "S", "", "stream path")
	fs.StringVarP(&r.Parent, "parent", "P", "", "parent stream path")
	fs.StringVarP(&r.Branch, "branch", "b", "", "branch spec name")
	fs.StringVarP(&r.Label, "label", "l", "", "label name")
	fs.StringVar(&r.Template, "template", "", "client or label to copy from")
	fs.StringVarP(&r.Filter, "filter", "e", "", "name filter (clients, branches, labels -e), job view (jobs -e) or filter expression (fstat -F, streams -F)")
	fs.StringSliceVar(&r.Fields, "fields", nil, "fields to report")
	fs.StringVarP(&r.Description, "description", "d", "", "changelist description")
	fs.StringVar(&r.Text, "text", "", "pattern, job status, fingerprint or output file")

	fs.IntVar(&r.Context, "context", 0, "lines of context around each match")
	fs.IntVar(&r.After, "after", 0, "lines after each match")
	fs.IntVar(&r.Before, "before", 0, "lines before each match")

	fs.IntVar(&r.Parallel.Threads, "threads", 0, "parallel transfer threads")
	fs.IntVar(&r.Parallel.Batch, "batch", 0, "files per parallel batch")
	fs.IntVar(&r.Parallel.BatchSize, "batchsize", 0, "bytes per parallel batch")
	fs.IntVar(&r.Parallel.Min, "min", 0, "minimum files before going parallel")
	fs.IntVar(&r.Parallel.MinSize, "minsize", 0, "minimum bytes before going parallel")

	return rf
}

// request returns the bound request, with max and parallel settings taken from
// defaults when they were not given on the command line.
func (rf *requestFlags) request(defMax int, defParallel options.ParallelOptions) options.Request {
	r := rf.r
	if !rf.fs.Changed("max") {
		r.Max = defMax
	}
	if !rf.anyChanged("threads", "batch", "batchsize", "min", "minsize") {
		r.Parallel = defParallel
	}
	return r
}

func (rf *requestFlags) anyChanged(names ...string) bool {
	for _, n := range names {
		if rf.fs.Changed(n) {
			return true
		}
	}
	return false
}

func build(command string, r options.Request) (*options.Options, error) {
	c, ok := options.Lookup(command)
	if !ok {
		return nil, fmt.Errorf(`unknown command "%s" (see "p4opts flags")`, command)
	}
	return c.Build(r)
}
