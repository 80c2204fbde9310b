package p4

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/danbrakeley/bsh"
	"github.com/danbrakeley/p4opts/internal/options"
)

type P4 struct {
	Port   string
	User   string
	Client string

	sh *bsh.Bsh

	// derived values
	displayName string

	streamMutex sync.Mutex
	streamName  string
	streamDepth int
}

func New(sh *bsh.Bsh, port, user, client string) P4 {
	// try to find the hostname without any protocol prefix or port suffix
	name := port
	s := strings.Split(port, ":")
	i := len(s) - 1
	if i > 0 {
		_, err := strconv.ParseInt(s[i], 10, 32)
		if err == nil {
			i--
		}
		name = s[i]
	}

	return P4{
		Port:        port,
		User:        user,
		Client:      client,
		sh:          sh,
		displayName: name,
	}
}

func (p *P4) DisplayName() string {
	return p.displayName
}

func (p *P4) SetStreamName(stream string) error {
	p.streamMutex.Lock()
	defer p.streamMutex.Unlock()
	depth, err := streamDepthFromName(stream)
	if err != nil {
		return err
	}
	p.streamName = stream
	p.streamDepth = depth
	return nil
}

// Globals returns the switches that go before the command name (-p, -u and -c), for
// the connection settings that are not empty.
func (p *P4) Globals() *options.Options {
	g := options.New()
	if len(p.Port) > 0 {
		g.SetValue("-p", p.Port)
	}
	if len(p.User) > 0 {
		g.SetValue("-u", p.User)
	}
	if len(p.Client) > 0 {
		g.SetValue("-c", p.Client)
	}
	return g
}

// Call describes a single invocation of p4.
type Call struct {
	Global  *options.Options // added after the connection globals
	Fields  []string         // "Name=value" pairs, each sent as --field
	Command string
	Options *options.Options
	Args    []string
}

// CommandLine renders c as a command line that bsh can run. Every token that needs
// it is quoted with options.QuoteArg, so paths with spaces or backslashes and
// descriptions with quotes reach p4 unchanged.
func (p *P4) CommandLine(c Call) string {
	g := p.Globals()
	g.Merge(c.Global)

	var b strings.Builder
	b.Grow(128)
	b.WriteString("p4")
	if s := g.String(); len(s) > 0 {
		b.WriteString(" ")
		b.WriteString(s)
	}
	for _, f := range c.Fields {
		b.WriteString(" --field ")
		b.WriteString(options.QuoteArg(f))
	}
	b.WriteString(" ")
	b.WriteString(c.Command)
	if s := c.Options.String(); len(s) > 0 {
		b.WriteString(" ")
		b.WriteString(s)
	}
	for _, a := range c.Args {
		b.WriteString(" ")
		b.WriteString(options.QuoteArg(a))
	}
	return b.String()
}

// Run runs "p4 <command> <opts> <args>", with output going wherever the shell's
// output goes.
func (p *P4) Run(command string, opts *options.Options, args ...string) error {
	return p.run(Call{Command: command, Options: opts, Args: args})
}

// Output runs "p4 <command> <opts> <args>" and returns what it wrote to stdout.
func (p *P4) Output(command string, opts *options.Options, args ...string) (string, error) {
	return p.output(Call{Command: command, Options: opts, Args: args}, nil)
}

// helpers

func (p *P4) run(c Call) error {
	return p.sh.Cmd(p.CommandLine(c)).RunErr()
}

func (p *P4) output(c Call, in io.Reader) (string, error) {
	var sb strings.Builder
	sb.Grow(1024)
	cmd := p.sh.Cmd(p.CommandLine(c)).Out(&sb)
	if in != nil {
		cmd = cmd.In(in)
	}
	err := cmd.RunErr()
	return sb.String(), err
}

// ztag adds "-z tag" to a call's global options, so the output is one field per line.
func ztag(c Call) Call {
	g := options.New()
	g.SetValue("-z", "tag")
	g.Merge(c.Global)
	c.Global = g
	return c
}

// streamDepthFromName counts the levels in a stream path. Streams live at least
// one level below a depot, so "//depot" alone is not a stream.
func streamDepthFromName(stream string) (int, error) {
	if !strings.HasPrefix(stream, "//") {
		return 0, fmt.Errorf(`stream "%s" does not begin with "//"`, stream)
	}
	count := -1
	for _, r := range stream {
		if r == '/' {
			count++
		}
	}
	if count < 2 {
		return 0, fmt.Errorf(`unable to get stream depth of "%s"`, stream)
	}
	return count, nil
}

// getFieldFromSpec extracts the value of a field from a perforce spec that was formatted via -z tag
func getFieldFromSpec(spec, field string) string {
	lines := strings.Split(spec, "\n")
	prefix := fmt.Sprintf("... %s ", field)
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return ""
}

// cmdAndScan streams the output of a call into a scanner, which calls the passed func for each line
func (p *P4) cmdAndScan(c Call, fnEachLine func(line string) error) error {
	r, w := io.Pipe()
	chCmd := make(chan error)
	go func() {
		err := p.sh.Cmd(p.CommandLine(c)).Out(w).RunErr()
		w.Close()
		chCmd <- err
	}()

	var lineErr error
	s := bufio.NewScanner(r)
	for s.Scan() {
		if err := fnEachLine(s.Text()); err != nil {
			lineErr = err
			r.CloseWithError(err)
			break
		}
	}
	// drain whatever is left so the command can exit
	io.Copy(io.Discard, r)

	err := <-chCmd
	if lineErr != nil {
		return lineErr
	}
	if err == nil {
		err = s.Err()
	}
	return err
}
