package options

import (
	"fmt"
	"strconv"
	"strings"
)

// NoChangelist omits a changelist switch. For commands that can open files in the
// default pending changelist, a changelist of 0 renders as "default".
const NoChangelist = -1

// flagBit ties one bit of a command's flags to the switch it turns on.
type flagBit[F ~uint32] struct {
	flag F
	name string
	sw   string // empty when the builder handles the bit itself
	// bits that share a non-zero group are mutually exclusive, and the first one
	// set (in table order) wins
	group int
}

type flagTable[F ~uint32] []flagBit[F]

// apply sets the switch of every bit in flags, in table order.
func (t flagTable[F]) apply(o *Options, flags F) {
	var done map[int]bool
	for _, b := range t {
		if len(b.sw) == 0 || flags&b.flag == 0 {
			continue
		}
		if b.group != 0 {
			if done[b.group] {
				continue
			}
			if done == nil {
				done = make(map[int]bool, 2)
			}
			done[b.group] = true
		}
		o.Set(b.sw)
	}
}

// format returns the names of the bits in flags, joined by "|".
func (t flagTable[F]) format(flags F) string {
	if flags == 0 {
		return "None"
	}
	var names []string
	var known F
	for _, b := range t {
		known |= b.flag
		if flags&b.flag != 0 {
			names = append(names, b.name)
		}
	}
	if rest := flags &^ known; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}

// parse turns flag names (case-insensitive) back into bits.
func (t flagTable[F]) parse(names []string) (F, error) {
	var out F
	for _, name := range names {
		name = strings.TrimSpace(name)
		if len(name) == 0 || strings.EqualFold(name, "None") {
			continue
		}
		found := false
		for _, b := range t {
			if strings.EqualFold(b.name, name) {
				out |= b.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unrecognized flag %s", name)
		}
	}
	return out, nil
}

func (t flagTable[F]) infos() []FlagInfo {
	out := make([]FlagInfo, 0, len(t))
	for _, b := range t {
		out = append(out, FlagInfo{Name: b.name, Switch: b.sw, Group: b.group})
	}
	return out
}

// FlagInfo describes one flag of a command, for tools that list them.
type FlagInfo struct {
	Name   string
	Switch string // empty if the flag changes how other switches are rendered
	Group  int    // non-zero for mutually exclusive flags
}

// ParallelOptions configures parallel file transfer for sync, submit and shelve.
// Only fields above zero are sent, and nothing is sent unless Threads is set.
type ParallelOptions struct {
	Threads   int
	Batch     int
	BatchSize int
	Min       int
	MinSize   int
}

// String renders the value of --parallel, ie "threads=4,batch=8".
func (p ParallelOptions) String() string {
	if p.Threads <= 0 {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, f := range []struct {
		key string
		val int
	}{
		{"threads", p.Threads},
		{"batch", p.Batch},
		{"batchsize", p.BatchSize},
		{"min", p.Min},
		{"minsize", p.MinSize},
	} {
		if f.val > 0 {
			parts = append(parts, f.key+"="+strconv.Itoa(f.val))
		}
	}
	return strings.Join(parts, ",")
}

// setParallel sets --parallel. disable wins over any thread settings.
func setParallel(o *Options, disable bool, p ParallelOptions) {
	if disable {
		o.SetValue("--parallel", "0")
		return
	}
	if v := p.String(); len(v) > 0 {
		o.SetValue("--parallel", v)
	}
}

// setChangelist renders cl if positive, and "default" for 0.
func setChangelist(o *Options, sw string, cl int) {
	switch {
	case cl == 0:
		o.SetValue(sw, "default")
	case cl > 0:
		o.SetValue(sw, strconv.Itoa(cl))
	}
}

// setPositive renders n only if it is above zero.
func setPositive(o *Options, sw string, n int) {
	if n > 0 {
		o.SetValue(sw, strconv.Itoa(n))
	}
}

func setString(o *Options, sw, s string) {
	if len(s) > 0 {
		o.SetValue(sw, s)
	}
}

func setList(o *Options, sw string, list []string) {
	if len(list) > 0 {
		o.SetValue(sw, strings.Join(list, ","))
	}
}

// setFilter uses -E for a case-insensitive name filter, and -e otherwise.
func setFilter(o *Options, ignoreCase bool, filter string) {
	if len(filter) == 0 {
		return
	}
	if ignoreCase {
		o.SetValue("-E", filter)
	} else {
		o.SetValue("-e", filter)
	}
}
