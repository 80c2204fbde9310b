package options

import (
	"fmt"
	"sort"
)

// Request carries every parameter a command builder might take, so that tools can
// build options for a command picked at runtime. Each command only reads the
// fields it has switches for.
type Request struct {
	Flags []string // flag names, ie "PreviewOnly"

	Changelist int // NoChangelist to leave out
	Target     int // a second changelist (unshelve -c, unlock -s)
	Max        int

	FileType    string
	User        string
	Owner       string
	Group       string
	Client      string
	Host        string
	Stream      string
	Parent      string
	Branch      string
	Label       string
	Template    string
	Filter      string
	Fields      []string
	Description string
	Text        string // pattern, status, fingerprint or output file
	Type        string // change, depot, stream or submit type, by name

	Context, After, Before int

	Parallel ParallelOptions
}

// Command is a p4 command that has a builder.
type Command struct {
	Name  string
	Flags []FlagInfo
	build func(r Request) (*Options, error)
}

// Build parses r.Flags for this command and calls its builder.
func (c Command) Build(r Request) (*Options, error) {
	o, err := c.build(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	return o, nil
}

// Lookup finds a command by its p4 name.
func Lookup(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// CommandNames returns every registered command name, sorted.
func CommandNames() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// command ties a flag table to a builder that takes the parsed flags.
func command[F ~uint32](name string, t flagTable[F], fn func(F, Request) (*Options, error)) Command {
	return Command{
		Name:  name,
		Flags: t.infos(),
		build: func(r Request) (*Options, error) {
			flags, err := t.parse(r.Flags)
			if err != nil {
				return nil, err
			}
			return fn(flags, r)
		},
	}
}

// same as command, for builders that can't fail
func simple[F ~uint32](name string, t flagTable[F], fn func(F, Request) *Options) Command {
	return command(name, t, func(f F, r Request) (*Options, error) {
		return fn(f, r), nil
	})
}

type noFlags uint32

var registry = buildRegistry()

func buildRegistry() map[string]Command {
	cmds := []Command{
		simple("add", addFilesFlags, func(f AddFilesCmdFlags, r Request) *Options {
			return AddFiles(f, r.Changelist, r.FileType)
		}),
		simple("delete", deleteFilesFlags, func(f DeleteFilesCmdFlags, r Request) *Options {
			return DeleteFiles(f, r.Changelist)
		}),
		simple("edit", editFilesFlags, func(f EditFilesCmdFlags, r Request) *Options {
			return EditFiles(f, r.Changelist, r.FileType)
		}),
		simple("move", moveFileFlags, func(f MoveFileCmdFlags, r Request) *Options {
			return MoveFiles(f, r.Changelist, r.FileType)
		}),
		simple("reopen", flagTable[noFlags]{}, func(_ noFlags, r Request) *Options {
			return ReopenFiles(r.Changelist, r.FileType)
		}),
		simple("revert", revertFilesFlags, func(f RevertFilesCmdFlags, r Request) *Options {
			return RevertFiles(f, r.Changelist, r.Client)
		}),
		simple("lock", lockFilesFlags, func(f LockFilesCmdFlags, r Request) *Options {
			return LockFiles(f, r.Changelist)
		}),
		simple("unlock", unlockFilesFlags, func(f UnlockFilesCmdFlags, r Request) *Options {
			return UnlockFiles(f, r.Changelist, r.Target)
		}),
		simple("reconcile", reconcileFilesFlags, func(f ReconcileFilesCmdFlags, r Request) *Options {
			return ReconcileFiles(f, r.Changelist)
		}),

		simple("integrate", integrateFilesFlags, func(f IntegrateFilesCmdFlags, r Request) *Options {
			return IntegrateFiles(f, r.Changelist, r.Max, r.Branch, r.Stream, r.Parent)
		}),
		simple("copy", copyFilesFlags, func(f CopyFilesCmdFlags, r Request) *Options {
			return CopyFiles(f, r.Changelist, r.Max, r.Branch, r.Stream, r.Parent)
		}),
		simple("merge", mergeFilesFlags, func(f MergeFilesCmdFlags, r Request) *Options {
			return MergeFiles(f, r.Changelist, r.Max, r.Branch, r.Stream, r.Parent)
		}),
		simple("resolve", resolveFilesFlags, func(f ResolveFilesCmdFlags, r Request) *Options {
			return ResolveFiles(f, r.Changelist)
		}),
		simple("resolved", resolvedFilesFlags, func(f ResolvedFilesCmdFlags, _ Request) *Options {
			return ResolvedFiles(f)
		}),
		simple("integrated", integratedFlags, func(f IntegratedCmdFlags, r Request) *Options {
			return Integrated(f, r.Branch, r.Changelist)
		}),
		simple("istat", istatFlags, func(f IstatCmdFlags, _ Request) *Options {
			return IntegrationStatus(f)
		}),

		simple("sync", syncFilesFlags, func(f SyncFilesCmdFlags, r Request) *Options {
			return SyncFiles(f, r.Max, r.Parallel)
		}),
		command("submit", submitFilesFlags, func(f SubmitFilesCmdFlags, r Request) (*Options, error) {
			st, err := ParseSubmitType(r.Type)
			if err != nil {
				return nil, err
			}
			return SubmitFiles(f, r.Changelist, r.Description, st, r.Parallel), nil
		}),
		command("shelve", shelveFilesFlags, func(f ShelveFilesCmdFlags, r Request) (*Options, error) {
			st, err := ParseSubmitType(r.Type)
			if err != nil {
				return nil, err
			}
			return ShelveFiles(f, r.Changelist, st, r.Parallel), nil
		}),
		simple("unshelve", unshelveFilesFlags, func(f UnshelveFilesCmdFlags, r Request) *Options {
			return UnshelveFiles(f, r.Changelist, r.Target, r.Branch, r.Stream)
		}),

		simple("user", userFlags, func(f UserCmdFlags, _ Request) *Options {
			return UserSpec(f)
		}),
		simple("client", clientFlags, func(f ClientCmdFlags, r Request) *Options {
			return ClientSpec(f, r.Template, r.Stream)
		}),
		command("change", changeFlags, func(f ChangeCmdFlags, r Request) (*Options, error) {
			ct, err := ParseChangeType(r.Type)
			if err != nil {
				return nil, err
			}
			return ChangeSpec(f, ct), nil
		}),
		simple("group", groupFlags, func(f GroupCmdFlags, _ Request) *Options {
			return GroupSpec(f)
		}),
		simple("job", jobFlags, func(f JobCmdFlags, _ Request) *Options {
			return JobSpec(f)
		}),
		command("stream", streamFlags, func(f StreamCmdFlags, r Request) (*Options, error) {
			st, err := ParseStreamType(r.Type)
			if err != nil {
				return nil, err
			}
			return StreamSpec(f, r.Parent, st), nil
		}),
		command("depot", depotFlags, func(f DepotCmdFlags, r Request) (*Options, error) {
			dt, err := ParseDepotType(r.Type)
			if err != nil {
				return nil, err
			}
			return DepotSpec(f, dt), nil
		}),
		simple("branch", branchFlags, func(f BranchSpecCmdFlags, r Request) *Options {
			return BranchSpec(f, r.Stream, r.Parent)
		}),
		simple("label", labelFlags, func(f LabelCmdFlags, r Request) *Options {
			return LabelSpec(f, r.Template)
		}),
		simple("triggers", triggersFlags, func(f TriggersCmdFlags, _ Request) *Options {
			return Triggers(f)
		}),
		simple("typemap", typemapFlags, func(f TypemapCmdFlags, _ Request) *Options {
			return Typemap(f)
		}),
		simple("protect", protectFlags, func(f ProtectCmdFlags, _ Request) *Options {
			return Protect(f)
		}),

		simple("users", usersFlags, func(f UsersCmdFlags, r Request) *Options {
			return ListUsers(f, r.Max)
		}),
		simple("clients", clientsFlags, func(f ClientsCmdFlags, r Request) *Options {
			return ListClients(f, r.User, r.Filter, r.Max, r.Stream)
		}),
		command("changes", changesFlags, func(f ChangesCmdFlags, r Request) (*Options, error) {
			status, err := ParseChangeStatus(r.Type)
			if err != nil {
				return nil, err
			}
			return ListChanges(f, r.Client, r.Max, status, r.User), nil
		}),
		simple("groups", groupsFlags, func(f GroupsCmdFlags, r Request) *Options {
			return ListGroups(f, r.Max, r.User, r.Owner)
		}),
		simple("jobs", jobsFlags, func(f JobsCmdFlags, r Request) *Options {
			return ListJobs(f, r.Max, r.Filter)
		}),
		simple("files", filesFlags, func(f FilesCmdFlags, r Request) *Options {
			return ListFiles(f, r.Max)
		}),
		simple("filelog", filelogFlags, func(f FilelogCmdFlags, r Request) *Options {
			return FileLog(f, r.Changelist, r.Max)
		}),
		simple("streams", streamsFlags, func(f StreamsCmdFlags, r Request) *Options {
			return ListStreams(f, r.Filter, r.Fields, r.Max)
		}),
		simple("branches", branchesFlags, func(f BranchesCmdFlags, r Request) *Options {
			return ListBranches(f, r.User, r.Filter, r.Max)
		}),
		simple("labels", labelsFlags, func(f LabelsCmdFlags, r Request) *Options {
			return ListLabels(f, r.User, r.Filter, r.Max)
		}),
		simple("opened", openedFlags, func(f OpenedCmdFlags, r Request) *Options {
			return OpenedFiles(f, r.Changelist, r.Client, r.User, r.Max)
		}),
		simple("fstat", fstatFlags, func(f FstatCmdFlags, r Request) *Options {
			return FileStat(f, r.Filter, r.Fields, r.Max, r.Changelist)
		}),
		simple("dirs", dirsFlags, func(f DirsCmdFlags, r Request) *Options {
			return Dirs(f, r.Stream)
		}),
		simple("protects", protectsFlags, func(f ProtectsCmdFlags, r Request) *Options {
			return Protects(f, r.Group, r.User, r.Host)
		}),
		simple("reviews", flagTable[noFlags]{}, func(_ noFlags, r Request) *Options {
			return Reviews(r.Changelist, r.Client)
		}),

		simple("diff2", diff2Flags, func(f Diff2CmdFlags, r Request) *Options {
			return Diff2(f, r.Branch, r.Stream, r.Parent)
		}),
		simple("diff", diffFlags, func(f DiffCmdFlags, r Request) *Options {
			return DiffFiles(f, r.Changelist, r.Max)
		}),
		simple("describe", describeFlags, func(f DescribeCmdFlags, r Request) *Options {
			return Describe(f, r.Max)
		}),
		simple("print", printFlags, func(f PrintCmdFlags, r Request) *Options {
			return PrintFiles(f, r.Text, r.Max)
		}),
		simple("annotate", annotateFlags, func(f AnnotateCmdFlags, _ Request) *Options {
			return Annotate(f)
		}),
		simple("grep", grepFlags, func(f GrepCmdFlags, r Request) *Options {
			return Grep(f, r.Text, r.Context, r.After, r.Before)
		}),

		simple("fix", fixJobsFlags, func(f FixJobsCmdFlags, r Request) *Options {
			return FixJobs(f, r.Changelist, r.Text)
		}),
		simple("login", loginFlags, func(f LoginCmdFlags, r Request) *Options {
			return Login(f, r.Host)
		}),
		simple("logout", logoutFlags, func(f LogoutCmdFlags, _ Request) *Options {
			return Logout(f)
		}),
		simple("tag", tagFlags, func(f TagCmdFlags, r Request) *Options {
			return TagFiles(f, r.Label)
		}),
		simple("labelsync", labelSyncFlags, func(f LabelSyncCmdFlags, r Request) *Options {
			return LabelSync(f, r.Label)
		}),
		simple("counter", counterFlags, func(f CounterCmdFlags, _ Request) *Options {
			return Counter(f)
		}),
		simple("trust", trustFlags, func(f TrustCmdFlags, r Request) *Options {
			return Trust(f, r.Text)
		}),
		simple("info", infoFlags, func(f InfoCmdFlags, _ Request) *Options {
			return Info(f)
		}),
	}

	out := make(map[string]Command, len(cmds))
	for _, c := range cmds {
		out[c.Name] = c
	}
	return out
}
