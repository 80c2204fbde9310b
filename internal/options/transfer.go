package options

// Commands that move file content between the workspace and the server.

// sync

type SyncFilesCmdFlags uint32

const SyncNone SyncFilesCmdFlags = 0

const (
	// SyncForce (-f) resyncs files even if the workspace already has them.
	SyncForce SyncFilesCmdFlags = 1 << iota
	SyncPreview
	// SyncServerOnly (-k) updates the have list without touching workspace files.
	SyncServerOnly
	// SyncPopulateClient (-p) copies files to the workspace without updating the have list.
	SyncPopulateClient
	SyncSummary
	SyncQuiet
	// SyncSafeMode (-s) refuses to overwrite workspace files that were changed outside p4.
	SyncSafeMode
	// SyncDisableParallel sends "--parallel 0", overriding any parallel settings.
	SyncDisableParallel
)

var syncFilesFlags = flagTable[SyncFilesCmdFlags]{
	{flag: SyncForce, name: "Force", sw: "-f"},
	{flag: SyncPreview, name: "Preview", sw: "-n"},
	{flag: SyncServerOnly, name: "ServerOnly", sw: "-k"},
	{flag: SyncPopulateClient, name: "PopulateClient", sw: "-p"},
	{flag: SyncSummary, name: "Summary", sw: "-N"},
	{flag: SyncQuiet, name: "Quiet", sw: "-q"},
	{flag: SyncSafeMode, name: "SafeMode", sw: "-s"},
	{flag: SyncDisableParallel, name: "DisableParallel"},
}

func (f SyncFilesCmdFlags) String() string { return syncFilesFlags.format(f) }

// SyncFiles builds the switches for "p4 sync". maxItems (-m) limits how many files
// are synced.
func SyncFiles(flags SyncFilesCmdFlags, maxItems int, parallel ParallelOptions) *Options {
	o := New()
	syncFilesFlags.apply(o, flags)
	setPositive(o, "-m", maxItems)
	setParallel(o, flags&SyncDisableParallel != 0, parallel)
	return o
}

// submit

type SubmitFilesCmdFlags uint32

const SubmitNone SubmitFilesCmdFlags = 0

const (
	// SubmitReopenFiles (-r) reopens the submitted files in the default changelist.
	SubmitReopenFiles SubmitFilesCmdFlags = 1 << iota
	// SubmitShelved (-e) submits the shelved files of the changelist. p4 does not
	// allow any other switch with -e, so every other setting is dropped.
	SubmitShelved
	SubmitDisableParallel
	// SubmitNoRetransfer skips transferring files that the server already has.
	SubmitNoRetransfer
)

var submitFilesFlags = flagTable[SubmitFilesCmdFlags]{
	{flag: SubmitReopenFiles, name: "ReopenFiles", sw: "-r"},
	{flag: SubmitShelved, name: "Shelved"},
	{flag: SubmitDisableParallel, name: "DisableParallel"},
	{flag: SubmitNoRetransfer, name: "NoRetransfer"},
}

func (f SubmitFilesCmdFlags) String() string { return submitFilesFlags.format(f) }

// SubmitFiles builds the switches for "p4 submit". A positive changelist submits
// that changelist, otherwise description (-d) is used to submit the default
// changelist. submitType (-f) overrides the client's SubmitOptions.
func SubmitFiles(flags SubmitFilesCmdFlags, changelist int, description string, submitType SubmitType, parallel ParallelOptions) *Options {
	o := New()
	if changelist > 0 {
		setPositive(o, "-c", changelist)
	} else {
		setString(o, "-d", description)
	}
	setString(o, "-f", submitType.String())
	submitFilesFlags.apply(o, flags)
	if flags&SubmitNoRetransfer != 0 {
		o.SetValue("--noretransfer", "1")
	}
	setParallel(o, flags&SubmitDisableParallel != 0, parallel)

	if flags&SubmitShelved != 0 {
		o.Clear()
		setPositive(o, "-e", changelist)
	}
	return o
}

// shelve

type ShelveFilesCmdFlags uint32

const ShelveNone ShelveFilesCmdFlags = 0

const (
	ShelveForce ShelveFilesCmdFlags = 1 << iota
	// ShelveReplace (-r) replaces the whole shelf with the opened files.
	ShelveReplace
	ShelveDelete
	// ShelvePromote (-p) promotes a shelf from an edge server to the commit server.
	ShelvePromote
	ShelveDisableParallel
)

var shelveFilesFlags = flagTable[ShelveFilesCmdFlags]{
	{flag: ShelveForce, name: "Force", sw: "-f"},
	{flag: ShelveReplace, name: "Replace", sw: "-r"},
	{flag: ShelveDelete, name: "Delete", sw: "-d"},
	{flag: ShelvePromote, name: "Promote", sw: "-p"},
	{flag: ShelveDisableParallel, name: "DisableParallel"},
}

func (f ShelveFilesCmdFlags) String() string { return shelveFilesFlags.format(f) }

// ShelveFiles builds the switches for "p4 shelve". submitType (-a) decides what
// happens to unchanged files; p4 only accepts submitunchanged and leaveunchanged.
func ShelveFiles(flags ShelveFilesCmdFlags, changelist int, submitType SubmitType, parallel ParallelOptions) *Options {
	o := New()
	setPositive(o, "-c", changelist)
	shelveFilesFlags.apply(o, flags)
	setString(o, "-a", submitType.String())
	setParallel(o, flags&ShelveDisableParallel != 0, parallel)
	return o
}

// unshelve

type UnshelveFilesCmdFlags uint32

const UnshelveNone UnshelveFilesCmdFlags = 0

const (
	UnshelveForce UnshelveFilesCmdFlags = 1 << iota
	UnshelvePreview
)

var unshelveFilesFlags = flagTable[UnshelveFilesCmdFlags]{
	{flag: UnshelveForce, name: "Force", sw: "-f"},
	{flag: UnshelvePreview, name: "Preview", sw: "-n"},
}

func (f UnshelveFilesCmdFlags) String() string { return unshelveFilesFlags.format(f) }

// UnshelveFiles builds the switches for "p4 unshelve". shelvedChangelist (-s) is
// the shelf to restore from, and targetChangelist (-c) is where the files are
// opened (0 for the default changelist).
func UnshelveFiles(flags UnshelveFilesCmdFlags, shelvedChangelist, targetChangelist int, branch, stream string) *Options {
	o := New()
	setPositive(o, "-s", shelvedChangelist)
	setChangelist(o, "-c", targetChangelist)
	unshelveFilesFlags.apply(o, flags)
	setString(o, "-b", branch)
	setString(o, "-S", stream)
	return o
}
