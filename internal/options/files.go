package options

// Commands that open files in a pending changelist, or change how files are opened.
// All of them accept "-c default", so a changelist of 0 targets the default changelist.

// add

type AddFilesCmdFlags uint32

const AddNone AddFilesCmdFlags = 0

const (
	// AddPreviewOnly (-n) shows what would be opened for add, without doing it.
	AddPreviewOnly AddFilesCmdFlags = 1 << iota
	// AddKeepWildcards (-f) allows file names with @#%* (they are escaped on add).
	AddKeepWildcards
	// AddNoIgnore (-I) skips P4IGNORE checks.
	AddNoIgnore
	// AddDowngrade (-d) re-adds files that were deleted at head.
	AddDowngrade
)

var addFilesFlags = flagTable[AddFilesCmdFlags]{
	{flag: AddDowngrade, name: "Downgrade", sw: "-d"},
	{flag: AddKeepWildcards, name: "KeepWildcards", sw: "-f"},
	{flag: AddNoIgnore, name: "NoIgnore", sw: "-I"},
	{flag: AddPreviewOnly, name: "PreviewOnly", sw: "-n"},
}

func (f AddFilesCmdFlags) String() string { return addFilesFlags.format(f) }

// AddFiles builds the switches for "p4 add". fileType is left out if empty.
func AddFiles(flags AddFilesCmdFlags, changelist int, fileType string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	addFilesFlags.apply(o, flags)
	setString(o, "-t", fileType)
	return o
}

// delete

type DeleteFilesCmdFlags uint32

const DeleteNone DeleteFilesCmdFlags = 0

const (
	DeletePreviewOnly DeleteFilesCmdFlags = 1 << iota
	// DeleteServerOnly (-k) leaves the workspace file on disk.
	DeleteServerOnly
	// DeleteUnsynced (-v) deletes files that are not synced to the workspace.
	DeleteUnsynced
)

var deleteFilesFlags = flagTable[DeleteFilesCmdFlags]{
	{flag: DeleteServerOnly, name: "ServerOnly", sw: "-k"},
	{flag: DeletePreviewOnly, name: "PreviewOnly", sw: "-n"},
	{flag: DeleteUnsynced, name: "DeleteUnsynced", sw: "-v"},
}

func (f DeleteFilesCmdFlags) String() string { return deleteFilesFlags.format(f) }

func DeleteFiles(flags DeleteFilesCmdFlags, changelist int) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	deleteFilesFlags.apply(o, flags)
	return o
}

// edit

type EditFilesCmdFlags uint32

const EditNone EditFilesCmdFlags = 0

const (
	EditPreviewOnly EditFilesCmdFlags = 1 << iota
	EditServerOnly
)

var editFilesFlags = flagTable[EditFilesCmdFlags]{
	{flag: EditServerOnly, name: "ServerOnly", sw: "-k"},
	{flag: EditPreviewOnly, name: "PreviewOnly", sw: "-n"},
}

func (f EditFilesCmdFlags) String() string { return editFilesFlags.format(f) }

func EditFiles(flags EditFilesCmdFlags, changelist int, fileType string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	editFilesFlags.apply(o, flags)
	setString(o, "-t", fileType)
	return o
}

// move

type MoveFileCmdFlags uint32

const MoveNone MoveFileCmdFlags = 0

const (
	MoveForce MoveFileCmdFlags = 1 << iota
	MoveServerOnly
	MovePreview
	// MoveRenameOnly (-r) renames a file opened for add or move/add, without a move record.
	MoveRenameOnly
)

var moveFileFlags = flagTable[MoveFileCmdFlags]{
	{flag: MoveForce, name: "Force", sw: "-f"},
	{flag: MoveServerOnly, name: "ServerOnly", sw: "-k"},
	{flag: MovePreview, name: "Preview", sw: "-n"},
	{flag: MoveRenameOnly, name: "RenameOnly", sw: "-r"},
}

func (f MoveFileCmdFlags) String() string { return moveFileFlags.format(f) }

func MoveFiles(flags MoveFileCmdFlags, changelist int, fileType string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	moveFileFlags.apply(o, flags)
	setString(o, "-t", fileType)
	return o
}

// reopen

// ReopenFiles builds the switches for "p4 reopen", which has no boolean switches.
func ReopenFiles(changelist int, fileType string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	setString(o, "-t", fileType)
	return o
}

// revert

type RevertFilesCmdFlags uint32

const RevertNone RevertFilesCmdFlags = 0

const (
	RevertPreview RevertFilesCmdFlags = 1 << iota
	// RevertUnchangedOnly (-a) only reverts files whose content is unchanged.
	RevertUnchangedOnly
	RevertServerOnly
	// RevertWipeAddFiles (-w) also deletes local copies of files opened for add.
	RevertWipeAddFiles
)

var revertFilesFlags = flagTable[RevertFilesCmdFlags]{
	{flag: RevertUnchangedOnly, name: "UnchangedOnly", sw: "-a"},
	{flag: RevertServerOnly, name: "ServerOnly", sw: "-k"},
	{flag: RevertPreview, name: "Preview", sw: "-n"},
	{flag: RevertWipeAddFiles, name: "WipeAddFiles", sw: "-w"},
}

func (f RevertFilesCmdFlags) String() string { return revertFilesFlags.format(f) }

// RevertFiles builds the switches for "p4 revert". client (-C) reverts another
// client's files, and is only allowed with ServerOnly.
func RevertFiles(flags RevertFilesCmdFlags, changelist int, client string) *Options {
	o := New()
	revertFilesFlags.apply(o, flags)
	setChangelist(o, "-c", changelist)
	setString(o, "-C", client)
	return o
}

// lock

type LockFilesCmdFlags uint32

const (
	LockNone LockFilesCmdFlags = 0
	// LockGlobal (-g) takes global locks on files in a distributed (commit/edge) setup.
	LockGlobal LockFilesCmdFlags = 1 << 0
)

var lockFilesFlags = flagTable[LockFilesCmdFlags]{
	{flag: LockGlobal, name: "Global", sw: "-g"},
}

func (f LockFilesCmdFlags) String() string { return lockFilesFlags.format(f) }

func LockFiles(flags LockFilesCmdFlags, changelist int) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	lockFilesFlags.apply(o, flags)
	return o
}

// unlock

type UnlockFilesCmdFlags uint32

const UnlockNone UnlockFilesCmdFlags = 0

const (
	UnlockForce UnlockFilesCmdFlags = 1 << iota
	// UnlockOrphaned (-x) unlocks +l files whose lock is no longer held by an open.
	UnlockOrphaned
)

var unlockFilesFlags = flagTable[UnlockFilesCmdFlags]{
	{flag: UnlockForce, name: "Force", sw: "-f"},
	{flag: UnlockOrphaned, name: "Orphaned", sw: "-x"},
}

func (f UnlockFilesCmdFlags) String() string { return unlockFilesFlags.format(f) }

// UnlockFiles builds the switches for "p4 unlock". Unlike the other commands here,
// unlock does not take "-c default", so only positive changelists are sent.
// shelvedChangelist (-s) unlocks files in a shelf.
func UnlockFiles(flags UnlockFilesCmdFlags, changelist, shelvedChangelist int) *Options {
	o := New()
	setPositive(o, "-c", changelist)
	setPositive(o, "-s", shelvedChangelist)
	unlockFilesFlags.apply(o, flags)
	return o
}

// reconcile

type ReconcileFilesCmdFlags uint32

const ReconcileNone ReconcileFilesCmdFlags = 0

const (
	ReconcilePreview ReconcileFilesCmdFlags = 1 << iota
	ReconcileAdded
	ReconcileEdited
	ReconcileDeleted
	ReconcileAllowWildcards
	ReconcileNoIgnore
	ReconcileLocalSyntax
	// ReconcileModTime (-m) compares modification times before digests.
	ReconcileModTime
	ReconcileUpdateHaveList
	// ReconcileFileType (-t) also reopens files whose filetype changed.
	ReconcileFileType
	// ReconcileClean (-w) forces the workspace to match the have list.
	ReconcileClean
)

var reconcileFilesFlags = flagTable[ReconcileFilesCmdFlags]{
	{flag: ReconcilePreview, name: "Preview", sw: "-n"},
	{flag: ReconcileAdded, name: "Added", sw: "-a"},
	{flag: ReconcileEdited, name: "Edited", sw: "-e"},
	{flag: ReconcileDeleted, name: "Deleted", sw: "-d"},
	{flag: ReconcileAllowWildcards, name: "AllowWildcards", sw: "-f"},
	{flag: ReconcileNoIgnore, name: "NoIgnore", sw: "-I"},
	{flag: ReconcileLocalSyntax, name: "LocalSyntax", sw: "-l"},
	{flag: ReconcileModTime, name: "ModTime", sw: "-m"},
	{flag: ReconcileUpdateHaveList, name: "UpdateHaveList", sw: "-k"},
	{flag: ReconcileFileType, name: "FileType", sw: "-t"},
	{flag: ReconcileClean, name: "Clean", sw: "-w"},
}

func (f ReconcileFilesCmdFlags) String() string { return reconcileFilesFlags.format(f) }

func ReconcileFiles(flags ReconcileFilesCmdFlags, changelist int) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	reconcileFilesFlags.apply(o, flags)
	return o
}
