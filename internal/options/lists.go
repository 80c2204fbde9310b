package options

// Commands that list things on the server.

// users

type UsersCmdFlags uint32

const UsersNone UsersCmdFlags = 0

const (
	// UsersIncludeAll (-a) includes service and operator users.
	UsersIncludeAll UsersCmdFlags = 1 << iota
	UsersLongOutput
	UsersReplicaUsers
)

var usersFlags = flagTable[UsersCmdFlags]{
	{flag: UsersIncludeAll, name: "IncludeAll", sw: "-a"},
	{flag: UsersLongOutput, name: "LongOutput", sw: "-l"},
	{flag: UsersReplicaUsers, name: "ReplicaUsers", sw: "-r"},
}

func (f UsersCmdFlags) String() string { return usersFlags.format(f) }

func ListUsers(flags UsersCmdFlags, maxItems int) *Options {
	o := New()
	usersFlags.apply(o, flags)
	setPositive(o, "-m", maxItems)
	return o
}

// clients

type ClientsCmdFlags uint32

const ClientsNone ClientsCmdFlags = 0

const (
	// ClientsIgnoreCase sends the name filter with -E instead of -e.
	ClientsIgnoreCase ClientsCmdFlags = 1 << iota
	ClientsUnloaded
	ClientsAll
)

var clientsFlags = flagTable[ClientsCmdFlags]{
	{flag: ClientsIgnoreCase, name: "IgnoreCase"},
	{flag: ClientsUnloaded, name: "Unloaded", sw: "-U"},
	{flag: ClientsAll, name: "All", sw: "-a"},
}

func (f ClientsCmdFlags) String() string { return clientsFlags.format(f) }

// ListClients builds the switches for "p4 clients". nameFilter is a wildcard pattern
// matched against client names.
func ListClients(flags ClientsCmdFlags, user, nameFilter string, maxItems int, stream string) *Options {
	o := New()
	clientsFlags.apply(o, flags)
	setString(o, "-u", user)
	setFilter(o, flags&ClientsIgnoreCase != 0, nameFilter)
	setPositive(o, "-m", maxItems)
	setString(o, "-S", stream)
	return o
}

// changes

type ChangesCmdFlags uint32

const ChangesNone ChangesCmdFlags = 0

const (
	ChangesIncludeTime ChangesCmdFlags = 1 << iota
	ChangesLongDescription
	// ChangesTruncatedDescription (-L) shows descriptions cut to 250 characters.
	ChangesTruncatedDescription
	// ChangesIncludeIntegrated (-i) includes changes integrated into the given files.
	ChangesIncludeIntegrated
)

var changesFlags = flagTable[ChangesCmdFlags]{
	{flag: ChangesIncludeIntegrated, name: "IncludeIntegrated", sw: "-i"},
	{flag: ChangesIncludeTime, name: "IncludeTime", sw: "-t"},
	{flag: ChangesLongDescription, name: "LongDescription", sw: "-l"},
	{flag: ChangesTruncatedDescription, name: "TruncatedDescription", sw: "-L"},
}

func (f ChangesCmdFlags) String() string { return changesFlags.format(f) }

func ListChanges(flags ChangesCmdFlags, client string, maxItems int, status ChangeStatus, user string) *Options {
	o := New()
	changesFlags.apply(o, flags)
	setString(o, "-c", client)
	setPositive(o, "-m", maxItems)
	setString(o, "-s", status.String())
	setString(o, "-u", user)
	return o
}

// groups

type GroupsCmdFlags uint32

const GroupsNone GroupsCmdFlags = 0

const (
	// GroupsIndirectMembership (-i) includes groups the user belongs to through other groups.
	GroupsIndirectMembership GroupsCmdFlags = 1 << iota
	GroupsValues
)

var groupsFlags = flagTable[GroupsCmdFlags]{
	{flag: GroupsIndirectMembership, name: "IndirectMembership", sw: "-i"},
	{flag: GroupsValues, name: "Values", sw: "-v"},
}

func (f GroupsCmdFlags) String() string { return groupsFlags.format(f) }

func ListGroups(flags GroupsCmdFlags, maxItems int, user, owner string) *Options {
	o := New()
	groupsFlags.apply(o, flags)
	setPositive(o, "-m", maxItems)
	setString(o, "-u", user)
	setString(o, "-o", owner)
	return o
}

// jobs

type JobsCmdFlags uint32

const JobsNone JobsCmdFlags = 0

const (
	JobsIncludeIntegrated JobsCmdFlags = 1 << iota
	JobsLongDescriptions
	JobsReverseSort
)

var jobsFlags = flagTable[JobsCmdFlags]{
	{flag: JobsIncludeIntegrated, name: "IncludeIntegrated", sw: "-i"},
	{flag: JobsLongDescriptions, name: "LongDescriptions", sw: "-l"},
	{flag: JobsReverseSort, name: "ReverseSort", sw: "-r"},
}

func (f JobsCmdFlags) String() string { return jobsFlags.format(f) }

// ListJobs builds the switches for "p4 jobs". jobView (-e) is a job query, ie
// "status=open user=bob".
func ListJobs(flags JobsCmdFlags, maxItems int, jobView string) *Options {
	o := New()
	jobsFlags.apply(o, flags)
	setPositive(o, "-m", maxItems)
	setString(o, "-e", jobView)
	return o
}

// files

type FilesCmdFlags uint32

const FilesNone FilesCmdFlags = 0

const (
	FilesAllRevisions FilesCmdFlags = 1 << iota
	FilesIncludeArchives
	FilesExcludeDeleted
	FilesUnloaded
)

var filesFlags = flagTable[FilesCmdFlags]{
	{flag: FilesAllRevisions, name: "AllRevisions", sw: "-a"},
	{flag: FilesIncludeArchives, name: "IncludeArchives", sw: "-A"},
	{flag: FilesExcludeDeleted, name: "ExcludeDeleted", sw: "-e"},
	{flag: FilesUnloaded, name: "Unloaded", sw: "-U"},
}

func (f FilesCmdFlags) String() string { return filesFlags.format(f) }

func ListFiles(flags FilesCmdFlags, maxItems int) *Options {
	o := New()
	filesFlags.apply(o, flags)
	setPositive(o, "-m", maxItems)
	return o
}

// filelog

type FilelogCmdFlags uint32

const FilelogNone FilelogCmdFlags = 0

const (
	FilelogContentHistory FilelogCmdFlags = 1 << iota
	FilelogFollowIntegrations
	FilelogFullDescriptions
	FilelogLongDescriptions
	FilelogShowTime
	FilelogOmitPromoted
	FilelogShortForm
)

var filelogFlags = flagTable[FilelogCmdFlags]{
	{flag: FilelogContentHistory, name: "ContentHistory", sw: "-h"},
	{flag: FilelogFollowIntegrations, name: "FollowIntegrations", sw: "-i"},
	{flag: FilelogFullDescriptions, name: "FullDescriptions", sw: "-l"},
	{flag: FilelogLongDescriptions, name: "LongDescriptions", sw: "-L"},
	{flag: FilelogShowTime, name: "ShowTime", sw: "-t"},
	{flag: FilelogOmitPromoted, name: "OmitPromoted", sw: "-p"},
	{flag: FilelogShortForm, name: "ShortForm", sw: "-s"},
}

func (f FilelogCmdFlags) String() string { return filelogFlags.format(f) }

// FileLog builds the switches for "p4 filelog". changelist (-c) shows only
// revisions submitted at or before it, and maxRevs (-m) limits revisions per file.
func FileLog(flags FilelogCmdFlags, changelist, maxRevs int) *Options {
	o := New()
	setPositive(o, "-c", changelist)
	filelogFlags.apply(o, flags)
	setPositive(o, "-m", maxRevs)
	return o
}

// streams

type StreamsCmdFlags uint32

const StreamsNone StreamsCmdFlags = 0

const (
	StreamsUnloaded StreamsCmdFlags = 1 << iota
	StreamsAll
)

var streamsFlags = flagTable[StreamsCmdFlags]{
	{flag: StreamsUnloaded, name: "Unloaded", sw: "-U"},
	{flag: StreamsAll, name: "All", sw: "-a"},
}

func (f StreamsCmdFlags) String() string { return streamsFlags.format(f) }

// ListStreams builds the switches for "p4 streams". filter (-F) is an expression
// over stream fields, and fields (-T) limits which fields are reported.
func ListStreams(flags StreamsCmdFlags, filter string, fields []string, maxItems int) *Options {
	o := New()
	streamsFlags.apply(o, flags)
	setString(o, "-F", filter)
	setList(o, "-T", fields)
	setPositive(o, "-m", maxItems)
	return o
}

// branches

type BranchesCmdFlags uint32

const (
	BranchesNone       BranchesCmdFlags = 0
	BranchesIgnoreCase BranchesCmdFlags = 1 << 0
)

var branchesFlags = flagTable[BranchesCmdFlags]{
	{flag: BranchesIgnoreCase, name: "IgnoreCase"},
}

func (f BranchesCmdFlags) String() string { return branchesFlags.format(f) }

func ListBranches(flags BranchesCmdFlags, user, nameFilter string, maxItems int) *Options {
	o := New()
	setString(o, "-u", user)
	setFilter(o, flags&BranchesIgnoreCase != 0, nameFilter)
	setPositive(o, "-m", maxItems)
	return o
}

// labels

type LabelsCmdFlags uint32

const LabelsNone LabelsCmdFlags = 0

const (
	LabelsIgnoreCase LabelsCmdFlags = 1 << iota
	LabelsUnloaded
)

var labelsFlags = flagTable[LabelsCmdFlags]{
	{flag: LabelsIgnoreCase, name: "IgnoreCase"},
	{flag: LabelsUnloaded, name: "Unloaded", sw: "-U"},
}

func (f LabelsCmdFlags) String() string { return labelsFlags.format(f) }

func ListLabels(flags LabelsCmdFlags, user, nameFilter string, maxItems int) *Options {
	o := New()
	labelsFlags.apply(o, flags)
	setString(o, "-u", user)
	setFilter(o, flags&LabelsIgnoreCase != 0, nameFilter)
	setPositive(o, "-m", maxItems)
	return o
}

// opened

type OpenedCmdFlags uint32

const OpenedNone OpenedCmdFlags = 0

const (
	// OpenedAllClients (-a) lists files opened by every client, not just the current one.
	OpenedAllClients OpenedCmdFlags = 1 << iota
	OpenedShortOutput
	// OpenedExclusive (-x) lists files opened with +l or +m on any client.
	OpenedExclusive
)

var openedFlags = flagTable[OpenedCmdFlags]{
	{flag: OpenedAllClients, name: "AllClients", sw: "-a"},
	{flag: OpenedShortOutput, name: "ShortOutput", sw: "-s"},
	{flag: OpenedExclusive, name: "Exclusive", sw: "-x"},
}

func (f OpenedCmdFlags) String() string { return openedFlags.format(f) }

func OpenedFiles(flags OpenedCmdFlags, changelist int, client, user string, maxItems int) *Options {
	o := New()
	openedFlags.apply(o, flags)
	setChangelist(o, "-c", changelist)
	setString(o, "-C", client)
	setString(o, "-u", user)
	setPositive(o, "-m", maxItems)
	return o
}

// fstat

type FstatCmdFlags uint32

const FstatNone FstatCmdFlags = 0

const (
	FstatAttributes FstatCmdFlags = 1 << iota
	FstatAttributesHex
	FstatAllRevisions
	// FstatFileSizeDigest (-Ol) includes fileSize and digest.
	FstatFileSizeDigest
	FstatLocalPath
	FstatPendingIntegrations
	FstatNoClientData

	FstatClientMapped
	FstatHaveOnly
	FstatNeedSync
	FstatOpened
	FstatNeedResolve
	// FstatShelved (-Rs) reports shelved files, and needs afterChange set to the shelf.
	FstatShelved

	FstatSortByType
	FstatSortByDate
	FstatSortByHeadRev
	FstatSortByHaveRev
	FstatSortBySize

	FstatLazyCopy
	FstatShortened
)

var fstatFlags = flagTable[FstatCmdFlags]{
	{flag: FstatAttributes, name: "Attributes", sw: "-Oa"},
	{flag: FstatAttributesHex, name: "AttributesHex", sw: "-Oe"},
	{flag: FstatAllRevisions, name: "AllRevisions", sw: "-Of"},
	{flag: FstatFileSizeDigest, name: "FileSizeDigest", sw: "-Ol"},
	{flag: FstatLocalPath, name: "LocalPath", sw: "-Op"},
	{flag: FstatPendingIntegrations, name: "PendingIntegrations", sw: "-Or"},
	{flag: FstatNoClientData, name: "NoClientData", sw: "-Os"},

	{flag: FstatClientMapped, name: "ClientMapped", sw: "-Rc"},
	{flag: FstatHaveOnly, name: "HaveOnly", sw: "-Rh"},
	{flag: FstatNeedSync, name: "NeedSync", sw: "-Rn"},
	{flag: FstatOpened, name: "Opened", sw: "-Ro"},
	{flag: FstatNeedResolve, name: "NeedResolve", sw: "-Rr"},
	{flag: FstatShelved, name: "Shelved", sw: "-Rs"},

	{flag: FstatSortByType, name: "SortByType", sw: "-St", group: 1},
	{flag: FstatSortByDate, name: "SortByDate", sw: "-Sd", group: 1},
	{flag: FstatSortByHeadRev, name: "SortByHeadRev", sw: "-Sr", group: 1},
	{flag: FstatSortByHaveRev, name: "SortByHaveRev", sw: "-Sh", group: 1},
	{flag: FstatSortBySize, name: "SortBySize", sw: "-Ss", group: 1},

	{flag: FstatLazyCopy, name: "LazyCopy", sw: "-L"},
	{flag: FstatShortened, name: "Shortened", sw: "-s"},
}

func (f FstatCmdFlags) String() string { return fstatFlags.format(f) }

// FileStat builds the switches for "p4 fstat". filter (-F) selects records with a
// filter expression, fields (-T) limits the reported fields, and afterChange (-e)
// reports only files affected at or after that changelist.
func FileStat(flags FstatCmdFlags, filter string, fields []string, maxItems, afterChange int) *Options {
	o := New()
	setList(o, "-T", fields)
	fstatFlags.apply(o, flags)
	setString(o, "-F", filter)
	setPositive(o, "-m", maxItems)
	setPositive(o, "-e", afterChange)
	return o
}

// dirs

type DirsCmdFlags uint32

const DirsNone DirsCmdFlags = 0

const (
	// DirsOnlyMapped (-C) lists only directories mapped in the client view.
	DirsOnlyMapped DirsCmdFlags = 1 << iota
	DirsIncludeDeleted
	DirsHaveOnly
)

var dirsFlags = flagTable[DirsCmdFlags]{
	{flag: DirsOnlyMapped, name: "OnlyMapped", sw: "-C"},
	{flag: DirsIncludeDeleted, name: "IncludeDeleted", sw: "-D"},
	{flag: DirsHaveOnly, name: "HaveOnly", sw: "-H"},
}

func (f DirsCmdFlags) String() string { return dirsFlags.format(f) }

func Dirs(flags DirsCmdFlags, stream string) *Options {
	o := New()
	dirsFlags.apply(o, flags)
	setString(o, "-S", stream)
	return o
}

// protects

type ProtectsCmdFlags uint32

const ProtectsNone ProtectsCmdFlags = 0

const (
	ProtectsAllUsers ProtectsCmdFlags = 1 << iota
	// ProtectsMaxAccess (-m) reports only the highest access level.
	ProtectsMaxAccess
)

var protectsFlags = flagTable[ProtectsCmdFlags]{
	{flag: ProtectsAllUsers, name: "AllUsers", sw: "-a"},
	{flag: ProtectsMaxAccess, name: "MaxAccess", sw: "-m"},
}

func (f ProtectsCmdFlags) String() string { return protectsFlags.format(f) }

func Protects(flags ProtectsCmdFlags, group, user, host string) *Options {
	o := New()
	protectsFlags.apply(o, flags)
	setString(o, "-g", group)
	setString(o, "-u", user)
	setString(o, "-h", host)
	return o
}

// reviews

// Reviews builds the switches for "p4 reviews", which has no boolean switches.
func Reviews(changelist int, client string) *Options {
	o := New()
	setPositive(o, "-c", changelist)
	setString(o, "-C", client)
	return o
}
