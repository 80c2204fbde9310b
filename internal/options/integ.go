package options

// integrate

type IntegrateFilesCmdFlags uint32

const IntegrateNone IntegrateFilesCmdFlags = 0

const (
	IntegrateForce IntegrateFilesCmdFlags = 1 << iota
	IntegratePreview
	// IntegrateDontCopyToClient (-v) opens files without copying new content to the workspace.
	IntegrateDontCopyToClient
	// IntegrateUseHaveRev (-h) integrates to the revision in the workspace, not head.
	IntegrateUseHaveRev
	IntegrateSwapDirection
	IntegratePropagateType
	IntegrateIgnoreStreamView
	IntegrateQuiet
	IntegrateBranchResolves
	IntegrateDeleteResolves
	IntegrateSkipIntegratedRevs
	IntegrateDisplayBaseDetails
	IntegrateDisplayResolve
)

var integrateFilesFlags = flagTable[IntegrateFilesCmdFlags]{
	{flag: IntegrateForce, name: "Force", sw: "-f"},
	{flag: IntegratePreview, name: "Preview", sw: "-n"},
	{flag: IntegrateDontCopyToClient, name: "DontCopyToClient", sw: "-v"},
	{flag: IntegrateUseHaveRev, name: "UseHaveRev", sw: "-h"},
	{flag: IntegrateSwapDirection, name: "SwapDirection", sw: "-r"},
	{flag: IntegratePropagateType, name: "PropagateType", sw: "-t"},
	{flag: IntegrateIgnoreStreamView, name: "IgnoreStreamView", sw: "-F"},
	{flag: IntegrateQuiet, name: "Quiet", sw: "-q"},
	{flag: IntegrateBranchResolves, name: "BranchResolves", sw: "-Rb"},
	{flag: IntegrateDeleteResolves, name: "DeleteResolves", sw: "-Rd"},
	{flag: IntegrateSkipIntegratedRevs, name: "SkipIntegratedRevs", sw: "-Rs"},
	{flag: IntegrateDisplayBaseDetails, name: "DisplayBaseDetails", sw: "-Ob"},
	{flag: IntegrateDisplayResolve, name: "DisplayResolve", sw: "-Or"},
}

func (f IntegrateFilesCmdFlags) String() string { return integrateFilesFlags.format(f) }

// IntegrateFiles builds the switches for "p4 integrate". branch, stream and parent
// pick the source of the integration; leave them empty to integrate between file
// arguments.
func IntegrateFiles(flags IntegrateFilesCmdFlags, changelist, maxFiles int, branch, stream, parent string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	integrateFilesFlags.apply(o, flags)
	setPositive(o, "-m", maxFiles)
	setString(o, "-b", branch)
	setString(o, "-S", stream)
	setString(o, "-P", parent)
	return o
}

// copy

type CopyFilesCmdFlags uint32

const CopyNone CopyFilesCmdFlags = 0

const (
	CopyForce CopyFilesCmdFlags = 1 << iota
	CopyPreview
	CopyVirtual
	CopyReverse
	CopyQuiet
	CopyIgnoreStreamView
)

var copyFilesFlags = flagTable[CopyFilesCmdFlags]{
	{flag: CopyForce, name: "Force", sw: "-f"},
	{flag: CopyPreview, name: "Preview", sw: "-n"},
	{flag: CopyVirtual, name: "Virtual", sw: "-v"},
	{flag: CopyReverse, name: "Reverse", sw: "-r"},
	{flag: CopyQuiet, name: "Quiet", sw: "-q"},
	{flag: CopyIgnoreStreamView, name: "IgnoreStreamView", sw: "-F"},
}

func (f CopyFilesCmdFlags) String() string { return copyFilesFlags.format(f) }

func CopyFiles(flags CopyFilesCmdFlags, changelist, maxFiles int, branch, stream, parent string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	copyFilesFlags.apply(o, flags)
	setPositive(o, "-m", maxFiles)
	setString(o, "-b", branch)
	setString(o, "-S", stream)
	setString(o, "-P", parent)
	return o
}

// merge

type MergeFilesCmdFlags uint32

const MergeNone MergeFilesCmdFlags = 0

const (
	// MergeForce (-F) merges against a stream's spec even if the stream view disallows it.
	MergeForce MergeFilesCmdFlags = 1 << iota
	MergePreview
	MergeReverse
	MergeQuiet
	MergeDisplayBase
)

var mergeFilesFlags = flagTable[MergeFilesCmdFlags]{
	{flag: MergeForce, name: "Force", sw: "-F"},
	{flag: MergePreview, name: "Preview", sw: "-n"},
	{flag: MergeReverse, name: "Reverse", sw: "-r"},
	{flag: MergeQuiet, name: "Quiet", sw: "-q"},
	{flag: MergeDisplayBase, name: "DisplayBase", sw: "-Ob"},
}

func (f MergeFilesCmdFlags) String() string { return mergeFilesFlags.format(f) }

func MergeFiles(flags MergeFilesCmdFlags, changelist, maxFiles int, branch, stream, parent string) *Options {
	o := New()
	setChangelist(o, "-c", changelist)
	mergeFilesFlags.apply(o, flags)
	setPositive(o, "-m", maxFiles)
	setString(o, "-b", branch)
	setString(o, "-S", stream)
	setString(o, "-P", parent)
	return o
}

// resolve

type ResolveFilesCmdFlags uint32

const ResolveNone ResolveFilesCmdFlags = 0

const (
	// automatic resolve modes, only one is sent
	ResolveAutomaticMerge ResolveFilesCmdFlags = 1 << iota
	ResolveAutomaticForceMerge
	ResolveAutomaticSafe
	ResolveAutomaticTheirs
	ResolveAutomaticYours

	// whitespace handling, only one is sent
	ResolveIgnoreWhitespaceChanges
	ResolveIgnoreWhitespace
	ResolveIgnoreLineEndings

	// which kind of resolve to limit to, only one is sent
	ResolveAttributes
	ResolveBranching
	ResolveContent
	ResolveDeletes
	ResolveMoves
	ResolveFileType
	ResolveCharset

	ResolveForceResolve
	ResolvePreview
	ResolvePreviewConflicts
	ResolveDisplayBase
	ResolveForceTextual
	ResolveMarkAllChanges
)

const (
	resolveGroupAuto = iota + 1
	resolveGroupWhitespace
	resolveGroupAction
)

var resolveFilesFlags = flagTable[ResolveFilesCmdFlags]{
	{flag: ResolveAutomaticMerge, name: "AutomaticMerge", sw: "-am", group: resolveGroupAuto},
	{flag: ResolveAutomaticForceMerge, name: "AutomaticForceMerge", sw: "-af", group: resolveGroupAuto},
	{flag: ResolveAutomaticSafe, name: "AutomaticSafe", sw: "-as", group: resolveGroupAuto},
	{flag: ResolveAutomaticTheirs, name: "AutomaticTheirs", sw: "-at", group: resolveGroupAuto},
	{flag: ResolveAutomaticYours, name: "AutomaticYours", sw: "-ay", group: resolveGroupAuto},

	{flag: ResolveIgnoreWhitespaceChanges, name: "IgnoreWhitespaceChanges", sw: "-db", group: resolveGroupWhitespace},
	{flag: ResolveIgnoreWhitespace, name: "IgnoreWhitespace", sw: "-dw", group: resolveGroupWhitespace},
	{flag: ResolveIgnoreLineEndings, name: "IgnoreLineEndings", sw: "-dl", group: resolveGroupWhitespace},

	{flag: ResolveAttributes, name: "Attributes", sw: "-Aa", group: resolveGroupAction},
	{flag: ResolveBranching, name: "Branching", sw: "-Ab", group: resolveGroupAction},
	{flag: ResolveContent, name: "Content", sw: "-Ac", group: resolveGroupAction},
	{flag: ResolveDeletes, name: "Deletes", sw: "-Ad", group: resolveGroupAction},
	{flag: ResolveMoves, name: "Moves", sw: "-Am", group: resolveGroupAction},
	{flag: ResolveFileType, name: "FileType", sw: "-At", group: resolveGroupAction},
	{flag: ResolveCharset, name: "Charset", sw: "-AQ", group: resolveGroupAction},

	{flag: ResolveForceResolve, name: "ForceResolve", sw: "-f"},
	{flag: ResolvePreview, name: "Preview", sw: "-n"},
	{flag: ResolvePreviewConflicts, name: "PreviewConflicts", sw: "-N"},
	{flag: ResolveDisplayBase, name: "DisplayBase", sw: "-o"},
	{flag: ResolveForceTextual, name: "ForceTextual", sw: "-t"},
	{flag: ResolveMarkAllChanges, name: "MarkAllChanges", sw: "-v"},
}

func (f ResolveFilesCmdFlags) String() string { return resolveFilesFlags.format(f) }

// ResolveFiles builds the switches for "p4 resolve". Conflicting modes are not an
// error: within each family (automatic mode, whitespace, -A kind) the first flag in
// the order above wins.
func ResolveFiles(flags ResolveFilesCmdFlags, changelist int) *Options {
	o := New()
	resolveFilesFlags.apply(o, flags)
	setPositive(o, "-c", changelist)
	return o
}

// resolved

type ResolvedFilesCmdFlags uint32

const (
	ResolvedNone ResolvedFilesCmdFlags = 0
	// ResolvedIncludeBaseRevision (-o) shows the base revision used for each merge.
	ResolvedIncludeBaseRevision ResolvedFilesCmdFlags = 1 << 0
)

var resolvedFilesFlags = flagTable[ResolvedFilesCmdFlags]{
	{flag: ResolvedIncludeBaseRevision, name: "IncludeBaseRevision", sw: "-o"},
}

func (f ResolvedFilesCmdFlags) String() string { return resolvedFilesFlags.format(f) }

func ResolvedFiles(flags ResolvedFilesCmdFlags) *Options {
	o := New()
	resolvedFilesFlags.apply(o, flags)
	return o
}

// integrated

type IntegratedCmdFlags uint32

const (
	IntegratedNone IntegratedCmdFlags = 0
	// IntegratedReverse (-r) lists integrations from the given files, instead of into them.
	IntegratedReverse IntegratedCmdFlags = 1 << 0
)

var integratedFlags = flagTable[IntegratedCmdFlags]{
	{flag: IntegratedReverse, name: "Reverse", sw: "-r"},
}

func (f IntegratedCmdFlags) String() string { return integratedFlags.format(f) }

// Integrated builds the switches for "p4 integrated". startChange (-s) lists only
// integrations at or after that changelist.
func Integrated(flags IntegratedCmdFlags, branch string, startChange int) *Options {
	o := New()
	integratedFlags.apply(o, flags)
	setString(o, "-b", branch)
	setPositive(o, "-s", startChange)
	return o
}

// istat

type IstatCmdFlags uint32

const IstatNone IstatCmdFlags = 0

const (
	// IstatAllDirections (-a) shows status in both directions, to and from the parent.
	IstatAllDirections IstatCmdFlags = 1 << iota
	IstatChangesOnly
	IstatReverse
	// IstatCached (-s) uses the cached status instead of recomputing it.
	IstatCached
)

var istatFlags = flagTable[IstatCmdFlags]{
	{flag: IstatAllDirections, name: "AllDirections", sw: "-a"},
	{flag: IstatChangesOnly, name: "ChangesOnly", sw: "-c"},
	{flag: IstatReverse, name: "Reverse", sw: "-r"},
	{flag: IstatCached, name: "Cached", sw: "-s"},
}

func (f IstatCmdFlags) String() string { return istatFlags.format(f) }

func IntegrationStatus(flags IstatCmdFlags) *Options {
	o := New()
	istatFlags.apply(o, flags)
	return o
}
