package options

// Commands that show file content or differences.

// Diff output format (-d<flag>) and whitespace handling are each a single choice in
// p4, so these are grouped and only the first set flag of each group is sent.
const (
	groupDiffFormat = iota + 10
	groupWhitespace
	groupDiffStatus
)

// diff2

type Diff2CmdFlags uint32

const Diff2None Diff2CmdFlags = 0

const (
	Diff2Quiet Diff2CmdFlags = 1 << iota
	// Diff2Binary (-t) diffs files even if they are binary.
	Diff2Binary
	Diff2Unified
	Diff2RCS
	Diff2Context
	Diff2Summary
	Diff2UnifiedFormat
	Diff2IgnoreWhitespaceChanges
	Diff2IgnoreWhitespace
	Diff2IgnoreLineEndings
)

var diff2Flags = flagTable[Diff2CmdFlags]{
	{flag: Diff2Quiet, name: "Quiet", sw: "-q"},
	{flag: Diff2Binary, name: "Binary", sw: "-t"},
	{flag: Diff2Unified, name: "Unified", sw: "-u"},

	{flag: Diff2RCS, name: "RCS", sw: "-dn", group: groupDiffFormat},
	{flag: Diff2Context, name: "Context", sw: "-dc", group: groupDiffFormat},
	{flag: Diff2Summary, name: "Summary", sw: "-ds", group: groupDiffFormat},
	{flag: Diff2UnifiedFormat, name: "UnifiedFormat", sw: "-du", group: groupDiffFormat},

	{flag: Diff2IgnoreWhitespaceChanges, name: "IgnoreWhitespaceChanges", sw: "-db", group: groupWhitespace},
	{flag: Diff2IgnoreWhitespace, name: "IgnoreWhitespace", sw: "-dw", group: groupWhitespace},
	{flag: Diff2IgnoreLineEndings, name: "IgnoreLineEndings", sw: "-dl", group: groupWhitespace},
}

func (f Diff2CmdFlags) String() string { return diff2Flags.format(f) }

func Diff2(flags Diff2CmdFlags, branch, stream, parent string) *Options {
	o := New()
	diff2Flags.apply(o, flags)
	setString(o, "-b", branch)
	setString(o, "-S", stream)
	setString(o, "-P", parent)
	return o
}

// diff

type DiffCmdFlags uint32

const DiffNone DiffCmdFlags = 0

const (
	// DiffForce (-f) diffs every file, even unopened ones.
	DiffForce DiffCmdFlags = 1 << iota
	DiffBinary
	DiffRCS
	DiffContext
	DiffSummary
	DiffUnifiedFormat
	DiffIgnoreWhitespaceChanges
	DiffIgnoreWhitespace
	DiffIgnoreLineEndings

	// -s<flag> lists file names by status instead of showing diffs
	DiffOpenedDifferent
	DiffOpenedIntegratedEdited
	DiffUnopenedMissing
	DiffUnopenedDifferent
	DiffUnopenedStatus
	DiffOpenedSame
)

var diffFlags = flagTable[DiffCmdFlags]{
	{flag: DiffForce, name: "Force", sw: "-f"},
	{flag: DiffBinary, name: "Binary", sw: "-t"},

	{flag: DiffRCS, name: "RCS", sw: "-dn", group: groupDiffFormat},
	{flag: DiffContext, name: "Context", sw: "-dc", group: groupDiffFormat},
	{flag: DiffSummary, name: "Summary", sw: "-ds", group: groupDiffFormat},
	{flag: DiffUnifiedFormat, name: "UnifiedFormat", sw: "-du", group: groupDiffFormat},

	{flag: DiffIgnoreWhitespaceChanges, name: "IgnoreWhitespaceChanges", sw: "-db", group: groupWhitespace},
	{flag: DiffIgnoreWhitespace, name: "IgnoreWhitespace", sw: "-dw", group: groupWhitespace},
	{flag: DiffIgnoreLineEndings, name: "IgnoreLineEndings", sw: "-dl", group: groupWhitespace},

	{flag: DiffOpenedDifferent, name: "OpenedDifferent", sw: "-sa", group: groupDiffStatus},
	{flag: DiffOpenedIntegratedEdited, name: "OpenedIntegratedEdited", sw: "-sb", group: groupDiffStatus},
	{flag: DiffUnopenedMissing, name: "UnopenedMissing", sw: "-sd", group: groupDiffStatus},
	{flag: DiffUnopenedDifferent, name: "UnopenedDifferent", sw: "-se", group: groupDiffStatus},
	{flag: DiffUnopenedStatus, name: "UnopenedStatus", sw: "-sl", group: groupDiffStatus},
	{flag: DiffOpenedSame, name: "OpenedSame", sw: "-sr", group: groupDiffStatus},
}

func (f DiffCmdFlags) String() string { return diffFlags.format(f) }

// DiffFiles builds the switches for "p4 diff". changelist (-c) limits the diff to
// files opened in that changelist.
func DiffFiles(flags DiffCmdFlags, changelist, maxFiles int) *Options {
	o := New()
	setPositive(o, "-c", changelist)
	diffFlags.apply(o, flags)
	setPositive(o, "-m", maxFiles)
	return o
}

// describe

type DescribeCmdFlags uint32

const DescribeNone DescribeCmdFlags = 0

const (
	DescribeShelved DescribeCmdFlags = 1 << iota
	// DescribeSummary (-s) omits the diffs.
	DescribeSummary
	DescribeForce
	DescribeRCS
	DescribeContext
	DescribeDiffSummary
	DescribeUnifiedFormat
	DescribeIgnoreWhitespaceChanges
	DescribeIgnoreWhitespace
	DescribeIgnoreLineEndings
)

var describeFlags = flagTable[DescribeCmdFlags]{
	{flag: DescribeShelved, name: "Shelved", sw: "-S"},
	{flag: DescribeSummary, name: "Summary", sw: "-s"},
	{flag: DescribeForce, name: "Force", sw: "-f"},

	{flag: DescribeRCS, name: "RCS", sw: "-dn", group: groupDiffFormat},
	{flag: DescribeContext, name: "Context", sw: "-dc", group: groupDiffFormat},
	{flag: DescribeDiffSummary, name: "DiffSummary", sw: "-ds", group: groupDiffFormat},
	{flag: DescribeUnifiedFormat, name: "UnifiedFormat", sw: "-du", group: groupDiffFormat},

	{flag: DescribeIgnoreWhitespaceChanges, name: "IgnoreWhitespaceChanges", sw: "-db", group: groupWhitespace},
	{flag: DescribeIgnoreWhitespace, name: "IgnoreWhitespace", sw: "-dw", group: groupWhitespace},
	{flag: DescribeIgnoreLineEndings, name: "IgnoreLineEndings", sw: "-dl", group: groupWhitespace},
}

func (f DescribeCmdFlags) String() string { return describeFlags.format(f) }

func Describe(flags DescribeCmdFlags, maxFiles int) *Options {
	o := New()
	describeFlags.apply(o, flags)
	setPositive(o, "-m", maxFiles)
	return o
}

// print

type PrintCmdFlags uint32

const PrintNone PrintCmdFlags = 0

const (
	PrintAllRevisions PrintCmdFlags = 1 << iota
	// PrintQuiet (-q) suppresses the one-line header before each file.
	PrintQuiet
	PrintSuppressKeywords
)

var printFlags = flagTable[PrintCmdFlags]{
	{flag: PrintAllRevisions, name: "AllRevisions", sw: "-a"},
	{flag: PrintQuiet, name: "Quiet", sw: "-q"},
	{flag: PrintSuppressKeywords, name: "SuppressKeywords", sw: "-k"},
}

func (f PrintCmdFlags) String() string { return printFlags.format(f) }

// PrintFiles builds the switches for "p4 print". outputFile (-o) redirects the
// content to a local file.
func PrintFiles(flags PrintCmdFlags, outputFile string, maxFiles int) *Options {
	o := New()
	printFlags.apply(o, flags)
	setString(o, "-o", outputFile)
	setPositive(o, "-m", maxFiles)
	return o
}

// annotate

type AnnotateCmdFlags uint32

const AnnotateNone AnnotateCmdFlags = 0

const (
	AnnotateAllResults AnnotateCmdFlags = 1 << iota
	AnnotateChangeNumbers
	AnnotateFollowIntegrations
	AnnotateFollowBranches
	AnnotateQuiet
	AnnotateIncludeUser
	AnnotateIncludeTime
	AnnotateIgnoreWhitespaceChanges
	AnnotateIgnoreWhitespace
	AnnotateIgnoreLineEndings
)

var annotateFlags = flagTable[AnnotateCmdFlags]{
	{flag: AnnotateAllResults, name: "AllResults", sw: "-a"},
	{flag: AnnotateChangeNumbers, name: "ChangeNumbers", sw: "-c"},
	{flag: AnnotateFollowIntegrations, name: "FollowIntegrations", sw: "-i"},
	{flag: AnnotateFollowBranches, name: "FollowBranches", sw: "-I"},
	{flag: AnnotateQuiet, name: "Quiet", sw: "-q"},
	{flag: AnnotateIncludeUser, name: "IncludeUser", sw: "-u"},
	{flag: AnnotateIncludeTime, name: "IncludeTime", sw: "-t"},

	{flag: AnnotateIgnoreWhitespaceChanges, name: "IgnoreWhitespaceChanges", sw: "-db", group: groupWhitespace},
	{flag: AnnotateIgnoreWhitespace, name: "IgnoreWhitespace", sw: "-dw", group: groupWhitespace},
	{flag: AnnotateIgnoreLineEndings, name: "IgnoreLineEndings", sw: "-dl", group: groupWhitespace},
}

func (f AnnotateCmdFlags) String() string { return annotateFlags.format(f) }

func Annotate(flags AnnotateCmdFlags) *Options {
	o := New()
	annotateFlags.apply(o, flags)
	return o
}

// grep

type GrepCmdFlags uint32

const GrepNone GrepCmdFlags = 0

const (
	GrepAllRevisions GrepCmdFlags = 1 << iota
	GrepCaseInsensitive
	GrepNonMatching
	GrepFilesOnly
	GrepNonMatchingFiles
	GrepLineNumbers
	// GrepSuppress (-s) hides errors about files too large to search.
	GrepSuppress

	// pattern syntax, only one is sent
	GrepFixed
	GrepBasic
	GrepExtended
)

var grepFlags = flagTable[GrepCmdFlags]{
	{flag: GrepAllRevisions, name: "AllRevisions", sw: "-a"},
	{flag: GrepCaseInsensitive, name: "CaseInsensitive", sw: "-i"},
	{flag: GrepNonMatching, name: "NonMatching", sw: "-v"},
	{flag: GrepFilesOnly, name: "FilesOnly", sw: "-l"},
	{flag: GrepNonMatchingFiles, name: "NonMatchingFiles", sw: "-L"},
	{flag: GrepLineNumbers, name: "LineNumbers", sw: "-n"},
	{flag: GrepSuppress, name: "Suppress", sw: "-s"},

	{flag: GrepFixed, name: "Fixed", sw: "-F", group: 1},
	{flag: GrepBasic, name: "Basic", sw: "-G", group: 1},
	{flag: GrepExtended, name: "Extended", sw: "-E", group: 1},
}

func (f GrepCmdFlags) String() string { return grepFlags.format(f) }

// Grep builds the switches for "p4 grep". context, after and before set how many
// lines around each match are shown (-C, -A, -B).
func Grep(flags GrepCmdFlags, pattern string, context, after, before int) *Options {
	o := New()
	grepFlags.apply(o, flags)
	setPositive(o, "-C", context)
	setPositive(o, "-A", after)
	setPositive(o, "-B", before)
	setString(o, "-e", pattern)
	return o
}
