package options

// fix

type FixJobsCmdFlags uint32

const (
	FixNone   FixJobsCmdFlags = 0
	FixDelete FixJobsCmdFlags = 1 << 0
)

var fixJobsFlags = flagTable[FixJobsCmdFlags]{
	{flag: FixDelete, name: "Delete", sw: "-d"},
}

func (f FixJobsCmdFlags) String() string { return fixJobsFlags.format(f) }

// FixJobs builds the switches for "p4 fix". status (-s) is the job status to set
// when the change is submitted.
func FixJobs(flags FixJobsCmdFlags, changelist int, status string) *Options {
	o := New()
	fixJobsFlags.apply(o, flags)
	setPositive(o, "-c", changelist)
	setString(o, "-s", status)
	return o
}

// login

type LoginCmdFlags uint32

const LoginNone LoginCmdFlags = 0

const (
	// LoginAllHosts (-a) issues a ticket that is valid from any host.
	LoginAllHosts LoginCmdFlags = 1 << iota
	LoginDisplayStatus
	LoginDisplayTicket
)

var loginFlags = flagTable[LoginCmdFlags]{
	{flag: LoginAllHosts, name: "AllHosts", sw: "-a"},
	{flag: LoginDisplayStatus, name: "DisplayStatus", sw: "-s"},
	{flag: LoginDisplayTicket, name: "DisplayTicket", sw: "-p"},
}

func (f LoginCmdFlags) String() string { return loginFlags.format(f) }

func Login(flags LoginCmdFlags, host string) *Options {
	o := New()
	loginFlags.apply(o, flags)
	setString(o, "-h", host)
	return o
}

// logout

type LogoutCmdFlags uint32

const (
	LogoutNone     LogoutCmdFlags = 0
	LogoutAllHosts LogoutCmdFlags = 1 << 0
)

var logoutFlags = flagTable[LogoutCmdFlags]{
	{flag: LogoutAllHosts, name: "AllHosts", sw: "-a"},
}

func (f LogoutCmdFlags) String() string { return logoutFlags.format(f) }

func Logout(flags LogoutCmdFlags) *Options {
	o := New()
	logoutFlags.apply(o, flags)
	return o
}

// tag

type TagCmdFlags uint32

const TagNone TagCmdFlags = 0

const (
	TagDelete TagCmdFlags = 1 << iota
	TagPreview
	TagGlobal
	TagUnloaded
)

var tagFlags = flagTable[TagCmdFlags]{
	{flag: TagDelete, name: "Delete", sw: "-d"},
	{flag: TagPreview, name: "Preview", sw: "-n"},
	{flag: TagGlobal, name: "Global", sw: "-g"},
	{flag: TagUnloaded, name: "Unloaded", sw: "-U"},
}

func (f TagCmdFlags) String() string { return tagFlags.format(f) }

func TagFiles(flags TagCmdFlags, label string) *Options {
	o := New()
	tagFlags.apply(o, flags)
	setString(o, "-l", label)
	return o
}

// labelsync

type LabelSyncCmdFlags uint32

const LabelSyncNone LabelSyncCmdFlags = 0

const (
	LabelSyncAddFiles LabelSyncCmdFlags = 1 << iota
	LabelSyncDeleteFiles
	LabelSyncPreview
	LabelSyncQuiet
	LabelSyncGlobal
)

var labelSyncFlags = flagTable[LabelSyncCmdFlags]{
	{flag: LabelSyncAddFiles, name: "AddFiles", sw: "-a"},
	{flag: LabelSyncDeleteFiles, name: "DeleteFiles", sw: "-d"},
	{flag: LabelSyncPreview, name: "Preview", sw: "-n"},
	{flag: LabelSyncQuiet, name: "Quiet", sw: "-q"},
	{flag: LabelSyncGlobal, name: "Global", sw: "-g"},
}

func (f LabelSyncCmdFlags) String() string { return labelSyncFlags.format(f) }

func LabelSync(flags LabelSyncCmdFlags, label string) *Options {
	o := New()
	labelSyncFlags.apply(o, flags)
	setString(o, "-l", label)
	return o
}

// counter

type CounterCmdFlags uint32

const CounterNone CounterCmdFlags = 0

const (
	CounterDelete CounterCmdFlags = 1 << iota
	// CounterForce (-f) allows changing protected counters such as "change".
	CounterForce
	CounterIncrement
)

var counterFlags = flagTable[CounterCmdFlags]{
	{flag: CounterDelete, name: "Delete", sw: "-d"},
	{flag: CounterForce, name: "Force", sw: "-f"},
	{flag: CounterIncrement, name: "Increment", sw: "-i"},
}

func (f CounterCmdFlags) String() string { return counterFlags.format(f) }

func Counter(flags CounterCmdFlags) *Options {
	o := New()
	counterFlags.apply(o, flags)
	return o
}

// trust

type TrustCmdFlags uint32

const TrustNone TrustCmdFlags = 0

const (
	// TrustAutoAccept (-y) accepts the server's fingerprint without prompting.
	TrustAutoAccept TrustCmdFlags = 1 << iota
	TrustReject
	TrustDelete
	TrustForce
	TrustList
	// TrustReplacement (-r) acts on the replacement fingerprint instead of the current one.
	TrustReplacement
)

var trustFlags = flagTable[TrustCmdFlags]{
	{flag: TrustAutoAccept, name: "AutoAccept", sw: "-y"},
	{flag: TrustReject, name: "Reject", sw: "-n"},
	{flag: TrustDelete, name: "Delete", sw: "-d"},
	{flag: TrustForce, name: "Force", sw: "-f"},
	{flag: TrustList, name: "List", sw: "-l"},
	{flag: TrustReplacement, name: "Replacement", sw: "-r"},
}

func (f TrustCmdFlags) String() string { return trustFlags.format(f) }

// Trust builds the switches for "p4 trust". fingerprint (-i) installs the given
// fingerprint instead of the one the server reports.
func Trust(flags TrustCmdFlags, fingerprint string) *Options {
	o := New()
	trustFlags.apply(o, flags)
	setString(o, "-i", fingerprint)
	return o
}

// info

type InfoCmdFlags uint32

const (
	InfoNone InfoCmdFlags = 0
	// InfoShortOutput (-s) skips the parts of the report that require a database lookup.
	InfoShortOutput InfoCmdFlags = 1 << 0
)

var infoFlags = flagTable[InfoCmdFlags]{
	{flag: InfoShortOutput, name: "ShortOutput", sw: "-s"},
}

func (f InfoCmdFlags) String() string { return infoFlags.format(f) }

func Info(flags InfoCmdFlags) *Options {
	o := New()
	infoFlags.apply(o, flags)
	return o
}
