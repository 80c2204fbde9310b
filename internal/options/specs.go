package options

// Spec commands (user, client, change, ...) all read or write a form. They share -o
// (write the form to stdout), -i (read the form from stdin), -d (delete) and -f
// (force, usually admin only).

func specFlags[F ~uint32](force, input, output, del F) flagTable[F] {
	return flagTable[F]{
		{flag: force, name: "Force", sw: "-f"},
		{flag: input, name: "Input", sw: "-i"},
		{flag: output, name: "Output", sw: "-o"},
		{flag: del, name: "Delete", sw: "-d"},
	}
}

// user

type UserCmdFlags uint32

const UserNone UserCmdFlags = 0

const (
	UserForce UserCmdFlags = 1 << iota
	UserInput
	UserOutput
	UserDelete
)

var userFlags = specFlags(UserForce, UserInput, UserOutput, UserDelete)

func (f UserCmdFlags) String() string { return userFlags.format(f) }

func UserSpec(flags UserCmdFlags) *Options {
	o := New()
	userFlags.apply(o, flags)
	return o
}

// client

type ClientCmdFlags uint32

const ClientNone ClientCmdFlags = 0

const (
	ClientForce ClientCmdFlags = 1 << iota
	ClientInput
	ClientOutput
	ClientDelete
	// ClientSwitch (-s) switches a stream client to another stream (with stream),
	// or updates a client from a template (with template).
	ClientSwitch
)

var clientFlags = append(specFlags(ClientForce, ClientInput, ClientOutput, ClientDelete),
	flagBit[ClientCmdFlags]{flag: ClientSwitch, name: "Switch", sw: "-s"},
)

func (f ClientCmdFlags) String() string { return clientFlags.format(f) }

// ClientSpec builds the switches for "p4 client". template (-t) copies the view and
// options from another client, and stream (-S) makes it a stream client.
func ClientSpec(flags ClientCmdFlags, template, stream string) *Options {
	o := New()
	clientFlags.apply(o, flags)
	setString(o, "-t", template)
	setString(o, "-S", stream)
	return o
}

// change

type ChangeCmdFlags uint32

const ChangeNone ChangeCmdFlags = 0

const (
	ChangeForce ChangeCmdFlags = 1 << iota
	ChangeInput
	ChangeOutput
	ChangeDelete
	// ChangeUpdateSubmitted (-u) lets the owner edit the description of a submitted change.
	ChangeUpdateSubmitted
	// ChangeUpdateUser (-U) changes the owner of an empty pending change.
	ChangeUpdateUser
)

var changeFlags = append(specFlags(ChangeForce, ChangeInput, ChangeOutput, ChangeDelete),
	flagBit[ChangeCmdFlags]{flag: ChangeUpdateSubmitted, name: "UpdateSubmitted", sw: "-u"},
	flagBit[ChangeCmdFlags]{flag: ChangeUpdateUser, name: "UpdateUser", sw: "-U"},
)

func (f ChangeCmdFlags) String() string { return changeFlags.format(f) }

func ChangeSpec(flags ChangeCmdFlags, changeType ChangeType) *Options {
	o := New()
	changeFlags.apply(o, flags)
	setString(o, "-t", changeType.String())
	return o
}

// group

type GroupCmdFlags uint32

const GroupNone GroupCmdFlags = 0

const (
	GroupForce GroupCmdFlags = 1 << iota
	GroupInput
	GroupOutput
	GroupDelete
	// GroupOwnerAccess (-a) lets a group owner who is not a super user edit the group.
	GroupOwnerAccess
	// GroupAdminAdd (-A) lets an admin create a group that does not exist yet.
	GroupAdminAdd
)

var groupFlags = append(specFlags(GroupForce, GroupInput, GroupOutput, GroupDelete),
	flagBit[GroupCmdFlags]{flag: GroupOwnerAccess, name: "OwnerAccess", sw: "-a"},
	flagBit[GroupCmdFlags]{flag: GroupAdminAdd, name: "AdminAdd", sw: "-A"},
)

func (f GroupCmdFlags) String() string { return groupFlags.format(f) }

func GroupSpec(flags GroupCmdFlags) *Options {
	o := New()
	groupFlags.apply(o, flags)
	return o
}

// job

type JobCmdFlags uint32

const JobNone JobCmdFlags = 0

const (
	JobForce JobCmdFlags = 1 << iota
	JobInput
	JobOutput
	JobDelete
)

var jobFlags = specFlags(JobForce, JobInput, JobOutput, JobDelete)

func (f JobCmdFlags) String() string { return jobFlags.format(f) }

func JobSpec(flags JobCmdFlags) *Options {
	o := New()
	jobFlags.apply(o, flags)
	return o
}

// stream

type StreamCmdFlags uint32

const StreamNone StreamCmdFlags = 0

const (
	StreamForce StreamCmdFlags = 1 << iota
	StreamInput
	StreamOutput
	StreamDelete
	// StreamView (-v) includes the computed client view when used with Output.
	StreamView
)

var streamFlags = append(specFlags(StreamForce, StreamInput, StreamOutput, StreamDelete),
	flagBit[StreamCmdFlags]{flag: StreamView, name: "View", sw: "-v"},
)

func (f StreamCmdFlags) String() string { return streamFlags.format(f) }

// StreamSpec builds the switches for "p4 stream". parent (-P) and streamType (-t)
// only matter when creating a new stream form.
func StreamSpec(flags StreamCmdFlags, parent string, streamType StreamType) *Options {
	o := New()
	streamFlags.apply(o, flags)
	setString(o, "-P", parent)
	setString(o, "-t", streamType.String())
	return o
}

// depot

type DepotCmdFlags uint32

const DepotNone DepotCmdFlags = 0

const (
	DepotForce DepotCmdFlags = 1 << iota
	DepotInput
	DepotOutput
	DepotDelete
)

var depotFlags = specFlags(DepotForce, DepotInput, DepotOutput, DepotDelete)

func (f DepotCmdFlags) String() string { return depotFlags.format(f) }

func DepotSpec(flags DepotCmdFlags, depotType DepotType) *Options {
	o := New()
	depotFlags.apply(o, flags)
	setString(o, "-t", depotType.String())
	return o
}

// branch

type BranchSpecCmdFlags uint32

const BranchNone BranchSpecCmdFlags = 0

const (
	BranchForce BranchSpecCmdFlags = 1 << iota
	BranchInput
	BranchOutput
	BranchDelete
)

var branchFlags = specFlags(BranchForce, BranchInput, BranchOutput, BranchDelete)

func (f BranchSpecCmdFlags) String() string { return branchFlags.format(f) }

// BranchSpec builds the switches for "p4 branch". stream (-S) and parent (-P) are
// used with Output to show the branch view a stream would generate.
func BranchSpec(flags BranchSpecCmdFlags, stream, parent string) *Options {
	o := New()
	branchFlags.apply(o, flags)
	setString(o, "-S", stream)
	setString(o, "-P", parent)
	return o
}

// label

type LabelCmdFlags uint32

const LabelNone LabelCmdFlags = 0

const (
	LabelForce LabelCmdFlags = 1 << iota
	LabelInput
	LabelOutput
	LabelDelete
)

var labelFlags = specFlags(LabelForce, LabelInput, LabelOutput, LabelDelete)

func (f LabelCmdFlags) String() string { return labelFlags.format(f) }

func LabelSpec(flags LabelCmdFlags, template string) *Options {
	o := New()
	labelFlags.apply(o, flags)
	setString(o, "-t", template)
	return o
}

// triggers, typemap and protect only read or write the form

type TriggersCmdFlags uint32

const (
	TriggersNone   TriggersCmdFlags = 0
	TriggersInput  TriggersCmdFlags = 1 << 0
	TriggersOutput TriggersCmdFlags = 1 << 1
)

var triggersFlags = flagTable[TriggersCmdFlags]{
	{flag: TriggersInput, name: "Input", sw: "-i"},
	{flag: TriggersOutput, name: "Output", sw: "-o"},
}

func (f TriggersCmdFlags) String() string { return triggersFlags.format(f) }

func Triggers(flags TriggersCmdFlags) *Options {
	o := New()
	triggersFlags.apply(o, flags)
	return o
}

type TypemapCmdFlags uint32

const (
	TypemapNone   TypemapCmdFlags = 0
	TypemapInput  TypemapCmdFlags = 1 << 0
	TypemapOutput TypemapCmdFlags = 1 << 1
)

var typemapFlags = flagTable[TypemapCmdFlags]{
	{flag: TypemapInput, name: "Input", sw: "-i"},
	{flag: TypemapOutput, name: "Output", sw: "-o"},
}

func (f TypemapCmdFlags) String() string { return typemapFlags.format(f) }

func Typemap(flags TypemapCmdFlags) *Options {
	o := New()
	typemapFlags.apply(o, flags)
	return o
}

type ProtectCmdFlags uint32

const (
	ProtectNone   ProtectCmdFlags = 0
	ProtectInput  ProtectCmdFlags = 1 << 0
	ProtectOutput ProtectCmdFlags = 1 << 1
)

var protectFlags = flagTable[ProtectCmdFlags]{
	{flag: ProtectInput, name: "Input", sw: "-i"},
	{flag: ProtectOutput, name: "Output", sw: "-o"},
}

func (f ProtectCmdFlags) String() string { return protectFlags.format(f) }

func Protect(flags ProtectCmdFlags) *Options {
	o := New()
	protectFlags.apply(o, flags)
	return o
}
