package options

import (
	"fmt"
	"strings"
)

// Value enums. The zero value of each means "not specified", and its switch is left
// out. String returns the text p4 expects.

type ChangeStatus uint8

const (
	ChangeStatusNone ChangeStatus = iota
	ChangeStatusPending
	ChangeStatusShelved
	ChangeStatusSubmitted
)

var changeStatusNames = []string{"", "pending", "shelved", "submitted"}

func (x ChangeStatus) String() string { return enumName(changeStatusNames, int(x)) }

type ChangeType uint8

const (
	ChangeTypeNone ChangeType = iota
	ChangeTypePublic
	ChangeTypeRestricted
)

var changeTypeNames = []string{"", "public", "restricted"}

func (x ChangeType) String() string { return enumName(changeTypeNames, int(x)) }

type StreamType uint8

const (
	StreamTypeNone StreamType = iota
	StreamTypeMainline
	StreamTypeDevelopment
	StreamTypeRelease
	StreamTypeVirtual
	StreamTypeTask
	StreamTypeSparseDev
	StreamTypeSparseRel
)

var streamTypeNames = []string{"", "mainline", "development", "release", "virtual", "task", "sparsedev", "sparserel"}

func (x StreamType) String() string { return enumName(streamTypeNames, int(x)) }

type DepotType uint8

const (
	DepotTypeNone DepotType = iota
	DepotTypeLocal
	DepotTypeRemote
	DepotTypeStream
	DepotTypeSpec
	DepotTypeArchive
	DepotTypeUnload
	DepotTypeTangent
	DepotTypeGraph
	DepotTypeExtension
)

var depotTypeNames = []string{"", "local", "remote", "stream", "spec", "archive", "unload", "tangent", "graph", "extension"}

func (x DepotType) String() string { return enumName(depotTypeNames, int(x)) }

// SubmitType is what happens to unchanged files on submit (see SubmitOptions in
// the client spec).
type SubmitType uint8

const (
	SubmitTypeNone SubmitType = iota
	SubmitTypeSubmitUnchanged
	SubmitTypeSubmitUnchangedReopen
	SubmitTypeRevertUnchanged
	SubmitTypeRevertUnchangedReopen
	SubmitTypeLeaveUnchanged
	SubmitTypeLeaveUnchangedReopen
)

var submitTypeNames = []string{
	"",
	"submitunchanged",
	"submitunchanged+reopen",
	"revertunchanged",
	"revertunchanged+reopen",
	"leaveunchanged",
	"leaveunchanged+reopen",
}

func (x SubmitType) String() string { return enumName(submitTypeNames, int(x)) }

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// enumValue is the reverse of enumName, for tools that take enum values as text.
func enumValue(names []string, s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	for i, n := range names {
		if i > 0 && strings.EqualFold(n, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf(`unrecognized value "%s" (expected one of %s)`, s, strings.Join(names[1:], ", "))
}

func ParseChangeStatus(s string) (ChangeStatus, error) {
	i, err := enumValue(changeStatusNames, s)
	return ChangeStatus(i), err
}

func ParseChangeType(s string) (ChangeType, error) {
	i, err := enumValue(changeTypeNames, s)
	return ChangeType(i), err
}

func ParseStreamType(s string) (StreamType, error) {
	i, err := enumValue(streamTypeNames, s)
	return StreamType(i), err
}

func ParseDepotType(s string) (DepotType, error) {
	i, err := enumValue(depotTypeNames, s)
	return DepotType(i), err
}

func ParseSubmitType(s string) (SubmitType, error) {
	i, err := enumValue(submitTypeNames, s)
	return SubmitType(i), err
}
