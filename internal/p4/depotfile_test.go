package p4

import (
	"reflect"
	"testing"
)

func Test_GetDepotPrefix(t *testing.T) {
	var cases = []struct {
		Name     string
		Line     string
		Depth    int
		Expected string
		IsError  bool
	}{
		{"depth 2", "//a/b/c/d:foo", 2, "//a/b/", false},
		{"depth 3", "//a/b/c/d:foo", 3, "//a/b/c/", false},
		{"not a depot path", "a/b/c", 2, "", true},
		{"too shallow", "//a/b", 3, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			actual, err := getDepotPrefix(tc.Line, tc.Depth)
			if tc.IsError {
				if err == nil {
					t.Fatalf("expected error, got '%s'", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("%v", err)
			}
			if actual != tc.Expected {
				t.Errorf("Expected: %s, Actual: %s", tc.Expected, actual)
			}
		})
	}
}

func Test_DepotFileParser(t *testing.T) {
	lines := []string{
		"... depotFile //UE4/Main/Engine/foo.txt",
		"... headAction edit",
		"... headChange 12",
		"... headType text",
		"... digest 0123ABCD",
		"... fileSize 42",
		"",
		"... depotFile //UE4/Main/Engine/Bar.uasset",
		"... action add",
		"... change default",
		"... type binary+l",
		"",
		"... depotFile //UE4/Main/apple.txt",
	}

	dp := depotFileParser{depth: 2}
	for _, line := range lines {
		if err := dp.line(line); err != nil {
			t.Fatalf("%v", err)
		}
	}

	expected := []DepotFile{
		{Path: "apple.txt"},
		{Path: "Engine/Bar.uasset", Action: "add", CL: "default", Type: "binary+l"},
		{Path: "Engine/foo.txt", Action: "edit", CL: "12", Type: "text", Digest: "0123ABCD", Size: "42"},
	}
	actual := dp.finish()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected:\n%v\nActual:\n%v", expected, actual)
	}
}

func Test_DepotFileParserRejectsUntagged(t *testing.T) {
	dp := depotFileParser{depth: 2}
	if err := dp.line("//UE4/Main/foo.txt#1 - add change 1 (text)"); err == nil {
		t.Fatalf("expected error for untagged output")
	}
}

func Test_ParseInfoLine(t *testing.T) {
	var info Info
	for _, line := range []string{
		"User name: super",
		"Server version: P4D/LINUX26X86_64/2023.1/2468153 (2023/07/24)",
		"Case Handling: insensitive",
	} {
		parseInfoLine(&info, line)
	}
	if info.CaseHandling != CaseInsensitive {
		t.Errorf("Expected CaseInsensitive, Actual: %v", info.CaseHandling)
	}
	if info.ServerVersion != "P4D/LINUX26X86_64/2023.1/2468153 (2023/07/24)" {
		t.Errorf("unexpected server version: %s", info.ServerVersion)
	}
}

func Test_SortCaseInsensitive(t *testing.T) {
	s := []string{"beta", "Alpha", "gamma", "ALPHA2"}
	sortCaseInsensitive(s)
	expected := []string{"Alpha", "ALPHA2", "beta", "gamma"}
	if !reflect.DeepEqual(expected, s) {
		t.Errorf("Expected: %v, Actual: %v", expected, s)
	}
}

func Test_IsLoginNeeded(t *testing.T) {
	if !isLoginNeeded("Your session has expired, please login again.\n") {
		t.Errorf("expired session should need login")
	}
	if isLoginNeeded("Connect to server failed; check $P4PORT.") {
		t.Errorf("connection failure is not a login problem")
	}
}
