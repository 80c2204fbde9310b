package p4

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/danbrakeley/bsh"
	"github.com/danbrakeley/p4opts/internal/options"
	"github.com/danbrakeley/p4opts/internal/p4/p4test"
)

func newStubbedP4(t *testing.T) (*P4, *p4test.Stub) {
	t.Helper()
	stub := p4test.New(t)
	sh := &bsh.Bsh{Stdout: io.Discard, Stderr: io.Discard}
	p := New(sh, "1666", "super", "super-ws")
	return &p, stub
}

// call returns the arguments p4 should see: the connection globals, then args.
func call(args ...string) []string {
	return append([]string{"-p", "1666", "-u", "super", "-c", "super-ws"}, args...)
}

func expectCalls(t *testing.T, stub *p4test.Stub, expected ...[]string) {
	t.Helper()
	actual := stub.Calls()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected calls:\n%q\nActual:\n%q", expected, actual)
	}
}

func Test_Commands(t *testing.T) {
	var cases = []struct {
		Name     string
		Run      func(p *P4) error
		Expected []string
	}{
		{"add",
			func(p *P4) error {
				return p.Add([]string{"//super-ws/a b.txt"}, options.AddFiles(options.AddNoIgnore, 5, "binary"))
			},
			call("add", "-c", "5", "-I", "-t", "binary", "//super-ws/a b.txt"),
		},
		{"edit in default changelist",
			func(p *P4) error {
				return p.Edit([]string{"//super-ws/c.txt"}, options.EditFiles(options.EditServerOnly, 0, ""))
			},
			call("edit", "-c", "default", "-k", "//super-ws/c.txt"),
		},
		{"reopen",
			func(p *P4) error {
				return p.Reopen([]string{"//super-ws/c.txt"}, options.ReopenFiles(7, "text+x"))
			},
			call("reopen", "-c", "7", "-t", "text+x", "//super-ws/c.txt"),
		},
		{"delete",
			func(p *P4) error {
				return p.Delete([]string{"//super-ws/c.txt"}, options.DeleteFiles(options.DeletePreviewOnly, options.NoChangelist))
			},
			call("delete", "-n", "//super-ws/c.txt"),
		},
		{"revert",
			func(p *P4) error {
				return p.Revert([]string{"//super-ws/c.txt"}, options.RevertFiles(options.RevertServerOnly, 3, ""))
			},
			call("revert", "-k", "-c", "3", "//super-ws/c.txt"),
		},
		{"revert unchanged everywhere",
			func(p *P4) error { return p.RevertUnchanged("//super-ws/...", 0) },
			call("revert", "-a", "//super-ws/..."),
		},
		{"revert unchanged in a changelist",
			func(p *P4) error { return p.RevertUnchanged("//super-ws/...", 12) },
			call("revert", "-a", "-c", "12", "//super-ws/..."),
		},
		{"move",
			func(p *P4) error {
				return p.Move("//super-ws/a.txt", "//super-ws/B.txt", options.MoveFiles(options.MoveServerOnly, options.NoChangelist, ""))
			},
			call("move", "-k", "//super-ws/a.txt", "//super-ws/B.txt"),
		},
		{"sync",
			func(p *P4) error {
				return p.Sync([]string{"//super-ws/Engine/..."}, options.SyncFiles(options.SyncForce, 10, options.ParallelOptions{}))
			},
			call("sync", "-f", "-m", "10", "//super-ws/Engine/..."),
		},
		{"sync latest",
			func(p *P4) error { return p.SyncLatest(options.ParallelOptions{Threads: 4, Batch: 8}) },
			call("sync", "--parallel", "threads=4,batch=8", "//super-ws/...#head"),
		},
		{"sync latest without download",
			func(p *P4) error { return p.SyncLatestNoDownload() },
			call("sync", "-k", "-q", "//super-ws/...#head"),
		},
		{"submit with description",
			func(p *P4) error {
				return p.Submit(options.SubmitFiles(options.SubmitReopenFiles, 0, `it's "done"`, options.SubmitTypeNone, options.ParallelOptions{}))
			},
			call("submit", "-d", `it's "done"`, "-r"),
		},
		{"submit changelist",
			func(p *P4) error { return p.SubmitChangelist(77) },
			call("submit", "-c", "77"),
		},
		{"shelve",
			func(p *P4) error {
				return p.Shelve(options.ShelveFiles(options.ShelveForce, 9, options.SubmitTypeNone, options.ParallelOptions{}), "//super-ws/a.txt")
			},
			call("shelve", "-c", "9", "-f", "//super-ws/a.txt"),
		},
		{"unshelve into default changelist",
			func(p *P4) error { return p.Unshelve(options.UnshelveFiles(options.UnshelveNone, 9, 0, "", "")) },
			call("unshelve", "-s", "9", "-c", "default"),
		},
		{"resolve",
			func(p *P4) error { return p.Resolve(options.ResolveFiles(options.ResolveAutomaticSafe, 0)) },
			call("resolve", "-as"),
		},
		{"delete client",
			func(p *P4) error { return p.DeleteClient("old-ws") },
			call("client", "-d", "old-ws"),
		},
		{"run by name",
			func(p *P4) error { return p.Run("info", options.Info(options.InfoShortOutput)) },
			call("info", "-s"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, stub := newStubbedP4(t)
			if err := tc.Run(p); err != nil {
				t.Fatalf("%v", err)
			}
			expectCalls(t, stub, tc.Expected)
		})
	}
}

func Test_CommandFailure(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Status(1)

	err := p.Sync(nil, options.SyncFiles(options.SyncNone, 0, options.ParallelOptions{}))
	if err == nil {
		t.Fatalf("expected error when p4 fails")
	}
	if !strings.Contains(err.Error(), "error syncing super-ws") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func Test_RunOnPaths(t *testing.T) {
	long := "//super-ws/" + strings.Repeat("x", maxInlinePath)

	var cases = []struct {
		Name     string
		Paths    []string
		FileList string // expected "-x" file contents, or empty if the path goes on the command line
	}{
		{"one path", []string{"//super-ws/a.txt"}, ""},
		{"path with spaces", []string{"//super-ws/My Project/a.txt"}, ""},
		{"several paths", []string{"//super-ws/a.txt", "//super-ws/b b.txt"}, "//super-ws/a.txt\n//super-ws/b b.txt"},
		{"one long path", []string{long}, long},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, stub := newStubbedP4(t)
			if err := p.Add(tc.Paths, options.AddFiles(options.AddNone, options.NoChangelist, "")); err != nil {
				t.Fatalf("%v", err)
			}

			if len(tc.FileList) == 0 {
				expectCalls(t, stub, call(append([]string{"add"}, tc.Paths...)...))
				return
			}

			calls := stub.Calls()
			if len(calls) != 1 {
				t.Fatalf("Expected 1 call, Actual: %q", calls)
			}
			args := calls[0]
			if len(args) != 9 || args[6] != "-x" || args[8] != "add" {
				t.Fatalf("Expected: %q, Actual: %q", call("-x", "<file>", "add"), args)
			}
			if actual := stub.FileList(); actual != tc.FileList {
				t.Errorf("Expected file list:\n%.80s\nActual:\n%.80s", tc.FileList, actual)
			}
			if _, err := os.Stat(args[7]); !errors.Is(err, fs.ErrNotExist) {
				t.Errorf("expected file list %s to be removed, got %v", args[7], err)
			}
		})
	}
}

func Test_RunOnPathsNeedsPaths(t *testing.T) {
	p, stub := newStubbedP4(t)
	if err := p.Edit(nil, options.EditFiles(options.EditNone, 0, "")); err == nil {
		t.Fatalf("expected error with no paths")
	}
	expectCalls(t, stub)
}

func Test_SpecsAreFedBack(t *testing.T) {
	root := t.TempDir()

	var cases = []struct {
		Name     string
		Run      func(p *P4) error
		Expected [][]string
	}{
		{"changelist",
			func(p *P4) error {
				cl, err := p.CreateEmptyChangelist(`it's "done"`)
				if err == nil && cl != 123 {
					return fmt.Errorf("expected changelist 123, got %d", cl)
				}
				return err
			},
			[][]string{
				call("--field", `Description=it's "done"`, "--field", "Files=", "change", "-o"),
				call("change", "-i"),
			},
		},
		{"stream client",
			func(p *P4) error { return p.CreateStreamClient("new-ws", root, "//UE4/Main") },
			[][]string{
				call("--field", "Root="+root, "--field", "Stream=//UE4/Main", "--field", "View=//UE4/Main/... //new-ws/...", "client", "-o", "new-ws"),
				call("client", "-i"),
			},
		},
		{"stream depot",
			func(p *P4) error { return p.CreateStreamDepot("UE4") },
			[][]string{
				call("depot", "-o", "-t", "stream", "UE4"),
				call("depot", "-i"),
			},
		},
		{"mainline stream",
			func(p *P4) error { return p.CreateMainlineStream("UE4", "Main") },
			[][]string{
				call("stream", "-o", "-t", "mainline", "//UE4/Main"),
				call("stream", "-i"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, stub := newStubbedP4(t)
			spec := "... spec for " + tc.Name + "\n"
			stub.OutputFor(1, spec)
			stub.OutputFor(2, "Change 123 created.\n")

			if err := tc.Run(p); err != nil {
				t.Fatalf("%v", err)
			}
			expectCalls(t, stub, tc.Expected...)
			if actual := stub.Stdin(2); actual != spec {
				t.Errorf("Expected spec on stdin: %q, Actual: %q", spec, actual)
			}
		})
	}
}

func Test_Info(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output(strings.Join([]string{
		"User name: super",
		"Client name: super-ws",
		"Server version: P4D/LINUX26X86_64/2021.1/2156517 (2021/05/25)",
		"Case Handling: insensitive",
		"",
	}, "\n"))

	info, err := p.Info()
	if err != nil {
		t.Fatalf("%v", err)
	}
	expected := Info{ServerVersion: "P4D/LINUX26X86_64/2021.1/2156517 (2021/05/25)", CaseHandling: CaseInsensitive}
	if info != expected {
		t.Errorf("Expected: %+v, Actual: %+v", expected, info)
	}
	expectCalls(t, stub, call("info", "-s"))
}

func Test_NeedsLogin(t *testing.T) {
	var cases = []struct {
		Name     string
		Status   int
		Stderr   string
		Expected bool
		IsError  bool
	}{
		{"logged in", 0, "", false, false},
		{"password unset", 1, "Perforce password (P4PASSWD) invalid or unset.\n", true, false},
		{"session expired", 1, "Your session has expired, please login again.\n", true, false},
		{"server down", 1, "Perforce client error:\n\tConnect to server failed; check $P4PORT.\n", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, stub := newStubbedP4(t)
			stub.Status(tc.Status)
			stub.Stderr(tc.Stderr)

			actual, err := p.NeedsLogin()
			if tc.IsError {
				if err == nil {
					t.Fatalf("expected error")
				}
				if !strings.Contains(err.Error(), "Connect to server failed") {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("%v", err)
			}
			if actual != tc.Expected {
				t.Errorf("Expected: %v, Actual: %v", tc.Expected, actual)
			}
			expectCalls(t, stub, call("login", "-s"))
		})
	}
}

func Test_ListClients(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output("zed-ws\nAlpha-ws\n\nbeta-ws\n")

	clients, err := p.ListClients()
	if err != nil {
		t.Fatalf("%v", err)
	}
	expected := []string{"Alpha-ws", "beta-ws", "zed-ws"}
	if !reflect.DeepEqual(expected, clients) {
		t.Errorf("Expected: %v, Actual: %v", expected, clients)
	}
	expectCalls(t, stub, call("-F", "%domainName%", "clients", "-u", "super"))
}

func Test_GetClientSpec(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output("... Client super-ws\n... Stream //UE4/Main\n")

	spec, err := p.GetClientSpec()
	if err != nil {
		t.Fatalf("%v", err)
	}
	expected := map[string]string{"Client": "super-ws", "Stream": "//UE4/Main"}
	if !reflect.DeepEqual(expected, spec) {
		t.Errorf("Expected: %v, Actual: %v", expected, spec)
	}
	expectCalls(t, stub, call("-z", "tag", "client", "-o"))
}

func Test_StreamDepthFromClient(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output("... Client super-ws\n... Stream //UE4/Dev/Feature\n")

	for i := 0; i < 2; i++ {
		depth, err := p.StreamDepth()
		if err != nil {
			t.Fatalf("%v", err)
		}
		if depth != 3 {
			t.Errorf("Expected: 3, Actual: %d", depth)
		}
	}
	// the second lookup is cached
	expectCalls(t, stub, call("-z", "tag", "client", "-o"))
}

func Test_StreamDepthWithoutStream(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output("... Client super-ws\n... Root /home/super/ws\n")

	if _, err := p.StreamDepth(); err == nil {
		t.Fatalf("expected error for a client with no stream")
	}
}

func Test_DepotFileLists(t *testing.T) {
	records := strings.Join([]string{
		"... depotFile //UE4/Main/b.txt",
		"... headAction edit",
		"... headChange 4",
		"... headType text",
		"... digest 0123ABCD",
		"... fileSize 42",
		"",
		"... depotFile //UE4/Main/Engine/A.txt",
		"... action add",
		"... change default",
		"... type binary",
		"",
	}, "\n")
	expected := []DepotFile{
		{Path: "b.txt", Action: "edit", CL: "4", Type: "text", Digest: "0123ABCD", Size: "42"},
		{Path: "Engine/A.txt", Action: "add", CL: "default", Type: "binary"},
	}

	var cases = []struct {
		Name     string
		List     func(p *P4) ([]DepotFile, error)
		Expected []string
	}{
		{"fstat", (*P4).ListDepotFiles,
			call("-z", "tag", "fstat",
				"-T", "depotFile,headAction,headChange,headType,digest,fileSize",
				"-Ol",
				"-F", "^(headAction=move/delete | headAction=purge | headAction=archive | headAction=delete)",
				"//super-ws/...",
			),
		},
		{"opened", (*P4).OpenedFiles, call("-z", "tag", "opened", "-a", "-C", "super-ws")},
		{"files", (*P4).DepotFiles, call("-z", "tag", "files", "-e", "//super-ws/...")},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			p, stub := newStubbedP4(t)
			if err := p.SetStreamName("//UE4/Main"); err != nil {
				t.Fatalf("%v", err)
			}
			stub.Output(records)

			actual, err := tc.List(p)
			if err != nil {
				t.Fatalf("%v", err)
			}
			if !reflect.DeepEqual(expected, actual) {
				t.Errorf("Expected:\n%v\nActual:\n%v", expected, actual)
			}
			expectCalls(t, stub, tc.Expected)
		})
	}
}

func Test_DepotFilesLooksUpStream(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.OutputFor(1, "... Client super-ws\n... Stream //UE4/Release-4.20\n")
	stub.OutputFor(2, "... depotFile //UE4/Release-4.20/Engine/foo.txt\n... action add\n")

	files, err := p.DepotFiles()
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(files) != 1 || files[0].Path != "Engine/foo.txt" {
		t.Errorf("Expected Engine/foo.txt, Actual: %v", files)
	}
	expectCalls(t, stub,
		call("-z", "tag", "client", "-o"),
		call("-z", "tag", "files", "-e", "//super-ws/..."),
	)
}

func Test_ScanStopsAtFirstBadLine(t *testing.T) {
	p, stub := newStubbedP4(t)
	if err := p.SetStreamName("//UE4/Main"); err != nil {
		t.Fatalf("%v", err)
	}

	// more than a pipe buffer of untagged output, so p4 is still writing when parsing fails
	var sb strings.Builder
	for i := 0; i < 50000; i++ {
		sb.WriteString("//UE4/Main/f")
		sb.WriteString(strings.Repeat("0", i%10))
		sb.WriteString(".txt#1 - add change 1 (text)\n")
	}
	stub.Output(sb.String())

	_, err := p.DepotFiles()
	if err == nil {
		t.Fatalf("expected error for untagged output")
	}
	if !strings.Contains(err.Error(), "//UE4/Main/f.txt#1") {
		t.Errorf("expected the first line in the error, got: %v", err)
	}
}

func Test_Output(t *testing.T) {
	p, stub := newStubbedP4(t)
	stub.Output("hello\n")

	out, err := p.Output("print", options.PrintFiles(options.PrintQuiet, "", 0), "//super-ws/a.txt")
	if err != nil {
		t.Fatalf("%v", err)
	}
	if out != "hello\n" {
		t.Errorf("Expected: %q, Actual: %q", "hello\n", out)
	}
	expectCalls(t, stub, call("print", "-q", "//super-ws/a.txt"))
}
