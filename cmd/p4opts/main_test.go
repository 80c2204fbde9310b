package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danbrakeley/p4opts/internal/p4/p4test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.stdout = &out
	if a.getenv == nil {
		a.getenv = func(string) string { return "" }
	}
	t.Cleanup(a.close)
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestArgsCommand(t *testing.T) {
	var cases = []struct {
		Name     string
		Args     []string
		Expected string
	}{
		{"add preview", []string{"args", "add", "--flag", "PreviewOnly", "-c", "5"}, "-c 5 -n\n"},
		{"add default changelist", []string{"args", "add", "-c", "0", "-t", "binary+l"}, "-c default -t binary+l\n"},
		{"sync parallel", []string{"args", "sync", "-f", "force", "-m", "10", "--threads", "4", "--batch", "2"},
			"-f -m 10 --parallel threads=4,batch=2\n"},
		{"comma separated flags", []string{"args", "resolve", "--flag", "AutomaticTheirs,AutomaticSafe,Preview"}, "-as -n\n"},
		{"submit description is quoted", []string{"args", "submit", "-d", "fix the build"}, "-d \"fix the build\"\n"},
		{"one token per line", []string{"args", "submit", "-d", "fix the build", "--format", "args"}, "-d\nfix the build\n"},
		{"nothing set", []string{"args", "info"}, "\n"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			out, err := execute(t, &app{}, tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, out)
		})
	}
}

func TestArgsJSON(t *testing.T) {
	out, err := execute(t, &app{}, "args", "add", "--flag", "PreviewOnly", "-c", "5", "--format", "json")
	require.NoError(t, err)

	var m map[string]*string
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	require.NotNil(t, m["-c"])
	assert.Equal(t, "5", *m["-c"])
	assert.Contains(t, m, "-n")
	assert.Nil(t, m["-n"])
}

func TestArgsYAML(t *testing.T) {
	out, err := execute(t, &app{}, "args", "sync", "--flag", "Force", "--max", "10", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "-f: null\n-m: \"10\"\n", out)

	out, err = execute(t, &app{}, "args", "info", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)
}

func TestArgsDefaultsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p4opts.toml")
	require.NoError(t, os.WriteFile(path, []byte("[defaults]\nmax = 50\n[defaults.parallel]\nthreads = 8\n"), 0o644))

	out, err := execute(t, &app{}, "--config", path, "args", "sync", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, "-m 50 --parallel threads=8\n", out)

	// command line wins over the config
	out, err = execute(t, &app{}, "--config", path, "args", "sync", "--defaults", "--max", "5", "--threads", "2")
	require.NoError(t, err)
	assert.Equal(t, "-m 5 --parallel threads=2\n", out)
}

func TestArgsErrors(t *testing.T) {
	_, err := execute(t, &app{}, "args", "obliterate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")

	_, err = execute(t, &app{}, "args", "add", "--flag", "Bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bogus")

	_, err = execute(t, &app{}, "args", "add", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")

	_, err = execute(t, &app{}, "args")
	assert.Error(t, err)
}

func TestFlagsCommand(t *testing.T) {
	out, err := execute(t, &app{}, "flags")
	require.NoError(t, err)
	names := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, names, "add")
	assert.Contains(t, names, "sync")

	out, err = execute(t, &app{}, "flags", "sync")
	require.NoError(t, err)
	assert.Contains(t, out, "FLAG")
	assert.Contains(t, out, "Force")
	assert.Contains(t, out, "-f")
	assert.Contains(t, out, "DisableParallel")

	out, err = execute(t, &app{}, "flags", "reviews")
	require.NoError(t, err)
	assert.Equal(t, "reviews has no flags\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, &app{}, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "p4opts "))
}

func TestLoadConfigFallsBackToEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	env := map[string]string{"P4PORT": "1666", "P4USER": "super"}
	a := &app{getenv: func(k string) string { return env[k] }}
	cfg, err := a.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "1666", cfg.Server.P4Port)
	assert.Equal(t, "super", cfg.Server.P4User)
	assert.Empty(t, cfg.Filename())
}

func TestFstatFlagMapping(t *testing.T) {
	out, err := execute(t, &app{}, "args", "fstat", "--filter", "headAction=add", "-c", "10", "--fields", "depotFile,headRev")
	require.NoError(t, err)
	assert.Equal(t, "-T depotFile,headRev -F headAction=add -e 10\n", out)

	rf := newRequestFlags(pflag.NewFlagSet("test", pflag.ContinueOnError))
	assert.Contains(t, rf.fs.Lookup("changelist").Usage, "fstat -e")
	assert.Contains(t, rf.fs.Lookup("filter").Usage, "fstat -F")
}

// stubServer puts a fake p4 on PATH, and returns a func that runs p4opts with a
// config pointing at it.
func stubServer(t *testing.T) (*p4test.Stub, func(args ...string) (string, error)) {
	stub := p4test.New(t)
	path := filepath.Join(t.TempDir(), "p4opts.toml")
	cfg := "[server]\np4port = \"1666\"\np4user = \"super\"\np4client = \"super-ws\"\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return stub, func(args ...string) (string, error) {
		return execute(t, &app{}, append([]string{"--config", path}, args...)...)
	}
}

func stubCall(args ...string) []string {
	return append([]string{"-p", "1666", "-u", "super", "-c", "super-ws"}, args...)
}

func TestRunCommand(t *testing.T) {
	var cases = []struct {
		Name     string
		Args     []string
		Expected [][]string
	}{
		{"checks login first",
			[]string{"run", "edit", "-c", "0", "//super-ws/My Project/a.txt"},
			[][]string{stubCall("login", "-s"), stubCall("edit", "-c", "default", "//super-ws/My Project/a.txt")},
		},
		{"sync with config defaults",
			[]string{"run", "sync", "--skip-login-check", "--flag", "Force", "//super-ws/...#head"},
			[][]string{stubCall("sync", "-f", "//super-ws/...#head")},
		},
		{"submit description with quotes",
			[]string{"run", "submit", "--skip-login-check", "-d", `it's "done"`},
			[][]string{stubCall("submit", "-d", `it's "done"`)},
		},
		{"move",
			[]string{"run", "move", "--skip-login-check", "//super-ws/a.txt", "//super-ws/B.txt"},
			[][]string{stubCall("move", "//super-ws/a.txt", "//super-ws/B.txt")},
		},
		{"revert with no files",
			[]string{"run", "revert", "--skip-login-check", "--flag", "UnchangedOnly"},
			[][]string{stubCall("revert", "-a")},
		},
		{"other commands run as given",
			[]string{"run", "changes", "--skip-login-check", "-m", "5", "//super-ws/..."},
			[][]string{stubCall("changes", "-m", "5", "//super-ws/...")},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			stub, run := stubServer(t)
			_, err := run(tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, stub.Calls())
		})
	}
}

func TestRunSendsFileList(t *testing.T) {
	stub, run := stubServer(t)
	_, err := run("run", "add", "--skip-login-check", "-c", "5", "a.txt", "b b.txt")
	require.NoError(t, err)

	calls := stub.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 11)
	assert.Equal(t, stubCall("-x"), calls[0][:7])
	assert.Equal(t, []string{"add", "-c", "5"}, calls[0][8:])
	assert.Equal(t, "a.txt\nb b.txt", stub.FileList())
}

func TestRunNotLoggedIn(t *testing.T) {
	stub, run := stubServer(t)
	stub.Status(1)
	stub.Stderr("Perforce password (P4PASSWD) invalid or unset.\n")

	_, err := run("run", "sync")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Equal(t, [][]string{stubCall("login", "-s")}, stub.Calls())
}

func TestRunFailure(t *testing.T) {
	stub, run := stubServer(t)
	stub.Status(1)

	_, err := run("run", "sync", "--skip-login-check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p4 sync failed on 1666")
}

func TestInfoCommand(t *testing.T) {
	stub, run := stubServer(t)
	stub.Output("Server version: P4D/LINUX26X86_64/2023.1/2468153 (2023/07/24)\nCase Handling: sensitive\n")

	out, err := run("info")
	require.NoError(t, err)
	assert.Equal(t, "Server version: P4D/LINUX26X86_64/2023.1/2468153 (2023/07/24)\nCase handling: sensitive\n", out)
	assert.Equal(t, [][]string{stubCall("info", "-s")}, stub.Calls())
}

func TestClientsCommand(t *testing.T) {
	stub, run := stubServer(t)
	stub.Output("zed-ws\nAlpha-ws\n")

	out, err := run("clients")
	require.NoError(t, err)
	assert.Equal(t, "Alpha-ws\nzed-ws\n", out)
}

func TestClientCommand(t *testing.T) {
	stub, run := stubServer(t)
	stub.Output("... Stream //UE4/Main\n... Client super-ws\n")

	out, err := run("client")
	require.NoError(t, err)
	assert.Equal(t, "Client: super-ws\nStream: //UE4/Main\n", out)
}

func TestFilesCommands(t *testing.T) {
	records := strings.Join([]string{
		"... depotFile //UE4/Main/b.txt",
		"... headAction edit",
		"... headChange 4",
		"... headType text",
		"",
		"... depotFile //UE4/Main/Engine/A.txt",
		"... action add",
		"... change default",
		"... type binary",
		"",
	}, "\n")
	table := "PATH          ACTION  CL       TYPE\n" +
		"b.txt         edit    4        text\n" +
		"Engine/A.txt  add     default  binary\n"

	var cases = []struct {
		Name    string
		Args    []string
		Command string
	}{
		{"opened", []string{"opened", "--stream", "//UE4/Main"}, "opened"},
		{"files", []string{"files", "-S", "//UE4/Main"}, "files"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			stub, run := stubServer(t)
			stub.Output(records)

			out, err := run(tc.Args...)
			require.NoError(t, err)
			assert.Equal(t, table, out)
			calls := stub.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tc.Command, calls[0][8])
		})
	}
}

func TestFilesWithDigest(t *testing.T) {
	stub, run := stubServer(t)
	stub.OutputFor(1, "... Client super-ws\n... Stream //UE4/Main\n")
	stub.OutputFor(2, "... depotFile //UE4/Main/a.txt\n... headAction add\n... headChange 1\n... headType text\n... digest ABCD\n... fileSize 3\n")

	out, err := run("files", "--digest")
	require.NoError(t, err)
	assert.Equal(t, "PATH   ACTION  CL  TYPE  DIGEST  SIZE\na.txt  add     1   text  ABCD    3\n", out)

	calls := stub.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, stubCall("-z", "tag", "client", "-o"), calls[0])
	assert.Equal(t, "fstat", calls[1][8])
}
