//go:build mage
// +build mage

package main

import (
	"fmt"
	"strings"

	"github.com/danbrakeley/bsh"
	"github.com/magefile/mage/mg"
)

var sh = &bsh.Bsh{}
var cmd = "p4opts"

// Test runs the unit tests
func Test() {
	sh.Echo("Running unit tests...")
	sh.Cmd("go test ./...").Run()
}

// Build tests and builds the app (output goes to "local" folder)
func Build() {
	mg.Deps(Test)

	target := sh.ExeName(cmd)

	sh.Echof("Building %s...", target)
	sh.MkdirAll("local/")
	sh.Cmdf("go build -o local/%s ./cmd/%s", target, cmd).Run()
}

// Run runs unit tests, builds, and lists the commands the app knows about
func Run() {
	mg.Deps(Build)

	target := sh.ExeName(cmd)

	sh.InDir("local", func() {
		sh.Echo("Running...")
		sh.Cmdf("./%s flags", target).Run()
	})
}

// Smoke builds the app and checks its output for a few known commands. No perforce server is needed.
func Smoke() {
	mg.Deps(Build)

	target := sh.ExeName(cmd)

	var cases = []struct {
		Args     string
		Expected string
	}{
		{"args add --flag PreviewOnly -c 5", "-c 5 -n"},
		{"args sync --flag Force --max 10 --threads 4 --batch 2", "-f -m 10 --parallel threads=4,batch=2"},
		{"args submit --flag Shelved,ReopenFiles -c 77", "-e 77"},
		{"args resolve --flag AutomaticTheirs,AutomaticSafe", "-as"},
	}

	failed := 0
	sh.InDir("local", func() {
		for _, tc := range cases {
			var out strings.Builder
			sh.Cmdf("./%s %s", target, tc.Args).Out(&out).Run()
			actual := strings.TrimSpace(out.String())
			if actual != tc.Expected {
				sh.Warnf("%s: expected '%s', got '%s'", tc.Args, tc.Expected, actual)
				failed++
			}
		}
	})

	if failed > 0 {
		sh.Must(fmt.Errorf("%d of %d smoke tests failed", failed, len(cases)))
	}
	sh.Echo("***")
	sh.Echo("*** Smoke Test Passed!")
	sh.Echo("***")
}

// Clean removes build output
func Clean() {
	sh.RemoveAll("local")
}
