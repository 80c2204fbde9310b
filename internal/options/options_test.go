package options

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/danbrakeley/commandline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptionsKeepInsertionOrder(t *testing.T) {
	o := New()
	o.SetValue("-c", "12")
	o.Set("-n")
	o.SetValue("-t", "binary+l")

	assert.Equal(t, []string{"-c", "-n", "-t"}, o.Keys())
	assert.Equal(t, []string{"-c", "12", "-n", "-t", "binary+l"}, o.Args())
	assert.Equal(t, 3, o.Len())
}

func TestOptionsOverwriteKeepsPosition(t *testing.T) {
	o := New()
	o.SetValue("-c", "1")
	o.Set("-n")
	o.SetValue("-c", "2")

	assert.Equal(t, []string{"-c", "2", "-n"}, o.Args())
}

func TestOptionsGet(t *testing.T) {
	o := New()
	o.Set("-n")
	o.SetValue("-c", "7")

	v, hasValue, ok := o.Get("-c")
	assert.True(t, ok)
	assert.True(t, hasValue)
	assert.Equal(t, "7", v)

	_, hasValue, ok = o.Get("-n")
	assert.True(t, ok)
	assert.False(t, hasValue)

	_, _, ok = o.Get("-t")
	assert.False(t, ok)
	assert.False(t, o.Has("-t"))
}

func TestOptionsDeleteAndClear(t *testing.T) {
	o := New()
	o.Set("-a")
	o.Set("-b")
	o.Delete("-a")
	assert.Equal(t, []string{"-b"}, o.Keys())

	o.Clear()
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Args())

	o.Set("-c")
	assert.Equal(t, []string{"-c"}, o.Keys())
}

func TestOptionsZeroValue(t *testing.T) {
	var o Options
	assert.Equal(t, 0, o.Len())
	assert.Empty(t, o.Args())
	assert.Equal(t, "", o.String())

	o.Set("-f")
	assert.Equal(t, []string{"-f"}, o.Args())
}

func TestOptionsString(t *testing.T) {
	o := New()
	o.SetValue("-d", "fix the build")
	o.Set("-r")
	o.SetValue("-t", "")

	assert.Equal(t, `-d "fix the build" -r -t ""`, o.String())
}

func TestOptionsEqual(t *testing.T) {
	a := AddFiles(AddPreviewOnly|AddNoIgnore, 3, "text")
	b := AddFiles(AddPreviewOnly|AddNoIgnore, 3, "text")
	assert.True(t, a.Equal(b))

	c := New()
	c.SetValue("-c", "3")
	c.Set("-n") // same keys as a, but a sets -I before -n
	c.Set("-I")
	c.SetValue("-t", "text")
	assert.False(t, a.Equal(c))

	assert.False(t, a.Equal(AddFiles(AddPreviewOnly|AddNoIgnore, 4, "text")))
	assert.False(t, a.Equal(AddFiles(AddPreviewOnly, 3, "text")))
	assert.True(t, New().Equal(&Options{}))
}

func TestOptionsCloneAndMerge(t *testing.T) {
	a := New()
	a.SetValue("-c", "5")
	b := a.Clone()
	b.Set("-n")

	assert.Equal(t, []string{"-c", "5"}, a.Args())
	assert.Equal(t, []string{"-c", "5", "-n"}, b.Args())

	g := New()
	g.SetValue("-p", "ssl:perforce:1666")
	g.Merge(b)
	assert.Equal(t, []string{"-p", "ssl:perforce:1666", "-c", "5", "-n"}, g.Args())
}

func TestOptionsMarshalJSON(t *testing.T) {
	o := AddFiles(AddPreviewOnly, 5, "")

	b, err := json.Marshal(o)
	require.NoError(t, err)

	var m map[string]*string
	require.NoError(t, json.Unmarshal(b, &m))
	require.Len(t, m, 2)
	require.NotNil(t, m["-c"])
	assert.Equal(t, "5", *m["-c"])
	assert.Contains(t, m, "-n")
	assert.Nil(t, m["-n"])

	s := string(b)
	assert.Less(t, strings.Index(s, `"-c"`), strings.Index(s, `"-n"`))
}

func TestOptionsMarshalJSONEmpty(t *testing.T) {
	b, err := json.Marshal(&Options{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

func TestOptionsMarshalYAML(t *testing.T) {
	o := SyncFiles(SyncForce, 10, ParallelOptions{})

	b, err := yaml.Marshal(o)
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(b, &doc))
	require.Len(t, doc.Content, 1)
	m := doc.Content[0]
	require.Equal(t, yaml.MappingNode, m.Kind)
	require.Len(t, m.Content, 4)

	assert.Equal(t, "-f", m.Content[0].Value)
	assert.Equal(t, "!!null", m.Content[1].Tag)
	assert.Equal(t, "-m", m.Content[2].Value)
	assert.Equal(t, "10", m.Content[3].Value)
	assert.Equal(t, "!!str", m.Content[3].Tag)
}

func TestQuoteArg(t *testing.T) {
	var cases = []struct {
		Name     string
		Arg      string
		Expected string
	}{
		{"plain", "-c", "-c"},
		{"depot path", "//UE4/Release-4.20/...", "//UE4/Release-4.20/..."},
		{"empty", "", `""`},
		{"spaces", "a b", `"a b"`},
		{"double quotes", `say "hi"`, `'say "hi"'`},
		{"apostrophe", "it's", `"it's"`},
		{"backslashes", `C:\Temp\list.txt`, `"C:\Temp\list.txt"`},
		{"both quotes", `it's "done"`, `it\'s\ \"done\"`},
		{"parallel", "threads=4,batch=8", "threads=4,batch=8"},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, QuoteArg(tc.Arg))
		})
	}
}

func TestQuoteArgSurvivesCommandLineParse(t *testing.T) {
	var cases = []struct {
		Name string
		Arg  string
	}{
		{"plain", "//UE4/Main/..."},
		{"empty", ""},
		{"spaces", "fix the build"},
		{"tab", "a\tb"},
		{"multiple lines", "first line\nsecond line"},
		{"windows temp file", `C:\Users\bob\AppData\Local\Temp\p4opts_add_1.txt`},
		{"double quotes", `fix "x" build`},
		{"apostrophe", "it's"},
		{"both quotes", `it's "done"`},
		{"both quotes and a backslash", `say "it's" in C:\tmp`},
		{"trailing backslash", `C:\Temp\`},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			line := "p4 -d " + QuoteArg(tc.Arg) + " next"
			args, err := commandline.Parse(line)
			require.NoError(t, err, line)
			assert.Equal(t, []string{"p4", "-d", tc.Arg, "next"}, args, line)
		})
	}
}

func TestStringSurvivesCommandLineParse(t *testing.T) {
	o := New()
	o.SetValue("-d", `it's "fixed"`)
	o.SetValue("-x", `C:\Temp\files.txt`)
	o.Set("-f")
	o.SetValue("-m", "")

	args, err := commandline.Parse(o.String())
	require.NoError(t, err)
	assert.Equal(t, o.Args(), args)
}
