package analyzer

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	a := New()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	a.baseCmd.SetArgs(args)
	a.baseCmd.SetOut(out)
	a.baseCmd.SetErr(errOut)
	a.baseCmd.SetIn(strings.NewReader(stdin))
	err := a.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"3,1", " 2 ", ",", "-4"})
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2, -4}, keys)

	keys, err = parseKeys([]string{"1,x", "y"})
	require.ErrorContains(t, err, `invalid key "x"`)
	require.ErrorContains(t, err, `invalid key "y"`)
	require.Equal(t, []int{1}, keys)
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"naive", "median", "AVL"} {
		_, err := ParseStrategy(s)
		require.NoError(t, err)
	}
	_, err := ParseStrategy("redblack")
	require.ErrorContains(t, err, `unknown strategy "redblack"`)
}

func TestStrategy_Build(t *testing.T) {
	require.Equal(t, 6, StrategyNaive.Build(defaultKeys).Height())
	require.Equal(t, 4, StrategyMedian.Build(defaultKeys).Height())
	require.True(t, StrategyAVL.Build(defaultKeys).Balanced())
	require.EqualValues(t, 0, StrategyAVL.Build(nil).Size())
}

func TestApp_Sort(t *testing.T) {
	out, _, err := runApp(t, "", "sort", "3,1", "2", "2")
	require.NoError(t, err)
	require.Equal(t, "[1 2 2 3]\n", out)

	_, _, err = runApp(t, "", "sort", "3,a")
	require.ErrorContains(t, err, `invalid key "a"`)
}

func TestApp_Build(t *testing.T) {
	out, _, err := runApp(t, "", "build", "--strategy", "naive")
	require.NoError(t, err)
	require.Contains(t, out, "Height : 6\n")
	require.Contains(t, out, "Size   : 19\n")
	require.Contains(t, out, "Min    : 1\n")
	require.Contains(t, out, "Max    : 21\n")
	require.Contains(t, out, "in-order    : [1 2 3 4 5 6 7 8 9 12 13 14 15 16 17 18 19 20 21]\n")
	require.Contains(t, out, "pre-order   : [21 8 3 2 1 7 5 4 6 9 15 13 12 14 19 17 16 18 20]\n")

	out, _, err = runApp(t, "", "build", "1", "2", "3", "4", "5", "6", "7")
	require.NoError(t, err)
	require.Contains(t, out, "level-order : [4 2 6 1 3 5 7]\n")
	require.Contains(t, out, "Height : 2\n")
}

func TestWriteReport_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	writeReport(out, StrategyMedian.Build(nil))
	require.Contains(t, out.String(), "Height : -1\n")
	require.Contains(t, out.String(), "Min    : none\n")
	require.Contains(t, out.String(), "in-order    : []\n")
	require.Contains(t, out.String(), "level-order : []\n")
}

func TestFlagValue(t *testing.T) {
	require.Equal(t, "1,2,3", flagValue([]any{1, 2, 3}))
	require.Equal(t, "avl", flagValue("avl"))
	require.Equal(t, "true", flagValue(true))
}

func TestApp_BadConfig(t *testing.T) {
	_, _, err := runApp(t, "", "build", "--strategy", "redblack")
	require.ErrorContains(t, err, "failed to initialize configuration")
	require.ErrorContains(t, err, `unknown strategy "redblack"`)

	_, _, err = runApp(t, "", "build", "--log-format", "xml")
	require.ErrorContains(t, err, `unknown log format "xml"`)

	_, _, err = runApp(t, "", "build", "--log-level", "loud")
	require.ErrorContains(t, err, "parsing log level")

	_, _, err = runApp(t, "", "build", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading config file")
}

func TestApp_Env(t *testing.T) {
	t.Setenv("BST_STRATEGY", "naive")
	t.Setenv("BST_LOG_LEVEL", "debug")
	t.Setenv("BST_LOG_FORMAT", "json")
	out, errOut, err := runApp(t, "", "build")
	require.NoError(t, err)
	require.Contains(t, out, "Height : 6\n")
	require.Contains(t, errOut, `"message":"tree built"`)
	require.Contains(t, errOut, `"strategy":"naive"`)

	// flags win over the environment.
	out, _, err = runApp(t, "", "build", "--strategy", "avl")
	require.NoError(t, err)
	require.Contains(t, out, "Height : 4\n")
}

func TestApp_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "bst.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("strategy: avl\ndefault-keys: [1, 2, 3, 4, 5, 6, 7]\n"), 0600))
	out, _, err := runApp(t, "", "build", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "Size   : 7\n")
	require.Contains(t, out, "Height : 2\n")
	require.Contains(t, out, "Balanced : true\n")
}

func TestApp_Session(t *testing.T) {
	script := strings.Join([]string{
		"import",
		"search 5",
		"search 100",
		"insert 5",
		"insert 100",
		"search 100",
		"delete 42",
		"delete 100",
		"frobnicate",
		"insert x",
		"delete",
		"",
		"show",
		"exit",
		"insert 7",
	}, "\n")
	out, _, err := runApp(t, script, "session", "--log-level", "warn")
	require.NoError(t, err)
	require.Contains(t, out, "Info: The node you are looking for is in the tree. Its value is 5.\n")
	require.Contains(t, out, "Info: The node you are trying to search is NOT in the tree.\n")
	require.Contains(t, out, "Warning: The node you are trying to insert is already in the tree. The tree risks to become unbalanced.\n")
	require.Contains(t, out, "Info: The node you are looking for is in the tree. Its value is 100.\n")
	require.Contains(t, out, "Warning: The node you are trying to delete is not in the tree.\n")
	require.Equal(t, 3, strings.Count(out, "Warning: Illegal input.\n"))
	require.Equal(t, 2, strings.Count(out, "Size   : 19\n"))
	require.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestSession_RebalanceDelete(t *testing.T) {
	cfg := &configuration{Strategy: "avl", RebalanceDelete: true, DefaultKeys: defaultKeys}
	out := &bytes.Buffer{}
	s, err := newSession(cfg, testLogger(t), out)
	require.NoError(t, err)

	var script strings.Builder
	script.WriteString("import\n")
	for _, k := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 12} {
		script.WriteString("delete " + strconv.Itoa(k) + "\n")
	}
	require.NoError(t, s.Run(context.Background(), strings.NewReader(script.String())))
	require.EqualValues(t, 9, s.tree.Size())
	require.True(t, s.tree.Balanced())
	require.False(t, s.tree.Corrupt())
	require.NotContains(t, out.String(), "Warning")
}

func TestSession_Cancelled(t *testing.T) {
	cfg := &configuration{Strategy: "naive"}
	s, err := newSession(cfg, testLogger(t), &bytes.Buffer{})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Run(ctx, strings.NewReader("insert 1\n")), context.Canceled)
	require.EqualValues(t, 0, s.tree.Size())
}

func TestSession_CancelledWhileWaiting(t *testing.T) {
	cfg := &configuration{Strategy: "naive"}
	out := &bytes.Buffer{}
	s, err := newSession(cfg, testLogger(t), out)
	require.NoError(t, err)
	pr, pw := io.Pipe()
	defer pr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	_, err = io.WriteString(pw, "insert 1\n")
	require.NoError(t, err)
	// the write returns once the line is read; give the session time to block
	// on the next one.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("session still running after cancellation")
	}
	require.True(t, s.tree.Has(1))
	require.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
}
