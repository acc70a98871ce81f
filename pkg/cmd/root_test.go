package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/bs58/pkg/app"
)

const reversedBTC = "zyxwvutsrqponmkjihgfedcbaZYXWVUTSRQPNMLKJHGFEDCBA987654321"

// newConfigFile returns the path of an empty config file so tests never touch
// the real home directory.
func newConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	return path
}

func runCmdAllowFail(t *testing.T, cfgPath string, in io.Reader, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out, errOut bytes.Buffer
	if in == nil {
		in = strings.NewReader("")
	}

	root := NewRootCommand(app.New(), "test", "none")
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(in)

	err = root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func runCmd(t *testing.T, cfgPath string, in io.Reader, args ...string) string {
	t.Helper()
	out, errOut, err := runCmdAllowFail(t, cfgPath, in, args...)
	if err != nil {
		t.Logf("Command failed: %v\nArgs: %v\nStderr: %s", err, args, errOut)
		t.FailNow()
	}
	return out
}

func unsetInputEnv(t *testing.T) {
	t.Setenv(app.InputEnv, "")
	os.Unsetenv(app.InputEnv)
}

func TestEncode(t *testing.T) {
	cfg := newConfigFile(t)

	out := runCmd(t, cfg, nil, "encode", "Hello World")
	require.Equal(t, "JxF12TrwUP45BMd encoded to \"Hello World\"\n", out)

	out = runCmd(t, cfg, nil, "encode", "--output", "raw", "Hello World")
	require.Equal(t, "JxF12TrwUP45BMd\n", out)

	out = runCmd(t, cfg, nil, "encode", "--input", "hex", "--output", "raw", "000001")
	require.Equal(t, "112\n", out)

	out = runCmd(t, cfg, nil, "encode", "--output", "json", "Test data")
	require.JSONEq(t, `{"input":"Test data","encoded":"25JnwSn7XKfNQ"}`, out)
}

func TestEncode_Empty(t *testing.T) {
	out := runCmd(t, newConfigFile(t), nil, "encode", "")
	require.Equal(t, " encoded to \"\"\n", out)
}

func TestEncode_FromEnv(t *testing.T) {
	t.Setenv(app.InputEnv, "Hello World")
	out := runCmd(t, newConfigFile(t), nil, "encode", "--output", "raw")
	require.Equal(t, "JxF12TrwUP45BMd\n", out)
}

func TestEncode_FromStdin(t *testing.T) {
	out := runCmd(t, newConfigFile(t), strings.NewReader("Test data"), "encode", "-", "--output", "raw")
	require.Equal(t, "25JnwSn7XKfNQ\n", out)
}

func TestEncode_Template(t *testing.T) {
	out := runCmd(t, newConfigFile(t), nil, "encode", "--template", "--output", "raw", `{{ "hello world" | title }}`)
	require.Equal(t, "JxF12TrwUP45BMd\n", out)
}

func TestEncode_InvalidFlags(t *testing.T) {
	cfg := newConfigFile(t)

	_, _, err := runCmdAllowFail(t, cfg, nil, "encode", "--input", "hex", "xyz")
	require.Error(t, err)

	_, _, err = runCmdAllowFail(t, cfg, nil, "encode", "--output", "hex", "abc")
	require.Error(t, err)

	_, _, err = runCmdAllowFail(t, cfg, nil, "encode", "--output", "yaml", "abc")
	require.Error(t, err)
}

func TestNoInput(t *testing.T) {
	unsetInputEnv(t)
	cfg := newConfigFile(t)

	_, _, err := runCmdAllowFail(t, cfg, nil, "encode")
	require.ErrorIs(t, err, app.ErrNoInput)

	_, _, err = runCmdAllowFail(t, cfg, nil, "decode")
	require.ErrorIs(t, err, app.ErrNoInput)
}

func TestDecode(t *testing.T) {
	cfg := newConfigFile(t)

	out := runCmd(t, cfg, nil, "decode", "112")
	require.Equal(t, "112 decoded to [0, 0, 1]\n", out)

	out = runCmd(t, cfg, nil, "decode", "JxF12TrwUP45BMd")
	require.Equal(t, "JxF12TrwUP45BMd decoded to [72, 101, 108, 108, 111, 32, 87, 111, 114, 108, 100]\n", out)

	out = runCmd(t, cfg, nil, "decode", "--output", "raw", "JxF12TrwUP45BMd")
	require.Equal(t, "Hello World", out)

	out = runCmd(t, cfg, nil, "decode", "--output", "hex", "1111")
	require.Equal(t, "00000000\n", out)

	out = runCmd(t, cfg, nil, "decode", "")
	require.Equal(t, " decoded to []\n", out)
}

func TestDecode_FromStdinTrimsWhitespace(t *testing.T) {
	out := runCmd(t, newConfigFile(t), strings.NewReader("25JnwSn7XKfNQ\n"), "decode", "-", "--output", "raw")
	require.Equal(t, "Test data", out)
}

func TestDecode_InvalidCharacter(t *testing.T) {
	cfg := newConfigFile(t)

	for _, in := range []string{"0", "O", "I", "l", "0OIl", "abc def"} {
		out, errOut, err := runCmdAllowFail(t, cfg, nil, "decode", in)
		require.ErrorIs(t, err, app.ErrBS58)
		require.Empty(t, out)
		require.Equal(t, "Error: bs58 error\n", errOut)
	}
}

func TestDecode_InvalidCharacterVerbose(t *testing.T) {
	_, errOut, err := runCmdAllowFail(t, newConfigFile(t), nil, "-v", "decode", "11O")
	require.ErrorIs(t, err, app.ErrBS58)
	require.Contains(t, errOut, "invalid character 'O' at byte 2")
	require.Contains(t, errOut, "Error: bs58 error")
}

func TestDecode_MsgPack(t *testing.T) {
	cfg := newConfigFile(t)

	// fixstr "hi" packed as msgpack: a2 68 69
	encoded := runCmd(t, cfg, nil, "encode", "--input", "hex", "--output", "raw", "a26869")
	out := runCmd(t, cfg, nil, "decode", "--decode-msgpack", strings.TrimSpace(encoded))
	require.Equal(t, strings.TrimSpace(encoded)+" decoded to \"hi\"\n", out)

	_, _, err := runCmdAllowFail(t, cfg, nil, "decode", "--decode-msgpack", "--output", "hex", strings.TrimSpace(encoded))
	require.Error(t, err)
}

func TestAlphabetOverride(t *testing.T) {
	cfg := newConfigFile(t)

	out := runCmd(t, cfg, nil, "-a", "ripple", "encode", "--input", "hex", "--output", "raw", "000001")
	require.Equal(t, "rrp\n", out)

	out = runCmd(t, cfg, nil, "--alphabet", "ripple", "decode", "--output", "hex", "rrp")
	require.Equal(t, "000001\n", out)

	_, _, err := runCmdAllowFail(t, cfg, nil, "-a", "missing", "encode", "abc")
	require.Error(t, err)
}

func TestConfigAlphabets(t *testing.T) {
	cfg := newConfigFile(t)

	out := runCmd(t, cfg, nil, "config", "current-alphabet")
	require.Equal(t, "bitcoin\n", out)

	out = runCmd(t, cfg, nil, "config", "add-alphabet", "reversed", reversedBTC)
	require.Equal(t, "Added alphabet.\n", out)

	_, _, err := runCmdAllowFail(t, cfg, nil, "config", "add-alphabet", "short", "abc")
	require.Error(t, err)

	out = runCmd(t, cfg, nil, "config", "use-alphabet", "reversed")
	require.Equal(t, "Switched to alphabet \"reversed\".\n", out)

	out = runCmd(t, cfg, nil, "encode", "--input", "hex", "--output", "raw", "000001")
	require.Equal(t, "zzy\n", out)

	out = runCmd(t, cfg, nil, "config", "get-alphabets", "--no-headers")
	require.Contains(t, out, "* reversed")
	require.Contains(t, out, "  bitcoin")
	require.Contains(t, out, reversedBTC)

	out = runCmd(t, cfg, nil, "config", "remove-alphabet", "reversed")
	require.Equal(t, "Removed alphabet.\n", out)

	out = runCmd(t, cfg, nil, "config", "current-alphabet")
	require.Equal(t, "bitcoin\n", out)

	_, _, err = runCmdAllowFail(t, cfg, nil, "config", "use-alphabet", "reversed")
	require.Error(t, err)
}

func TestConfigBrokenSelectionCanBeFixed(t *testing.T) {
	cfg := newConfigFile(t)
	require.NoError(t, os.WriteFile(cfg, []byte("current-alphabet: gone\n"), 0600))

	_, _, err := runCmdAllowFail(t, cfg, nil, "encode", "abc")
	require.Error(t, err)

	runCmd(t, cfg, nil, "config", "use-alphabet", "flickr")
	out := runCmd(t, cfg, nil, "encode", "--input", "hex", "--output", "raw", "39")
	require.Equal(t, "Z\n", out)
}

func TestConfigImport(t *testing.T) {
	cfg := newConfigFile(t)
	props := filepath.Join(t.TempDir(), "alphabets.properties")
	require.NoError(t, os.WriteFile(props, []byte("alphabet.reversed="+reversedBTC+"\n"), 0600))

	out := runCmd(t, cfg, nil, "config", "import", props)
	require.Equal(t, "Imported 1 alphabets (1 new).\n", out)

	out = runCmd(t, cfg, nil, "-a", "reversed", "decode", "--output", "hex", "zzy")
	require.Equal(t, "000001\n", out)
}

func TestCompletion(t *testing.T) {
	out := runCmd(t, newConfigFile(t), nil, "completion", "bash")
	require.Contains(t, out, "bs58")

	_, _, err := runCmdAllowFail(t, newConfigFile(t), nil, "completion", "tcsh")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out := runCmd(t, newConfigFile(t), nil, "--version")
	require.Contains(t, out, "test (none)")
}
