package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lugondev/go-ammix/pkg/programs/cpswap"
	"github.com/lugondev/go-ammix/pkg/programs/damm"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	pk[31] = 0x3c
	return pk
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    dev")
}

func TestPrograms(t *testing.T) {
	out, _, err := run(t, "programs")
	require.NoError(t, err)

	var rows []programRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "clmm", rows[0].Name)
	assert.Equal(t, 1, rows[0].Width)
	assert.Equal(t, "damm", rows[2].Name)
	assert.Equal(t, damm.ProgramID, rows[2].ProgramID)
	assert.Equal(t, 8, rows[2].Width)
	assert.NotZero(t, rows[2].Instructions)
}

func TestProgramsYAML(t *testing.T) {
	out, _, err := run(t, "-f", "yaml", "programs")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "cpswap", rows[1]["name"])
	assert.Equal(t, cpswap.ProgramID.String(), rows[1]["program_id"])
}

func TestSchema(t *testing.T) {
	t.Run("discriminators", func(t *testing.T) {
		out, _, err := run(t, "schema", "cpswap")
		require.NoError(t, err)

		var got struct {
			Program      string
			Instructions []struct {
				Name          string
				Discriminator []int
			}
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "cpswap", got.Program)
		assert.Len(t, got.Instructions, cpswap.Instructions.Table().Len())
	})

	t.Run("roles", func(t *testing.T) {
		out, _, err := run(t, "schema", "clmm", "swap_v2")
		require.NoError(t, err)

		var got struct {
			Roles []struct {
				Name     string
				Signer   bool
				Writable bool
			}
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.NotEmpty(t, got.Roles)
		assert.Equal(t, "payer", got.Roles[0].Name)
		assert.True(t, got.Roles[0].Signer)
		assert.Equal(t, "pool_state", got.Roles[2].Name)
		assert.True(t, got.Roles[2].Writable)
	})

	t.Run("unknown instruction", func(t *testing.T) {
		_, _, err := run(t, "schema", "clmm", "flash_loan")
		assert.ErrorContains(t, err, `clmm has no instruction "flash_loan"`)
	})
}

func TestDecode(t *testing.T) {
	data, err := cpswap.EncodeInstruction(&cpswap.SwapBaseInput{AmountIn: 100, MinimumAmountOut: 90})
	require.NoError(t, err)

	out, _, err := run(t, "decode", "-p", "cpswap", hex.EncodeToString(data))
	require.NoError(t, err)

	var got struct {
		Program string
		Name    string
		Data    cpswap.SwapBaseInput
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cpswap", got.Program)
	assert.Equal(t, "SwapBaseInput", got.Name)
	assert.Equal(t, cpswap.SwapBaseInput{AmountIn: 100, MinimumAmountOut: 90}, got.Data)
	assert.NotContains(t, out, `"accounts"`)
}

func TestDecodeWithAccounts(t *testing.T) {
	ix, err := damm.NewSwapInstruction(damm.SwapKeys{
		Pool:               key(1),
		InputTokenAccount:  key(2),
		OutputTokenAccount: key(3),
		TokenAVault:        key(4),
		TokenBVault:        key(5),
		TokenAMint:         key(6),
		TokenBMint:         key(7),
		Payer:              key(8),
		TokenAProgram:      solana.TokenProgramID,
		TokenBProgram:      solana.TokenProgramID,
	}, damm.SwapParameters{AmountIn: 5, MinimumAmountOut: 4})
	require.NoError(t, err)
	data, err := ix.Data()
	require.NoError(t, err)

	var entries []string
	for _, meta := range ix.Accounts() {
		entry := meta.PublicKey.String() + ":"
		if meta.IsSigner {
			entry += "s"
		}
		if meta.IsWritable {
			entry += "w"
		}
		entries = append(entries, strings.TrimSuffix(entry, ":"))
	}
	entries = append(entries, key(99).String())

	out, _, err := run(t, "decode",
		"--program", damm.ProgramID.String(),
		"--encoding", "base58",
		"--accounts", strings.Join(entries, ","),
		solana.Base58(data).String())
	require.NoError(t, err)

	var got struct {
		Name     string
		Accounts []struct {
			Role   string
			Pubkey string
			Signer bool
		}
		Remaining []struct {
			Pubkey string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Swap", got.Name)
	require.Len(t, got.Accounts, 14)
	assert.Equal(t, "payer", got.Accounts[8].Role)
	assert.Equal(t, key(8).String(), got.Accounts[8].Pubkey)
	assert.True(t, got.Accounts[8].Signer)
	require.Len(t, got.Remaining, 1)
	assert.Equal(t, key(99).String(), got.Remaining[0].Pubkey)
}

func TestDecodeStrict(t *testing.T) {
	data, err := cpswap.EncodeInstruction(&cpswap.SwapBaseOutput{MaxAmountIn: 1, AmountOut: 1})
	require.NoError(t, err)
	payload := hex.EncodeToString(append(data, 0xff))

	_, _, err = run(t, "decode", "-p", "cpswap", payload)
	require.NoError(t, err)

	_, _, err = run(t, "--strict", "decode", "-p", "cpswap", payload)
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown program", []string{"decode", "-p", "whirlpool", "00"}, `unknown program "whirlpool"`},
		{"bad hex", []string{"decode", "-p", "damm", "zz"}, "invalid hex payload"},
		{"bad encoding", []string{"decode", "-p", "damm", "-e", "base32", "00"}, "unknown encoding"},
		{"bad account flag", []string{"decode", "-p", "damm", "--accounts", key(1).String() + ":x", "00"}, "unknown flag"},
		{"missing program", []string{"decode", "00"}, `required flag(s) "program" not set`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestEventsPayloads(t *testing.T) {
	swap := &damm.EvtSwap{Pool: key(1), Params: damm.SwapParameters{AmountIn: 7, MinimumAmountOut: 6}}
	data, err := damm.Events.Encode(swap)
	require.NoError(t, err)
	b64 := base64.StdEncoding.EncodeToString
	junk := b64([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	out, _, err := run(t, "events", "-p", "damm", b64(data), junk)
	require.NoError(t, err)

	var got []struct {
		Name string
		Data damm.EvtSwap
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "EvtSwap", got[0].Name)
	assert.Equal(t, *swap, got[0].Data)

	out, stderr, err := run(t, "events", "-p", "damm", "--keep-going", junk, b64(data))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 1)
	assert.Contains(t, stderr, "decode failed")
	assert.Contains(t, stderr, "index=0")
	assert.Contains(t, stderr, "UNKNOWN_DISCRIMINATOR")
	assert.Contains(t, stderr, "0102030405060708")
}

func TestEventsLogs(t *testing.T) {
	swap := &damm.EvtSwap{Pool: key(2), HasReferral: true}
	data, err := damm.Events.Encode(swap)
	require.NoError(t, err)

	logs := strings.Join([]string{
		"Program " + damm.ProgramID.String() + " invoke [1]",
		"Program data: " + base64.StdEncoding.EncodeToString(data),
		"Program " + damm.ProgramID.String() + " success",
	}, "\n")
	path := filepath.Join(t.TempDir(), "logs.txt")
	require.NoError(t, os.WriteFile(path, []byte(logs), 0o644))

	out, _, err := run(t, "events", "--logs", path)
	require.NoError(t, err)

	var got []struct {
		Program string
		Name    string
		Path    []int
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "damm", got[0].Program)
	assert.Equal(t, []int{0}, got[0].Path)
}

func TestEventsRequiresSource(t *testing.T) {
	_, _, err := run(t, "events")
	assert.ErrorContains(t, err, "--logs is required")
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "ammix.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output:\n  format: yaml\nlog:\n  level: debug\n"), 0o644))

	out, stderr, err := run(t, "--config", cfg, "programs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "- name: clmm"), out)
	assert.Contains(t, stderr, "loaded config")

	_, _, err = run(t, "--config", cfg, "--log-level", "loud", "programs")
	assert.Error(t, err)
}

const testIDL = `{
  "address": "LbVRzDTvBDEcrthxfZ4RL6yiq3uZw8bS6MwtdY6UhFQ",
  "metadata": {"name": "counter", "version": "0.1.0", "entry": "0.1.0"},
  "instructions": [
    {
      "name": "increment",
      "accounts": [
        {"name": "counter", "writable": true},
        {"name": "authority", "signer": true}
      ],
      "args": [{"name": "by", "type": "u64"}]
    }
  ],
  "accounts": [{"name": "Counter"}],
  "types": [
    {"name": "Counter", "type": {"kind": "struct", "fields": [{"name": "count", "type": "u64"}]}}
  ]
}`

func TestCodegen(t *testing.T) {
	idlPath := filepath.Join(t.TempDir(), "counter.json")
	require.NoError(t, os.WriteFile(idlPath, []byte(testIDL), 0o644))
	outDir := filepath.Join(t.TempDir(), "counter")

	out, _, err := run(t, "codegen", "-i", idlPath, "-o", outDir, "-p", "counter")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated bindings for counter (v0.1.0)")

	for _, name := range []string{"program.go", "types.go", "accounts.go", "instructions.go", "events.go"} {
		assert.Contains(t, out, filepath.Join(outDir, name))
		src, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(src), "package counter")
	}
}

func TestCodegenErrors(t *testing.T) {
	idlPath := filepath.Join(t.TempDir(), "counter.json")
	require.NoError(t, os.WriteFile(idlPath, []byte(testIDL), 0o644))

	_, _, err := run(t, "codegen", "-i", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "IDL file not found")

	_, _, err = run(t, "codegen", "-i", idlPath, "-o", t.TempDir(), "--width", "1", "--override", "increment=300")
	assert.ErrorContains(t, err, "is not a byte")

	_, _, err = run(t, "codegen", "-i", idlPath, "-o", t.TempDir(), "--width", "4")
	assert.Error(t, err)
}

func TestMetricsFlushedAtDebug(t *testing.T) {
	data, err := damm.Events.Encode(&damm.EvtSwap{Pool: key(3)})
	require.NoError(t, err)
	junk := base64.StdEncoding.EncodeToString([]byte("not an event"))

	_, stderr, err := run(t, "--log-level", "debug", "events", "-p", "damm",
		base64.StdEncoding.EncodeToString(data), junk)
	require.NoError(t, err)
	assert.Contains(t, stderr, "name=events_decoded{damm} value=1")
	assert.Contains(t, stderr, "name=payloads_dropped value=1")
	assert.Contains(t, stderr, "name=decode_milliseconds count=1")

	_, stderr, err = run(t, "events", "-p", "damm", junk)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "metric")
}
