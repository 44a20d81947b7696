package gen_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/internal/codegen"
	"github.com/lugondev/go-ammix/internal/codegen/gen"
	"github.com/lugondev/go-ammix/pkg/codec"
)

const poolIDL = `{
	"address": "cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG",
	"metadata": {"name": "cp_amm", "version": "0.1.0", "spec": "0.1.0"},
	"instructions": [
		{
			"name": "swap",
			"discriminator": [248, 198, 158, 145, 225, 117, 135, 200],
			"docs": ["Swaps one token of the pool for the other."],
			"accounts": [
				{"name": "pool_authority", "address": "HLnpSz9h2S4hiLQ43rnSD9XkcUThA7B8hQMKmDaiTLcC"},
				{"name": "pool", "writable": true},
				{"name": "payer", "signer": true},
				{"name": "referral_token_account", "writable": true, "optional": true},
				{"name": "event_authority", "pda": {"seeds": [{"kind": "const", "value": [95, 95, 101, 118, 101, 110, 116, 95, 97, 117, 116, 104, 111, 114, 105, 116, 121]}]}},
				{"name": "program"}
			],
			"args": [{"name": "params", "type": {"defined": {"name": "SwapParameters"}}}]
		},
		{
			"name": "set_pool_status",
			"discriminator": [112, 87, 135, 223, 83, 204, 132, 53],
			"accounts": [
				{"name": "pool", "writable": true},
				{"name": "admin_accounts", "accounts": [{"name": "admin", "signer": true}, {"name": "config"}]}
			],
			"args": [{"name": "status", "type": "u8"}]
		}
	],
	"accounts": [{"name": "Pool", "discriminator": [241, 154, 109, 4, 17, 177, 109, 188]}],
	"events": [{"name": "EvtSwap", "discriminator": [27, 60, 21, 213, 138, 170, 187, 147]}],
	"errors": [{"code": 6000, "name": "MathOverflow", "msg": "Math operation overflow"}],
	"types": [
		{"name": "SwapParameters", "type": {"kind": "struct", "fields": [
			{"name": "amount_in", "type": "u64"},
			{"name": "minimum_amount_out", "type": "u64"}
		]}},
		{"name": "Pool", "type": {"kind": "struct", "fields": [
			{"name": "sqrt_price", "type": "u128"},
			{"name": "fee_mode", "type": {"defined": {"name": "FeeMode"}}},
			{"name": "partner", "type": {"option": "pubkey"}}
		]}},
		{"name": "FeeMode", "type": {"kind": "enum", "variants": [
			{"name": "Fixed"},
			{"name": "Dynamic", "fields": [{"name": "rate", "type": "u32"}]}
		]}},
		{"name": "PoolStatus", "type": {"kind": "enum", "variants": [{"name": "Enable"}, {"name": "Disable"}]}},
		{"name": "EvtSwap", "type": {"kind": "struct", "fields": [
			{"name": "pool", "type": "pubkey"},
			{"name": "params", "type": {"defined": {"name": "SwapParameters"}}}
		]}}
	]
}`

func parsePoolIDL(t *testing.T) *codegen.IDL {
	t.Helper()
	idl, err := codegen.ParseIDL([]byte(poolIDL))
	require.NoError(t, err)
	return idl
}

// assertParses checks that every rendered file is syntactically valid Go.
func assertParses(t *testing.T, files map[string]string) {
	t.Helper()
	fset := token.NewFileSet()
	for name, src := range files {
		_, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		assert.NoError(t, err, name)
	}
}

func TestRenderPoolIDL(t *testing.T) {
	files, err := gen.Render(parsePoolIDL(t), gen.Options{PackageName: "cpamm"})
	require.NoError(t, err)
	require.Len(t, files, 5)
	assertParses(t, files)

	program := files["program.go"]
	assert.Contains(t, program, "Code generated by ammix codegen. DO NOT EDIT.")
	assert.Contains(t, program, "package cpamm")
	assert.Contains(t, program, `const Name = "cp_amm"`)
	assert.Contains(t, program, `solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")`)
	assert.Contains(t, program, "ErrMathOverflow uint32 = 6000")
	assert.Contains(t, program, "decoder.NewBinding(Name, ProgramID, Instructions, Events)")

	ix := files["instructions.go"]
	assert.Contains(t, ix, "codec.MustEnvelope(Name, codec.WidthAnchor,")
	assert.Contains(t, ix, `Name: "Swap"`)
	assert.Contains(t, ix, "SwapDiscriminator = codec.Discriminator{248, 198, 158, 145, 225, 117, 135, 200}")
	assert.Contains(t, ix, "Params SwapParameters")
	assert.Contains(t, ix, "// Swaps one token of the pool for the other.")
	assert.Contains(t, ix, "`account:\"pool,writable\"`")
	assert.Contains(t, ix, "`account:\"payer,signer\"`")
	assert.Contains(t, ix, "`account:\"referral_token_account,writable,optional\"`")
	assert.Contains(t, ix, "`account:\"admin_accounts_admin,signer\"`")
	assert.Contains(t, ix, "AdminAccountsConfig")
	assert.Contains(t, ix, "accounts.MustSchemaOf[SwapKeys]()")
	assert.Contains(t, ix, "func NewSwapInstruction(keys SwapKeys, args Swap, remaining ...*solana.AccountMeta)")
	assert.Contains(t, ix, "func NewSetPoolStatusInstruction(")
	assert.Contains(t, ix, `"pool_authority":  solana.MustPublicKeyFromBase58("HLnpSz9h2S4hiLQ43rnSD9XkcUThA7B8hQMKmDaiTLcC")`)

	types := files["types.go"]
	assert.Contains(t, types, "SqrtPrice codec.U128")
	assert.Contains(t, types, "`bin:\"optional\" json:\"partner\"`")
	assert.Contains(t, types, "bin.BorshEnum `borsh_enum:\"true\"`")
	assert.Contains(t, types, "Fixed   bin.EmptyVariant")
	assert.Contains(t, types, "Dynamic FeeModeDynamic")
	assert.Contains(t, types, "type PoolStatus uint8")
	assert.Contains(t, types, "PoolStatusDisable PoolStatus = 1")

	events := files["events.go"]
	assert.Contains(t, events, "codec.MustEventDecoder(Name,")
	assert.Contains(t, events, "func (*EvtSwap) isEvent() {}")
	assert.NotContains(t, events, "type EvtSwap struct")

	accounts := files["accounts.go"]
	assert.Contains(t, accounts, "func DecodeAccount(data []byte) (Account, error)")
	assert.Contains(t, accounts, "func (*Pool) isAccount() {}")
}

func TestDefaultAccounts(t *testing.T) {
	idl := parsePoolIDL(t)
	defaults, err := gen.DefaultAccounts(idl)
	require.NoError(t, err)

	programID := solana.MustPublicKeyFromBase58(idl.Address)
	eventAuthority, _, err := solana.FindProgramAddress([][]byte{[]byte("__event_authority")}, programID)
	require.NoError(t, err)

	assert.Equal(t, map[string]solana.PublicKey{
		"pool_authority":  solana.MustPublicKeyFromBase58("HLnpSz9h2S4hiLQ43rnSD9XkcUThA7B8hQMKmDaiTLcC"),
		"event_authority": eventAuthority,
	}, defaults)
}

func TestDefaultAccountsConflict(t *testing.T) {
	idl := parsePoolIDL(t)
	extra := idl.Instructions[1]
	extra.Name = "close"
	extra.Discriminator = []byte(codec.InstructionSighash("close"))
	extra.Accounts = []codegen.IDLAccountMeta{{Name: "pool_authority", Address: solana.SystemProgramID.String()}}
	idl.Instructions = append(idl.Instructions, extra)

	defaults, err := gen.DefaultAccounts(idl)
	require.NoError(t, err)
	assert.NotContains(t, defaults, "pool_authority")
	assert.Contains(t, defaults, "event_authority")
}

func TestPlanInstructionsByteWidth(t *testing.T) {
	idl := parsePoolIDL(t)
	idl.Instructions[1].Discriminator = []byte{248, 1, 2, 3, 4, 5, 6, 7}

	_, err := gen.PlanInstructions(idl, gen.Options{Width: codec.WidthByte})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swap and set_pool_status share discriminator [248]")

	plans, err := gen.PlanInstructions(idl, gen.Options{Width: codec.WidthByte, Overrides: map[string]uint8{"SetPoolStatus": 7}})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, codec.Discriminator{248}, plans[0].Discriminator)
	assert.Equal(t, codec.Discriminator{7}, plans[1].Discriminator)

	files, err := gen.Render(idl, gen.Options{Width: codec.WidthByte, Overrides: map[string]uint8{"set_pool_status": 7}})
	require.NoError(t, err)
	assert.Contains(t, files["instructions.go"], "codec.MustEnvelope(Name, codec.WidthByte,")
	assert.Contains(t, files["instructions.go"], "SetPoolStatusDiscriminator = codec.Discriminator{7}")
}

func TestPlanInstructionsNaming(t *testing.T) {
	idl := parsePoolIDL(t)
	idl.Types = append(idl.Types, codegen.IDLTypeDef{Name: "SetPoolStatus", Type: codegen.IDLType{Kind: "u8"}})

	plans, err := gen.PlanInstructions(idl, gen.Options{})
	require.NoError(t, err)
	assert.Equal(t, "SetPoolStatus", plans[1].Name)
	assert.Equal(t, "SetPoolStatusArgs", plans[1].Payload)

	roles := make([]string, len(plans[1].Keys))
	for i, k := range plans[1].Keys {
		roles[i] = k.Role
	}
	assert.Equal(t, []string{"pool", "admin_accounts_admin", "admin_accounts_config"}, roles)
}

func TestPlanInstructionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*codegen.IDL)
		opts   gen.Options
		errMsg string
	}{
		{"width", func(*codegen.IDL) {}, gen.Options{Width: 4}, "unsupported discriminator width 4"},
		{"short discriminator", func(idl *codegen.IDL) { idl.Instructions[0].Discriminator = []byte{1} }, gen.Options{}, "shorter than 8 bytes"},
		{"duplicate", func(idl *codegen.IDL) { idl.Instructions[1].Name = "Swap" }, gen.Options{}, "declared twice"},
		{"no accounts", func(idl *codegen.IDL) { idl.Instructions[1].Accounts = nil }, gen.Options{}, "declares no accounts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idl := parsePoolIDL(t)
			tt.mutate(idl)
			_, err := gen.PlanInstructions(idl, tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRenderLegacyIDL(t *testing.T) {
	idl, err := codegen.ParseIDL([]byte(`{
		"version": "0.1.0",
		"name": "token_swap",
		"metadata": {"address": "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"},
		"instructions": [{
			"name": "swapExactIn",
			"accounts": [{"name": "user", "isMut": true, "isSigner": true}],
			"args": [{"name": "amounts", "type": {"vec": {"vec": "u64"}}}, {"name": "limit", "type": {"option": {"vec": "u8"}}}]
		}],
		"accounts": [{"name": "Config", "type": {"kind": "struct", "fields": [{"name": "admin", "type": "publicKey"}]}}],
		"events": [{"name": "Swapped", "fields": [{"name": "amount", "type": "u64", "index": false}]}]
	}`))
	require.NoError(t, err)

	files, err := gen.Render(idl, gen.Options{})
	require.NoError(t, err)
	assertParses(t, files)
	assert.NotContains(t, files, "types.go")

	assert.Contains(t, files["program.go"], "package token_swap")
	assert.Contains(t, files["instructions.go"], "Amounts [][]uint64")
	assert.Contains(t, files["instructions.go"], "Limit   *[]uint8")
	assert.Contains(t, files["instructions.go"], "`account:\"user,signer,writable\"`")
	assert.Contains(t, files["instructions.go"], "func NewSwapExactInInstruction(")
	assert.Contains(t, files["events.go"], "type Swapped struct")
	assert.Contains(t, files["accounts.go"], "Admin solana.PublicKey")
}

func TestRenderErrors(t *testing.T) {
	_, err := gen.Render(nil, gen.Options{})
	assert.ErrorContains(t, err, "IDL is nil")

	idl := parsePoolIDL(t)
	idl.Address = ""
	_, err = gen.Render(idl, gen.Options{})
	assert.ErrorContains(t, err, "program address is required")

	idl = parsePoolIDL(t)
	idl.Types = idl.Types[:len(idl.Types)-1]
	_, err = gen.Render(idl, gen.Options{})
	assert.ErrorContains(t, err, "event EvtSwap: no layout")

	idl = parsePoolIDL(t)
	idl.Types[0].Type.Struct.Fields[0].Type = codegen.IDLType{Vec: &codegen.IDLType{Option: &codegen.IDLType{Kind: "u8"}}}
	_, err = gen.Render(idl, gen.Options{})
	assert.ErrorContains(t, err, "type SwapParameters")
}

func TestGenerateAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cpamm")
	idl := parsePoolIDL(t)

	require.NoError(t, gen.GenerateAll(idl, gen.Options{PackageName: "cpamm"}, dir))
	for _, file := range gen.GetGeneratedFiles(idl) {
		_, err := os.Stat(filepath.Join(dir, file))
		assert.NoError(t, err, file)
	}

	require.NoError(t, gen.CleanOutputDir(dir))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetGeneratedFiles(t *testing.T) {
	idl := &codegen.IDL{}
	assert.Equal(t, []string{"program.go", "instructions.go", "events.go"}, gen.GetGeneratedFiles(idl))

	idl = parsePoolIDL(t)
	assert.Equal(t, []string{"program.go", "types.go", "accounts.go", "instructions.go", "events.go"}, gen.GetGeneratedFiles(idl))
}
