package invoke

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

type testInstruction interface{ isTestInstruction() }

type deposit struct {
	Amount uint64
}

func (*deposit) isTestInstruction() {}

var testEnvelope = codec.MustEnvelope("test", codec.WidthAnchor,
	codec.Case[testInstruction]{Name: "Deposit", Discriminator: codec.InstructionSighash("deposit"), Prototype: (*deposit)(nil)},
)

type depositKeys struct {
	Owner    solana.PublicKey `account:"owner,signer"`
	Vault    solana.PublicKey `account:"vault,writable"`
	Referrer solana.PublicKey `account:"referrer,writable,optional"`
	Program  solana.PublicKey `account:"program"`
}

var programID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

func newKey(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	pk[31] = b
	return pk
}

func sampleKeys() depositKeys {
	return depositKeys{Owner: newKey(1), Vault: newKey(2), Program: programID}
}

func TestBuild(t *testing.T) {
	keys := sampleKeys()
	ix, err := Build(programID, testEnvelope, keys, testInstruction(&deposit{Amount: 5}), solana.Meta(newKey(9)).WRITE())
	require.NoError(t, err)

	assert.Equal(t, programID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte(codec.InstructionSighash("deposit")), data[:8])
	assert.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, data[8:])

	metas := ix.Accounts()
	require.Len(t, metas, 5)
	assert.Equal(t, solana.AccountMeta{PublicKey: keys.Owner, IsSigner: true}, *metas[0])
	assert.Equal(t, solana.AccountMeta{PublicKey: keys.Vault, IsWritable: true}, *metas[1])
	// absent optional account is replaced by the program id
	assert.Equal(t, solana.AccountMeta{PublicKey: programID}, *metas[2])
	assert.Equal(t, solana.AccountMeta{PublicKey: newKey(9), IsWritable: true}, *metas[4])
}

func TestBuildUnknownVariant(t *testing.T) {
	type other struct{ testInstruction }
	_, err := Build(programID, testEnvelope, sampleKeys(), testInstruction(&other{}))
	assert.ErrorIs(t, err, errors.ErrUnknownVariant)
}

func buildDeposit(t *testing.T) (*solana.GenericInstruction, *accounts.Live[depositKeys]) {
	t.Helper()
	keys := sampleKeys()
	ix, err := Build(programID, testEnvelope, keys, testInstruction(&deposit{Amount: 1}))
	require.NoError(t, err)

	live, err := accounts.LiveFromMetas[depositKeys](ix.Accounts())
	require.NoError(t, err)
	return ix, live
}

func TestDispatch(t *testing.T) {
	ix, live := buildDeposit(t)

	rec := &Recorder{}
	require.NoError(t, Dispatch(context.Background(), rec, ix, live))

	seeds := [][][]byte{{[]byte("vault"), {1}}}
	require.NoError(t, DispatchSigned(context.Background(), rec, ix, live, seeds, types.AccountInfo{Pubkey: newKey(7)}))

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.False(t, calls[0].Signed)
	assert.Len(t, calls[0].Accounts, 4)
	assert.True(t, calls[1].Signed)
	assert.Equal(t, seeds, calls[1].SignerSeeds)
	assert.Len(t, calls[1].Accounts, 5)
	assert.Equal(t, newKey(7), calls[1].Accounts[4].Pubkey)

	rec.Reset()
	assert.Empty(t, rec.Calls())
}

func TestDispatchPropagatesHostError(t *testing.T) {
	ix, live := buildDeposit(t)

	host := stderrors.New("compute budget exceeded")
	rec := &Recorder{Err: host}

	err := Dispatch(context.Background(), rec, ix, live)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDispatchFailed)
	assert.ErrorIs(t, err, host)
}

func TestCheckedPasses(t *testing.T) {
	ix, live := buildDeposit(t)

	var logs bytes.Buffer
	rec := &Recorder{}
	checked := NewChecked(rec, AllChecks()).
		WithLogger(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	require.NoError(t, Dispatch(context.Background(), checked, ix, live))
	assert.Len(t, rec.Calls(), 1)
	assert.Contains(t, logs.String(), `"msg":"dispatched"`)
	assert.Contains(t, logs.String(), `"dispatch_id"`)
}

func TestCheckedRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a []types.AccountInfo)
		target error
		kind   errors.PrivilegeKind
	}{
		{
			name:   "wrong key",
			mutate: func(a []types.AccountInfo) { a[1].Pubkey = newKey(42) },
			target: errors.ErrAccountKeyMismatch,
		},
		{
			name:   "read-only vault",
			mutate: func(a []types.AccountInfo) { a[1].IsWritable = false },
			target: errors.ErrPrivilegeViolation,
			kind:   errors.NotWritable,
		},
		{
			name:   "unsigned owner",
			mutate: func(a []types.AccountInfo) { a[0].IsSigner = false },
			target: errors.ErrPrivilegeViolation,
			kind:   errors.NotSigner,
		},
		{
			name: "writable reported before signer",
			mutate: func(a []types.AccountInfo) {
				a[0].IsSigner = false
				a[1].IsWritable = false
			},
			target: errors.ErrPrivilegeViolation,
			kind:   errors.NotWritable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix, _ := buildDeposit(t)
			live := types.AccountInfosFromMetas(ix.Accounts())
			tt.mutate(live)

			rec := &Recorder{}
			checked := NewChecked(rec, AllChecks()).WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

			err := checked.Invoke(context.Background(), ix, live)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			if tt.kind != 0 {
				var pv *errors.PrivilegeViolationError
				require.ErrorAs(t, err, &pv)
				assert.Equal(t, tt.kind, pv.Kind)
			}
			assert.Empty(t, rec.Calls())
		})
	}
}

func TestCheckedShortAccountList(t *testing.T) {
	ix, _ := buildDeposit(t)
	live := types.AccountInfosFromMetas(ix.Accounts())[:2]

	err := NewChecked(&Recorder{}, AllChecks()).Invoke(context.Background(), ix, live)
	assert.ErrorIs(t, err, errors.ErrAccountCountMismatch)
}

func TestCheckedDerivedSigner(t *testing.T) {
	caller := solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
	seeds := [][]byte{[]byte("vault_signer")}
	pda, bump, err := solana.FindProgramAddress(seeds, caller)
	require.NoError(t, err)
	signerSeeds := [][][]byte{append(seeds, []byte{bump})}

	keys := sampleKeys()
	keys.Owner = pda
	ix, err := Build(programID, testEnvelope, keys, testInstruction(&deposit{Amount: 1}))
	require.NoError(t, err)

	live := types.AccountInfosFromMetas(ix.Accounts())
	live[0].IsSigner = false

	rec := &Recorder{}
	plain := NewChecked(rec, AllChecks())
	assert.ErrorIs(t, plain.InvokeSigned(context.Background(), ix, live, signerSeeds), errors.ErrPrivilegeViolation)

	opts := AllChecks()
	opts.Caller = &caller
	withCaller := NewChecked(rec, opts)
	require.NoError(t, withCaller.InvokeSigned(context.Background(), ix, live, signerSeeds))
	assert.Len(t, rec.Calls(), 1)
}
