package accounts

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

type claimKeys struct {
	PoolAuthority solana.PublicKey `account:"pool_authority"`
	Pool          solana.PublicKey `account:"pool"`
	Position      solana.PublicKey `account:"position,writable"`
	TokenAVault   solana.PublicKey `account:"token_a_vault,writable"`
	Owner         solana.PublicKey `account:"owner,signer"`
	Referral      solana.PublicKey `account:"referral,writable,optional"`
}

func newKey(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	pk[31] = b
	return pk
}

func sampleKeys() claimKeys {
	return claimKeys{
		PoolAuthority: newKey(1),
		Pool:          newKey(2),
		Position:      newKey(3),
		TokenAVault:   newKey(4),
		Owner:         newKey(5),
		Referral:      newKey(6),
	}
}

func TestSchemaOf(t *testing.T) {
	s, err := SchemaOf[claimKeys]()
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())

	assert.Equal(t, Role{Name: "pool_authority"}, s.Roles[0])
	assert.Equal(t, Role{Name: "position", Writable: true}, s.Roles[2])
	assert.Equal(t, Role{Name: "owner", Signer: true}, s.Roles[4])
	assert.Equal(t, Role{Name: "referral", Writable: true, Optional: true}, s.Roles[5])

	assert.Equal(t, []string{"owner"}, s.Signers())
	assert.Equal(t, []string{"position", "token_a_vault", "referral"}, s.Writables())

	idx, ok := s.Index("owner")
	require.True(t, ok)
	assert.Equal(t, 4, idx)

	again := MustSchemaOf[claimKeys]()
	assert.Same(t, s, again)
}

type notPubkey struct {
	Pool string `account:"pool"`
}

type badOption struct {
	Pool solana.PublicKey `account:"pool,mutable"`
}

type duplicateRole struct {
	A solana.PublicKey `account:"pool"`
	B solana.PublicKey `account:"pool"`
}

type untagged struct {
	A solana.PublicKey
}

func TestSchemaOfRejects(t *testing.T) {
	_, err := SchemaOf[notPubkey]()
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)

	_, err = SchemaOf[badOption]()
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)

	_, err = SchemaOf[duplicateRole]()
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)

	_, err = SchemaOf[untagged]()
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)

	_, err = SchemaOf[int]()
	assert.ErrorIs(t, err, errors.ErrInvalidSchema)

	assert.Panics(t, func() { Metas(untagged{}) })
}

func TestMetas(t *testing.T) {
	keys := sampleKeys()
	metas := Metas(keys)
	require.Len(t, metas, 6)

	expected := []*solana.AccountMeta{
		solana.Meta(keys.PoolAuthority),
		solana.Meta(keys.Pool),
		solana.Meta(keys.Position).WRITE(),
		solana.Meta(keys.TokenAVault).WRITE(),
		solana.Meta(keys.Owner).SIGNER(),
		solana.Meta(keys.Referral).WRITE(),
	}
	for i := range expected {
		assert.Equal(t, *expected[i], *metas[i], "position %d", i)
	}
}

func TestMetasForProgram(t *testing.T) {
	program := newKey(99)
	keys := sampleKeys()
	keys.Referral = solana.PublicKey{}

	metas := MetasForProgram(program, keys)
	assert.Equal(t, solana.AccountMeta{PublicKey: program}, *metas[5])

	keys = sampleKeys()
	metas = MetasForProgram(program, keys)
	assert.Equal(t, solana.AccountMeta{PublicKey: keys.Referral, IsWritable: true}, *metas[5])
}

func TestRoleOrderFidelity(t *testing.T) {
	keys := sampleKeys()

	back, err := KeysFromMetas[claimKeys](Metas(keys))
	require.NoError(t, err)
	assert.Equal(t, keys, back)

	back, err = KeysFromPubkeys[claimKeys](Pubkeys(keys))
	require.NoError(t, err)
	assert.Equal(t, keys, back)

	named := Named(keys)
	assert.Equal(t, keys.Owner, named["owner"])
	assert.Len(t, named, 6)
}

func TestNilAccountMeta(t *testing.T) {
	metas := Metas(sampleKeys())
	metas[2] = nil

	_, err := KeysFromMetas[claimKeys](metas)
	var malformed *errors.MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Offset)
	assert.True(t, errors.Is(err, errors.ErrMalformedInput))

	_, err = LiveFromMetas[claimKeys](metas)
	assert.True(t, errors.Is(err, errors.ErrMalformedInput))

	_, _, err = KeysFromMetasPrefix[claimKeys](append(Metas(sampleKeys()), nil))
	require.NoError(t, err)
}

func TestKeysFromPubkeysLength(t *testing.T) {
	pubkeys := Pubkeys(sampleKeys())

	for _, n := range []int{0, 5, 7} {
		list := make([]solana.PublicKey, n)
		copy(list, pubkeys)

		_, err := KeysFromPubkeys[claimKeys](list)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrAccountCountMismatch)

		var mismatch *errors.AccountCountMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, n, mismatch.Actual)
		assert.Equal(t, 6, mismatch.Expected)
	}
}

func TestKeysFromMetasPrefix(t *testing.T) {
	keys := sampleKeys()
	metas := append(Metas(keys), solana.Meta(newKey(50)).WRITE(), solana.Meta(newKey(51)))

	got, rest, err := KeysFromMetasPrefix[claimKeys](metas)
	require.NoError(t, err)
	assert.Equal(t, keys, got)
	require.Len(t, rest, 2)
	assert.Equal(t, newKey(50), rest[0].PublicKey)

	_, _, err = KeysFromMetasPrefix[claimKeys](metas[:3])
	assert.ErrorIs(t, err, errors.ErrAccountCountMismatch)
}

func liveFor(keys claimKeys) []types.AccountInfo {
	return types.AccountInfosFromMetas(Metas(keys))
}

func TestNewLive(t *testing.T) {
	accounts := liveFor(sampleKeys())

	live, err := NewLive[claimKeys](accounts)
	require.NoError(t, err)
	assert.Equal(t, sampleKeys(), live.Keys())

	owner, ok := live.Get("owner")
	require.True(t, ok)
	assert.True(t, owner.IsSigner)

	_, ok = live.Get("nobody")
	assert.False(t, ok)

	_, err = NewLive[claimKeys](accounts[:5])
	assert.ErrorIs(t, err, errors.ErrAccountCountMismatch)
}

func TestVerifyKeys(t *testing.T) {
	keys := sampleKeys()
	live, err := NewLive[claimKeys](liveFor(keys))
	require.NoError(t, err)
	require.NoError(t, live.VerifyKeys(keys))

	other := keys
	other.TokenAVault = newKey(40)
	other.Owner = newKey(41)

	err = live.VerifyKeys(other)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrAccountKeyMismatch)

	var mismatch *errors.AccountKeyMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "token_a_vault", mismatch.Role)
	assert.Equal(t, 3, mismatch.Index)
	assert.Equal(t, keys.TokenAVault, mismatch.Actual)
	assert.Equal(t, newKey(40), mismatch.Expected)
}

func TestWritableCheckPrecision(t *testing.T) {
	accounts := liveFor(sampleKeys())
	// Every role read-only; also make non-writable roles writable to prove they are
	// never consulted.
	for i := range accounts {
		accounts[i].IsWritable = false
	}
	accounts[0].IsWritable = true
	accounts[4].IsWritable = true

	live, err := NewLive[claimKeys](accounts)
	require.NoError(t, err)

	violations := live.WritableViolations()
	var roles []string
	for _, v := range violations {
		assert.Equal(t, errors.NotWritable, v.Kind)
		roles = append(roles, v.Role)
	}
	assert.Equal(t, []string{"position", "token_a_vault", "referral"}, roles)

	err = live.VerifyWritable()
	var pv *errors.PrivilegeViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "position", pv.Role)
	assert.Equal(t, "InvalidAccountData", pv.Kind.ProgramError())

	accounts = liveFor(sampleKeys())
	accounts[1].IsWritable = false
	live, err = NewLive[claimKeys](accounts)
	require.NoError(t, err)
	assert.NoError(t, live.VerifyWritable())
}

func TestVerifySigner(t *testing.T) {
	accounts := liveFor(sampleKeys())
	accounts[4].IsSigner = false

	live, err := NewLive[claimKeys](accounts)
	require.NoError(t, err)

	assert.NoError(t, live.VerifyWritable())

	err = live.VerifySigner()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrPrivilegeViolation)

	var pv *errors.PrivilegeViolationError
	require.ErrorAs(t, err, &pv)
	assert.Equal(t, "owner", pv.Role)
	assert.Equal(t, errors.NotSigner, pv.Kind)
	assert.Equal(t, "MissingRequiredSignature", pv.Kind.ProgramError())
}

func TestVerifyPrivilegesOrder(t *testing.T) {
	accounts := liveFor(sampleKeys())
	accounts[4].IsSigner = false
	accounts[3].IsWritable = false

	live, err := NewLive[claimKeys](accounts)
	require.NoError(t, err)

	var pv *errors.PrivilegeViolationError
	require.ErrorAs(t, live.VerifyPrivileges(), &pv)
	assert.Equal(t, errors.NotWritable, pv.Kind)
	assert.Equal(t, "token_a_vault", pv.Role)

	accounts[3].IsWritable = true
	require.ErrorAs(t, live.VerifyPrivileges(), &pv)
	assert.Equal(t, errors.NotSigner, pv.Kind)

	accounts[4].IsSigner = true
	assert.NoError(t, live.VerifyPrivileges())
}

func TestLiveFromMetas(t *testing.T) {
	keys := sampleKeys()
	live, err := LiveFromMetas[claimKeys](Metas(keys))
	require.NoError(t, err)
	assert.NoError(t, live.VerifyPrivileges())
	assert.NoError(t, live.VerifyKeys(keys))
	assert.Len(t, live.Accounts(), 6)
	assert.Equal(t, 6, live.Schema().Len())
}

func TestWithDefaults(t *testing.T) {
	keys := sampleKeys()
	keys.Pool = solana.PublicKey{}

	got := WithDefaults(keys, map[string]solana.PublicKey{
		"pool":    newKey(70),
		"owner":   newKey(71),
		"missing": newKey(72),
	})
	assert.Equal(t, newKey(70), got.Pool)
	assert.Equal(t, keys.Owner, got.Owner, "non-zero roles are kept")
	assert.True(t, keys.Pool.IsZero(), "input is not mutated")
}
