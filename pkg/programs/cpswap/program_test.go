package cpswap

import (
	"testing"

	sdkcommon "github.com/blocto/solana-go-sdk/common"
	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

func key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	pk[2] = 0x5a
	return pk
}

func TestInstructionRoundTrip(t *testing.T) {
	tests := []struct {
		handler string
		ix      Instruction
	}{
		{"create_amm_config", &CreateAmmConfig{Index: 1, TradeFeeRate: 2500, ProtocolFeeRate: 120000, FundFeeRate: 40000, CreatePoolFee: 150_000_000}},
		{"update_amm_config", &UpdateAmmConfig{Param: 0, Value: 10}},
		{"update_pool_status", &UpdatePoolStatus{Status: 4}},
		{"collect_protocol_fee", &CollectProtocolFee{Amount0Requested: 1, Amount1Requested: 2}},
		{"collect_fund_fee", &CollectFundFee{Amount0Requested: 3, Amount1Requested: 4}},
		{"initialize", &Initialize{InitAmount0: 1_000, InitAmount1: 2_000, OpenTime: 0}},
		{"deposit", &Deposit{LpTokenAmount: 10, MaximumToken0Amount: 11, MaximumToken1Amount: 12}},
		{"withdraw", &Withdraw{LpTokenAmount: 10, MinimumToken0Amount: 9, MinimumToken1Amount: 8}},
		{"swap_base_input", &SwapBaseInput{AmountIn: 100, MinimumAmountOut: 90}},
		{"swap_base_output", &SwapBaseOutput{MaxAmountIn: 110, AmountOut: 100}},
	}
	require.Len(t, tests, Instructions.Table().Len())

	for _, tt := range tests {
		t.Run(tt.handler, func(t *testing.T) {
			data, err := EncodeInstruction(tt.ix)
			require.NoError(t, err)
			assert.Equal(t, []byte(codec.InstructionSighash(tt.handler)), data[:8])

			got, err := DecodeInstructionStrict(data)
			require.NoError(t, err)
			assert.Equal(t, tt.ix, got)
		})
	}
}

func TestDepositMatchesBorshGo(t *testing.T) {
	want, err := borsh.Serialize(Deposit{LpTokenAmount: 1, MaximumToken0Amount: 2, MaximumToken1Amount: 3})
	require.NoError(t, err)

	data, err := EncodeInstruction(&Deposit{LpTokenAmount: 1, MaximumToken0Amount: 2, MaximumToken1Amount: 3})
	require.NoError(t, err)
	assert.Equal(t, want, data[8:])
}

func TestEvents(t *testing.T) {
	swap := &SwapEvent{PoolID: key(1), InputVaultBefore: 1000, OutputVaultBefore: 2000, InputAmount: 10, OutputAmount: 19, BaseInput: true}
	data, err := Events.Encode(swap)
	require.NoError(t, err)
	assert.Equal(t, []byte{64, 198, 205, 232, 38, 8, 113, 226}, data[:8])

	got, err := DecodeEvent(data)
	require.NoError(t, err)
	assert.Equal(t, swap, got)

	lp := &LpChangeEvent{PoolID: key(2), LpAmountBefore: 5, Token0Amount: 1, Token1Amount: 1, ChangeType: LpChangeWithdraw}
	data, err = Events.EncodeCPI(lp)
	require.NoError(t, err)
	got, err = DecodeEventCPI(data)
	require.NoError(t, err)
	assert.Equal(t, lp, got)

	_, err = DecodeEventCPI(data[8:])
	assert.True(t, errors.Is(err, errors.ErrMalformedInput))
}

func TestAuthority(t *testing.T) {
	assert.Equal(t, "GpMZbSM2GgvTKHJirzeGfMFoaZ8UR2X7F4v8vHTvxFbL", Authority.String())
}

func TestDeriveMatchesSolanaGoSDK(t *testing.T) {
	programID := sdkcommon.PublicKeyFromBytes(ProgramID[:])
	derive := func(seeds ...[]byte) solana.PublicKey {
		pk, _, err := sdkcommon.FindProgramAddress(seeds, programID)
		require.NoError(t, err)
		return solana.PublicKeyFromBytes(pk.Bytes())
	}

	cfg, _, err := DeriveAmmConfig(3)
	require.NoError(t, err)
	assert.Equal(t, derive(SeedAmmConfig, []byte{0, 3}), cfg)

	pool, _, err := DerivePool(cfg, key(1), key(2))
	require.NoError(t, err)
	mint0, mint1 := key(1), key(2)
	assert.Equal(t, derive(SeedPool, cfg[:], mint0[:], mint1[:]), pool)

	vault, _, err := DeriveVault(pool, key(1))
	require.NoError(t, err)
	assert.Equal(t, derive(SeedPoolVault, pool[:], mint0[:]), vault)

	assert.Equal(t, derive(SeedAuthority), Authority)
}

func TestNewSwapBaseInputInstruction(t *testing.T) {
	keys := SwapKeys{
		Payer:              key(1),
		AmmConfig:          key(2),
		PoolState:          key(3),
		InputTokenAccount:  key(4),
		OutputTokenAccount: key(5),
		InputVault:         key(6),
		OutputVault:        key(7),
		InputTokenMint:     key(8),
		OutputTokenMint:    key(9),
		ObservationState:   key(10),
	}
	ix, err := NewSwapBaseInputInstruction(keys, 100, 90)
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 13)
	assert.Equal(t, Authority, metas[1].PublicKey)
	assert.Equal(t, solana.TokenProgramID, metas[8].PublicKey)

	live, err := accounts.LiveFromMetas[SwapKeys](metas)
	require.NoError(t, err)
	require.NoError(t, live.VerifyPrivileges())

	// payer without a signature
	infos := types.AccountInfosFromMetas(metas)
	infos[0].IsSigner = false
	live, err = accounts.NewLive[SwapKeys](infos)
	require.NoError(t, err)
	err = live.VerifySigner()
	assert.True(t, errors.Is(err, errors.ErrPrivilegeViolation))
}

func TestNewInitializeDerivesAddresses(t *testing.T) {
	ix, err := NewInitializeInstruction(InitializeKeys{
		Creator:        key(1),
		AmmConfig:      key(2),
		Token0Mint:     key(3),
		Token1Mint:     key(4),
		CreatorToken0:  key(5),
		CreatorToken1:  key(6),
		CreatorLpToken: key(7),
	}, Initialize{InitAmount0: 1, InitAmount1: 2})
	require.NoError(t, err)

	keys, err := accounts.KeysFromMetas[InitializeKeys](ix.Accounts())
	require.NoError(t, err)

	pool, _, err := DerivePool(key(2), key(3), key(4))
	require.NoError(t, err)
	lp, _, err := DeriveLpMint(pool)
	require.NoError(t, err)
	assert.Equal(t, pool, keys.PoolState)
	assert.Equal(t, lp, keys.LpMint)
	assert.Equal(t, CreatePoolFeeReceiver, keys.CreatePoolFee)
	assert.Equal(t, Authority, keys.Authority)
}
