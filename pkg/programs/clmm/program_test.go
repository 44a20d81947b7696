package clmm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/errors"
)

func key(b byte) solana.PublicKey {
	var pk solana.PublicKey
	pk[0] = b
	pk[1] = 0xcc
	return pk
}

func boolp(v bool) *bool { return &v }

func sampleInstructions() []Instruction {
	return []Instruction{
		&CreateAmmConfig{Index: 4, TickSpacing: 60, TradeFeeRate: 2500, ProtocolFeeRate: 120000, FundFeeRate: 40000},
		&UpdateAmmConfig{Param: AmmConfigFundFeeRate, Value: 1},
		&CreatePool{SqrtPriceX64: codec.U128FromWords(0, 1), OpenTime: 1_700_000_000},
		&UpdatePoolStatus{Status: PoolStatusSwap | PoolStatusCollectFee},
		&CreateOperationAccount{},
		&UpdateOperationAccount{Param: OperationAddWhitelistMints, Keys: []solana.PublicKey{key(1), key(2)}},
		&TransferRewardOwner{NewOwner: key(3)},
		&InitializeReward{Param: InitializeRewardParam{OpenTime: 1, EndTime: 2, EmissionsPerSecondX64: codec.NewU128(3)}},
		&CollectRemainingRewards{RewardIndex: 2},
		&UpdateRewardInfos{},
		&SetRewardParams{RewardIndex: 1, EmissionsPerSecondX64: codec.NewU128(9), OpenTime: 10, EndTime: 20},
		&CollectProtocolFee{Amount0Requested: ^uint64(0), Amount1Requested: 5},
		&CollectFundFee{Amount0Requested: 6, Amount1Requested: ^uint64(0)},
		&OpenPosition{TickLowerIndex: -120, TickUpperIndex: 120, TickArrayLowerStartIndex: -3600, TickArrayUpperStartIndex: 0, Liquidity: codec.NewU128(1000), Amount0Max: 10, Amount1Max: 11},
		&OpenPositionV2{TickLowerIndex: -60, TickUpperIndex: 60, Liquidity: codec.NewU128(0), Amount0Max: 1, Amount1Max: 2, WithMetadata: true, BaseFlag: boolp(false)},
		&OpenPositionWithToken22Nft{TickLowerIndex: -10, TickUpperIndex: 10, Amount0Max: 3, Amount1Max: 4},
		&ClosePosition{},
		&IncreaseLiquidity{Liquidity: codec.NewU128(5), Amount0Max: 6, Amount1Max: 7},
		&IncreaseLiquidityV2{Liquidity: codec.NewU128(5), Amount0Max: 6, Amount1Max: 7, BaseFlag: boolp(true)},
		&DecreaseLiquidity{Liquidity: codec.NewU128(8), Amount0Min: 1, Amount1Min: 1},
		&DecreaseLiquidityV2{Liquidity: codec.NewU128(8), Amount0Min: 2, Amount1Min: 2},
		&Swap{Amount: 100, OtherAmountThreshold: 95, SqrtPriceLimitX64: codec.NewU128(4295048017), IsBaseInput: true},
		&SwapV2{Amount: 100, OtherAmountThreshold: 105},
		&SwapRouterBaseIn{AmountIn: 1, AmountOutMinimum: 1},
	}
}

func TestInstructionRoundTrip(t *testing.T) {
	samples := sampleInstructions()
	require.Len(t, samples, Instructions.Table().Len())

	for _, ix := range samples {
		name := InstructionName(ix)
		t.Run(name, func(t *testing.T) {
			data, err := EncodeInstruction(ix)
			require.NoError(t, err)

			disc, ok := Instructions.Table().Lookup(name)
			require.True(t, ok)
			require.Len(t, disc, 1)
			assert.Equal(t, disc[0], data[0])

			got, err := DecodeInstructionStrict(data)
			require.NoError(t, err)
			assert.Equal(t, ix, got)
		})
	}
}

func TestDiscriminatorsAreSighashPrefixes(t *testing.T) {
	handlers := map[string]string{
		"CreateAmmConfig": "create_amm_config", "UpdateAmmConfig": "update_amm_config",
		"CreatePool": "create_pool", "UpdatePoolStatus": "update_pool_status",
		"CreateOperationAccount": "create_operation_account", "UpdateOperationAccount": "update_operation_account",
		"TransferRewardOwner": "transfer_reward_owner", "InitializeReward": "initialize_reward",
		"CollectRemainingRewards": "collect_remaining_rewards", "UpdateRewardInfos": "update_reward_infos",
		"SetRewardParams": "set_reward_params", "CollectProtocolFee": "collect_protocol_fee",
		"CollectFundFee": "collect_fund_fee", "OpenPosition": "open_position",
		"OpenPositionV2": "open_position_v2", "ClosePosition": "close_position",
		"IncreaseLiquidity": "increase_liquidity", "IncreaseLiquidityV2": "increase_liquidity_v2",
		"DecreaseLiquidity": "decrease_liquidity", "DecreaseLiquidityV2": "decrease_liquidity_v2",
		"Swap": "swap", "SwapV2": "swap_v2", "SwapRouterBaseIn": "swap_router_base_in",
	}
	for _, e := range Discriminators() {
		handler, ok := handlers[e.Name]
		if !ok {
			assert.Equal(t, "OpenPositionWithToken22Nft", e.Name)
			assert.Equal(t, codec.Discriminator{255}, e.Discriminator)
			continue
		}
		assert.Equal(t, codec.InstructionSighash(handler).Truncate(1), e.Discriminator, e.Name)
	}

	// the collision that forces the 255 assignment
	assert.Equal(t,
		codec.InstructionSighash("open_position_v2")[0],
		codec.InstructionSighash("open_position_with_token22_nft")[0])
}

func TestDiscriminatorsUnique(t *testing.T) {
	seen := map[byte]string{}
	for _, e := range Discriminators() {
		prev, dup := seen[e.Discriminator[0]]
		assert.False(t, dup, "%s collides with %s", e.Name, prev)
		seen[e.Discriminator[0]] = e.Name
	}
	assert.NotEqual(t, CollectProtocolFeeDiscriminator, CollectFundFeeDiscriminator)
}

func TestCreatePoolPrefix(t *testing.T) {
	data, err := EncodeInstruction(&CreatePool{SqrtPriceX64: codec.NewU128(1 << 32), OpenTime: 7})
	require.NoError(t, err)
	assert.Equal(t, byte(233), data[0])
	assert.Len(t, data, 1+16+8)

	_, err = DecodeInstruction(append([]byte{232}, data[1:]...))
	var unknown *errors.UnknownDiscriminatorError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []byte{232}, unknown.Discriminator)

	_, err = DecodeInstruction(nil)
	assert.True(t, errors.Is(err, errors.ErrMalformedInput))
}

func TestSwapMatchesBorshGo(t *testing.T) {
	type mirror struct {
		Amount               uint64
		OtherAmountThreshold uint64
		SqrtPriceLimitX64    [16]byte
		IsBaseInput          bool
	}
	limit := codec.U128FromWords(0x0102030405060708, 9)

	want, err := borsh.Serialize(mirror{Amount: 1, OtherAmountThreshold: 2, SqrtPriceLimitX64: limit.Bytes(), IsBaseInput: true})
	require.NoError(t, err)

	data, err := EncodeInstruction(&Swap{Amount: 1, OtherAmountThreshold: 2, SqrtPriceLimitX64: limit, IsBaseInput: true})
	require.NoError(t, err)
	assert.Equal(t, want, data[1:])
}

func TestEventRoundTrip(t *testing.T) {
	events := []Event{
		&SwapEvent{PoolState: key(1), Sender: key(2), Amount0: 10, Amount1: 20, ZeroForOne: true, SqrtPriceX64: codec.NewU128(5), Liquidity: codec.NewU128(6), Tick: -42},
		&PoolCreatedEvent{TokenMint0: key(1), TokenMint1: key(2), TickSpacing: 10, PoolState: key(3), SqrtPriceX64: codec.U128FromWords(0, 1), Tick: 0, TokenVault0: key(4), TokenVault1: key(5)},
		&DecreaseLiquidityEvent{PositionNftMint: key(1), Liquidity: codec.NewU128(9), RewardAmounts: [RewardCount]uint64{1, 2, 3}},
		&UpdateRewardInfosEvent{RewardGrowthGlobalX64: [RewardCount]U128{codec.NewU128(1), {}, codec.U128FromWords(1, 1)}},
	}
	for _, ev := range events {
		name := EventName(ev)
		t.Run(name, func(t *testing.T) {
			disc, ok := Events.Table().Lookup(name)
			require.True(t, ok)
			assert.Equal(t, codec.EventSighash(name), disc)

			data, err := Events.Encode(ev)
			require.NoError(t, err)
			got, err := DecodeEvent(data)
			require.NoError(t, err)
			assert.Equal(t, ev, got)
		})
	}
}

func TestNewSwapV2Instruction(t *testing.T) {
	keys := SwapV2Keys{
		Payer:              key(1),
		AmmConfig:          key(2),
		PoolState:          key(3),
		InputTokenAccount:  key(4),
		OutputTokenAccount: key(5),
		InputVault:         key(6),
		OutputVault:        key(7),
		ObservationState:   key(8),
		InputVaultMint:     key(9),
		OutputVaultMint:    key(10),
	}
	ix, err := NewSwapV2Instruction(keys, SwapV2{Amount: 5, OtherAmountThreshold: 4, IsBaseInput: true}, key(11), key(12))
	require.NoError(t, err)

	metas := ix.Accounts()
	require.Len(t, metas, 15)
	assert.Equal(t, solana.TokenProgramID, metas[8].PublicKey)
	assert.Equal(t, solana.Token2022ProgramID, metas[9].PublicKey)
	assert.Equal(t, solana.MemoProgramID, metas[10].PublicKey)
	assert.True(t, metas[13].IsWritable)

	got, rest, err := accounts.KeysFromMetasPrefix[SwapV2Keys](metas)
	require.NoError(t, err)
	assert.Equal(t, keys.PoolState, got.PoolState)
	assert.Len(t, rest, 2)
}

func TestNewCreatePoolDerivesAddresses(t *testing.T) {
	ix, err := NewCreatePoolInstruction(CreatePoolKeys{PoolCreator: key(1), AmmConfig: key(2), TokenMint0: key(3), TokenMint1: key(4)}, codec.NewU128(1), 0)
	require.NoError(t, err)

	keys, err := accounts.KeysFromMetas[CreatePoolKeys](ix.Accounts())
	require.NoError(t, err)
	pool, _, err := DerivePool(key(2), key(3), key(4))
	require.NoError(t, err)
	assert.Equal(t, pool, keys.PoolState)

	obs, _, err := DeriveObservation(pool)
	require.NoError(t, err)
	assert.Equal(t, obs, keys.ObservationState)
	assert.Equal(t, solana.SysVarRentPubkey, keys.Rent)
	assert.Equal(t, solana.TokenProgramID, keys.TokenProgram0)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, byte(233), data[0])
}
