package damm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/codec"
)

// U128 is the little-endian 128-bit integer used for liquidity and prices.
type U128 = codec.U128

// PoolStatus enables or disables trading on a pool.
type PoolStatus uint8

const (
	PoolStatusEnable PoolStatus = iota
	PoolStatusDisable
)

// ActivationType selects whether activation points are slots or timestamps.
type ActivationType uint8

const (
	ActivationTypeSlot ActivationType = iota
	ActivationTypeTimestamp
)

// CollectFeeMode selects the token fees are collected in.
type CollectFeeMode uint8

const (
	CollectFeeModeBothToken CollectFeeMode = iota
	CollectFeeModeOnlyB
)

// FeeSchedulerMode selects the base fee decay curve.
type FeeSchedulerMode uint8

const (
	FeeSchedulerModeLinear FeeSchedulerMode = iota
	FeeSchedulerModeExponential
)

// TradeDirection of a swap.
type TradeDirection uint8

const (
	TradeDirectionAtoB TradeDirection = iota
	TradeDirectionBtoA
)

type AddLiquidityParameters struct {
	LiquidityDelta        U128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

type RemoveLiquidityParameters struct {
	LiquidityDelta        U128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

type SwapParameters struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

type InitializePoolParameters struct {
	Liquidity       U128
	SqrtPrice       U128
	ActivationPoint *uint64 `bin:"optional"`
}

// VestingParameters describe a linear unlock with an optional cliff.
type VestingParameters struct {
	CliffPoint           *uint64 `bin:"optional"`
	PeriodFrequency      uint64
	CliffUnlockLiquidity U128
	LiquidityPerPeriod   U128
	NumberOfPeriod       uint16
}

type BaseFeeParameters struct {
	CliffFeeNumerator uint64
	NumberOfPeriod    uint16
	PeriodFrequency   uint64
	ReductionFactor   uint64
	FeeSchedulerMode  FeeSchedulerMode
}

type DynamicFeeParameters struct {
	BinStep                  uint16
	BinStepU128              U128
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	MaxVolatilityAccumulator uint32
	VariableFeeControl       uint32
}

type PoolFeeParameters struct {
	BaseFee            BaseFeeParameters
	ProtocolFeePercent uint8
	PartnerFeePercent  uint8
	ReferralFeePercent uint8
	DynamicFee         *DynamicFeeParameters `bin:"optional"`
}

type StaticConfigParameters struct {
	PoolFees             PoolFeeParameters
	SqrtMinPrice         U128
	SqrtMaxPrice         U128
	VaultConfigKey       solana.PublicKey
	PoolCreatorAuthority solana.PublicKey
	ActivationType       ActivationType
	CollectFeeMode       CollectFeeMode
}

// SwapResult is the quote the program computed for a swap.
type SwapResult struct {
	OutputAmount  uint64
	NextSqrtPrice U128
	LpFee         uint64
	ProtocolFee   uint64
	PartnerFee    uint64
	ReferralFee   uint64
}
