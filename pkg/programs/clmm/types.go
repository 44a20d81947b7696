package clmm

import "github.com/lugondev/go-ammix/pkg/codec"

type U128 = codec.U128

// AmmConfigParam selects the field UpdateAmmConfig changes.
type AmmConfigParam uint8

const (
	AmmConfigTradeFeeRate AmmConfigParam = iota
	AmmConfigProtocolFeeRate
	AmmConfigFundFeeRate
	AmmConfigNewOwner
	AmmConfigNewFundOwner
)

// OperationParam selects the list UpdateOperationAccount edits.
type OperationParam uint8

const (
	OperationAddOwners OperationParam = iota
	OperationRemoveOwners
	OperationAddWhitelistMints
	OperationRemoveWhitelistMints
)

// Pool status bits. A set bit disables the operation.
const (
	PoolStatusOpenPositionOrIncreaseLiquidity uint8 = 1 << iota
	PoolStatusDecreaseLiquidity
	PoolStatusCollectFee
	PoolStatusCollectReward
	PoolStatusSwap
)

type InitializeRewardParam struct {
	OpenTime              uint64
	EndTime               uint64
	EmissionsPerSecondX64 U128
}

// RewardCount is the number of reward slots per pool.
const RewardCount = 3
