package damm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/codec"
)

// Event is one of the Evt* types emitted by the program through its event
// authority.
type Event interface {
	isEvent()
}

// Events decodes emitted event payloads.
var Events = codec.MustEventDecoder(Name,
	codec.Case[Event]{Name: "EvtAddLiquidity", Discriminator: codec.Discriminator{175, 242, 8, 157, 30, 247, 185, 169}, Prototype: (*EvtAddLiquidity)(nil)},
	codec.Case[Event]{Name: "EvtClaimPartnerFee", Discriminator: codec.Discriminator{118, 99, 77, 10, 226, 1, 1, 87}, Prototype: (*EvtClaimPartnerFee)(nil)},
	codec.Case[Event]{Name: "EvtClaimPositionFee", Discriminator: codec.Discriminator{198, 182, 183, 52, 97, 12, 49, 56}, Prototype: (*EvtClaimPositionFee)(nil)},
	codec.Case[Event]{Name: "EvtClaimProtocolFee", Discriminator: codec.Discriminator{186, 244, 75, 251, 188, 13, 25, 33}, Prototype: (*EvtClaimProtocolFee)(nil)},
	codec.Case[Event]{Name: "EvtClaimReward", Discriminator: codec.Discriminator{218, 86, 147, 200, 235, 188, 215, 231}, Prototype: (*EvtClaimReward)(nil)},
	codec.Case[Event]{Name: "EvtCloseClaimFeeOperator", Discriminator: codec.Discriminator{111, 39, 37, 55, 110, 216, 194, 23}, Prototype: (*EvtCloseClaimFeeOperator)(nil)},
	codec.Case[Event]{Name: "EvtCloseConfig", Discriminator: codec.Discriminator{36, 30, 239, 45, 58, 132, 14, 5}, Prototype: (*EvtCloseConfig)(nil)},
	codec.Case[Event]{Name: "EvtClosePosition", Discriminator: codec.Discriminator{20, 145, 144, 68, 143, 142, 214, 178}, Prototype: (*EvtClosePosition)(nil)},
	codec.Case[Event]{Name: "EvtCreateClaimFeeOperator", Discriminator: codec.Discriminator{21, 6, 153, 120, 68, 116, 28, 177}, Prototype: (*EvtCreateClaimFeeOperator)(nil)},
	codec.Case[Event]{Name: "EvtCreateConfig", Discriminator: codec.Discriminator{131, 207, 180, 174, 180, 73, 165, 54}, Prototype: (*EvtCreateConfig)(nil)},
	codec.Case[Event]{Name: "EvtCreatePosition", Discriminator: codec.Discriminator{156, 15, 119, 198, 29, 181, 221, 55}, Prototype: (*EvtCreatePosition)(nil)},
	codec.Case[Event]{Name: "EvtFundReward", Discriminator: codec.Discriminator{104, 233, 237, 122, 199, 191, 121, 85}, Prototype: (*EvtFundReward)(nil)},
	codec.Case[Event]{Name: "EvtInitializePool", Discriminator: codec.Discriminator{228, 50, 246, 85, 203, 66, 134, 37}, Prototype: (*EvtInitializePool)(nil)},
	codec.Case[Event]{Name: "EvtInitializeReward", Discriminator: codec.Discriminator{129, 91, 188, 3, 246, 52, 185, 249}, Prototype: (*EvtInitializeReward)(nil)},
	codec.Case[Event]{Name: "EvtLockPosition", Discriminator: codec.Discriminator{168, 63, 108, 83, 219, 82, 2, 200}, Prototype: (*EvtLockPosition)(nil)},
	codec.Case[Event]{Name: "EvtPermanentLockPosition", Discriminator: codec.Discriminator{145, 143, 162, 218, 218, 80, 67, 11}, Prototype: (*EvtPermanentLockPosition)(nil)},
	codec.Case[Event]{Name: "EvtRemoveLiquidity", Discriminator: codec.Discriminator{87, 46, 88, 98, 175, 96, 34, 91}, Prototype: (*EvtRemoveLiquidity)(nil)},
	codec.Case[Event]{Name: "EvtSetPoolStatus", Discriminator: codec.Discriminator{100, 213, 74, 3, 95, 91, 228, 146}, Prototype: (*EvtSetPoolStatus)(nil)},
	codec.Case[Event]{Name: "EvtSwap", Discriminator: codec.Discriminator{27, 60, 21, 213, 138, 170, 187, 147}, Prototype: (*EvtSwap)(nil)},
	codec.Case[Event]{Name: "EvtUpdateRewardDuration", Discriminator: codec.Discriminator{149, 135, 65, 231, 129, 153, 65, 57}, Prototype: (*EvtUpdateRewardDuration)(nil)},
	codec.Case[Event]{Name: "EvtUpdateRewardFunder", Discriminator: codec.Discriminator{76, 154, 208, 13, 40, 115, 246, 146}, Prototype: (*EvtUpdateRewardFunder)(nil)},
	codec.Case[Event]{Name: "EvtWithdrawIneligibleReward", Discriminator: codec.Discriminator{248, 215, 184, 78, 31, 180, 179, 168}, Prototype: (*EvtWithdrawIneligibleReward)(nil)},
)

// DecodeEvent decodes a "Program data:" payload.
func DecodeEvent(data []byte) (Event, error) {
	return Events.Decode(data)
}

// DecodeEventCPI decodes the data of a self-CPI event instruction.
func DecodeEventCPI(data []byte) (Event, error) {
	return Events.DecodeCPI(data)
}

// EventName returns the name of ev's case.
func EventName(ev Event) string {
	name, _ := Events.Name(ev)
	return name
}

type EvtAddLiquidity struct {
	Pool         solana.PublicKey
	Position     solana.PublicKey
	Owner        solana.PublicKey
	Params       AddLiquidityParameters
	TokenAAmount uint64
	TokenBAmount uint64
	TotalAmountA uint64
	TotalAmountB uint64
}

type EvtClaimPartnerFee struct {
	Pool         solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
}

type EvtClaimPositionFee struct {
	Pool        solana.PublicKey
	Position    solana.PublicKey
	Owner       solana.PublicKey
	FeeAClaimed uint64
	FeeBClaimed uint64
}

type EvtClaimProtocolFee struct {
	Pool         solana.PublicKey
	TokenAAmount uint64
	TokenBAmount uint64
}

type EvtClaimReward struct {
	Pool        solana.PublicKey
	Position    solana.PublicKey
	Owner       solana.PublicKey
	MintReward  solana.PublicKey
	RewardIndex uint8
	TotalReward uint64
}

type EvtCloseClaimFeeOperator struct {
	ClaimFeeOperator solana.PublicKey
	Operator         solana.PublicKey
}

type EvtCloseConfig struct {
	Config solana.PublicKey
	Admin  solana.PublicKey
}

type EvtClosePosition struct {
	Pool            solana.PublicKey
	Owner           solana.PublicKey
	Position        solana.PublicKey
	PositionNftMint solana.PublicKey
}

type EvtCreateClaimFeeOperator struct {
	Operator solana.PublicKey
}

type EvtCreateConfig struct {
	PoolFees             PoolFeeParameters
	VaultConfigKey       solana.PublicKey
	PoolCreatorAuthority solana.PublicKey
	ActivationType       ActivationType
	SqrtMinPrice         U128
	SqrtMaxPrice         U128
	CollectFeeMode       CollectFeeMode
	Index                uint64
	Config               solana.PublicKey
}

type EvtCreatePosition struct {
	Pool            solana.PublicKey
	Owner           solana.PublicKey
	Position        solana.PublicKey
	PositionNftMint solana.PublicKey
}

type EvtFundReward struct {
	Pool                        solana.PublicKey
	Funder                      solana.PublicKey
	MintReward                  solana.PublicKey
	RewardIndex                 uint8
	Amount                      uint64
	TransferFeeExcludedAmountIn uint64
}

type EvtInitializePool struct {
	Pool            solana.PublicKey
	TokenAMint      solana.PublicKey
	TokenBMint      solana.PublicKey
	Creator         solana.PublicKey
	Payer           solana.PublicKey
	AlphaVault      solana.PublicKey
	PoolFees        PoolFeeParameters
	SqrtMinPrice    U128
	SqrtMaxPrice    U128
	ActivationType  ActivationType
	CollectFeeMode  CollectFeeMode
	Liquidity       U128
	SqrtPrice       U128
	ActivationPoint uint64
	TokenAFlag      uint8
	TokenBFlag      uint8
	TokenAAmount    uint64
	TokenBAmount    uint64
	TotalAmountA    uint64
	TotalAmountB    uint64
	PoolType        uint8
}

type EvtInitializeReward struct {
	Pool           solana.PublicKey
	RewardMint     solana.PublicKey
	Funder         solana.PublicKey
	RewardIndex    uint8
	RewardDuration uint64
}

type EvtLockPosition struct {
	Pool                 solana.PublicKey
	Position             solana.PublicKey
	Owner                solana.PublicKey
	Vesting              solana.PublicKey
	CliffPoint           uint64
	PeriodFrequency      uint64
	CliffUnlockLiquidity U128
	LiquidityPerPeriod   U128
	NumberOfPeriod       uint16
}

type EvtPermanentLockPosition struct {
	Pool                          solana.PublicKey
	Position                      solana.PublicKey
	LockLiquidityAmount           U128
	TotalPermanentLockedLiquidity U128
}

type EvtRemoveLiquidity struct {
	Pool         solana.PublicKey
	Position     solana.PublicKey
	Owner        solana.PublicKey
	Params       RemoveLiquidityParameters
	TokenAAmount uint64
	TokenBAmount uint64
}

type EvtSetPoolStatus struct {
	Pool   solana.PublicKey
	Status PoolStatus
}

type EvtSwap struct {
	Pool             solana.PublicKey
	TradeDirection   TradeDirection
	HasReferral      bool
	Params           SwapParameters
	SwapResult       SwapResult
	ActualAmountIn   uint64
	CurrentTimestamp uint64
}

type EvtUpdateRewardDuration struct {
	Pool              solana.PublicKey
	RewardIndex       uint8
	OldRewardDuration uint64
	NewRewardDuration uint64
}

type EvtUpdateRewardFunder struct {
	Pool        solana.PublicKey
	RewardIndex uint8
	OldFunder   solana.PublicKey
	NewFunder   solana.PublicKey
}

type EvtWithdrawIneligibleReward struct {
	Pool       solana.PublicKey
	RewardMint solana.PublicKey
	Amount     uint64
}

func (*EvtAddLiquidity) isEvent()             {}
func (*EvtClaimPartnerFee) isEvent()          {}
func (*EvtClaimPositionFee) isEvent()         {}
func (*EvtClaimProtocolFee) isEvent()         {}
func (*EvtClaimReward) isEvent()              {}
func (*EvtCloseClaimFeeOperator) isEvent()    {}
func (*EvtCloseConfig) isEvent()              {}
func (*EvtClosePosition) isEvent()            {}
func (*EvtCreateClaimFeeOperator) isEvent()   {}
func (*EvtCreateConfig) isEvent()             {}
func (*EvtCreatePosition) isEvent()           {}
func (*EvtFundReward) isEvent()               {}
func (*EvtInitializePool) isEvent()           {}
func (*EvtInitializeReward) isEvent()         {}
func (*EvtLockPosition) isEvent()             {}
func (*EvtPermanentLockPosition) isEvent()    {}
func (*EvtRemoveLiquidity) isEvent()          {}
func (*EvtSetPoolStatus) isEvent()            {}
func (*EvtSwap) isEvent()                     {}
func (*EvtUpdateRewardDuration) isEvent()     {}
func (*EvtUpdateRewardFunder) isEvent()       {}
func (*EvtWithdrawIneligibleReward) isEvent() {}
