package clmm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/codec"
)

// Event is a pool, position or swap event the program writes to its logs.
type Event interface {
	isEvent()
}

// Events decodes emitted event payloads.
var Events = codec.MustEventDecoder(Name,
	codec.Case[Event]{Name: "ConfigChangeEvent", Discriminator: codec.Discriminator{247, 189, 7, 119, 106, 112, 95, 151}, Prototype: (*ConfigChangeEvent)(nil)},
	codec.Case[Event]{Name: "CreatePersonalPositionEvent", Discriminator: codec.Discriminator{100, 30, 87, 249, 196, 223, 154, 206}, Prototype: (*CreatePersonalPositionEvent)(nil)},
	codec.Case[Event]{Name: "IncreaseLiquidityEvent", Discriminator: codec.Discriminator{49, 79, 105, 212, 32, 34, 30, 84}, Prototype: (*IncreaseLiquidityEvent)(nil)},
	codec.Case[Event]{Name: "DecreaseLiquidityEvent", Discriminator: codec.Discriminator{58, 222, 86, 58, 68, 50, 85, 56}, Prototype: (*DecreaseLiquidityEvent)(nil)},
	codec.Case[Event]{Name: "LiquidityCalculateEvent", Discriminator: codec.Discriminator{237, 112, 148, 230, 57, 84, 180, 162}, Prototype: (*LiquidityCalculateEvent)(nil)},
	codec.Case[Event]{Name: "CollectPersonalFeeEvent", Discriminator: codec.Discriminator{166, 174, 105, 192, 81, 161, 83, 105}, Prototype: (*CollectPersonalFeeEvent)(nil)},
	codec.Case[Event]{Name: "UpdateRewardInfosEvent", Discriminator: codec.Discriminator{109, 127, 186, 78, 114, 65, 37, 236}, Prototype: (*UpdateRewardInfosEvent)(nil)},
	codec.Case[Event]{Name: "PoolCreatedEvent", Discriminator: codec.Discriminator{25, 94, 75, 47, 112, 99, 53, 63}, Prototype: (*PoolCreatedEvent)(nil)},
	codec.Case[Event]{Name: "CollectProtocolFeeEvent", Discriminator: codec.Discriminator{206, 87, 17, 79, 45, 41, 213, 61}, Prototype: (*CollectProtocolFeeEvent)(nil)},
	codec.Case[Event]{Name: "SwapEvent", Discriminator: codec.Discriminator{64, 198, 205, 232, 38, 8, 113, 226}, Prototype: (*SwapEvent)(nil)},
	codec.Case[Event]{Name: "LiquidityChangeEvent", Discriminator: codec.Discriminator{126, 240, 175, 206, 158, 88, 153, 107}, Prototype: (*LiquidityChangeEvent)(nil)},
)

// DecodeEvent decodes a "Program data:" payload.
func DecodeEvent(data []byte) (Event, error) {
	return Events.Decode(data)
}

// DecodeEventCPI decodes an event carried in self-CPI instruction data.
func DecodeEventCPI(data []byte) (Event, error) {
	return Events.DecodeCPI(data)
}

// EventName returns the name of ev's case.
func EventName(ev Event) string {
	name, _ := Events.Name(ev)
	return name
}

type ConfigChangeEvent struct {
	Index           uint16
	Owner           solana.PublicKey
	ProtocolFeeRate uint32
	TradeFeeRate    uint32
	TickSpacing     uint16
	FundFeeRate     uint32
	FundOwner       solana.PublicKey
}

type CreatePersonalPositionEvent struct {
	PoolState                 solana.PublicKey
	Minter                    solana.PublicKey
	NftOwner                  solana.PublicKey
	TickLowerIndex            int32
	TickUpperIndex            int32
	Liquidity                 U128
	DepositAmount0            uint64
	DepositAmount1            uint64
	DepositAmount0TransferFee uint64
	DepositAmount1TransferFee uint64
}

type IncreaseLiquidityEvent struct {
	PositionNftMint    solana.PublicKey
	Liquidity          U128
	Amount0            uint64
	Amount1            uint64
	Amount0TransferFee uint64
	Amount1TransferFee uint64
}

type DecreaseLiquidityEvent struct {
	PositionNftMint solana.PublicKey
	Liquidity       U128
	DecreaseAmount0 uint64
	DecreaseAmount1 uint64
	FeeAmount0      uint64
	FeeAmount1      uint64
	RewardAmounts   [RewardCount]uint64
	TransferFee0    uint64
	TransferFee1    uint64
}

// LiquidityCalculateEvent reports the amounts computed for a liquidity change
// before transfer fees.
type LiquidityCalculateEvent struct {
	PoolLiquidity    U128
	PoolSqrtPriceX64 U128
	PoolTick         int32
	CalcAmount0      uint64
	CalcAmount1      uint64
	TradeFeeOwed0    uint64
	TradeFeeOwed1    uint64
	TransferFee0     uint64
	TransferFee1     uint64
}

type CollectPersonalFeeEvent struct {
	PositionNftMint        solana.PublicKey
	RecipientTokenAccount0 solana.PublicKey
	RecipientTokenAccount1 solana.PublicKey
	Amount0                uint64
	Amount1                uint64
}

type UpdateRewardInfosEvent struct {
	RewardGrowthGlobalX64 [RewardCount]U128
}

type PoolCreatedEvent struct {
	TokenMint0   solana.PublicKey
	TokenMint1   solana.PublicKey
	TickSpacing  uint16
	PoolState    solana.PublicKey
	SqrtPriceX64 U128
	Tick         int32
	TokenVault0  solana.PublicKey
	TokenVault1  solana.PublicKey
}

type CollectProtocolFeeEvent struct {
	PoolState              solana.PublicKey
	RecipientTokenAccount0 solana.PublicKey
	RecipientTokenAccount1 solana.PublicKey
	Amount0                uint64
	Amount1                uint64
}

// SwapEvent is emitted once per pool crossed by a swap. ZeroForOne is true when
// token 0 was sold.
type SwapEvent struct {
	PoolState     solana.PublicKey
	Sender        solana.PublicKey
	TokenAccount0 solana.PublicKey
	TokenAccount1 solana.PublicKey
	Amount0       uint64
	TransferFee0  uint64
	Amount1       uint64
	TransferFee1  uint64
	ZeroForOne    bool
	SqrtPriceX64  U128
	Liquidity     U128
	Tick          int32
}

type LiquidityChangeEvent struct {
	PoolState       solana.PublicKey
	Tick            int32
	TickLower       int32
	TickUpper       int32
	LiquidityBefore U128
	LiquidityAfter  U128
}

func (*ConfigChangeEvent) isEvent()           {}
func (*CreatePersonalPositionEvent) isEvent() {}
func (*IncreaseLiquidityEvent) isEvent()      {}
func (*DecreaseLiquidityEvent) isEvent()      {}
func (*LiquidityCalculateEvent) isEvent()     {}
func (*CollectPersonalFeeEvent) isEvent()     {}
func (*UpdateRewardInfosEvent) isEvent()      {}
func (*PoolCreatedEvent) isEvent()            {}
func (*CollectProtocolFeeEvent) isEvent()     {}
func (*SwapEvent) isEvent()                   {}
func (*LiquidityChangeEvent) isEvent()        {}
