package cpswap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/codec"
)

// Event is a swap or liquidity event the program writes to its logs.
type Event interface {
	isEvent()
}

// Events decodes emitted event payloads.
var Events = codec.MustEventDecoder(Name,
	codec.Case[Event]{Name: "LpChangeEvent", Discriminator: codec.Discriminator{121, 163, 205, 201, 57, 218, 117, 60}, Prototype: (*LpChangeEvent)(nil)},
	codec.Case[Event]{Name: "SwapEvent", Discriminator: codec.Discriminator{64, 198, 205, 232, 38, 8, 113, 226}, Prototype: (*SwapEvent)(nil)},
)

// DecodeEvent decodes a "Program data:" payload.
func DecodeEvent(data []byte) (Event, error) { return Events.Decode(data) }

// DecodeEventCPI decodes the data of a self-CPI event instruction.
func DecodeEventCPI(data []byte) (Event, error) { return Events.DecodeCPI(data) }

// EventName returns the name of ev's case.
func EventName(ev Event) string {
	name, _ := Events.Name(ev)
	return name
}

// LpChange kinds.
const (
	LpChangeDeposit uint8 = iota
	LpChangeWithdraw
)

// LpChangeEvent is emitted by Deposit and Withdraw. Vault balances are taken
// before the change.
type LpChangeEvent struct {
	PoolID            solana.PublicKey
	LpAmountBefore    uint64
	Token0VaultBefore uint64
	Token1VaultBefore uint64
	Token0Amount      uint64
	Token1Amount      uint64
	Token0TransferFee uint64
	Token1TransferFee uint64
	ChangeType        uint8
}

type SwapEvent struct {
	PoolID            solana.PublicKey
	InputVaultBefore  uint64
	OutputVaultBefore uint64
	InputAmount       uint64
	OutputAmount      uint64
	InputTransferFee  uint64
	OutputTransferFee uint64
	BaseInput         bool
}

func (*LpChangeEvent) isEvent() {}
func (*SwapEvent) isEvent()     {}
