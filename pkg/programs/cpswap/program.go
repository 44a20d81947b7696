// Package cpswap binds the Raydium constant-product swap program (CPMM).
package cpswap

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
)

// Name is the label used in errors and by the decoder registry.
const Name = "cpswap"

// ProgramID is the mainnet deployment.
var ProgramID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")

// CreatePoolFeeReceiver collects the pool creation fee on mainnet.
var CreatePoolFeeReceiver = solana.MustPublicKeyFromBase58("DNXgeM9EiiaAbaWvwjHj9fQQLAX5ZsfHyvmYUNRAdNC8")

// PDA seeds.
var (
	SeedAuthority   = []byte("vault_and_lp_mint_auth_seed")
	SeedAmmConfig   = []byte("amm_config")
	SeedPool        = []byte("pool")
	SeedPoolLpMint  = []byte("pool_lp_mint")
	SeedPoolVault   = []byte("pool_vault")
	SeedObservation = []byte("observation")
)

// Authority owns pool vaults and mints LP tokens.
var Authority = func() solana.PublicKey {
	pk, _, err := solana.FindProgramAddress([][]byte{SeedAuthority}, ProgramID)
	if err != nil {
		panic(err)
	}
	return pk
}()

// defaults fills roles whose address never varies.
var defaults = map[string]solana.PublicKey{
	"authority":                Authority,
	"system_program":           solana.SystemProgramID,
	"rent":                     solana.SysVarRentPubkey,
	"token_program":            solana.TokenProgramID,
	"token_program_2022":       solana.Token2022ProgramID,
	"memo_program":             solana.MemoProgramID,
	"associated_token_program": solana.SPLAssociatedTokenAccountProgramID,
	"create_pool_fee":          CreatePoolFeeReceiver,
}

// DeriveAmmConfig returns the fee tier config at index.
func DeriveAmmConfig(index uint16) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedAmmConfig, binary.BigEndian.AppendUint16(nil, index)}, ProgramID)
}

// DerivePool returns the pool of a config and an ordered mint pair.
func DerivePool(ammConfig, mint0, mint1 solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPool, ammConfig[:], mint0[:], mint1[:]}, ProgramID)
}

// DeriveLpMint returns the LP token mint of pool.
func DeriveLpMint(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPoolLpMint, pool[:]}, ProgramID)
}

// DeriveVault returns the pool vault holding mint.
func DeriveVault(pool, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPoolVault, pool[:], mint[:]}, ProgramID)
}

// DeriveObservation returns the price observation account of pool.
func DeriveObservation(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedObservation, pool[:]}, ProgramID)
}

// Instruction is one of the payload types in instructions.go.
type Instruction interface {
	isInstruction()
	KeysSchema() *accounts.Schema
}

// Instructions is the instruction envelope of the program.
var Instructions = codec.MustEnvelope(Name, codec.WidthAnchor,
	codec.Case[Instruction]{Name: "CreateAmmConfig", Discriminator: CreateAmmConfigDiscriminator, Prototype: (*CreateAmmConfig)(nil)},
	codec.Case[Instruction]{Name: "UpdateAmmConfig", Discriminator: UpdateAmmConfigDiscriminator, Prototype: (*UpdateAmmConfig)(nil)},
	codec.Case[Instruction]{Name: "UpdatePoolStatus", Discriminator: UpdatePoolStatusDiscriminator, Prototype: (*UpdatePoolStatus)(nil)},
	codec.Case[Instruction]{Name: "CollectProtocolFee", Discriminator: CollectProtocolFeeDiscriminator, Prototype: (*CollectProtocolFee)(nil)},
	codec.Case[Instruction]{Name: "CollectFundFee", Discriminator: CollectFundFeeDiscriminator, Prototype: (*CollectFundFee)(nil)},
	codec.Case[Instruction]{Name: "Initialize", Discriminator: InitializeDiscriminator, Prototype: (*Initialize)(nil)},
	codec.Case[Instruction]{Name: "Deposit", Discriminator: DepositDiscriminator, Prototype: (*Deposit)(nil)},
	codec.Case[Instruction]{Name: "Withdraw", Discriminator: WithdrawDiscriminator, Prototype: (*Withdraw)(nil)},
	codec.Case[Instruction]{Name: "SwapBaseInput", Discriminator: SwapBaseInputDiscriminator, Prototype: (*SwapBaseInput)(nil)},
	codec.Case[Instruction]{Name: "SwapBaseOutput", Discriminator: SwapBaseOutputDiscriminator, Prototype: (*SwapBaseOutput)(nil)},
)

// EncodeInstruction returns the instruction data for ix.
func EncodeInstruction(ix Instruction) ([]byte, error) { return Instructions.Encode(ix) }

// DecodeInstruction decodes instruction data. Trailing bytes are ignored.
func DecodeInstruction(data []byte) (Instruction, error) { return Instructions.Decode(data) }

// DecodeInstructionStrict decodes instruction data and rejects trailing bytes.
func DecodeInstructionStrict(data []byte) (Instruction, error) {
	return Instructions.DecodeStrict(data)
}

// InstructionName returns the name of ix's case.
func InstructionName(ix Instruction) string {
	name, _ := Instructions.Name(ix)
	return name
}

// Discriminators lists every instruction discriminator.
func Discriminators() []codec.Entry { return Instructions.Cases() }
