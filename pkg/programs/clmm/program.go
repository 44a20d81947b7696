// Package clmm binds the Raydium concentrated-liquidity program. Its instructions
// use one-byte discriminators: the first byte of the Anchor sighash, except
// OpenPositionWithToken22Nft which collides with OpenPositionV2 and is assigned 255.
package clmm

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
)

// Name is the label used in errors and by the decoder registry.
const Name = "clmm"

// ProgramID is the mainnet deployment.
var ProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")

// MetadataProgramID is the Metaplex token metadata program used for position NFTs.
var MetadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

// PDA seeds.
var (
	SeedAmmConfig       = []byte("amm_config")
	SeedPool            = []byte("pool")
	SeedPoolVault       = []byte("pool_vault")
	SeedPoolRewardVault = []byte("pool_reward_vault")
	SeedObservation     = []byte("observation")
	SeedTickArray       = []byte("tick_array")
	SeedTickArrayBitmap = []byte("pool_tick_array_bitmap_extension")
	SeedPosition        = []byte("position")
	SeedOperation       = []byte("operation")
)

var defaults = map[string]solana.PublicKey{
	"system_program":           solana.SystemProgramID,
	"rent":                     solana.SysVarRentPubkey,
	"token_program":            solana.TokenProgramID,
	"token_program_2022":       solana.Token2022ProgramID,
	"memo_program":             solana.MemoProgramID,
	"associated_token_program": solana.SPLAssociatedTokenAccountProgramID,
	"metadata_program":         MetadataProgramID,
}

// DeriveAmmConfig returns the fee tier config at index.
func DeriveAmmConfig(index uint16) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedAmmConfig, binary.BigEndian.AppendUint16(nil, index)}, ProgramID)
}

// DerivePool returns the pool of a config and an ordered mint pair.
func DerivePool(ammConfig, mint0, mint1 solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPool, ammConfig[:], mint0[:], mint1[:]}, ProgramID)
}

// DerivePoolVault returns the pool vault holding mint.
func DerivePoolVault(pool, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPoolVault, pool[:], mint[:]}, ProgramID)
}

// DeriveRewardVault returns the vault funding the reward paid in mint.
func DeriveRewardVault(pool, mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPoolRewardVault, pool[:], mint[:]}, ProgramID)
}

// DeriveObservation returns the price observation account of pool.
func DeriveObservation(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedObservation, pool[:]}, ProgramID)
}

// DeriveTickArrayBitmap returns the tick array bitmap extension of pool.
func DeriveTickArrayBitmap(pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedTickArrayBitmap, pool[:]}, ProgramID)
}

// DeriveTickArray returns the tick array starting at startIndex.
func DeriveTickArray(pool solana.PublicKey, startIndex int32) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedTickArray, pool[:], binary.BigEndian.AppendUint32(nil, uint32(startIndex))}, ProgramID)
}

// DerivePersonalPosition returns the position owned by an NFT mint.
func DerivePersonalPosition(nftMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPosition, nftMint[:]}, ProgramID)
}

// DeriveProtocolPosition returns the pool-level position of a tick range.
func DeriveProtocolPosition(pool solana.PublicKey, tickLower, tickUpper int32) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		SeedPosition, pool[:],
		binary.BigEndian.AppendUint32(nil, uint32(tickLower)),
		binary.BigEndian.AppendUint32(nil, uint32(tickUpper)),
	}, ProgramID)
}

// DeriveOperation returns the singleton operation account.
func DeriveOperation() (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedOperation}, ProgramID)
}

// Instruction is one of the payload types in instructions.go.
type Instruction interface {
	isInstruction()
	KeysSchema() *accounts.Schema
}

// Instructions is the one-byte instruction envelope.
var Instructions = codec.MustEnvelope(Name, codec.WidthByte,
	codec.Case[Instruction]{Name: "CreateAmmConfig", Discriminator: CreateAmmConfigDiscriminator, Prototype: (*CreateAmmConfig)(nil)},
	codec.Case[Instruction]{Name: "UpdateAmmConfig", Discriminator: UpdateAmmConfigDiscriminator, Prototype: (*UpdateAmmConfig)(nil)},
	codec.Case[Instruction]{Name: "CreatePool", Discriminator: CreatePoolDiscriminator, Prototype: (*CreatePool)(nil)},
	codec.Case[Instruction]{Name: "UpdatePoolStatus", Discriminator: UpdatePoolStatusDiscriminator, Prototype: (*UpdatePoolStatus)(nil)},
	codec.Case[Instruction]{Name: "CreateOperationAccount", Discriminator: CreateOperationAccountDiscriminator, Prototype: (*CreateOperationAccount)(nil)},
	codec.Case[Instruction]{Name: "UpdateOperationAccount", Discriminator: UpdateOperationAccountDiscriminator, Prototype: (*UpdateOperationAccount)(nil)},
	codec.Case[Instruction]{Name: "TransferRewardOwner", Discriminator: TransferRewardOwnerDiscriminator, Prototype: (*TransferRewardOwner)(nil)},
	codec.Case[Instruction]{Name: "InitializeReward", Discriminator: InitializeRewardDiscriminator, Prototype: (*InitializeReward)(nil)},
	codec.Case[Instruction]{Name: "CollectRemainingRewards", Discriminator: CollectRemainingRewardsDiscriminator, Prototype: (*CollectRemainingRewards)(nil)},
	codec.Case[Instruction]{Name: "UpdateRewardInfos", Discriminator: UpdateRewardInfosDiscriminator, Prototype: (*UpdateRewardInfos)(nil)},
	codec.Case[Instruction]{Name: "SetRewardParams", Discriminator: SetRewardParamsDiscriminator, Prototype: (*SetRewardParams)(nil)},
	codec.Case[Instruction]{Name: "CollectProtocolFee", Discriminator: CollectProtocolFeeDiscriminator, Prototype: (*CollectProtocolFee)(nil)},
	codec.Case[Instruction]{Name: "CollectFundFee", Discriminator: CollectFundFeeDiscriminator, Prototype: (*CollectFundFee)(nil)},
	codec.Case[Instruction]{Name: "OpenPosition", Discriminator: OpenPositionDiscriminator, Prototype: (*OpenPosition)(nil)},
	codec.Case[Instruction]{Name: "OpenPositionV2", Discriminator: OpenPositionV2Discriminator, Prototype: (*OpenPositionV2)(nil)},
	codec.Case[Instruction]{Name: "OpenPositionWithToken22Nft", Discriminator: OpenPositionWithToken22NftDiscriminator, Prototype: (*OpenPositionWithToken22Nft)(nil)},
	codec.Case[Instruction]{Name: "ClosePosition", Discriminator: ClosePositionDiscriminator, Prototype: (*ClosePosition)(nil)},
	codec.Case[Instruction]{Name: "IncreaseLiquidity", Discriminator: IncreaseLiquidityDiscriminator, Prototype: (*IncreaseLiquidity)(nil)},
	codec.Case[Instruction]{Name: "IncreaseLiquidityV2", Discriminator: IncreaseLiquidityV2Discriminator, Prototype: (*IncreaseLiquidityV2)(nil)},
	codec.Case[Instruction]{Name: "DecreaseLiquidity", Discriminator: DecreaseLiquidityDiscriminator, Prototype: (*DecreaseLiquidity)(nil)},
	codec.Case[Instruction]{Name: "DecreaseLiquidityV2", Discriminator: DecreaseLiquidityV2Discriminator, Prototype: (*DecreaseLiquidityV2)(nil)},
	codec.Case[Instruction]{Name: "Swap", Discriminator: SwapDiscriminator, Prototype: (*Swap)(nil)},
	codec.Case[Instruction]{Name: "SwapV2", Discriminator: SwapV2Discriminator, Prototype: (*SwapV2)(nil)},
	codec.Case[Instruction]{Name: "SwapRouterBaseIn", Discriminator: SwapRouterBaseInDiscriminator, Prototype: (*SwapRouterBaseIn)(nil)},
)

// EncodeInstruction returns the instruction data for ix.
func EncodeInstruction(ix Instruction) ([]byte, error) {
	return Instructions.Encode(ix)
}

// DecodeInstruction decodes instruction data, ignoring trailing bytes.
func DecodeInstruction(data []byte) (Instruction, error) {
	return Instructions.Decode(data)
}

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
func Discriminators() []codec.Entry {
	return Instructions.Cases()
}
