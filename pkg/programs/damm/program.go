// Package damm binds the instructions and events of the Meteora dynamic AMM v2
// (cp_amm) program. Instructions carry 8-byte Anchor discriminators.
package damm

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
)

// Name is the label used in errors and by the decoder registry.
const Name = "damm"

// ProgramID is the mainnet deployment.
var ProgramID = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")

// PDA seeds.
var (
	SeedEventAuthority     = []byte("__event_authority")
	SeedPoolAuthority      = []byte("pool_authority")
	SeedPool               = []byte("pool")
	SeedCustomizablePool   = []byte("cpool")
	SeedPosition           = []byte("position")
	SeedPositionNftAccount = []byte("position_nft_account")
	SeedTokenVault         = []byte("token_vault")
	SeedRewardVault        = []byte("reward_vault")
	SeedConfig             = []byte("config")
	SeedClaimFeeOperator   = []byte("cf_operator")
)

var (
	// EventAuthority signs the self-CPI used to emit events.
	EventAuthority = mustPDA(SeedEventAuthority)

	// PoolAuthority owns every pool vault.
	PoolAuthority = mustPDA(SeedPoolAuthority)
)

func mustPDA(seeds ...[]byte) solana.PublicKey {
	pk, _, err := solana.FindProgramAddress(seeds, ProgramID)
	if err != nil {
		panic(err)
	}
	return pk
}

// defaults fills roles whose address never varies.
var defaults = map[string]solana.PublicKey{
	"event_authority": EventAuthority,
	"program":         ProgramID,
	"pool_authority":  PoolAuthority,
	"system_program":  solana.SystemProgramID,

	"token_2022_program": solana.Token2022ProgramID,
}

// DerivePool returns the pool address for a config and mint pair. Mint order does
// not matter.
func DerivePool(config, mintA, mintB solana.PublicKey) (solana.PublicKey, uint8, error) {
	first, second := sortMints(mintA, mintB)
	return solana.FindProgramAddress([][]byte{SeedPool, config[:], first[:], second[:]}, ProgramID)
}

// DeriveCustomizablePool returns the address of a pool created without a config.
func DeriveCustomizablePool(mintA, mintB solana.PublicKey) (solana.PublicKey, uint8, error) {
	first, second := sortMints(mintA, mintB)
	return solana.FindProgramAddress([][]byte{SeedCustomizablePool, first[:], second[:]}, ProgramID)
}

// DerivePosition returns the position owned by a position NFT mint.
func DerivePosition(positionNftMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPosition, positionNftMint[:]}, ProgramID)
}

// DerivePositionNftAccount returns the token account holding a position NFT.
func DerivePositionNftAccount(positionNftMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedPositionNftAccount, positionNftMint[:]}, ProgramID)
}

// DeriveTokenVault returns the pool vault for mint.
func DeriveTokenVault(mint, pool solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedTokenVault, mint[:], pool[:]}, ProgramID)
}

// DeriveRewardVault returns the vault of reward slot index.
func DeriveRewardVault(pool solana.PublicKey, index uint8) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedRewardVault, pool[:], {index}}, ProgramID)
}

// DeriveConfig returns the static config at index.
func DeriveConfig(index uint64) (solana.PublicKey, uint8, error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], index)
	return solana.FindProgramAddress([][]byte{SeedConfig, buf[:]}, ProgramID)
}

// DeriveClaimFeeOperator returns the operator record of operator.
func DeriveClaimFeeOperator(operator solana.PublicKey) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{SeedClaimFeeOperator, operator[:]}, ProgramID)
}

func sortMints(a, b solana.PublicKey) (solana.PublicKey, solana.PublicKey) {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return a, b
			}
			return b, a
		}
	}
	return a, b
}

// Instruction is one of the payload types in instructions.go.
type Instruction interface {
	isInstruction()

	// KeysSchema returns the account roles of the instruction.
	KeysSchema() *accounts.Schema
}

// Instructions is the instruction envelope of the program.
var Instructions = codec.MustEnvelope(Name, codec.WidthAnchor,
	codec.Case[Instruction]{Name: "AddLiquidity", Discriminator: AddLiquidityDiscriminator, Prototype: (*AddLiquidity)(nil)},
	codec.Case[Instruction]{Name: "ClaimPartnerFee", Discriminator: ClaimPartnerFeeDiscriminator, Prototype: (*ClaimPartnerFee)(nil)},
	codec.Case[Instruction]{Name: "ClaimPositionFee", Discriminator: ClaimPositionFeeDiscriminator, Prototype: (*ClaimPositionFee)(nil)},
	codec.Case[Instruction]{Name: "ClaimProtocolFee", Discriminator: ClaimProtocolFeeDiscriminator, Prototype: (*ClaimProtocolFee)(nil)},
	codec.Case[Instruction]{Name: "ClaimReward", Discriminator: ClaimRewardDiscriminator, Prototype: (*ClaimReward)(nil)},
	codec.Case[Instruction]{Name: "CloseClaimFeeOperator", Discriminator: CloseClaimFeeOperatorDiscriminator, Prototype: (*CloseClaimFeeOperator)(nil)},
	codec.Case[Instruction]{Name: "CloseConfig", Discriminator: CloseConfigDiscriminator, Prototype: (*CloseConfig)(nil)},
	codec.Case[Instruction]{Name: "ClosePosition", Discriminator: ClosePositionDiscriminator, Prototype: (*ClosePosition)(nil)},
	codec.Case[Instruction]{Name: "CreateClaimFeeOperator", Discriminator: CreateClaimFeeOperatorDiscriminator, Prototype: (*CreateClaimFeeOperator)(nil)},
	codec.Case[Instruction]{Name: "CreateConfig", Discriminator: CreateConfigDiscriminator, Prototype: (*CreateConfig)(nil)},
	codec.Case[Instruction]{Name: "CreatePosition", Discriminator: CreatePositionDiscriminator, Prototype: (*CreatePosition)(nil)},
	codec.Case[Instruction]{Name: "FundReward", Discriminator: FundRewardDiscriminator, Prototype: (*FundReward)(nil)},
	codec.Case[Instruction]{Name: "InitializePool", Discriminator: InitializePoolDiscriminator, Prototype: (*InitializePool)(nil)},
	codec.Case[Instruction]{Name: "InitializeReward", Discriminator: InitializeRewardDiscriminator, Prototype: (*InitializeReward)(nil)},
	codec.Case[Instruction]{Name: "LockPosition", Discriminator: LockPositionDiscriminator, Prototype: (*LockPosition)(nil)},
	codec.Case[Instruction]{Name: "PermanentLockPosition", Discriminator: PermanentLockPositionDiscriminator, Prototype: (*PermanentLockPosition)(nil)},
	codec.Case[Instruction]{Name: "RefreshVesting", Discriminator: RefreshVestingDiscriminator, Prototype: (*RefreshVesting)(nil)},
	codec.Case[Instruction]{Name: "RemoveAllLiquidity", Discriminator: RemoveAllLiquidityDiscriminator, Prototype: (*RemoveAllLiquidity)(nil)},
	codec.Case[Instruction]{Name: "RemoveLiquidity", Discriminator: RemoveLiquidityDiscriminator, Prototype: (*RemoveLiquidity)(nil)},
	codec.Case[Instruction]{Name: "SetPoolStatus", Discriminator: SetPoolStatusDiscriminator, Prototype: (*SetPoolStatus)(nil)},
	codec.Case[Instruction]{Name: "Swap", Discriminator: SwapDiscriminator, Prototype: (*Swap)(nil)},
	codec.Case[Instruction]{Name: "UpdateRewardDuration", Discriminator: UpdateRewardDurationDiscriminator, Prototype: (*UpdateRewardDuration)(nil)},
	codec.Case[Instruction]{Name: "UpdateRewardFunder", Discriminator: UpdateRewardFunderDiscriminator, Prototype: (*UpdateRewardFunder)(nil)},
	codec.Case[Instruction]{Name: "WithdrawIneligibleReward", Discriminator: WithdrawIneligibleRewardDiscriminator, Prototype: (*WithdrawIneligibleReward)(nil)},
)

// EncodeInstruction returns the instruction data for ix.
func EncodeInstruction(ix Instruction) ([]byte, error) {
	return Instructions.Encode(ix)
}

// DecodeInstruction decodes instruction data. Trailing bytes are ignored.
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
