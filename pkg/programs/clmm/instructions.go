package clmm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/invoke"
)

func build[K any](keys K, ix Instruction, remaining ...*solana.AccountMeta) (*solana.GenericInstruction, error) {
	return invoke.Build[K, Instruction](ProgramID, Instructions, accounts.WithDefaults(keys, defaults), ix, remaining...)
}

func writable(keys []solana.PublicKey) []*solana.AccountMeta {
	out := make([]*solana.AccountMeta, len(keys))
	for i, k := range keys {
		out[i] = solana.Meta(k).WRITE()
	}
	return out
}

// CreateAmmConfig creates a fee tier. Rates are in hundredths of a basis point.
type CreateAmmConfig struct {
	Index           uint16
	TickSpacing     uint16
	TradeFeeRate    uint32
	ProtocolFeeRate uint32
	FundFeeRate     uint32
}

var CreateAmmConfigDiscriminator = codec.Discriminator{137}

type CreateAmmConfigKeys struct {
	Owner         solana.PublicKey `account:"owner,signer,writable"`
	AmmConfig     solana.PublicKey `account:"amm_config,writable"`
	SystemProgram solana.PublicKey `account:"system_program"`
}

func NewCreateAmmConfigInstruction(keys CreateAmmConfigKeys, args CreateAmmConfig) (*solana.GenericInstruction, error) {
	if keys.AmmConfig.IsZero() {
		pk, _, err := DeriveAmmConfig(args.Index)
		if err != nil {
			return nil, err
		}
		keys.AmmConfig = pk
	}
	return build(keys, &args)
}

// UpdateAmmConfig sets one config field selected by Param.
type UpdateAmmConfig struct {
	Param AmmConfigParam
	Value uint32
}

var UpdateAmmConfigDiscriminator = codec.Discriminator{49}

type UpdateAmmConfigKeys struct {
	Owner     solana.PublicKey `account:"owner,signer"`
	AmmConfig solana.PublicKey `account:"amm_config,writable"`
}

// NewUpdateAmmConfigInstruction builds the update. Owner and fund-owner changes
// take the new owner as a remaining account.
func NewUpdateAmmConfigInstruction(keys UpdateAmmConfigKeys, param AmmConfigParam, value uint32, newOwner ...solana.PublicKey) (*solana.GenericInstruction, error) {
	remaining := make([]*solana.AccountMeta, len(newOwner))
	for i, k := range newOwner {
		remaining[i] = solana.Meta(k)
	}
	return build(keys, &UpdateAmmConfig{Param: param, Value: value}, remaining...)
}

// CreatePool initializes a pool at SqrtPriceX64 that opens for trading at
// OpenTime.
type CreatePool struct {
	SqrtPriceX64 U128
	OpenTime     uint64
}

var CreatePoolDiscriminator = codec.Discriminator{233}

type CreatePoolKeys struct {
	PoolCreator      solana.PublicKey `account:"pool_creator,signer,writable"`
	AmmConfig        solana.PublicKey `account:"amm_config"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	TokenMint0       solana.PublicKey `account:"token_mint_0"`
	TokenMint1       solana.PublicKey `account:"token_mint_1"`
	TokenVault0      solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1      solana.PublicKey `account:"token_vault_1,writable"`
	ObservationState solana.PublicKey `account:"observation_state,writable"`
	TickArrayBitmap  solana.PublicKey `account:"tick_array_bitmap,writable"`
	TokenProgram0    solana.PublicKey `account:"token_program_0"`
	TokenProgram1    solana.PublicKey `account:"token_program_1"`
	SystemProgram    solana.PublicKey `account:"system_program"`
	Rent             solana.PublicKey `account:"rent"`
}

// NewCreatePoolInstruction derives the pool, vault, observation and bitmap
// addresses left empty in keys.
func NewCreatePoolInstruction(keys CreatePoolKeys, sqrtPriceX64 U128, openTime uint64) (*solana.GenericInstruction, error) {
	var err error
	if keys.PoolState.IsZero() {
		if keys.PoolState, _, err = DerivePool(keys.AmmConfig, keys.TokenMint0, keys.TokenMint1); err != nil {
			return nil, err
		}
	}
	if keys.TokenVault0.IsZero() {
		if keys.TokenVault0, _, err = DerivePoolVault(keys.PoolState, keys.TokenMint0); err != nil {
			return nil, err
		}
	}
	if keys.TokenVault1.IsZero() {
		if keys.TokenVault1, _, err = DerivePoolVault(keys.PoolState, keys.TokenMint1); err != nil {
			return nil, err
		}
	}
	if keys.ObservationState.IsZero() {
		if keys.ObservationState, _, err = DeriveObservation(keys.PoolState); err != nil {
			return nil, err
		}
	}
	if keys.TickArrayBitmap.IsZero() {
		if keys.TickArrayBitmap, _, err = DeriveTickArrayBitmap(keys.PoolState); err != nil {
			return nil, err
		}
	}
	if keys.TokenProgram0.IsZero() {
		keys.TokenProgram0 = solana.TokenProgramID
	}
	if keys.TokenProgram1.IsZero() {
		keys.TokenProgram1 = solana.TokenProgramID
	}
	return build(keys, &CreatePool{SqrtPriceX64: sqrtPriceX64, OpenTime: openTime})
}

// UpdatePoolStatus sets the pool's operation bitmask.
type UpdatePoolStatus struct {
	Status uint8
}

var UpdatePoolStatusDiscriminator = codec.Discriminator{130}

type UpdatePoolStatusKeys struct {
	Authority solana.PublicKey `account:"authority,signer"`
	PoolState solana.PublicKey `account:"pool_state,writable"`
}

func NewUpdatePoolStatusInstruction(keys UpdatePoolStatusKeys, status uint8) (*solana.GenericInstruction, error) {
	return build(keys, &UpdatePoolStatus{Status: status})
}

type CreateOperationAccount struct{}

var CreateOperationAccountDiscriminator = codec.Discriminator{63}

type CreateOperationAccountKeys struct {
	Owner          solana.PublicKey `account:"owner,signer,writable"`
	OperationState solana.PublicKey `account:"operation_state,writable"`
	SystemProgram  solana.PublicKey `account:"system_program"`
}

func NewCreateOperationAccountInstruction(keys CreateOperationAccountKeys) (*solana.GenericInstruction, error) {
	if keys.OperationState.IsZero() {
		pk, _, err := DeriveOperation()
		if err != nil {
			return nil, err
		}
		keys.OperationState = pk
	}
	return build(keys, &CreateOperationAccount{})
}

// UpdateOperationAccount adds or removes operation owners or whitelisted reward
// mints, selected by Param.
type UpdateOperationAccount struct {
	Param OperationParam
	Keys  []solana.PublicKey
}

var UpdateOperationAccountDiscriminator = codec.Discriminator{127}

type UpdateOperationAccountKeys struct {
	Owner          solana.PublicKey `account:"owner,signer"`
	OperationState solana.PublicKey `account:"operation_state,writable"`
	SystemProgram  solana.PublicKey `account:"system_program"`
}

func NewUpdateOperationAccountInstruction(keys UpdateOperationAccountKeys, param OperationParam, list []solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &UpdateOperationAccount{Param: param, Keys: list})
}

type TransferRewardOwner struct {
	NewOwner solana.PublicKey
}

var TransferRewardOwnerDiscriminator = codec.Discriminator{7}

type TransferRewardOwnerKeys struct {
	Authority solana.PublicKey `account:"authority,signer"`
	PoolState solana.PublicKey `account:"pool_state,writable"`
}

func NewTransferRewardOwnerInstruction(keys TransferRewardOwnerKeys, newOwner solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &TransferRewardOwner{NewOwner: newOwner})
}

// InitializeReward opens a reward stream funded by the reward funder.
type InitializeReward struct {
	Param InitializeRewardParam
}

var InitializeRewardDiscriminator = codec.Discriminator{95}

type InitializeRewardKeys struct {
	RewardFunder       solana.PublicKey `account:"reward_funder,signer,writable"`
	FunderTokenAccount solana.PublicKey `account:"funder_token_account,writable"`
	AmmConfig          solana.PublicKey `account:"amm_config"`
	PoolState          solana.PublicKey `account:"pool_state,writable"`
	OperationState     solana.PublicKey `account:"operation_state"`
	RewardTokenMint    solana.PublicKey `account:"reward_token_mint"`
	RewardTokenVault   solana.PublicKey `account:"reward_token_vault,writable"`
	RewardTokenProgram solana.PublicKey `account:"reward_token_program"`
	SystemProgram      solana.PublicKey `account:"system_program"`
	Rent               solana.PublicKey `account:"rent"`
}

func NewInitializeRewardInstruction(keys InitializeRewardKeys, param InitializeRewardParam) (*solana.GenericInstruction, error) {
	if keys.RewardTokenVault.IsZero() {
		pk, _, err := DeriveRewardVault(keys.PoolState, keys.RewardTokenMint)
		if err != nil {
			return nil, err
		}
		keys.RewardTokenVault = pk
	}
	if keys.RewardTokenProgram.IsZero() {
		keys.RewardTokenProgram = solana.TokenProgramID
	}
	return build(keys, &InitializeReward{Param: param})
}

type CollectRemainingRewards struct {
	RewardIndex uint8
}

var CollectRemainingRewardsDiscriminator = codec.Discriminator{18}

type CollectRemainingRewardsKeys struct {
	RewardFunder       solana.PublicKey `account:"reward_funder,signer"`
	FunderTokenAccount solana.PublicKey `account:"funder_token_account,writable"`
	PoolState          solana.PublicKey `account:"pool_state,writable"`
	RewardTokenVault   solana.PublicKey `account:"reward_token_vault"`
	RewardVaultMint    solana.PublicKey `account:"reward_vault_mint"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	TokenProgram2022   solana.PublicKey `account:"token_program_2022"`
	MemoProgram        solana.PublicKey `account:"memo_program"`
}

func NewCollectRemainingRewardsInstruction(keys CollectRemainingRewardsKeys, rewardIndex uint8) (*solana.GenericInstruction, error) {
	return build(keys, &CollectRemainingRewards{RewardIndex: rewardIndex})
}

// UpdateRewardInfos accrues reward growth up to the current time.
type UpdateRewardInfos struct{}

var UpdateRewardInfosDiscriminator = codec.Discriminator{163}

type UpdateRewardInfosKeys struct {
	PoolState solana.PublicKey `account:"pool_state,writable"`
}

func NewUpdateRewardInfosInstruction(keys UpdateRewardInfosKeys) (*solana.GenericInstruction, error) {
	return build(keys, &UpdateRewardInfos{})
}

type SetRewardParams struct {
	RewardIndex           uint8
	EmissionsPerSecondX64 U128
	OpenTime              uint64
	EndTime               uint64
}

var SetRewardParamsDiscriminator = codec.Discriminator{112}

type SetRewardParamsKeys struct {
	Authority        solana.PublicKey `account:"authority,signer"`
	AmmConfig        solana.PublicKey `account:"amm_config"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	OperationState   solana.PublicKey `account:"operation_state"`
	TokenProgram     solana.PublicKey `account:"token_program"`
	TokenProgram2022 solana.PublicKey `account:"token_program_2022"`
}

// NewSetRewardParamsInstruction builds the update. When extending a running
// reward the funder's vault, token account and mint follow as remaining accounts.
func NewSetRewardParamsInstruction(keys SetRewardParamsKeys, args SetRewardParams, remaining ...*solana.AccountMeta) (*solana.GenericInstruction, error) {
	return build(keys, &args, remaining...)
}

// CollectProtocolFee withdraws accrued protocol fees. Amounts are upper bounds.
type CollectProtocolFee struct {
	Amount0Requested uint64
	Amount1Requested uint64
}

var CollectProtocolFeeDiscriminator = codec.Discriminator{136}

// CollectFeeKeys serves CollectProtocolFee and CollectFundFee.
type CollectFeeKeys struct {
	Owner                  solana.PublicKey `account:"owner,signer"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	AmmConfig              solana.PublicKey `account:"amm_config"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	Vault0Mint             solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint             solana.PublicKey `account:"vault_1_mint"`
	RecipientTokenAccount0 solana.PublicKey `account:"recipient_token_account_0,writable"`
	RecipientTokenAccount1 solana.PublicKey `account:"recipient_token_account_1,writable"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	TokenProgram2022       solana.PublicKey `account:"token_program_2022"`
}

func NewCollectProtocolFeeInstruction(keys CollectFeeKeys, amount0, amount1 uint64) (*solana.GenericInstruction, error) {
	return build(keys, &CollectProtocolFee{Amount0Requested: amount0, Amount1Requested: amount1})
}

type CollectFundFee struct {
	Amount0Requested uint64
	Amount1Requested uint64
}

var CollectFundFeeDiscriminator = codec.Discriminator{167}

func NewCollectFundFeeInstruction(keys CollectFeeKeys, amount0, amount1 uint64) (*solana.GenericInstruction, error) {
	return build(keys, &CollectFundFee{Amount0Requested: amount0, Amount1Requested: amount1})
}

// OpenPosition mints a Metaplex position NFT over a tick range. Superseded by
// OpenPositionV2 but still accepted by the program.
type OpenPosition struct {
	TickLowerIndex           int32
	TickUpperIndex           int32
	TickArrayLowerStartIndex int32
	TickArrayUpperStartIndex int32
	Liquidity                U128
	Amount0Max               uint64
	Amount1Max               uint64
}

var OpenPositionDiscriminator = codec.Discriminator{135}

type OpenPositionKeys struct {
	Payer                  solana.PublicKey `account:"payer,signer,writable"`
	PositionNftOwner       solana.PublicKey `account:"position_nft_owner"`
	PositionNftMint        solana.PublicKey `account:"position_nft_mint,signer,writable"`
	PositionNftAccount     solana.PublicKey `account:"position_nft_account,writable"`
	MetadataAccount        solana.PublicKey `account:"metadata_account,writable"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition       solana.PublicKey `account:"protocol_position,writable"`
	TickArrayLower         solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper         solana.PublicKey `account:"tick_array_upper,writable"`
	PersonalPosition       solana.PublicKey `account:"personal_position,writable"`
	TokenAccount0          solana.PublicKey `account:"token_account_0,writable"`
	TokenAccount1          solana.PublicKey `account:"token_account_1,writable"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	Rent                   solana.PublicKey `account:"rent"`
	SystemProgram          solana.PublicKey `account:"system_program"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	AssociatedTokenProgram solana.PublicKey `account:"associated_token_program"`
	MetadataProgram        solana.PublicKey `account:"metadata_program"`
}

func NewOpenPositionInstruction(keys OpenPositionKeys, args OpenPosition) (*solana.GenericInstruction, error) {
	return build(keys, &args)
}

// OpenPositionV2 supports Token-2022 pool mints. BaseFlag selects which amount
// bound fixes the liquidity when Liquidity is zero.
type OpenPositionV2 struct {
	TickLowerIndex           int32
	TickUpperIndex           int32
	TickArrayLowerStartIndex int32
	TickArrayUpperStartIndex int32
	Liquidity                U128
	Amount0Max               uint64
	Amount1Max               uint64
	WithMetadata             bool
	BaseFlag                 *bool `bin:"optional"`
}

var OpenPositionV2Discriminator = codec.Discriminator{77}

type OpenPositionV2Keys struct {
	Payer                  solana.PublicKey `account:"payer,signer,writable"`
	PositionNftOwner       solana.PublicKey `account:"position_nft_owner"`
	PositionNftMint        solana.PublicKey `account:"position_nft_mint,signer,writable"`
	PositionNftAccount     solana.PublicKey `account:"position_nft_account,writable"`
	MetadataAccount        solana.PublicKey `account:"metadata_account,writable"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition       solana.PublicKey `account:"protocol_position,writable"`
	TickArrayLower         solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper         solana.PublicKey `account:"tick_array_upper,writable"`
	PersonalPosition       solana.PublicKey `account:"personal_position,writable"`
	TokenAccount0          solana.PublicKey `account:"token_account_0,writable"`
	TokenAccount1          solana.PublicKey `account:"token_account_1,writable"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	Rent                   solana.PublicKey `account:"rent"`
	SystemProgram          solana.PublicKey `account:"system_program"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	AssociatedTokenProgram solana.PublicKey `account:"associated_token_program"`
	MetadataProgram        solana.PublicKey `account:"metadata_program"`
	TokenProgram2022       solana.PublicKey `account:"token_program_2022"`
	Vault0Mint             solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint             solana.PublicKey `account:"vault_1_mint"`
}

// NewOpenPositionV2Instruction derives the position and tick array addresses
// left empty in keys from the tick range in args.
func NewOpenPositionV2Instruction(keys OpenPositionV2Keys, args OpenPositionV2) (*solana.GenericInstruction, error) {
	var err error
	if keys.PersonalPosition.IsZero() {
		if keys.PersonalPosition, _, err = DerivePersonalPosition(keys.PositionNftMint); err != nil {
			return nil, err
		}
	}
	if keys.ProtocolPosition.IsZero() {
		if keys.ProtocolPosition, _, err = DeriveProtocolPosition(keys.PoolState, args.TickLowerIndex, args.TickUpperIndex); err != nil {
			return nil, err
		}
	}
	if keys.TickArrayLower.IsZero() {
		if keys.TickArrayLower, _, err = DeriveTickArray(keys.PoolState, args.TickArrayLowerStartIndex); err != nil {
			return nil, err
		}
	}
	if keys.TickArrayUpper.IsZero() {
		if keys.TickArrayUpper, _, err = DeriveTickArray(keys.PoolState, args.TickArrayUpperStartIndex); err != nil {
			return nil, err
		}
	}
	return build(keys, &args)
}

// OpenPositionWithToken22Nft is OpenPositionV2 with a Token-2022 position NFT
// carrying its metadata in-mint.
type OpenPositionWithToken22Nft struct {
	TickLowerIndex           int32
	TickUpperIndex           int32
	TickArrayLowerStartIndex int32
	TickArrayUpperStartIndex int32
	Liquidity                U128
	Amount0Max               uint64
	Amount1Max               uint64
	WithMetadata             bool
	BaseFlag                 *bool `bin:"optional"`
}

// OpenPositionWithToken22NftDiscriminator is 255: its sighash byte equals
// OpenPositionV2's.
var OpenPositionWithToken22NftDiscriminator = codec.Discriminator{255}

type OpenPositionWithToken22NftKeys struct {
	Payer                  solana.PublicKey `account:"payer,signer,writable"`
	PositionNftOwner       solana.PublicKey `account:"position_nft_owner"`
	PositionNftMint        solana.PublicKey `account:"position_nft_mint,signer,writable"`
	PositionNftAccount     solana.PublicKey `account:"position_nft_account,writable"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition       solana.PublicKey `account:"protocol_position,writable"`
	TickArrayLower         solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper         solana.PublicKey `account:"tick_array_upper,writable"`
	PersonalPosition       solana.PublicKey `account:"personal_position,writable"`
	TokenAccount0          solana.PublicKey `account:"token_account_0,writable"`
	TokenAccount1          solana.PublicKey `account:"token_account_1,writable"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	Rent                   solana.PublicKey `account:"rent"`
	SystemProgram          solana.PublicKey `account:"system_program"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	AssociatedTokenProgram solana.PublicKey `account:"associated_token_program"`
	TokenProgram2022       solana.PublicKey `account:"token_program_2022"`
	Vault0Mint             solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint             solana.PublicKey `account:"vault_1_mint"`
}

func NewOpenPositionWithToken22NftInstruction(keys OpenPositionWithToken22NftKeys, args OpenPositionWithToken22Nft) (*solana.GenericInstruction, error) {
	return build(keys, &args)
}

// ClosePosition burns an empty position's NFT.
type ClosePosition struct{}

var ClosePositionDiscriminator = codec.Discriminator{123}

type ClosePositionKeys struct {
	NftOwner           solana.PublicKey `account:"nft_owner,signer,writable"`
	PositionNftMint    solana.PublicKey `account:"position_nft_mint,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account,writable"`
	PersonalPosition   solana.PublicKey `account:"personal_position,writable"`
	SystemProgram      solana.PublicKey `account:"system_program"`
	TokenProgram       solana.PublicKey `account:"token_program"`
}

func NewClosePositionInstruction(keys ClosePositionKeys) (*solana.GenericInstruction, error) {
	return build(keys, &ClosePosition{})
}

type IncreaseLiquidity struct {
	Liquidity  U128
	Amount0Max uint64
	Amount1Max uint64
}

var IncreaseLiquidityDiscriminator = codec.Discriminator{46}

type IncreaseLiquidityKeys struct {
	NftOwner         solana.PublicKey `account:"nft_owner,signer"`
	NftAccount       solana.PublicKey `account:"nft_account"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition solana.PublicKey `account:"protocol_position,writable"`
	PersonalPosition solana.PublicKey `account:"personal_position,writable"`
	TickArrayLower   solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper   solana.PublicKey `account:"tick_array_upper,writable"`
	TokenAccount0    solana.PublicKey `account:"token_account_0,writable"`
	TokenAccount1    solana.PublicKey `account:"token_account_1,writable"`
	TokenVault0      solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1      solana.PublicKey `account:"token_vault_1,writable"`
	TokenProgram     solana.PublicKey `account:"token_program"`
}

func NewIncreaseLiquidityInstruction(keys IncreaseLiquidityKeys, liquidity U128, amount0Max, amount1Max uint64) (*solana.GenericInstruction, error) {
	return build(keys, &IncreaseLiquidity{Liquidity: liquidity, Amount0Max: amount0Max, Amount1Max: amount1Max})
}

type IncreaseLiquidityV2 struct {
	Liquidity  U128
	Amount0Max uint64
	Amount1Max uint64
	BaseFlag   *bool `bin:"optional"`
}

var IncreaseLiquidityV2Discriminator = codec.Discriminator{133}

type IncreaseLiquidityV2Keys struct {
	NftOwner         solana.PublicKey `account:"nft_owner,signer"`
	NftAccount       solana.PublicKey `account:"nft_account"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition solana.PublicKey `account:"protocol_position,writable"`
	PersonalPosition solana.PublicKey `account:"personal_position,writable"`
	TickArrayLower   solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper   solana.PublicKey `account:"tick_array_upper,writable"`
	TokenAccount0    solana.PublicKey `account:"token_account_0,writable"`
	TokenAccount1    solana.PublicKey `account:"token_account_1,writable"`
	TokenVault0      solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1      solana.PublicKey `account:"token_vault_1,writable"`
	TokenProgram     solana.PublicKey `account:"token_program"`
	TokenProgram2022 solana.PublicKey `account:"token_program_2022"`
	Vault0Mint       solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint       solana.PublicKey `account:"vault_1_mint"`
}

func NewIncreaseLiquidityV2Instruction(keys IncreaseLiquidityV2Keys, args IncreaseLiquidityV2) (*solana.GenericInstruction, error) {
	return build(keys, &args)
}

type DecreaseLiquidity struct {
	Liquidity  U128
	Amount0Min uint64
	Amount1Min uint64
}

var DecreaseLiquidityDiscriminator = codec.Discriminator{160}

type DecreaseLiquidityKeys struct {
	NftOwner               solana.PublicKey `account:"nft_owner,signer"`
	NftAccount             solana.PublicKey `account:"nft_account"`
	PersonalPosition       solana.PublicKey `account:"personal_position,writable"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition       solana.PublicKey `account:"protocol_position,writable"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	TickArrayLower         solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper         solana.PublicKey `account:"tick_array_upper,writable"`
	RecipientTokenAccount0 solana.PublicKey `account:"recipient_token_account_0,writable"`
	RecipientTokenAccount1 solana.PublicKey `account:"recipient_token_account_1,writable"`
	TokenProgram           solana.PublicKey `account:"token_program"`
}

// NewDecreaseLiquidityInstruction builds the withdrawal. Reward vaults and the
// owner's reward token accounts follow as remaining accounts.
func NewDecreaseLiquidityInstruction(keys DecreaseLiquidityKeys, liquidity U128, amount0Min, amount1Min uint64, rewardAccounts ...solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &DecreaseLiquidity{Liquidity: liquidity, Amount0Min: amount0Min, Amount1Min: amount1Min}, writable(rewardAccounts)...)
}

type DecreaseLiquidityV2 struct {
	Liquidity  U128
	Amount0Min uint64
	Amount1Min uint64
}

var DecreaseLiquidityV2Discriminator = codec.Discriminator{58}

type DecreaseLiquidityV2Keys struct {
	NftOwner               solana.PublicKey `account:"nft_owner,signer"`
	NftAccount             solana.PublicKey `account:"nft_account"`
	PersonalPosition       solana.PublicKey `account:"personal_position,writable"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	ProtocolPosition       solana.PublicKey `account:"protocol_position,writable"`
	TokenVault0            solana.PublicKey `account:"token_vault_0,writable"`
	TokenVault1            solana.PublicKey `account:"token_vault_1,writable"`
	TickArrayLower         solana.PublicKey `account:"tick_array_lower,writable"`
	TickArrayUpper         solana.PublicKey `account:"tick_array_upper,writable"`
	RecipientTokenAccount0 solana.PublicKey `account:"recipient_token_account_0,writable"`
	RecipientTokenAccount1 solana.PublicKey `account:"recipient_token_account_1,writable"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	TokenProgram2022       solana.PublicKey `account:"token_program_2022"`
	MemoProgram            solana.PublicKey `account:"memo_program"`
	Vault0Mint             solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint             solana.PublicKey `account:"vault_1_mint"`
}

func NewDecreaseLiquidityV2Instruction(keys DecreaseLiquidityV2Keys, liquidity U128, amount0Min, amount1Min uint64, rewardAccounts ...solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &DecreaseLiquidityV2{Liquidity: liquidity, Amount0Min: amount0Min, Amount1Min: amount1Min}, writable(rewardAccounts)...)
}

// Swap trades through one pool. With IsBaseInput, Amount is the exact input and
// OtherAmountThreshold the minimum output; otherwise Amount is the exact output
// and the threshold the maximum input.
type Swap struct {
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    U128
	IsBaseInput          bool
}

var SwapDiscriminator = codec.Discriminator{248}

type SwapKeys struct {
	Payer              solana.PublicKey `account:"payer,signer"`
	AmmConfig          solana.PublicKey `account:"amm_config"`
	PoolState          solana.PublicKey `account:"pool_state,writable"`
	InputTokenAccount  solana.PublicKey `account:"input_token_account,writable"`
	OutputTokenAccount solana.PublicKey `account:"output_token_account,writable"`
	InputVault         solana.PublicKey `account:"input_vault,writable"`
	OutputVault        solana.PublicKey `account:"output_vault,writable"`
	ObservationState   solana.PublicKey `account:"observation_state,writable"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	TickArray          solana.PublicKey `account:"tick_array,writable"`
}

// NewSwapInstruction builds a swap. Tick arrays past the first follow as
// remaining accounts.
func NewSwapInstruction(keys SwapKeys, args Swap, tickArrays ...solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &args, writable(tickArrays)...)
}

// SwapV2 is Swap with Token-2022 and memo support. Tick arrays follow as
// remaining accounts.
type SwapV2 struct {
	Amount               uint64
	OtherAmountThreshold uint64
	SqrtPriceLimitX64    U128
	IsBaseInput          bool
}

var SwapV2Discriminator = codec.Discriminator{43}

type SwapV2Keys struct {
	Payer              solana.PublicKey `account:"payer,signer"`
	AmmConfig          solana.PublicKey `account:"amm_config"`
	PoolState          solana.PublicKey `account:"pool_state,writable"`
	InputTokenAccount  solana.PublicKey `account:"input_token_account,writable"`
	OutputTokenAccount solana.PublicKey `account:"output_token_account,writable"`
	InputVault         solana.PublicKey `account:"input_vault,writable"`
	OutputVault        solana.PublicKey `account:"output_vault,writable"`
	ObservationState   solana.PublicKey `account:"observation_state,writable"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	TokenProgram2022   solana.PublicKey `account:"token_program_2022"`
	MemoProgram        solana.PublicKey `account:"memo_program"`
	InputVaultMint     solana.PublicKey `account:"input_vault_mint"`
	OutputVaultMint    solana.PublicKey `account:"output_vault_mint"`
}

func NewSwapV2Instruction(keys SwapV2Keys, args SwapV2, tickArrays ...solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &args, writable(tickArrays)...)
}

// SwapRouterBaseIn swaps an exact input along a multi-pool route. Each hop's
// accounts follow as remaining accounts.
type SwapRouterBaseIn struct {
	AmountIn         uint64
	AmountOutMinimum uint64
}

var SwapRouterBaseInDiscriminator = codec.Discriminator{69}

type SwapRouterBaseInKeys struct {
	Payer             solana.PublicKey `account:"payer,signer"`
	InputTokenAccount solana.PublicKey `account:"input_token_account,writable"`
	InputTokenMint    solana.PublicKey `account:"input_token_mint,writable"`
	TokenProgram      solana.PublicKey `account:"token_program"`
	TokenProgram2022  solana.PublicKey `account:"token_program_2022"`
	MemoProgram       solana.PublicKey `account:"memo_program"`
}

func NewSwapRouterBaseInInstruction(keys SwapRouterBaseInKeys, amountIn, amountOutMinimum uint64, hops ...*solana.AccountMeta) (*solana.GenericInstruction, error) {
	return build(keys, &SwapRouterBaseIn{AmountIn: amountIn, AmountOutMinimum: amountOutMinimum}, hops...)
}

func (*CreateAmmConfig) isInstruction()            {}
func (*UpdateAmmConfig) isInstruction()            {}
func (*CreatePool) isInstruction()                 {}
func (*UpdatePoolStatus) isInstruction()           {}
func (*CreateOperationAccount) isInstruction()     {}
func (*UpdateOperationAccount) isInstruction()     {}
func (*TransferRewardOwner) isInstruction()        {}
func (*InitializeReward) isInstruction()           {}
func (*CollectRemainingRewards) isInstruction()    {}
func (*UpdateRewardInfos) isInstruction()          {}
func (*SetRewardParams) isInstruction()            {}
func (*CollectProtocolFee) isInstruction()         {}
func (*CollectFundFee) isInstruction()             {}
func (*OpenPosition) isInstruction()               {}
func (*OpenPositionV2) isInstruction()             {}
func (*OpenPositionWithToken22Nft) isInstruction() {}
func (*ClosePosition) isInstruction()              {}
func (*IncreaseLiquidity) isInstruction()          {}
func (*IncreaseLiquidityV2) isInstruction()        {}
func (*DecreaseLiquidity) isInstruction()          {}
func (*DecreaseLiquidityV2) isInstruction()        {}
func (*Swap) isInstruction()                       {}
func (*SwapV2) isInstruction()                     {}
func (*SwapRouterBaseIn) isInstruction()           {}

func (*CreateAmmConfig) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CreateAmmConfigKeys]()
}
func (*UpdateAmmConfig) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdateAmmConfigKeys]()
}
func (*CreatePool) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[CreatePoolKeys]() }
func (*UpdatePoolStatus) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdatePoolStatusKeys]()
}
func (*CreateOperationAccount) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CreateOperationAccountKeys]()
}
func (*UpdateOperationAccount) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdateOperationAccountKeys]()
}
func (*TransferRewardOwner) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[TransferRewardOwnerKeys]()
}
func (*InitializeReward) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[InitializeRewardKeys]()
}
func (*CollectRemainingRewards) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CollectRemainingRewardsKeys]()
}
func (*UpdateRewardInfos) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdateRewardInfosKeys]()
}
func (*SetRewardParams) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[SetRewardParamsKeys]()
}
func (*CollectProtocolFee) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CollectFeeKeys]()
}
func (*CollectFundFee) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[CollectFeeKeys]() }
func (*OpenPosition) KeysSchema() *accounts.Schema   { return accounts.MustSchemaOf[OpenPositionKeys]() }
func (*OpenPositionV2) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[OpenPositionV2Keys]()
}
func (*OpenPositionWithToken22Nft) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[OpenPositionWithToken22NftKeys]()
}
func (*ClosePosition) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[ClosePositionKeys]()
}
func (*IncreaseLiquidity) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[IncreaseLiquidityKeys]()
}
func (*IncreaseLiquidityV2) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[IncreaseLiquidityV2Keys]()
}
func (*DecreaseLiquidity) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[DecreaseLiquidityKeys]()
}
func (*DecreaseLiquidityV2) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[DecreaseLiquidityV2Keys]()
}
func (*Swap) KeysSchema() *accounts.Schema   { return accounts.MustSchemaOf[SwapKeys]() }
func (*SwapV2) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[SwapV2Keys]() }
func (*SwapRouterBaseIn) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[SwapRouterBaseInKeys]()
}
