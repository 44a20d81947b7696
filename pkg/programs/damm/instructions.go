package damm

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/invoke"
)

// build fills fixed roles and encodes ix against the program.
func build[K any](keys K, ix Instruction, remaining ...*solana.AccountMeta) (*solana.GenericInstruction, error) {
	return invoke.Build[K, Instruction](ProgramID, Instructions, accounts.WithDefaults(keys, defaults), ix, remaining...)
}

// AddLiquidity deposits liquidity into a position.
type AddLiquidity struct {
	Params AddLiquidityParameters
}

var AddLiquidityDiscriminator = codec.Discriminator{181, 157, 89, 67, 143, 182, 52, 72}

type AddLiquidityKeys struct {
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	TokenAAccount      solana.PublicKey `account:"token_a_account,writable"`
	TokenBAccount      solana.PublicKey `account:"token_b_account,writable"`
	TokenAVault        solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault        solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint         solana.PublicKey `account:"token_a_mint"`
	TokenBMint         solana.PublicKey `account:"token_b_mint"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	TokenAProgram      solana.PublicKey `account:"token_a_program"`
	TokenBProgram      solana.PublicKey `account:"token_b_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewAddLiquidityInstruction(keys AddLiquidityKeys, params AddLiquidityParameters) (*solana.GenericInstruction, error) {
	return build(keys, &AddLiquidity{Params: params})
}

// ClaimPartnerFee withdraws the partner's share of accrued fees.
type ClaimPartnerFee struct {
	MaxAmountA uint64
	MaxAmountB uint64
}

var ClaimPartnerFeeDiscriminator = codec.Discriminator{97, 206, 39, 105, 94, 94, 126, 148}

type ClaimPartnerFeeKeys struct {
	PoolAuthority  solana.PublicKey `account:"pool_authority"`
	Pool           solana.PublicKey `account:"pool,writable"`
	TokenAAccount  solana.PublicKey `account:"token_a_account,writable"`
	TokenBAccount  solana.PublicKey `account:"token_b_account,writable"`
	TokenAVault    solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault    solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint     solana.PublicKey `account:"token_a_mint"`
	TokenBMint     solana.PublicKey `account:"token_b_mint"`
	Partner        solana.PublicKey `account:"partner,signer"`
	TokenAProgram  solana.PublicKey `account:"token_a_program"`
	TokenBProgram  solana.PublicKey `account:"token_b_program"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewClaimPartnerFeeInstruction(keys ClaimPartnerFeeKeys, maxAmountA, maxAmountB uint64) (*solana.GenericInstruction, error) {
	return build(keys, &ClaimPartnerFee{MaxAmountA: maxAmountA, MaxAmountB: maxAmountB})
}

// ClaimPositionFee pays a position's accrued swap fees to its owner.
type ClaimPositionFee struct{}

var ClaimPositionFeeDiscriminator = codec.Discriminator{180, 38, 154, 17, 133, 33, 162, 211}

type ClaimPositionFeeKeys struct {
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Pool               solana.PublicKey `account:"pool"`
	Position           solana.PublicKey `account:"position,writable"`
	TokenAAccount      solana.PublicKey `account:"token_a_account,writable"`
	TokenBAccount      solana.PublicKey `account:"token_b_account,writable"`
	TokenAVault        solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault        solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint         solana.PublicKey `account:"token_a_mint"`
	TokenBMint         solana.PublicKey `account:"token_b_mint"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	TokenAProgram      solana.PublicKey `account:"token_a_program"`
	TokenBProgram      solana.PublicKey `account:"token_b_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewClaimPositionFeeInstruction(keys ClaimPositionFeeKeys) (*solana.GenericInstruction, error) {
	return build(keys, &ClaimPositionFee{})
}

// ClaimProtocolFee withdraws protocol fees to the operator's accounts.
type ClaimProtocolFee struct {
	MaxAmountA uint64
	MaxAmountB uint64
}

var ClaimProtocolFeeDiscriminator = codec.Discriminator{165, 228, 133, 48, 99, 249, 255, 33}

type ClaimProtocolFeeKeys struct {
	PoolAuthority    solana.PublicKey `account:"pool_authority"`
	Pool             solana.PublicKey `account:"pool,writable"`
	TokenAVault      solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault      solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint       solana.PublicKey `account:"token_a_mint"`
	TokenBMint       solana.PublicKey `account:"token_b_mint"`
	TokenAAccount    solana.PublicKey `account:"token_a_account,writable"`
	TokenBAccount    solana.PublicKey `account:"token_b_account,writable"`
	ClaimFeeOperator solana.PublicKey `account:"claim_fee_operator"`
	Operator         solana.PublicKey `account:"operator,signer"`
	TokenAProgram    solana.PublicKey `account:"token_a_program"`
	TokenBProgram    solana.PublicKey `account:"token_b_program"`
	EventAuthority   solana.PublicKey `account:"event_authority"`
	Program          solana.PublicKey `account:"program"`
}

func NewClaimProtocolFeeInstruction(keys ClaimProtocolFeeKeys, maxAmountA, maxAmountB uint64) (*solana.GenericInstruction, error) {
	return build(keys, &ClaimProtocolFee{MaxAmountA: maxAmountA, MaxAmountB: maxAmountB})
}

// ClaimReward pays out a position's farming reward at RewardIndex. A non-zero
// SkipReward lets the owner forfeit a reward whose vault is frozen.
type ClaimReward struct {
	RewardIndex uint8
	SkipReward  uint8
}

var ClaimRewardDiscriminator = codec.Discriminator{149, 95, 181, 242, 94, 90, 158, 162}

type ClaimRewardKeys struct {
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	RewardVault        solana.PublicKey `account:"reward_vault,writable"`
	RewardMint         solana.PublicKey `account:"reward_mint"`
	UserTokenAccount   solana.PublicKey `account:"user_token_account,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewClaimRewardInstruction(keys ClaimRewardKeys, rewardIndex uint8, skipReward bool) (*solana.GenericInstruction, error) {
	ix := &ClaimReward{RewardIndex: rewardIndex}
	if skipReward {
		ix.SkipReward = 1
	}
	return build(keys, ix)
}

type CloseClaimFeeOperator struct{}

var CloseClaimFeeOperatorDiscriminator = codec.Discriminator{38, 134, 82, 216, 95, 124, 17, 99}

type CloseClaimFeeOperatorKeys struct {
	ClaimFeeOperator solana.PublicKey `account:"claim_fee_operator,writable"`
	RentReceiver     solana.PublicKey `account:"rent_receiver,writable"`
	Admin            solana.PublicKey `account:"admin,signer"`
	EventAuthority   solana.PublicKey `account:"event_authority"`
	Program          solana.PublicKey `account:"program"`
}

func NewCloseClaimFeeOperatorInstruction(keys CloseClaimFeeOperatorKeys) (*solana.GenericInstruction, error) {
	return build(keys, &CloseClaimFeeOperator{})
}

type CloseConfig struct{}

var CloseConfigDiscriminator = codec.Discriminator{145, 9, 72, 157, 95, 125, 61, 85}

type CloseConfigKeys struct {
	Config         solana.PublicKey `account:"config,writable"`
	Admin          solana.PublicKey `account:"admin,signer,writable"`
	RentReceiver   solana.PublicKey `account:"rent_receiver,writable"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewCloseConfigInstruction(keys CloseConfigKeys) (*solana.GenericInstruction, error) {
	return build(keys, &CloseConfig{})
}

// ClosePosition burns the position NFT of an empty position and reclaims rent.
type ClosePosition struct{}

var ClosePositionDiscriminator = codec.Discriminator{123, 134, 81, 0, 49, 68, 98, 98}

type ClosePositionKeys struct {
	PositionNftMint    solana.PublicKey `account:"position_nft_mint,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account,writable"`
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	RentReceiver       solana.PublicKey `account:"rent_receiver,writable"`
	Owner              solana.PublicKey `account:"owner,signer"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewClosePositionInstruction(keys ClosePositionKeys) (*solana.GenericInstruction, error) {
	if keys.TokenProgram.IsZero() {
		keys.TokenProgram = solana.Token2022ProgramID
	}
	return build(keys, &ClosePosition{})
}

type CreateClaimFeeOperator struct{}

var CreateClaimFeeOperatorDiscriminator = codec.Discriminator{169, 62, 207, 107, 58, 187, 162, 109}

type CreateClaimFeeOperatorKeys struct {
	ClaimFeeOperator solana.PublicKey `account:"claim_fee_operator,writable"`
	Operator         solana.PublicKey `account:"operator"`
	Admin            solana.PublicKey `account:"admin,signer,writable"`
	SystemProgram    solana.PublicKey `account:"system_program"`
	EventAuthority   solana.PublicKey `account:"event_authority"`
	Program          solana.PublicKey `account:"program"`
}

func NewCreateClaimFeeOperatorInstruction(keys CreateClaimFeeOperatorKeys) (*solana.GenericInstruction, error) {
	return build(keys, &CreateClaimFeeOperator{})
}

// CreateConfig registers a static pool config at Index.
type CreateConfig struct {
	Index            uint64
	ConfigParameters StaticConfigParameters
}

var CreateConfigDiscriminator = codec.Discriminator{201, 207, 243, 114, 75, 111, 47, 189}

type CreateConfigKeys struct {
	Config         solana.PublicKey `account:"config,writable"`
	Admin          solana.PublicKey `account:"admin,signer,writable"`
	SystemProgram  solana.PublicKey `account:"system_program"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewCreateConfigInstruction(keys CreateConfigKeys, index uint64, params StaticConfigParameters) (*solana.GenericInstruction, error) {
	return build(keys, &CreateConfig{Index: index, ConfigParameters: params})
}

// CreatePosition mints a position NFT and opens an empty position in a pool.
type CreatePosition struct{}

var CreatePositionDiscriminator = codec.Discriminator{48, 215, 197, 153, 96, 203, 180, 133}

type CreatePositionKeys struct {
	Owner              solana.PublicKey `account:"owner"`
	PositionNftMint    solana.PublicKey `account:"position_nft_mint,signer,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account,writable"`
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Payer              solana.PublicKey `account:"payer,signer,writable"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	SystemProgram      solana.PublicKey `account:"system_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

// NewCreatePositionInstruction derives the position and NFT account from the
// position NFT mint when they are left empty.
func NewCreatePositionInstruction(keys CreatePositionKeys) (*solana.GenericInstruction, error) {
	if keys.Position.IsZero() {
		pk, _, err := DerivePosition(keys.PositionNftMint)
		if err != nil {
			return nil, err
		}
		keys.Position = pk
	}
	if keys.PositionNftAccount.IsZero() {
		pk, _, err := DerivePositionNftAccount(keys.PositionNftMint)
		if err != nil {
			return nil, err
		}
		keys.PositionNftAccount = pk
	}
	if keys.TokenProgram.IsZero() {
		keys.TokenProgram = solana.Token2022ProgramID
	}
	return build(keys, &CreatePosition{})
}

// FundReward tops up the reward vault at RewardIndex.
type FundReward struct {
	RewardIndex  uint8
	Amount       uint64
	CarryForward bool
}

var FundRewardDiscriminator = codec.Discriminator{188, 50, 249, 165, 93, 151, 38, 63}

type FundRewardKeys struct {
	Pool               solana.PublicKey `account:"pool,writable"`
	RewardVault        solana.PublicKey `account:"reward_vault,writable"`
	RewardMint         solana.PublicKey `account:"reward_mint"`
	FunderTokenAccount solana.PublicKey `account:"funder_token_account,writable"`
	Funder             solana.PublicKey `account:"funder,signer"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewFundRewardInstruction(keys FundRewardKeys, rewardIndex uint8, amount uint64, carryForward bool) (*solana.GenericInstruction, error) {
	return build(keys, &FundReward{RewardIndex: rewardIndex, Amount: amount, CarryForward: carryForward})
}

// InitializePool creates a pool from a static config together with its first
// position.
type InitializePool struct {
	Params InitializePoolParameters
}

var InitializePoolDiscriminator = codec.Discriminator{95, 180, 10, 172, 84, 174, 232, 40}

type InitializePoolKeys struct {
	Creator            solana.PublicKey `account:"creator"`
	PositionNftMint    solana.PublicKey `account:"position_nft_mint,signer,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account,writable"`
	Payer              solana.PublicKey `account:"payer,signer,writable"`
	Config             solana.PublicKey `account:"config"`
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	TokenAMint         solana.PublicKey `account:"token_a_mint"`
	TokenBMint         solana.PublicKey `account:"token_b_mint"`
	TokenAVault        solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault        solana.PublicKey `account:"token_b_vault,writable"`
	PayerTokenA        solana.PublicKey `account:"payer_token_a,writable"`
	PayerTokenB        solana.PublicKey `account:"payer_token_b,writable"`
	TokenAProgram      solana.PublicKey `account:"token_a_program"`
	TokenBProgram      solana.PublicKey `account:"token_b_program"`
	Token2022Program   solana.PublicKey `account:"token_2022_program"`
	SystemProgram      solana.PublicKey `account:"system_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

// NewInitializePoolInstruction derives the pool, position and vault addresses
// left empty in keys.
func NewInitializePoolInstruction(keys InitializePoolKeys, params InitializePoolParameters) (*solana.GenericInstruction, error) {
	var err error
	if keys.Pool.IsZero() {
		if keys.Pool, _, err = DerivePool(keys.Config, keys.TokenAMint, keys.TokenBMint); err != nil {
			return nil, err
		}
	}
	if keys.Position.IsZero() {
		if keys.Position, _, err = DerivePosition(keys.PositionNftMint); err != nil {
			return nil, err
		}
	}
	if keys.PositionNftAccount.IsZero() {
		if keys.PositionNftAccount, _, err = DerivePositionNftAccount(keys.PositionNftMint); err != nil {
			return nil, err
		}
	}
	if keys.TokenAVault.IsZero() {
		if keys.TokenAVault, _, err = DeriveTokenVault(keys.TokenAMint, keys.Pool); err != nil {
			return nil, err
		}
	}
	if keys.TokenBVault.IsZero() {
		if keys.TokenBVault, _, err = DeriveTokenVault(keys.TokenBMint, keys.Pool); err != nil {
			return nil, err
		}
	}
	return build(keys, &InitializePool{Params: params})
}

// InitializeReward opens reward slot RewardIndex with the given funder.
type InitializeReward struct {
	RewardIndex    uint8
	RewardDuration uint64
	Funder         solana.PublicKey
}

var InitializeRewardDiscriminator = codec.Discriminator{95, 135, 192, 196, 242, 129, 230, 68}

type InitializeRewardKeys struct {
	PoolAuthority  solana.PublicKey `account:"pool_authority"`
	Pool           solana.PublicKey `account:"pool,writable"`
	RewardVault    solana.PublicKey `account:"reward_vault,writable"`
	RewardMint     solana.PublicKey `account:"reward_mint"`
	Signer         solana.PublicKey `account:"signer,signer"`
	Payer          solana.PublicKey `account:"payer,signer,writable"`
	TokenProgram   solana.PublicKey `account:"token_program"`
	SystemProgram  solana.PublicKey `account:"system_program"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewInitializeRewardInstruction(keys InitializeRewardKeys, rewardIndex uint8, rewardDuration uint64, funder solana.PublicKey) (*solana.GenericInstruction, error) {
	if keys.RewardVault.IsZero() {
		pk, _, err := DeriveRewardVault(keys.Pool, rewardIndex)
		if err != nil {
			return nil, err
		}
		keys.RewardVault = pk
	}
	return build(keys, &InitializeReward{RewardIndex: rewardIndex, RewardDuration: rewardDuration, Funder: funder})
}

// LockPosition moves part of a position's liquidity into a vesting account.
type LockPosition struct {
	Params VestingParameters
}

var LockPositionDiscriminator = codec.Discriminator{227, 62, 2, 252, 247, 10, 171, 185}

type LockPositionKeys struct {
	Pool               solana.PublicKey `account:"pool"`
	Position           solana.PublicKey `account:"position,writable"`
	Vesting            solana.PublicKey `account:"vesting,signer,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	Payer              solana.PublicKey `account:"payer,signer,writable"`
	SystemProgram      solana.PublicKey `account:"system_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewLockPositionInstruction(keys LockPositionKeys, params VestingParameters) (*solana.GenericInstruction, error) {
	return build(keys, &LockPosition{Params: params})
}

type PermanentLockPosition struct {
	PermanentLockLiquidity U128
}

var PermanentLockPositionDiscriminator = codec.Discriminator{165, 176, 125, 6, 231, 171, 186, 213}

type PermanentLockPositionKeys struct {
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewPermanentLockPositionInstruction(keys PermanentLockPositionKeys, liquidity U128) (*solana.GenericInstruction, error) {
	return build(keys, &PermanentLockPosition{PermanentLockLiquidity: liquidity})
}

// RefreshVesting releases unlocked vesting liquidity back to the position. Vesting
// accounts follow as remaining accounts.
type RefreshVesting struct{}

var RefreshVestingDiscriminator = codec.Discriminator{9, 94, 216, 14, 116, 204, 247, 0}

type RefreshVestingKeys struct {
	Pool               solana.PublicKey `account:"pool"`
	Position           solana.PublicKey `account:"position,writable"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner"`
}

func NewRefreshVestingInstruction(keys RefreshVestingKeys, vestings ...solana.PublicKey) (*solana.GenericInstruction, error) {
	remaining := make([]*solana.AccountMeta, len(vestings))
	for i, v := range vestings {
		remaining[i] = solana.Meta(v).WRITE()
	}
	return build(keys, &RefreshVesting{}, remaining...)
}

type RemoveAllLiquidity struct {
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

var RemoveAllLiquidityDiscriminator = codec.Discriminator{10, 51, 61, 35, 112, 105, 24, 85}

// RemoveLiquidityKeys serves RemoveLiquidity and RemoveAllLiquidity.
type RemoveLiquidityKeys struct {
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Pool               solana.PublicKey `account:"pool,writable"`
	Position           solana.PublicKey `account:"position,writable"`
	TokenAAccount      solana.PublicKey `account:"token_a_account,writable"`
	TokenBAccount      solana.PublicKey `account:"token_b_account,writable"`
	TokenAVault        solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault        solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint         solana.PublicKey `account:"token_a_mint"`
	TokenBMint         solana.PublicKey `account:"token_b_mint"`
	PositionNftAccount solana.PublicKey `account:"position_nft_account"`
	Owner              solana.PublicKey `account:"owner,signer"`
	TokenAProgram      solana.PublicKey `account:"token_a_program"`
	TokenBProgram      solana.PublicKey `account:"token_b_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewRemoveAllLiquidityInstruction(keys RemoveLiquidityKeys, tokenAAmountThreshold, tokenBAmountThreshold uint64) (*solana.GenericInstruction, error) {
	return build(keys, &RemoveAllLiquidity{TokenAAmountThreshold: tokenAAmountThreshold, TokenBAmountThreshold: tokenBAmountThreshold})
}

type RemoveLiquidity struct {
	Params RemoveLiquidityParameters
}

var RemoveLiquidityDiscriminator = codec.Discriminator{80, 85, 209, 72, 24, 206, 177, 108}

func NewRemoveLiquidityInstruction(keys RemoveLiquidityKeys, params RemoveLiquidityParameters) (*solana.GenericInstruction, error) {
	return build(keys, &RemoveLiquidity{Params: params})
}

type SetPoolStatus struct {
	Status PoolStatus
}

var SetPoolStatusDiscriminator = codec.Discriminator{112, 87, 135, 223, 83, 204, 132, 53}

type SetPoolStatusKeys struct {
	Pool           solana.PublicKey `account:"pool,writable"`
	Admin          solana.PublicKey `account:"admin,signer"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewSetPoolStatusInstruction(keys SetPoolStatusKeys, status PoolStatus) (*solana.GenericInstruction, error) {
	return build(keys, &SetPoolStatus{Status: status})
}

// Swap trades AmountIn of the input token. The referral token account is
// optional.
type Swap struct {
	Params SwapParameters
}

var SwapDiscriminator = codec.Discriminator{248, 198, 158, 145, 225, 117, 135, 200}

type SwapKeys struct {
	PoolAuthority        solana.PublicKey `account:"pool_authority"`
	Pool                 solana.PublicKey `account:"pool,writable"`
	InputTokenAccount    solana.PublicKey `account:"input_token_account,writable"`
	OutputTokenAccount   solana.PublicKey `account:"output_token_account,writable"`
	TokenAVault          solana.PublicKey `account:"token_a_vault,writable"`
	TokenBVault          solana.PublicKey `account:"token_b_vault,writable"`
	TokenAMint           solana.PublicKey `account:"token_a_mint"`
	TokenBMint           solana.PublicKey `account:"token_b_mint"`
	Payer                solana.PublicKey `account:"payer,signer"`
	TokenAProgram        solana.PublicKey `account:"token_a_program"`
	TokenBProgram        solana.PublicKey `account:"token_b_program"`
	ReferralTokenAccount solana.PublicKey `account:"referral_token_account,writable,optional"`
	EventAuthority       solana.PublicKey `account:"event_authority"`
	Program              solana.PublicKey `account:"program"`
}

func NewSwapInstruction(keys SwapKeys, params SwapParameters) (*solana.GenericInstruction, error) {
	return build(keys, &Swap{Params: params})
}

type UpdateRewardDuration struct {
	RewardIndex uint8
	NewDuration uint64
}

var UpdateRewardDurationDiscriminator = codec.Discriminator{138, 174, 196, 169, 213, 235, 254, 107}

// RewardAdminKeys serves UpdateRewardDuration and UpdateRewardFunder.
type RewardAdminKeys struct {
	Pool           solana.PublicKey `account:"pool,writable"`
	Signer         solana.PublicKey `account:"signer,signer"`
	EventAuthority solana.PublicKey `account:"event_authority"`
	Program        solana.PublicKey `account:"program"`
}

func NewUpdateRewardDurationInstruction(keys RewardAdminKeys, rewardIndex uint8, newDuration uint64) (*solana.GenericInstruction, error) {
	return build(keys, &UpdateRewardDuration{RewardIndex: rewardIndex, NewDuration: newDuration})
}

type UpdateRewardFunder struct {
	RewardIndex uint8
	NewFunder   solana.PublicKey
}

var UpdateRewardFunderDiscriminator = codec.Discriminator{211, 28, 48, 32, 215, 160, 35, 23}

func NewUpdateRewardFunderInstruction(keys RewardAdminKeys, rewardIndex uint8, newFunder solana.PublicKey) (*solana.GenericInstruction, error) {
	return build(keys, &UpdateRewardFunder{RewardIndex: rewardIndex, NewFunder: newFunder})
}

// WithdrawIneligibleReward returns rewards that accrued while the pool had no
// liquidity.
type WithdrawIneligibleReward struct {
	RewardIndex uint8
}

var WithdrawIneligibleRewardDiscriminator = codec.Discriminator{148, 206, 42, 195, 247, 49, 103, 8}

type WithdrawIneligibleRewardKeys struct {
	PoolAuthority      solana.PublicKey `account:"pool_authority"`
	Pool               solana.PublicKey `account:"pool,writable"`
	RewardVault        solana.PublicKey `account:"reward_vault,writable"`
	RewardMint         solana.PublicKey `account:"reward_mint"`
	FunderTokenAccount solana.PublicKey `account:"funder_token_account,writable"`
	Funder             solana.PublicKey `account:"funder,signer"`
	TokenProgram       solana.PublicKey `account:"token_program"`
	EventAuthority     solana.PublicKey `account:"event_authority"`
	Program            solana.PublicKey `account:"program"`
}

func NewWithdrawIneligibleRewardInstruction(keys WithdrawIneligibleRewardKeys, rewardIndex uint8) (*solana.GenericInstruction, error) {
	return build(keys, &WithdrawIneligibleReward{RewardIndex: rewardIndex})
}

func (*AddLiquidity) isInstruction()             {}
func (*ClaimPartnerFee) isInstruction()          {}
func (*ClaimPositionFee) isInstruction()         {}
func (*ClaimProtocolFee) isInstruction()         {}
func (*ClaimReward) isInstruction()              {}
func (*CloseClaimFeeOperator) isInstruction()    {}
func (*CloseConfig) isInstruction()              {}
func (*ClosePosition) isInstruction()            {}
func (*CreateClaimFeeOperator) isInstruction()   {}
func (*CreateConfig) isInstruction()             {}
func (*CreatePosition) isInstruction()           {}
func (*FundReward) isInstruction()               {}
func (*InitializePool) isInstruction()           {}
func (*InitializeReward) isInstruction()         {}
func (*LockPosition) isInstruction()             {}
func (*PermanentLockPosition) isInstruction()    {}
func (*RefreshVesting) isInstruction()           {}
func (*RemoveAllLiquidity) isInstruction()       {}
func (*RemoveLiquidity) isInstruction()          {}
func (*SetPoolStatus) isInstruction()            {}
func (*Swap) isInstruction()                     {}
func (*UpdateRewardDuration) isInstruction()     {}
func (*UpdateRewardFunder) isInstruction()       {}
func (*WithdrawIneligibleReward) isInstruction() {}

func (*AddLiquidity) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[AddLiquidityKeys]() }
func (*ClaimPartnerFee) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[ClaimPartnerFeeKeys]()
}
func (*ClaimPositionFee) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[ClaimPositionFeeKeys]()
}
func (*ClaimProtocolFee) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[ClaimProtocolFeeKeys]()
}
func (*ClaimReward) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[ClaimRewardKeys]() }
func (*CloseClaimFeeOperator) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CloseClaimFeeOperatorKeys]()
}
func (*CloseConfig) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[CloseConfigKeys]() }
func (*ClosePosition) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[ClosePositionKeys]()
}
func (*CreateClaimFeeOperator) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CreateClaimFeeOperatorKeys]()
}
func (*CreateConfig) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[CreateConfigKeys]() }
func (*CreatePosition) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CreatePositionKeys]()
}
func (*FundReward) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[FundRewardKeys]() }
func (*InitializePool) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[InitializePoolKeys]()
}
func (*InitializeReward) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[InitializeRewardKeys]()
}
func (*LockPosition) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[LockPositionKeys]() }
func (*PermanentLockPosition) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[PermanentLockPositionKeys]()
}
func (*RefreshVesting) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[RefreshVestingKeys]()
}
func (*RemoveAllLiquidity) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[RemoveLiquidityKeys]()
}
func (*RemoveLiquidity) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[RemoveLiquidityKeys]()
}
func (*SetPoolStatus) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[SetPoolStatusKeys]()
}
func (*Swap) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[SwapKeys]() }
func (*UpdateRewardDuration) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[RewardAdminKeys]()
}
func (*UpdateRewardFunder) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[RewardAdminKeys]()
}
func (*WithdrawIneligibleReward) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[WithdrawIneligibleRewardKeys]()
}
