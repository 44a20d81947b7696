package cpswap

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/invoke"
)

func build[K any](keys K, ix Instruction) (*solana.GenericInstruction, error) {
	return invoke.Build[K, Instruction](ProgramID, Instructions, accounts.WithDefaults(keys, defaults), ix)
}

// CreateAmmConfig creates a fee tier. Rates are parts per million.
type CreateAmmConfig struct {
	Index           uint16
	TradeFeeRate    uint64
	ProtocolFeeRate uint64
	FundFeeRate     uint64
	CreatePoolFee   uint64
}

var CreateAmmConfigDiscriminator = codec.Discriminator{137, 52, 237, 212, 215, 117, 108, 104}

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

type UpdateAmmConfig struct {
	Param uint8
	Value uint64
}

var UpdateAmmConfigDiscriminator = codec.Discriminator{49, 60, 174, 136, 154, 28, 116, 200}

type UpdateAmmConfigKeys struct {
	Owner     solana.PublicKey `account:"owner,signer"`
	AmmConfig solana.PublicKey `account:"amm_config,writable"`
}

func NewUpdateAmmConfigInstruction(keys UpdateAmmConfigKeys, param uint8, value uint64) (*solana.GenericInstruction, error) {
	return build(keys, &UpdateAmmConfig{Param: param, Value: value})
}

type UpdatePoolStatus struct {
	Status uint8
}

var UpdatePoolStatusDiscriminator = codec.Discriminator{130, 87, 108, 6, 46, 224, 117, 123}

type UpdatePoolStatusKeys struct {
	Authority solana.PublicKey `account:"authority,signer"`
	PoolState solana.PublicKey `account:"pool_state,writable"`
}

func NewUpdatePoolStatusInstruction(keys UpdatePoolStatusKeys, status uint8) (*solana.GenericInstruction, error) {
	return build(keys, &UpdatePoolStatus{Status: status})
}

type CollectProtocolFee struct {
	Amount0Requested uint64
	Amount1Requested uint64
}

var CollectProtocolFeeDiscriminator = codec.Discriminator{136, 136, 252, 221, 194, 66, 126, 89}

// CollectFeeKeys serves CollectProtocolFee and CollectFundFee.
type CollectFeeKeys struct {
	Owner                  solana.PublicKey `account:"owner,signer"`
	Authority              solana.PublicKey `account:"authority"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	AmmConfig              solana.PublicKey `account:"amm_config"`
	Token0Vault            solana.PublicKey `account:"token_0_vault,writable"`
	Token1Vault            solana.PublicKey `account:"token_1_vault,writable"`
	Vault0Mint             solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint             solana.PublicKey `account:"vault_1_mint"`
	RecipientToken0Account solana.PublicKey `account:"recipient_token_0_account,writable"`
	RecipientToken1Account solana.PublicKey `account:"recipient_token_1_account,writable"`
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

var CollectFundFeeDiscriminator = codec.Discriminator{167, 138, 78, 149, 223, 194, 6, 126}

func NewCollectFundFeeInstruction(keys CollectFeeKeys, amount0, amount1 uint64) (*solana.GenericInstruction, error) {
	return build(keys, &CollectFundFee{Amount0Requested: amount0, Amount1Requested: amount1})
}

// Initialize creates a pool and seeds it with the creator's initial deposit.
type Initialize struct {
	InitAmount0 uint64
	InitAmount1 uint64
	OpenTime    uint64
}

var InitializeDiscriminator = codec.Discriminator{175, 175, 109, 31, 13, 152, 155, 237}

type InitializeKeys struct {
	Creator                solana.PublicKey `account:"creator,signer,writable"`
	AmmConfig              solana.PublicKey `account:"amm_config"`
	Authority              solana.PublicKey `account:"authority"`
	PoolState              solana.PublicKey `account:"pool_state,writable"`
	Token0Mint             solana.PublicKey `account:"token_0_mint"`
	Token1Mint             solana.PublicKey `account:"token_1_mint"`
	LpMint                 solana.PublicKey `account:"lp_mint,writable"`
	CreatorToken0          solana.PublicKey `account:"creator_token_0,writable"`
	CreatorToken1          solana.PublicKey `account:"creator_token_1,writable"`
	CreatorLpToken         solana.PublicKey `account:"creator_lp_token,writable"`
	Token0Vault            solana.PublicKey `account:"token_0_vault,writable"`
	Token1Vault            solana.PublicKey `account:"token_1_vault,writable"`
	CreatePoolFee          solana.PublicKey `account:"create_pool_fee,writable"`
	ObservationState       solana.PublicKey `account:"observation_state,writable"`
	TokenProgram           solana.PublicKey `account:"token_program"`
	Token0Program          solana.PublicKey `account:"token_0_program"`
	Token1Program          solana.PublicKey `account:"token_1_program"`
	AssociatedTokenProgram solana.PublicKey `account:"associated_token_program"`
	SystemProgram          solana.PublicKey `account:"system_program"`
	Rent                   solana.PublicKey `account:"rent"`
}

// NewInitializeInstruction derives the pool, LP mint, vault and observation
// addresses left empty in keys.
func NewInitializeInstruction(keys InitializeKeys, args Initialize) (*solana.GenericInstruction, error) {
	var err error
	if keys.PoolState.IsZero() {
		if keys.PoolState, _, err = DerivePool(keys.AmmConfig, keys.Token0Mint, keys.Token1Mint); err != nil {
			return nil, err
		}
	}
	if keys.LpMint.IsZero() {
		if keys.LpMint, _, err = DeriveLpMint(keys.PoolState); err != nil {
			return nil, err
		}
	}
	if keys.Token0Vault.IsZero() {
		if keys.Token0Vault, _, err = DeriveVault(keys.PoolState, keys.Token0Mint); err != nil {
			return nil, err
		}
	}
	if keys.Token1Vault.IsZero() {
		if keys.Token1Vault, _, err = DeriveVault(keys.PoolState, keys.Token1Mint); err != nil {
			return nil, err
		}
	}
	if keys.ObservationState.IsZero() {
		if keys.ObservationState, _, err = DeriveObservation(keys.PoolState); err != nil {
			return nil, err
		}
	}
	if keys.Token0Program.IsZero() {
		keys.Token0Program = solana.TokenProgramID
	}
	if keys.Token1Program.IsZero() {
		keys.Token1Program = solana.TokenProgramID
	}
	return build(keys, &args)
}

// Deposit mints LpTokenAmount LP tokens for at most the given token amounts.
type Deposit struct {
	LpTokenAmount       uint64
	MaximumToken0Amount uint64
	MaximumToken1Amount uint64
}

var DepositDiscriminator = codec.Discriminator{242, 35, 198, 137, 82, 225, 242, 182}

type DepositKeys struct {
	Owner            solana.PublicKey `account:"owner,signer"`
	Authority        solana.PublicKey `account:"authority"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	OwnerLpToken     solana.PublicKey `account:"owner_lp_token,writable"`
	Token0Account    solana.PublicKey `account:"token_0_account,writable"`
	Token1Account    solana.PublicKey `account:"token_1_account,writable"`
	Token0Vault      solana.PublicKey `account:"token_0_vault,writable"`
	Token1Vault      solana.PublicKey `account:"token_1_vault,writable"`
	TokenProgram     solana.PublicKey `account:"token_program"`
	TokenProgram2022 solana.PublicKey `account:"token_program_2022"`
	Vault0Mint       solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint       solana.PublicKey `account:"vault_1_mint"`
	LpMint           solana.PublicKey `account:"lp_mint,writable"`
}

func NewDepositInstruction(keys DepositKeys, args Deposit) (*solana.GenericInstruction, error) {
	return build(keys, &args)
}

// Withdraw burns LpTokenAmount LP tokens for at least the given token amounts.
type Withdraw struct {
	LpTokenAmount       uint64
	MinimumToken0Amount uint64
	MinimumToken1Amount uint64
}

var WithdrawDiscriminator = codec.Discriminator{183, 18, 70, 156, 148, 109, 161, 34}

type WithdrawKeys struct {
	Owner            solana.PublicKey `account:"owner,signer"`
	Authority        solana.PublicKey `account:"authority"`
	PoolState        solana.PublicKey `account:"pool_state,writable"`
	OwnerLpToken     solana.PublicKey `account:"owner_lp_token,writable"`
	Token0Account    solana.PublicKey `account:"token_0_account,writable"`
	Token1Account    solana.PublicKey `account:"token_1_account,writable"`
	Token0Vault      solana.PublicKey `account:"token_0_vault,writable"`
	Token1Vault      solana.PublicKey `account:"token_1_vault,writable"`
	TokenProgram     solana.PublicKey `account:"token_program"`
	TokenProgram2022 solana.PublicKey `account:"token_program_2022"`
	Vault0Mint       solana.PublicKey `account:"vault_0_mint"`
	Vault1Mint       solana.PublicKey `account:"vault_1_mint"`
	LpMint           solana.PublicKey `account:"lp_mint,writable"`
	MemoProgram      solana.PublicKey `account:"memo_program"`
}

func NewWithdrawInstruction(keys WithdrawKeys, args Withdraw) (*solana.GenericInstruction, error) {
	return build(keys, &args)
}

type SwapBaseInput struct {
	AmountIn         uint64
	MinimumAmountOut uint64
}

var SwapBaseInputDiscriminator = codec.Discriminator{143, 190, 90, 218, 196, 30, 51, 222}

// SwapKeys serves SwapBaseInput and SwapBaseOutput.
type SwapKeys struct {
	Payer              solana.PublicKey `account:"payer,signer"`
	Authority          solana.PublicKey `account:"authority"`
	AmmConfig          solana.PublicKey `account:"amm_config"`
	PoolState          solana.PublicKey `account:"pool_state,writable"`
	InputTokenAccount  solana.PublicKey `account:"input_token_account,writable"`
	OutputTokenAccount solana.PublicKey `account:"output_token_account,writable"`
	InputVault         solana.PublicKey `account:"input_vault,writable"`
	OutputVault        solana.PublicKey `account:"output_vault,writable"`
	InputTokenProgram  solana.PublicKey `account:"input_token_program"`
	OutputTokenProgram solana.PublicKey `account:"output_token_program"`
	InputTokenMint     solana.PublicKey `account:"input_token_mint"`
	OutputTokenMint    solana.PublicKey `account:"output_token_mint"`
	ObservationState   solana.PublicKey `account:"observation_state,writable"`
}

func NewSwapBaseInputInstruction(keys SwapKeys, amountIn, minimumAmountOut uint64) (*solana.GenericInstruction, error) {
	return build(withTokenPrograms(keys), &SwapBaseInput{AmountIn: amountIn, MinimumAmountOut: minimumAmountOut})
}

type SwapBaseOutput struct {
	MaxAmountIn uint64
	AmountOut   uint64
}

var SwapBaseOutputDiscriminator = codec.Discriminator{55, 217, 98, 86, 163, 74, 180, 173}

func NewSwapBaseOutputInstruction(keys SwapKeys, maxAmountIn, amountOut uint64) (*solana.GenericInstruction, error) {
	return build(withTokenPrograms(keys), &SwapBaseOutput{MaxAmountIn: maxAmountIn, AmountOut: amountOut})
}

func withTokenPrograms(keys SwapKeys) SwapKeys {
	if keys.InputTokenProgram.IsZero() {
		keys.InputTokenProgram = solana.TokenProgramID
	}
	if keys.OutputTokenProgram.IsZero() {
		keys.OutputTokenProgram = solana.TokenProgramID
	}
	return keys
}

func (*CreateAmmConfig) isInstruction()    {}
func (*UpdateAmmConfig) isInstruction()    {}
func (*UpdatePoolStatus) isInstruction()   {}
func (*CollectProtocolFee) isInstruction() {}
func (*CollectFundFee) isInstruction()     {}
func (*Initialize) isInstruction()         {}
func (*Deposit) isInstruction()            {}
func (*Withdraw) isInstruction()           {}
func (*SwapBaseInput) isInstruction()      {}
func (*SwapBaseOutput) isInstruction()     {}

func (*CreateAmmConfig) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CreateAmmConfigKeys]()
}
func (*UpdateAmmConfig) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdateAmmConfigKeys]()
}
func (*UpdatePoolStatus) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[UpdatePoolStatusKeys]()
}
func (*CollectProtocolFee) KeysSchema() *accounts.Schema {
	return accounts.MustSchemaOf[CollectFeeKeys]()
}
func (*CollectFundFee) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[CollectFeeKeys]() }
func (*Initialize) KeysSchema() *accounts.Schema     { return accounts.MustSchemaOf[InitializeKeys]() }
func (*Deposit) KeysSchema() *accounts.Schema        { return accounts.MustSchemaOf[DepositKeys]() }
func (*Withdraw) KeysSchema() *accounts.Schema       { return accounts.MustSchemaOf[WithdrawKeys]() }
func (*SwapBaseInput) KeysSchema() *accounts.Schema  { return accounts.MustSchemaOf[SwapKeys]() }
func (*SwapBaseOutput) KeysSchema() *accounts.Schema { return accounts.MustSchemaOf[SwapKeys]() }
