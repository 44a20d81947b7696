// Package types provides base Solana types shared by the program bindings and the
// dispatch helpers. It wraps solana-go types for consistency.
package types

import (
	"github.com/gagliardetto/solana-go"
)

// Pubkey is a Solana public key (32 bytes).
type Pubkey = solana.PublicKey

// Account represents a Solana account with its data and metadata.
type Account struct {
	// Lamports is the number of lamports owned by this account.
	Lamports uint64 `json:"lamports"`

	// Data is the data held in this account.
	Data []byte `json:"data"`

	// Owner is the program that owns this account.
	Owner Pubkey `json:"owner"`

	// Executable indicates if the account contains a program.
	Executable bool `json:"executable"`

	// RentEpoch is the epoch at which this account will next owe rent.
	RentEpoch uint64 `json:"rent_epoch"`
}

// AccountInfo is a live account handle as observed in an execution context: the
// address, the privileges the runtime actually granted, and optionally the account
// contents. It is what validators compare against a role set's static attributes.
type AccountInfo struct {
	// Pubkey is the address of the account.
	Pubkey Pubkey `json:"pubkey"`

	// IsSigner indicates the account signed the enclosing transaction.
	IsSigner bool `json:"is_signer"`

	// IsWritable indicates the account was passed writable.
	IsWritable bool `json:"is_writable"`

	// Account holds the account contents, if loaded.
	Account *Account `json:"account,omitempty"`
}

// Meta returns the account as a solana-go AccountMeta.
func (ai AccountInfo) Meta() *solana.AccountMeta {
	return &solana.AccountMeta{
		PublicKey:  ai.Pubkey,
		IsSigner:   ai.IsSigner,
		IsWritable: ai.IsWritable,
	}
}

// AccountInfoFromMeta creates a live handle carrying the flags of meta.
func AccountInfoFromMeta(meta *solana.AccountMeta) AccountInfo {
	return AccountInfo{
		Pubkey:     meta.PublicKey,
		IsSigner:   meta.IsSigner,
		IsWritable: meta.IsWritable,
	}
}

// AccountInfosFromMetas converts a metadata list into live handles, preserving order.
func AccountInfosFromMetas(metas []*solana.AccountMeta) []AccountInfo {
	out := make([]AccountInfo, len(metas))
	for i, m := range metas {
		out[i] = AccountInfoFromMeta(m)
	}
	return out
}

// Instruction represents a raw Solana instruction as seen off-chain.
type Instruction struct {
	// ProgramID is the program that will process this instruction.
	ProgramID Pubkey `json:"program_id"`

	// Accounts is the list of accounts to pass to the program.
	Accounts []*solana.AccountMeta `json:"accounts"`

	// Data is the instruction data.
	Data []byte `json:"data"`
}

// FromSolanaInstruction copies a solana-go instruction into an Instruction.
func FromSolanaInstruction(ix solana.Instruction) (*Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, err
	}
	return &Instruction{
		ProgramID: ix.ProgramID(),
		Accounts:  ix.Accounts(),
		Data:      data,
	}, nil
}
