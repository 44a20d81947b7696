// Package invoke combines role-set metadata and envelope payloads into wire
// instructions and hands them, with live account handles, to a host invocation
// primitive.
package invoke

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

// Invoker is the host runtime's cross-program invocation primitive.
type Invoker interface {
	// Invoke executes ix with the given live accounts.
	Invoke(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo) error

	// InvokeSigned is like Invoke but also signs for the program-derived addresses
	// produced by signerSeeds.
	InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo, signerSeeds [][][]byte) error
}

// Encoder encodes one case of a program's instruction sum type.
type Encoder[T any] interface {
	Encode(v T) ([]byte, error)
}

// Build encodes v with enc and attaches the metadata of keys, followed by any
// remaining accounts the instruction accepts.
func Build[K any, T any](programID solana.PublicKey, enc Encoder[T], keys K, v T, remaining ...*solana.AccountMeta) (*solana.GenericInstruction, error) {
	data, err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	metas := accounts.MetasForProgram(programID, keys)
	if len(remaining) > 0 {
		metas = append(metas, remaining...)
	}
	return solana.NewInstruction(programID, metas, data), nil
}

func label(ix solana.Instruction) string {
	return ix.ProgramID().String()
}

// Dispatch hands ix and the live accounts to inv. The accounts must be positionally
// aligned with the keys ix was built from; use Live.VerifyKeys or Checked to assert
// that.
func Dispatch[K any](ctx context.Context, inv Invoker, ix solana.Instruction, live *accounts.Live[K], remaining ...types.AccountInfo) error {
	if err := inv.Invoke(ctx, ix, join(live, remaining)); err != nil {
		return errors.DispatchFailed(label(ix), err)
	}
	return nil
}

// DispatchSigned is like Dispatch for a program signing with derived addresses.
func DispatchSigned[K any](ctx context.Context, inv Invoker, ix solana.Instruction, live *accounts.Live[K], signerSeeds [][][]byte, remaining ...types.AccountInfo) error {
	if err := inv.InvokeSigned(ctx, ix, join(live, remaining), signerSeeds); err != nil {
		return errors.DispatchFailed(label(ix), err)
	}
	return nil
}

func join[K any](live *accounts.Live[K], remaining []types.AccountInfo) []types.AccountInfo {
	if len(remaining) == 0 {
		return live.Accounts()
	}
	out := make([]types.AccountInfo, 0, len(live.Accounts())+len(remaining))
	out = append(out, live.Accounts()...)
	return append(out, remaining...)
}
