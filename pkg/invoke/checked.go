package invoke

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"

	"github.com/lugondev/go-ammix/internal/common"
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

// CheckOptions selects which checks Checked runs before delegating.
type CheckOptions struct {
	// Keys compares every live address with the instruction metadata.
	Keys bool

	// Writable requires live accounts to be writable wherever the metadata is.
	Writable bool

	// Signer requires live accounts to have signed wherever the metadata does.
	Signer bool

	// Caller is the invoking program. When set, addresses derived from the seeds of
	// InvokeSigned count as signers.
	Caller *solana.PublicKey
}

// AllChecks enables every check.
func AllChecks() CheckOptions {
	return CheckOptions{Keys: true, Writable: true, Signer: true}
}

// Checked is an Invoker that validates the live account list against the
// instruction's own metadata before delegating to the wrapped Invoker.
type Checked struct {
	common.LoggerMixin

	inner Invoker
	opts  CheckOptions
}

var (
	_ Invoker         = (*Checked)(nil)
	_ common.Loggable = (*Checked)(nil)
)

// NewChecked wraps inner.
func NewChecked(inner Invoker, opts CheckOptions) *Checked {
	return &Checked{
		LoggerMixin: common.NewLoggerMixin(),
		inner:       inner,
		opts:        opts,
	}
}

// WithLogger sets the logger used for dispatch records.
func (c *Checked) WithLogger(logger *slog.Logger) *Checked {
	c.SetLogger(logger)
	return c
}

func (c *Checked) Invoke(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo) error {
	return c.dispatch(ctx, ix, accounts, nil, false)
}

func (c *Checked) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo, signerSeeds [][][]byte) error {
	return c.dispatch(ctx, ix, accounts, signerSeeds, true)
}

func (c *Checked) dispatch(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo, seeds [][][]byte, signed bool) error {
	id := uuid.New()
	logger := c.GetLogger().With(
		"dispatch_id", id.String(),
		"program", ix.ProgramID().String(),
		"accounts", len(accounts),
		"signed", signed,
	)

	if err := c.check(ix, accounts, seeds); err != nil {
		logger.WarnContext(ctx, "dispatch rejected", "error", err)
		return err
	}

	var err error
	if signed {
		err = c.inner.InvokeSigned(ctx, ix, accounts, seeds)
	} else {
		err = c.inner.Invoke(ctx, ix, accounts)
	}
	if err != nil {
		logger.ErrorContext(ctx, "dispatch failed", "error", err)
		return err
	}

	logger.DebugContext(ctx, "dispatched")
	return nil
}

func (c *Checked) check(ix solana.Instruction, accounts []types.AccountInfo, seeds [][][]byte) error {
	metas := ix.Accounts()
	if len(accounts) < len(metas) {
		return &errors.AccountCountMismatchError{
			RoleSet:  ix.ProgramID().String(),
			Actual:   len(accounts),
			Expected: len(metas),
		}
	}

	if c.opts.Keys {
		for i, m := range metas {
			if !accounts[i].Pubkey.Equals(m.PublicKey) {
				return &errors.AccountKeyMismatchError{
					Role:     position(i),
					Index:    i,
					Actual:   accounts[i].Pubkey,
					Expected: m.PublicKey,
				}
			}
		}
	}

	if c.opts.Writable {
		for i, m := range metas {
			if m.IsWritable && !accounts[i].IsWritable {
				return violation(i, accounts[i], errors.NotWritable)
			}
		}
	}

	if c.opts.Signer {
		derived, err := c.derivedSigners(seeds)
		if err != nil {
			return err
		}
		for i, m := range metas {
			if m.IsSigner && !accounts[i].IsSigner && !derived[accounts[i].Pubkey] {
				return violation(i, accounts[i], errors.NotSigner)
			}
		}
	}
	return nil
}

func (c *Checked) derivedSigners(seeds [][][]byte) (map[solana.PublicKey]bool, error) {
	if c.opts.Caller == nil || len(seeds) == 0 {
		return nil, nil
	}
	out := make(map[solana.PublicKey]bool, len(seeds))
	for _, s := range seeds {
		pda, err := solana.CreateProgramAddress(s, *c.opts.Caller)
		if err != nil {
			return nil, errors.Wrap(err, "derive signer address")
		}
		out[pda] = true
	}
	return out, nil
}

func position(i int) string {
	return fmt.Sprintf("account #%d", i)
}

func violation(i int, a types.AccountInfo, kind errors.PrivilegeKind) *errors.PrivilegeViolationError {
	return &errors.PrivilegeViolationError{
		Role:    position(i),
		Index:   i,
		Account: a.Pubkey,
		Kind:    kind,
	}
}
