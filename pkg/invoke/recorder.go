package invoke

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/types"
)

// Call is one invocation captured by a Recorder.
type Call struct {
	ProgramID   solana.PublicKey
	Metas       []*solana.AccountMeta
	Data        []byte
	Accounts    []types.AccountInfo
	SignerSeeds [][][]byte
	Signed      bool
}

// Recorder is an in-memory Invoker for simulation harnesses. It records every call
// and returns Err, if set.
type Recorder struct {
	Err error

	mu    sync.Mutex
	calls []Call
}

var _ Invoker = (*Recorder)(nil)

func (r *Recorder) Invoke(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo) error {
	return r.record(ix, accounts, nil, false)
}

func (r *Recorder) InvokeSigned(ctx context.Context, ix solana.Instruction, accounts []types.AccountInfo, signerSeeds [][][]byte) error {
	return r.record(ix, accounts, signerSeeds, true)
}

func (r *Recorder) record(ix solana.Instruction, accounts []types.AccountInfo, seeds [][][]byte, signed bool) error {
	data, err := ix.Data()
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{
		ProgramID:   ix.ProgramID(),
		Metas:       ix.Accounts(),
		Data:        data,
		Accounts:    accounts,
		SignerSeeds: seeds,
		Signed:      signed,
	})
	return r.Err
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
