// Package decoder routes raw instructions and event payloads to the program
// binding registered for their program id.
//
// A Registry holds one Program per program id. The built-in bindings are
// available through Default:
//
//	reg := decoder.Default()
//	ix, err := reg.DecodeInstruction(raw)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ix.Program, ix.Name)
package decoder

import (
	"sort"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/accounts"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

// Account is one instruction account annotated with its role.
type Account struct {
	Role     string           `json:"role,omitempty" yaml:"role,omitempty"`
	Pubkey   solana.PublicKey `json:"pubkey" yaml:"pubkey"`
	Signer   bool             `json:"signer" yaml:"signer"`
	Writable bool             `json:"writable" yaml:"writable"`
}

// DecodedInstruction is an instruction resolved against a program binding.
type DecodedInstruction struct {
	Program       string              `json:"program" yaml:"program"`
	ProgramID     solana.PublicKey    `json:"program_id" yaml:"program_id"`
	Name          string              `json:"name" yaml:"name"`
	Discriminator codec.Discriminator `json:"discriminator" yaml:"discriminator"`
	Data          any                 `json:"data" yaml:"data"`
	Accounts      []Account           `json:"accounts,omitempty" yaml:"accounts,omitempty"`

	// Remaining holds the accounts past the declared roles, such as tick
	// arrays or vesting accounts.
	Remaining []Account `json:"remaining,omitempty" yaml:"remaining,omitempty"`
}

// DecodedEvent is an event payload resolved against a program binding.
type DecodedEvent struct {
	Program   string           `json:"program" yaml:"program"`
	ProgramID solana.PublicKey `json:"program_id" yaml:"program_id"`
	Name      string           `json:"name" yaml:"name"`
	Data      any              `json:"data" yaml:"data"`

	// CPI is set when the payload was self-CPI instruction data rather than a
	// "Program data:" log line.
	CPI bool `json:"cpi,omitempty" yaml:"cpi,omitempty"`

	// Path is the instruction path of the emitting invoke, set for events
	// decoded from transaction logs.
	Path []int `json:"path,omitempty" yaml:"path,omitempty,flow"`
}

// Program is the type-erased view of one program binding.
type Program interface {
	// Name returns the short program label.
	Name() string

	// ProgramID returns the canonical deployment address.
	ProgramID() solana.PublicKey

	// DecodeInstruction decodes instruction data into the program's payload
	// type and returns the account schema of the matched instruction.
	DecodeInstruction(data []byte, strict bool) (string, any, *accounts.Schema, error)

	// DecodeEvent decodes a "Program data:" payload or self-CPI event data.
	DecodeEvent(data []byte) (string, any, error)

	InstructionTable() *codec.Table
	EventTable() *codec.Table

	// Schema returns the account schema of the named instruction.
	Schema(instruction string) (*accounts.Schema, bool)
}

// Keyed is implemented by every instruction payload of a binding.
type Keyed interface {
	KeysSchema() *accounts.Schema
}

// Binding adapts a program's instruction envelope and event decoder to Program.
type Binding[I Keyed, E any] struct {
	name         string
	programID    solana.PublicKey
	instructions *codec.Envelope[I]
	events       *codec.EventDecoder[E]
}

var _ Program = (*Binding[Keyed, any])(nil)

// NewBinding creates a Binding.
func NewBinding[I Keyed, E any](name string, programID solana.PublicKey, instructions *codec.Envelope[I], events *codec.EventDecoder[E]) *Binding[I, E] {
	return &Binding[I, E]{
		name:         name,
		programID:    programID,
		instructions: instructions,
		events:       events,
	}
}

func (b *Binding[I, E]) Name() string                   { return b.name }
func (b *Binding[I, E]) ProgramID() solana.PublicKey    { return b.programID }
func (b *Binding[I, E]) InstructionTable() *codec.Table { return b.instructions.Table() }
func (b *Binding[I, E]) EventTable() *codec.Table       { return b.events.Table() }

func (b *Binding[I, E]) DecodeInstruction(data []byte, strict bool) (string, any, *accounts.Schema, error) {
	var (
		ix  I
		err error
	)
	if strict {
		ix, err = b.instructions.DecodeStrict(data)
	} else {
		ix, err = b.instructions.Decode(data)
	}
	if err != nil {
		return "", nil, nil, err
	}
	name, err := b.instructions.Name(ix)
	if err != nil {
		return "", nil, nil, err
	}
	return name, ix, ix.KeysSchema(), nil
}

func (b *Binding[I, E]) DecodeEvent(data []byte) (string, any, error) {
	var (
		ev  E
		err error
	)
	if codec.IsCPI(data) {
		ev, err = b.events.DecodeCPI(data)
	} else {
		ev, err = b.events.Decode(data)
	}
	if err != nil {
		return "", nil, err
	}
	name, err := b.events.Name(ev)
	if err != nil {
		return "", nil, err
	}
	return name, ev, nil
}

func (b *Binding[I, E]) Schema(instruction string) (*accounts.Schema, bool) {
	ix, ok := b.instructions.New(instruction)
	if !ok {
		return nil, false
	}
	return ix.KeysSchema(), true
}

// Registry maps program ids to bindings. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	programs map[solana.PublicKey]Program
	strict   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		programs: make(map[solana.PublicKey]Program),
	}
}

// SetStrict makes instruction decoding reject trailing payload bytes.
func (r *Registry) SetStrict(strict bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strict = strict
}

// Register adds p under its canonical program id.
func (r *Registry) Register(p Program) {
	r.RegisterForProgram(p.ProgramID(), p)
}

// RegisterForProgram adds p under programID, replacing any earlier binding.
// Use it for forks and devnet deployments of a known program.
func (r *Registry) RegisterForProgram(programID solana.PublicKey, p Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[programID] = p
}

// Lookup returns the binding registered for programID.
func (r *Registry) Lookup(programID solana.PublicKey) (Program, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[programID]
	return p, ok
}

// Get returns a binding by name along with the id it is registered under.
func (r *Registry) Get(name string) (Program, solana.PublicKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id, p := range r.programs {
		if p.Name() == name {
			return p, id, true
		}
	}
	return nil, solana.PublicKey{}, false
}

// Entry pairs a registered program id with its binding.
type Entry struct {
	ProgramID solana.PublicKey
	Program   Program
}

// List returns the registered bindings ordered by name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.programs))
	for id, p := range r.programs {
		out = append(out, Entry{ProgramID: id, Program: p})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Program.Name() != out[j].Program.Name() {
			return out[i].Program.Name() < out[j].Program.Name()
		}
		return out[i].ProgramID.String() < out[j].ProgramID.String()
	})
	return out
}

func (r *Registry) resolve(programID solana.PublicKey) (Program, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.programs[programID]
	if !ok {
		return nil, false, errors.UnknownProgram(programID)
	}
	return p, r.strict, nil
}

// DecodeInstruction decodes ix with the binding registered for its program id
// and names its accounts by role.
func (r *Registry) DecodeInstruction(ix *types.Instruction) (*DecodedInstruction, error) {
	out, schema, err := r.decodeData(ix.ProgramID, ix.Data)
	if err != nil {
		return nil, err
	}
	if len(ix.Accounts) < schema.Len() {
		return nil, &errors.AccountCountMismatchError{
			RoleSet:  schema.Type,
			Actual:   len(ix.Accounts),
			Expected: schema.Len(),
		}
	}
	if err := accounts.CheckMetas(schema.Type, ix.Accounts); err != nil {
		return nil, err
	}

	out.Accounts = make([]Account, schema.Len())
	for i, role := range schema.Roles {
		out.Accounts[i] = annotate(role.Name, ix.Accounts[i])
	}
	for _, meta := range ix.Accounts[schema.Len():] {
		out.Remaining = append(out.Remaining, annotate("", meta))
	}
	return out, nil
}

// DecodeInstructionData decodes an instruction payload without its account
// list. Accounts of the result are empty.
func (r *Registry) DecodeInstructionData(programID solana.PublicKey, data []byte) (*DecodedInstruction, error) {
	out, _, err := r.decodeData(programID, data)
	return out, err
}

func (r *Registry) decodeData(programID solana.PublicKey, data []byte) (*DecodedInstruction, *accounts.Schema, error) {
	p, strict, err := r.resolve(programID)
	if err != nil {
		return nil, nil, err
	}

	name, payload, schema, err := p.DecodeInstruction(data, strict)
	if err != nil {
		return nil, nil, err
	}

	disc, _ := p.InstructionTable().Lookup(name)
	return &DecodedInstruction{
		Program:       p.Name(),
		ProgramID:     programID,
		Name:          name,
		Discriminator: disc,
		Data:          payload,
	}, schema, nil
}

// DecodeEvent decodes an event payload emitted by programID. Both log payloads
// and self-CPI instruction data are accepted.
func (r *Registry) DecodeEvent(programID solana.PublicKey, data []byte) (*DecodedEvent, error) {
	p, _, err := r.resolve(programID)
	if err != nil {
		return nil, err
	}
	return decodeOne(p, programID, data)
}

func annotate(role string, meta *solana.AccountMeta) Account {
	return Account{
		Role:     role,
		Pubkey:   meta.PublicKey,
		Signer:   meta.IsSigner,
		Writable: meta.IsWritable,
	}
}
