package accounts

import (
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/types"
)

// Live binds observed account handles positionally to role set K. The Nth handle
// fills the Nth role.
type Live[K any] struct {
	schema   *Schema
	accounts []types.AccountInfo
}

// NewLive binds accounts to K. The account count must equal the role count.
func NewLive[K any](accounts []types.AccountInfo) (*Live[K], error) {
	s, err := SchemaOf[K]()
	if err != nil {
		return nil, err
	}
	if len(accounts) != s.Len() {
		return nil, &errors.AccountCountMismatchError{RoleSet: s.Type, Actual: len(accounts), Expected: s.Len()}
	}
	return &Live[K]{schema: s, accounts: accounts}, nil
}

// LiveFromMetas binds the flags observed in metas to K.
func LiveFromMetas[K any](metas []*solana.AccountMeta) (*Live[K], error) {
	s, err := SchemaOf[K]()
	if err != nil {
		return nil, err
	}
	if err := CheckMetas(s.Type, metas); err != nil {
		return nil, err
	}
	return NewLive[K](types.AccountInfosFromMetas(metas))
}

// Schema returns the role declarations of K.
func (l *Live[K]) Schema() *Schema { return l.schema }

// Accounts returns the handles in role order.
func (l *Live[K]) Accounts() []types.AccountInfo { return l.accounts }

// Get returns the handle bound to role.
func (l *Live[K]) Get(role string) (types.AccountInfo, bool) {
	i, ok := l.schema.Index(role)
	if !ok {
		return types.AccountInfo{}, false
	}
	return l.accounts[i], true
}

// Keys projects the handles to an address-only role set.
func (l *Live[K]) Keys() K {
	pubkeys := make([]solana.PublicKey, len(l.accounts))
	for i, a := range l.accounts {
		pubkeys[i] = a.Pubkey
	}
	// Length is fixed by NewLive.
	keys, _ := KeysFromPubkeys[K](pubkeys)
	return keys
}

// VerifyKeys compares every live address with the one in expected and reports the
// first position that differs.
func (l *Live[K]) VerifyKeys(expected K) error {
	want := Pubkeys(expected)
	for i, a := range l.accounts {
		if !a.Pubkey.Equals(want[i]) {
			return &errors.AccountKeyMismatchError{
				Role:     l.schema.Roles[i].Name,
				Index:    i,
				Actual:   a.Pubkey,
				Expected: want[i],
			}
		}
	}
	return nil
}

// WritableViolations lists every role declared writable whose live handle is not.
// Roles not declared writable are never reported.
func (l *Live[K]) WritableViolations() []*errors.PrivilegeViolationError {
	var out []*errors.PrivilegeViolationError
	for i, r := range l.schema.Roles {
		if r.Writable && !l.accounts[i].IsWritable {
			out = append(out, l.violation(i, errors.NotWritable))
		}
	}
	return out
}

// SignerViolations lists every role declared signer whose live handle did not sign.
func (l *Live[K]) SignerViolations() []*errors.PrivilegeViolationError {
	var out []*errors.PrivilegeViolationError
	for i, r := range l.schema.Roles {
		if r.Signer && !l.accounts[i].IsSigner {
			out = append(out, l.violation(i, errors.NotSigner))
		}
	}
	return out
}

func (l *Live[K]) violation(i int, kind errors.PrivilegeKind) *errors.PrivilegeViolationError {
	return &errors.PrivilegeViolationError{
		Role:    l.schema.Roles[i].Name,
		Index:   i,
		Account: l.accounts[i].Pubkey,
		Kind:    kind,
	}
}

// VerifyWritable reports the first writable violation.
func (l *Live[K]) VerifyWritable() error {
	if v := l.WritableViolations(); len(v) > 0 {
		return v[0]
	}
	return nil
}

// VerifySigner reports the first signer violation.
func (l *Live[K]) VerifySigner() error {
	if v := l.SignerViolations(); len(v) > 0 {
		return v[0]
	}
	return nil
}

// VerifyPrivileges runs the writable pass and then the signer pass, stopping at the
// first failure. Writable failures are therefore reported before signer failures.
func (l *Live[K]) VerifyPrivileges() error {
	if err := l.VerifyWritable(); err != nil {
		return err
	}
	return l.VerifySigner()
}
