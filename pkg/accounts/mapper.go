package accounts

import (
	"reflect"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/errors"
)

// keyAt returns the address of role i.
func (s *Schema) keyAt(v reflect.Value, i int) solana.PublicKey {
	return v.Field(s.fields[i]).Interface().(solana.PublicKey)
}

// Metas returns the ordered account metadata for keys, with signer and writable
// flags taken from the role declarations. It panics if K is not a valid role set.
func Metas[K any](keys K) solana.AccountMetaSlice {
	s := MustSchemaOf[K]()
	v := reflect.ValueOf(keys)

	metas := make(solana.AccountMetaSlice, s.Len())
	for i, r := range s.Roles {
		metas[i] = solana.NewAccountMeta(s.keyAt(v, i), r.Writable, r.Signer)
	}
	return metas
}

// MetasForProgram is like Metas but passes programID, read-only and unsigned, in
// place of optional roles left as the zero key. This is how Anchor encodes an
// absent optional account.
func MetasForProgram[K any](programID solana.PublicKey, keys K) solana.AccountMetaSlice {
	s := MustSchemaOf[K]()
	metas := Metas(keys)
	for i, r := range s.Roles {
		if r.Optional && metas[i].PublicKey.IsZero() {
			metas[i] = solana.Meta(programID)
		}
	}
	return metas
}

// Pubkeys returns the addresses of keys in role order.
func Pubkeys[K any](keys K) []solana.PublicKey {
	s := MustSchemaOf[K]()
	v := reflect.ValueOf(keys)

	out := make([]solana.PublicKey, s.Len())
	for i := range s.Roles {
		out[i] = s.keyAt(v, i)
	}
	return out
}

// KeysFromPubkeys rebuilds a role set from a positional address list. The list
// length must equal the role count.
func KeysFromPubkeys[K any](pubkeys []solana.PublicKey) (K, error) {
	var keys K
	s, err := SchemaOf[K]()
	if err != nil {
		return keys, err
	}
	if len(pubkeys) != s.Len() {
		return keys, &errors.AccountCountMismatchError{RoleSet: s.Type, Actual: len(pubkeys), Expected: s.Len()}
	}

	v := reflect.ValueOf(&keys).Elem()
	for i, pk := range pubkeys {
		v.Field(s.fields[i]).Set(reflect.ValueOf(pk))
	}
	return keys, nil
}

// CheckMetas fails with MalformedInput at the index of the first nil entry.
func CheckMetas(roleSet string, metas []*solana.AccountMeta) error {
	for i, m := range metas {
		if m == nil {
			return errors.MalformedInput(roleSet+" account meta", i, nil)
		}
	}
	return nil
}

// KeysFromMetas rebuilds a role set from account metadata, ignoring the flags.
func KeysFromMetas[K any](metas []*solana.AccountMeta) (K, error) {
	var keys K
	s, err := SchemaOf[K]()
	if err != nil {
		return keys, err
	}
	if err := CheckMetas(s.Type, metas); err != nil {
		return keys, err
	}
	pubkeys := make([]solana.PublicKey, len(metas))
	for i, m := range metas {
		pubkeys[i] = m.PublicKey
	}
	return KeysFromPubkeys[K](pubkeys)
}

// KeysFromMetasPrefix rebuilds a role set from the first role-count entries of metas
// and returns the rest. Programs that accept remaining accounts (tick arrays, hop
// pools) put them after the declared roles.
func KeysFromMetasPrefix[K any](metas []*solana.AccountMeta) (K, []*solana.AccountMeta, error) {
	var keys K
	s, err := SchemaOf[K]()
	if err != nil {
		return keys, nil, err
	}
	if len(metas) < s.Len() {
		return keys, nil, &errors.AccountCountMismatchError{RoleSet: s.Type, Actual: len(metas), Expected: s.Len()}
	}
	keys, err = KeysFromMetas[K](metas[:s.Len()])
	if err != nil {
		return keys, nil, err
	}
	return keys, metas[s.Len():], nil
}

// Named returns role name to address for keys, for display.
func Named[K any](keys K) map[string]solana.PublicKey {
	s := MustSchemaOf[K]()
	v := reflect.ValueOf(keys)

	out := make(map[string]solana.PublicKey, s.Len())
	for i, r := range s.Roles {
		out[r.Name] = s.keyAt(v, i)
	}
	return out
}

// WithDefaults returns keys with every zero-valued role named in defaults set to the
// given address. Roles absent from K are ignored.
func WithDefaults[K any](keys K, defaults map[string]solana.PublicKey) K {
	s := MustSchemaOf[K]()
	v := reflect.ValueOf(&keys).Elem()
	for i, r := range s.Roles {
		pk, ok := defaults[r.Name]
		if !ok {
			continue
		}
		f := v.Field(s.fields[i])
		if f.Interface().(solana.PublicKey).IsZero() {
			f.Set(reflect.ValueOf(pk))
		}
	}
	return keys
}
