// Package accounts maps named account role sets to the ordered account metadata a
// program expects, and validates live account lists against those roles.
//
// A role set is a struct of solana.PublicKey fields, each tagged with its role name
// and static privileges:
//
//	type SwapKeys struct {
//		Pool   solana.PublicKey `account:"pool,writable"`
//		Payer  solana.PublicKey `account:"payer,signer"`
//		Vault  solana.PublicKey `account:"vault,writable"`
//	}
//
// Field order is wire order. Reordering fields changes the instruction layout.
package accounts

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/errors"
)

// TagName is the struct tag read by SchemaOf.
const TagName = "account"

var pubkeyType = reflect.TypeOf(solana.PublicKey{})

// Role is one account position of an instruction.
type Role struct {
	Name     string `json:"name" yaml:"name"`
	Signer   bool   `json:"signer" yaml:"signer"`
	Writable bool   `json:"writable" yaml:"writable"`

	// Optional roles may be omitted by the caller; the program id is passed in
	// their place.
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Schema is the ordered role list of a role-set type.
type Schema struct {
	Type  string `json:"type" yaml:"type"`
	Roles []Role `json:"roles" yaml:"roles"`

	fields []int
	index  map[string]int
}

// Len returns the number of roles.
func (s *Schema) Len() int { return len(s.Roles) }

// Index returns the position of the named role.
func (s *Schema) Index(role string) (int, bool) {
	i, ok := s.index[role]
	return i, ok
}

// Signers returns the names of roles that must sign.
func (s *Schema) Signers() []string {
	var out []string
	for _, r := range s.Roles {
		if r.Signer {
			out = append(out, r.Name)
		}
	}
	return out
}

// Writables returns the names of roles that must be writable.
func (s *Schema) Writables() []string {
	var out []string
	for _, r := range s.Roles {
		if r.Writable {
			out = append(out, r.Name)
		}
	}
	return out
}

var schemaCache sync.Map

// SchemaOf returns the schema of role-set type K, parsing its tags on first use.
func SchemaOf[K any]() (*Schema, error) {
	return schemaFor(reflect.TypeOf((*K)(nil)).Elem())
}

// MustSchemaOf is like SchemaOf but panics on an invalid role-set type.
func MustSchemaOf[K any]() *Schema {
	s, err := SchemaOf[K]()
	if err != nil {
		panic(err)
	}
	return s
}

func schemaFor(rt reflect.Type) (*Schema, error) {
	if cached, ok := schemaCache.Load(rt); ok {
		return cached.(*Schema), nil
	}

	s, err := parseSchema(rt)
	if err != nil {
		return nil, err
	}
	actual, _ := schemaCache.LoadOrStore(rt, s)
	return actual.(*Schema), nil
}

func parseSchema(rt reflect.Type) (*Schema, error) {
	name := rt.String()
	if rt.Kind() != reflect.Struct {
		return nil, errors.InvalidSchema(name, "role set must be a struct")
	}

	s := &Schema{
		Type:  name,
		index: make(map[string]int, rt.NumField()),
	}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag, ok := f.Tag.Lookup(TagName)
		if !ok || tag == "-" {
			continue
		}
		if f.Type != pubkeyType {
			return nil, errors.InvalidSchema(name, fmt.Sprintf("field %s must be solana.PublicKey", f.Name))
		}
		if !f.IsExported() {
			return nil, errors.InvalidSchema(name, fmt.Sprintf("field %s is not exported", f.Name))
		}

		role, err := parseTag(tag)
		if err != nil {
			return nil, errors.InvalidSchema(name, fmt.Sprintf("field %s: %v", f.Name, err))
		}
		if _, dup := s.index[role.Name]; dup {
			return nil, errors.InvalidSchema(name, fmt.Sprintf("role %q declared twice", role.Name))
		}

		s.index[role.Name] = len(s.Roles)
		s.Roles = append(s.Roles, role)
		s.fields = append(s.fields, i)
	}
	if len(s.Roles) == 0 {
		return nil, errors.InvalidSchema(name, "no tagged account fields")
	}
	return s, nil
}

func parseTag(tag string) (Role, error) {
	parts := strings.Split(tag, ",")
	role := Role{Name: strings.TrimSpace(parts[0])}
	if role.Name == "" {
		return role, fmt.Errorf("empty role name")
	}
	for _, opt := range parts[1:] {
		switch strings.TrimSpace(opt) {
		case "signer":
			role.Signer = true
		case "writable", "mut":
			role.Writable = true
		case "optional":
			role.Optional = true
		default:
			return role, fmt.Errorf("unknown option %q", opt)
		}
	}
	return role, nil
}
