// Package codegen reads Anchor IDL JSON files. Code emission lives in the gen
// subpackage.
package codegen

import (
	"encoding/json"
	"fmt"
)

// IDL represents an Anchor IDL (Interface Definition Language) structure.
// Both the 0.30+ layout and the legacy layout (top-level name, isMut/isSigner
// account flags, string "defined" references) are accepted.
type IDL struct {
	Address      string           `json:"address"`
	Metadata     IDLMetadata      `json:"metadata"`
	Instructions []IDLInstruction `json:"instructions"`
	Accounts     []IDLAccountDef  `json:"accounts"`
	Events       []IDLEvent       `json:"events"`
	Errors       []IDLError       `json:"errors"`
	Types        []IDLTypeDef     `json:"types"`
	Constants    []IDLConstant    `json:"constants,omitempty"`

	// Legacy fields, folded into Metadata by Normalize.
	Name    string `json:"name,omitempty"`
	Version string `json:"version,omitempty"`
}

type IDLMetadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Spec        string `json:"spec"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
}

type IDLInstruction struct {
	Name          string           `json:"name"`
	Discriminator []byte           `json:"discriminator"`
	Accounts      []IDLAccountMeta `json:"accounts"`
	Args          []IDLField       `json:"args"`
	Returns       *IDLType         `json:"returns,omitempty"`
	Docs          []string         `json:"docs,omitempty"`
}

// IDLAccountMeta is one account of an instruction. Composite account groups
// carry their members in Accounts.
type IDLAccountMeta struct {
	Name     string           `json:"name"`
	Writable bool             `json:"writable,omitempty"`
	Signer   bool             `json:"signer,omitempty"`
	Optional bool             `json:"optional,omitempty"`
	Address  string           `json:"address,omitempty"`
	PDA      *IDLPDA          `json:"pda,omitempty"`
	Docs     []string         `json:"docs,omitempty"`
	Accounts []IDLAccountMeta `json:"accounts,omitempty"`

	IsMut      bool `json:"isMut,omitempty"`
	IsSigner   bool `json:"isSigner,omitempty"`
	IsOptional bool `json:"isOptional,omitempty"`
}

type IDLPDA struct {
	Seeds   []IDLSeed `json:"seeds"`
	Program *IDLSeed  `json:"program,omitempty"`
}

type IDLSeed struct {
	Kind    string   `json:"kind"` // "const", "account", "arg"
	Value   []byte   `json:"value,omitempty"`
	Path    string   `json:"path,omitempty"`
	Account string   `json:"account,omitempty"`
	Type    *IDLType `json:"type,omitempty"`
}

// IDLAccountDef is an account state type. In 0.30+ IDLs the layout lives in
// Types under the same name and Type is empty.
type IDLAccountDef struct {
	Name          string   `json:"name"`
	Discriminator []byte   `json:"discriminator"`
	Type          IDLType  `json:"type,omitempty"`
	Docs          []string `json:"docs,omitempty"`
}

// IDLEvent is an emitted event. In 0.30+ IDLs the layout lives in Types under
// the same name and Fields is empty.
type IDLEvent struct {
	Name          string     `json:"name"`
	Discriminator []byte     `json:"discriminator"`
	Fields        []IDLField `json:"fields,omitempty"`
	Docs          []string   `json:"docs,omitempty"`
}

type IDLError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
	Msg  string `json:"msg,omitempty"`
}

type IDLTypeDef struct {
	Name     string       `json:"name"`
	Docs     []string     `json:"docs,omitempty"`
	Type     IDLType      `json:"type"`
	Generics []IDLGeneric `json:"generics,omitempty"`
}

type IDLGeneric struct {
	Kind string `json:"kind"` // "type", "const"
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// IDLType is a type reference or definition. Exactly one of the fields is
// set; Kind holds primitive names such as "u64" or "pubkey".
type IDLType struct {
	Kind string `json:"kind,omitempty"`

	Defined *IDLDefinedType `json:"defined,omitempty"`
	Option  *IDLType        `json:"option,omitempty"`
	Coption *IDLType        `json:"coption,omitempty"`
	Vec     *IDLType        `json:"vec,omitempty"`
	Array   *IDLArrayType   `json:"array,omitempty"`
	Struct  *IDLStructType  `json:"struct,omitempty"`
	Enum    *IDLEnumType    `json:"enum,omitempty"`
	Tuple   []IDLType       `json:"tuple,omitempty"`
}

// UnmarshalJSON accepts the string form of primitives and every object form
// Anchor has emitted for composite types.
func (t *IDLType) UnmarshalJSON(data []byte) error {
	var prim string
	if err := json.Unmarshal(data, &prim); err == nil {
		*t = IDLType{Kind: prim}
		return nil
	}

	var raw struct {
		Kind     string            `json:"kind"`
		Name     string            `json:"name"`
		Defined  json.RawMessage   `json:"defined"`
		Option   *IDLType          `json:"option"`
		Coption  *IDLType          `json:"coption"`
		Vec      *IDLType          `json:"vec"`
		Array    []json.RawMessage `json:"array"`
		Fields   []IDLField        `json:"fields"`
		Variants []IDLEnumVariant  `json:"variants"`
		Tuple    []IDLType         `json:"tuple"`
		Generic  string            `json:"generic"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("idl type: %w", err)
	}

	*t = IDLType{}
	switch {
	case len(raw.Defined) > 0:
		def, err := parseDefined(raw.Defined)
		if err != nil {
			return err
		}
		t.Defined = def
	case raw.Option != nil:
		t.Option = raw.Option
	case raw.Coption != nil:
		t.Coption = raw.Coption
	case raw.Vec != nil:
		t.Vec = raw.Vec
	case raw.Array != nil:
		arr, err := parseArray(raw.Array)
		if err != nil {
			return err
		}
		t.Array = arr
	case raw.Tuple != nil:
		t.Tuple = raw.Tuple
	case raw.Kind == "struct":
		t.Struct = &IDLStructType{Fields: raw.Fields}
	case raw.Kind == "enum":
		t.Enum = &IDLEnumType{Variants: raw.Variants}
	case raw.Kind == "defined":
		t.Defined = &IDLDefinedType{Name: raw.Name}
	case raw.Kind == "alias":
		return fmt.Errorf("idl type: alias definitions are not supported")
	case raw.Generic != "":
		return fmt.Errorf("idl type: unresolved generic %q", raw.Generic)
	default:
		t.Kind = raw.Kind
	}
	return nil
}

func parseDefined(data json.RawMessage) (*IDLDefinedType, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return &IDLDefinedType{Name: name}, nil
	}
	var def IDLDefinedType
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("idl defined type: %w", err)
	}
	return &def, nil
}

func parseArray(parts []json.RawMessage) (*IDLArrayType, error) {
	if len(parts) != 2 {
		return nil, fmt.Errorf("idl array: want [type, len], got %d elements", len(parts))
	}
	arr := &IDLArrayType{}
	if err := json.Unmarshal(parts[0], &arr.Type); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(parts[1], &arr.Len); err != nil {
		return nil, fmt.Errorf("idl array: length must be a number: %s", parts[1])
	}
	return arr, nil
}

type IDLDefinedType struct {
	Name     string    `json:"name"`
	Generics []IDLType `json:"generics,omitempty"`
}

type IDLArrayType struct {
	Type IDLType `json:"type"`
	Len  int     `json:"len"`
}

type IDLStructType struct {
	Fields []IDLField `json:"fields"`
}

type IDLEnumType struct {
	Variants []IDLEnumVariant `json:"variants"`
}

type IDLEnumVariant struct {
	Name   string     `json:"name"`
	Fields []IDLField `json:"fields,omitempty"`
}

// IDLField is a named field. Tuple structs and tuple variants list bare types;
// those decode with an empty Name.
type IDLField struct {
	Name string   `json:"name"`
	Type IDLType  `json:"type"`
	Docs []string `json:"docs,omitempty"`
}

func (f *IDLField) UnmarshalJSON(data []byte) error {
	var named struct {
		Name string          `json:"name"`
		Type json.RawMessage `json:"type"`
		Docs []string        `json:"docs"`
	}
	if err := json.Unmarshal(data, &named); err == nil && named.Name != "" && len(named.Type) > 0 {
		f.Name, f.Docs = named.Name, named.Docs
		return json.Unmarshal(named.Type, &f.Type)
	}

	*f = IDLField{}
	return json.Unmarshal(data, &f.Type)
}

type IDLConstant struct {
	Name  string  `json:"name"`
	Type  IDLType `json:"type"`
	Value string  `json:"value"`
}
