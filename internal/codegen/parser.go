package codegen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/utils"
)

func ParseIDLFile(filePath string) (*IDL, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read IDL file: %w", err)
	}

	return ParseIDL(data)
}

// ParseIDL decodes an IDL document and normalizes it with Normalize.
func ParseIDL(data []byte) (*IDL, error) {
	var idl IDL
	if err := json.Unmarshal(data, &idl); err != nil {
		return nil, fmt.Errorf("failed to parse IDL JSON: %w", err)
	}

	idl.Normalize()
	return &idl, nil
}

// Normalize folds legacy fields into their 0.30 counterparts and fills
// missing discriminators with the Anchor sighash of each name.
func (idl *IDL) Normalize() {
	if idl.Metadata.Name == "" {
		idl.Metadata.Name = idl.Name
	}
	if idl.Metadata.Version == "" {
		idl.Metadata.Version = idl.Version
	}
	if idl.Address == "" {
		idl.Address = idl.Metadata.Address
	}

	for i := range idl.Instructions {
		ix := &idl.Instructions[i]
		if len(ix.Discriminator) == 0 {
			ix.Discriminator = codec.InstructionSighash(utils.ToSnakeCase(ix.Name))
		}
		normalizeMetas(ix.Accounts)
	}
	for i := range idl.Events {
		if len(idl.Events[i].Discriminator) == 0 {
			idl.Events[i].Discriminator = codec.EventSighash(idl.Events[i].Name)
		}
	}
	for i := range idl.Accounts {
		if len(idl.Accounts[i].Discriminator) == 0 {
			idl.Accounts[i].Discriminator = codec.AccountSighash(idl.Accounts[i].Name)
		}
	}
}

func normalizeMetas(metas []IDLAccountMeta) {
	for i := range metas {
		m := &metas[i]
		m.Writable = m.Writable || m.IsMut
		m.Signer = m.Signer || m.IsSigner
		m.Optional = m.Optional || m.IsOptional
		normalizeMetas(m.Accounts)
	}
}

// TypeDef returns the type definition with the given name.
func (idl *IDL) TypeDef(name string) (*IDLTypeDef, bool) {
	for i := range idl.Types {
		if idl.Types[i].Name == name {
			return &idl.Types[i], true
		}
	}
	return nil, false
}
