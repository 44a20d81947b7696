package gen

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/internal/codegen"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/utils"
)

// InstructionsGenerator emits payload structs, key role sets, the instruction
// envelope and typed builders.
type InstructionsGenerator struct {
	*Generator
}

func NewInstructionsGenerator(gen *Generator) *InstructionsGenerator {
	return &InstructionsGenerator{Generator: gen}
}

// KeyRole is one flattened account slot of an instruction.
type KeyRole struct {
	Field    string
	Role     string
	Signer   bool
	Writable bool
	Optional bool
	Docs     []string
}

// InstructionPlan is the resolved naming and layout of one instruction.
type InstructionPlan struct {
	IX            codegen.IDLInstruction
	Name          string // envelope case name
	Payload       string
	Discriminator codec.Discriminator
	Keys          []KeyRole
}

// Generate emits instructions.go content for every instruction in the IDL.
func (g *InstructionsGenerator) Generate() error {
	plans, err := PlanInstructions(g.IDL, g.Options)
	if err != nil {
		return err
	}
	defaults, err := DefaultAccounts(g.IDL)
	if err != nil {
		return err
	}

	g.generateEnvelope(plans)
	g.generateDefaults(defaults)

	for _, p := range plans {
		g.generateInstruction(p)
		if err := g.Err(); err != nil {
			return fmt.Errorf("instruction %s: %w", p.IX.Name, err)
		}
	}
	return nil
}

func (g *InstructionsGenerator) generateEnvelope(plans []InstructionPlan) {
	g.File.Type().Id("Instruction").Interface(
		jen.Id("isInstruction").Params(),
		jen.Id("KeysSchema").Params().Op("*").Qual(pkgAccounts, "Schema"),
	)
	g.File.Line()

	width := jen.Qual(pkgCodec, "WidthAnchor")
	if g.Options.Width == codec.WidthByte {
		width = jen.Qual(pkgCodec, "WidthByte")
	}
	args := []jen.Code{jen.Id("Name"), width}
	for _, p := range plans {
		args = append(args, jen.Line().Add(caseLiteral("Instruction", p.Name, jen.Id(p.Payload+"Discriminator"), p.Payload)))
	}
	if len(plans) > 0 {
		args = append(args, jen.Line())
	}
	g.File.Var().Id("Instructions").Op("=").Qual(pkgCodec, "MustEnvelope").Call(args...)
	g.File.Line()

	ixParam := jen.Id("ix").Id("Instruction")
	g.File.Func().Id("EncodeInstruction").Params(ixParam.Clone()).Params(jen.Index().Byte(), jen.Error()).Block(
		jen.Return(jen.Id("Instructions").Dot("Encode").Call(jen.Id("ix"))),
	)
	g.File.Func().Id("DecodeInstruction").Params(jen.Id("data").Index().Byte()).Params(jen.Id("Instruction"), jen.Error()).Block(
		jen.Return(jen.Id("Instructions").Dot("Decode").Call(jen.Id("data"))),
	)
	g.File.Func().Id("DecodeInstructionStrict").Params(jen.Id("data").Index().Byte()).Params(jen.Id("Instruction"), jen.Error()).Block(
		jen.Return(jen.Id("Instructions").Dot("DecodeStrict").Call(jen.Id("data"))),
	)
	g.File.Func().Id("InstructionName").Params(ixParam.Clone()).String().Block(
		jen.List(jen.Id("name"), jen.Id("_")).Op(":=").Id("Instructions").Dot("Name").Call(jen.Id("ix")),
		jen.Return(jen.Id("name")),
	)
	g.File.Func().Id("Discriminators").Params().Index().Qual(pkgCodec, "Entry").Block(
		jen.Return(jen.Id("Instructions").Dot("Cases").Call()),
	)
	g.File.Line()

	g.File.Func().Id("build").Types(jen.Id("K").Any()).Params(
		jen.Id("keys").Id("K"),
		ixParam.Clone(),
		jen.Id("remaining").Op("...").Op("*").Qual(pkgSolana, "AccountMeta"),
	).Params(jen.Op("*").Qual(pkgSolana, "GenericInstruction"), jen.Error()).Block(
		jen.Return(jen.Qual(pkgInvoke, "Build").Types(jen.Id("K"), jen.Id("Instruction")).Call(
			jen.Id("ProgramID"),
			jen.Id("Instructions"),
			jen.Qual(pkgAccounts, "WithDefaults").Call(jen.Id("keys"), jen.Id("defaults")),
			jen.Id("ix"),
			jen.Id("remaining").Op("..."),
		)),
	)
	g.File.Line()
}

// caseLiteral renders codec.Case[T]{Name: ..., Discriminator: ..., Prototype: (*P)(nil)}.
func caseLiteral(iface, name string, disc jen.Code, payload string) *jen.Statement {
	return jen.Qual(pkgCodec, "Case").Types(jen.Id(iface)).Values(
		jen.Id("Name").Op(":").Lit(name),
		jen.Id("Discriminator").Op(":").Add(disc),
		jen.Id("Prototype").Op(":").Parens(jen.Op("*").Id(payload)).Call(jen.Nil()),
	)
}

func (g *InstructionsGenerator) generateDefaults(defaults map[string]solana.PublicKey) {
	g.File.Comment("defaults fills fixed-address roles left zero by callers.")
	g.File.Var().Id("defaults").Op("=").Map(jen.String()).Qual(pkgSolana, "PublicKey").ValuesFunc(func(grp *jen.Group) {
		for _, role := range sortedKeys(defaults) {
			grp.Line().Lit(role).Op(":").Qual(pkgSolana, "MustPublicKeyFromBase58").Call(jen.Lit(defaults[role].String()))
		}
		if len(defaults) > 0 {
			grp.Line()
		}
	})
	g.File.Line()
}

func (g *InstructionsGenerator) generateInstruction(p InstructionPlan) {
	payload := p.Payload
	keys := p.Payload + "Keys"

	g.Docs(p.IX.Docs)
	g.File.Type().Id(payload).Add(g.Struct(p.IX.Args))
	g.File.Line()

	g.File.Var().Id(payload + "Discriminator").Op("=").Add(DiscriminatorLiteral(p.Discriminator))
	g.File.Line()

	g.File.Type().Id(keys).StructFunc(func(grp *jen.Group) {
		for _, k := range p.Keys {
			for _, d := range FormatDocs(k.Docs) {
				grp.Comment(d)
			}
			grp.Id(k.Field).Qual(pkgSolana, "PublicKey").Tag(map[string]string{"account": k.tag()})
		}
	})
	g.File.Line()

	recv := jen.Params(jen.Op("*").Id(payload))
	g.File.Func().Add(recv.Clone()).Id("isInstruction").Params().Block()
	g.File.Func().Add(recv.Clone()).Id("KeysSchema").Params().Op("*").Qual(pkgAccounts, "Schema").Block(
		jen.Return(jen.Qual(pkgAccounts, "MustSchemaOf").Types(jen.Id(keys)).Call()),
	)
	g.File.Line()

	g.File.Func().Id("New"+FormatTypeName(p.IX.Name)+"Instruction").Params(
		jen.Id("keys").Id(keys),
		jen.Id("args").Id(payload),
		jen.Id("remaining").Op("...").Op("*").Qual(pkgSolana, "AccountMeta"),
	).Params(jen.Op("*").Qual(pkgSolana, "GenericInstruction"), jen.Error()).Block(
		jen.Return(jen.Id("build").Call(jen.Id("keys"), jen.Op("&").Id("args"), jen.Id("remaining").Op("..."))),
	)
	g.File.Line()
}

func (k KeyRole) tag() string {
	tag := k.Role
	if k.Signer {
		tag += ",signer"
	}
	if k.Writable {
		tag += ",writable"
	}
	if k.Optional {
		tag += ",optional"
	}
	return tag
}

// reservedNames are identifiers every generated package declares.
var reservedNames = map[string]bool{
	"Name": true, "ProgramID": true, "Binding": true,
	"Instruction": true, "Instructions": true, "Event": true, "Events": true,
	"Account": true, "Accounts": true,
}

// PlanInstructions resolves payload names, discriminators and flattened key
// roles. With width 1 each instruction takes an override or the first byte of
// its IDL discriminator, and two instructions landing on the same byte is an
// error naming both.
func PlanInstructions(idl *codegen.IDL, opts Options) ([]InstructionPlan, error) {
	opts = opts.withDefaults(idl)
	if opts.Width != codec.WidthByte && opts.Width != codec.WidthAnchor {
		return nil, fmt.Errorf("unsupported discriminator width %d", opts.Width)
	}

	taken := map[string]bool{}
	for _, t := range idl.Types {
		taken[FormatTypeName(t.Name)] = true
	}
	for _, e := range idl.Events {
		taken[FormatTypeName(e.Name)] = true
	}
	for _, a := range idl.Accounts {
		taken[FormatTypeName(a.Name)] = true
	}

	used := map[string]bool{}
	owner := map[string]string{}
	plans := make([]InstructionPlan, 0, len(idl.Instructions))
	for _, ix := range idl.Instructions {
		name := FormatTypeName(ix.Name)
		if used[name] {
			return nil, fmt.Errorf("instruction %s declared twice", name)
		}
		used[name] = true

		payload := name
		if taken[payload] || reservedNames[payload] {
			payload += "Args"
		}

		disc, err := discriminatorFor(ix, opts)
		if err != nil {
			return nil, err
		}
		if prev, dup := owner[string(disc)]; dup {
			return nil, fmt.Errorf("instructions %s and %s share discriminator %v", prev, ix.Name, disc.Ints())
		}
		owner[string(disc)] = ix.Name

		if len(ix.Accounts) == 0 {
			return nil, fmt.Errorf("instruction %s declares no accounts", ix.Name)
		}

		plans = append(plans, InstructionPlan{
			IX:            ix,
			Name:          name,
			Payload:       payload,
			Discriminator: disc,
			Keys:          flattenAccounts(ix.Accounts, ""),
		})
	}
	return plans, nil
}

func discriminatorFor(ix codegen.IDLInstruction, opts Options) (codec.Discriminator, error) {
	if opts.Width == codec.WidthByte {
		for _, key := range []string{ix.Name, utils.ToSnakeCase(ix.Name), FormatTypeName(ix.Name)} {
			if b, ok := opts.Overrides[key]; ok {
				return codec.Discriminator{b}, nil
			}
		}
	}
	if len(ix.Discriminator) < opts.Width {
		return nil, fmt.Errorf("instruction %s: discriminator %v is shorter than %d bytes", ix.Name, ix.Discriminator, opts.Width)
	}
	return codec.Discriminator(ix.Discriminator).Truncate(opts.Width), nil
}

// flattenAccounts expands composite account groups in declaration order.
// Members of a group get the group name as a role prefix; repeated role names
// get a numeric suffix.
func flattenAccounts(metas []codegen.IDLAccountMeta, prefix string) []KeyRole {
	var out []KeyRole
	seen := map[string]int{}
	var walk func(metas []codegen.IDLAccountMeta, prefix string)
	walk = func(metas []codegen.IDLAccountMeta, prefix string) {
		for _, m := range metas {
			role := prefix + utils.ToSnakeCase(m.Name)
			if len(m.Accounts) > 0 {
				walk(m.Accounts, role+"_")
				continue
			}
			seen[role]++
			if n := seen[role]; n > 1 {
				role = fmt.Sprintf("%s_%d", role, n)
			}
			out = append(out, KeyRole{
				Field:    FormatFieldName(role),
				Role:     role,
				Signer:   m.Signer,
				Writable: m.Writable,
				Optional: m.Optional,
				Docs:     m.Docs,
			})
		}
	}
	walk(metas, prefix)
	return out
}

// DefaultAccounts collects roles with a fixed address across all
// instructions: explicit addresses and PDAs whose seeds are all constant.
// Roles that resolve to different addresses in different instructions are
// left out.
func DefaultAccounts(idl *codegen.IDL) (map[string]solana.PublicKey, error) {
	programID, err := solana.PublicKeyFromBase58(idl.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid program address %q: %w", idl.Address, err)
	}

	out := map[string]solana.PublicKey{}
	conflicted := map[string]bool{}
	var walk func(metas []codegen.IDLAccountMeta, prefix string)
	walk = func(metas []codegen.IDLAccountMeta, prefix string) {
		for _, m := range metas {
			role := prefix + utils.ToSnakeCase(m.Name)
			if len(m.Accounts) > 0 {
				walk(m.Accounts, role+"_")
				continue
			}
			addr, ok := fixedAddress(m, programID)
			if !ok || conflicted[role] {
				continue
			}
			if prev, seen := out[role]; seen && !prev.Equals(addr) {
				delete(out, role)
				conflicted[role] = true
				continue
			}
			out[role] = addr
		}
	}
	for _, ix := range idl.Instructions {
		walk(ix.Accounts, "")
	}
	return out, nil
}

func fixedAddress(m codegen.IDLAccountMeta, programID solana.PublicKey) (solana.PublicKey, bool) {
	if m.Address != "" {
		pk, err := solana.PublicKeyFromBase58(m.Address)
		return pk, err == nil
	}
	if m.PDA == nil || len(m.PDA.Seeds) == 0 {
		return solana.PublicKey{}, false
	}

	owner := programID
	if p := m.PDA.Program; p != nil {
		if p.Kind != "const" || len(p.Value) != solana.PublicKeyLength {
			return solana.PublicKey{}, false
		}
		owner = solana.PublicKeyFromBytes(p.Value)
	}
	seeds := make([][]byte, 0, len(m.PDA.Seeds))
	for _, s := range m.PDA.Seeds {
		if s.Kind != "const" {
			return solana.PublicKey{}, false
		}
		seeds = append(seeds, s.Value)
	}
	pk, _, err := solana.FindProgramAddress(seeds, owner)
	return pk, err == nil
}

// GenerateInstructionsFile writes instructions.go.
func GenerateInstructionsFile(idl *codegen.IDL, opts Options, outputDir string) error {
	g := NewGenerator(idl, opts)
	if err := NewInstructionsGenerator(g).Generate(); err != nil {
		return err
	}
	return g.WriteToFile(filepath.Join(outputDir, "instructions.go"))
}
