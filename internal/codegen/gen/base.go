// Package gen renders Go bindings for an Anchor IDL using Jennifer. The output
// has the same shape as the hand-written bindings under pkg/programs: an
// instruction envelope, role-tagged key structs and an event decoder.
package gen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/lugondev/go-ammix/internal/codegen"
	"github.com/lugondev/go-ammix/pkg/codec"
	"github.com/lugondev/go-ammix/pkg/utils"
)

// Import paths referenced by generated code.
const (
	pkgSolana   = "github.com/gagliardetto/solana-go"
	pkgBinary   = "github.com/gagliardetto/binary"
	pkgCodec    = "github.com/lugondev/go-ammix/pkg/codec"
	pkgAccounts = "github.com/lugondev/go-ammix/pkg/accounts"
	pkgInvoke   = "github.com/lugondev/go-ammix/pkg/invoke"
)

const header = "Code generated by ammix codegen. DO NOT EDIT."

// Options controls a generation run.
type Options struct {
	// PackageName is the Go package clause of every generated file.
	PackageName string
	// Name is the program name registered with the codecs. Defaults to the
	// snake-cased IDL name.
	Name string
	// Width is the instruction discriminator width: 8 for Anchor sighashes or
	// 1 for programs that dispatch on the first byte. Defaults to 8.
	Width int
	// Overrides pins single-byte discriminators by instruction name. Only used
	// with Width 1.
	Overrides map[string]uint8
}

func (o Options) withDefaults(idl *codegen.IDL) Options {
	if o.Name == "" {
		o.Name = utils.ToSnakeCase(idl.Metadata.Name)
	}
	if o.PackageName == "" {
		o.PackageName = utils.ToSnakeCase(o.Name)
	}
	if o.Width == 0 {
		o.Width = codec.WidthAnchor
	}
	return o
}

// Generator is the base generator with shared utilities.
type Generator struct {
	IDL     *codegen.IDL
	Options Options
	File    *jen.File

	err error
}

// NewGenerator creates a generator writing one file of the given package.
func NewGenerator(idl *codegen.IDL, opts Options) *Generator {
	opts = opts.withDefaults(idl)
	f := jen.NewFile(opts.PackageName)
	f.HeaderComment(header)
	f.ImportName(pkgSolana, "solana")
	f.ImportAlias(pkgBinary, "bin")
	f.ImportName(pkgCodec, "codec")
	f.ImportName(pkgAccounts, "accounts")
	f.ImportName(pkgInvoke, "invoke")
	return &Generator{IDL: idl, Options: opts, File: f}
}

// Err returns the first error recorded while resolving types.
func (g *Generator) Err() error {
	return g.err
}

func (g *Generator) fail(format string, args ...any) {
	if g.err == nil {
		g.err = fmt.Errorf(format, args...)
	}
}

// ToPascalCase converts an IDL identifier to an exported Go name.
func ToPascalCase(s string) string {
	return utils.ToPascalCase(s)
}

// ToCamelCase converts an IDL identifier to an unexported Go name.
func ToCamelCase(s string) string {
	return utils.ToCamelCase(s)
}

// ResolveType maps an IDL type to a Go type. Options are only valid as the
// direct type of a field (see FieldTag); nested ones are recorded as errors.
func (g *Generator) ResolveType(typ *codegen.IDLType) *jen.Statement {
	return g.resolve(typ, true)
}

func (g *Generator) resolve(typ *codegen.IDLType, field bool) *jen.Statement {
	switch {
	case typ == nil:
		g.fail("missing type")
		return jen.Any()
	case typ.Defined != nil:
		return jen.Id(FormatTypeName(typ.Defined.Name))
	case typ.Option != nil || typ.Coption != nil:
		inner := typ.Option
		if inner == nil {
			inner = typ.Coption
		}
		if !field {
			g.fail("option of %s is only supported as a field type", describe(inner))
		}
		return jen.Op("*").Add(g.resolve(inner, false))
	case typ.Vec != nil:
		return jen.Index().Add(g.resolve(typ.Vec, false))
	case typ.Array != nil:
		return jen.Index(jen.Lit(typ.Array.Len)).Add(g.resolve(&typ.Array.Type, false))
	case len(typ.Tuple) > 0:
		fields := make([]jen.Code, len(typ.Tuple))
		for i := range typ.Tuple {
			fields[i] = jen.Id(fmt.Sprintf("Field%d", i)).Add(g.resolve(&typ.Tuple[i], false))
		}
		return jen.Struct(fields...)
	case typ.Struct != nil:
		return g.Struct(typ.Struct.Fields)
	case typ.Enum != nil:
		g.fail("inline enums must be declared in the types section")
		return jen.Any()
	case typ.Kind != "":
		return g.resolvePrimitiveType(typ.Kind)
	}
	g.fail("empty type")
	return jen.Any()
}

func describe(typ *codegen.IDLType) string {
	switch {
	case typ == nil:
		return "nothing"
	case typ.Kind != "":
		return typ.Kind
	case typ.Defined != nil:
		return typ.Defined.Name
	case typ.Vec != nil:
		return "vec"
	case typ.Array != nil:
		return "array"
	}
	return "composite"
}

func (g *Generator) resolvePrimitiveType(kind string) *jen.Statement {
	switch kind {
	case "u8":
		return jen.Uint8()
	case "u16":
		return jen.Uint16()
	case "u32":
		return jen.Uint32()
	case "u64":
		return jen.Uint64()
	case "u128":
		return jen.Qual(pkgCodec, "U128")
	case "i8":
		return jen.Int8()
	case "i16":
		return jen.Int16()
	case "i32":
		return jen.Int32()
	case "i64":
		return jen.Int64()
	case "i128":
		return jen.Qual(pkgBinary, "Int128")
	case "f32":
		return jen.Float32()
	case "f64":
		return jen.Float64()
	case "bool":
		return jen.Bool()
	case "string":
		return jen.String()
	case "bytes":
		return jen.Index().Byte()
	case "pubkey", "publicKey":
		return jen.Qual(pkgSolana, "PublicKey")
	}
	// Legacy IDLs reference defined types by bare name.
	return jen.Id(FormatTypeName(kind))
}

// FieldTag returns the struct tags of a field: the IDL name for JSON and the
// borsh option flavor, if any.
func FieldTag(field codegen.IDLField) map[string]string {
	tags := map[string]string{}
	if field.Name != "" {
		tags["json"] = field.Name
	}
	switch {
	case field.Type.Option != nil:
		tags["bin"] = "optional"
	case field.Type.Coption != nil:
		tags["bin"] = "coption"
	}
	return tags
}

// Fields renders struct fields into grp. Unnamed tuple members become FieldN.
func (g *Generator) Fields(grp *jen.Group, fields []codegen.IDLField) {
	for i, field := range fields {
		for _, d := range FormatDocs(field.Docs) {
			grp.Comment(d)
		}
		name := FormatFieldName(field.Name)
		if name == "" {
			name = fmt.Sprintf("Field%d", i)
		}
		stmt := grp.Id(name).Add(g.ResolveType(&field.Type))
		if tags := FieldTag(field); len(tags) > 0 {
			stmt.Tag(tags)
		}
	}
}

// Struct renders a struct type literal with the given fields.
func (g *Generator) Struct(fields []codegen.IDLField) *jen.Statement {
	return jen.StructFunc(func(grp *jen.Group) { g.Fields(grp, fields) })
}

// Docs emits doc comment lines ahead of the next declaration.
func (g *Generator) Docs(docs []string) {
	for _, d := range FormatDocs(docs) {
		g.File.Comment(d)
	}
}

// Render returns the formatted source of the file.
func (g *Generator) Render() (string, error) {
	if g.err != nil {
		return "", g.err
	}
	var buf bytes.Buffer
	if err := g.File.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteToFile renders the file to path.
func (g *Generator) WriteToFile(path string) error {
	if g.err != nil {
		return g.err
	}
	return g.File.Save(path)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
