package gen

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/lugondev/go-ammix/internal/codegen"
)

// TypesGenerator generates custom type definitions (structs and enums).
type TypesGenerator struct {
	*Generator
}

func NewTypesGenerator(gen *Generator) *TypesGenerator {
	return &TypesGenerator{Generator: gen}
}

// Generate emits every entry of the types section.
func (g *TypesGenerator) Generate() error {
	for _, typeDef := range g.IDL.Types {
		if len(typeDef.Generics) > 0 {
			return fmt.Errorf("type %s: generic types are not supported", typeDef.Name)
		}
		g.Docs(typeDef.Docs)
		g.generateType(typeDef)
		if err := g.Err(); err != nil {
			return fmt.Errorf("type %s: %w", typeDef.Name, err)
		}
	}
	return nil
}

func (g *TypesGenerator) generateType(typeDef codegen.IDLTypeDef) {
	typeName := FormatTypeName(typeDef.Name)
	switch {
	case typeDef.Type.Struct != nil:
		g.File.Type().Id(typeName).Add(g.Struct(typeDef.Type.Struct.Fields))
	case typeDef.Type.Enum != nil && IsSimpleEnum(typeDef.Type.Enum):
		g.generateSimpleEnum(typeName, typeDef.Type.Enum)
	case typeDef.Type.Enum != nil:
		g.generateComplexEnum(typeName, typeDef.Type.Enum)
	default:
		g.File.Type().Id(typeName).Op("=").Add(g.ResolveType(&typeDef.Type))
	}
	g.File.Line()
}

// generateSimpleEnum renders a fieldless enum as a uint8 with named values:
//
//	type Status uint8
//
//	const (
//		StatusPending Status = 0
//		StatusActive  Status = 1
//	)
func (g *TypesGenerator) generateSimpleEnum(typeName string, enum *codegen.IDLEnumType) {
	g.File.Type().Id(typeName).Uint8()

	consts := make([]jen.Code, len(enum.Variants))
	for i, v := range enum.Variants {
		consts[i] = jen.Id(FormatVariantName(typeName, v.Name)).Id(typeName).Op("=").Lit(i)
	}
	g.File.Const().Defs(consts...)

	g.stringMethod(typeName, jen.Id("e"), enum.Variants)
}

// generateComplexEnum renders an enum with payloads in the borsh enum layout
// of the binary package: a BorshEnum tag followed by one field per variant,
// of which only the selected one is encoded.
//
//	type Action struct {
//		Enum     bin.BorshEnum `borsh_enum:"true"`
//		Transfer ActionTransfer
//		Close    bin.EmptyVariant
//	}
func (g *TypesGenerator) generateComplexEnum(typeName string, enum *codegen.IDLEnumType) {
	if len(enum.Variants) > 256 {
		g.fail("enum has %d variants", len(enum.Variants))
		return
	}

	g.File.Type().Id(typeName).StructFunc(func(grp *jen.Group) {
		grp.Id("Enum").Qual(pkgBinary, "BorshEnum").Tag(map[string]string{"borsh_enum": "true"})
		for _, v := range enum.Variants {
			name := FormatTypeName(v.Name)
			if name == "Enum" {
				g.fail("variant name %q collides with the enum tag field", v.Name)
			}
			if len(v.Fields) == 0 {
				grp.Id(name).Qual(pkgBinary, "EmptyVariant")
				continue
			}
			grp.Id(name).Id(FormatVariantName(typeName, v.Name))
		}
	})

	for _, v := range enum.Variants {
		if len(v.Fields) == 0 {
			continue
		}
		g.File.Line()
		g.File.Type().Id(FormatVariantName(typeName, v.Name)).Add(g.Struct(v.Fields))
	}

	g.File.Line()
	g.stringMethod(typeName, jen.Id("e").Dot("Enum"), enum.Variants)
}

func (g *TypesGenerator) stringMethod(typeName string, tag *jen.Statement, variants []codegen.IDLEnumVariant) {
	cases := make([]jen.Code, 0, len(variants)+1)
	for i, v := range variants {
		cases = append(cases, jen.Case(jen.Lit(i)).Block(jen.Return(jen.Lit(v.Name))))
	}
	cases = append(cases, jen.Default().Block(
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(typeName+"(%d)"), tag.Clone())),
	))

	g.File.Func().Params(jen.Id("e").Id(typeName)).Id("String").Params().String().Block(
		jen.Switch(tag).Block(cases...),
	)
}

// GenerateTypesFile writes types.go.
func GenerateTypesFile(idl *codegen.IDL, opts Options, outputDir string) error {
	g := NewGenerator(idl, opts)
	if err := NewTypesGenerator(g).Generate(); err != nil {
		return err
	}
	return g.WriteToFile(filepath.Join(outputDir, "types.go"))
}
