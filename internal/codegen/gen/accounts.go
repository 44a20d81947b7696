package gen

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/lugondev/go-ammix/internal/codegen"
	"github.com/lugondev/go-ammix/pkg/codec"
)

// AccountsGenerator emits decoders for program-owned account state.
type AccountsGenerator struct {
	*Generator
}

func NewAccountsGenerator(gen *Generator) *AccountsGenerator {
	return &AccountsGenerator{Generator: gen}
}

// Generate emits accounts.go content: an 8-byte envelope over every account
// type, so raw account data decodes to its typed state.
func (g *AccountsGenerator) Generate() error {
	g.File.Type().Id("Account").Interface(jen.Id("isAccount").Params())
	g.File.Line()

	cases := []jen.Code{jen.Id("Name"), jen.Qual(pkgCodec, "WidthAnchor")}
	for _, acc := range g.IDL.Accounts {
		if len(acc.Discriminator) != codec.WidthAnchor {
			return fmt.Errorf("account %s: discriminator %v is not %d bytes", acc.Name, acc.Discriminator, codec.WidthAnchor)
		}
		typeName := FormatTypeName(acc.Name)
		cases = append(cases, jen.Line().Add(caseLiteral("Account", typeName, DiscriminatorLiteral(acc.Discriminator), typeName)))
	}
	cases = append(cases, jen.Line())
	g.File.Var().Id("Accounts").Op("=").Qual(pkgCodec, "MustEnvelope").Call(cases...)
	g.File.Line()

	g.File.Comment("DecodeAccount decodes account data. Bytes past the layout are ignored;")
	g.File.Comment("accounts are often allocated with spare room.")
	g.File.Func().Id("DecodeAccount").Params(jen.Id("data").Index().Byte()).Params(jen.Id("Account"), jen.Error()).Block(
		jen.Return(jen.Id("Accounts").Dot("Decode").Call(jen.Id("data"))),
	)
	g.File.Func().Id("AccountName").Params(jen.Id("acc").Id("Account")).String().Block(
		jen.List(jen.Id("name"), jen.Id("_")).Op(":=").Id("Accounts").Dot("Name").Call(jen.Id("acc")),
		jen.Return(jen.Id("name")),
	)
	g.File.Line()

	for _, acc := range g.IDL.Accounts {
		typeName := FormatTypeName(acc.Name)
		var inline []codegen.IDLField
		if acc.Type.Struct != nil {
			inline = acc.Type.Struct.Fields
		}
		if err := g.layout(typeName, acc.Docs, inline); err != nil {
			return fmt.Errorf("account %s: %w", acc.Name, err)
		}
		g.File.Func().Params(jen.Op("*").Id(typeName)).Id("isAccount").Params().Block()
		g.File.Line()
	}
	return g.Err()
}

// GenerateAccountsFile writes accounts.go.
func GenerateAccountsFile(idl *codegen.IDL, opts Options, outputDir string) error {
	g := NewGenerator(idl, opts)
	if err := NewAccountsGenerator(g).Generate(); err != nil {
		return err
	}
	return g.WriteToFile(filepath.Join(outputDir, "accounts.go"))
}
