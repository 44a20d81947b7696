package gen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/internal/codegen"
)

const pkgDecoder = "github.com/lugondev/go-ammix/pkg/decoder"

// ProgramGenerator emits the program identity, error codes and the decoder
// registry hook.
type ProgramGenerator struct {
	*Generator
}

func NewProgramGenerator(gen *Generator) *ProgramGenerator {
	return &ProgramGenerator{Generator: gen}
}

func (g *ProgramGenerator) Generate() error {
	programID, err := solana.PublicKeyFromBase58(g.IDL.Address)
	if err != nil {
		return fmt.Errorf("invalid program address %q: %w", g.IDL.Address, err)
	}

	doc := fmt.Sprintf("Package %s binds the %s program", g.Options.PackageName, g.IDL.Metadata.Name)
	if v := g.IDL.Metadata.Version; v != "" {
		doc += " (IDL version " + v + ")"
	}
	g.File.PackageComment(doc + ".")

	g.File.Const().Id("Name").Op("=").Lit(g.Options.Name)
	g.File.Line()
	g.File.Var().Id("ProgramID").Op("=").Qual(pkgSolana, "MustPublicKeyFromBase58").Call(jen.Lit(programID.String()))
	g.File.Line()

	g.generateErrors()

	g.File.Comment("Binding registers the program with a decoder.Registry.")
	g.File.Func().Id("Binding").Params().Op("*").Qual(pkgDecoder, "Binding").Types(jen.Id("Instruction"), jen.Id("Event")).Block(
		jen.Return(jen.Qual(pkgDecoder, "NewBinding").Call(jen.Id("Name"), jen.Id("ProgramID"), jen.Id("Instructions"), jen.Id("Events"))),
	)
	return g.Err()
}

func (g *ProgramGenerator) generateErrors() {
	if len(g.IDL.Errors) == 0 {
		return
	}

	g.File.Comment("Custom program error codes.")
	g.File.Const().DefsFunc(func(grp *jen.Group) {
		for _, e := range g.IDL.Errors {
			if e.Msg != "" {
				grp.Comment(strings.TrimSpace(e.Msg))
			}
			grp.Id("Err" + FormatTypeName(e.Name)).Uint32().Op("=").Lit(e.Code)
		}
	})
	g.File.Line()

	g.File.Var().Id("errorNames").Op("=").Map(jen.Uint32()).String().ValuesFunc(func(grp *jen.Group) {
		for _, e := range g.IDL.Errors {
			grp.Line().Id("Err" + FormatTypeName(e.Name)).Op(":").Lit(e.Name)
		}
		grp.Line()
	})
	g.File.Line()

	g.File.Comment("ErrorName returns the name of a custom program error code.")
	g.File.Func().Id("ErrorName").Params(jen.Id("code").Uint32()).Params(jen.String(), jen.Bool()).Block(
		jen.List(jen.Id("name"), jen.Id("ok")).Op(":=").Id("errorNames").Index(jen.Id("code")),
		jen.Return(jen.Id("name"), jen.Id("ok")),
	)
	g.File.Line()
}

// GenerateProgramFile writes program.go.
func GenerateProgramFile(idl *codegen.IDL, opts Options, outputDir string) error {
	g := NewGenerator(idl, opts)
	if err := NewProgramGenerator(g).Generate(); err != nil {
		return err
	}
	return g.WriteToFile(filepath.Join(outputDir, "program.go"))
}
