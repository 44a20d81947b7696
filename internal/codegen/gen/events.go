package gen

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"

	"github.com/lugondev/go-ammix/internal/codegen"
	"github.com/lugondev/go-ammix/pkg/codec"
)

// EventsGenerator emits the event sum type and its decoder.
type EventsGenerator struct {
	*Generator
}

func NewEventsGenerator(gen *Generator) *EventsGenerator {
	return &EventsGenerator{Generator: gen}
}

// Generate emits events.go content. Events of 0.30+ IDLs reuse the struct
// from the types section; legacy events carry their fields inline.
func (g *EventsGenerator) Generate() error {
	g.File.Type().Id("Event").Interface(jen.Id("isEvent").Params())
	g.File.Line()

	cases := []jen.Code{jen.Id("Name")}
	for _, ev := range g.IDL.Events {
		if len(ev.Discriminator) != codec.WidthAnchor {
			return fmt.Errorf("event %s: discriminator %v is not %d bytes", ev.Name, ev.Discriminator, codec.WidthAnchor)
		}
		typeName := FormatTypeName(ev.Name)
		cases = append(cases, jen.Line().Add(caseLiteral("Event", typeName, DiscriminatorLiteral(ev.Discriminator), typeName)))
	}
	if len(g.IDL.Events) > 0 {
		cases = append(cases, jen.Line())
	}
	g.File.Var().Id("Events").Op("=").Qual(pkgCodec, "MustEventDecoder").Call(cases...)
	g.File.Line()

	g.File.Func().Id("DecodeEvent").Params(jen.Id("data").Index().Byte()).Params(jen.Id("Event"), jen.Error()).Block(
		jen.Return(jen.Id("Events").Dot("Decode").Call(jen.Id("data"))),
	)
	g.File.Func().Id("DecodeEventCPI").Params(jen.Id("data").Index().Byte()).Params(jen.Id("Event"), jen.Error()).Block(
		jen.Return(jen.Id("Events").Dot("DecodeCPI").Call(jen.Id("data"))),
	)
	g.File.Func().Id("EventName").Params(jen.Id("ev").Id("Event")).String().Block(
		jen.List(jen.Id("name"), jen.Id("_")).Op(":=").Id("Events").Dot("Name").Call(jen.Id("ev")),
		jen.Return(jen.Id("name")),
	)
	g.File.Line()

	for _, ev := range g.IDL.Events {
		typeName := FormatTypeName(ev.Name)
		if err := g.layout(typeName, ev.Docs, ev.Fields); err != nil {
			return fmt.Errorf("event %s: %w", ev.Name, err)
		}
		g.File.Func().Params(jen.Op("*").Id(typeName)).Id("isEvent").Params().Block()
		g.File.Line()
	}
	return g.Err()
}

// layout emits the struct of a tagged type unless the types section already
// declares it.
func (g *Generator) layout(typeName string, docs []string, inline []codegen.IDLField) error {
	if len(inline) > 0 {
		g.Docs(docs)
		g.File.Type().Id(typeName).Add(g.Struct(inline))
		g.File.Line()
		return g.Err()
	}
	for _, t := range g.IDL.Types {
		if FormatTypeName(t.Name) != typeName {
			continue
		}
		if t.Type.Struct == nil {
			return fmt.Errorf("type %s is not a struct", t.Name)
		}
		return nil
	}
	return fmt.Errorf("no layout in the types section")
}

// GenerateEventsFile writes events.go.
func GenerateEventsFile(idl *codegen.IDL, opts Options, outputDir string) error {
	g := NewGenerator(idl, opts)
	if err := NewEventsGenerator(g).Generate(); err != nil {
		return err
	}
	return g.WriteToFile(filepath.Join(outputDir, "events.go"))
}
