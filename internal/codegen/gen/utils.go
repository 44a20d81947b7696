package gen

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/lugondev/go-ammix/internal/codegen"
)

// FormatDocs turns IDL doc lines into Go comment lines, dropping blanks.
func FormatDocs(docs []string) []string {
	if len(docs) == 0 {
		return nil
	}

	formatted := make([]string, 0, len(docs))
	for _, doc := range docs {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}
		if !strings.HasPrefix(doc, "//") {
			doc = "// " + doc
		}
		formatted = append(formatted, doc)
	}
	return formatted
}

// DiscriminatorLiteral renders codec.Discriminator{...}.
func DiscriminatorLiteral(disc []byte) *jen.Statement {
	values := make([]jen.Code, len(disc))
	for i, b := range disc {
		values[i] = jen.Lit(int(b))
	}
	return jen.Qual(pkgCodec, "Discriminator").Values(values...)
}

func FormatFieldName(name string) string {
	return ToPascalCase(name)
}

func FormatTypeName(name string) string {
	return ToPascalCase(name)
}

// FormatVariantName joins an enum and variant name: Status + Pending gives
// StatusPending.
func FormatVariantName(enumName, variantName string) string {
	return enumName + FormatTypeName(variantName)
}

// IsSimpleEnum reports whether no variant carries fields. Simple enums are
// rendered as uint8 constants.
func IsSimpleEnum(enum *codegen.IDLEnumType) bool {
	if enum == nil {
		return false
	}
	for _, v := range enum.Variants {
		if len(v.Fields) > 0 {
			return false
		}
	}
	return true
}
