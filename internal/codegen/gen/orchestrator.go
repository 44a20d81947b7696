package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lugondev/go-ammix/internal/codegen"
)

type fileGenerator interface {
	Generate() error
}

// Render generates every file for idl in memory, keyed by file name. Nothing
// is returned unless all files render.
func Render(idl *codegen.IDL, opts Options) (map[string]string, error) {
	if err := validateIDL(idl); err != nil {
		return nil, fmt.Errorf("invalid IDL: %w", err)
	}

	out := make(map[string]string)
	for _, name := range GetGeneratedFiles(idl) {
		g := NewGenerator(idl, opts)
		var fg fileGenerator
		switch name {
		case "program.go":
			fg = NewProgramGenerator(g)
		case "types.go":
			fg = NewTypesGenerator(g)
		case "accounts.go":
			fg = NewAccountsGenerator(g)
		case "instructions.go":
			fg = NewInstructionsGenerator(g)
		case "events.go":
			fg = NewEventsGenerator(g)
		}
		if err := fg.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", name, err)
		}
		src, err := g.Render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		out[name] = src
	}
	return out, nil
}

// GenerateAll renders the bindings for idl and writes them to outputDir.
func GenerateAll(idl *codegen.IDL, opts Options, outputDir string) error {
	files, err := Render(idl, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, name := range sortedKeys(files) {
		if err := os.WriteFile(filepath.Join(outputDir, name), []byte(files[name]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}

func validateIDL(idl *codegen.IDL) error {
	if idl == nil {
		return fmt.Errorf("IDL is nil")
	}

	if idl.Address == "" {
		return fmt.Errorf("program address is required")
	}

	if idl.Metadata.Name == "" {
		return fmt.Errorf("program name is required")
	}

	return nil
}

// GetGeneratedFiles returns the files GenerateAll writes for idl. Program,
// instruction and event files are always present so every package satisfies
// the decoder binding.
func GetGeneratedFiles(idl *codegen.IDL) []string {
	files := []string{"program.go"}

	if len(idl.Types) > 0 {
		files = append(files, "types.go")
	}

	if len(idl.Accounts) > 0 {
		files = append(files, "accounts.go")
	}

	return append(files, "instructions.go", "events.go")
}

// CleanOutputDir removes all generated files from the output directory.
func CleanOutputDir(outputDir string) error {
	for _, file := range []string{"program.go", "types.go", "accounts.go", "instructions.go", "events.go"} {
		filePath := filepath.Join(outputDir, file)
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", file, err)
		}
	}

	return nil
}
