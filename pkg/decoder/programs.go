package decoder

import (
	"github.com/lugondev/go-ammix/pkg/programs/clmm"
	"github.com/lugondev/go-ammix/pkg/programs/cpswap"
	"github.com/lugondev/go-ammix/pkg/programs/damm"
)

// Builtin returns the bindings shipped with the module.
func Builtin() []Program {
	return []Program{
		NewBinding(damm.Name, damm.ProgramID, damm.Instructions, damm.Events),
		NewBinding(clmm.Name, clmm.ProgramID, clmm.Instructions, clmm.Events),
		NewBinding(cpswap.Name, cpswap.ProgramID, cpswap.Instructions, cpswap.Events),
	}
}

// Default returns a registry with every builtin binding registered under its
// canonical program id.
func Default() *Registry {
	r := NewRegistry()
	for _, p := range Builtin() {
		r.Register(p)
	}
	return r
}
