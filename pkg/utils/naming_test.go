package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		in, pascal, camel, snake string
	}{
		{"swap_base_input", "SwapBaseInput", "swapBaseInput", "swap_base_input"},
		{"swapBaseInput", "SwapBaseInput", "swapBaseInput", "swap_base_input"},
		{"swap_v2", "SwapV2", "swapV2", "swap_v2"},
		{"openPositionWithToken22Nft", "OpenPositionWithToken22Nft", "openPositionWithToken22Nft", "open_position_with_token22_nft"},
		{"token_0_vault", "Token0Vault", "token0Vault", "token_0_vault"},
		{"EvtSwap", "EvtSwap", "evtSwap", "evt_swap"},
		{"USD", "Usd", "usd", "usd"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.pascal, ToPascalCase(tt.in))
			assert.Equal(t, tt.camel, ToCamelCase(tt.in))
			assert.Equal(t, tt.snake, ToSnakeCase(tt.in))
		})
	}
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"pool", "LP", "mint"}, SplitWords("pool-LP mint"))
	assert.Equal(t, []string{"NFTOwner"}, SplitWords("NFTOwner"))
	assert.Nil(t, SplitWords("__"))
}
