package decoder

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/programs/clmm"
	"github.com/lugondev/go-ammix/pkg/programs/damm"
)

func TestDecodeLogs(t *testing.T) {
	swap := &damm.EvtSwap{Pool: key(1), HasReferral: true, Params: damm.SwapParameters{AmountIn: 10, MinimumAmountOut: 9}}
	swapData, err := damm.Events.Encode(swap)
	require.NoError(t, err)

	created := &clmm.PoolCreatedEvent{TokenMint0: key(2), TokenMint1: key(3), TickSpacing: 60}
	createdData, err := clmm.Events.Encode(created)
	require.NoError(t, err)

	b64 := base64.StdEncoding.EncodeToString
	router := "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	logs := []string{
		"Program " + router + " invoke [1]",
		"Program " + damm.ProgramID.String() + " invoke [2]",
		"Program data: " + b64(swapData),
		"Program " + damm.ProgramID.String() + " success",
		"Program data: " + b64([]byte("router event")),
		"Program " + router + " success",
		"Program " + clmm.ProgramID.String() + " invoke [1]",
		"Program data: " + b64(createdData),
		"Program data: " + b64([]byte{1, 2, 3, 4, 5, 6, 7, 8}),
		"Program " + clmm.ProgramID.String() + " success",
	}

	events, err := Default().DecodeLogs(logs)
	require.Len(t, events, 2)

	assert.Equal(t, "EvtSwap", events[0].Name)
	assert.Equal(t, swap, events[0].Data)
	assert.Equal(t, []int{0, 0}, events[0].Path)

	assert.Equal(t, "clmm", events[1].Program)
	assert.Equal(t, created, events[1].Data)
	assert.Equal(t, []int{1}, events[1].Path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownDiscriminator))
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 3, decodeErr.Index)
}
