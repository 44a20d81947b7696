package log

import (
	"encoding/base64"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	router = "JUP6LkbZbjS1jKKwapdHNy74zcZ3tLUZoi5QNyVTaV4"
	amm    = "cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG"
	token  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	budget = "ComputeBudget111111111111111111111111111111"
)

var (
	innerPayload = []byte{27, 60, 21, 213, 138, 170, 187, 147, 1, 2, 3}
	routerEvent  = []byte{9, 9, 9}
)

func swapLogs() []string {
	b64 := base64.StdEncoding.EncodeToString
	return []string{
		"Program " + budget + " invoke [1]",
		"Program " + budget + " success",
		"Program " + router + " invoke [1]",
		"Program log: Instruction: Route",
		"Program " + amm + " invoke [2]",
		"Program log: Instruction: Swap",
		"Program " + token + " invoke [3]",
		"Program log: Instruction: TransferChecked",
		"Program " + token + " consumed 6147 of 180000 compute units",
		"Program " + token + " success",
		"Program data: " + b64(innerPayload),
		"Program " + amm + " consumed 42000 of 190000 compute units",
		"Program " + amm + " success",
		"Program " + amm + " invoke [2]",
		"Program data: " + b64(innerPayload[:4]) + " " + b64(innerPayload[4:]),
		"Program " + amm + " success",
		"Program data: " + b64(routerEvent),
		"Program " + router + " consumed 80000 of 199850 compute units",
		"Program " + router + " success",
	}
}

func TestParse(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name    string
		log     string
		want    LogType
		program string
	}{
		{"invoke", "Program " + amm + " invoke [2]", LogTypeInvoke, amm},
		{"success", "Program " + amm + " success", LogTypeSuccess, amm},
		{"failed", "Program " + amm + " failed: custom program error: 0x1771", LogTypeFailed, amm},
		{"data", "Program data: AQID", LogTypeData, ""},
		{"log", "Program log: Instruction: Swap", LogTypeLog, ""},
		{"return", "Program return: " + amm + " AQID", LogTypeReturn, amm},
		{"compute", "Program " + amm + " consumed 42000 of 190000 compute units", LogTypeComputeUnits, ""},
		{"unknown", "Program is not deployed", LogTypeUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Parse(tt.log)
			assert.Equal(t, tt.want, got.Type, got.Type.String())
			assert.Equal(t, tt.program, got.ProgramID)
			assert.Equal(t, tt.log, got.RawLog)
		})
	}

	assert.Equal(t, 2, p.Parse("Program "+amm+" invoke [2]").StackHeight)
	assert.Equal(t, []byte{1, 2, 3}, p.Parse("Program data: AQID").Data)
	assert.Nil(t, p.Parse("Program data: !!!").Data)
	assert.Equal(t, uint64(42000), *p.Parse("Program x consumed 42000 of 190000 compute units").ComputeUnits)
}

func TestExtractProgramData(t *testing.T) {
	p := NewParser()
	data := p.ExtractProgramData(swapLogs())
	require.Len(t, data, 3)
	assert.Equal(t, innerPayload, data[0])
	assert.Equal(t, innerPayload, data[1])
	assert.Equal(t, routerEvent, data[2])

	logs := p.ExtractProgramLogs(swapLogs())
	assert.Equal(t, []string{"Instruction: Route", "Instruction: Swap", "Instruction: TransferChecked"}, logs)
}

func TestExtractProgramDataByProgram(t *testing.T) {
	got := NewParser().ExtractProgramDataByProgram(swapLogs())
	require.Len(t, got, 3)

	assert.Equal(t, solana.MustPublicKeyFromBase58(amm), got[0].ProgramID)
	assert.Equal(t, InstructionPath{1, 0}, got[0].Path)
	assert.Equal(t, innerPayload, got[0].Data)

	assert.Equal(t, solana.MustPublicKeyFromBase58(amm), got[1].ProgramID)
	assert.Equal(t, InstructionPath{1, 1}, got[1].Path)

	assert.Equal(t, solana.MustPublicKeyFromBase58(router), got[2].ProgramID)
	assert.Equal(t, InstructionPath{1}, got[2].Path)
}

func TestFilterByInstructionPath(t *testing.T) {
	p := NewParser()

	assert.Equal(t, []string{
		"Program log: Instruction: Swap",
		"Program data: " + base64.StdEncoding.EncodeToString(innerPayload),
	}, p.FilterByInstructionPath(swapLogs(), InstructionPath{1, 0}))

	assert.Equal(t, []string{"Program log: Instruction: TransferChecked"},
		p.FilterByInstructionPath(swapLogs(), InstructionPath{1, 0, 0}))

	assert.Empty(t, p.FilterByInstructionPath(swapLogs(), InstructionPath{0}))
}

func TestInstructionNames(t *testing.T) {
	names := NewParser().InstructionNames(swapLogs())
	assert.Equal(t, map[string]string{
		"[1]":       "Route",
		"[1, 0]":    "Swap",
		"[1, 0, 0]": "TransferChecked",
	}, names)
}

func TestComputeUnits(t *testing.T) {
	total, err := NewParser().ComputeUnits(swapLogs())
	require.NoError(t, err)
	assert.Equal(t, uint64(80000), total)
}

func TestInstructionPath(t *testing.T) {
	path := InstructionPath{1, 0}
	assert.Equal(t, "[1, 0]", path.String())
	assert.Equal(t, "[]", InstructionPath{}.String())
	assert.Equal(t, []int{1, 0}, path.Ints())
	assert.True(t, InstructionPath{1}.IsParentOf(path))
	assert.False(t, path.IsParentOf(InstructionPath{1}))
	assert.False(t, InstructionPath{0}.IsParentOf(path))
	assert.True(t, path.Equals(InstructionPath{1, 0}))
}

func TestWalkManyInnerInstructions(t *testing.T) {
	logs := []string{"Program " + router + " invoke [1]"}
	for range 300 {
		logs = append(logs, "Program "+token+" invoke [2]", "Program "+token+" success")
	}
	logs = append(logs, "Program "+router+" success")

	var last InstructionPath
	NewParser().Walk(logs, func(parsed *ParsedLog, frame Frame) {
		if parsed.Type == LogTypeInvoke {
			last = frame.Path
		}
	})
	assert.Equal(t, InstructionPath{0, 299}, last)
	assert.Equal(t, []int{0, 299}, last.Ints())
}
