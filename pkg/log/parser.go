// Package log parses Solana transaction log messages.
//
// Events emitted with emit! appear as "Program data: <base64>" lines. The
// parser tracks the invoke stack so each payload can be attributed to the
// program that logged it:
//
//	parser := log.NewParser()
//	for _, d := range parser.ExtractProgramDataByProgram(logMessages) {
//	    fmt.Println(d.ProgramID, d.Path, len(d.Data))
//	}
package log

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// LogType represents the type of a log message.
type LogType int

const (
	LogTypeUnknown LogType = iota
	// LogTypeInvoke is a "Program X invoke [N]" message.
	LogTypeInvoke
	LogTypeSuccess
	LogTypeFailed
	// LogTypeData is a "Program data: BASE64..." message.
	LogTypeData
	LogTypeLog
	LogTypeComputeUnits
	// LogTypeReturn is a "Program return: X BASE64" message.
	LogTypeReturn
)

func (lt LogType) String() string {
	switch lt {
	case LogTypeInvoke:
		return "Invoke"
	case LogTypeSuccess:
		return "Success"
	case LogTypeFailed:
		return "Failed"
	case LogTypeData:
		return "Data"
	case LogTypeLog:
		return "Log"
	case LogTypeComputeUnits:
		return "ComputeUnits"
	case LogTypeReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// ParsedLog is one log message with its extracted fields.
type ParsedLog struct {
	Type LogType

	// StackHeight is the 1-indexed invoke depth. Set for invoke messages only.
	StackHeight int

	// ProgramID is set for invoke, success, failed and return messages.
	ProgramID string

	// Data holds the decoded payload of data and return messages. A data line
	// may carry several space separated chunks; they are concatenated.
	Data []byte

	Message string

	ComputeUnits *uint64

	RawLog string
}

// LogParser parses Solana transaction logs. It is stateless and safe for
// concurrent use.
type LogParser struct {
	patterns *logPatterns
}

type logPatterns struct {
	invoke       *regexp.Regexp
	success      *regexp.Regexp
	failed       *regexp.Regexp
	data         *regexp.Regexp
	ret          *regexp.Regexp
	log          *regexp.Regexp
	computeUnits *regexp.Regexp
}

var defaultPatterns = &logPatterns{
	invoke:       regexp.MustCompile(`^Program (\S+) invoke \[(\d+)\]`),
	success:      regexp.MustCompile(`^Program (\S+) success`),
	failed:       regexp.MustCompile(`^Program (\S+) failed`),
	data:         regexp.MustCompile(`^Program data: (.+)$`),
	ret:          regexp.MustCompile(`^Program return: (\S+) (\S*)$`),
	log:          regexp.MustCompile(`^Program log: (.*)$`),
	computeUnits: regexp.MustCompile(`consumed (\d+) of \d+ compute units`),
}

func NewParser() *LogParser {
	return &LogParser{patterns: defaultPatterns}
}

// Parse parses a single log message.
func (p *LogParser) Parse(logMessage string) *ParsedLog {
	result := &ParsedLog{
		Type:   LogTypeUnknown,
		RawLog: logMessage,
	}

	if matches := p.patterns.invoke.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeInvoke
		result.ProgramID = matches[1]
		result.StackHeight, _ = strconv.Atoi(matches[2])
		return result
	}

	if matches := p.patterns.success.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeSuccess
		result.ProgramID = matches[1]
		return result
	}

	if matches := p.patterns.failed.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeFailed
		result.ProgramID = matches[1]
		return result
	}

	if matches := p.patterns.data.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeData
		result.Data = decodeChunks(matches[1])
		return result
	}

	if matches := p.patterns.ret.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeReturn
		result.ProgramID = matches[1]
		result.Data = decodeChunks(matches[2])
		return result
	}

	if matches := p.patterns.log.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeLog
		result.Message = matches[1]
		return result
	}

	if matches := p.patterns.computeUnits.FindStringSubmatch(logMessage); matches != nil {
		result.Type = LogTypeComputeUnits
		if cu, err := strconv.ParseUint(matches[1], 10, 64); err == nil {
			result.ComputeUnits = &cu
		}
		return result
	}

	return result
}

// decodeChunks returns nil when any chunk is not valid base64.
func decodeChunks(s string) []byte {
	var out []byte
	for _, chunk := range strings.Fields(s) {
		decoded, err := base64.StdEncoding.DecodeString(chunk)
		if err != nil {
			return nil
		}
		out = append(out, decoded...)
	}
	return out
}

func (p *LogParser) ParseAll(logMessages []string) []*ParsedLog {
	results := make([]*ParsedLog, 0, len(logMessages))
	for _, log := range logMessages {
		results = append(results, p.Parse(log))
	}
	return results
}

// ExtractProgramData returns every "Program data:" payload in log order,
// regardless of the emitting program.
func (p *LogParser) ExtractProgramData(logMessages []string) [][]byte {
	var data [][]byte
	for _, log := range logMessages {
		if parsed := p.Parse(log); parsed.Type == LogTypeData && len(parsed.Data) > 0 {
			data = append(data, parsed.Data)
		}
	}
	return data
}

func (p *LogParser) ExtractProgramLogs(logMessages []string) []string {
	var logs []string
	for _, log := range logMessages {
		if parsed := p.Parse(log); parsed.Type == LogTypeLog {
			logs = append(logs, parsed.Message)
		}
	}
	return logs
}

// InstructionPath locates an instruction in a transaction: [0] is the first
// top-level instruction, [0, 1] the second inner instruction it invoked.
type InstructionPath []uint16

func (path InstructionPath) String() string {
	if len(path) == 0 {
		return "[]"
	}
	parts := make([]string, len(path))
	for i, idx := range path {
		parts[i] = strconv.Itoa(int(idx))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Ints returns the path as ints, which encode as a JSON array.
func (path InstructionPath) Ints() []int {
	out := make([]int, len(path))
	for i, idx := range path {
		out[i] = int(idx)
	}
	return out
}

func (path InstructionPath) Equals(other InstructionPath) bool {
	if len(path) != len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}

// IsParentOf reports whether other is nested somewhere below path.
func (path InstructionPath) IsParentOf(other InstructionPath) bool {
	if len(path) >= len(other) {
		return false
	}
	for i := range path {
		if path[i] != other[i] {
			return false
		}
	}
	return true
}

// Frame is the invoke context a log line was emitted in.
type Frame struct {
	// ProgramID is the innermost executing program, empty outside any invoke.
	ProgramID string
	Path      InstructionPath
}

// Walk parses logMessages in order and calls fn with each line and the frame
// it belongs to. Invoke lines are reported in the frame they open; success and
// failed lines in the frame they close.
func (p *LogParser) Walk(logMessages []string, fn func(parsed *ParsedLog, frame Frame)) {
	var (
		programs []string
		path     InstructionPath
		next     = make(map[int]uint16)
	)

	current := func() Frame {
		f := Frame{Path: append(InstructionPath(nil), path...)}
		if len(programs) > 0 {
			f.ProgramID = programs[len(programs)-1]
		}
		return f
	}

	for _, log := range logMessages {
		parsed := p.Parse(log)

		switch parsed.Type {
		case LogTypeInvoke:
			depth := parsed.StackHeight
			if depth < 1 {
				depth = 1
			}
			if depth-1 < len(programs) {
				programs = programs[:depth-1]
				path = path[:depth-1]
			}
			idx := next[depth]
			next[depth] = idx + 1
			delete(next, depth+1)

			programs = append(programs, parsed.ProgramID)
			path = append(path, idx)
			fn(parsed, current())

		case LogTypeSuccess, LogTypeFailed:
			fn(parsed, current())
			if len(programs) > 0 {
				programs = programs[:len(programs)-1]
				path = path[:len(path)-1]
			}

		default:
			fn(parsed, current())
		}
	}
}

// FilterByInstructionPath returns the data and log lines emitted directly by
// the instruction at targetPath.
func (p *LogParser) FilterByInstructionPath(logMessages []string, targetPath InstructionPath) []string {
	var filtered []string
	p.Walk(logMessages, func(parsed *ParsedLog, frame Frame) {
		if frame.Path.Equals(targetPath) && (parsed.Type == LogTypeData || parsed.Type == LogTypeLog) {
			filtered = append(filtered, parsed.RawLog)
		}
	})
	return filtered
}

// ProgramData is a "Program data:" payload attributed to the program that
// logged it.
type ProgramData struct {
	ProgramID solana.PublicKey
	Path      InstructionPath
	Data      []byte
}

// ExtractProgramDataByProgram returns every decodable "Program data:" payload
// with its emitting program. Lines outside any invoke or under a malformed
// program id are skipped.
func (p *LogParser) ExtractProgramDataByProgram(logMessages []string) []ProgramData {
	var out []ProgramData
	p.Walk(logMessages, func(parsed *ParsedLog, frame Frame) {
		if parsed.Type != LogTypeData || len(parsed.Data) == 0 || frame.ProgramID == "" {
			return
		}
		programID, err := solana.PublicKeyFromBase58(frame.ProgramID)
		if err != nil {
			return
		}
		out = append(out, ProgramData{ProgramID: programID, Path: frame.Path, Data: parsed.Data})
	})
	return out
}

// InstructionNames returns the handler names Anchor logs as
// "Program log: Instruction: <Name>", keyed by instruction path.
func (p *LogParser) InstructionNames(logMessages []string) map[string]string {
	names := make(map[string]string)
	p.Walk(logMessages, func(parsed *ParsedLog, frame Frame) {
		if parsed.Type != LogTypeLog {
			return
		}
		if name, ok := strings.CutPrefix(parsed.Message, "Instruction: "); ok {
			if _, seen := names[frame.Path.String()]; !seen {
				names[frame.Path.String()] = name
			}
		}
	})
	return names
}

// ComputeUnits returns the total compute units consumed by top-level
// instructions.
func (p *LogParser) ComputeUnits(logMessages []string) (uint64, error) {
	var (
		total uint64
		err   error
	)
	p.Walk(logMessages, func(parsed *ParsedLog, frame Frame) {
		if parsed.Type != LogTypeComputeUnits || len(frame.Path) != 1 {
			return
		}
		if parsed.ComputeUnits == nil {
			err = fmt.Errorf("unparsable compute units line %q", parsed.RawLog)
			return
		}
		total += *parsed.ComputeUnits
	})
	return total, err
}
