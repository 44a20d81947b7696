package cmd

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/lugondev/go-ammix/pkg/decoder"
)

// Payload encodings accepted on the command line.
const (
	encodingHex    = "hex"
	encodingBase58 = "base58"
	encodingBase64 = "base64"
)

func decodePayload(s, encoding string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(encoding) {
	case encodingHex:
		data, err = hex.DecodeString(strings.TrimPrefix(s, "0x"))
	case encodingBase58:
		data, err = base58.Decode(s)
	case encodingBase64:
		data, err = base64.StdEncoding.DecodeString(s)
	default:
		return nil, fmt.Errorf("unknown encoding %q (want hex, base58 or base64)", encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", encoding, err)
	}
	return data, nil
}

// resolveProgram accepts a registered binding name or a program id.
func resolveProgram(reg *decoder.Registry, nameOrID string) (decoder.Program, solana.PublicKey, error) {
	if p, id, ok := reg.Get(nameOrID); ok {
		return p, id, nil
	}
	id, err := solana.PublicKeyFromBase58(nameOrID)
	if err != nil {
		return nil, solana.PublicKey{}, fmt.Errorf("unknown program %q", nameOrID)
	}
	p, ok := reg.Lookup(id)
	if !ok {
		return nil, solana.PublicKey{}, fmt.Errorf("no binding registered for %s", id)
	}
	return p, id, nil
}

// readLines returns the non-empty lines of path, or of stdin for "-".
func readLines(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
