package decoder

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/lugondev/go-ammix/pkg/codec"
)

type BatchOptions struct {
	CollectErrors bool
	MaxErrors     int
}

type BatchResult struct {
	Events []*DecodedEvent
	Errors []error
}

type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at index %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BatchDecoder decodes many event payloads of one program. Payloads whose
// discriminator is not in the program's event table are skipped without
// running the borsh decoder.
type BatchDecoder struct {
	registry *Registry
}

func NewBatchDecoder(registry *Registry) *BatchDecoder {
	return &BatchDecoder{
		registry: registry,
	}
}

// DecodeAll decodes dataList in order and drops payloads that do not decode.
func (b *BatchDecoder) DecodeAll(programID solana.PublicKey, dataList [][]byte) ([]*DecodedEvent, error) {
	result, err := b.DecodeAllWithOptions(programID, dataList, nil)
	if err != nil {
		return nil, err
	}
	return result.Events, nil
}

func (b *BatchDecoder) DecodeAllWithOptions(programID solana.PublicKey, dataList [][]byte, opts *BatchOptions) (*BatchResult, error) {
	p, _, err := b.registry.resolve(programID)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{
		Events: make([]*DecodedEvent, 0, len(dataList)),
	}
	if len(dataList) == 0 {
		return result, nil
	}

	collectErrors := opts != nil && opts.CollectErrors
	maxErrors := 0
	if opts != nil && opts.MaxErrors > 0 {
		maxErrors = opts.MaxErrors
	}

	matches := p.EventTable().MatchBatch(unframe(dataList))
	for i, data := range dataList {
		if matches[i] < 0 && !collectErrors {
			continue
		}
		// Unmatched payloads still go through the program decoder so the
		// collected error is the typed MalformedInput or UnknownDiscriminator.
		ev, err := decodeOne(p, programID, data)
		if err == nil {
			result.Events = append(result.Events, ev)
			continue
		}

		if collectErrors {
			result.Errors = append(result.Errors, &DecodeError{Index: i, Err: err})
			if maxErrors > 0 && len(result.Errors) >= maxErrors {
				break
			}
		}
	}
	return result, nil
}

func (b *BatchDecoder) DecodeAllParallel(programID solana.PublicKey, dataList [][]byte, workers int) ([]*DecodedEvent, error) {
	return b.DecodeAllParallelWithContext(context.Background(), programID, dataList, workers)
}

// DecodeAllParallelWithContext splits dataList into one chunk per worker. The
// output keeps input order.
func (b *BatchDecoder) DecodeAllParallelWithContext(ctx context.Context, programID solana.PublicKey, dataList [][]byte, workers int) ([]*DecodedEvent, error) {
	p, _, err := b.registry.resolve(programID)
	if err != nil {
		return nil, err
	}
	if len(dataList) == 0 {
		return nil, nil
	}

	if workers <= 0 {
		workers = 4
	}

	type result struct {
		index int
		event *DecodedEvent
	}

	resultsChan := make(chan result, len(dataList))
	var wg sync.WaitGroup

	chunkSize := (len(dataList) + workers - 1) / workers
	table := p.EventTable()

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(dataList))
		if start >= len(dataList) {
			break
		}

		wg.Add(1)
		go func(chunk [][]byte, startIdx int) {
			defer wg.Done()

			matches := table.MatchBatch(unframe(chunk))
			for i, data := range chunk {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if matches[i] < 0 {
					continue
				}
				if ev, err := decodeOne(p, programID, data); err == nil {
					resultsChan <- result{index: startIdx + i, event: ev}
				}
			}
		}(dataList[start:end], start)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	resultsMap := make(map[int]*DecodedEvent)
	for res := range resultsChan {
		resultsMap[res.index] = res.event
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	events := make([]*DecodedEvent, 0, len(resultsMap))
	for i := range len(dataList) {
		if ev, exists := resultsMap[i]; exists {
			events = append(events, ev)
		}
	}
	return events, nil
}

func decodeOne(p Program, programID solana.PublicKey, data []byte) (*DecodedEvent, error) {
	name, ev, err := p.DecodeEvent(data)
	if err != nil {
		return nil, err
	}
	return &DecodedEvent{
		Program:   p.Name(),
		ProgramID: programID,
		Name:      name,
		Data:      ev,
		CPI:       codec.IsCPI(data),
	}, nil
}

// unframe strips the self-CPI tag so the event table sees the event
// discriminator.
func unframe(dataList [][]byte) [][]byte {
	out := make([][]byte, len(dataList))
	for i, data := range dataList {
		if codec.IsCPI(data) {
			data = data[len(codec.EventIxTag):]
		}
		out[i] = data
	}
	return out
}
