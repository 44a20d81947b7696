package decoder

import (
	"github.com/lugondev/go-ammix/pkg/errors"
	"github.com/lugondev/go-ammix/pkg/log"
)

// DecodeLogs decodes the "Program data:" lines of a transaction's log messages.
// Lines emitted by programs without a registered binding are skipped. Payloads
// that fail to decode are reported as *DecodeError values joined into the
// returned error, indexed by their position among the extracted payloads; the
// events that did decode are returned regardless.
func (r *Registry) DecodeLogs(logMessages []string) ([]*DecodedEvent, error) {
	var (
		events []*DecodedEvent
		errs   []error
	)
	for i, d := range log.NewParser().ExtractProgramDataByProgram(logMessages) {
		p, ok := r.Lookup(d.ProgramID)
		if !ok {
			continue
		}
		ev, err := decodeOne(p, d.ProgramID, d.Data)
		if err != nil {
			errs = append(errs, &DecodeError{Index: i, Err: err})
			continue
		}
		ev.Path = d.Path.Ints()
		events = append(events, ev)
	}
	return events, errors.Join(errs...)
}
