package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"supermart/internal/core/domain/model/item"
	"supermart/internal/pkg/errs"
)

// ItemResolver looks up catalogued items by name. *store.Store satisfies it.
type ItemResolver interface {
	Item(name string) (*item.Item, bool)
}

// record is one non-empty line of a file.
type record struct {
	line   int
	fields []string
}

// readRecords splits r into trimmed records. Blank lines are skipped.
func readRecords(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line %d", parseErr.StartLine), parseErr.Err)
			}
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		records = append(records, record{line: line, fields: fields})
	}
}

func formatError(rec record, shape string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		fmt.Sprintf("line %d", rec.line),
		fmt.Errorf("expected %s, got [%s]", shape, strings.Join(rec.fields, "], [")),
	)
}

func lineError(rec record, err error) error {
	return fmt.Errorf("line %d: %w", rec.line, err)
}
