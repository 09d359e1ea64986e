package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"supermart/internal/core/domain/model/manifest"
	"supermart/internal/core/domain/model/stock"
	"supermart/internal/core/domain/model/vehicle"
	"supermart/internal/pkg/errs"
)

const (
	headerPrefix  = ">"
	manifestShape = ">[vehicle type] or [item], [quantity]"
)

// ErrManifestHasNoVehicles is returned for a manifest file without any vehicle.
var ErrManifestHasNoVehicles = errs.NewValueIsInvalidErrorWithCause(
	"manifest",
	errors.New("cannot load a manifest without vehicles"),
)

// manifestReader accumulates the vehicle being read.
type manifestReader struct {
	catalog  ItemResolver
	manifest *manifest.Builder
	cargo    *stock.Builder
	kind     vehicle.Kind
	opened   record
}

// ReadManifest parses a manifest file. Cargo items must be in catalog, and
// every vehicle must satisfy its capacity and content rules.
func ReadManifest(r io.Reader, catalog ItemResolver) (*manifest.Manifest, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	mr := &manifestReader{
		catalog:  catalog,
		manifest: manifest.NewBuilder(),
		cargo:    stock.NewBuilder(),
	}

	for _, rec := range records {
		if err = mr.read(rec); err != nil {
			return nil, err
		}
	}
	if err = mr.closeVehicle(); err != nil {
		return nil, err
	}

	built := mr.manifest.Build()
	if built.IsEmpty() {
		return nil, ErrManifestHasNoVehicles
	}
	return built, nil
}

func (mr *manifestReader) read(rec record) error {
	if len(rec.fields) == 1 && strings.HasPrefix(rec.fields[0], headerPrefix) {
		if err := mr.closeVehicle(); err != nil {
			return err
		}

		kind, err := vehicle.ParseKind(strings.TrimPrefix(rec.fields[0], headerPrefix))
		if err != nil {
			return lineError(rec, err)
		}
		mr.kind = kind
		mr.opened = rec
		return nil
	}

	if len(rec.fields) != 2 {
		return formatError(rec, manifestShape)
	}
	if mr.kind == vehicle.UnknownKind {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("line %d", rec.line),
			errors.New("cargo listed before any vehicle header"),
		)
	}
	return addQuantityLine(mr.cargo, rec, mr.catalog)
}

// closeVehicle builds the open vehicle, if any, into the manifest.
func (mr *manifestReader) closeVehicle() error {
	if mr.kind == vehicle.UnknownKind {
		return nil
	}
	defer func() {
		mr.cargo.Reset()
		mr.kind = vehicle.UnknownKind
	}()

	vb := vehicle.NewBuilder(mr.kind)
	if err := vb.Cargo(mr.cargo.Build()); err != nil {
		return fmt.Errorf("vehicle on line %d: %w", mr.opened.line, err)
	}
	v, err := vb.Build()
	if err != nil {
		return fmt.Errorf("vehicle on line %d: %w", mr.opened.line, err)
	}
	return mr.manifest.AddVehicle(v)
}

// WriteManifest writes m in the format ReadManifest accepts, one header per
// vehicle followed by its cargo ordered by item name. Names are quoted where
// CSV requires it.
func WriteManifest(w io.Writer, m *manifest.Manifest) error {
	if err := m.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("manifest", err)
	}

	writer := csv.NewWriter(w)
	for _, v := range m.Vehicles() {
		if err := writer.Write([]string{headerPrefix + v.Kind().String()}); err != nil {
			return err
		}
		for _, e := range v.Cargo().Entries() {
			if err := writer.Write([]string{e.Item.Name(), strconv.Itoa(e.Quantity)}); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
