package importer

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"wooflow/internal/logger"
)

// Importer drives the two-pass import pipeline: classify all rows, then
// create simple products and variable groups in file order. It is stateless
// across runs; every call starts with fresh accumulators.
type Importer struct {
	gateway   Gateway
	logger    *logger.Logger
	resolver  *attributeResolver
	assembler *assembler
}

func New(gateway Gateway, logger *logger.Logger) *Importer {
	resolver := &attributeResolver{gateway: gateway, logger: logger}
	return &Importer{
		gateway:  gateway,
		logger:   logger,
		resolver: resolver,
		assembler: &assembler{
			gateway:  gateway,
			resolver: resolver,
			logger:   logger,
		},
	}
}

// ImportFromFile reads a header-keyed CSV file and imports its rows. The file
// is read as UTF-8 with a leading byte-order mark tolerated; the delimiter is
// detected among comma, tab and semicolon from the first kilobyte, falling
// back to the given delimiter. A file that cannot be read at all sets the
// result's Error field alongside whatever had been accumulated.
func (im *Importer) ImportFromFile(ctx context.Context, path string, delimiter rune) *ImportResult {
	im.logger.Info("Attempting to parse CSV file: %s", path)

	rows, err := readRows(path, delimiter)
	if err != nil {
		im.logger.Error("Failed to import products from %s: %v", path, err)
		result := newImportResult()
		result.Error = err.Error()
		return result
	}

	im.logger.Info("Successfully loaded %d rows from CSV", len(rows))
	return im.ImportFromList(ctx, rows)
}

// ImportFromList imports already-parsed rows. Every row ends up in exactly one
// of Created or Failed; no row's failure blocks another row.
func (im *Importer) ImportFromList(ctx context.Context, rows []Row) *ImportResult {
	result := newImportResult()

	cl := classify(rows)
	for _, failure := range cl.failed {
		im.logger.Error("Row %d: %s", failure.Row, failure.Error)
		result.Failed = append(result.Failed, failure)
	}

	im.logger.Debug("Found %d simple products and %d variable products", len(cl.simple), len(cl.groups))

	for _, item := range cl.simple {
		im.processSimple(ctx, item, result)
	}
	for _, group := range cl.groups {
		im.processGroup(ctx, group, result)
	}

	return result
}

func (im *Importer) processSimple(ctx context.Context, item IndexedRow, result *ImportResult) {
	product, err := im.assembler.buildSimple(ctx, item.Row)
	if err == nil {
		product, err = im.gateway.CreateProduct(ctx, product)
	}
	if err != nil {
		im.logger.Error("Row %d: Error processing simple product: %v", lineNumber(item.Index), err)
		result.addFailure(item.Index, err.Error(), item.Row)
		return
	}

	result.addCreated(lineNumber(item.Index), product.ID, product.Name, typeSimple, product.SKU)
	im.logger.Info("Created simple product: %s (ID: %d)", product.Name, product.ID)
}

// processGroup creates a variable parent and then its variations. A parent
// failure fails the whole group and no variations are attempted; a variation
// failure is recorded individually and its siblings still run.
func (im *Importer) processGroup(ctx context.Context, group *VariableGroup, result *ImportResult) {
	parentIndex := group.Parent.Index

	resolved, err := im.resolver.resolveGroup(ctx, group)
	if err != nil {
		im.logger.Error("Row %d: Error processing variable product: %v", lineNumber(parentIndex), err)
		result.addFailure(parentIndex, err.Error(), group.Parent.Row)
		return
	}

	product, err := im.assembler.buildVariable(ctx, group.Parent.Row, resolved)
	if err == nil {
		product, err = im.gateway.CreateProduct(ctx, product)
	}
	if err != nil {
		im.logger.Error("Row %d: Error processing variable product: %v", lineNumber(parentIndex), err)
		result.addFailure(parentIndex, err.Error(), group.Parent.Row)
		return
	}

	result.addCreated(lineNumber(parentIndex), product.ID, product.Name, typeVariable, product.SKU)
	im.logger.Info("Created variable product: %s (ID: %d) with %d attributes", product.Name, product.ID, len(resolved))

	parentNames := parentAttributeNames(group.Parent.Row)
	for _, item := range group.Variations {
		attributes := variationAttributes(item.Row, parentNames, resolved)

		variation, err := im.assembler.buildVariation(ctx, item.Row, product, attributes)
		if err == nil {
			variation, err = im.gateway.CreateVariation(ctx, product.ID, variation)
		}
		if err != nil {
			im.logger.Error("Row %d: Error processing variation: %v", lineNumber(item.Index), err)
			result.addFailure(item.Index, fmt.Sprintf("Error processing variation: %v", err), item.Row)
			continue
		}

		result.addCreated(lineNumber(item.Index), variation.ID, product.Name, typeVariation, variation.SKU)
		im.logger.Info("Created variation for product ID %d: %d", product.ID, variation.ID)
	}
}

// readRows parses the file into cleaned header-keyed rows.
func readRows(path string, delimiter rune) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	buffered := bufio.NewReader(file)

	// Tolerate a UTF-8 byte-order mark.
	if bom, err := buffered.Peek(3); err == nil && bytes.Equal(bom, []byte{0xEF, 0xBB, 0xBF}) {
		buffered.Discard(3)
	}

	sample, _ := buffered.Peek(1024)

	reader := csv.NewReader(buffered)
	reader.Comma = detectDelimiter(sample, delimiter)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", lineNumber(len(rows)), err)
		}

		raw := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				raw[column] = record[i]
			}
		}
		rows = append(rows, CleanRow(raw))
	}

	return rows, nil
}

// detectDelimiter picks the candidate delimiter occurring most often in the
// sample's first line, falling back to the configured delimiter when none
// appears.
func detectDelimiter(sample []byte, fallback rune) rune {
	if fallback == 0 {
		fallback = ','
	}

	line := sample
	if idx := bytes.IndexByte(sample, '\n'); idx >= 0 {
		line = sample[:idx]
	}

	best := fallback
	bestCount := 0
	for _, candidate := range []rune{',', '\t', ';'} {
		if count := bytes.Count(line, []byte(string(candidate))); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
