// Package batch drives the account parsers over input files and writes the
// Zaim import files and the error report of a run.
package batch

import (
	"fmt"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/converter"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parser"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
	"fjacquet/zaim-csv/internal/report"
)

// FileResult is the outcome of running the pipeline over one file.
type FileResult struct {
	Rows      []models.ZaimRow
	Converted int
	Skipped   int
	Invalid   int
}

// Pipeline converts the rows of one file, one at a time and in file order.
// Recoverable errors go to the aggregator; Run returns only the error that
// aborts the file.
type Pipeline struct {
	parser  parser.AccountParser
	factory *converter.Factory
	errs    *report.ErrorAggregator
	logger  logging.Logger
}

// NewPipeline creates a Pipeline for p reporting into errs.
func NewPipeline(p parser.AccountParser, errs *report.ErrorAggregator, logger logging.Logger) *Pipeline {
	return &Pipeline{
		parser:  p,
		factory: converter.NewFactory(p.Account()),
		errs:    errs,
		logger:  logging.OrDefault(logger).WithField(logging.FieldAccount, string(p.Account())),
	}
}

// Run converts rows. On a classification or logic error it stops and returns
// the error wrapped with the row index; the rows converted so far are discarded.
func (p *Pipeline) Run(rows []common.InputRow) (FileResult, error) {
	var result FileResult
	for _, row := range rows {
		out, status, err := p.convertRow(row)
		if err != nil {
			return FileResult{}, fmt.Errorf("row %d: %w", row.Index, err)
		}
		switch status {
		case rowConverted:
			result.Rows = append(result.Rows, out)
			result.Converted++
		case rowSkipped:
			result.Skipped++
		case rowInvalid:
			result.Invalid++
		}
	}
	return result, nil
}

type rowStatus int

const (
	rowConverted rowStatus = iota
	rowSkipped
	rowInvalid
)

func (p *Pipeline) convertRow(row common.InputRow) (models.ZaimRow, rowStatus, error) {
	if row.Err != nil {
		p.errs.RecordCellErrors(row.Index, []parsererror.CellError{*row.Err})
		return models.ZaimRow{}, rowInvalid, nil
	}

	rec, cellErrs, err := p.parser.Classify(row.Fields)
	if err != nil {
		return models.ZaimRow{}, rowInvalid, err
	}
	if len(cellErrs) > 0 {
		p.errs.RecordCellErrors(row.Index, cellErrs)
		return models.ZaimRow{}, rowInvalid, nil
	}

	if errs := rec.Validate(); len(errs) > 0 {
		p.logger.Debug("Row failed validation", recordFields(row.Index, rec)...)
		p.errs.RecordCellErrors(row.Index, errs)
		return models.ZaimRow{}, rowInvalid, nil
	}

	skip, err := rec.IsRowToSkip()
	if err != nil {
		return p.recoverable(row, rec, err)
	}
	if skip {
		p.logger.Debug("Skipping row", recordFields(row.Index, rec)...)
		return models.ZaimRow{}, rowSkipped, nil
	}

	conv, err := p.parser.Select(rec)
	if err != nil {
		return p.recoverable(row, rec, err)
	}

	out, err := p.factory.Create(conv)
	if err != nil {
		return p.recoverable(row, rec, err)
	}
	return out, rowConverted, nil
}

// recoverable records an undefined reference and keeps going. Classification
// and logic errors, and any error it does not know, are returned as fatal for
// the file.
func (p *Pipeline) recoverable(row common.InputRow, rec record.Record, err error) (models.ZaimRow, rowStatus, error) {
	if parsererror.IsFatal(err) {
		return models.ZaimRow{}, rowInvalid, err
	}
	undefined, ok := parsererror.AsUndefinedContent(err)
	if !ok {
		return models.ZaimRow{}, rowInvalid, err
	}
	p.logger.Debug("Undefined reference", recordFields(row.Index, rec)...)
	p.errs.RecordUndefined(undefined)
	return models.ZaimRow{}, rowInvalid, nil
}

// recordFields describes rec for logging, with the raw catalog names and the
// note of the variants that carry them.
func recordFields(index int, rec record.Record) []logging.Field {
	fields := []logging.Field{
		logging.F(logging.FieldRow, index),
		logging.F(logging.FieldRecord, fmt.Sprintf("%T", rec)),
	}
	if r, ok := rec.(record.StoreRecord); ok {
		fields = append(fields, logging.F(logging.FieldStore, r.Store().RawName()))
	}
	if r, ok := rec.(record.ItemRecord); ok {
		fields = append(fields, logging.F(logging.FieldItem, r.Item().RawName()))
	}
	if r, ok := rec.(record.NoteRecord); ok && r.Note() != "" {
		fields = append(fields, logging.F(logging.FieldNote, r.Note()))
	}
	return fields
}
