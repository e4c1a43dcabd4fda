// Package report collects the recoverable errors of a batch and renders them
// as error.csv, a JSON report and a terminal summary.
package report

import (
	"fjacquet/zaim-csv/internal/parsererror"
)

// ErrorRow is one line of error.csv. Exactly one of StoreName and ItemName is set.
type ErrorRow struct {
	AccountFile string `csv:"account_file" json:"account_file"`
	StoreName   string `csv:"store_name" json:"store_name,omitempty"`
	ItemName    string `csv:"item_name" json:"item_name,omitempty"`
}

// FileSummary describes the outcome of one input file.
type FileSummary struct {
	File      string `json:"file"`
	Account   string `json:"account"`
	Output    string `json:"output,omitempty"`
	Rows      int    `json:"rows"`
	Converted int    `json:"converted"`
	Skipped   int    `json:"skipped"`
	Failed    bool   `json:"failed"`
}

// InvalidRow is a row rejected by decoding or validation.
type InvalidRow struct {
	File   string   `json:"file"`
	Row    int      `json:"row"`
	Errors []string `json:"errors"`
}

// Report is the frozen outcome of a batch.
type Report struct {
	RunID             string        `json:"run_id"`
	Files             []FileSummary `json:"files"`
	UndefinedContents []ErrorRow    `json:"undefined_contents"`
	InvalidRows       []InvalidRow  `json:"invalid_rows"`
	Fatal             error         `json:"-"`
	FatalMessage      string        `json:"fatal,omitempty"`
}

// HasErrors reports whether anything in the batch failed.
func (r Report) HasErrors() bool {
	return r.Fatal != nil || len(r.UndefinedContents) > 0 || len(r.InvalidRows) > 0
}

// Err returns the consolidated failure of the batch, or nil.
func (r Report) Err() error {
	if !r.HasErrors() {
		return nil
	}
	return &parsererror.ConversionFailedError{
		UndefinedContents: len(r.UndefinedContents),
		InvalidRows:       len(r.InvalidRows),
		Fatal:             r.Fatal,
	}
}

// ErrorAggregator accumulates errors while a batch runs. It never fails on an
// error as it occurs; the batch outcome is read once with Finalize.
type ErrorAggregator struct {
	runID     string
	file      string
	files     []FileSummary
	undefined []ErrorRow
	seen      map[ErrorRow]struct{}
	invalid   []InvalidRow
	fatal     error
}

// NewErrorAggregator creates an aggregator for the batch runID.
func NewErrorAggregator(runID string) *ErrorAggregator {
	return &ErrorAggregator{runID: runID, seen: make(map[ErrorRow]struct{})}
}

// StartFile sets the file subsequent row errors are attributed to.
func (a *ErrorAggregator) StartFile(file string) {
	a.file = file
}

// RecordCellErrors records every validation failure of one row.
func (a *ErrorAggregator) RecordCellErrors(rowIndex int, errs []parsererror.CellError) {
	if len(errs) == 0 {
		return
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	a.invalid = append(a.invalid, InvalidRow{File: a.file, Row: rowIndex, Errors: messages})
}

// RecordUndefinedReference queues a name missing from the catalog. Repeated
// tuples are kept once, in first seen order.
func (a *ErrorAggregator) RecordUndefinedReference(accountFile, storeName, itemName string) {
	row := ErrorRow{AccountFile: accountFile, StoreName: storeName, ItemName: itemName}
	if _, ok := a.seen[row]; ok {
		return
	}
	a.seen[row] = struct{}{}
	a.undefined = append(a.undefined, row)
}

// RecordUndefined is RecordUndefinedReference for an UndefinedContentError.
func (a *ErrorAggregator) RecordUndefined(err *parsererror.UndefinedContentError) {
	a.RecordUndefinedReference(err.AccountFile, err.StoreName, err.ItemName)
}

// RecordFatal keeps the first fatal error of the batch.
func (a *ErrorAggregator) RecordFatal(err error) {
	if err != nil && a.fatal == nil {
		a.fatal = err
	}
}

// RecordFile appends the summary of a processed file.
func (a *ErrorAggregator) RecordFile(summary FileSummary) {
	a.files = append(a.files, summary)
}

// Finalize returns the batch report. It can be called more than once.
func (a *ErrorAggregator) Finalize() Report {
	report := Report{
		RunID:             a.runID,
		Files:             append([]FileSummary(nil), a.files...),
		UndefinedContents: append([]ErrorRow(nil), a.undefined...),
		InvalidRows:       append([]InvalidRow(nil), a.invalid...),
		Fatal:             a.fatal,
	}
	if a.fatal != nil {
		report.FatalMessage = a.fatal.Error()
	}
	return report
}
