// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/parsererror"
	"fjacquet/zaim-csv/internal/record"
)

// BaseParser provides the parts of AccountParser every account shares.
// Parsers embed it:
//
//	type Parser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger   logging.Logger
	account  models.AccountID
	dialect  common.Dialect
	patterns []string
}

// NewBaseParser creates a BaseParser. File names are matched case
// insensitively against the glob patterns.
func NewBaseParser(account models.AccountID, dialect common.Dialect, patterns []string, logger logging.Logger) BaseParser {
	return BaseParser{
		logger:   logging.OrDefault(logger).WithField(logging.FieldAccount, string(account)),
		account:  account,
		dialect:  dialect,
		patterns: patterns,
	}
}

// Account implements AccountParser.
func (b *BaseParser) Account() models.AccountID {
	return b.account
}

// Dialect implements AccountParser.
func (b *BaseParser) Dialect() common.Dialect {
	return b.dialect
}

// Patterns returns the file name patterns of the account.
func (b *BaseParser) Patterns() []string {
	return append([]string(nil), b.patterns...)
}

// Matches implements AccountParser.
func (b *BaseParser) Matches(fileName string) bool {
	name := strings.ToLower(filepath.Base(fileName))
	for _, pattern := range b.patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// UnknownRecord logs and builds the LogicError returned by Select for a record
// type it has no case for.
func (b *BaseParser) UnknownRecord(rec record.Record) error {
	recordType := fmt.Sprintf("%T", rec)
	b.logger.Error("No converter for record", logging.F(logging.FieldRecord, recordType))
	return &parsererror.LogicError{
		Account: string(b.account),
		Record:  recordType,
		Detail:  "no converter for record",
	}
}
