package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/zaim-csv/internal/parsererror"
)

func TestErrorAggregator_DeduplicatesInFirstSeenOrder(t *testing.T) {
	agg := NewErrorAggregator("run-1")
	agg.RecordUndefinedReference("waon.csv", "ミニストップ", "")
	agg.RecordUndefinedReference("amazon.csv", "", "Echo Dot")
	agg.RecordUndefined(&parsererror.UndefinedContentError{AccountFile: "waon.csv", StoreName: "ミニストップ"})
	agg.RecordUndefinedReference("waon.csv", "イオン", "")
	agg.RecordUndefinedReference("mufg.csv", "ミニストップ", "")

	report := agg.Finalize()
	assert.Equal(t, []ErrorRow{
		{AccountFile: "waon.csv", StoreName: "ミニストップ"},
		{AccountFile: "amazon.csv", ItemName: "Echo Dot"},
		{AccountFile: "waon.csv", StoreName: "イオン"},
		{AccountFile: "mufg.csv", StoreName: "ミニストップ"},
	}, report.UndefinedContents)
	assert.Equal(t, "run-1", report.RunID)
}

func TestErrorAggregator_FinalizeIsDeterministic(t *testing.T) {
	agg := NewErrorAggregator("run")
	for _, name := range []string{"c", "a", "b", "a", "c"} {
		agg.RecordUndefinedReference("waon.csv", name, "")
	}
	first := agg.Finalize()
	second := agg.Finalize()
	assert.Equal(t, first, second)
	assert.Len(t, first.UndefinedContents, 3)
}

func TestErrorAggregator_CellErrors(t *testing.T) {
	agg := NewErrorAggregator("run")
	agg.StartFile("waon.csv")
	agg.RecordCellErrors(3, nil)
	agg.RecordCellErrors(4, []parsererror.CellError{
		parsererror.Required("store_name"),
		{Field: "charge_kind", Message: "is required for チャージ rows"},
	})

	report := agg.Finalize()
	require.Len(t, report.InvalidRows, 1)
	assert.Equal(t, InvalidRow{
		File:   "waon.csv",
		Row:    4,
		Errors: []string{"store_name: is required", "charge_kind: is required for チャージ rows"},
	}, report.InvalidRows[0])
}

func TestErrorAggregator_KeepsFirstFatal(t *testing.T) {
	agg := NewErrorAggregator("run")
	first := &parsererror.ClassificationError{Account: "waon", Field: "use kind", Value: "返金"}
	agg.RecordFatal(nil)
	agg.RecordFatal(first)
	agg.RecordFatal(errors.New("second"))

	report := agg.Finalize()
	assert.Same(t, first, report.Fatal)
	assert.Equal(t, "waon: unsupported use kind '返金'", report.FatalMessage)
}

func TestReport_Err(t *testing.T) {
	assert.NoError(t, Report{}.Err())
	assert.False(t, Report{}.HasErrors())

	fatal := &parsererror.LogicError{Account: "mufg", Detail: "boom"}
	err := Report{
		UndefinedContents: []ErrorRow{{AccountFile: "waon.csv", StoreName: "x"}},
		Fatal:             fatal,
	}.Err()

	var failed *parsererror.ConversionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.UndefinedContents)
	assert.ErrorIs(t, err, fatal)
}
