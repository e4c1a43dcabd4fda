package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/zaim-csv/internal/amazonparser"
	"fjacquet/zaim-csv/internal/catalog"
	"fjacquet/zaim-csv/internal/common"
	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/models"
	"fjacquet/zaim-csv/internal/mufgparser"
	"fjacquet/zaim-csv/internal/report"
)

func amazonFields(item, price, number, subtotal, total string) []string {
	fields := make([]string, amazonparser.Dialect.Columns)
	fields[0] = "2018/11/14"
	fields[2] = item
	fields[4], fields[5], fields[6], fields[7] = price, number, subtotal, total
	return fields
}

func mufgFields(summary, content, payment, deposit, kind string) []string {
	return []string{"2018/8/20", summary, content, payment, deposit, "100,000", "", "", kind}
}

func newMUFGAdapter(t *testing.T) *mufgparser.Adapter {
	t.Helper()
	cat := catalog.NewMemory()
	require.NoError(t, cat.AddStore(models.AccountMUFG, models.Store{
		RawName:        "ﾀﾅｶ ﾀﾛｳ",
		CanonicalName:  "田中太郎",
		CategoryIncome: "給与",
	}))
	cat.Freeze()
	return mufgparser.NewAdapter(config.MUFGConfig{DisplayName: "三菱UFJ銀行", CashAccount: "お財布"}, cat, nil)
}

func TestPipeline_FreeShippingIsSkipped(t *testing.T) {
	cat := catalog.NewMemory()
	require.NoError(t, cat.AddItem(models.AccountAmazon, models.Item{
		RawName:       "Echo Dot",
		CanonicalName: "Echo Dot 第2世代",
		CategoryLarge: "大型出費",
		CategorySmall: "家電",
	}))
	cat.Freeze()
	adapter := amazonparser.NewAdapter(config.AmazonConfig{StoreName: "Amazon Japan G.K.", PaymentAccount: "カード"}, cat, nil)

	errs := report.NewErrorAggregator("test-run")
	errs.StartFile("amazon201811.csv")
	result, err := NewPipeline(adapter, errs, nil).Run([]common.InputRow{
		{Index: 2, Fields: amazonFields("Echo Dot", "4980", "1", "4980", "")},
		{Index: 3, Fields: amazonFields("（配送料・手数料）", "", "", "0", "")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 4980, result.Rows[0].AmountPayment)
	assert.False(t, errs.Finalize().HasErrors())
}

func TestPipeline_ZeroAmountIsInvalidRow(t *testing.T) {
	errs := report.NewErrorAggregator("test-run")
	errs.StartFile("mufg201808.csv")
	result, err := NewPipeline(newMUFGAdapter(t), errs, nil).Run([]common.InputRow{
		{Index: 2, Fields: mufgFields("振込１", "ﾀﾅｶ ﾀﾛｳ", "", "50,000", "入金")},
		{Index: 3, Fields: mufgFields("振込１", "ﾀﾅｶ ﾀﾛｳ", "", "0", "入金")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Invalid)
	rep := errs.Finalize()
	assert.Equal(t, []report.InvalidRow{
		{File: "mufg201808.csv", Row: 3, Errors: []string{"deposit_amount: must not be zero"}},
	}, rep.InvalidRows)
	assert.Nil(t, rep.Fatal)
}

func TestPipeline_LogsRecordDetails(t *testing.T) {
	logger := logging.NewMockLogger()
	errs := report.NewErrorAggregator("test-run")
	errs.StartFile("mufg201808.csv")

	row := mufgFields("デビット", "ｽｽﾞｷ ﾊﾅｺ", "1,000", "", "支払い")
	row[6] = "立替"
	result, err := NewPipeline(newMUFGAdapter(t), errs, logger).Run([]common.InputRow{{Index: 2, Fields: row}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Invalid)

	entries := logger.EntriesByLevel("DEBUG")
	require.Len(t, entries, 1)
	assert.Equal(t, "Undefined reference", entries[0].Message)
	for key, want := range map[string]interface{}{
		logging.FieldAccount: "mufg",
		logging.FieldRow:     2,
		logging.FieldRecord:  "mufgparser.PaymentRecord",
		logging.FieldStore:   "ｽｽﾞｷ ﾊﾅｺ",
		logging.FieldNote:    "立替",
	} {
		value, ok := entries[0].FieldValue(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, value, key)
	}
	_, hasItem := entries[0].FieldValue(logging.FieldItem)
	assert.False(t, hasItem)

	assert.Equal(t, []report.ErrorRow{{AccountFile: "mufg.csv", StoreName: "ｽｽﾞｷ ﾊﾅｺ"}}, errs.Finalize().UndefinedContents)
}
