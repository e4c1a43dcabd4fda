package models

// ZaimHeader is the fixed header of every output file.
var ZaimHeader = []string{
	"日付", "方法", "カテゴリ", "カテゴリの内訳", "支払元", "入金先", "品目", "メモ",
	"お店", "通貨", "収入", "支出", "振替", "残高調整", "通貨変換前の金額", "集計の設定",
}

// ZaimRow is one output row of the Zaim import schema.
// Exactly one of AmountIncome, AmountPayment and AmountTransfer is non zero.
type ZaimRow struct {
	Date                   string `csv:"日付"`
	Method                 Method `csv:"方法"`
	CategoryLarge          string `csv:"カテゴリ"`
	CategorySmall          string `csv:"カテゴリの内訳"`
	CashFlowSource         string `csv:"支払元"`
	CashFlowTarget         string `csv:"入金先"`
	ItemName               string `csv:"品目"`
	Note                   string `csv:"メモ"`
	StoreName              string `csv:"お店"`
	Currency               string `csv:"通貨"`
	AmountIncome           int    `csv:"収入"`
	AmountPayment          int    `csv:"支出"`
	AmountTransfer         int    `csv:"振替"`
	BalanceAdjustment      string `csv:"残高調整"`
	AmountBeforeConversion string `csv:"通貨変換前の金額"`
	AggregateSetting       string `csv:"集計の設定"`
}

// Amount returns the value of the populated amount column.
func (r ZaimRow) Amount() int {
	switch r.Method {
	case MethodIncome:
		return r.AmountIncome
	case MethodPayment:
		return r.AmountPayment
	default:
		return r.AmountTransfer
	}
}
