package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"fjacquet/zaim-csv/internal/config"
	"fjacquet/zaim-csv/internal/container"
	"fjacquet/zaim-csv/internal/logging"
	"fjacquet/zaim-csv/internal/parsererror"
)

const catalogHeader = "name,name_zaim,category_payment_large,category_payment_small,category_income,transfer_target\n"

var catalogs = map[string]string{
	"waon.csv": catalogHeader +
		"ファミリーマートかぶと町永代,ファミリーマート　かぶと町永代通り店,食費,食料品,,\n",
	"gold_point_card_plus.csv": catalogHeader +
		"東京電力エナジーパートナー株式会社,東京電力エナジーパートナー株式会社,水道・光熱,電気料金,,\n" +
		"ＡＭＡＺＯＮ．ＣＯ．ＪＰ,Amazon Japan G.K.,,,,\n",
	"mufg.csv": catalogHeader +
		"ｼﾞﾌﾞﾝ ｲｵﾝｷﾞﾝｺｳ,,,,,イオン銀行\n" +
		"ｶ)ﾐﾂﾋﾞｼ ｺｰﾎﾟ,三菱コーポレーション,,,給与,\n",
	"pasmo.csv": catalogHeader +
		"六本木一丁目,東京地下鉄株式会社　南北線六本木一丁目駅,交通,電車,,\n",
	"amazon.csv": catalogHeader +
		"（割引）,割引,その他,その他,,\n" +
		"Echo Dot (エコードット) 第2世代,Echo Dot 第2世代,大型出費,家電,,\n",
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
}

func writeShiftJIS(t *testing.T, path, body string) {
	t.Helper()
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), body)
	require.NoError(t, err)
	writeFile(t, path, encoded)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

func newTestContainer(t *testing.T) *container.Container {
	t.Helper()
	catalogDir := t.TempDir()
	for name, body := range catalogs {
		writeFile(t, filepath.Join(catalogDir, name), body)
	}

	cfg := &config.Config{
		Log:   config.LogConfig{Level: "info", Format: "text"},
		Paths: config.PathsConfig{Catalog: catalogDir, ErrorFile: "error.csv"},
		Accounts: config.AccountsConfig{
			WAON:              config.WAONConfig{DisplayName: "WAON", AutoChargeSource: "イオン銀行", ChargeCashSource: "お財布"},
			GoldPointCardPlus: config.GoldPointConfig{DisplayName: "ヨドバシゴールドポイントカード・プラス"},
			MUFG:              config.MUFGConfig{DisplayName: "三菱UFJ銀行", CashAccount: "お財布"},
			PASMO:             config.SFCardConfig{DisplayName: "PASMO", AutoChargeSource: "ヨドバシゴールドポイントカード・プラス"},
			MobileSuica:       config.SFCardConfig{DisplayName: "モバイルSuica", AutoChargeSource: "ビューカード"},
			Amazon:            config.AmazonConfig{StoreName: "Amazon Japan G.K.", PaymentAccount: "ヨドバシゴールドポイントカード・プラス"},
		},
	}

	c, err := container.NewContainer(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func writeInputs(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "waon201808.csv"),
		"取引年月日,利用店舗,利用金額（税込）,利用区分,チャージ区分\n"+
			"2018/8/7,ファミリーマートかぶと町永代,129円,支払,-\n"+
			"2018/8/8,ミニストップ,100円,支払,-\n")

	writeShiftJIS(t, filepath.Join(dir, "gold_point_card_plus_201809.csv"),
		"山田太郎様,1234-****-****-5678,ヨドバシゴールドポイントカード・プラス,,,,,,,,,,\n"+
			"2018/07/11,東京電力エナジーパートナー株式会社,ご本人,1回払い,,18/8,11402,11402,,,,,\n"+
			"2018/07/16,ＡＭＡＺＯＮ．ＣＯ．ＪＰ,ご本人,1回払い,,18/8,3456,3456,,,,,\n"+
			",,,,,,14858,,,,,,\n")

	writeShiftJIS(t, filepath.Join(dir, "mufg201808.csv"),
		"日付,摘要,摘要内容,支払い金額,預かり金額,差引残高,メモ,未資金化区分,入払区分\n"+
			"2018/8/20,振込１,ｼﾞﾌﾞﾝ ｲｵﾝｷﾞﾝｺｳ,,50000,150000,,,振替入金\n"+
			"2018/8/25,振込１,ｶ)ﾐﾂﾋﾞｼ ｺｰﾎﾟ,,300000,450000,,,振替入金\n"+
			"2018/8/26,カード,,10000,,440000,,,支払い\n")

	writeShiftJIS(t, filepath.Join(dir, "pasmo201811.csv"),
		"利用年月日,定期,鉄道会社名,入場駅/事業者名,定期,鉄道会社名,出場駅/降車場所,利用額(円),残額(円),メモ\n"+
			"2018/11/13,,東京地下鉄,溜池山王,,東京地下鉄,六本木一丁目,-195,3601,\n"+
			"2018/11/14,,東京地下鉄,六本木一丁目,,東京地下鉄,六本木一丁目,0,3601,\n")

	writeFile(t, filepath.Join(dir, "amazon201811.csv"), "\ufeff"+
		"注文日,注文番号,商品名,付帯情報,価格,個数,商品小計,注文合計,お届け先,状態,請求先,請求額,クレカ請求日,クレカ請求額,クレカ種類,注文概要URL,領収書URL,商品URL\n"+
		"2018/11/14,503-0000000-0000000,Echo Dot (エコードット) 第2世代,,\"4,980\",1,\"4,980\",,山田太郎,,,,,,,,,\n"+
		"2018/11/14,503-0000000-0000000,（配送料・手数料）,,,,0,,,,,,,,,,,\n"+
		"2018/11/14,503-0000000-0000000,（割引）,,,,,-11,,,,,,,,,,\n"+
		"2018/11/14,503-0000000-0000000,（注文全体）,,,,,\"4,969\",,,,,,,,,,\n")
}

func TestBatchConversion_AllAccounts(t *testing.T) {
	inputDir, outputDir := t.TempDir(), t.TempDir()
	writeInputs(t, inputDir)

	result, err := newTestContainer(t).NewBatchConverter().ConvertDirectory(inputDir, outputDir)

	// the only problem of the run is the store missing from waon.csv
	var failed *parsererror.ConversionFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, 1, failed.UndefinedContents)
	assert.Zero(t, failed.InvalidRows)
	assert.Nil(t, failed.Fatal)
	assert.Equal(t, []string{"waon.csv,ミニストップ,"}, readLines(t, filepath.Join(outputDir, "error.csv")))
	require.Len(t, result.Files, 5)

	assert.Equal(t, []string{
		"2018-11-14,payment,大型出費,家電,ヨドバシゴールドポイントカード・プラス,,Echo Dot 第2世代,,Amazon Japan G.K.,,0,4980,0,,,",
		"2018-11-14,payment,その他,その他,ヨドバシゴールドポイントカード・プラス,,割引,,Amazon Japan G.K.,,0,-11,0,,,",
	}, readLines(t, filepath.Join(outputDir, "amazon201811.csv"))[1:])

	assert.Equal(t, []string{
		"2018-07-11,payment,水道・光熱,電気料金,ヨドバシゴールドポイントカード・プラス,,,,東京電力エナジーパートナー株式会社,,0,11402,0,,,",
		"2018-07-16,payment,,,ヨドバシゴールドポイントカード・プラス,,,,Amazon Japan G.K.,,0,3456,0,,,",
	}, readLines(t, filepath.Join(outputDir, "gold_point_card_plus_201809.csv"))[1:])

	assert.Equal(t, []string{
		"2018-08-20,transfer,,,イオン銀行,三菱UFJ銀行,,,,,0,0,50000,,,",
		"2018-08-25,income,給与,,,三菱UFJ銀行,,,三菱コーポレーション,,300000,0,0,,,",
		"2018-08-26,transfer,,,三菱UFJ銀行,お財布,,,,,0,0,10000,,,",
	}, readLines(t, filepath.Join(outputDir, "mufg201808.csv"))[1:])

	assert.Equal(t, []string{
		"2018-11-13,payment,交通,電車,PASMO,,,溜池山王→六本木一丁目,東京地下鉄株式会社　南北線六本木一丁目駅,,0,195,0,,,",
	}, readLines(t, filepath.Join(outputDir, "pasmo201811.csv"))[1:])

	assert.Equal(t, []string{
		"2018-08-07,payment,食費,食料品,WAON,,,,ファミリーマート　かぶと町永代通り店,,0,129,0,,,",
	}, readLines(t, filepath.Join(outputDir, "waon201808.csv"))[1:])
}

func TestBatchConversion_IsDeterministic(t *testing.T) {
	inputDir := t.TempDir()
	writeInputs(t, inputDir)
	c := newTestContainer(t)

	first, second := t.TempDir(), t.TempDir()
	_, err := c.NewBatchConverter().ConvertDirectory(inputDir, first)
	require.Error(t, err)
	_, err = c.NewBatchConverter().ConvertDirectory(inputDir, second)
	require.Error(t, err)

	for _, name := range []string{"error.csv", "waon201808.csv", "mufg201808.csv", "amazon201811.csv"} {
		assert.Equal(t, readLines(t, filepath.Join(first, name)), readLines(t, filepath.Join(second, name)), name)
	}
}
