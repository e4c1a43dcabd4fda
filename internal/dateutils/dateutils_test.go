package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"slash single digit", "2018/8/7", true, 2018, time.August, 7, DateLayoutSlash},
		{"slash zero padded", "2018/07/03", true, 2018, time.July, 3, DateLayoutSlash},
		{"ISO format", "2018-11-11", true, 2018, time.November, 11, DateLayoutISO},
		{"kanji", "2018年8月20日", true, 2018, time.August, 20, DateLayoutKanji},
		{"full width digits", "２０１８/８/７", true, 2018, time.August, 7, DateLayoutSlash},
		{"with time", "2018/10/23 12:34:56", true, 2018, time.October, 23, DateLayoutFull},
		{"compact", "20181023", true, 2018, time.October, 23, DateLayoutCompact},
		{"padded with spaces", "  2018/8/7 ", true, 2018, time.August, 7, DateLayoutSlash},
		{"empty string", "", false, 0, 0, 0, ""},
		{"impossible date", "2018/2/30", false, 0, 0, 0, ""},
		{"invalid format", "not a date", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseDate(tc.dateStr)
			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
			assert.Equal(t, tc.expectedFmt, format)
		})
	}
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2018-08-07", ToISODate(time.Date(2018, 8, 7, 15, 0, 0, 0, time.UTC)))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "2018/8/7 10:00", CleanDateString(" ２０１８/８/７ \t 10:00 "))
}
