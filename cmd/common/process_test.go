package common

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"fjacquet/zaim-csv/internal/report"
)

func TestRunConversion(t *testing.T) {
	failure := errors.New("conversion failed")

	tests := []struct {
		name        string
		result      report.Report
		err         error
		wantSummary bool
	}{
		{"clean run", report.Report{RunID: "run"}, nil, true},
		{"failed rows", report.Report{RunID: "run", UndefinedContents: []report.ErrorRow{{AccountFile: "waon.csv", StoreName: "ミニストップ"}}}, failure, true},
		{"run did not start", report.Report{}, failure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&out)

			err := RunConversion(cmd, func() (report.Report, error) { return tt.result, tt.err })
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.wantSummary, out.Len() > 0)
		})
	}
}
