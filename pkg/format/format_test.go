package format

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1234.5)

	assert.True(t, strings.HasPrefix(got, "R$"), got)
	assert.Contains(t, got, "1.234,50")
}

func TestFormatCurrency_Negative(t *testing.T) {
	got := FormatCurrency(-10)

	assert.True(t, strings.HasPrefix(got, "-R$"), got)
	assert.Contains(t, got, "10,00")
}

func TestFormatCurrency_NaN(t *testing.T) {
	assert.Equal(t, FormatCurrency(0), FormatCurrency(math.NaN()))
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 0.25, want: "25.00%"},
		{ratio: 0, want: "0.00%"},
		{ratio: -0.5, want: "-50.00%"},
		{ratio: 1.23456, want: "123.46%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(tt.ratio))
		})
	}
}

func TestSummaryAndChartAgreeOnROI(t *testing.T) {
	for _, ratio := range []float64{0.1, 0.333, 2.5, -0.07} {
		assert.Equal(t, FormatPercentage(ratio), fmt.Sprintf("%.2f%%", ROIPercent(ratio)))
	}
}
