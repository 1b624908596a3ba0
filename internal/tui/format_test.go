package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMoneyUsesCurrencyMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{4.9, "EUR", "€4.90"},
		{4.9, "", "€4.90"},
		{1200, "JPY", "¥1,200"},
		{12.345, "KWD", "12.345 .\u062f.\u0643"},
		{4.9, "XYZ", "4.90XYZ"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, formatMoney(tc.amount, tc.code), "%v %s", tc.amount, tc.code)
	}
}
