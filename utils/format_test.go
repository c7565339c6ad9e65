package utils

import "testing"

func TestFormatFileSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{1302528, "1.24 MB"},
		{1048576, "1.00 MB"},
		{0, "0.00 MB"},
	}

	for _, tc := range cases {
		if got := FormatFileSize(tc.bytes); got != tc.want {
			t.Fatalf("FormatFileSize(%d) = %q, want %q", tc.bytes, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1234567.5, "$1,234,567.50"},
		{45000, "$45,000.00"},
		{999, "$999.00"},
		{0, "$0.00"},
		{-2500, "-$2,500.00"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.amount); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
