package utils

import (
	"testing"
	"time"
)

func TestTravelQuote(t *testing.T) {
	q := TravelQuote(1000, 3)
	if q.BaseAmount != 3000 || q.Taxes != 360 || q.FinalAmount != 3360 {
		t.Fatalf("TravelQuote(1000, 3) = %+v, want 3000/360/3360", q)
	}
}

func TestHotelQuote(t *testing.T) {
	q := HotelQuote(2000, 3, 1)
	if q.BaseAmount != 6000 || q.Taxes != 720 || q.FinalAmount != 6720 {
		t.Fatalf("HotelQuote(2000, 3, 1) = %+v, want 6000/720/6720", q)
	}
}

func TestQuoteTaxRounding(t *testing.T) {
	// 12% of 105 is 12.6, rounds to 13
	q := TravelQuote(105, 1)
	if q.Taxes != 13 {
		t.Fatalf("taxes = %d, want 13", q.Taxes)
	}
	if q.FinalAmount != 118 {
		t.Fatalf("final = %d, want 118", q.FinalAmount)
	}
}

func TestNightsBetween(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.Local) }

	if n := NightsBetween(day(10), day(13)); n != 3 {
		t.Fatalf("3 full days = %d nights, want 3", n)
	}
	// partial day still counts as a night (ceil)
	in := time.Date(2025, 1, 10, 14, 0, 0, 0, time.Local)
	out := time.Date(2025, 1, 11, 10, 0, 0, 0, time.Local)
	if n := NightsBetween(in, out); n != 1 {
		t.Fatalf("overnight stay = %d nights, want 1", n)
	}
	// order does not matter
	if n := NightsBetween(day(13), day(10)); n != 3 {
		t.Fatalf("reversed order = %d nights, want 3", n)
	}
}

func TestFormatRupees(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		999:     "Rs 999",
		1250:    "Rs 1,250",
		30240:   "Rs 30,240",
		1000000: "Rs 1,000,000",
		-4500:   "-Rs 4,500",
	}
	for in, want := range cases {
		if got := FormatRupees(in); got != want {
			t.Fatalf("FormatRupees(%d) = %q, want %q", in, got, want)
		}
	}
}
