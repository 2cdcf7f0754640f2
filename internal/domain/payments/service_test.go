package payments

import "testing"

func TestToCents(t *testing.T) {
	cases := []struct {
		total float64
		want  int64
	}{
		{19.99, 1999},
		{0.29, 29},
		{41.35, 4135},
		{100, 10000},
		{0.01, 1},
	}
	for _, c := range cases {
		if got := toCents(c.total); got != c.want {
			t.Errorf("toCents(%v) = %d, want %d", c.total, got, c.want)
		}
	}
}
