package graphics

import "testing"

func TestClampInfoLogLength(t *testing.T) {
	cases := []struct {
		in   int32
		want int32
	}{
		{-1, 0},
		{0, 0},
		{100, 100},
		{512, 512},
		{513, 512},
		{4096, 512},
	}
	for _, c := range cases {
		if got := clampInfoLogLength(c.in); got != c.want {
			t.Errorf("clampInfoLogLength(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
