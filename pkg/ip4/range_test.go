package ip4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeEnclosingCidr(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantExact bool
	}{
		{name: "half /24 minus network addr", input: "192.168.1.1 - 192.168.1.127", want: "192.168.1.0/25", wantExact: false},
		{name: "exact /24", input: "192.168.1.0 - 192.168.1.255", want: "192.168.1.0/24", wantExact: true},
		{name: "single address", input: "10.0.0.1 - 10.0.0.1", want: "10.0.0.1/32", wantExact: true},
		{name: "crosses /24 boundary", input: "192.168.1.200 - 192.168.2.10", want: "192.168.0.0/22", wantExact: false},
		{name: "full space", input: "0.0.0.0 - 255.255.255.255", want: "0.0.0.0/0", wantExact: true},
		{name: "widens to /0", input: "0.0.0.1 - 255.255.255.254", want: "0.0.0.0/0", wantExact: false},
		{name: "exact /31", input: "10.0.0.2 - 10.0.0.3", want: "10.0.0.2/31", wantExact: true},
		{name: "misaligned pair", input: "10.0.0.1 - 10.0.0.2", want: "10.0.0.0/30", wantExact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MustParseRange(tt.input)
			c := r.EnclosingCidr()
			assert.Equal(t, tt.want, c.String())
			assert.Equal(t, tt.wantExact, r.IsExactCidr())

			// 最小包围子网必须覆盖区间两端
			assert.True(t, c.Contains(r.Start()))
			assert.True(t, c.Contains(r.End()))
			if !tt.wantExact {
				// 非精确时为真超集
				assert.Greater(t, c.Size(), r.Size())
			} else {
				assert.Equal(t, c.Range(), r)
			}
		})
	}
}

func TestRangeEnclosingCidrCoversScenario(t *testing.T) {
	// "192.168.1.1 - 192.168.1.127" 的最小包围子网是 192.168.1.0/25，
	// 其主机区间为 192.168.1.0 - 192.168.1.127
	r := MustParseRange("192.168.1.1 - 192.168.1.127")
	c := r.EnclosingCidr()
	assert.Equal(t, "192.168.1.0 - 192.168.1.127", c.Range().String())
}

func TestRangeFrom(t *testing.T) {
	r, err := RangeFrom(MustParseAddr("10.0.0.1"), MustParseAddr("10.0.0.9"))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), r.Size())

	_, err = RangeFrom(MustParseAddr("10.0.0.9"), MustParseAddr("10.0.0.1"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRangeContains(t *testing.T) {
	r := MustParseRange("10.0.0.5 - 10.0.0.10")
	assert.True(t, r.Contains(MustParseAddr("10.0.0.5")))
	assert.True(t, r.Contains(MustParseAddr("10.0.0.10")))
	assert.False(t, r.Contains(MustParseAddr("10.0.0.4")))
	assert.False(t, r.Contains(MustParseAddr("10.0.0.11")))
}

func TestRangeString(t *testing.T) {
	r := MustParseRange("192.168.1.1-192.168.1.127")
	assert.Equal(t, "192.168.1.1 - 192.168.1.127", r.String())
}

func TestRangeSizeFullSpace(t *testing.T) {
	r := MustParseRange("0.0.0.0 - 255.255.255.255")
	assert.Equal(t, uint64(1)<<32, r.Size())
}

func TestRangeAddrs(t *testing.T) {
	r := MustParseRange("10.0.0.254 - 10.0.1.1")
	var got []string
	for a := range r.Addrs() {
		got = append(got, a.String())
	}
	assert.Equal(t, []string{"10.0.0.254", "10.0.0.255", "10.0.1.0", "10.0.1.1"}, got)
}

func TestRangeAddrsEarlyBreak(t *testing.T) {
	r := MustParseRange("0.0.0.0 - 255.255.255.255")
	n := 0
	for range r.Addrs() {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestRangeAddrsEndsAtMax(t *testing.T) {
	// 区间尾部在地址空间末端时迭代必须正常终止
	r := MustParseRange("255.255.255.254 - 255.255.255.255")
	n := 0
	for range r.Addrs() {
		n++
	}
	assert.Equal(t, 2, n)
}
