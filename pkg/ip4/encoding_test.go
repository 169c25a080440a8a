package ip4

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrJSON(t *testing.T) {
	a := MustParseAddr("192.168.2.4")

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"192.168.2.4"`, string(data))

	var back Addr
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, a, back)

	// 反序列化接受全部三种文法
	require.NoError(t, json.Unmarshal([]byte(`"0xc0a80204"`), &back))
	assert.Equal(t, a, back)
	require.NoError(t, json.Unmarshal([]byte(`"3232236036"`), &back))
	assert.Equal(t, a, back)

	// null 保持原值
	require.NoError(t, json.Unmarshal([]byte(`null`), &back))
	assert.Equal(t, a, back)

	assert.Error(t, json.Unmarshal([]byte(`"300.1.1.1"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`42`), &back))
}

func TestAddrTextMarshal(t *testing.T) {
	a := MustParseAddr("10.0.0.1")
	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", string(text))

	var back Addr
	require.NoError(t, back.UnmarshalText([]byte("0x0a000001")))
	assert.Equal(t, a, back)

	assert.ErrorIs(t, back.UnmarshalText([]byte("")), ErrInvalidAddress)
}

func TestCidrText(t *testing.T) {
	c := MustParseCidr("192.168.1.0/24")
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", string(text))

	var back Cidr
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, c, back)

	assert.ErrorIs(t, back.UnmarshalText([]byte("bad")), ErrInvalidCidr)
}

func TestRangeText(t *testing.T) {
	r := MustParseRange("10.0.0.1 - 10.0.0.9")
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 - 10.0.0.9", string(text))

	var back Range
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, r, back)
}

func TestNilReceivers(t *testing.T) {
	var a *Addr
	assert.ErrorIs(t, a.UnmarshalText([]byte("1.2.3.4")), ErrNilReceiver)
	assert.ErrorIs(t, a.UnmarshalJSON([]byte(`"1.2.3.4"`)), ErrNilReceiver)

	var c *Cidr
	assert.ErrorIs(t, c.UnmarshalText([]byte("1.2.3.0/24")), ErrNilReceiver)

	var r *Range
	assert.ErrorIs(t, r.UnmarshalText([]byte("1.2.3.4 - 1.2.3.5")), ErrNilReceiver)
}

func TestWireRange(t *testing.T) {
	r := MustParseRange("192.168.1.1 - 192.168.1.100")
	w := WireRangeFrom(r)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"192.168.1.1","end":"192.168.1.100"}`, string(data))

	back, err := w.ToRange()
	require.NoError(t, err)
	assert.Equal(t, r, back)
}

func TestWireRangeToRangeErrors(t *testing.T) {
	_, err := WireRange{Start: "bad", End: "10.0.0.1"}.ToRange()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = WireRange{Start: "10.0.0.1", End: "bad"}.ToRange()
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = WireRange{Start: "10.0.0.9", End: "10.0.0.1"}.ToRange()
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWireRangeString(t *testing.T) {
	assert.Equal(t, "10.0.0.1-10.0.0.9", WireRange{Start: "10.0.0.1", End: "10.0.0.9"}.String())
	assert.Equal(t, "10.0.0.1", WireRange{Start: "10.0.0.1", End: "10.0.0.1"}.String())
}

func TestWireRangesFrom(t *testing.T) {
	ranges := []Range{
		MustParseRange("10.0.0.1 - 10.0.0.9"),
		MustParseRange("192.168.1.0 - 192.168.1.255"),
	}
	wrs := WireRangesFrom(ranges)
	require.Len(t, wrs, 2)
	assert.Equal(t, "10.0.0.1", wrs[0].Start)
	assert.Equal(t, "192.168.1.255", wrs[1].End)

	assert.Nil(t, WireRangesFrom(nil))
}
