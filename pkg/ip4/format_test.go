package ip4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		quad    string
		hex     string
		decimal string
	}{
		{name: "typical", input: "192.168.2.4", quad: "192.168.2.4", hex: "0xc0a80204", decimal: "3232236036"},
		{name: "zero", input: "0.0.0.0", quad: "0.0.0.0", hex: "0x0", decimal: "0"},
		{name: "max", input: "255.255.255.255", quad: "255.255.255.255", hex: "0xffffffff", decimal: "4294967295"},
		{name: "small value no padding", input: "0.0.0.9", quad: "0.0.0.9", hex: "0x9", decimal: "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseAddr(tt.input)
			assert.Equal(t, tt.quad, a.String())
			assert.Equal(t, tt.hex, a.Hex())
			assert.Equal(t, tt.decimal, a.Decimal())

			assert.Equal(t, tt.quad, a.FormatString(FormatQuad))
			assert.Equal(t, tt.hex, a.FormatString(FormatHex))
			assert.Equal(t, tt.decimal, a.FormatString(FormatDecimal))
		})
	}
}

func TestAddrStringRoundTrip(t *testing.T) {
	// 点分十进制往返：toDottedQuad(parse(s)) == s
	for _, s := range []string{"0.0.0.0", "1.2.3.4", "10.0.255.1", "192.168.2.4", "255.255.255.255"} {
		a, err := ParseAddr(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "quad", want: FormatQuad},
		{input: "ipv4", want: FormatQuad},
		{input: "HEX", want: FormatHex},
		{input: "decimal", want: FormatDecimal},
		{input: "integer", want: FormatDecimal},
		{input: " quad ", want: FormatQuad},
		{input: "binary", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "quad", FormatQuad.String())
	assert.Equal(t, "hex", FormatHex.String())
	assert.Equal(t, "decimal", FormatDecimal.String())
	assert.Equal(t, "unknown", Format(99).String())
}
