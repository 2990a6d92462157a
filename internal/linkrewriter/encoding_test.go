package linkrewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/ws?ed=2048", want: "%2Fws%3Fed%3D2048"},
		{in: "a b", want: "a%20b"},
		{in: "-_.!~*'()", want: "-_.!~*'()"},
		{in: "ü", want: "%C3%BC"},
		{in: "100%", want: "100%25"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeComponent(tt.in))
		})
	}
}

func TestDecodeComponent(t *testing.T) {
	assert.Equal(t, "/ws?ed=2048", decodeComponent("%2Fws%3Fed%3D2048"))
	assert.Equal(t, "a+b", decodeComponent("a+b"))
	assert.Equal(t, "%zz", decodeComponent("%zz"))
	assert.Equal(t, "tail%", decodeComponent("tail%"))
}
