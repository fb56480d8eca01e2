package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskTIN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "*"},
		{"123", "***"},
		{"1234", "*234"},
		{"DMLPRY77D15H501F", "*************01F"},
		{"12.345.678-9", "*********8-9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := MaskTIN(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len([]rune(tt.in)), len([]rune(got)))
		})
	}
}
