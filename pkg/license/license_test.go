package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryIsValid(t *testing.T) {
	reg := Default()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "recognized CC license", value: "CC-BY", want: true},
		{name: "recognized software license", value: "Apache-2.0", want: true},
		{name: "multi-word license", value: "All Rights Reserved", want: true},
		{name: "lowercase is rejected", value: "cc-by", want: false},
		{name: "unknown license", value: "invalid-license", want: false},
		{name: "empty string", value: ""},
		{name: "display form is not an identifier", value: "CC BY 4.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reg.IsValid(tt.value))
			// Pure lookup: repeated calls agree.
			assert.Equal(t, reg.IsValid(tt.value), reg.IsValid(tt.value))
		})
	}
}

func TestRegistryIsParameterized(t *testing.T) {
	custom := Registry{"House License": true}
	assert.True(t, custom.IsValid("House License"))
	assert.False(t, custom.IsValid("CC-BY"))
}

func TestRegistryNamesSorted(t *testing.T) {
	names := Default().Names()
	assert.Len(t, names, 14)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://creativecommons.org/licenses/by/4.0/", URL("CC-BY"))
	assert.Equal(t, "", URL("Proprietary"))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CC-BY", "CC BY 4.0"},
		{"CC-BY-NC-SA", "CC BY-NC-SA 4.0"},
		{"CC0", "CC0"},
		{"MIT", "MIT"},
		{"Public Domain", "Public Domain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayName(tt.in), tt.in)
	}
}
