package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquasecurity/node-lifecycle/version"
)

func TestMajor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "semver", input: "22.5.0", want: 22},
		{name: "v prefix", input: "v23.7.0", want: 23},
		{name: "bare major", input: "24", want: 24},
		{name: "major and minor", input: "v20.11", want: 20},
		{name: "four segments", input: "18.19.1.2", want: 18},
		{name: "text prefix", input: "node-v20.1.0", want: 20},
		{name: "surrounding spaces", input: "  v16.20.2\n", want: 16},
		{name: "pre-release suffix is ignored", input: "v21.0.0-rc.1", want: 21},
		{name: "zero major", input: "v0.12.18", want: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "no digits", input: "lts/iron", wantErr: true},
		{name: "too many digits", input: "12345678901234567890", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := version.Major(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, version.ErrUnparsable)
				assert.Equal(t, version.InvalidMajor, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "22", want: "22.0.0"},
		{input: "v20.11", want: "20.11.0"},
		{input: "v23.7.0", want: "23.7.0"},
		{input: "18.19.1.2", want: "18.19.1"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := version.Coerce(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
