package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cartCommands = []string{"add", "completion", "help", "init", "list", "remove", "serve", "set"}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		name      string
		prefix    string
		want      string
		wantError bool
		errorMsg  string
	}{
		{name: "exact match", prefix: "list", want: "list"},
		{name: "exact match case insensitive", prefix: "LIST", want: "list"},
		{name: "unique prefix l matches list", prefix: "l", want: "list"},
		{name: "unique prefix a matches add", prefix: "a", want: "add"},
		{name: "unique prefix rem matches remove", prefix: "rem", want: "remove"},
		{name: "unique prefix ser matches serve", prefix: "ser", want: "serve"},
		{name: "exact set wins over serve", prefix: "set", want: "set"},
		{
			name:      "ambiguous prefix se matches serve and set",
			prefix:    "se",
			wantError: true,
			errorMsg:  "ambiguous command",
		},
		{
			name:      "no match xyz",
			prefix:    "xyz",
			wantError: true,
			errorMsg:  "unknown command",
		},
		{
			name:      "empty prefix is ambiguous",
			prefix:    "",
			wantError: true,
			errorMsg:  "ambiguous command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MatchCommand(tt.prefix, cartCommands)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatchCommandEmptyCommands(t *testing.T) {
	_, err := MatchCommand("list", []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestExpandCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "no args", args: nil, want: nil},
		{name: "full name", args: []string{"add", "1"}, want: []string{"add", "1"}},
		{name: "prefix expanded", args: []string{"l", "--json"}, want: []string{"list", "--json"}},
		{name: "arguments kept", args: []string{"rem", "4"}, want: []string{"remove", "4"}},
		{name: "flag first", args: []string{"--version"}, want: []string{"--version"}},
		{name: "alias left for cobra", args: []string{"rm", "2"}, want: []string{"rm", "2"}},
		{name: "unknown left for cobra", args: []string{"checkout"}, want: []string{"checkout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandCommand(tt.args, cartCommands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandCommandAmbiguous(t *testing.T) {
	args := []string{"se", "1", "2"}
	_, err := ExpandCommand(args, cartCommands)

	var ambiguous *AmbiguousCommandError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, []string{"serve", "set"}, ambiguous.Matches)
	assert.Equal(t, []string{"se", "1", "2"}, args, "input must not be modified")
}
