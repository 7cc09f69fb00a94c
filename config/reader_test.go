package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "trims key and value",
			input: "  seederPort\t=  10234 \r\n",
			want:  []Entry{{Line: 1, Key: "seederPort", Value: "10234"}},
		},
		{
			name:  "skips comments blank and malformed lines",
			input: "; seederPort = 1\n\n   ;apiPort=2\njust some text\n= orphan value\napiPort = 8081\n",
			want:  []Entry{{Line: 6, Key: "apiPort", Value: "8081"}},
		},
		{
			name:  "splits on first equals only",
			input: "walletNotify = notify.sh --arg=%s\n",
			want:  []Entry{{Line: 1, Key: "walletNotify", Value: "notify.sh --arg=%s"}},
		},
		{
			name:  "keeps repeated keys in file order",
			input: "addPeer = a:1\naddTestnetPeer = t:1\naddPeer = a:1\n",
			want: []Entry{
				{Line: 1, Key: "addPeer", Value: "a:1"},
				{Line: 2, Key: "addTestnetPeer", Value: "t:1"},
				{Line: 3, Key: "addPeer", Value: "a:1"},
			},
		},
		{
			name:  "empty value",
			input: "externalIp =\n",
			want:  []Entry{{Line: 1, Key: "externalIp", Value: ""}},
		},
		{
			name:  "byte order mark",
			input: "\ufeffapiPort = 1\n",
			want:  []Entry{{Line: 1, Key: "apiPort", Value: "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadEntries(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadEntriesEmpty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
