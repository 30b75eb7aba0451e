package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestSettings(t *testing.T) *Settings {
	t.Helper()

	s := &Settings{}
	s.Output.SQLite.Enabled = true
	s.Output.SQLite.Path = "fraud_cases.db"
	s.WebServer.Enabled = true
	s.WebServer.Port = "8090"
	s.Workflow.SessionTTL = 30
	return s
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(s *Settings) {},
		},
		{
			name: "both backends enabled",
			mutate: func(s *Settings) {
				s.Output.MySQL.Enabled = true
			},
			wantErr: "only one of",
		},
		{
			name: "no backend enabled",
			mutate: func(s *Settings) {
				s.Output.SQLite.Enabled = false
			},
			wantErr: "no storage backend",
		},
		{
			name: "empty sqlite path",
			mutate: func(s *Settings) {
				s.Output.SQLite.Path = ""
			},
			wantErr: "output.sqlite.path",
		},
		{
			name: "bad port",
			mutate: func(s *Settings) {
				s.WebServer.Port = "http"
			},
			wantErr: "invalid webserver port",
		},
		{
			name: "zero session ttl",
			mutate: func(s *Settings) {
				s.Workflow.SessionTTL = 0
			},
			wantErr: "sessionttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := defaultTestSettings(t)
			tt.mutate(s)

			err := ValidateSettings(s)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetDefaultConfigPathsIncludesWorkingDirectory(t *testing.T) {
	t.Parallel()

	paths, err := GetDefaultConfigPaths()
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	assert.Equal(t, ".", paths[0])
}
