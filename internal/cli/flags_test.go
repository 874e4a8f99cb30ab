package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelay(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		want    time.Duration
		wantErr bool
	}{
		{
			name: "valid seconds",
			flag: "5s",
			want: 5 * time.Second,
		},
		{
			name: "valid milliseconds",
			flag: "500ms",
			want: 500 * time.Millisecond,
		},
		{
			name: "valid complex duration",
			flag: "1m30s",
			want: 90 * time.Second,
		},
		{
			name:    "bare number returns error",
			flag:    "5",
			wantErr: true,
		},
		{
			name:    "invalid string returns error",
			flag:    "fast",
			wantErr: true,
		},
		{
			name:    "negative duration rejected",
			flag:    "-5s",
			wantErr: true,
		},
		{
			name:    "zero duration rejected",
			flag:    "0s",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDelay(tt.flag)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
