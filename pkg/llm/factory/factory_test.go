package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	tests := []struct {
		name         string
		providerType string
		wantErr      bool
	}{
		{name: "openai", providerType: "openai"},
		{name: "ollama", providerType: "ollama"},
		{name: "unsupported fails fast", providerType: "other_model", wantErr: true},
		{name: "empty fails fast", providerType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewLLMProvider(tt.providerType, "some-model", "", "key")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}
