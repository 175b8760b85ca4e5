package content

import (
	"encoding/json"
	"testing"

	"timo-intelligence-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDocumentJSON(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(model.DefaultContent())
	require.NoError(t, err)
	return data
}

func TestDecodeDocumentRoundTrip(t *testing.T) {
	doc := DecodeDocument(defaultDocumentJSON(t))
	require.NotNil(t, doc)
	assert.Equal(t, model.DefaultContent().Hero, doc.Hero)
	assert.Len(t, doc.Solutions, len(model.DefaultContent().Solutions))
}

func TestDecodeDocumentRejects(t *testing.T) {
	mutate := func(t *testing.T, fn func(m map[string]any)) []byte {
		t.Helper()
		var m map[string]any
		require.NoError(t, json.Unmarshal(defaultDocumentJSON(t), &m))
		fn(m)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name string
		data func(t *testing.T) []byte
	}{
		{
			name: "not json",
			data: func(t *testing.T) []byte { return []byte("{nope") },
		},
		{
			name: "top level array",
			data: func(t *testing.T) []byte { return []byte("[]") },
		},
		{
			name: "null",
			data: func(t *testing.T) []byte { return []byte("null") },
		},
		{
			name: "missing hero field",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					delete(m["hero"].(map[string]any), "tag")
				})
			},
		},
		{
			name: "hero field wrong type",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					m["hero"].(map[string]any)["tag"] = 7
				})
			},
		},
		{
			name: "empty solutions",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					m["solutions"] = []any{}
				})
			},
		},
		{
			name: "solution with unknown icon",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					sol := m["solutions"].([]any)[0].(map[string]any)
					sol["iconName"] = "NotAnIcon"
				})
			},
		},
		{
			name: "missing contact section",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					delete(m, "contact")
				})
			},
		},
		{
			name: "null about section",
			data: func(t *testing.T) []byte {
				return mutate(t, func(m map[string]any) {
					m["about"] = nil
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, DecodeDocument(tt.data(t)))
		})
	}
}

func TestValidateCandidateExtraFieldsTolerated(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal(defaultDocumentJSON(t), &m))
	m["someFutureSection"] = map[string]any{"x": "y"}
	m["hero"].(map[string]any)["extra"] = "ignored"

	assert.True(t, ValidateCandidate(m))
}
