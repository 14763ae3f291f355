package hostmsg

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findbar/internal/domain"
)

func TestDecodeParams(t *testing.T) {
	params, err := DecodeParams([]byte(`{
		"path": "contract.txt",
		"keywords": [
			{"id": null, "keyword": "advance payment", "type": "NON_STANDARD"},
			{"id": "k1", "keyword": "deposit", "type": "PERSONAL"},
			{"keyword": "draft", "type": "EDITABLE"},
			{"id": "ignored", "keyword": "term", "type": "FIXED"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "contract.txt", params.Path)
	assert.Equal(t, []domain.KeywordEntry{
		{Keyword: "advance payment", Kind: domain.KindFixed},
		{ID: "k1", Keyword: "deposit", Kind: domain.KindEditable},
		{Keyword: "draft", Kind: domain.KindEditable},
		{Keyword: "term", Kind: domain.KindFixed},
	}, params.Keywords)
}

func TestDecodeParamsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "{}", `{"path":"x"}`} {
		_, err := DecodeParams([]byte(in))
		assert.ErrorIs(t, err, ErrEmptyPayload, "input %q", in)
	}
}

func TestDecodeParamsEmptyKeywordListIsValid(t *testing.T) {
	params, err := DecodeParams([]byte(`{"keywords": []}`))
	require.NoError(t, err)
	assert.Empty(t, params.Keywords)
	assert.NotNil(t, params.Keywords)
}

func TestDecodeParamsRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"blank keyword", `{"keywords":[{"keyword":"  ","type":"FIXED"}]}`},
		{"unknown type", `{"keywords":[{"keyword":"a","type":"SHARED"}]}`},
		{"missing type", `{"keywords":[{"keyword":"a"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeParams([]byte(tt.in))
			assert.ErrorIs(t, err, ErrInvalidEntry)
		})
	}

	_, err := DecodeParams([]byte(`{"keywords": "nope"}`))
	assert.Error(t, err)
}

func TestEncodeParamsRoundTripsThroughDecode(t *testing.T) {
	in := domain.HostParams{Keywords: []domain.KeywordEntry{
		{Keyword: "a", Kind: domain.KindFixed},
		{ID: "k9", Keyword: "b", Kind: domain.KindEditable},
	}}
	data, err := EncodeParams(in)
	require.NoError(t, err)

	out, err := DecodeParams(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOutboundWireShape(t *testing.T) {
	data, err := json.Marshal(SaveKey("deposit", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"saveKey","params":{"keyword":"deposit"}}`, string(data))

	data, err = json.Marshal(SaveKey("deposit", "k1"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"saveKey","params":{"keyword":"deposit","id":"k1"}}`, string(data))

	data, err = json.Marshal(DeleteKey(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"deleteKey","params":{}}`, string(data))
}

func TestOutboundValidate(t *testing.T) {
	assert.NoError(t, SaveKey("a", "").Validate())
	assert.NoError(t, DeleteKey("k1").Validate())
	assert.NoError(t, DeleteKey("").Validate())
	assert.ErrorIs(t, SaveKey(" ", "k1").Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, Outbound{Event: "renameKey"}.Validate(), ErrUnknownEvent)
}
