package jsonprint

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpcpool/injson/document"
)

// oracle is a known-good compact encoder we cross-validate our serializer
// against, not part of the library's own code path.
var oracle = jsoniter.ConfigCompatibleWithStandardLibrary

func buildFromMap(t *testing.T, doc *document.Document, o document.Object, m map[string]interface{}) {
	t.Helper()
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			o.AddNull(k)
		case bool:
			o.AddBool(k, val)
		case float64:
			require.NoError(t, o.AddNum(k, val))
		case string:
			o.AddString(k, val)
		case map[string]interface{}:
			child, err := o.AddObject(k)
			require.NoError(t, err)
			buildFromMap(t, doc, child, val)
		}
	}
}

func TestCompactOutputMatchesJSONIteratorOracle(t *testing.T) {
	cases := []map[string]interface{}{
		{"a": 1.0, "b": true, "c": nil, "d": "hello"},
		{"nested": map[string]interface{}{"x": 1.0, "y": 2.0}},
		{"empty": map[string]interface{}{}},
		{"s": "line\nbreak\ttab\"quote"},
		{"path": "a/b/c"},
	}

	for i, m := range cases {
		doc := document.New()
		root, err := doc.RootObject()
		require.NoError(t, err)
		buildFromMap(t, doc, root, m)

		ours, err := ToString(doc, 0)
		require.NoError(t, err)

		var decodedOurs map[string]interface{}
		require.NoError(t, oracle.UnmarshalFromString(ours, &decodedOurs))

		want, err := oracle.MarshalToString(m)
		require.NoError(t, err)
		var decodedWant map[string]interface{}
		require.NoError(t, oracle.UnmarshalFromString(want, &decodedWant))

		assert.Equalf(t, decodedWant, decodedOurs, "case %d: %s vs oracle %s", i, ours, want)
	}
}
