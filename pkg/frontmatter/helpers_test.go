package frontmatter

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thoreinstein/matter/pkg/value"
)

// object builds an ordered object from alternating keys and values.
func object(kv ...any) *value.Object {
	obj := value.NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		obj.Set(kv[i].(string), kv[i+1].(value.Value))
	}
	return obj
}

var equalValues = cmp.Comparer(value.Equal)

func assertValue(t *testing.T, got, want value.Value) {
	t.Helper()
	if diff := cmp.Diff(want, got, equalValues); diff != "" {
		gj, _ := json.Marshal(got)
		t.Errorf("value mismatch (-want +got):\n%s\ngot JSON: %s", diff, gj)
	}
}
