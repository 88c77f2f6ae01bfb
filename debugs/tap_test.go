package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/stackcats/logs"
	"github.com/reusee/stackcats/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}
