// Package debugs exposes machine snapshots to starlark for trace filtering and interactive inspection.
package debugs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}
