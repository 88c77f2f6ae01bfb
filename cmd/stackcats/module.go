package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stackcats/catconfigs"
	"github.com/reusee/stackcats/debugs"
	"github.com/reusee/stackcats/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs catconfigs.Module
	Debugs  debugs.Module
}
