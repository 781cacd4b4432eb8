package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/configs"
	"github.com/reusee/stratgen/debugs"
	"github.com/reusee/stratgen/logs"
	"github.com/reusee/stratgen/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
