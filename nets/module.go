package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/configs"
	"github.com/reusee/stratgen/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
