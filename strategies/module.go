package strategies

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/generators"
	"github.com/reusee/stratgen/logs"
)

type Module struct {
	dscope.Module
	Generators generators.Module
	Logs       logs.Module
}
