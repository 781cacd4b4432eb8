package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/stratgen/debugs"
	"github.com/reusee/stratgen/generators"
	"github.com/reusee/stratgen/strategies"
)

type Module struct {
	dscope.Module
	Generators generators.Module
	Strategies strategies.Module
	Debugs     debugs.Module
}
