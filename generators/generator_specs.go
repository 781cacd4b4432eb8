package generators

import (
	"sync"

	"github.com/reusee/stratgen/configs"
)

type GeneratorSpec struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	APIKey string `json:"api_key"`
	GeneratorArgs
}

type GetGeneratorSpecs func() ([]GeneratorSpec, error)

func (Module) GetGeneratorSpecs(
	loader configs.Loader,
) GetGeneratorSpecs {
	return sync.OnceValues(func() (ret []GeneratorSpec, err error) {
		defer func() {
			if p := recover(); p != nil {
				if e, ok := p.(error); ok {
					err = e
					return
				}
				panic(p)
			}
		}()
		for specs := range configs.All[[]GeneratorSpec](loader, "generators") {
			ret = append(ret, specs...)
		}
		return
	})
}
