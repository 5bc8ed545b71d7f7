package cmd

import (
	"fmt"

	"github.com/viant/coercly/coerce"
)

// ExternalsCmd prints declared external conversions, including ones whose
// exporting module has not loaded yet.
type ExternalsCmd struct{}

func (c *ExternalsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, ref := range svc.Registry().Externals() {
		fmt.Printf("%s\t%s\tvia %s.%s\n", kindLabel(coerce.HintExternal), ref.Pair, ref.Module, ref.Function)
	}
	return nil
}
