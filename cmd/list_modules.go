package cmd

import (
	"fmt"
	"strings"
)

// ListModulesCmd prints every registered module, its load state and the
// types it provides.
type ListModulesCmd struct{}

func (c *ListModulesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, info := range svc.Registry().Modules() {
		state := "registered"
		switch {
		case info.Err != nil:
			state = failColor.Sprintf("failed: %v", info.Err)
		case info.Loaded:
			state = pushColor.Sprint("loaded")
		}
		fmt.Printf("%s\t%s\t%s\n", info.Name, state, strings.Join(info.Provides, ","))
	}
	return nil
}
