package cmd

import (
	"encoding/json"
	"fmt"
)

// ListTypesCmd prints every registered type together with its providing
// module and declared conversion counts.
type ListTypesCmd struct {
	JSON bool `long:"json" description:"Print result as JSON"`
}

type typeInfo struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Module string `json:"module,omitempty"`
	Pushes int    `json:"pushes"`
	Pulls  int    `json:"pulls"`
}

func (c *ListTypesCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	// Registry types are already sorted for deterministic output.
	var infos []typeInfo
	for _, t := range svc.Registry().Types() {
		infos = append(infos, typeInfo{
			Name:   string(t.Name()),
			Kind:   t.ReflectType().Kind().String(),
			Module: t.Module(),
			Pushes: len(t.Pushes()),
			Pulls:  len(t.Pulls()),
		})
	}
	if c.JSON {
		bytes, _ := json.MarshalIndent(infos, "", "  ")
		fmt.Println(string(bytes))
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s\t%s\t%s\tpush:%d pull:%d\n", info.Name, info.Kind, info.Module, info.Pushes, info.Pulls)
	}
	return nil
}
