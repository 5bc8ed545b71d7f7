package cmd

import (
	"fmt"
)

// ConversionsCmd prints every conversion declared by loaded modules: pushes,
// pulls and module exports.
type ConversionsCmd struct {
	Source string `short:"s" long:"source" description:"Only conversions from this type"`
	Target string `short:"t" long:"target" description:"Only conversions into this type"`
}

func (c *ConversionsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	for _, conversion := range svc.Registry().Conversions() {
		if c.Source != "" && string(conversion.Source) != c.Source {
			continue
		}
		if c.Target != "" && string(conversion.Target) != c.Target {
			continue
		}
		fmt.Printf("%s\t%s -> %s\t%s\n", kindLabel(conversion.Kind), conversion.Source, conversion.Target, conversion.Method)
	}
	return nil
}
