package cmd

import (
	"fmt"
)

// ResolveCmd resolves a (source, target) pair and prints the conversion hint
// without running any conversion.
type ResolveCmd struct {
	Source string `short:"s" long:"source" description:"Source type name" required:"yes"`
	Target string `short:"t" long:"target" description:"Target type name" required:"yes"`
	Stats  bool   `long:"stats" description:"Print resolver cache statistics"`
}

func (c *ResolveCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	hint, err := svc.Resolve(c.Source, c.Target)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", kindLabel(hint.Kind), hint)
	if c.Stats {
		stats := svc.Stats()
		fmt.Printf("probes:%d hits:%d entries:%d\n", stats.Probes, stats.Hits, stats.Entries)
	}
	return nil
}
