package cmd

import (
	"fmt"

	"github.com/viant/coercly/internal/version"
)

// VersionCmd prints build fingerprints of the binary.
type VersionCmd struct {
	Full bool `long:"full" description:"Include commit hash and build date"`
}

func (c *VersionCmd) Execute(_ []string) error {
	fmt.Println(version.Banner())
	if c.Full {
		fmt.Printf("commit: %s\n", valueOrUnknown(version.GitCommit))
		fmt.Printf("built:  %s\n", valueOrUnknown(version.BuildDate))
	}
	return nil
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
