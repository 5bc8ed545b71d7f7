package cmd

import (
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/viant/coercly/coerce"
	coerceconfig "github.com/viant/coercly/coerce/config"
)

// ProbeCmd executes every probe declared in the configuration: it builds the
// source value, coerces it to the target and reports one line per probe.
// Probes run concurrently; output order follows the configuration.
type ProbeCmd struct {
	Parallel int  `short:"p" long:"parallel" description:"Maximum probes in flight" default:"4"`
	JSON     bool `long:"json" description:"Print results as JSON"`
}

type probeResult struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`
}

func (c *ProbeCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	probes := svc.Config().Probes
	if len(probes) == 0 {
		return fmt.Errorf("configuration declares no probes")
	}

	if c.Parallel < 1 {
		c.Parallel = 1
	}
	results := make([]probeResult, len(probes))
	var group errgroup.Group
	group.SetLimit(c.Parallel)
	for i, probe := range probes {
		i, probe := i, probe
		group.Go(func() error {
			results[i] = runProbe(svc, probe)
			return nil
		})
	}
	_ = group.Wait()

	if c.JSON {
		bytes, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(bytes))
		return nil
	}

	counts := map[string]int{}
	for _, result := range results {
		counts[result.Outcome]++
		fmt.Printf("%s\t%s -> %s\t%s\n", outcomeLabel(result.Outcome), result.Source, result.Target, result.Detail)
	}
	fmt.Printf("ok:%d miss:%d error:%d\n", counts["ok"], counts["miss"], counts["error"])
	return nil
}

func runProbe(svc *coerce.Service, probe *coerceconfig.Probe) probeResult {
	result := probeResult{Source: probe.Source, Target: probe.Target}
	value, err := buildValue(svc, probe.Source, probe.Value)
	if err != nil {
		result.Outcome = "error"
		result.Detail = err.Error()
		return result
	}
	out, ok, err := svc.Coerce(probe.Target, value)
	switch {
	case err != nil:
		result.Outcome = "error"
		result.Detail = err.Error()
	case !ok:
		result.Outcome = "miss"
	default:
		result.Outcome = "ok"
		result.Detail = fmt.Sprintf("%T", out)
	}
	return result
}

func outcomeLabel(outcome string) string {
	switch outcome {
	case "ok":
		return pushColor.Sprint("ok")
	case "miss":
		return missColor.Sprint("miss")
	default:
		return failColor.Sprint("error")
	}
}
