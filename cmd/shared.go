package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/fatih/color"
	"github.com/viant/coercly/coerce"
	coerceconfig "github.com/viant/coercly/coerce/config"
	"github.com/viant/coercly/coerce/ident"
	"github.com/viant/coercly/internal/conv"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *coerce.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises a coerce.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.  Without a
// configuration every demonstration module is preloaded so that listing
// commands have something to show.
func serviceSingleton() (*coerce.Service, error) {
	svcOnce.Do(func() {
		var cfg *coerceconfig.Config
		if cfgPath != "" {
			var err error
			cfg, err = coerceconfig.Load(context.Background(), cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			// Pretty-print location if the user asked for it via env for debug.
			if debug := os.Getenv("COERCLY_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		} else {
			cfg = &coerceconfig.Config{Preload: []string{"*"}}
		}

		svcInst, svcErr = coerce.New(coerce.WithConfig(cfg), coerce.WithModules(builtinModules()...))
	})
	return svcInst, svcErr
}

var (
	pushColor     = color.New(color.FgGreen)
	pullColor     = color.New(color.FgCyan)
	externalColor = color.New(color.FgMagenta)
	missColor     = color.New(color.FgYellow)
	failColor     = color.New(color.FgRed)
)

// kindLabel renders a conversion kind as a short colored tag.
func kindLabel(kind coerce.HintKind) string {
	switch kind {
	case coerce.HintPush:
		return pushColor.Sprint("push")
	case coerce.HintPull:
		return pullColor.Sprint("pull")
	case coerce.HintExternal:
		return externalColor.Sprint("external")
	default:
		return failColor.Sprint("none")
	}
}

// buildValue decodes a loosely typed document into an instance of the named
// registered type, loading its module on demand.
func buildValue(svc *coerce.Service, typeName string, doc any) (any, error) {
	name, err := ident.Parse(typeName)
	if err != nil {
		return nil, err
	}
	t, err := svc.Registry().Ensure(name)
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(t.ReflectType())
	if doc != nil {
		if err := conv.Convert(doc, ptr.Interface()); err != nil {
			return nil, fmt.Errorf("build %s value: %w", typeName, err)
		}
	}
	return ptr.Elem().Interface(), nil
}
