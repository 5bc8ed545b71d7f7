package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/viant/afs"
	"github.com/viant/coercly/coerce"
	"gopkg.in/yaml.v3"
)

// CoerceCmd coerces a value into a target type.  The value can be supplied
// inline via -i/--input or loaded from a file or URL via --file; with
// -s/--source the document is first decoded into the named registered type.
type CoerceCmd struct {
	Target string `short:"t" long:"target" description:"Target type name" required:"yes"`
	Source string `short:"s" long:"source" description:"Decode the input document as this registered type"`
	Inline string `short:"i" long:"input" description:"Inline YAML/JSON value"`
	File   string `long:"file" description:"Path or URL of a YAML/JSON value (use - for stdin)"`
	JSON   bool   `long:"json" description:"Print result as JSON"`
}

func (c *CoerceCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	value, err := c.loadValue(context.Background(), svc)
	if err != nil {
		return err
	}

	out, ok, err := svc.Coerce(c.Target, value)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Printf("%s\tno conversion produced an instance of %s\n", missColor.Sprint("miss"), c.Target)
		return nil
	}

	if c.JSON {
		bytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(bytes))
		return nil
	}
	fmt.Print(spew.Sdump(out))
	return nil
}

func (c *CoerceCmd) loadValue(ctx context.Context, svc *coerce.Service) (any, error) {
	var data []byte
	switch {
	case c.Inline != "":
		data = []byte(c.Inline)
	case c.File == "-":
		var err error
		if data, err = io.ReadAll(os.Stdin); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
	case c.File != "":
		fs := afs.New()
		var err error
		if data, err = fs.DownloadWithURL(ctx, c.File); err != nil {
			return nil, fmt.Errorf("read input %q: %w", c.File, err)
		}
	default:
		return nil, fmt.Errorf("one of -i/--input or --file is required")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	if c.Source == "" {
		// Without a source type the raw document is coerced as is, which
		// for unregistered shapes reports an ordinary miss.
		return doc, nil
	}
	return buildValue(svc, c.Source, doc)
}
