// Command fillplan loads a form-graph fixture and a fill profile, runs a
// fill pass against a recording canvas, and prints the resulting placement
// plan. It is a dry-run aid for debugging label sheets and templates.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	formfill "github.com/wudi/formfill"
	"github.com/wudi/formfill/config"
	"github.com/wudi/formfill/graph"
	"github.com/wudi/formfill/observability"
	"github.com/wudi/formfill/render"
)

type options struct {
	graphPath   string
	profilePath string
	listFields  bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fillplan: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "fillplan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: go run ./cmd/fillplan [flags] <graph.json>\n")
		flag.PrintDefaults()
	}
	profile := flag.String("profile", "", "YAML fill profile (values + options)")
	list := flag.Bool("fields", false, "List field names and exit")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing graph fixture path")
	}
	opts.graphPath = flag.Arg(0)
	opts.profilePath = *profile
	opts.listFields = *list
	return opts, nil
}

func run(opts options) error {
	doc, err := graph.LoadFixture(opts.graphPath)
	if err != nil {
		return err
	}

	log := observability.NewCapture()
	canvas := render.NewRecorder()
	engine := formfill.New(doc, canvas, formfill.WithLogger(log))

	if opts.listFields {
		for _, name := range engine.FieldNames() {
			fmt.Println(name)
		}
		return nil
	}

	var fillOpts []formfill.Option
	valueMap := map[string]string{}
	if opts.profilePath != "" {
		profile, err := config.Load(opts.profilePath)
		if err != nil {
			return err
		}
		fillOpts = profile.Options()
		valueMap = profile.Values
	}

	if err := engine.Fill(context.Background(), valueMap, fillOpts...); err != nil {
		return err
	}

	for _, op := range canvas.Ops {
		printOp(op)
	}
	for _, entry := range log.Entries() {
		fmt.Printf("# %s: %s", entry.Level, entry.Msg)
		for _, f := range entry.Fields {
			fmt.Printf(" %s=%v", f.Key(), f.Value())
		}
		fmt.Println()
	}
	return nil
}

func printOp(op render.Op) {
	switch op.Kind {
	case "text":
		fmt.Printf("page %d text (%.1f,%.1f) w=%.1f %q font=%s/%s size=%.1f align=%s\n",
			op.Page, op.X, op.Y, op.Width, op.Text,
			op.TextOpts.Font, op.TextOpts.Style, op.TextOpts.FontSize, op.TextOpts.Align)
	case "fill":
		fmt.Printf("page %d fill (%.1f,%.1f) %gx%g\n", op.Page, op.X, op.Y, op.Width, op.Height)
	case "stroke":
		fmt.Printf("page %d stroke (%.1f,%.1f) %gx%g\n", op.Page, op.X, op.Y, op.Width, op.Height)
	case "barcode":
		fmt.Printf("page %d barcode (%.1f,%.1f) w=%.1f %s %q rot=%s xdim=%g\n",
			op.Page, op.X, op.Y, op.Width,
			op.Symbol.Symbology(), op.Symbol.Payload(),
			op.BarcodeOpts.Rotation, op.BarcodeOpts.XDim)
	}
}
