package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/supertrianguloid/komet/contour"
	"github.com/supertrianguloid/komet/internal/log"
	"github.com/supertrianguloid/komet/plugin"
	"github.com/supertrianguloid/komet/render"
)

const version = "0.1.0"

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = printUsage
	flag.Parse()

	if err := log.Init(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	var err error
	switch command {
	case "contour":
		err = handleContour(ctx, args, os.Stdout)
	case "render":
		err = handleRender(ctx, args)
	case "call":
		err = handleCall(ctx, args, os.Stdin, os.Stdout)
	case "version":
		fmt.Printf("komet version %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Errorf("%s: %v", command, err)
		log.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`komet - contour lines and summary statistics

Usage: komet [-debug] <command> [options]

Commands:
  contour    Trace contour lines for a job file (JSON or msgpack output)
  render     Draw the contour lines of a job file to an image
  call       Run a plugin function on a request read from stdin
  version    Show komet version
  help       Show this help message

Job file (YAML):
  x: [0, 1, 2]          column coordinates, ascending
  y: [0, 1]             row coordinates, ascending
  z: [0, 1, 2, 1, 2, 3] samples, row-major
  levels: [0.5, 1.5]    or bins: 4 for evenly spaced levels
  workers: 4            levels traced concurrently
  output:
    format: json        json|msgpack for contour, png|svg|pdf for render
    width: 6            image size in inches
    height: 6

Examples:
  komet contour -job field.yaml > lines.json
  komet render -job field.yaml -out field.svg
  komet call histogram < request.cbor > response.cbor`)
}

func handleContour(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("contour", flag.ContinueOnError)
	jobPath := fs.String("job", "", "Path to the YAML job file (required)")
	format := fs.String("format", "", "Output format, json or msgpack (overrides the job file)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobPath == "" {
		return fmt.Errorf("-job flag is required")
	}

	job, err := loadJob(*jobPath)
	if err != nil {
		return err
	}
	contours, err := runJob(ctx, job)
	if err != nil {
		return err
	}
	if *format == "" {
		*format = job.Output.Format
	}
	return writeContours(stdout, *format, contours)
}

func handleRender(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	jobPath := fs.String("job", "", "Path to the YAML job file (required)")
	out := fs.String("out", "", "Image path; the extension selects the format (default contour.<output.format>)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobPath == "" {
		return fmt.Errorf("-job flag is required")
	}

	job, err := loadJob(*jobPath)
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		format := job.Output.Format
		if format == "" {
			format = "png"
		}
		path = "contour." + format
	}
	contours, err := runJob(ctx, job)
	if err != nil {
		return err
	}

	opts := render.Options{
		Title:  job.Output.Title,
		Width:  vg.Length(job.Output.Width) * vg.Inch,
		Height: vg.Length(job.Output.Height) * vg.Inch,
	}
	if err := render.Save(path, contours, opts); err != nil {
		return err
	}
	log.Infow("rendered contours", "path", path, "format", strings.TrimPrefix(filepath.Ext(path), "."), "levels", len(contours))
	return nil
}

func handleCall(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("call", flag.ContinueOnError)
	workers := fs.Int("workers", contour.DefaultWorkers, "Levels traced concurrently by contour")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: komet call [-workers n] <function>")
	}

	input, err := io.ReadAll(stdin)
	if err != nil {
		return err
	}
	host := plugin.NewHost(plugin.WithLogger(log.GetZapLogger()), plugin.WithWorkers(*workers))
	output, err := host.Call(ctx, fs.Arg(0), input)
	if err != nil {
		return err
	}
	_, err = stdout.Write(output)
	return err
}

func runJob(ctx context.Context, job *Job) ([]contour.Contour, error) {
	g, levels, err := job.grid()
	if err != nil {
		return nil, err
	}
	log.Debugf("tracing %d levels over a %dx%d grid with %d workers", len(levels), g.Cols(), g.Rows(), job.Workers)
	return contour.Generate(ctx, g, levels, contour.WithWorkers(job.Workers))
}
