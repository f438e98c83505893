// Command vegarender renders a Vega or Vega-Lite chart
// specification file into a self-contained HTML document.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/ungerik/go-fs"

	"github.com/domonda/go-vega"
	"github.com/domonda/go-vega/htmlembed"
	"github.com/domonda/go-vega/specfile"
)

var (
	outputPath      string
	watch           bool
	actions         bool
	encoding        string
	vegaVersion     string
	vegaLiteVersion string
	embedVersion    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vegarender [spec-file]",
		Short: "Render a Vega or Vega-Lite specification to HTML",
		Long: `vegarender reads a chart specification file (.vg, .vg.json, .vl,
.vl.json, or their .yaml/.yml variants) and writes a self-contained
HTML document that displays the chart.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever the spec file changes (requires --output)")
	rootCmd.Flags().BoolVar(&actions, "actions", false, "Attach export/source/editor action links to the chart")
	rootCmd.Flags().StringVar(&encoding, "encoding", "", "Encoding of the spec file if not UTF-8")
	rootCmd.Flags().StringVar(&vegaVersion, "vega-version", htmlembed.DefaultVegaVersion, "Version of the vega script to load")
	rootCmd.Flags().StringVar(&vegaLiteVersion, "vega-lite-version", htmlembed.DefaultVegaLiteVersion, "Version of the vega-lite script to load")
	rootCmd.Flags().StringVar(&embedVersion, "embed-version", htmlembed.DefaultEmbedVersion, "Version of the vega-embed script to load")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	inputPath := args[0]

	if watch && outputPath == "" {
		return fmt.Errorf("--watch requires --output")
	}

	embedder := htmlembed.NewEmbedder().
		WithVegaVersion(vegaVersion).
		WithVegaLiteVersion(vegaLiteVersion).
		WithEmbedVersion(embedVersion)
	if actions {
		embedder.WithOptions(vega.OptionAllActions)
	}
	registry := vega.NewDefaultRegistry(embedder)

	if err := render(ctx, registry, inputPath); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndRender(ctx, registry, inputPath)
}

func render(ctx context.Context, registry *vega.Registry, inputPath string) error {
	doc, err := loadSpec(ctx, inputPath)
	if err != nil {
		return err
	}

	factory, ok := registry.FactoryFor(doc.MimeType)
	if !ok {
		return fmt.Errorf("no renderer registered for MIME type %q", doc.MimeType)
	}
	view := factory.Create(vega.ViewOptions{MimeType: doc.MimeType})

	completion := view.Render(vega.MimeBundle{doc.MimeType: doc.Spec})
	if err := completion.Wait(ctx); err != nil {
		return err
	}
	// Rendering completions never fail, embedder errors only
	// surface through Err. The CLI reports them instead of
	// writing an empty document.
	if err := completion.Err(); err != nil {
		return err
	}

	content := view.Container().Content()
	if outputPath == "" {
		_, err = os.Stdout.Write(content)
		return err
	}
	err = os.WriteFile(outputPath, content, 0666)
	if err != nil {
		return err
	}
	slog.Info("Rendered chart",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.String("mode", view.Mode().String()))
	return nil
}

func loadSpec(ctx context.Context, inputPath string) (*specfile.Document, error) {
	file := fs.File(inputPath)
	if encoding == "" {
		return specfile.Load(ctx, file)
	}
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, err
	}
	return specfile.ParseWithEncoding(data, file.Name(), encoding)
}

// watchAndRender re-renders on every write to the spec file until
// the context is done. The containing directory is watched because
// editors often replace files instead of writing them in place.
func watchAndRender(ctx context.Context, registry *vega.Registry, inputPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(inputPath)
	if err = watcher.Add(dir); err != nil {
		return err
	}
	slog.Info("Watching for changes", slog.String("file", inputPath))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(inputPath) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := render(ctx, registry, inputPath); err != nil {
				slog.Error("Re-rendering failed", slog.String("error", err.Error()))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watch error", slog.String("error", err.Error()))
		}
	}
}
