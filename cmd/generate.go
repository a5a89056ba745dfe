package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xll-gen/assetpack/internal/config"
	"github.com/xll-gen/assetpack/internal/generator"
	"github.com/xll-gen/assetpack/internal/scan"
	"github.com/xll-gen/assetpack/internal/watch"
)

// watchDebounce is how long the tree must stay quiet before regenerating.
const watchDebounce = 250 * time.Millisecond

var (
	generateOutput  string
	generatePackage string
	generateMode    string
	generateWatch   bool
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Go file packaging every asset",
	Long: `Scans <root>/<category>/ for every configured root and category and writes a Go
source file holding one constant per asset plus NewLoader. The file goes to stdout
unless --output (or output in assetpack.yaml) is set.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(cmd.Context(), cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to this file instead of stdout")
	generateCmd.Flags().StringVar(&generatePackage, "package", "", "Package name of the generated file")
	generateCmd.Flags().StringVar(&generateMode, "mode", "", "Embedding mode: literal or embed")
	generateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Regenerate whenever an asset directory changes")
	rootCmd.AddCommand(generateCmd)
}

// runGenerate loads the configuration, applies flag overrides and generates
// once, or keeps regenerating in watch mode.
func runGenerate(ctx context.Context, stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if generateOutput != "" {
		cfg.Output = generateOutput
	}
	if generatePackage != "" {
		cfg.Package = generatePackage
	}
	if generateMode != "" {
		cfg.Mode = generateMode
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if !generateWatch {
		return generateOnce(afero.NewOsFs(), cfg, stdout)
	}

	if cfg.Output == "" {
		return fmt.Errorf("--watch needs an output file (--output)")
	}
	if err := generateOnce(afero.NewOsFs(), cfg, stdout); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	return watch.Run(ctx, assetDirs(cfg), watchDebounce, func() error {
		return generateOnce(afero.NewOsFs(), cfg, stdout)
	})
}

// generateOnce scans the tree and writes the generated file.
func generateOnce(fsys afero.Fs, cfg *config.Config, stdout io.Writer) error {
	entries, err := scan.Scan(fsys, scanOptions(cfg))
	if err != nil {
		return err
	}

	pkgDir := "."
	if cfg.Output != "" {
		pkgDir = filepath.Dir(cfg.Output)
	}
	src, err := generator.Render(entries, generator.Options{
		Package:    cfg.Package,
		Mode:       generator.Mode(cfg.Mode),
		PackageDir: pkgDir,
	})
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err := stdout.Write(src)
		return err
	}

	written, err := writeIfChanged(fsys, cfg.Output, src)
	if err != nil {
		return err
	}
	slog.Info("generated assets",
		"output", cfg.Output,
		"assets", len(entries),
		"bytes", totalSize(entries),
		"pack_id", generator.PackID(entries).String(),
		"changed", written)
	return nil
}

// writeIfChanged replaces path with src unless it already holds exactly src,
// so an unchanged tree does not invalidate build caches. The new content is
// written to a temporary file and renamed into place.
func writeIfChanged(fsys afero.Fs, path string, src []byte) (bool, error) {
	if old, err := afero.ReadFile(fsys, path); err == nil && bytes.Equal(old, src) {
		return false, nil
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(fsys, tmp, src, 0644); err != nil {
		return false, err
	}
	if err := fsys.Rename(tmp, path); err != nil {
		fsys.Remove(tmp)
		return false, err
	}
	return true, nil
}

func scanOptions(cfg *config.Config) scan.Options {
	return scan.Options{
		Roots:      cfg.Roots,
		Categories: cfg.ScanCategories(),
		Separator:  cfg.KeySeparator,
		Reserved:   generator.ReservedFor(cfg.Package),
	}
}

// assetDirs lists every <root>/<category> directory of cfg.
func assetDirs(cfg *config.Config) []string {
	var dirs []string
	for _, root := range cfg.Roots {
		for _, c := range cfg.Categories {
			dirs = append(dirs, filepath.Join(root, c))
		}
	}
	return dirs
}

func totalSize(entries []scan.Entry) int {
	n := 0
	for _, e := range entries {
		n += e.Size()
	}
	return n
}
