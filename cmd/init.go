package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/xll-gen/assetpack/internal/config"
	"github.com/xll-gen/assetpack/internal/templates"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create assetpack.yaml and the asset directory skeleton",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runInit(dir, cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing assets: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit writes a default assetpack.yaml into dir and creates every
// <root>/<category> directory with a .gitkeep so that empty categories survive
// version control. The .gitkeep files are hidden and never packaged.
//
// Parameters:
//   - dir: The directory to initialize. Created if missing.
//   - w: Where progress is reported.
//
// Returns:
//   - error: An error if assetpack.yaml already exists or a file cannot be written.
func runInit(dir string, w io.Writer) error {
	fmt.Fprintf(w, "Initializing assets in %s...\n", dir)

	cfgPath := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(cfgPath); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	cfg := config.Default()
	if err := generateFileFromTemplate("assetpack.yaml.tmpl", cfgPath, cfg); err != nil {
		return err
	}
	printSuccess(w, config.DefaultPath, "created")

	for _, sub := range assetDirs(cfg) {
		path := filepath.Join(dir, sub)
		if err := os.MkdirAll(path, 0755); err != nil {
			return err
		}
		keep := filepath.Join(path, ".gitkeep")
		if _, err := os.Stat(keep); os.IsNotExist(err) {
			if err := os.WriteFile(keep, nil, 0644); err != nil {
				return err
			}
		}
		printSuccess(w, sub, "ready")
	}

	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  add files under <root>/<category>/")
	fmt.Fprintln(w, "  assetpack check                      # (see what will be packaged)")
	fmt.Fprintln(w, "  assetpack generate -o assets_gen.go  # (write the Go file)")

	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	content, err := templates.Get(tmplName)
	if err != nil {
		return err
	}
	t, err := template.New(tmplName).Parse(content)
	if err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}
