package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xll-gen/assetpack/pkg/resources"
)

var catText bool

// catCmd represents the cat command.
var catCmd = &cobra.Command{
	Use:   "cat <name>",
	Short: "Print an asset by logical name, resolved from the asset roots on disk",
	Long: `Resolves a logical name (for example "textures/logo.png") the same way the
generated loader does, but reads the file from the configured roots. Useful to
check which root a name resolves to before generating.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCat(afero.NewOsFs(), args[0], cmd.OutOrStdout()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	catCmd.Flags().BoolVar(&catText, "text", false, "Load the asset as text instead of bytes")
	rootCmd.AddCommand(catCmd)
}

func runCat(fsys afero.Fs, name string, w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := resources.NewFileLoader(fsys, cfg.KeySeparator, cfg.Roots...)
	if catText {
		s, err := loader.LoadString(name)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	}

	buf, err := loader.LoadDataBuffer(name)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
