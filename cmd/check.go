package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/xll-gen/assetpack/internal/scan"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan the asset tree and report what would be packaged",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(afero.NewOsFs(), cmd.OutOrStdout()); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck scans like generate does but only prints a summary. Every problem
// is reported on w; the returned error only signals that there was one.
func runCheck(fsys afero.Fs, w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		printError(w, "config", err.Error())
		return err
	}

	printHeader(w, "Asset directories")
	missing := false
	for _, dir := range assetDirs(cfg) {
		info, err := fsys.Stat(dir)
		switch {
		case err != nil:
			printError(w, dir, "missing")
			missing = true
		case !info.IsDir():
			printError(w, dir, "not a directory")
			missing = true
		default:
			printSuccess(w, dir, "ok")
		}
	}
	if missing {
		return fmt.Errorf("asset directories missing")
	}

	entries, err := scan.Scan(fsys, scanOptions(cfg))
	if err != nil {
		printHeader(w, "Assets")
		var ce *scan.CollisionError
		if errors.As(err, &ce) {
			printError(w, ce.Value, ce.Error())
		} else {
			printError(w, "scan", err.Error())
		}
		return err
	}

	printHeader(w, "Assets")
	for _, e := range entries {
		printSuccess(w, e.LogicalName, fmt.Sprintf("%s (%d bytes)", e.Symbol, e.Size()))
	}

	printHeader(w, "Summary")
	printSuccess(w, "assets", fmt.Sprintf("%d files, %d bytes", len(entries), totalSize(entries)))
	if len(cfg.Roots) > 1 {
		printWarning(w, "tiers", "all roots are packaged together; no access control separates them")
	}
	return nil
}
