package cli

import (
	"fmt"
	"io"

	"github.com/lintup-dev/lintup/internal/branding"
	"github.com/lintup-dev/lintup/internal/document"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
	rootCmd.AddCommand(versionCmd)
}

// versionInfo is the --json shape of the version command.
type versionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

func currentVersion() versionInfo {
	id := branding.Current()
	return versionInfo{
		Name:    id.CLIName,
		Version: orUnknown(buildVersion),
		Commit:  orUnknown(buildCommit),
		Date:    orUnknown(buildDate),
		URL:     id.RepoURL(),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), currentVersion())
	},
}

func writeVersion(w io.Writer, v versionInfo) error {
	switch {
	case versionShort:
		_, err := fmt.Fprintln(w, v.Version)
		return err
	case versionJSON:
		data, err := document.MarshalIndent(v)
		if err != nil {
			return fmt.Errorf("encoding version info: %w", err)
		}
		_, err = w.Write(data)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s\n  commit %s\n  built  %s\n%s\n", v.Name, v.Version, v.Commit, v.Date, v.URL)
	return err
}
