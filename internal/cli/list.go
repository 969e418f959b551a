package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Fiszh/7TVPaintsViewer/internal/page"
	"github.com/Fiszh/7TVPaintsViewer/internal/viewer"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var (
		format  string
		preview string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List each user's derived paint style",
		Long: `Fetch every configured user's paint and print the derived label,
background and filter as a table or JSON.

With --preview (auto by default on a terminal) the label is coloured along
its gradient using 24-bit ANSI colour.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("unknown format %q (expected table or json)", format)
			}
			showPreview, err := resolvePreview(preview, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			results := a.viewer.Resolve(cmd.Context(), a.config.ViewerUsers())
			out := cmd.OutOrStdout()

			if format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(viewer.Nodes(results))
			}

			table := NewTable([]string{"USER", "NOTE", "LABEL", "BACKGROUND", "FILTER"})
			table.SetColumnMaxWidth(3, 60)
			table.SetColumnMaxWidth(4, 40)
			for _, res := range results {
				if res.Err != nil {
					table.AddRow(res.User.ID, res.User.Note, page.PlaceholderText, "error: "+res.Err.Error())
					continue
				}
				table.AddRow(res.User.ID, res.User.Note, res.Style.Label, res.Style.BackgroundImage, res.Style.ShadowFilter)
			}
			fmt.Fprint(out, table.Render())

			if showPreview {
				fmt.Fprintln(out)
				for _, res := range results {
					if res.Err != nil {
						continue
					}
					fmt.Fprintf(out, "  %s\n", previewLabel(res.Style.Label, res.Paint))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().StringVar(&preview, "preview", "auto", "colour preview of labels (auto, always, never)")
	return cmd
}

// resolvePreview decides whether to print ANSI previews. "auto" enables them
// only when out is a terminal.
func resolvePreview(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := out.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown preview mode %q (expected auto, always or never)", mode)
	}
}
