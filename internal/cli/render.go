package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Fiszh/7TVPaintsViewer/internal/page"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the paints page as HTML",
		Long: `Fetch every configured user's paint and write a static HTML page with one
styled element per user. Users whose fetch fails keep the "Paint" placeholder.

Examples:
  # Write the page for the built-in users to stdout
  paintsviewer render

  # Render two users into a file
  paintsviewer render -u 64c957b885d4aac49663c2eb -u 628e93a4539b08d3d9084d88 -o paints.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			nodes := a.viewer.Load(cmd.Context(), a.config.ViewerUsers())

			var buf bytes.Buffer
			if err := page.Render(&buf, page.Document{Title: a.config.Title, Nodes: nodes}); err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}

			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			a.logger.Info("page written", "path", output, "users", len(nodes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
