// paintsviewer - preview 7TV paints for a list of users
//
// paintsviewer fetches each user's equipped paint from the 7TV GraphQL API
// and renders it as styled text in an HTML page, a web server or a terminal.
package main

import (
	"os"

	"github.com/Fiszh/7TVPaintsViewer/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
