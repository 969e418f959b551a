package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Fiszh/7TVPaintsViewer/internal/cli"
)

// newFakeService answers the two GraphQL operations for a small set of users.
func newFakeService(t *testing.T) *httptest.Server {
	t.Helper()

	users := map[string]string{
		"grad":    `{"data":{"user":{"id":"grad","username":"grad","display_name":"Grad","style":{"paint":{"id":"p-grad","kind":"PAINT","name":"Grad"}}}}}`,
		"nopaint": `{"data":{"user":{"id":"nopaint","username":"np","display_name":"NP","style":{"paint":null}}}}`,
		"ghost":   `{"data":{"user":null}}`,
	}
	paints := map[string]string{
		"p-grad": `{"data":{"cosmetics":{"paints":[{"id":"p-grad","name":"Grad","angle":90,"image_url":null,` +
			`"stops":[{"at":0,"color":-1},{"at":0.3,"color":-16776961}],"shadows":[]}],"badges":[]}}}`,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var body string
		switch req.OperationName {
		case "GetUserCurrentCosmetics":
			id, _ := req.Variables["id"].(string)
			body = users[id]
		case "GetCosmetics":
			list, _ := req.Variables["list"].([]any)
			if len(list) == 1 {
				id, _ := list[0].(string)
				body = paints[id]
			}
		}
		if body == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRenderCommand(t *testing.T) {
	server := newFakeService(t)

	out, stderr, err := run(t, "render", "--endpoint", server.URL,
		"-u", "grad", "-u", "ghost=Missing", "-u", "nopaint")
	if err != nil {
		t.Fatalf("render error = %v\nstderr: %s", err, stderr)
	}

	for _, want := range []string{
		"linear-gradient(90deg, rgb(255, 255, 255) 0%, rgb(255, 0, 0) 100%)",
		">Grad</div>",
		`<div class="paint placeholder" data-user="ghost">Paint</div>`,
		"linear-gradient(45deg, white, white)",
		">No Paint</div>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q\n%s", want, out)
		}
	}

	if !strings.Contains(stderr, "failed to load paint") {
		t.Errorf("expected ghost failure to be logged, stderr: %s", stderr)
	}
}

func TestRenderToFile(t *testing.T) {
	server := newFakeService(t)
	path := filepath.Join(t.TempDir(), "paints.html")

	if _, stderr, err := run(t, "render", "-q", "--endpoint", server.URL, "-u", "grad", "-o", path); err != nil {
		t.Fatalf("render error = %v\nstderr: %s", err, stderr)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "<!DOCTYPE html>") {
		t.Errorf("output file is not an HTML page:\n%s", data)
	}
}

func TestListJSON(t *testing.T) {
	server := newFakeService(t)

	out, stderr, err := run(t, "list", "-q", "--endpoint", server.URL, "-f", "json", "-u", "grad,nopaint")
	if err != nil {
		t.Fatalf("list error = %v\nstderr: %s", err, stderr)
	}

	var nodes []struct {
		UserID string `json:"user_id"`
		Text   string `json:"text"`
		Styled bool   `json:"styled"`
	}
	if err := json.Unmarshal([]byte(out), &nodes); err != nil {
		t.Fatalf("decode list output: %v\n%s", err, out)
	}
	if len(nodes) != 2 || nodes[0].Text != "Grad" || nodes[1].Text != "No Paint" {
		t.Errorf("unexpected nodes: %+v", nodes)
	}
}

func TestListTable(t *testing.T) {
	server := newFakeService(t)

	out, _, err := run(t, "list", "-q", "--preview", "never", "--endpoint", server.URL, "-u", "grad", "-u", "ghost")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "USER") || !strings.Contains(out, "Grad") || !strings.Contains(out, "error:") {
		t.Errorf("unexpected table:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("preview disabled but ANSI escapes printed:\n%q", out)
	}
}

func TestListRejectsUnknownFormat(t *testing.T) {
	server := newFakeService(t)
	if _, _, err := run(t, "list", "-q", "--endpoint", server.URL, "-u", "grad", "-f", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestInvalidEndpoint(t *testing.T) {
	if _, _, err := run(t, "render", "--endpoint", "ftp://example.com"); err == nil {
		t.Error("Expected error for non-HTTP endpoint")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "paintsviewer ") {
		t.Errorf("version output = %q", out)
	}
}
