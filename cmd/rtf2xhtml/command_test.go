package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/growler/go-rtf2html"
	"github.com/growler/go-rtf2html/dot"
)

func TestCountKinds(t *testing.T) {
	doc := dot.Doc(
		dot.Container(dot.Text("a", dot.Bold), dot.Html("<hr />")),
		dot.Para(dot.Str("b"), dot.Image()),
	)
	want := map[rtf2html.Kind]int{
		rtf2html.ContainerKind: 1,
		rtf2html.ParagraphKind: 1,
		rtf2html.TextKind:      1,
		rtf2html.HtmlKind:      1,
		rtf2html.ImageKind:     1,
		rtf2html.FragmentKind:  3,
	}
	if diff := cmp.Diff(want, countKinds(doc)); diff != "" {
		t.Errorf("countKinds mismatch (-want +got):\n%s", diff)
	}
}

func TestStripHtml(t *testing.T) {
	doc := dot.Doc(dot.Container(dot.Text("a"), dot.Html("<script></script>")), dot.Html("<hr />"))
	out, err := rtf2html.Conf{}.Render(stripHtml(doc))
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a" {
		t.Errorf("expected %q, got %q", "a", out)
	}
}

const appDoc = `
content:
  - kind: container
    content:
      - text: hi
        props: {bold: true}
`

func runApp(t *testing.T, args ...string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(name, []byte(appDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	for i, a := range args {
		if a == "{}" {
			args[i] = name
		}
	}

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	if err := app.Run(append([]string{"rtf2xhtml"}, args...)); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestAppCommands(t *testing.T) {
	var tests = []struct {
		args []string
		want []string
	}{
		{[]string{"{}"}, []string{"<strong>hi</strong>"}},
		{[]string{"render", "{}"}, []string{"<strong>hi</strong>"}},
		{[]string{"render", "--pretty", "{}"}, []string{"\n<strong>hi</strong>\n"}},
		{[]string{"tree", "{}"}, []string{"strong", `"hi"`}},
		{[]string{"stats", "{}"}, []string{"Container", "Fragment", "Text"}},
	}
	for _, tt := range tests {
		got := runApp(t, tt.args...)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("%v: expected output to contain %q, got %q", tt.args, w, got)
			}
		}
	}
	if got := runApp(t, "{}"); got != "<strong>hi</strong>" {
		t.Errorf("expected the default command to render, got %q", got)
	}
}

func TestAppRenderToPipe(t *testing.T) {
	name := filepath.Join(t.TempDir(), "doc.yaml")
	if err := os.WriteFile(name, []byte(appDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	app := newApp()
	app.Writer = w
	app.ErrWriter = io.Discard
	err = app.Run([]string{"rtf2xhtml", "render", name})
	w.Close()
	if err != nil {
		t.Fatalf("expected rendering to a pipe to succeed, got %v", err)
	}
	if got := <-done; got != "<strong>hi</strong>" {
		t.Errorf("expected %q, got %q", "<strong>hi</strong>", got)
	}
}
