// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/platform-engineering-labs/plansheet/internal/registry"
	"github.com/platform-engineering-labs/plansheet/internal/table"
)

// Format selects the rendered output flavor.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Output records one written page.
type Output struct {
	Path      string
	Group     registry.Group
	Resources []string
}

// Write renders every populated group to a file under dir, one page per
// group, and returns what was written. An empty report writes nothing.
func (r *Report) Write(dir string, format Format) ([]Output, error) {
	groups := r.Groups()
	if len(groups) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var outputs []Output
	for _, g := range groups {
		entries := r.groups[g]

		var page, ext string
		var err error
		switch format {
		case FormatMarkdown:
			page, err = renderMarkdownPage(g, entries)
			ext = ".md"
		default:
			page, err = renderHTMLPage(g, entries)
			ext = ".html"
		}
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, string(g)+ext)
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		out := Output{Path: path, Group: g}
		for _, e := range entries {
			out.Resources = append(out.Resources, e.Resource.Address)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

const pageStyles = `    body {
      font-family: "Helvetica Neue", Arial, sans-serif;
      margin: 2em;
      color: #24292e;
    }
    h1 {
      border-bottom: 2px solid #d0d7de;
      padding-bottom: 0.3em;
    }
    h2 {
      margin-top: 2em;
      font-family: "SFMono-Regular", Consolas, monospace;
      font-size: 1.1em;
    }
    table {
      border-collapse: collapse;
      margin-bottom: 2em;
      width: 100%;
    }
    th, td {
      border: 1px solid #d0d7de;
      padding: 6px 10px;
      text-align: left;
      vertical-align: top;
    }
    th {
      background-color: #f6f8fa;
    }
    td.index-cell {
      text-align: center;
      background-color: #f6f8fa;
      width: 2em;
    }
    td.param-name {
      background-color: #fafbfc;
      font-weight: 600;
    }
    td.param-value {
      font-family: "SFMono-Regular", Consolas, monospace;
      word-break: break-all;
    }
    td.required-yes {
      color: #cf222e;
      font-weight: 600;
    }
    td.required-no {
      color: #57606a;
    }
    td.computed {
      color: #8250df;
      font-style: italic;
    }
    td.pending {
      color: #9a6700;
      font-style: italic;
    }`

func renderHTMLPage(g registry.Group, entries []Entry) (string, error) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("  <title>" + html.EscapeString(g.Title()) + "</title>\n")
	b.WriteString("  <style>\n" + pageStyles + "\n  </style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>" + html.EscapeString(g.Title()) + "</h1>\n")
	for _, e := range entries {
		b.WriteString("<h2>" + html.EscapeString(e.Resource.Address) + "</h2>\n")
		b.WriteString(table.RenderHTML(e.Rows))
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func renderMarkdownPage(g registry.Group, entries []Entry) (string, error) {
	var b strings.Builder
	b.WriteString("# " + g.Title() + "\n")
	for _, e := range entries {
		b.WriteString("\n## " + e.Resource.Address + "\n\n")
		rendered, err := table.RenderMarkdown(e.Rows)
		if err != nil {
			return "", fmt.Errorf("failed to render table for %s: %w", e.Resource.Address, err)
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}
