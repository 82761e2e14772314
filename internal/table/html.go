// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package table

import (
	"html"
	"strconv"
	"strings"
)

// RenderHTML renders rows as a hierarchical HTML table. Nested attribute
// paths become merged name/index cell pairs per level; the path portion of
// every body row spans exactly twice the maximum path depth in columns.
// Empty input renders as an empty string.
func RenderHTML(rows []Row) string {
	structured := structureRows(rows)
	if len(structured) == 0 {
		return ""
	}

	depth := maxDepth(structured)

	var b strings.Builder
	b.WriteString("<table>\n")
	writeHTMLHeader(&b, depth)
	b.WriteString("<tbody>\n")
	for _, rr := range renderRows(structured, depth) {
		writeHTMLRow(&b, rr)
	}
	b.WriteString("</tbody>\n")
	b.WriteString("</table>")
	return b.String()
}

func writeHTMLHeader(b *strings.Builder, depth int) {
	b.WriteString("<thead>\n  <tr>\n")
	b.WriteString("    <th colspan=\"" + strconv.Itoa(2*depth) + "\">Parameter</th>\n")
	for _, h := range []string{"Value", "Required", "Default", "Description"} {
		b.WriteString("    <th>" + h + "</th>\n")
	}
	b.WriteString("  </tr>\n</thead>\n")
}

func writeHTMLRow(b *strings.Builder, rr renderedRow) {
	b.WriteString("  <tr>\n")

	for _, c := range rr.cells {
		b.WriteString("    <td")
		if c.class != "" {
			b.WriteString(" class=\"" + c.class + "\"")
		}
		b.WriteString(" rowspan=\"" + strconv.Itoa(c.rowspan) + "\"")
		if c.colspan > 1 {
			b.WriteString(" colspan=\"" + strconv.Itoa(c.colspan) + "\"")
		}
		b.WriteString(">" + html.EscapeString(c.text) + "</td>\n")
	}
	if rr.filler > 0 {
		b.WriteString("    <td colspan=\"" + strconv.Itoa(rr.filler) + "\"></td>\n")
	}

	value := FormatValue(rr.row.Value)
	valueClass := "param-value"
	if strings.HasPrefix(value, PendingMarker) {
		valueClass += " pending"
	}
	b.WriteString("    <td class=\"" + valueClass + "\">" + html.EscapeString(value) + "</td>\n")

	requiredClass := ""
	switch rr.row.Required {
	case "Yes":
		requiredClass = "required-yes"
	case "No":
		requiredClass = "required-no"
	}
	b.WriteString("    <td")
	if requiredClass != "" {
		b.WriteString(" class=\"" + requiredClass + "\"")
	}
	b.WriteString(">" + html.EscapeString(rr.row.Required) + "</td>\n")

	b.WriteString("    <td")
	if rr.row.Default == "(computed)" {
		b.WriteString(" class=\"computed\"")
	}
	b.WriteString(">" + html.EscapeString(rr.row.Default) + "</td>\n")

	b.WriteString("    <td>" + html.EscapeString(rr.row.Description) + "</td>\n")
	b.WriteString("  </tr>\n")
}
