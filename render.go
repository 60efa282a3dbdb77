// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/shelf/library"
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cardBorderColor()).
		Padding(0, 1)
}

// renderRecordCard draws one book as a bordered card.
func renderRecordCard(rec library.Record) string {
	year := "unknown year"
	if rec.ReleaseYear > 0 {
		year = fmt.Sprint(rec.ReleaseYear)
	}
	body := fmt.Sprintf("📖 %s\n✍️  %s (%s)\n🔢 ISBN: %s", rec.Title, rec.AuthorName, year, rec.Key)
	return cardStyle().Render(body)
}

// printRecords writes a card per record, or notFound when there are none.
func printRecords(w io.Writer, records []library.Record, notFound string) {
	if len(records) == 0 {
		fmt.Fprintf(w, "%s%s%s\n", Info, notFound, Reset)
		return
	}
	fmt.Fprintf(w, "📚 Found %d book(s):\n", len(records))
	for _, rec := range records {
		fmt.Fprintln(w, renderRecordCard(rec))
	}
}

// recordMarkdown describes one book for the detail view.
func recordMarkdown(rec library.Record) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", rec.Title))
	content.WriteString(fmt.Sprintf("**Author:** %s\n\n", rec.AuthorName))
	content.WriteString(fmt.Sprintf("**Author ID:** `%s`\n\n", rec.AuthorID))
	if rec.ReleaseYear > 0 {
		content.WriteString(fmt.Sprintf("**Released:** %d\n\n", rec.ReleaseYear))
	}
	content.WriteString(fmt.Sprintf("**ISBN:** %s\n", rec.Key))
	return content.String()
}

// renderMarkdown renders md for the terminal, falling back to plain text.
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

// citation is the one-line reference copied to the clipboard.
func citation(rec library.Record) string {
	if rec.ReleaseYear > 0 {
		return fmt.Sprintf("%s (%d). %s. ISBN %s", rec.AuthorName, rec.ReleaseYear, rec.Title, rec.Key)
	}
	return fmt.Sprintf("%s. %s. ISBN %s", rec.AuthorName, rec.Title, rec.Key)
}
