// Package report renders account risk summaries as Markdown and, through
// goldmark, as HTML.
package report
