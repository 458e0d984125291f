package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

// KindCount is the number of risks of one kind
type KindCount struct {
	Value       string
	Label       string
	Total       int
	Unconfirmed int
}

// Summary aggregates risks for one organization
type Summary struct {
	OrgID       string
	GeneratedAt time.Time
	Total       int
	Confirmed   int
	// Kinds lists registry kinds in declared order followed by any legacy
	// values found in storage, sorted
	Kinds       []KindCount
	Unconfirmed []model.AccountRisk
}

// Summarize counts risks per kind and collects the unconfirmed ones
func Summarize(orgID string, risks []model.AccountRisk, now time.Time) Summary {
	s := Summary{OrgID: orgID, GeneratedAt: now, Total: len(risks)}

	counts := make(map[string]*KindCount)
	for _, k := range risk.Choices() {
		counts[k.Value] = &KindCount{Value: k.Value, Label: k.Label}
	}

	var legacy []string
	for _, r := range risks {
		value := string(r.Risk)
		kc, ok := counts[value]
		if !ok {
			kc = &KindCount{Value: value, Label: risk.DisplayLabel(value)}
			counts[value] = kc
			legacy = append(legacy, value)
		}
		kc.Total++
		if r.Confirmed {
			s.Confirmed++
		} else {
			kc.Unconfirmed++
			s.Unconfirmed = append(s.Unconfirmed, r)
		}
	}

	for _, v := range risk.Values() {
		s.Kinds = append(s.Kinds, *counts[v])
	}
	sort.Strings(legacy)
	for _, v := range legacy {
		s.Kinds = append(s.Kinds, *counts[v])
	}
	return s
}

// Markdown renders s as a Markdown document
func (s Summary) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Account risk report\n\n")
	fmt.Fprintf(&sb, "Organization `%s`, generated %s.\n\n", s.OrgID, s.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&sb, "%d risks, %d confirmed, %d awaiting review.\n\n", s.Total, s.Confirmed, s.Total-s.Confirmed)

	sb.WriteString("## Risks by kind\n\n")
	sb.WriteString("| Risk | Value | Total | Unconfirmed |\n")
	sb.WriteString("|---|---|---:|---:|\n")
	for _, k := range s.Kinds {
		fmt.Fprintf(&sb, "| %s | `%s` | %d | %d |\n", escapeCell(k.Label), k.Value, k.Total, k.Unconfirmed)
	}

	sb.WriteString("\n## Awaiting review\n\n")
	if len(s.Unconfirmed) == 0 {
		sb.WriteString("Nothing to review.\n")
		return sb.String()
	}
	for _, r := range s.Unconfirmed {
		fmt.Fprintf(&sb, "- `%s` %s\n", r.ID, escapeCell(r.String()))
	}
	return sb.String()
}

// HTML renders s as an HTML fragment
func (s Summary) HTML() (string, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, []byte(s.Markdown())); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML converts Markdown source to HTML with GitHub-style tables
func WriteHTML(w io.Writer, source []byte) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert(source, w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
