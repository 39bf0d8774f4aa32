// Package parser reads and writes the plain-text message template format.
//
// A category starts on a line of upper-case words followed by a colon, with
// its main message optionally on the same line:
//
//	CHECK IN : When you arrive...
//
// Inside a category, "1." style markers and "Label :" lines (label not all
// upper case) start labelled messages. Any other line continues the current
// message.
package parser

import (
	"regexp"
	"sort"
	"strings"

	"hotelinv/internal/domains/template/model"
)

var (
	categoryLine = regexp.MustCompile(`^([A-Z][A-Z\s]*[A-Z]|[A-Z]+)\s*:\s*(.*)$`)
	numberedLine = regexp.MustCompile(`^(\d+\.)\s*(.*)$`)
	labelledLine = regexp.MustCompile(`^([\p{L}\p{M}\p{N}_\s()]+?)\s*:\s*(.*)$`)

	quotes = strings.NewReplacer("‘", "'", "’", "'", "“", `"`, "”", `"`)
)

func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

type state struct {
	out      model.Templates
	category string
	label    string
	lines    []string
}

func (s *state) flush() {
	if s.category == "" || s.label == "" || len(s.lines) == 0 {
		return
	}

	if text := strings.TrimSpace(strings.Join(s.lines, "\n")); text != "" {
		s.out = s.out.Set(s.category, s.label, text)
	}
	s.lines = nil
}

func (s *state) start(label, first string) {
	s.flush()
	s.label = label
	if first = strings.TrimSpace(first); first != "" {
		s.lines = append(s.lines, first)
	}
}

// Parse reads template text. Text before the first category is ignored and a
// repeated label inside a category replaces the earlier message.
func Parse(content string) model.Templates {
	content = quotes.Replace(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var s state
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := categoryLine.FindStringSubmatch(line); m != nil {
			s.flush()
			s.category = strings.TrimSpace(m[1])
			s.start(model.DefaultLabel, m[2])
			continue
		}

		if s.category == "" {
			continue
		}

		if m := numberedLine.FindStringSubmatch(trimmed); m != nil {
			s.start(m[1], m[2])
			continue
		}

		if m := labelledLine.FindStringSubmatch(trimmed); m != nil {
			if label := strings.TrimSpace(m[1]); label != s.category && !isUpper(label) {
				s.start(label, m[2])
				continue
			}
		}

		if trimmed == "" && len(s.lines) == 0 {
			continue
		}
		s.lines = append(s.lines, line)
	}
	s.flush()

	return s.out
}

func writeMessage(out []string, prefix, text string) []string {
	lines := strings.Split(text, "\n")
	out = append(out, prefix+lines[0])
	return append(out, lines[1:]...)
}

// Format writes templates back to text with categories in name order. The
// output parses back to the same templates.
func Format(t model.Templates) string {
	categories := make(model.Templates, len(t))
	copy(categories, t)
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	var out []string
	for _, c := range categories {
		messages := c.Messages

		if len(messages) > 0 && messages[0].Label == model.DefaultLabel {
			out = writeMessage(out, c.Name+" : ", messages[0].Text)
			messages = messages[1:]
		} else {
			out = append(out, c.Name+" :")
		}

		for _, m := range messages {
			out = append(out, "")

			switch {
			case m.Label == model.DefaultLabel:
				out = append(out, strings.Split(m.Text, "\n")...)
			case m.Numbered():
				out = writeMessage(out, m.Label+" ", m.Text)
			default:
				out = writeMessage(out, m.Label+" : ", m.Text)
			}
		}

		out = append(out, "")
	}

	return strings.Join(out, "\n")
}
