package model

import (
	"strings"
	"time"

	"hotelinv/shared/model"

	"github.com/google/uuid"
)

const (
	TableName  = "message_templates"
	EntityName = "template"

	FieldID       = "id"
	FieldCategory = "category"
	FieldPosition = "position"

	// DefaultLabel marks the main message of a category, the one written on
	// the category line itself.
	DefaultLabel = "DEFAULT"
)

type Message struct {
	Label string
	Text  string
}

// Numbered reports whether the label is a list marker such as "2.".
func (m Message) Numbered() bool {
	digits, ok := strings.CutSuffix(m.Label, ".")
	if !ok || digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type Category struct {
	Name     string
	Messages []Message
}

// Templates keeps categories in the order they were first seen.
type Templates []Category

// Set adds the message to the category, replacing an existing message with
// the same label. A new main message goes first. Missing categories are
// appended.
func (t Templates) Set(category, label, text string) Templates {
	for i := range t {
		if t[i].Name != category {
			continue
		}
		for j := range t[i].Messages {
			if t[i].Messages[j].Label == label {
				t[i].Messages[j].Text = text
				return t
			}
		}
		if label == DefaultLabel {
			t[i].Messages = append([]Message{{Label: label, Text: text}}, t[i].Messages...)
		} else {
			t[i].Messages = append(t[i].Messages, Message{Label: label, Text: text})
		}
		return t
	}

	return append(t, Category{Name: category, Messages: []Message{{Label: label, Text: text}}})
}

// Remove drops one labelled message. A category left empty disappears.
func (t Templates) Remove(category, label string) (Templates, bool) {
	for i := range t {
		if t[i].Name != category {
			continue
		}
		for j := range t[i].Messages {
			if t[i].Messages[j].Label != label {
				continue
			}
			t[i].Messages = append(t[i].Messages[:j], t[i].Messages[j+1:]...)
			if len(t[i].Messages) == 0 {
				t = append(t[:i], t[i+1:]...)
			}
			return t, true
		}
	}
	return t, false
}

func (t Templates) Len() (n int) {
	for _, c := range t {
		n += len(c.Messages)
	}
	return n
}

// Row is one stored message. Position orders rows across the whole set.
type Row struct {
	ID       string `db:"id"`
	Category string `db:"category"`
	Label    string `db:"label"`
	Message  string `db:"message"`
	Position int    `db:"position"`
	model.Metadata
}

func (t Templates) ToRows(username string, now time.Time) []Row {
	rows := make([]Row, 0, t.Len())
	for _, c := range t {
		for _, m := range c.Messages {
			rows = append(rows, Row{
				ID:       uuid.NewString(),
				Category: c.Name,
				Label:    m.Label,
				Message:  m.Text,
				Position: len(rows),
				Metadata: model.Created(username, now),
			})
		}
	}
	return rows
}

// FromRows rebuilds the set from rows sorted by position.
func FromRows(rows []Row) Templates {
	var t Templates
	for _, r := range rows {
		t = t.Set(r.Category, r.Label, r.Message)
	}
	return t
}
