package card

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tags the variant an Inline holds.
type Kind string

const (
	KindPlainText Kind = "PlainText"
	KindTextRun   Kind = "TextRun"
)

// Inline is one element of a rich text block. Kind selects which field is
// meaningful: Text for PlainText, Run for TextRun. Any other kind is
// carried through unread so callers can reject it.
type Inline struct {
	Kind Kind
	Text string
	Run  *TextRun
}

func PlainText(text string) Inline {
	return Inline{Kind: KindPlainText, Text: text}
}

func Run(r TextRun) Inline {
	return Inline{Kind: KindTextRun, Run: &r}
}

type typed struct {
	Type Kind `json:"type"`
}

// UnmarshalJSON accepts a bare string as plain text or an object with a
// "type" field.
func (in *Inline) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*in = PlainText(s)
		return nil
	}

	var t typed
	if err := json.Unmarshal(b, &t); err != nil {
		return fmt.Errorf("card: inline: %w", err)
	}
	switch t.Type {
	case KindTextRun:
		var r TextRun
		if err := json.Unmarshal(b, &r); err != nil {
			return fmt.Errorf("card: text run: %w", err)
		}
		*in = Run(r)
	case KindPlainText:
		var r TextRun
		if err := json.Unmarshal(b, &r); err != nil {
			return fmt.Errorf("card: plain text: %w", err)
		}
		*in = PlainText(r.Text)
	default:
		*in = Inline{Kind: t.Type}
	}
	return nil
}

func (in Inline) MarshalJSON() ([]byte, error) {
	switch in.Kind {
	case KindPlainText:
		return json.Marshal(in.Text)
	case KindTextRun:
		run := in.Run
		if run == nil {
			run = &TextRun{}
		}
		return json.Marshal(struct {
			Type Kind `json:"type"`
			*TextRun
		}{KindTextRun, run})
	}
	return json.Marshal(typed{Type: in.Kind})
}
