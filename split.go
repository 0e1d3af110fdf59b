package tendril

import (
	"fmt"
	"strings"
)

// SplitMode selects the granularity of SplitText.
type SplitMode uint8

const (
	SplitChars SplitMode = iota // one child per rune
	SplitWords                  // one child per whitespace-separated word
	SplitLines                  // one child per newline-separated line
)

func (m SplitMode) suffix() string {
	switch m {
	case SplitChars:
		return "char"
	case SplitWords:
		return "word"
	default:
		return "line"
	}
}

// SplitText replaces el's text content with one child element per fragment
// and returns the children in document order, ready for staggered timeline
// steps. Char and word fragments flow inline; line fragments stack as
// blocks. Empty text yields no children and no mutation.
func SplitText(doc *Document, el *Element, mode SplitMode) []*Element {
	if el.Text == "" {
		return nil
	}

	var frags []string
	switch mode {
	case SplitChars:
		for _, r := range el.Text {
			frags = append(frags, string(r))
		}
	case SplitWords:
		frags = strings.Fields(el.Text)
	case SplitLines:
		frags = strings.Split(el.Text, "\n")
	}

	children := make([]*Element, 0, len(frags))
	for i, frag := range frags {
		if mode == SplitWords && i < len(frags)-1 {
			// Trailing space keeps the inline word advance.
			frag += " "
		}
		span := NewText(fmt.Sprintf("%s-%s-%d", el.Name, mode.suffix(), i), frag)
		if mode != SplitLines {
			span.Display = DisplayInline
		}
		el.AddChild(span)
		children = append(children, span)
	}

	el.Text = ""
	doc.MarkDirty()
	return children
}
