package tiptap

import (
	"strings"
)

// ExtractDialogues walks nodes depth-first, pre-order, and collects the
// spoken text of every dialogue node attributed to name. The text of a
// matched node is the concatenation of all text leaves anywhere under it,
// in document order. Entries that trim to "" are dropped.
//
// A matched dialogue node is not scanned for further dialogue matches; any
// other node with children is recursed into regardless of its type.
func ExtractDialogues(nodes []Node, name string) []string {
	var lines []string
	for _, node := range nodes {
		if node.Type == NodeTypeDialogue && node.CharacterName() == name {
			text := strings.TrimSpace(ExtractPlainText(node.Content))
			if text != "" {
				lines = append(lines, text)
			}
			continue
		}
		if len(node.Content) > 0 {
			lines = append(lines, ExtractDialogues(node.Content, name)...)
		}
	}
	return lines
}

// ExtractPlainText concatenates the text payload of every text node in the
// tree, depth-first, pre-order, with no separators. A tree without text
// leaves yields "".
func ExtractPlainText(nodes []Node) string {
	var sb strings.Builder
	writePlainText(nodes, &sb)
	return sb.String()
}

func writePlainText(nodes []Node, sb *strings.Builder) {
	for _, node := range nodes {
		if node.Type == NodeTypeText {
			sb.WriteString(node.Text)
		}
		if len(node.Content) > 0 {
			writePlainText(node.Content, sb)
		}
	}
}
