package tiptap

import (
	"reflect"
	"testing"
)

func textNode(text string) Node {
	return Node{Type: NodeTypeText, Text: text}
}

func dialogueNode(character string, content ...Node) Node {
	return Node{
		Type:    NodeTypeDialogue,
		Attrs:   map[string]interface{}{AttrCharacterName: character},
		Content: content,
	}
}

func TestExtractDialogues(t *testing.T) {
	tests := []struct {
		name   string
		nodes  []Node
		target string
		want   []string
	}{
		{
			name: "grandchild text leaves are joined",
			nodes: []Node{
				dialogueNode("Ann", Node{Content: []Node{textNode("Hi "), textNode("there")}}),
			},
			target: "Ann",
			want:   []string{"Hi there"},
		},
		{
			name: "other character yields nothing",
			nodes: []Node{
				dialogueNode("Ann", Node{Content: []Node{textNode("Hi "), textNode("there")}}),
			},
			target: "Bob",
			want:   nil,
		},
		{
			name: "deeply nested text is still collected",
			nodes: []Node{
				dialogueNode("Ann",
					Node{Content: []Node{
						{Content: []Node{
							{Content: []Node{textNode("buried")}},
						}},
					}},
				),
			},
			target: "Ann",
			want:   []string{"buried"},
		},
		{
			name: "dialogue inside unknown wrapper nodes",
			nodes: []Node{
				{Type: "scene", Content: []Node{
					{Type: "paragraph", Content: []Node{textNode("narration")}},
					dialogueNode("Ann", Node{Content: []Node{textNode("first")}}),
				}},
				dialogueNode("Ann", Node{Content: []Node{textNode("second")}}),
			},
			target: "Ann",
			want:   []string{"first", "second"},
		},
		{
			name: "whitespace-only dialogue is dropped",
			nodes: []Node{
				dialogueNode("Ann", Node{Content: []Node{textNode("   ")}}),
				dialogueNode("Ann"),
				dialogueNode("Ann", Node{Content: []Node{textNode("  kept  ")}}),
			},
			target: "Ann",
			want:   []string{"kept"},
		},
		{
			name: "missing attrs never match",
			nodes: []Node{
				{Type: NodeTypeDialogue, Content: []Node{textNode("anonymous")}},
				dialogueNode("Ann", Node{Content: []Node{textNode("named")}}),
			},
			target: "Ann",
			want:   []string{"named"},
		},
		{
			name:   "empty tree",
			nodes:  nil,
			target: "Ann",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDialogues(tt.nodes, tt.target)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractDialogues() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestExtractDialoguesIsPure(t *testing.T) {
	nodes := []Node{
		dialogueNode("Ann", Node{Content: []Node{textNode("line")}}),
	}
	first := ExtractDialogues(nodes, "Ann")
	second := ExtractDialogues(nodes, "Ann")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running extraction changed the result: %v vs %v", first, second)
	}
}

func TestExtractPlainText(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  string
	}{
		{
			name: "adjacent runs concatenate without separators",
			nodes: []Node{
				{Type: "paragraph", Content: []Node{textNode("A")}},
				textNode("B"),
			},
			want: "AB",
		},
		{
			name: "nested structure preserves document order",
			nodes: []Node{
				{Type: "heading", Content: []Node{textNode("1")}},
				{Type: "paragraph", Content: []Node{
					textNode("2"),
					{Type: "bold", Content: []Node{textNode("3")}},
					textNode("4"),
				}},
			},
			want: "1234",
		},
		{
			name:  "no text leaves",
			nodes: []Node{{Type: "horizontalRule"}, {Type: "pageBreak"}},
			want:  "",
		},
		{
			name:  "empty tree",
			nodes: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlainText(tt.nodes); got != tt.want {
				t.Errorf("ExtractPlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Extraction over siblings must equal the concatenation of extracting each
// sibling on its own.
func TestExtractPlainTextSiblingAssociativity(t *testing.T) {
	a := Node{Type: "paragraph", Content: []Node{textNode("left "), textNode("half")}}
	b := Node{Type: "paragraph", Content: []Node{{Content: []Node{textNode(" right half")}}}}

	joint := ExtractPlainText([]Node{a, b})
	split := ExtractPlainText([]Node{a}) + ExtractPlainText([]Node{b})
	if joint != split {
		t.Errorf("joint extraction %q != concatenated extraction %q", joint, split)
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"type":"doc","content":[{"type":"text","text":"hello"}]}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if got := ExtractPlainText(doc.Content); got != "hello" {
		t.Errorf("parsed content text = %q, want %q", got, "hello")
	}

	empty, err := ParseDocument(nil)
	if err != nil {
		t.Fatalf("ParseDocument(nil) error = %v", err)
	}
	if len(empty.Content) != 0 {
		t.Errorf("ParseDocument(nil) content = %v, want empty", empty.Content)
	}

	if _, err := ParseDocument([]byte("not json")); err == nil {
		t.Error("ParseDocument with invalid JSON should error")
	}
}
