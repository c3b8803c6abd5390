package tiptap

import (
	"encoding/json"
)

// Node type tags with extraction semantics. The vocabulary is open:
// unrecognized tags are still traversed structurally.
const (
	NodeTypeDialogue = "dialogue"
	NodeTypeText     = "text"

	AttrCharacterName = "characterName"
)

// Document is the top-level structure of an editor document as stored in
// the blob store: {"type":"doc","content":[...]}.
type Document struct {
	Type    string `json:"type,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Node represents any node in the TipTap tree. All fields are optional on
// the wire; absence is treated as empty.
type Node struct {
	Type    string                 `json:"type,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []Node                 `json:"content,omitempty"`

	// Text leaf payload
	Text string `json:"text,omitempty"`
}

// CharacterName returns the attrs.characterName value for dialogue nodes,
// or "" when the attribute is missing or not a string.
func (n Node) CharacterName() string {
	if n.Attrs == nil {
		return ""
	}
	name, _ := n.Attrs[AttrCharacterName].(string)
	return name
}

// ParseDocument decodes a stored document body. Empty input decodes to an
// empty document rather than an error, matching how unsaved plots read back.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
