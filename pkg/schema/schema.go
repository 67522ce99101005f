// Package schema defines the Go struct types for IKP documents and
// provides strict YAML parsing plus the structural validator.
//
// An IKP document is a set of named scenes, each holding an ordered list
// of UI node descriptors. The core never interprets a node beyond its
// required "type" field; everything else belongs to the rendering host.
package schema

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the top-level IKP document.
type Document struct {
	Version string           `yaml:"version,omitempty" json:"version,omitempty"`
	Start   string           `yaml:"start,omitempty"   json:"start,omitempty"`
	Scenes  map[string]Scene `yaml:"scenes"            json:"scenes" jsonschema:"required"`
}

// Scene is one named scene: an ordered list of UI nodes.
type Scene struct {
	UI []UINode `yaml:"ui,omitempty" json:"ui,omitempty"`
}

// UINode is a single UI node descriptor. Beyond the required "type" field
// its shape is opaque to the core.
type UINode map[string]any

// Type returns the node's "type" field, or "" when missing or non-string.
func (n UINode) Type() string {
	t, _ := n["type"].(string)
	return t
}

// Action returns the node's "action" field (a structured mapping or a
// legacy string), or nil.
func (n UINode) Action() any {
	return n["action"]
}

// StartScene resolves the scene the document opens on: the declared start
// scene if it exists, otherwise the lexically first scene name.
func (d *Document) StartScene() string {
	if _, ok := d.Scenes[d.Start]; ok && d.Start != "" {
		return d.Start
	}
	first := ""
	for name := range d.Scenes {
		if first == "" || name < first {
			first = name
		}
	}
	return first
}

// LoadFile reads and strictly parses an IKP document from disk. Unknown
// document-level fields are rejected (yaml.v3 KnownFields).
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load strictly parses an IKP document from a reader.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// LoadAny decodes YAML into the generic mapping/sequence/scalar tree the
// structural validator consumes.
func LoadAny(data []byte) (any, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return tree, nil
}

// Dump re-encodes a document as canonical YAML.
func Dump(doc *Document) ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return []byte(sb.String()), nil
}
