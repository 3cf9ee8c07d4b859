package faq

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Entries []Entry `yaml:"entries"`
}

// Decode reads a YAML knowledge base of the form
//
//	entries:
//	  - id: faq1
//	    keywords: [services, physiotherapy]
//	    content: ...
func Decode(r io.Reader) ([]Entry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode knowledge base: %w", err)
	}
	return doc.Entries, nil
}

// Encode writes entries in the format Decode reads.
func Encode(w io.Writer, entries []Entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Entries: entries}); err != nil {
		return fmt.Errorf("failed to encode knowledge base: %w", err)
	}
	return enc.Close()
}

// LoadFile reads and validates a YAML knowledge base file.
func LoadFile(path string) (*KnowledgeBase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return NewKnowledgeBase(entries)
}
