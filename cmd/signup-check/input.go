package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"formvalidator/internal/core/domain/signup"
	"formvalidator/internal/core/domain/validation"
)

var errNoRecords = errors.New("no records found")

type rawRecord map[string]string

// record keeps the signup fields only. Missing fields become empty values,
// the same way the HTTP envelope treats absent JSON keys.
func (r rawRecord) record() validation.Record {
	return signup.FormFromRecord(validation.Record(r)).Record()
}

func (r rawRecord) unknownKeys() []string {
	known := make(map[string]struct{}, len(signup.Fields()))
	for _, field := range signup.Fields() {
		known[field] = struct{}{}
	}

	var unknown []string
	for key := range r {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// decodeRecords reads every YAML document from in. JSON is accepted as
// YAML. A document is either one mapping or a sequence of mappings.
func decodeRecords(in io.Reader) ([]rawRecord, error) {
	dec := yaml.NewDecoder(in)

	var records []rawRecord
	for doc := 1; ; doc++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}

		decoded, err := decodeDocument(&node)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", doc, err)
		}
		records = append(records, decoded...)
	}

	if len(records) == 0 {
		return nil, errNoRecords
	}
	return records, nil
}

func decodeDocument(node *yaml.Node) ([]rawRecord, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.MappingNode:
		var record rawRecord
		if err := node.Decode(&record); err != nil {
			return nil, err
		}
		return []rawRecord{record}, nil
	case yaml.SequenceNode:
		var records []rawRecord
		if err := node.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case 0:
		return nil, nil
	default:
		return nil, fmt.Errorf("line %d: expected a record or a list of records", node.Line)
	}
}
