package compiler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/aretw0/offhook/internal/validator"
	"github.com/aretw0/offhook/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document mirrors the on-disk rule table layout.
// State keys stay strings so that an identifier and a label naming the
// same state can be told apart.
type document struct {
	Initial domain.State             `mapstructure:"initial"`
	Exit    domain.State             `mapstructure:"exit"`
	States  map[string][]domain.Rule `mapstructure:"states"`
}

// Parser is responsible for converting raw bytes into a Definition.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads path and parses it, choosing the format from the extension.
func (p *Parser) ParseFile(path string) (*domain.Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule table: %w", err)
	}
	def, err := p.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return def, nil
}

// Parse decodes a rule table document and validates it.
func (p *Parser) Parse(data []byte, format Format) (*domain.Definition, error) {
	raw := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	var doc document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  enumHook,
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode rule table: %w", err)
	}

	if _, ok := raw["initial"]; !ok {
		doc.Initial = domain.OffHook
	}
	if _, ok := raw["exit"]; !ok {
		doc.Exit = domain.OnHook
	}

	table, err := resolveStates(doc.States)
	if err != nil {
		return nil, err
	}
	def := &domain.Definition{
		Initial: doc.Initial,
		Exit:    doc.Exit,
		Table:   table,
	}

	if err := validator.ValidateDefinition(def); err != nil {
		return nil, err
	}
	return def, nil
}

// resolveStates parses each key of the states section. Two keys naming the
// same state are rejected.
func resolveStates(raw map[string][]domain.Rule) (domain.RuleTable, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := make(domain.RuleTable, len(raw))
	seen := make(map[domain.State]string, len(raw))
	for _, key := range keys {
		s, err := domain.ParseState(key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode rule table: states: %w", err)
		}
		if prev, ok := seen[s]; ok {
			return nil, fmt.Errorf("%w: state %s declared twice (%q and %q)", domain.ErrInvalidRuleTable, s.Name(), prev, key)
		}
		seen[s] = key

		if rules := raw[key]; len(rules) > 0 {
			table[s] = rules
		}
	}
	return table, nil
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported rule table extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
}

var (
	stateType   = reflect.TypeOf(domain.State(0))
	triggerType = reflect.TypeOf(domain.Trigger(0))
)

// enumHook turns state and trigger names into their enum values.
func enumHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case stateType:
		return domain.ParseState(data.(string))
	case triggerType:
		return domain.ParseTrigger(data.(string))
	}
	return data, nil
}
