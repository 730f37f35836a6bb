package donors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/etnz/donors/date"
	"github.com/xeipuuv/gojsonschema"
)

// Records are checked against a JSON schema before being decoded. The schema
// is derived from the record struct so that both never diverge. It only
// rejects records that can not be used at all: a record must be an object
// with an "id", and dates must be strings. Amounts, currencies and text
// fields accept anything, they are coerced while decoding.

var schemas = map[Kind]*gojsonschema.Schema{
	KindBudget:        mustSchema(Budget{}),
	KindCampaign:      mustSchema(Campaign{}),
	KindDonation:      mustSchema(Donation{}),
	KindExpense:       mustSchema(Expense{}),
	KindGrant:         mustSchema(Grant{}),
	KindProjectUpdate: mustSchema(ProjectUpdate{}),
	KindProject:       mustSchema(Project{}),
}

// Schema returns the JSON schema of a record kind, as a Go value ready to be marshalled.
func Schema(kind Kind) (map[string]any, error) {
	switch kind {
	case KindBudget:
		return schemaOf(Budget{}), nil
	case KindCampaign:
		return schemaOf(Campaign{}), nil
	case KindDonation:
		return schemaOf(Donation{}), nil
	case KindExpense:
		return schemaOf(Expense{}), nil
	case KindGrant:
		return schemaOf(Grant{}), nil
	case KindProjectUpdate:
		return schemaOf(ProjectUpdate{}), nil
	case KindProject:
		return schemaOf(Project{}), nil
	}
	return nil, fmt.Errorf("unknown record kind %q", kind)
}

func mustSchema(record any) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(schemaOf(record)))
	if err != nil {
		panic(fmt.Sprintf("invalid schema for %T: %v", record, err))
	}
	return s
}

// textFields lists, per kind, the properties decoded into plain strings.
var textFields = map[Kind][]string{
	KindBudget:        textFieldsOf(Budget{}),
	KindCampaign:      textFieldsOf(Campaign{}),
	KindDonation:      textFieldsOf(Donation{}),
	KindExpense:       textFieldsOf(Expense{}),
	KindGrant:         textFieldsOf(Grant{}),
	KindProjectUpdate: textFieldsOf(ProjectUpdate{}),
	KindProject:       textFieldsOf(Project{}),
}

var (
	idType     = reflect.TypeFor[ID]()
	dateType   = reflect.TypeFor[date.Date]()
	stringType = reflect.TypeFor[string]()
)

// jsonFields calls fn with the json name and type of every field of record.
func jsonFields(record any, fn func(name string, t reflect.Type)) {
	t := reflect.TypeOf(record)
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fn(name, f.Type)
	}
}

func textFieldsOf(record any) []string {
	var names []string
	jsonFields(record, func(name string, t reflect.Type) {
		if t == stringType {
			names = append(names, name)
		}
	})
	return names
}

func schemaOf(record any) map[string]any {
	props := make(map[string]any)
	jsonFields(record, func(name string, t reflect.Type) {
		props[name] = fieldSchema(name, t)
	})
	return map[string]any{
		"type":       "object",
		"required":   []string{"id"},
		"properties": props,
	}
}

func fieldSchema(name string, t reflect.Type) map[string]any {
	switch {
	case name == "id" && t == idType:
		return map[string]any{"type": []string{"integer", "string"}}
	case t == dateType:
		return map[string]any{"type": []string{"string", "null"}}
	}
	return map[string]any{}
}

// RecordError describes a record rejected at decoding time.
type RecordError struct {
	Kind   Kind
	Index  int // position of the record in its source, starting at 1.
	Issues []string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("invalid %s #%d: %s", e.Kind, e.Index, strings.Join(e.Issues, "; "))
}

// ValidationError lists the records that were rejected while decoding a batch.
// The valid records of the batch are still returned along with it.
type ValidationError struct {
	Errors []RecordError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no invalid records"
	case 1:
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d invalid records, first: %v", len(e.Errors), e.Errors[0])
}

func (e *ValidationError) add(err RecordError) { e.Errors = append(e.Errors, err) }

// orNil returns e as an error only when it holds record errors.
func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// validate checks raw against the kind's schema and returns the issues found.
func validate(kind Kind, raw []byte) []string {
	schema, ok := schemas[kind]
	if !ok {
		return []string{fmt.Sprintf("unknown record kind %q", kind)}
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return []string{err.Error()}
	}
	if res.Valid() {
		return nil
	}
	issues := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		issues = append(issues, e.String())
	}
	return issues
}

// Decode validates and decodes a batch of raw records of a kind.
//
// Invalid records are skipped and reported in a *ValidationError, the valid
// ones are returned in any case.
func Decode[T any](kind Kind, raws []json.RawMessage) ([]T, error) {
	records := make([]T, 0, len(raws))
	verr := new(ValidationError)
	for i, raw := range raws {
		var v T
		if err := decodeRecord(kind, raw, &v); err != nil {
			verr.add(RecordError{Kind: kind, Index: i + 1, Issues: []string{err.Error()}})
			continue
		}
		records = append(records, v)
	}
	return records, verr.orNil()
}

func decodeRecord(kind Kind, raw []byte, v any) error {
	if issues := validate(kind, raw); len(issues) > 0 {
		return fmt.Errorf("%s", strings.Join(issues, "; "))
	}
	raw, err := coerceText(kind, raw)
	if err != nil {
		return fmt.Errorf("cannot decode %s: %w", kind, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("cannot decode %s: %w", kind, err)
	}
	return nil
}

// coerceText rewrites the text properties of raw that are not strings.
// Numbers and booleans keep their literal text, objects and arrays become
// null, so they end up in the Unspecified group.
func coerceText(kind Kind, raw []byte) ([]byte, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	changed := false
	for _, name := range textFields[kind] {
		v := bytes.TrimSpace(obj[name])
		if len(v) == 0 || v[0] == '"' || bytes.Equal(v, []byte("null")) {
			continue
		}
		if v[0] == '{' || v[0] == '[' {
			obj[name] = json.RawMessage("null")
		} else {
			text, err := json.Marshal(string(v))
			if err != nil {
				return nil, err
			}
			obj[name] = text
		}
		changed = true
	}
	if !changed {
		return raw, nil
	}
	return json.Marshal(obj)
}
