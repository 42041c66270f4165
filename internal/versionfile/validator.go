package versionfile

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/version.schema.json
var schemaBytes []byte

const schemaURL = "version.schema.json"

// KeywordSyntax marks an issue raised by the YAML parser rather than the schema.
const KeywordSyntax = "syntax"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
	printer    = message.NewPrinter(language.English)
)

// Issue is one problem found in a VERSION.yml document.
type Issue struct {
	Path    string // JSON pointer into the document, "" for the document itself
	Keyword string // failing schema keyword, or KeywordSyntax
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			schemaErr = fmt.Errorf("reading embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("registering embedded schema: %w", err)
			return
		}
		if schema, err = c.Compile(schemaURL); err != nil {
			schemaErr = fmt.Errorf("compiling embedded schema: %w", err)
		}
	})
	return schema, schemaErr
}

// Check reports every problem in data, sorted by path. No issues means data
// is a usable VERSION.yml. The error is reserved for failures of the checker
// itself; malformed YAML is reported as a KeywordSyntax issue.
func Check(data []byte) ([]Issue, error) {
	s, err := compiled()
	if err != nil {
		return nil, err
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return []Issue{{Keyword: KeywordSyntax, Message: err.Error()}}, nil
	}

	err = s.Validate(instance(raw))
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating %s: %w", FileName, err)
	}

	issues := leaves(ve, nil)
	sort.SliceStable(issues, func(a, b int) bool {
		if issues[a].Path != issues[b].Path {
			return issues[a].Path < issues[b].Path
		}
		return issues[a].Keyword < issues[b].Keyword
	})
	return issues, nil
}

// instance converts a decoded YAML value into the JSON data model the schema
// validator expects. Non-string mapping keys are stringified, and values with
// no JSON counterpart (NaN, infinities, timestamps) become strings so they
// fail the type check instead of the conversion.
func instance(v interface{}) interface{} {
	switch v := v.(type) {
	case nil, bool, string:
		return v
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = instance(e)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = instance(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = instance(e)
		}
		return out
	case int:
		return json.Number(strconv.Itoa(v))
	case int64:
		return json.Number(strconv.FormatInt(v, 10))
	case uint64:
		return json.Number(strconv.FormatUint(v, 10))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Sprint(v)
	}
}

// leaves flattens the error tree; only the innermost causes say anything
// specific about the document.
func leaves(ve *jsonschema.ValidationError, acc []Issue) []Issue {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			acc = leaves(cause, acc)
		}
		return acc
	}

	issue := Issue{Message: ve.Error()}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			issue.Keyword = kw[len(kw)-1]
		}
		issue.Message = ve.ErrorKind.LocalizedString(printer)
	}
	return append(acc, issue)
}
