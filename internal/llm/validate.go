package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled schemas by Schema.Name. Names must be
// unique per definition.
var compiledSchemas struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}

// checkContent normalizes a provider's raw output and validates it
// against schema. Code fences some models wrap around JSON are removed.
// A nil schema accepts anything.
func checkContent(provider string, schema *Schema, raw []byte) (json.RawMessage, error) {
	content := json.RawMessage(stripCodeFence(raw))
	if schema == nil {
		return content, nil
	}

	invalid := func(format string, args ...any) error {
		return &Error{
			Kind:     KindInvalidResponse,
			Provider: provider,
			Content:  content,
			Err:      fmt.Errorf(format, args...),
		}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(content))
	if err != nil {
		return nil, invalid("invalid JSON: %w", err)
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, invalid("compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, invalid("schema %q: %w", schema.Name, err)
	}
	return content, nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	compiledSchemas.Lock()
	defer compiledSchemas.Unlock()

	if c, ok := compiledSchemas.byName[schema.Name]; ok {
		return c, nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, fmt.Errorf("parse definition: %w", err)
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	if compiledSchemas.byName == nil {
		compiledSchemas.byName = make(map[string]*jsonschema.Schema)
	}
	compiledSchemas.byName[schema.Name] = compiled
	return compiled, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(raw []byte) []byte {
	b := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(b, []byte("```")) || !bytes.HasSuffix(b, []byte("```")) || len(b) < 6 {
		return b
	}
	b = b[3 : len(b)-3]
	if nl := bytes.IndexByte(b, '\n'); nl >= 0 && !bytes.ContainsAny(b[:nl], "{[") {
		b = b[nl+1:]
	}
	return bytes.TrimSpace(b)
}
