package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against an export document and
// returns the result re-serialized as indented JSON. It is a debugging aid
// over the wire format: the document is parsed generically, so the query
// sees exactly what is on disk, not the decoded domain types.
func Query(doc []byte, path string) (string, error) {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("query %q: %w", path, err)
	}
	// jsonpath sometimes wraps a single answer in a one-element list;
	// unwrap so simple queries print the value itself.
	if list, ok := jval.([]any); ok && len(list) == 1 {
		jval = list[0]
	}
	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		return "", fmt.Errorf("query %q: cannot render result: %w", path, err)
	}
	return string(out), nil
}
