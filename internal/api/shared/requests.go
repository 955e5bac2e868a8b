package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps the size of decoded request bodies.
const MaxBodyBytes = 1 << 20

// ErrInvalidRequest is returned when a body is not a JSON object.
var ErrInvalidRequest = errors.New("invalid request format")

// DecodeInput reads the request body as a JSON object. An empty body decodes
// to an empty map so that the rule set reports the missing fields.
func DecodeInput(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	input := map[string]any{}
	if r.Body == nil {
		return input, nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if input == nil {
		// a literal null body
		return map[string]any{}, nil
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidRequest)
	}
	return input, nil
}
