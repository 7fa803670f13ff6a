// Package postschema validates blog post documents against the JSON schema of a BlogPost.
package postschema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed post.schema.json
var postSchemaJSON string

// ErrInvalidDocument is wrapped by every validation failure.
var ErrInvalidDocument = errors.New("document does not match blog post schema")

var (
	postSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(postSchemaJSON))
	})
	partitionSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
		src := `{"type": "array", "items": ` + postSchemaJSON + `}`
		return gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	})
)

// ValidatePost checks a single BlogPost JSON object.
func ValidatePost(doc []byte) error {
	return validate(postSchema, doc)
}

// ValidatePartition checks a JSON array of BlogPost objects.
func ValidatePartition(doc []byte) error {
	return validate(partitionSchema, doc)
}

func validate(load func() (*gojsonschema.Schema, error), doc []byte) error {
	schema, err := load()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		// not JSON at all
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
