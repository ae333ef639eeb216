package graph

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"runtime/debug"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

// SchemaSDL returns the schema definition served by NewSchema.
func SchemaSDL() string { return schemaSDL }

// PanicLogger reports resolver panics through the standard logger. The
// panic is turned into a field error by the engine; the server keeps running.
type PanicLogger struct{}

func (PanicLogger) LogPanic(ctx context.Context, value interface{}) {
	log.Printf("graphql: panic occurred: %v\n%s", value, debug.Stack())
}

// NewSchema parses the embedded schema and binds it to r. Parsing fails when
// a schema field has no matching resolver method.
func NewSchema(r *Resolver, maxParallelism int) (*graphql.Schema, error) {
	opts := []graphql.SchemaOpt{graphql.Logger(PanicLogger{})}
	if maxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(maxParallelism))
	}

	schema, err := graphql.ParseSchema(schemaSDL, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graphql schema: %w", err)
	}
	return schema, nil
}
