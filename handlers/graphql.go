package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

const maxRequestBytes = 1 << 20

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQLHandler serves POST /graphql. Malformed request bodies are rejected
// with an API error before they reach the relay handler, which executes the
// query and writes the GraphQL response.
type GraphQLHandler struct {
	relay *relay.Handler
}

func NewGraphQLHandler(schema *graphql.Schema) *GraphQLHandler {
	return &GraphQLHandler{relay: &relay.Handler{Schema: schema}}
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteAPIError(w, http.StatusRequestEntityTooLarge, CodeBadRequest, "request body too large")
			return
		}
		log.Printf("Error reading graphql request body: %v", err)
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "failed to read request body")
		return
	}

	var params graphqlRequest
	if err := json.Unmarshal(body, &params); err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(params.Query) == "" {
		WriteAPIError(w, http.StatusBadRequest, CodeBadRequest, "request body must contain a query")
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	h.relay.ServeHTTP(w, r)
}
