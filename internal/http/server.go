// Package httpx wires the GraphQL endpoint, the REST todo routes and the
// image upload behind one mux.
package httpx

import (
	"context"
	"io"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"blog/internal/auth"
	"blog/internal/models"
)

// TodoStore backs the REST todo endpoints.
type TodoStore interface {
	All(ctx context.Context) ([]models.Todo, error)
	Create(ctx context.Context, name string) (models.Todo, error)
}

// ImageSaver stores an uploaded file and returns its serving path.
type ImageSaver interface {
	Save(src io.Reader, origName string) (string, error)
}

type Server struct {
	Tokens *auth.Issuer
	Todos  TodoStore
	Images ImageSaver

	mux *http.ServeMux
}

func NewServer(schema *graphql.Schema, tokens *auth.Issuer, todos TodoStore, images ImageSaver) *Server {
	s := &Server{Tokens: tokens, Todos: todos, Images: images, mux: http.NewServeMux()}

	s.mux.Handle("/graphql", s.withToken(&relay.Handler{Schema: schema}))
	s.mux.HandleFunc("/todos", s.handleTodos)
	s.mux.Handle("/post-image", s.withToken(s.requireAuth(http.HandlerFunc(s.handlePostImage))))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WithCORS(WithAccessLog(s.mux)).ServeHTTP(w, r)
}
