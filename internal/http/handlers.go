package httpx

import (
	"encoding/json"
	"net/http"

	"blog/internal/util"
)

// handleTodos serves the REST todo API: GET lists every item, POST inserts
// one from a JSON body.
func (s *Server) handleTodos(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		todos, err := s.Todos.All(r.Context())
		if err != nil {
			util.FailJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		util.RespondJSON(w, http.StatusOK, todos)

	case http.MethodPost:
		var body struct {
			Name  string `json:"name"`
			Title string `json:"title"` // older clients send title
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			util.FailJSON(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		name := body.Name
		if name == "" {
			name = body.Title
		}
		todo, err := s.Todos.Create(r.Context(), name)
		if err != nil {
			util.FailJSON(w, http.StatusInternalServerError, err.Error())
			return
		}
		util.RespondJSON(w, http.StatusOK, todo)

	default:
		util.FailJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handlePostImage accepts a multipart upload and returns the stored path.
// Clients pass the returned filePath as imageUrl in post mutations.
func (s *Server) handlePostImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		util.FailJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		// No new file picked: the client keeps the previous image.
		util.RespondJSON(w, http.StatusOK, map[string]string{"message": "No file provided!"})
		return
	}
	defer file.Close()

	path, err := s.Images.Save(file, header.Filename)
	if err != nil {
		util.FailJSON(w, http.StatusInternalServerError, "could not store file")
		return
	}
	util.RespondJSON(w, http.StatusCreated, map[string]string{
		"message":  "File stored.",
		"filePath": path,
	})
}
