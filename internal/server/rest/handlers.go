package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/paging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/go-chi/chi/v5"
)

func (s *RESTServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Timestamp: s.now().UTC()})
}

func (s *RESTServer) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	res, err := s.users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAuthResponse(res))
}

func (s *RESTServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	res, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuthResponse(res))
}

func (s *RESTServer) listPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, common.QueryParamLimit, paging.DefaultLimit)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	offset, err := queryUint(r, common.QueryParamOffset, paging.DefaultOffset)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	page, err := s.posts.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(page))
}

func (s *RESTServer) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	post, err := s.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *RESTServer) createPost(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, s.logger, common.ErrNoCredential)
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	post, err := s.posts.Create(r.Context(), caller.ID, req.Title, req.Content)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *RESTServer) updatePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, s.logger, common.ErrNoCredential)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	var req postRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	post, err := s.posts.Update(r.Context(), caller.ID, id, req.Title, req.Content)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *RESTServer) deletePost(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, s.logger, common.ErrNoCredential)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	if err := s.posts.Delete(r.Context(), caller.ID, id); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid post id %q", common.ErrValidation, raw)
	}
	return id, nil
}

func queryUint(r *http.Request, name string, def uint64) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", common.ErrValidation, name, raw)
	}
	return v, nil
}
