package server

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"

	"git.lost.host/meutraa/drumchart/internal/library"
	"git.lost.host/meutraa/drumchart/internal/parser"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Charts larger than this are refused
const maxChartSize = 4 << 20

type Server struct {
	Parser  parser.Parser
	Library library.Library // Optional, song routes 404 without it
}

type compileError struct {
	Kind  string `json:"kind"`
	Line  int    `json:"line"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); nil != err {
		log.Println("unable to write response", err)
	}
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxChartSize))
	if nil != err {
		http.Error(w, "unable to read chart", http.StatusBadRequest)
		return
	}
	song, err := s.Parser.Parse(string(body))
	var perr *parser.Error
	if errors.As(err, &perr) {
		writeJSON(w, http.StatusUnprocessableEntity, compileError{
			Kind:  perr.Kind.String(),
			Line:  perr.Line,
			Error: perr.Error(),
		})
		return
	} else if nil != err {
		log.Println("unable to compile chart", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if nil == s.Library {
		http.NotFound(w, r)
		return
	}
	entries, err := s.Library.List()
	if nil != err {
		log.Println("unable to list songs", err)
		http.Error(w, "unable to list songs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSong(w http.ResponseWriter, r *http.Request) {
	if nil == s.Library {
		http.NotFound(w, r)
		return
	}
	entry, err := s.Library.Load(mux.Vars(r)["sum"])
	if err == library.ErrNotFound {
		http.NotFound(w, r)
		return
	} else if nil != err {
		log.Println("unable to load song", err)
		http.Error(w, "unable to load song", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/compile", s.handleCompile).Methods("POST")
	router.HandleFunc("/songs", s.handleList).Methods("GET")
	router.HandleFunc("/songs/{sum}", s.handleSong).Methods("GET")
	return cors.Default().Handler(router)
}

func (s *Server) ListenAndServe(addr string) error {
	log.Printf("Listening on %v\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}
