package vb6server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/formheader"
	"github.com/scriptandcompile/vb6parse/internal/vb6/parser"
	"github.com/scriptandcompile/vb6parse/internal/vb6/vbp"
	"github.com/scriptandcompile/vb6parse/internal/vb6enc"
	"github.com/scriptandcompile/vb6parse/internal/vb6version"
)

// infoResponse is returned by GET /info.
type infoResponse struct {
	Version string `json:"version"`
}

func (s *Server) handleInfo(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, infoResponse{Version: vb6version.Current})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, req *http.Request) {
	var body loginRequest
	if err := decodeJSON(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "malformed JSON request body")
		return
	}

	tok, err := Login(req.Context(), s.store, s.secret, body.Username, body.Password)
	if err != nil {
		if err == ErrBadCredentials {
			writeError(w, req, http.StatusUnauthorized, err.Error())
			return
		}
		writeError(w, req, http.StatusInternalServerError, "an internal server error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, loginResponse{Token: tok})
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, req *http.Request) {
	var body createUserRequest
	if err := decodeJSON(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "malformed JSON request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		writeError(w, req, http.StatusBadRequest, "username and password are required")
		return
	}

	hash, err := hashPassword(body.Password)
	if err != nil {
		writeError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.store.Users().Create(req.Context(), User{
		Username:     body.Username,
		PasswordHash: hash,
		Role:         Normal,
	})
	if err != nil {
		if err == ErrAlreadyExists {
			writeError(w, req, http.StatusConflict, "a user with that username already exists")
			return
		}
		writeError(w, req, http.StatusInternalServerError, "an internal server error occurred")
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Role: user.Role.String()})
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// parseRequest is the body of POST /parse: a single VB6 source file and
// what vb6p should assume its kind is, since the API has no filesystem
// extension to infer from.
type parseRequest struct {
	FileName string `json:"fileName"`
	Kind     string `json:"kind"` // "bas", "cls", "frm", "ctl", or "vbp"
	Source   string `json:"source"`
}

type diagnosticView struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

type parseResponse struct {
	SubmissionID uuid.UUID        `json:"submissionId"`
	FormName     string           `json:"formName,omitempty"`
	Diagnostics  []diagnosticView `json:"diagnostics"`
}

// handleParse decodes the submitted source to UTF-8, dispatches it to the
// parser mode its declared kind calls for, and records a Submission summary
// before returning the diagnostics produced.
func (s *Server) handleParse(w http.ResponseWriter, req *http.Request) {
	var body parseRequest
	if err := decodeJSON(req, &body); err != nil {
		writeError(w, req, http.StatusBadRequest, "malformed JSON request body")
		return
	}
	if body.FileName == "" {
		writeError(w, req, http.StatusBadRequest, "fileName is required")
		return
	}

	normalized, err := vb6enc.ToUTF8([]byte(body.Source))
	if err != nil {
		writeError(w, req, http.StatusBadRequest, "source could not be decoded: "+err.Error())
		return
	}

	var diags []diag.Diagnostic
	formName := ""

	switch strings.ToLower(body.Kind) {
	case "frm", "ctl":
		result, d := formheader.Parse(body.FileName, normalized)
		diags = d
		formName = result.Form.Name
	case "vbp":
		_, d := vbp.Parse(body.FileName, normalized)
		diags = d
	case "bas", "cls", "":
		_, d := parser.Parse(body.FileName, normalized)
		diags = d
	default:
		writeError(w, req, http.StatusBadRequest, "kind must be one of bas, cls, frm, ctl, vbp")
		return
	}

	user, _ := userFromContext(req.Context())
	sub, err := s.store.Submissions().Create(req.Context(), Submission{
		UserID:          user.ID,
		FileName:        body.FileName,
		Kind:            body.Kind,
		ByteSize:        len(normalized),
		DiagnosticCount: len(diags),
		FormName:        formName,
	})
	if err != nil {
		writeError(w, req, http.StatusInternalServerError, "an internal server error occurred")
		return
	}

	views := make([]diagnosticView, len(diags))
	for i, d := range diags {
		views[i] = diagnosticView{Kind: d.Kind.String(), Line: d.Line, Column: d.Column, Message: d.Message}
	}

	writeJSON(w, http.StatusCreated, parseResponse{SubmissionID: sub.ID, FormName: formName, Diagnostics: views})
}

func (s *Server) handleListSubmissions(w http.ResponseWriter, req *http.Request) {
	user, ok := userFromContext(req.Context())
	if !ok {
		writeError(w, req, http.StatusUnauthorized, "you don't appear to be logged in")
		return
	}

	subs, err := s.store.Submissions().GetAllByUser(req.Context(), user.ID)
	if err != nil {
		writeError(w, req, http.StatusInternalServerError, "an internal server error occurred")
		return
	}

	writeJSON(w, http.StatusOK, subs)
}
