package vb6server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(NewInMemoryStore(), []byte("test-secret"))
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func createAndLogin(t *testing.T, srv *Server, username, password string) string {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/users", "", createUserRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodPost, "/login", "", loginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestInfoEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/info", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp infoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Version)
}

func TestCreateUserThenLogin(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "alice", "hunter2hunter2")
	assert.NotEmpty(t, token)
}

func TestCreateUserDuplicateUsernameConflicts(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/users", "", createUserRequest{Username: "bob", Password: "correcthorsebattery"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/users", "", createUserRequest{Username: "bob", Password: "anotherpassword1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/users", "", createUserRequest{Username: "carol", Password: "rightpassword1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/login", "", loginRequest{Username: "carol", Password: "wrongpassword1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestParseRequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/parse", "", parseRequest{FileName: "a.bas", Source: "Sub Foo()\r\nEnd Sub\r\n"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestParseBasFileReturnsNoDiagnostics(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "dave", "passwordpassword1")

	rec := doJSON(t, srv, http.MethodPost, "/parse", token, parseRequest{
		FileName: "Module1.bas",
		Kind:     "bas",
		Source:   "Sub Foo()\r\nEnd Sub\r\n",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Diagnostics)
	assert.NotEqual(t, resp.SubmissionID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestParseFrmFileReportsFormName(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "erin", "passwordpassword2")

	src := "VERSION 5.00\r\n" +
		"Begin VB.Form Form1 \r\n" +
		"   Caption         =   \"Hi\"\r\n" +
		"End\r\n"

	rec := doJSON(t, srv, http.MethodPost, "/parse", token, parseRequest{
		FileName: "Form1.frm",
		Kind:     "frm",
		Source:   src,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp parseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Form1", resp.FormName)
	assert.Empty(t, resp.Diagnostics)
}

func TestParseUnknownKindRejected(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "frank", "passwordpassword3")

	rec := doJSON(t, srv, http.MethodPost, "/parse", token, parseRequest{
		FileName: "x.foo",
		Kind:     "foo",
		Source:   "whatever",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListSubmissionsReflectsPastParses(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "grace", "passwordpassword4")

	rec := doJSON(t, srv, http.MethodPost, "/parse", token, parseRequest{
		FileName: "Module1.bas",
		Kind:     "bas",
		Source:   "Sub Foo()\r\nEnd Sub\r\n",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/submissions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var subs []Submission
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "Module1.bas", subs[0].FileName)
}

func TestLogoutInvalidatesExistingToken(t *testing.T) {
	srv := newTestServer(t)
	token := createAndLogin(t, srv, "heidi", "passwordpassword5")

	rec := doJSON(t, srv, http.MethodGet, "/submissions", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx := context.Background()
	store := srv.store
	user, err := store.Users().GetByUsername(ctx, "heidi")
	require.NoError(t, err)
	require.NoError(t, Logout(ctx, store, user.ID))

	rec = doJSON(t, srv, http.MethodGet, "/submissions", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
