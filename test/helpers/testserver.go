package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bountyboard_backend/internal/app"
	"bountyboard_backend/internal/config"
	"bountyboard_backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	App    *app.Application
	Config *config.Config
}

// NewTestServer поднимает приложение на отдельной SQLite в памяти, так что
// тесты не делят состояние и могут идти параллельно.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testutil.Config()
	db := testutil.NewDBWithConfig(t, cfg)

	application := app.Build(cfg, db)
	server := httptest.NewServer(application.Router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		App:    application,
		Config: cfg,
	}
}

// Token выпускает JWT так же, как это делает внешний сервис идентификации.
func (ts *TestServer) Token(t *testing.T, userID, address string) string {
	t.Helper()
	token, err := ts.App.Tokens.GenerateToken(userID, address)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	return ts.SendRequestWithHeaders(t, method, path, token, body, nil)
}

func (ts *TestServer) SendRequestWithHeaders(t *testing.T, method, path, token string, body interface{}, headers map[string]string) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBodyBytes)
}
