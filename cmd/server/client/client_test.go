package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	v1 "github.com/KirkDiggler/drive-api/internal/handlers/drive/v1"
)

type APIClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	server *httptest.Server
	client *apiClient
}

func (s *APIClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.client = newAPIClient(s.server.URL + "/")
}

func (s *APIClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *APIClientTestSuite) TestDecodesSuccess() {
	s.mux.HandleFunc("GET /api/drive/pieces/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&v1.DriveResponse{ID: r.PathValue("id"), Position: 2})
	})

	var out v1.DriveResponse
	err := s.client.do(context.Background(), http.MethodGet, "/pieces/drive_1", nil, &out)

	s.Require().NoError(err)
	s.Equal("drive_1", out.ID)
	s.Equal(2, out.Position)
}

func (s *APIClientTestSuite) TestSendsJSONBody() {
	var got v1.AddDriveRequest
	var contentType string
	s.mux.HandleFunc("POST /api/drive/add", func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	req := &v1.AddDriveRequest{
		SetName:  "啄木鸟电音",
		Position: 1,
		MainStat: "生命值",
		Substats: []string{"暴击", "暴击伤害", "攻击力百分比"},
	}
	var out v1.DriveMessageResponse
	err := s.client.do(context.Background(), http.MethodPost, "/add", req, &out)

	s.Require().NoError(err)
	s.Equal("application/json", contentType)
	s.Equal(*req, got)
	s.Equal("ok", out.Message)
}

func (s *APIClientTestSuite) TestErrorResponses() {
	s.mux.HandleFunc("GET /api/drive/pieces/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"drive not found","code":"NOT_FOUND"}`))
	})
	s.mux.HandleFunc("GET /api/drive/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	})

	s.Run("structured error body", func() {
		err := s.client.do(context.Background(), http.MethodGet, "/pieces/missing", nil, nil)

		var apiErr *APIError
		s.Require().ErrorAs(err, &apiErr)
		s.Equal(http.StatusNotFound, apiErr.Status)
		s.Equal("NOT_FOUND", apiErr.Code)
		s.Equal("drive not found", apiErr.Detail)
		s.Equal("server returned 404 NOT_FOUND: drive not found", apiErr.Error())
	})

	s.Run("plain text body", func() {
		err := s.client.do(context.Background(), http.MethodGet, "/stats", nil, nil)

		var apiErr *APIError
		s.Require().ErrorAs(err, &apiErr)
		s.Empty(apiErr.Code)
		s.Equal("server returned 502: upstream down", apiErr.Error())
	})
}

func (s *APIClientTestSuite) TestNilOutSkipsDecode() {
	s.mux.HandleFunc("DELETE /api/drive/pieces/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	err := s.client.do(context.Background(), http.MethodDelete, "/pieces/drive_1", nil, nil)
	s.NoError(err)
}

func TestAPIClientTestSuite(t *testing.T) {
	suite.Run(t, new(APIClientTestSuite))
}
