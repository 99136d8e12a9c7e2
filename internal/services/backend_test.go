package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *BackendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewBackendClient(server.URL+"/", 5*time.Second)
}

func TestListComments(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/comments" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"comments":[{"id":1,"text":"hola","sentiment":"positive","confidence":80,"user":{"name":"Ana","email":"ana@x.es"}}],"total":1}`))
	})

	comments, err := c.ListComments(context.Background())
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 || comments[0].User.Name != "Ana" {
		t.Errorf("Unexpected comments %+v", comments)
	}
}

func TestCreateCommentSendsJSON(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected JSON content type, got %s", r.Header.Get("Content-Type"))
		}
		var body struct {
			UserID int    `json:"user_id"`
			Text   string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Decode body: %v", err)
		}
		if body.UserID != 3 || body.Text != "genial" {
			t.Errorf("Unexpected body %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"analysis":{"sentiment":"positive","confidence":91.2}}`))
	})

	res, err := c.CreateComment(context.Background(), 3, "genial")
	if err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if res.Analysis.Sentiment != "positive" || res.Analysis.Confidence != 91.2 {
		t.Errorf("Unexpected analysis %+v", res.Analysis)
	}
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Invalid email format"}`))
	})

	_, err := c.CreateUser(context.Background(), "Ana", "nope")
	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Invalid email format" {
		t.Errorf("Unexpected APIError %+v", apiErr)
	}
}

func TestNon2xxWithoutJSONIsTransportError(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Analyze(context.Background(), "hola")
	if err == nil {
		t.Fatal("Expected error")
	}
	if _, ok := AsAPIError(err); ok {
		t.Errorf("Unreadable body should not be an APIError: %v", err)
	}
}

func TestUnreachableBackend(t *testing.T) {
	c := NewBackendClient("http://127.0.0.1:1", time.Second)
	if _, err := c.ListUsers(context.Background()); err == nil {
		t.Fatal("Expected transport error")
	}
}

func TestHealth(t *testing.T) {
	c := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy","model_trained":true}`))
	})

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if h.Status != "healthy" || !h.ModelTrained {
		t.Errorf("Unexpected health %+v", h)
	}
}
