package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sentiview/internal/models"
)

// BackendClient 情感分析后端 REST API 客户端
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient 创建客户端，timeout 作用于单次请求
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

type commentsResponse struct {
	Comments []models.Comment `json:"comments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ListUsers GET /api/users
func (c *BackendClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out usersResponse
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser POST /api/users
func (c *BackendClient) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	body := map[string]string{"name": name, "email": email}

	var out struct {
		Data models.User `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", body, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListComments GET /api/comments
func (c *BackendClient) ListComments(ctx context.Context) ([]models.Comment, error) {
	var out commentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/comments", nil, &out); err != nil {
		return nil, err
	}
	return out.Comments, nil
}

// CreateComment POST /api/comments，后端会同步完成情感分析
func (c *BackendClient) CreateComment(ctx context.Context, userID int, text string) (*models.CommentResult, error) {
	body := map[string]any{"user_id": userID, "text": text}

	var out models.CommentResult
	if err := c.do(ctx, http.MethodPost, "/api/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze POST /api/analyze，只分析不保存
func (c *BackendClient) Analyze(ctx context.Context, text string) (*models.Analysis, error) {
	var out models.Analysis
	if err := c.do(ctx, http.MethodPost, "/api/analyze", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommentStatistics GET /api/comments/statistics
func (c *BackendClient) CommentStatistics(ctx context.Context) (*models.CommentStatistics, error) {
	var out models.CommentStatistics
	if err := c.do(ctx, http.MethodGet, "/api/comments/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health GET /health
func (c *BackendClient) Health(ctx context.Context) (*models.BackendHealth, error) {
	var out models.BackendHealth
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do 发送 JSON 请求并解析响应；非 2xx 返回 *APIError
func (c *BackendClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("%s %s: status %d with unreadable body: %w", method, path, resp.StatusCode, err)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
