package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/legacykeep/legacy-vault/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) UserID() (int64, error) {
	return parseUserIDFromJWT(h.Token())
}

func (h *httpServerAdapter) FetchVault(ctx context.Context) (models.VaultRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault/")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("fetch vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	var record models.VaultRecord
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.VaultRecord{}, fmt.Errorf("decode vault response: %w", err)
	}

	return record, nil
}

func (h *httpServerAdapter) PushVault(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put("/api/vault/")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("push vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	var saved models.VaultRecord
	if err = json.Unmarshal(resp.Body(), &saved); err != nil {
		return models.VaultRecord{}, fmt.Errorf("decode push vault response: %w", err)
	}

	return saved, nil
}

func (h *httpServerAdapter) RotateVault(ctx context.Context, record models.VaultRecord) (models.RotationResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/vault/rotate")
	if err != nil {
		return models.RotationResult{}, fmt.Errorf("rotate vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RotationResult{}, err
	}

	var result models.RotationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.RotationResult{}, fmt.Errorf("decode rotate vault response: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) CountAffectedShareTokens(ctx context.Context) (int64, error) {
	resp, err := h.authedRequest(ctx).Get("/api/share-tokens/affected")
	if err != nil {
		return 0, fmt.Errorf("count affected request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var preview models.AffectedTokensPreview
	if err = json.Unmarshal(resp.Body(), &preview); err != nil {
		return 0, fmt.Errorf("decode count affected response: %w", err)
	}

	return preview.AffectedCount, nil
}

func (h *httpServerAdapter) InvalidateShareTokenEncryption(ctx context.Context) (models.InvalidationResult, error) {
	resp, err := h.authedRequest(ctx).Post("/api/share-tokens/invalidate")
	if err != nil {
		return models.InvalidationResult{}, fmt.Errorf("invalidate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.InvalidationResult{}, err
	}

	var result models.InvalidationResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.InvalidationResult{}, fmt.Errorf("decode invalidate response: %w", err)
	}

	return result, nil
}

func (h *httpServerAdapter) CreateShareGrant(ctx context.Context, token models.ShareToken) (models.ShareToken, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(token).
		Post("/api/share-tokens/")
	if err != nil {
		return models.ShareToken{}, fmt.Errorf("create share grant request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareToken{}, err
	}

	var created models.ShareToken
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.ShareToken{}, fmt.Errorf("decode create share grant response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrVaultNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
