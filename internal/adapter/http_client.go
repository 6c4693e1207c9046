package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mirovsky/passvault/models"
)

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a [ServerAdapter] speaking the passvault
// REST API over the given base URL.
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

func (h *httpServerAdapter) Register(ctx context.Context, km models.UserKeyMaterial) (models.UserKeyMaterial, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(km).
		Post("/api/auth/register")
	if err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserKeyMaterial{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	km.UserID = userID
	return km, nil
}

func (h *httpServerAdapter) RequestSalt(ctx context.Context, login string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("login", login).
		Get("/api/auth/salt")
	if err != nil {
		return "", fmt.Errorf("request salt: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var payload struct {
		UMKSalt string `json:"umk_salt"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode salt response: %w", err)
	}
	return payload.UMKSalt, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, login, verifier string) (models.UserKeyMaterial, error) {
	body := map[string]string{
		"login":                      login,
		"master_passphrase_verifier": verifier,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/auth/login")
	if err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserKeyMaterial{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	var km models.UserKeyMaterial
	if err = json.Unmarshal(resp.Body(), &km); err != nil {
		return models.UserKeyMaterial{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(token)
	return km, nil
}

func (h *httpServerAdapter) GetMemberPublicKey(ctx context.Context, userID string) (string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/" + userID + "/public-key")
	if err != nil {
		return "", fmt.Errorf("get public key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var payload struct {
		PublicKey string `json:"public_key"`
	}
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return "", fmt.Errorf("decode public key response: %w", err)
	}
	return payload.PublicKey, nil
}

func (h *httpServerAdapter) CreateVault(ctx context.Context, vault models.Vault) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(vault).
		Post("/api/vaults/")
	if err != nil {
		return fmt.Errorf("create vault request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vaults/" + vaultID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("get vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vault{}, err
	}

	var vault models.Vault
	if err = json.Unmarshal(resp.Body(), &vault); err != nil {
		return models.Vault{}, fmt.Errorf("decode vault response: %w", err)
	}
	return vault, nil
}

func (h *httpServerAdapter) GetVaultKey(ctx context.Context, vaultID string) (models.VaultKeyRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vaults/" + vaultID + "/key")
	if err != nil {
		return models.VaultKeyRecord{}, fmt.Errorf("get vault key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultKeyRecord{}, err
	}

	var rec models.VaultKeyRecord
	if err = json.Unmarshal(resp.Body(), &rec); err != nil {
		return models.VaultKeyRecord{}, fmt.Errorf("decode vault key response: %w", err)
	}
	return rec, nil
}

func (h *httpServerAdapter) SaveVaultKey(ctx context.Context, rec models.VaultKeyRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Post("/api/vaults/" + rec.VaultID + "/keys")
	if err != nil {
		return fmt.Errorf("save vault key request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteVaultKey(ctx context.Context, vaultID, userID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/vaults/" + vaultID + "/keys/" + userID)
	if err != nil {
		return fmt.Errorf("delete vault key request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetMembership(ctx context.Context, vaultID string) (models.Membership, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vaults/" + vaultID + "/members/me")
	if err != nil {
		return models.Membership{}, fmt.Errorf("get membership request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Membership{}, err
	}

	var membership models.Membership
	if err = json.Unmarshal(resp.Body(), &membership); err != nil {
		return models.Membership{}, fmt.Errorf("decode membership response: %w", err)
	}
	return membership, nil
}

func (h *httpServerAdapter) UploadItem(ctx context.Context, item models.VaultItem) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		Post("/api/items/")
	if err != nil {
		return fmt.Errorf("upload item request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetItem(ctx context.Context, itemID string) (models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/items/" + itemID)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultItem{}, err
	}

	var item models.VaultItem
	if err = json.Unmarshal(resp.Body(), &item); err != nil {
		return models.VaultItem{}, fmt.Errorf("decode item response: %w", err)
	}
	return item, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, vaultID string) ([]models.VaultItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vaults/" + vaultID + "/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.VaultItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode items response: %w", err)
	}
	return items, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// parseBearerToken extracts the compact JWT from an "Authorization: Bearer"
// header value.
func parseBearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", fmt.Errorf("missing bearer token in response")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", fmt.Errorf("empty bearer token in response")
	}
	return token, nil
}

// parseUserIDFromJWT reads the subject claim of the server-issued token
// without verifying the signature; only the server holds the signing key,
// and the client uses the claim purely as its own identifier.
func parseUserIDFromJWT(signed string) (string, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(signed, &jwt.RegisteredClaims{})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token has no subject claim")
	}
	return sub, nil
}
