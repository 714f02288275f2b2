// Package provisioning implements the HTTP client for the upstream eSIM
// provisioning API.
package provisioning

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"esimhub/config"
	"esimhub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessCodeHeader carries the reseller credential on every request.
const accessCodeHeader = "RT-AccessCode"

// envelope is the provider's uniform response wrapper. The error code is a
// string; "0" and "000000" both mean success.
type envelope struct {
	Success   bool            `json:"success"`
	ErrorCode string          `json:"errorCode"`
	ErrorMsg  string          `json:"errorMsg"`
	Obj       json.RawMessage `json:"obj"`
}

func (e *envelope) ok() bool {
	return e.Success && (e.ErrorCode == "" || e.ErrorCode == "0" || e.ErrorCode == "000000")
}

// Client calls the provisioning API over HTTPS.
type Client struct {
	baseURL    string
	accessCode string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the parameters required for the provisioning client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a provisioning API client from configuration.
func New(params Params) service.ProvisioningService {
	return &Client{
		baseURL:    params.Config.Provisioning.BaseURL,
		accessCode: params.Config.Provisioning.AccessCode,
		httpClient: &http.Client{Timeout: params.Config.Provisioning.Timeout},
		logger:     params.Logger,
	}
}

// NewClient creates a client with explicit settings, used by tests.
func NewClient(baseURL, accessCode string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		accessCode: accessCode,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// post sends a JSON request and decodes the envelope's obj field into out.
// A nil out discards the payload.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessCodeHeader, c.accessCode)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "provisioning request %s failed", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("provisioning request %s returned HTTP %d", path, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrapf(err, "failed to decode response for %s", path)
	}

	if !env.ok() {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "provisioning API rejected request",
			slog.String("path", path),
			slog.String("errorCode", env.ErrorCode),
			slog.String("errorMsg", env.ErrorMsg),
		)

		return &service.ProviderError{Code: env.ErrorCode, Message: env.ErrorMsg}
	}

	if out == nil || len(env.Obj) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Obj, out); err != nil {
		return errors.Wrapf(err, "failed to decode payload for %s", path)
	}

	return nil
}

type balancePayload struct {
	BalanceInfo struct {
		Balance  float64 `json:"balance"`
		Currency string  `json:"currencyCode"`
	} `json:"balanceInfo"`
}

// QueryBalance returns the reseller account balance.
func (c *Client) QueryBalance(ctx context.Context) (*service.Balance, error) {
	var payload balancePayload
	if err := c.post(ctx, "/balance/query", map[string]any{}, &payload); err != nil {
		return nil, err
	}

	return &service.Balance{
		Amount:   payload.BalanceInfo.Balance,
		Currency: payload.BalanceInfo.Currency,
	}, nil
}

type packagePayload struct {
	PackageList []struct {
		PackageCode  string  `json:"packageCode"`
		Name         string  `json:"name"`
		LocationCode string  `json:"location"`
		LocationName string  `json:"locationName"`
		Price        float64 `json:"price"`
		CurrencyCode string  `json:"currencyCode"`
		Volume       int64   `json:"volume"`
		Duration     int     `json:"duration"`
	} `json:"packageList"`
}

// ListPackages returns purchasable packages, optionally filtered by location.
func (c *Client) ListPackages(ctx context.Context, locationCode string) ([]*service.PackageInfo, error) {
	body := map[string]any{}
	if locationCode != "" {
		body["locationCode"] = locationCode
	}

	var payload packagePayload
	if err := c.post(ctx, "/package/list", body, &payload); err != nil {
		return nil, err
	}

	packages := make([]*service.PackageInfo, 0, len(payload.PackageList))
	for _, item := range payload.PackageList {
		packages = append(packages, &service.PackageInfo{
			PackageCode:  item.PackageCode,
			Name:         item.Name,
			LocationCode: item.LocationCode,
			LocationName: item.LocationName,
			Price:        item.Price,
			Currency:     item.CurrencyCode,
			Volume:       item.Volume,
			Duration:     item.Duration,
		})
	}

	return packages, nil
}

type orderPayload struct {
	OrderNo string `json:"orderNo"`
}

// OrderProfile places a profile order and returns the provider order number.
func (c *Client) OrderProfile(ctx context.Context, req *service.OrderRequest) (*service.OrderResult, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	body := map[string]any{
		"transactionId": req.TransactionID,
		"amount":        req.Amount,
		"packageInfoList": []map[string]any{
			{
				"packageCode": req.PackageCode,
				"count":       count,
			},
		},
	}

	var payload orderPayload
	if err := c.post(ctx, "/order", body, &payload); err != nil {
		return nil, err
	}

	return &service.OrderResult{OrderNo: payload.OrderNo}, nil
}

type profilePayload struct {
	EsimList []struct {
		ICCID       string `json:"iccid"`
		OrderNo     string `json:"orderNo"`
		AC          string `json:"ac"`
		QRCodeURL   string `json:"qrCodeUrl"`
		EsimStatus  string `json:"esimStatus"`
		OrderUsage  int64  `json:"orderUsage"`
		TotalVolume int64  `json:"totalVolume"`
		ExpiredTime string `json:"expiredTime"`
		PackageList []struct {
			PackageCode string `json:"packageCode"`
		} `json:"packageList"`
	} `json:"esimList"`
}

// QueryProfiles returns the profiles matching the query. Exactly one of the
// query's fields must be set.
func (c *Client) QueryProfiles(ctx context.Context, query *service.ProfileQuery) ([]*service.ProfileInfo, error) {
	if (query.OrderNo == "") == (query.ICCID == "") {
		return nil, errors.New("profile query requires exactly one of orderNo or iccid")
	}

	body := map[string]any{
		"pager": map[string]any{"pageNum": 1, "pageSize": 20},
	}
	if query.OrderNo != "" {
		body["orderNo"] = query.OrderNo
	}
	if query.ICCID != "" {
		body["iccid"] = query.ICCID
	}

	var payload profilePayload
	if err := c.post(ctx, "/esim/query", body, &payload); err != nil {
		return nil, err
	}

	profiles := make([]*service.ProfileInfo, 0, len(payload.EsimList))
	for _, item := range payload.EsimList {
		profile := &service.ProfileInfo{
			ICCID:          item.ICCID,
			OrderNo:        item.OrderNo,
			ActivationCode: item.AC,
			QRCodeURL:      item.QRCodeURL,
			ProviderStatus: item.EsimStatus,
			DataUsed:       item.OrderUsage,
			DataTotal:      item.TotalVolume,
		}
		if len(item.PackageList) > 0 {
			profile.PackageCode = item.PackageList[0].PackageCode
		}
		if item.ExpiredTime != "" {
			if expiredAt, err := time.Parse(time.RFC3339, item.ExpiredTime); err == nil {
				profile.ExpiredAt = &expiredAt
			}
		}

		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// TopUp adds a data package to an existing profile.
func (c *Client) TopUp(ctx context.Context, iccid, packageCode, transactionID string) error {
	body := map[string]any{
		"iccid":         iccid,
		"packageCode":   packageCode,
		"transactionId": transactionID,
	}

	return c.post(ctx, "/esim/topup", body, nil)
}

// Suspend pauses service on a profile.
func (c *Client) Suspend(ctx context.Context, iccid string) error {
	return c.post(ctx, "/esim/suspend", map[string]any{"iccid": iccid}, nil)
}

// Unsuspend resumes service on a suspended profile.
func (c *Client) Unsuspend(ctx context.Context, iccid string) error {
	return c.post(ctx, "/esim/unsuspend", map[string]any{"iccid": iccid}, nil)
}

// Revoke permanently retires a profile.
func (c *Client) Revoke(ctx context.Context, iccid string) error {
	return c.post(ctx, "/esim/revoke", map[string]any{"iccid": iccid}, nil)
}
