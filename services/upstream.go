package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mekbib/bingo-gateway/models"
)

// Upstream is the REST client for the external game server. It owns no
// state beyond the connection settings; failures are returned to the
// caller and surfaced as retryable errors, never folded into round
// state.
type Upstream struct {
	baseURL string
	session string
	client  *http.Client
}

// NewUpstream builds a client for the given API base URL. The session
// token authenticates every request.
func NewUpstream(baseURL, session string) *Upstream {
	return &Upstream{
		baseURL: baseURL,
		session: session,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (u *Upstream) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, u.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Session-Id", u.session)

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s: upstream status %d: %s", method, path, resp.StatusCode, b)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (u *Upstream) get(ctx context.Context, path string, out any) error {
	return u.do(ctx, http.MethodGet, path, nil, "", out)
}

func (u *Upstream) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return u.do(ctx, http.MethodPost, path, bytes.NewReader(payload), "application/json", out)
}

// Profile fetches the player profile with its wallet summary.
func (u *Upstream) Profile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	err := u.get(ctx, "/user/profile", &p)
	return p, err
}

// Wallet fetches the main/play/coins balances.
func (u *Upstream) Wallet(ctx context.Context) (models.Wallet, error) {
	var w models.Wallet
	err := u.get(ctx, "/wallet", &w)
	return w, err
}

// Transactions fetches the player's transaction history.
func (u *Upstream) Transactions(ctx context.Context) ([]models.Transaction, error) {
	var out struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	err := u.get(ctx, "/user/transactions", &out)
	return out.Transactions, err
}

// ConvertCoins converts coins into play balance and returns the
// updated wallet.
func (u *Upstream) ConvertCoins(ctx context.Context, coins float64) (models.Wallet, error) {
	var out struct {
		Wallet models.Wallet `json:"wallet"`
	}
	err := u.postJSON(ctx, "/wallet/convert", map[string]float64{"coins": coins}, &out)
	return out.Wallet, err
}

// TransferFunds moves funds between the main and play wallets.
// Direction is "to_play" or "to_main".
func (u *Upstream) TransferFunds(ctx context.Context, amount float64, direction string) (models.Wallet, error) {
	var out struct {
		Wallet models.Wallet `json:"wallet"`
	}
	in := map[string]any{"amount": amount, "direction": direction}
	err := u.postJSON(ctx, "/wallet/transfer", in, &out)
	return out.Wallet, err
}

// Posts lists announcement posts.
func (u *Upstream) Posts(ctx context.Context) ([]models.Post, error) {
	var out struct {
		Posts []models.Post `json:"posts"`
	}
	err := u.get(ctx, "/admin/posts", &out)
	return out.Posts, err
}

// CreatePost uploads an announcement with its media file.
func (u *Upstream) CreatePost(ctx context.Context, kind, caption string, active bool, filename string, file io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("kind", kind); err != nil {
		return fmt.Errorf("write kind: %w", err)
	}
	if err := w.WriteField("caption", caption); err != nil {
		return fmt.Errorf("write caption: %w", err)
	}
	if err := w.WriteField("active", strconv.FormatBool(active)); err != nil {
		return fmt.Errorf("write active: %w", err)
	}
	if file != nil {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}
	return u.do(ctx, http.MethodPost, "/admin/posts", &buf, w.FormDataContentType(), nil)
}

// PendingWithdrawals lists withdrawal requests awaiting approval.
func (u *Upstream) PendingWithdrawals(ctx context.Context) ([]models.WithdrawalEntry, error) {
	var out struct {
		Withdrawals []models.WithdrawalEntry `json:"withdrawals"`
	}
	err := u.get(ctx, "/admin/balances/withdrawals?status=pending", &out)
	return out.Withdrawals, err
}

// Deposits lists recorded deposits.
func (u *Upstream) Deposits(ctx context.Context) ([]models.DepositEntry, error) {
	var out struct {
		Deposits []models.DepositEntry `json:"deposits"`
	}
	err := u.get(ctx, "/admin/balances/deposits", &out)
	return out.Deposits, err
}

// StatsToday fetches today's player count and system cut.
func (u *Upstream) StatsToday(ctx context.Context) (models.StatsToday, error) {
	var s models.StatsToday
	err := u.get(ctx, "/admin/stats/today", &s)
	return s, err
}

// RevenueByDay fetches per-day revenue for the last n days.
func (u *Upstream) RevenueByDay(ctx context.Context, days int) ([]models.RevenueDay, error) {
	var out struct {
		RevenueByDay []models.RevenueDay `json:"revenueByDay"`
	}
	err := u.get(ctx, "/admin/stats/revenue/by-day?days="+strconv.Itoa(days), &out)
	return out.RevenueByDay, err
}

// Leaderboard fetches the ranked players for a period
// (daily, weekly, monthly, alltime, newyear).
func (u *Upstream) Leaderboard(ctx context.Context, period string) ([]models.LeaderboardEntry, error) {
	var out struct {
		Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
	}
	err := u.get(ctx, "/leaderboard?period="+url.QueryEscape(period), &out)
	return out.Leaderboard, err
}
