package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpstreamProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/profile" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Session-Id"); got != "tok-1" {
			t.Errorf("session header = %q", got)
		}
		io.WriteString(w, `{"user":{"firstName":"Abel","isRegistered":true},"wallet":{"main":120,"play":30,"coins":15}}`)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	p, err := u.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.User.FirstName != "Abel" || !p.User.IsRegistered {
		t.Fatalf("user = %+v", p.User)
	}
	if p.Wallet.Main != 120 || p.Wallet.Coins != 15 {
		t.Fatalf("wallet = %+v", p.Wallet)
	}
}

func TestUpstreamConvertCoins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/wallet/convert" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["coins"] != 50 {
			t.Errorf("coins = %v", body["coins"])
		}
		io.WriteString(w, `{"wallet":{"main":100,"play":80,"coins":0}}`)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	w, err := u.ConvertCoins(context.Background(), 50)
	if err != nil {
		t.Fatalf("ConvertCoins: %v", err)
	}
	if w.Play != 80 || w.Coins != 0 {
		t.Fatalf("wallet = %+v", w)
	}
}

func TestUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	if _, err := u.Wallet(context.Background()); err == nil {
		t.Fatal("non-2xx status must return an error")
	} else if !strings.Contains(err.Error(), "401") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestUpstreamTransactionsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"transactions":[{"id":1,"type":"deposit","amount":50,"status":"Approved"}]}`)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	txs, err := u.Transactions(context.Background())
	if err != nil {
		t.Fatalf("Transactions: %v", err)
	}
	if len(txs) != 1 || txs[0].Amount != 50 || txs[0].Status != "Approved" {
		t.Fatalf("txs = %+v", txs)
	}
}

func TestUpstreamCreatePostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if r.FormValue("kind") != "image" || r.FormValue("active") != "true" {
			t.Errorf("form = %v", r.MultipartForm.Value)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part: %v", err)
		}
		defer f.Close()
		if hdr.Filename != "promo.png" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		b, _ := io.ReadAll(f)
		if string(b) != "png-bytes" {
			t.Errorf("file content = %q", b)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	err := u.CreatePost(context.Background(), "image", "new game!", true, "promo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
}

func TestUpstreamRevenueByDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("days"); got != "14" {
			t.Errorf("days = %q", got)
		}
		io.WriteString(w, `{"revenueByDay":[{"day":"2026-08-27","revenue":420}]}`)
	}))
	defer srv.Close()

	u := NewUpstream(srv.URL, "tok-1")
	days, err := u.RevenueByDay(context.Background(), 14)
	if err != nil {
		t.Fatalf("RevenueByDay: %v", err)
	}
	if len(days) != 1 || days[0].Revenue != 420 {
		t.Fatalf("revenue = %+v", days)
	}
}
