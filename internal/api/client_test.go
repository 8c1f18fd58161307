// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a client against a test server with an in-memory
// session holding a credential.
func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *MemorySession) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session := &MemorySession{}
	session.SetCredentials("test-token", "user")
	return New(srv.URL, session, opts...), session
}

func TestBearerAttachment(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	_, err := client.Vehicles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"access_token":"t","rol":"user"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, &MemorySession{})
	_, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestFailureClassification(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		wantKind FailureKind
		wantMsg  string
	}{
		{"validation with detail", 400, `{"detail":"Plaka zaten kayıtlı"}`, FailureValidation, "Plaka zaten kayıtlı"},
		{"validation without detail", 400, `{}`, FailureValidation, "Geçersiz istek"},
		{"auth expired", 401, `{"detail":"ignored"}`, FailureAuthExpired, "Oturum süreniz doldu. Lütfen tekrar giriş yapın"},
		{"forbidden", 403, ``, FailureForbidden, "Bu işlem için yetkiniz yok"},
		{"not found", 404, ``, FailureNotFound, "İstenen kayıt bulunamadı"},
		{"server error", 500, `{"detail":"trace"}`, FailureServer, "Sunucu hatası. Lütfen daha sonra tekrar deneyin"},
		{"unknown status with detail", 418, `{"detail":"çaydanlık"}`, FailureUnknown, "çaydanlık"},
		{"unknown status without detail", 502, ``, FailureUnknown, "Beklenmeyen bir hata oluştu"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				w.Write([]byte(c.body))
			}))

			_, err := client.Vehicle(context.Background(), 1)
			require.Error(t, err)
			assert.Equal(t, c.wantKind, KindOf(err))
			assert.Equal(t, c.wantMsg, err.Error())
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := New(srv.URL, &MemorySession{})
	_, err := client.Vehicles(context.Background())
	require.Error(t, err)
	assert.Equal(t, FailureUnreachable, KindOf(err))
	assert.Equal(t, "Sunucuya bağlanılamıyor. İnternet bağlantınızı kontrol edin", err.Error())
}

func TestAuthExpiredClearsSessionAndFiresOnce(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var fired atomic.Int32
	client.OnAuthExpired(func() { fired.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Vehicles(context.Background())
			assert.Equal(t, FailureAuthExpired, KindOf(err))
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fired.Load(), "expiry callback must fire exactly once")
	assert.Empty(t, session.Token(), "credential must be cleared")
	assert.Empty(t, session.Role(), "role must be cleared")
}

func TestAuthExpiredRearmsAfterLogin(t *testing.T) {
	var authorized atomic.Bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/giris" {
			authorized.Store(true)
			json.NewEncoder(w).Encode(map[string]string{"access_token": "fresh", "rol": "user"})
			return
		}
		if !authorized.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusUnauthorized) // second session expires too
	}))

	var fired atomic.Int32
	client.OnAuthExpired(func() { fired.Add(1) })

	client.Vehicles(context.Background())
	client.Vehicles(context.Background())
	require.Equal(t, int32(1), fired.Load(), "repeat 401s in one session fire once")

	_, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)

	client.Vehicles(context.Background())
	assert.Equal(t, int32(2), fired.Load(), "a fresh session re-arms the callback")
}

func TestGetRetriedOnceOnTransportFailure(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Kill the connection without a response.
			if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
				conn.Close()
			}
			return
		}
		w.Write([]byte(`[]`))
	}))

	_, err := client.Vehicles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMutationsAreNeverRetried(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
			conn.Close()
		}
	}))

	err := client.ChangePassword(context.Background(), "old", "newer")
	require.Error(t, err)
	assert.Equal(t, FailureUnreachable, KindOf(err))
	assert.Equal(t, int32(1), calls.Load(), "a failed PUT must not be repeated")
}

func TestReadRetryCanBeDisabled(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if conn, _, err := w.(http.Hijacker).Hijack(); err == nil {
			conn.Close()
		}
	}), WithoutReadRetry())

	_, err := client.Vehicles(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLoginStoresCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-42", "rol": "admin"})
	}))
	defer srv.Close()

	session := &MemorySession{}
	client := New(srv.URL, session)
	res, err := client.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-42", res.AccessToken)
	assert.Equal(t, "tok-42", session.Token())
	assert.Equal(t, "admin", session.Role())
	assert.True(t, client.IsAuthenticated())
	assert.Equal(t, "admin", client.Role())
}

func TestLogoutClearsCredentialOnly(t *testing.T) {
	session := &MemorySession{}
	session.SetCredentials("tok", "user")
	client := New("http://localhost:0", session)

	client.Logout()
	assert.False(t, client.IsAuthenticated())
	assert.Empty(t, session.Role())
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, FailureUnknown, KindOf(context.Canceled))
	assert.Equal(t, FailureUnknown, KindOf(nil))
}

func TestTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/", &MemorySession{})
	_, err := client.Vehicles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/araclar", gotPath)
}
