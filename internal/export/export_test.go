// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/aractakip/aractakip/internal/api"
)

func TestWriteRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/araclar":
			w.Write([]byte(`[{"id":1,"plaka":"34ABC123","marka":"Renault","model":"Clio","yil":2020,"km":50000,"aktif_mi":true}]`))
		case "/araclar/1/detay":
			w.Write([]byte(`{"id":1,"plaka":"34ABC123","marka":"Renault","model":"Clio","yil":2020,"km":50000,"aktif_mi":true,
				"bakimlar":[{"arac_id":1,"bakim_turu":"Yağ değişimi","tarih":"2026-01-15","km":48000,"tutar":1500}],
				"harcamalar":[],"yakitlar":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	session := &api.MemorySession{}
	session.SetCredentials("tok", "user")
	client := api.New(srv.URL, session)

	var buf bytes.Buffer
	n, err := Write(context.Background(), client, &buf)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("exported %d vehicles, want 1", n)
	}

	zr, err := zstd.NewReader(&buf)
	if err != nil {
		t.Fatalf("snapshot is not zstd: %v", err)
	}
	defer zr.Close()

	var snap Snapshot
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		t.Fatalf("snapshot is not JSON: %v", err)
	}
	if len(snap.Vehicles) != 1 {
		t.Fatalf("snapshot holds %d vehicles", len(snap.Vehicles))
	}
	v := snap.Vehicles[0]
	if v.Plate != "34ABC123" || len(v.Maintenance) != 1 {
		t.Errorf("unexpected snapshot content: %+v", v)
	}
	if snap.ExportedAt == "" {
		t.Error("snapshot must carry its export time")
	}
}

func TestWritePropagatesFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	session := &api.MemorySession{}
	session.SetCredentials("tok", "user")
	client := api.New(srv.URL, session)

	var buf bytes.Buffer
	_, err := Write(context.Background(), client, &buf)
	if err == nil {
		t.Fatal("a failing fetch must fail the export")
	}
	if api.KindOf(err) != api.FailureServer {
		t.Errorf("kind = %v, want server", api.KindOf(err))
	}
}
