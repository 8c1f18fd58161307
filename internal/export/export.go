// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package export writes a zstd-compressed JSON snapshot of every vehicle and
// its nested records, for backup or offline inspection.
package export

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/aractakip/aractakip/internal/api"
	"github.com/aractakip/aractakip/internal/logging"
	"github.com/aractakip/aractakip/internal/model"
)

// Snapshot is the export file layout.
type Snapshot struct {
	ExportedAt string                `json:"disa_aktarim_zamani"`
	Vehicles   []model.VehicleDetail `json:"araclar"`
}

// Write fetches all vehicles with their detail records and streams the
// compressed snapshot to w. It returns the number of exported vehicles.
func Write(ctx context.Context, client *api.Client, w io.Writer) (int, error) {
	vehicles, err := client.Vehicles(ctx)
	if err != nil {
		return 0, err
	}

	snap := Snapshot{
		ExportedAt: time.Now().Format(time.RFC3339),
		Vehicles:   make([]model.VehicleDetail, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		detail, err := client.VehicleDetail(ctx, v.ID)
		if err != nil {
			return 0, err
		}
		snap.Vehicles = append(snap.Vehicles, detail)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return 0, err
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		zw.Close()
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	logging.Debugf("exported %d vehicles", len(snap.Vehicles))
	return len(snap.Vehicles), nil
}
