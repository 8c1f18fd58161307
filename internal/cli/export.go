// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aractakip/aractakip/internal/export"
	"github.com/aractakip/aractakip/internal/i18n"
)

// newExportCmd builds the snapshot export command.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "disa-aktar",
		Short: "Export all vehicles with their records as compressed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(output)
			if err != nil {
				return err
			}

			n, err := export.Write(context.Background(), services.client, f)
			if err != nil {
				f.Close()
				os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Println(i18n.T("export.done", n, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "cikti", "o", "aractakip.json.zst", "output file path")
	return cmd
}
