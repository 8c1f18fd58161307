// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aractakip/aractakip/internal/i18n"
)

// newLoginCmd builds the headless sign-in command. It stores the credential
// the same way the TUI does, so a following `aractakip disa-aktar` is already
// authenticated.
func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "giris",
		Short: "Sign in and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Print(i18n.T("field.email") + ": ")
				line, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}

			fmt.Print(i18n.T("field.sifre") + ": ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return err
			}

			if email == "" || len(password) == 0 {
				return fmt.Errorf("%s", i18n.T("auth.fill_all"))
			}

			res, err := services.client.Login(context.Background(), email, string(password))
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s)\n", i18n.T("title.login"), res.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email (prompted when omitted)")
	return cmd
}
