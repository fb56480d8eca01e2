package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tin-keeper/internal/crypto"
)

func newHashPasswordCommand(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [PASSWORD]",
		Short: "Print the argon2id hash for AUTH_ADMIN_PASSWORD_HASH",
		Long: `The hash-password command hashes PASSWORD, or the first line of stdin when no
argument is given, into the encoded form expected by the server's admin settings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if scanner.Scan() {
					password = scanner.Text()
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
			}

			password = strings.TrimRight(password, "\r\n")
			if password == "" {
				return ErrEmptyPassword
			}

			hash, err := crypto.NewPasswordHasher().Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
