package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sejanpass/sejanpass-go/internal/crypto"
	"github.com/spf13/cobra"
)

func newHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Hash an admin secret for ADMIN_SECRET_HASH",
		Long: `Reads a secret and prints its Argon2id hash. On a terminal the
secret is read without echo; otherwise the first line of stdin is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := a.readSecret(cmd)
			if err != nil {
				return err
			}

			hash, err := crypto.HashSecret(secret, crypto.DefaultHashParams())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func (a *app) readSecret(cmd *cobra.Command) (string, error) {
	if a.stdinIsTTY() {
		fmt.Fprint(cmd.ErrOrStderr(), "Secret: ")
		b, err := a.readPassword()
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
