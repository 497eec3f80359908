// Package passwd prints the bcrypt hash for auth.admin.password_hash.
package passwd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumenhq/lumen/internal/infrastructure/auth"
)

const defaultCost = 12

var cost int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an admin password for the config file",
		Long: `Read a password and print its bcrypt hash, ready for auth.admin.password_hash
or LUMEN_AUTH_ADMIN_PASSWORD_HASH. On a terminal the password is read without echo
and asked twice; otherwise the first line of stdin is used.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	cmd.Flags().IntVar(&cost, "cost", defaultCost, "bcrypt cost")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	hash, err := auth.NewBcryptPasswordHasher(cost).Hash(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readFromTerminal(int(f.Fd()), prompt)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	return password, nil
}

func readFromTerminal(fd int, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(first) == 0 {
		return "", errors.New("password must not be empty")
	}

	fmt.Fprint(prompt, "Repeat: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
