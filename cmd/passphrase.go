package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"heat_capacity_game/internal/service"

	"github.com/spf13/cobra"
)

var errNoPassphrase = errors.New("no passphrase given")

func newHashPassphraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passphrase [passphrase]",
		Short: "Print the bcrypt hash for auth.passphrase_hash",
		Long:  "Hashes the operator passphrase given as argument, or read from the first line of stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := readPassphrase(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := service.HashPassphrase(passphrase)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hash)
			return err
		},
	}
}

func readPassphrase(args []string, in io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errNoPassphrase
	}
	return line, nil
}
