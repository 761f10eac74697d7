package main

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/payloadlog/matcheddata"
)

func newDecryptCmd() *cobra.Command {
	var (
		matchedData     string
		privateKey      string
		privateKeyStdin bool
		outputFormat    string
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypts encrypted matched data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKeyB64 := privateKey
			if privateKeyStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("failed to read private key from stdin: %w", err)
				}
				privateKeyB64 = line
			}

			privateKeyBytes, err := base64.StdEncoding.DecodeString(strings.TrimSpace(privateKeyB64))
			if err != nil {
				return errors.New("provided private key is not base64 encoded")
			}

			encrypted, err := base64.StdEncoding.DecodeString(strings.TrimSpace(matchedData))
			if err != nil {
				return errors.New("provided matched data is not base64 encoded")
			}
			if len(encrypted) == 0 {
				return errors.New("provided matched data is invalid")
			}
			if version := encrypted[0]; version != matcheddata.FormatVersion {
				return fmt.Errorf("encryption format not supported, expected '%d', got '%d'", matcheddata.FormatVersion, version)
			}

			plaintext, err := matcheddata.Decrypt(encrypted, privateKeyBytes)
			switch {
			case err == nil:
			case errors.Is(err, matcheddata.ErrInvalidPrivateKeySize):
				return errors.New("provided private key is invalid")
			case errors.Is(err, matcheddata.ErrMalformedEnvelope):
				return errors.New("provided matched data is invalid")
			default:
				return errors.New("failed to decrypt matched data")
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "raw":
				if _, err := out.Write(plaintext); err != nil {
					return fmt.Errorf("failed to output matched data: %w", err)
				}
			case "utf8-lossy":
				// Invalid byte sequences are replaced, never rejected.
				fmt.Fprintln(out, strings.ToValidUTF8(string(plaintext), "�"))
			default:
				return fmt.Errorf("unknown output format '%s', expected 'raw' or 'utf8-lossy'", outputFormat)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&matchedData, "matched-data", "d", "", "base64 encoded encrypted matched data")
	f.StringVarP(&privateKey, "private-key", "k", "", "base64 encoded private key")
	f.BoolVar(&privateKeyStdin, "private-key-stdin", false, "whether to read the private key from stdin")
	f.StringVarP(&outputFormat, "output-format", "o", "utf8-lossy", "output format of matched data")

	_ = cmd.MarkFlagRequired("matched-data")
	cmd.MarkFlagsMutuallyExclusive("private-key", "private-key-stdin")
	cmd.MarkFlagsOneRequired("private-key", "private-key-stdin")

	return cmd
}
