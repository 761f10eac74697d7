package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/payloadlog/matcheddata"
)

// keyPairOutput is the serialized form of a generated key pair. Both
// keys are standard base64 with padding, matching what the firewall
// configuration expects for the public key.
type keyPairOutput struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func newGenerateKeyPairCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "generate-key-pair",
		Short: "Generates a public-private key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFormat != "json" {
				return fmt.Errorf("unknown output format '%s', expected 'json'", outputFormat)
			}

			keyPair, err := matcheddata.GenerateKeyPair()
			if err != nil {
				return fmt.Errorf("failed to generate key pair: %w", err)
			}

			out, err := json.MarshalIndent(keyPairOutput{
				PrivateKey: base64.StdEncoding.EncodeToString(keyPair.PrivateKey),
				PublicKey:  base64.StdEncoding.EncodeToString(keyPair.PublicKey),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to output key pair: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output-format", "o", "json", "output format of key pair")

	return cmd
}
