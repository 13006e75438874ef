package cmd

import (
	"github.com/spf13/cobra"

	"CipherLabs/crypta"
)

// sdesCmd represents the sdes command.
var sdesCmd = &cobra.Command{
	Use:   "sdes [block]",
	Short: "Encrypt or decrypt an 8-bit block with S-DES",
	Long: `Run one 8-bit block through the simplified DES Feistel cipher under a
10-bit key, e.g.:

  cipherlabs sdes --key 1010000010 10010111
  cipherlabs sdes --key 1010000010 --decrypt 00111000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey(10)
		if err != nil {
			return err
		}

		cipher, err := crypta.NewSDESCipher(key)
		if err != nil {
			return err
		}

		ctx, err := crypta.NewCipherContext(cipher, key)
		if err != nil {
			return err
		}

		return runBlock(ctx, args[0], 8)
	},
}

func init() {
	rootCmd.AddCommand(sdesCmd)
	sdesCmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
}
