package cmd

import (
	"github.com/spf13/cobra"

	"CipherLabs/crypta"
)

// saesCmd represents the saes command.
var saesCmd = &cobra.Command{
	Use:   "saes [block]",
	Short: "Encrypt or decrypt a 16-bit block with S-AES",
	Long: `Run one 16-bit block through the simplified AES substitution-permutation
network under a 16-bit key, e.g.:

  cipherlabs saes --key 0100101011110101 1101011100101000
  cipherlabs saes --key 0100101011110101 --decrypt 0010010011101100`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := resolveKey(16)
		if err != nil {
			return err
		}

		cipher, err := crypta.NewSAESCipher(key)
		if err != nil {
			return err
		}

		ctx, err := crypta.NewCipherContext(cipher, key)
		if err != nil {
			return err
		}

		return runBlock(ctx, args[0], 16)
	},
}

func init() {
	rootCmd.AddCommand(saesCmd)
	saesCmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "decrypt instead of encrypt")
}
