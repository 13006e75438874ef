package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"CipherLabs/crypta"
)

// modpowCmd represents the modpow command.
var modpowCmd = &cobra.Command{
	Use:   "modpow [base] [exponent] [modulus]",
	Short: "Compute base^exponent mod modulus",
	Long: `Compute a modular exponentiation by binary exponentiation. Arguments are
decimal integers of arbitrary size, e.g.:

  cipherlabs modpow 5 117 19`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		operands := make([]*big.Int, 3)
		for i, arg := range args {
			n, ok := new(big.Int).SetString(arg, 10)
			if !ok {
				return fmt.Errorf("invalid integer: %q", arg)
			}
			operands[i] = n
		}

		if operands[2].Sign() <= 0 {
			return fmt.Errorf("modulus must be positive, got %s", operands[2])
		}

		fmt.Println(crypta.BigModPow(operands[0], operands[1], operands[2]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modpowCmd)
}
