package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"CipherLabs/crypta"
)

var (
	keyString string
	decrypt   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "cipherlabs",
	Short: "Miniature block ciphers at teaching bit-widths",
	Long: `cipherlabs demonstrates classical block-cipher structures at reduced
bit-widths: a 2-round Feistel cipher (S-DES, 8-bit block, 10-bit key) and a
2-round substitution-permutation network (S-AES, 16-bit block and key).
Blocks and keys are given as bit strings, e.g. 10010111.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&keyString, "key", "k", "", "cipher key as a bit string (falls back to CIPHERLABS_KEY, then an interactive prompt)")
}

func initConfig() {
	viper.SetEnvPrefix("cipherlabs")
	viper.AutomaticEnv()
}

// resolveKey obtains the key bits from either:
// 1. The --key flag
// 2. The CIPHERLABS_KEY environment variable
// 3. A no-echo prompt when stdin is a terminal
// 4. A freshly generated random key, printed so the result can be reproduced
func resolveKey(width int) (crypta.BitVector, error) {
	secret := keyString
	if secret == "" && viper.IsSet("key") {
		secret = viper.GetString("key")
	}

	if secret == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the %d-bit key: ", width)
		byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, "")
		secret = string(byteSecret)
	}

	if secret == "" {
		key, err := crypta.GenerateRandomBits(width)
		if err != nil {
			return nil, fmt.Errorf("failed to generate a random key: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Generated key: %s\n", key)
		return key, nil
	}

	key, err := crypta.ParseBitString(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	if len(key) != width {
		return nil, fmt.Errorf("invalid key: got %d bits, want %d", len(key), width)
	}
	return key, nil
}

// runBlock parses the block argument, runs it through the context and prints
// the resulting bits.
func runBlock(ctx *crypta.CipherContext, arg string, width int) error {
	block, err := crypta.ParseBitString(arg)
	if err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	if len(block) != width {
		return fmt.Errorf("invalid block: got %d bits, want %d", len(block), width)
	}

	var result crypta.BitVector
	if decrypt {
		result, err = ctx.Decrypt(block)
	} else {
		result, err = ctx.Encrypt(block)
	}
	if err != nil {
		return err
	}

	fmt.Println(result)
	return nil
}
