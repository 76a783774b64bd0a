package util

import (
	"fmt"
	"strings"

	"github.com/gostonefire/adt/hashfunc"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// InitConfig loads .env files and makes every flag settable through an ADT_<FLAG> environment variable
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("adt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// BindFlags binds the local and inherited flags of cmd to viper
func BindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.InheritedFlags())
}

// ParseHashAlgorithm converts a flag value to a hashfunc.Algorithm
func ParseHashAlgorithm(name string) (hashfunc.Algorithm, error) {
	for _, alg := range []hashfunc.Algorithm{hashfunc.CRC32, hashfunc.XXHash64} {
		if strings.EqualFold(name, alg.String()) {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("invalid hash algorithm %s. must be one of crc32, xxhash", name)
}

// GetHashAlgorithm reads the hash flag from viper
func GetHashAlgorithm() (hashfunc.Algorithm, error) {
	return ParseHashAlgorithm(viper.GetString("hash"))
}
