// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lsirikh/GopApiServer/internal/cli"
)

var (
	tokenSubject string
	tokenValue   string
)

// tokenCmd represents the token command.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate and validate access tokens",
}

// tokenGenerateCmd represents the tokenGenerate command.
var tokenGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new token",
	Long: `Generate a bearer token for a principal without logging in. The token
is signed with the configured key and expires after auth.expiration_hours.
`,
	Run: func(_ *cobra.Command, _ []string) {
		codec := newTokenCodec()

		token, err := codec.Generate(tokenSubject)
		if err != nil {
			cli.LogFatal(logger, "failed to generate token", err)
		}

		if jsonOutput {
			fmt.Printf("{\"access_token\":%q,\"token_type\":\"bearer\"}\n", token)
			return
		}

		logger.Info(
			"generated token",
			slog.String("token", token),
			slog.String("subject", tokenSubject),
			slog.String("expires_in", cli.FormatAge(codec.Lifetime())),
		)
	},
}

// tokenValidateCmd represents the tokenValidate command.
var tokenValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a token",
	Long: `Verify the signature, algorithm and expiry of a token and print its
claims.
`,
	Run: func(_ *cobra.Command, _ []string) {
		claims, err := newTokenCodec().Validate(tokenValue)
		if err != nil {
			cli.LogFatal(logger, "token is invalid", err)
		}

		attrs := []any{
			slog.String("subject", claims.Subject),
			slog.Time("expires_at", claims.ExpiresAt.Time),
		}
		if claims.IssuedAt != nil {
			attrs = append(attrs, slog.Time("issued_at", claims.IssuedAt.Time))
		}

		logger.Info("token is valid", attrs...)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenGenerateCmd)
	tokenCmd.AddCommand(tokenValidateCmd)

	tokenGenerateCmd.Flags().
		StringVarP(&tokenSubject, "subject", "u", "", "Username the token is issued for (required)")
	_ = tokenGenerateCmd.MarkFlagRequired("subject")

	tokenValidateCmd.Flags().StringVarP(&tokenValue, "token", "t", "", "Token to validate (required)")
	_ = tokenValidateCmd.MarkFlagRequired("token")
}
