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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lsirikh/GopApiServer/internal/auth"
	"github.com/lsirikh/GopApiServer/internal/cli"
)

var (
	userCreateUsername string
	userCreatePassword string
	userCreateRole     string
)

// userCmd represents the user command.
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API principals",
}

// userCreateCmd represents the userCreate command.
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a principal",
	Long: `Create a principal that can log in to the API. The password is
stored as a bcrypt hash.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		role, err := auth.ParseRole(userCreateRole)
		if err != nil {
			cli.LogFatal(logger, "invalid role", err)
		}

		hash, err := auth.HashPassword(userCreatePassword)
		if err != nil {
			cli.LogFatal(logger, "failed to hash password", err)
		}

		db := openDatabase(ctx)
		defer func() { _ = db.Close() }()

		principal, err := auth.NewSQLPrincipalStore(db).Create(ctx, userCreateUsername, hash, role)
		if errors.Is(err, auth.ErrPrincipalExists) {
			cli.LogFatal(logger, "principal already exists", err, "username", userCreateUsername)
		}
		if err != nil {
			cli.LogFatal(logger, "failed to create principal", err)
		}

		logger.Info(
			"created principal",
			slog.Int64("id", principal.ID),
			slog.String("username", principal.Username),
			slog.String("role", string(principal.Role)),
		)
	},
}

// userListCmd represents the userList command.
var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List principals",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		db := openDatabase(ctx)
		defer func() { _ = db.Close() }()

		principals, err := auth.NewSQLPrincipalStore(db).List(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to list principals", err)
		}

		if jsonOutput {
			out, err := json.Marshal(principals)
			if err != nil {
				cli.LogFatal(logger, "failed to encode principals", err)
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println()
		cli.PrintKV(os.Stdout, "Total", strconv.Itoa(len(principals)))

		if len(principals) == 0 {
			fmt.Println(cli.DimStyle.Render("  No principals found."))
			return
		}

		headers, rows := cli.BuildPrincipalTable(principals)
		cli.PrintCompactTable(os.Stdout, []cli.Section{
			{Title: "Principals", Headers: headers, Rows: rows},
		})
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userListCmd)

	userCreateCmd.Flags().StringVarP(&userCreateUsername, "username", "u", "", "Login name (required)")
	userCreateCmd.Flags().StringVarP(&userCreatePassword, "password", "p", "", "Password (required)")
	userCreateCmd.Flags().
		StringVarP(&userCreateRole, "role", "r", string(auth.RoleUser), "Role (allowed: admin, user)")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("password")
}
