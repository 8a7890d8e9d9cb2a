package main

import (
	"bufio"
	"fmt"
	stdLog "log"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Randazzz/LibraryAPI/library/app"
	"github.com/Randazzz/LibraryAPI/library/config"
)

//go:generate swag init -g main.go -d ./,../../library/internal/handler,../../library/internal/model -o ../../swagger --outputTypes go,json

// @title			Library API
// @version		1.0
// @description	Catalog, readers and book loans of a single library.
// @BasePath		/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer access token
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	return config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "library",
		Short:        "Library management API",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), createSuperuserCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the http server",
		Run: func(cmd *cobra.Command, args []string) {
			app.Run(loadConfig())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Migrate(cmd.Context(), loadConfig(), args[0])
		},
	}
}

func createSuperuserCmd() *cobra.Command {
	var in app.SuperuserInput
	cmd := &cobra.Command{
		Use:   "create-superuser",
		Short: "Create an admin account with superuser rights",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if in.Password == "" {
				password, err := readPassword("Password: ")
				if err != nil {
					return err
				}
				in.Password = password
			}
			if err := in.Validate(); err != nil {
				return err
			}
			user, err := app.CreateSuperuser(ctx, loadConfig(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "superuser %s created with id %s\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email of the superuser")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "Admin", "first name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "Admin", "last name")
	cmd.Flags().StringVar(&in.Password, "password", "", "password, prompted when empty")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// readPassword reads without echo from a terminal and falls back to a plain line otherwise.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", errors.Wrap(err, "read password")
		}
		return strings.TrimSpace(line), nil
	}
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}
	return strings.TrimSpace(string(b)), nil
}
