package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sambat-api/internal/auth"
	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/saulo-duarte/sambat-api/internal/container"
	"github.com/spf13/cobra"
)

func bootstrap(ctx context.Context) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return container.New(ctx, cfg)
}

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			return serve(ctx, c)
		},
	}
}

func serve(ctx context.Context, c *container.Container) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Config.HTTP.Port),
		Handler:           c.Router(),
		ReadTimeout:       c.Config.HTTP.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      c.Config.HTTP.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Log.WithField("addr", srv.Addr).WithField("env", c.Config.App.Env).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	config.Log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			return c.Migrate()
		},
	}
}

func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			displayName, _ := cmd.Flags().GetString("display-name")
			isAdmin, _ := cmd.Flags().GetBool("admin")

			c, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			u, err := c.UserContainer.Service.CreateUser(cmd.Context(), username, displayName, isAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", u.ID, u.Username, u.Role())
			return nil
		},
	}
	createCmd.Flags().String("username", "", "Unique username (required)")
	createCmd.Flags().String("display-name", "", "Name shown on assigned tasks")
	createCmd.Flags().Bool("admin", false, "Grant the admin role")
	_ = createCmd.MarkFlagRequired("username")

	userCmd.AddCommand(createCmd)
	return userCmd
}

// NewTokenCommand issues a bearer token for an existing user.
func NewTokenCommand() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawID, _ := cmd.Flags().GetString("user-id")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			c, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			u, err := c.UserContainer.Service.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = c.Config.JWT.TTL
			}

			token, err := auth.GenerateJWT(u.ID.String(), u.Role(), ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().String("user-id", "", "User id (required)")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime, defaults to JWT_TTL")
	_ = tokenCmd.MarkFlagRequired("user-id")
	return tokenCmd
}
