package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/moodlog-backend/internal/adapter/export"
	"github.com/heartmarshall/moodlog-backend/internal/adapter/postgres"
	moodrepo "github.com/heartmarshall/moodlog-backend/internal/adapter/postgres/mood"
	userrepo "github.com/heartmarshall/moodlog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moodlog-backend/internal/auth"
	"github.com/heartmarshall/moodlog-backend/internal/domain"
	usersvc "github.com/heartmarshall/moodlog-backend/internal/service/user"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		n, err := postgres.MigrateUp(cmd.Context(), cfg.Database.DSN)
		if err != nil {
			return err
		}

		logger.Info("migrations applied", slog.Int("count", n))
		return nil
	},
}

var promoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Grant the admin role to a user by email",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email, _ := cmd.Flags().GetString("email")

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		moods := moodrepo.New(pool)
		svc := usersvc.NewService(logger, userrepo.New(pool), moods, postgres.NewTxManager(pool))

		u, err := svc.PromoteByEmail(cmd.Context(), email)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User %q (%s) is admin.\n", u.Email, u.ID)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user (testing and support)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rawID, _ := cmd.Flags().GetString("user-id")
		role, _ := cmd.Flags().GetString("role")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		userID, err := uuid.Parse(rawID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}

		cfg, _, err := setup()
		if err != nil {
			return err
		}

		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
		token, err := jwtManager.IssueAccessToken(userID, domain.UserRole(role), ttl)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every mood record of a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rawID, _ := cmd.Flags().GetString("user-id")
		rawFormat, _ := cmd.Flags().GetString("format")
		out, _ := cmd.Flags().GetString("out")

		userID, err := uuid.Parse(rawID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		format, err := export.ParseFormat(rawFormat)
		if err != nil {
			return err
		}

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		archive := export.Archive{
			AuthorID:   userID,
			ExportedAt: time.Now().UTC(),
			Records:    []domain.MoodRecord{},
		}
		err = moodrepo.New(pool).Stream(cmd.Context(), userID, domain.RecordFilter{}, func(r domain.MoodRecord) error {
			archive.Records = append(archive.Records, r)
			return nil
		})
		if err != nil {
			return fmt.Errorf("read moods: %w", err)
		}

		var w io.Writer = cmd.OutOrStdout()
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer f.Close()
			w = f
		}

		if err := export.Write(w, format, archive); err != nil {
			return err
		}

		logger.Info("moods exported",
			slog.String("user_id", userID.String()),
			slog.String("format", string(format)),
			slog.Int("records", len(archive.Records)),
		)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge-user",
	Short: "Hard-delete every mood record of a user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		rawID, _ := cmd.Flags().GetString("user-id")
		yes, _ := cmd.Flags().GetBool("yes")

		userID, err := uuid.Parse(rawID)
		if err != nil {
			return fmt.Errorf("invalid --user-id: %w", err)
		}
		if !yes {
			return fmt.Errorf("refusing to purge without --yes")
		}

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		users := userrepo.New(pool)
		moods := moodrepo.New(pool)

		var deleted int
		err = postgres.NewTxManager(pool).RunInTx(cmd.Context(), func(ctx context.Context) error {
			if _, err := users.GetByID(ctx, userID); err != nil {
				return err
			}
			n, err := moods.DeleteByAuthor(ctx, userID)
			deleted = n
			return err
		})
		if err != nil {
			return fmt.Errorf("purge moods: %w", err)
		}

		logger.Info("user moods purged",
			slog.String("user_id", userID.String()),
			slog.Int("deleted", deleted),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d mood records.\n", deleted)
		return nil
	},
}

func init() {
	promoteCmd.Flags().String("email", "", "email of the user to promote")
	_ = promoteCmd.MarkFlagRequired("email")

	tokenCmd.Flags().String("user-id", "", "subject user id")
	tokenCmd.Flags().String("role", string(domain.UserRoleUser), "role claim (user or admin)")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime; configured default when zero")
	_ = tokenCmd.MarkFlagRequired("user-id")

	exportCmd.Flags().String("user-id", "", "author whose records are exported")
	exportCmd.Flags().String("format", "json", "json, csv or sqlite")
	exportCmd.Flags().StringP("out", "o", "", "output file; stdout when empty")
	_ = exportCmd.MarkFlagRequired("user-id")

	purgeCmd.Flags().String("user-id", "", "user whose records are deleted")
	purgeCmd.Flags().Bool("yes", false, "confirm the deletion")
	_ = purgeCmd.MarkFlagRequired("user-id")
}
