package main

import (
	"context"
	"errors"
	"fmt"

	"orgdomain/internal/config"
	"orgdomain/pkg/domain"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCommand constructs the 'verify' subcommand that runs one background
// verification of a claim in the foreground, as the verification job would.
func verifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Checks the TXT challenge of a claimed domain once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			rawID, _ := cmd.Flags().GetString("id")
			id, err := domain.ParseOrganizationDomainID(rawID)
			if err != nil {
				return fmt.Errorf("invalid domain id %q: %w", rawID, err)
			}
			ctx = logger.WithFields(ctx, zap.Stringer("domain_id", id))

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			d, err := strg.OrganizationDomainByID(ctx, id)
			if err != nil {
				return fmt.Errorf("could not load domain: %w", err)
			}
			if d == nil {
				return serrors.With(serrors.ErrNotFound, "domain %s not found", id)
			}

			res, err := getVerificationCommand(ctx, cfg, strg).SystemVerify(ctx, *d)
			if err != nil {
				if errors.Is(err, serrors.ErrConflict) {
					logger.Warn(ctx, "domain not verifiable", zap.Error(err))
				}

				return err
			}

			logger.Info(ctx, "verification finished",
				zap.String("domain_name", res.DomainName),
				zap.Bool("verified", res.IsVerified()),
				zap.Int("job_run_count", res.JobRunCount))

			return nil
		},
	}

	cmd.Flags().String("id", "", "Organization domain ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
