package main

import (
	"encoding/json"
	"os"

	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/domain"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/core/service"
	"github.com/bricksandmortarstudio/idealpostcodes/internal/interfaces/rest"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	loc := &domain.Location{}
	var force bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a single address and print the result as JSON",
		Example: `  verifier verify --line1 "10 Downing Street" --postcode "SW1A 2AA"
  verifier verify --line1 "12 Greek St" --city London --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, reg, err := setup()
			if err != nil {
				return err
			}

			verifier, err := reg.Get(service.ComponentName)
			if err != nil {
				return err
			}

			loc.ID = uuid.New()
			result, msg := verifier.Verify(cmd.Context(), loc, force)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rest.ToVerifyResponse(loc, result, msg))
		},
	}

	cmd.Flags().StringVar(&loc.Street1, "line1", "", "address line 1")
	cmd.Flags().StringVar(&loc.Street2, "line2", "", "address line 2")
	cmd.Flags().StringVar(&loc.City, "city", "", "city or locality")
	cmd.Flags().StringVar(&loc.PostalCode, "postcode", "", "postal code")
	cmd.Flags().BoolVar(&force, "force", false, "re-verify even if previously attempted")

	return cmd
}
