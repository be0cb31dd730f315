package main

import (
	"fmt"

	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/sejanpass/sejanpass-go/internal/model"
	"github.com/sejanpass/sejanpass-go/internal/service"
	"github.com/spf13/cobra"
)

func newStrengthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Rate a length and class selection without generating",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			length, classes, err := a.selection()
			if err != nil {
				return err
			}

			resp := service.NewGeneratorService(a.policy(), nil).Strength(model.StrengthRequest{
				Length:    &length,
				Uppercase: boolPtr(classes.Has(generator.Uppercase)),
				Lowercase: boolPtr(classes.Has(generator.Lowercase)),
				Numbers:   boolPtr(classes.Has(generator.Digits)),
				Symbols:   boolPtr(classes.Has(generator.Symbols)),
			})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d\n", resp.Rating, resp.Score, resp.MaxScore)
			return nil
		},
	}

	addSelectionFlags(cmd)
	return cmd
}
