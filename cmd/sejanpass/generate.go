package main

import (
	"fmt"

	"github.com/sejanpass/sejanpass-go/internal/clipboard"
	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/sejanpass/sejanpass-go/internal/model"
	"github.com/sejanpass/sejanpass-go/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate one or more passwords",
		Example: `  sejanpass generate -l 16
  sejanpass generate --classes lower,digits -c 5
  sejanpass generate --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}

	addSelectionFlags(cmd)
	cmd.Flags().IntP("count", "c", 1, fmt.Sprintf("number of passwords (1-%d)", service.MaxCount))
	cmd.Flags().Bool("copy", false, "copy the first password to the clipboard")
	cmd.Flags().Uint64("seed", 0, "seed a reproducible generator (not for real passwords)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	length, classes, err := a.selection()
	if err != nil {
		return err
	}

	var src generator.Source
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		src = generator.NewSeeded(seed)
	}

	svc := service.NewGeneratorService(a.policy(), src)
	resp, err := svc.Generate(cmd.Context(), model.GenerateRequest{
		Length:    &length,
		Uppercase: boolPtr(classes.Has(generator.Uppercase)),
		Lowercase: boolPtr(classes.Has(generator.Lowercase)),
		Numbers:   boolPtr(classes.Has(generator.Digits)),
		Symbols:   boolPtr(classes.Has(generator.Symbols)),
		Count:     a.v.GetInt("count"),
	})
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if resp.Clamped {
		fmt.Fprintf(stderr, "warning: length %d exceeds the maximum, using %d\n", length, resp.Length)
	}

	passwords := resp.Passwords
	if len(passwords) == 0 {
		passwords = []string{resp.Password}
	}
	for _, p := range passwords {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}

	if a.stdoutIsTTY() {
		fmt.Fprintf(stderr, "strength: %s (%d/%d), ~%.0f bits, cracked in %s\n",
			resp.Rating, resp.Score, generator.MaxScore, resp.Estimate.Bits, resp.Estimate.CrackTime)
	}

	if a.v.GetBool("copy") {
		if err := clipboard.Copy(a.clipboard, resp.Password); err != nil {
			return err
		}
		fmt.Fprintln(stderr, "copied to clipboard")
	}

	return nil
}
