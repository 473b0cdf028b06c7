package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/gokin/chemplot"
	"github.com/rmera/gokin/estimator"
)

func estimateCmd(a *app) *cobra.Command {
	var reactants, products []string
	var plotFile string
	cmd := &cobra.Command{
		Use:   "estimate -r reactant.adj [-r reactant.adj] [-p product.adj]...",
		Short: "Ask the estimator for the reactions of the given species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := readAllSpecies(reactants)
			if err != nil {
				return err
			}
			ps, err := readAllSpecies(products)
			if err != nil {
				return err
			}
			client := estimator.NewClient(a.cfg.Estimator, estimator.WithLogger(a.logger))
			out, err := client.Query(rs, ps)
			if errors.Is(err, estimator.ErrNoReactions) {
				fmt.Fprintln(cmd.OutOrStdout(), "no reactions found")
				return nil
			}
			if err != nil {
				return err
			}
			for _, r := range out {
				printReaction(cmd.OutOrStdout(), r)
			}
			if plotFile == "" {
				return nil
			}
			if err := chemplot.ArrheniusPlot(out, 300, 2000, "Rate coefficients", plotFile); err != nil {
				return err
			}
			a.logger.Info("wrote Arrhenius plot", zap.String("file", plotFile))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&reactants, "reactant", "r", nil, "reactant adjacency list file (repeatable)")
	cmd.Flags().StringArrayVarP(&products, "product", "p", nil, "product adjacency list file (repeatable)")
	cmd.Flags().StringVar(&plotFile, "plot", "", "write an Arrhenius plot, 300-2000 K, to this file")
	_ = cmd.MarkFlagRequired("reactant")
	return cmd
}
