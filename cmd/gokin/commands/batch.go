package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rmera/gokin/estimator"
	"github.com/rmera/gokin/rxn"
)

// query is one entry of a batch file. Paths are relative to the batch file.
type query struct {
	Name      string   `yaml:"name"`
	Reactants []string `yaml:"reactants"`
	Products  []string `yaml:"products"`
}

type queryResult struct {
	reactions []*rxn.Reaction
	err       error
}

func readBatch(path string) ([]query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var qs []query
	if err := yaml.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range qs {
		if qs[i].Name == "" {
			qs[i].Name = fmt.Sprintf("query%d", i+1)
		}
		if len(qs[i].Reactants) == 0 {
			return nil, fmt.Errorf("%s: query %s has no reactants", path, qs[i].Name)
		}
		for j, p := range qs[i].Reactants {
			qs[i].Reactants[j] = resolve(dir, p)
		}
		for j, p := range qs[i].Products {
			qs[i].Products[j] = resolve(dir, p)
		}
	}
	return qs, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func batchCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch queries.yaml",
		Short: "Run several estimator queries concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1")
			}
			qs, err := readBatch(args[0])
			if err != nil {
				return err
			}
			client := estimator.NewClient(a.cfg.Estimator, estimator.WithLogger(a.logger))
			results := make([]queryResult, len(qs))
			var g errgroup.Group
			g.SetLimit(jobs)
			for i, q := range qs {
				i, q := i, q
				g.Go(func() error {
					rs, err := readAllSpecies(q.Reactants)
					if err != nil {
						return err
					}
					ps, err := readAllSpecies(q.Products)
					if err != nil {
						return err
					}
					out, err := client.Query(rs, ps)
					results[i] = queryResult{reactions: out, err: err}
					return nil
				})
			}
			//only unreadable species files stop the batch
			if err := g.Wait(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			failed := 0
			for i, q := range qs {
				res := results[i]
				if res.err != nil {
					fmt.Fprintf(w, "# %s: %s\n", q.Name, estimator.Outcome(res.err))
					a.logger.Warn("query failed", zap.String("query", q.Name), zap.Error(res.err))
					failed++
					continue
				}
				fmt.Fprintf(w, "# %s\n", q.Name)
				for _, r := range res.reactions {
					printReaction(w, r)
				}
			}
			a.logger.Info("batch done", zap.Int("queries", len(qs)), zap.Int("without_reactions", failed))
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "queries run at the same time")
	return cmd
}
