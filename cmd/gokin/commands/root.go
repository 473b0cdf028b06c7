package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/gokin/config"
	"github.com/rmera/gokin/rxn"
)

// app is what every subcommand gets after the configuration is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:           "gokin",
		Short:         "Reaction kinetics from a legacy estimator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := config.NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.AddCommand(estimateCmd(a), batchCmd(a), mockEstimatorCmd(a))
	return root
}

// readSpecies reads an adjacency list file. The species is named after the file.
func readSpecies(path string) (*rxn.Species, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	label := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sp, err := rxn.SpeciesFromAdjList(label, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sp, nil
}

func readAllSpecies(paths []string) ([]*rxn.Species, error) {
	ret := make([]*rxn.Species, 0, len(paths))
	for _, p := range paths {
		sp, err := readSpecies(p)
		if err != nil {
			return nil, err
		}
		ret = append(ret, sp)
	}
	return ret, nil
}

// printReaction writes one line per reaction: equation, A, n, Ea and comment, tab separated.
func printReaction(w io.Writer, r *rxn.Reaction) {
	comment := strings.ReplaceAll(r.Comment(), "\n", " | ")
	k, ok := r.Kinetics.(*rxn.Arrhenius)
	if !ok {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r, r.Kinetics, comment)
		return
	}
	fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\n", r, k.A, k.N, k.Ea, comment)
}
