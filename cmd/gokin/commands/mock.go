package commands

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rmera/gokin/estimator"
	"github.com/rmera/gokin/estimator/estimatortest"
)

func mockEstimatorCmd(a *app) *cobra.Command {
	var respFile, addr string
	cmd := &cobra.Command{
		Use:   "mock-estimator --response canned.txt",
		Short: "Answer every estimator request with a canned response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp []byte
			var err error
			if strings.HasSuffix(respFile, ".zst") {
				resp, err = estimator.ReadDump(respFile)
			} else {
				resp, err = os.ReadFile(respFile)
			}
			if err != nil {
				return err
			}
			srv, err := estimatortest.Listen(addr, estimatortest.Static(string(resp)))
			if err != nil {
				return err
			}
			defer srv.Close()
			a.logger.Info("mock estimator listening", zap.String("addr", srv.Addr()), zap.Int("bytes", len(resp)))
			cmd.Printf("listening on %s\n", srv.Addr())
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			a.logger.Info("mock estimator stopping", zap.Int("requests", len(srv.Requests())))
			return nil
		},
	}
	cmd.Flags().StringVar(&respFile, "response", "", "response file, plain text or a .zst dump")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:5000", "address to listen on")
	_ = cmd.MarkFlagRequired("response")
	return cmd
}
