package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lumen-ui/lumen/internal/config"
	"github.com/lumen-ui/lumen/internal/errors"
	"github.com/lumen-ui/lumen/internal/scenario"
	"github.com/lumen-ui/lumen/pkg/host"
	"github.com/lumen-ui/lumen/pkg/live"
	"github.com/lumen-ui/lumen/pkg/reconcile"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <scenario>",
		Short: "Run a scenario with the mutation inspector attached",
		Long: `Run a reconciliation scenario and keep an inspector server
running so connected clients can watch the host node.

Endpoints:
  /ws         WebSocket mutation stream
  /snapshot   Current node state as JSON
  /mutations  Accumulated mutation log as JSON
  /metrics    Prometheus reconciler metrics

Examples:
  lumen serve cases/toggle.yaml
  lumen serve cases/toggle.yaml --addr=0.0.0.0:9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0], addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Inspector listen address (default from lumen.json)")

	return cmd
}

func runServe(path, addr string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Inspector.Addr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return errors.New("E201").Wrap(err)
	}

	path = cfg.ScenarioPath(path)
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer log.Sync()

	node := host.NewMemNode(sc.Tag)
	insp := live.NewInspector(node, live.WithLogger(log))

	printBanner()
	info("Inspector on http://%s", addr)
	info("Scenario: %s", path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run the scenario once the inspector is up so early clients see
	// the mutations arrive live.
	mopts := []reconcile.MetricsOption{}
	if cfg.Metrics.Namespace != "" {
		mopts = append(mopts, reconcile.WithNamespace(cfg.Metrics.Namespace))
	}
	if cfg.Metrics.Subsystem != "" {
		mopts = append(mopts, reconcile.WithSubsystem(cfg.Metrics.Subsystem))
	}
	metrics := reconcile.NewMetrics(mopts...)

	go func() {
		r := reconcile.New(
			reconcile.WithLogger(log),
			reconcile.WithDevMode(true),
			reconcile.WithMetrics(metrics),
		)
		desc := vdom.El(sc.Tag, vdom.Props(sc.Mount))
		r.MountProperties(ctx, desc, desc.Props, node, sc.Namespaced)

		if sc.Update != nil {
			next := vdom.El(sc.Tag, vdom.Props(sc.Update))
			r.UpdateProperties(ctx, next, desc.Props, next.Props, &reconcile.Target{
				Node:       node,
				Namespaced: sc.Namespaced,
				Prior:      desc,
			})
			desc = next
		}

		for _, name := range sc.Remove {
			r.RemoveProperty(name, desc.Props[name], &reconcile.Target{
				Node:       node,
				Namespaced: sc.Namespaced,
				Prior:      desc,
			})
		}

		success("Scenario applied: %d mutations", len(node.Mutations()))
	}()

	return insp.Serve(ctx, addr)
}
