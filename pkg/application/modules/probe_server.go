package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"boatmatch/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Ready         probe.ReadinessCheck
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")

		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
		p.Ready,
	)

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
