// Package simulation is a demo consumer of randkit: an Erlang-style loss
// cluster with Poisson arrivals and configurable service-time distribution.
// The same seed always reproduces the same run.
package simulation

import (
	"fmt"

	"github.com/emrzvv/randkit/dist"
	"github.com/emrzvv/randkit/internal/config"
	"github.com/emrzvv/randkit/randgen"
	"github.com/fschuetz04/simgo"
)

func initServers(cfg *config.Config) []*Server {
	var servers []*Server
	for i := range cfg.Cluster.Servers {
		servers = append(servers, &Server{
			ID:       i + 1,
			Capacity: cfg.Cluster.Capacity,
		})
	}
	return servers
}

func Run(cfg *config.Config) (*Stats, []*Server, error) {
	gcfg := randgen.Config{Name: cfg.Simulation.Generator}
	if cfg.Simulation.Seed != 0 {
		gcfg.Seed = []uint32{cfg.Simulation.Seed}
	}
	g, err := randgen.New(gcfg)
	if err != nil {
		return nil, nil, err
	}

	// All processes draw from the one handle, so the whole run is a single
	// deterministic stream.
	service, err := dist.ByName(cfg.Service.Dist, dist.Config{Gen: g}, cfg.Service.Params...)
	if err != nil {
		return nil, nil, fmt.Errorf("service distribution: %w", err)
	}
	interarrival, err := dist.NewExponential(dist.Config{Gen: g}, cfg.Arrivals.RateRPS)
	if err != nil {
		return nil, nil, fmt.Errorf("arrival process: %w", err)
	}

	servers := initServers(cfg)
	st := NewStats(cfg.Cluster.Servers)

	sim := simgo.NewSimulation()
	sim.Process(func(proc simgo.Process) { collectSnapshots(proc, cfg, servers) })
	sim.Process(func(proc simgo.Process) {
		generateArrivals(proc, sim, g, interarrival, service, servers, st)
	})
	sim.RunUntil(cfg.Simulation.TimeSeconds)

	return st, servers, nil
}

func generateArrivals(
	proc simgo.Process,
	sim *simgo.Simulation,
	g *randgen.Generator,
	interarrival *dist.Factory1,
	service dist.Sampler,
	servers []*Server,
	st *Stats) {

	for {
		ia := interarrival.Sample()
		if ia < 1e-6 {
			ia = 1e-6
		}
		proc.Wait(proc.Timeout(ia))
		now := proc.Now()
		st.AddArrival(ArrivalEvent{T: now})

		srv := servers[g.Intn(len(servers))]
		st.AddPick(srv.ID - 1)
		if srv.Active >= srv.Capacity {
			st.AddDrop(DropEvent{ServerID: srv.ID, T: now})
			continue
		}

		srv.Active++
		d := service.Sample()
		if d < 1e-6 {
			d = 1e-6
		}
		sim.Process(func(req simgo.Process) {
			start := req.Now()
			req.Wait(req.Timeout(d))
			srv.Active--
			st.AddRequest(RequestEvent{ServerID: srv.ID, T1: start, T2: req.Now(), Duration: d})
		})
	}
}

func collectSnapshots(proc simgo.Process, cfg *config.Config, servers []*Server) {
	step := cfg.Simulation.StepSeconds
	for t := 0.0; t < cfg.Simulation.TimeSeconds; t += step {
		proc.Wait(proc.Timeout(step))
		now := proc.Now()
		for _, s := range servers {
			s.AddSnapshot(now)
		}
	}
}
