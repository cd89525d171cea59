package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emrzvv/randkit/internal/simulation"
)

func writeSummaryToCSV(st *simulation.Stats, servers []*simulation.Server, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"id", "picked", "served", "dropped"})
	served := make([]int, len(servers))
	for _, r := range st.Requests {
		served[r.ServerID-1]++
	}
	dropped := make([]int, len(servers))
	for _, d := range st.Drops {
		dropped[d.ServerID-1]++
	}
	for i := range servers {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", st.Picks[i]),
			fmt.Sprintf("%d", served[i]),
			fmt.Sprintf("%d", dropped[i]),
		})
	}
	w.Flush()
	return w.Error()
}

func writeArrivalsToCSV(st *simulation.Stats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s"})
	for _, e := range st.Arrivals {
		w.Write([]string{fmt.Sprintf("%.5f", e.T)})
	}
	w.Flush()
	return w.Error()
}

func writeRequestsToCSV(st *simulation.Stats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"server_id", "start_s", "end_s", "duration"})
	for _, e := range st.Requests {
		w.Write([]string{
			fmt.Sprintf("%d", e.ServerID),
			fmt.Sprintf("%.5f", e.T1),
			fmt.Sprintf("%.5f", e.T2),
			fmt.Sprintf("%.5f", e.Duration),
		})
	}
	w.Flush()
	return w.Error()
}

func writeSnapshotsToCSV(servers []*simulation.Server, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s", "server_id", "active"})
	for _, s := range servers {
		for _, snap := range s.Snapshots {
			w.Write([]string{
				fmt.Sprintf("%.5f", snap.T),
				fmt.Sprintf("%d", s.ID),
				fmt.Sprintf("%d", snap.Active),
			})
		}
	}
	w.Flush()
	return w.Error()
}

func ToCSV(dir string, st *simulation.Stats, servers []*simulation.Server) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeSummaryToCSV(st, servers, filepath.Join(dir, "summary.csv")); err != nil {
		return err
	}
	if err := writeArrivalsToCSV(st, filepath.Join(dir, "arrivals.csv")); err != nil {
		return err
	}
	if err := writeRequestsToCSV(st, filepath.Join(dir, "requests.csv")); err != nil {
		return err
	}
	return writeSnapshotsToCSV(servers, filepath.Join(dir, "snapshots.csv"))
}
