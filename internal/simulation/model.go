package simulation

import "sync"

type Server struct {
	ID       int
	Active   int
	Capacity int

	Snapshots []Snapshot
}

type Snapshot struct {
	T      float64
	Active int
}

func (s *Server) AddSnapshot(t float64) {
	s.Snapshots = append(s.Snapshots, Snapshot{T: t, Active: s.Active})
}

type ArrivalEvent struct {
	T float64
}

type RequestEvent struct {
	ServerID int
	T1       float64
	T2       float64
	Duration float64
}

type DropEvent struct {
	ServerID int
	T        float64
}

type Stats struct {
	mu       sync.Mutex
	Arrivals []ArrivalEvent
	Requests []RequestEvent
	Drops    []DropEvent
	Picks    []int
}

func NewStats(servers int) *Stats {
	return &Stats{
		Arrivals: make([]ArrivalEvent, 0),
		Requests: make([]RequestEvent, 0),
		Drops:    make([]DropEvent, 0),
		Picks:    make([]int, servers),
	}
}

func (st *Stats) AddArrival(e ArrivalEvent) {
	st.mu.Lock()
	st.Arrivals = append(st.Arrivals, e)
	st.mu.Unlock()
}

func (st *Stats) AddRequest(e RequestEvent) {
	st.mu.Lock()
	st.Requests = append(st.Requests, e)
	st.mu.Unlock()
}

func (st *Stats) AddDrop(e DropEvent) {
	st.mu.Lock()
	st.Drops = append(st.Drops, e)
	st.mu.Unlock()
}

func (st *Stats) AddPick(id int) {
	st.mu.Lock()
	st.Picks[id]++
	st.mu.Unlock()
}
