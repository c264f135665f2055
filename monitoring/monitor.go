// Package monitoring turns a running playback into a small web server so
// that it can be observed and controlled from the outside.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/reelworks/reel/timeline"
	"github.com/shirou/gopsutil/process"
)

// Monitor exposes a scheduler over HTTP. It allows external tooling to read
// the current time, inspect tracks and cuts, evaluate the schedule at an
// arbitrary time, drive single steps, and request a cooperative interrupt.
type Monitor struct {
	scheduler  *timeline.Scheduler
	portNumber int
	actualPort int

	interruptRequested atomic.Bool

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterScheduler registers the scheduler to be monitored.
func (m *Monitor) RegisterScheduler(s *timeline.Scheduler) {
	m.scheduler = s
}

// InterruptRequested reports whether a break was requested over HTTP since
// the monitor started. Run loops fold this into their interrupt predicate.
func (m *Monitor) InterruptRequested() bool {
	return m.interruptRequested.Load()
}

// URL returns the address the monitoring server listens on. It is only
// valid after StartServer.
func (m *Monitor) URL() string {
	return fmt.Sprintf("http://localhost:%d", m.actualPort)
}

// CreateProgressBar creates a new progress bar.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		ID:    timeline.GetIDGenerator().Generate(),
		Name:  name,
		Total: total,
	}

	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	m.progressBars = append(m.progressBars, bar)

	return bar
}

// CompleteProgressBar removes a bar from the set of reported bars.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	newBars := make([]*ProgressBar, 0, len(m.progressBars))
	for _, b := range m.progressBars {
		if b != pb {
			newBars = append(newBars, b)
		}
	}

	m.progressBars = newBars
}

// StartServer starts the monitor as a web server, on the configured port or
// a random free one.
func (m *Monitor) StartServer() {
	r := m.router()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(os.Stderr,
		"Monitoring playback with http://localhost:%d\n", m.actualPort)

	go func() {
		err = http.Serve(listener, r)
		dieOnErr(err)
	}()
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/tracks", m.listTracks)
	r.HandleFunc("/api/track/{index}", m.listTrackCuts)
	r.HandleFunc("/api/value", m.valueAt)
	r.HandleFunc("/api/step", m.step)
	r.HandleFunc("/api/stepback", m.stepBack)
	r.HandleFunc("/api/interrupt", m.interrupt)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)

	return r
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.scheduler.CurrentTime()
	fmt.Fprintf(w, "{\"now\":%.10f}", now)
}

type trackRsp struct {
	Index   int     `json:"index"`
	NumCuts int     `json:"num_cuts"`
	Start   float64 `json:"start"`
	Stop    float64 `json:"stop"`
	HasSpan bool    `json:"has_span"`
}

func (m *Monitor) listTracks(w http.ResponseWriter, _ *http.Request) {
	tracks := m.scheduler.Tracks()

	rsp := make([]trackRsp, 0, len(tracks))
	for i, tr := range tracks {
		start, stop, ok := tr.Span()
		rsp = append(rsp, trackRsp{
			Index:   i,
			NumCuts: tr.Len(),
			Start:   float64(start),
			Stop:    float64(stop),
			HasSpan: ok,
		})
	}

	writeJSON(w, rsp)
}

type cutRsp struct {
	ID       string  `json:"id"`
	Start    float64 `json:"start"`
	Stop     float64 `json:"stop"`
	HasBlend bool    `json:"has_blend"`
}

func (m *Monitor) listTrackCuts(w http.ResponseWriter, r *http.Request) {
	indexStr := mux.Vars(r)["index"]

	index, err := strconv.Atoi(indexStr)
	tracks := m.scheduler.Tracks()
	if err != nil || index < 0 || index >= len(tracks) {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Track not found"))
		dieOnErr(err)
		return
	}

	cuts := tracks[index].Cuts()

	rsp := make([]cutRsp, 0, len(cuts))
	for _, c := range cuts {
		rsp = append(rsp, cutRsp{
			ID:       c.ID,
			Start:    float64(c.Start()),
			Stop:     float64(c.Stop()),
			HasBlend: c.HasBlend(),
		})
	}

	writeJSON(w, rsp)
}

type valueRsp struct {
	Time       float64 `json:"time"`
	Value      string  `json:"value"`
	Dispatched bool    `json:"dispatched"`
}

func (m *Monitor) valueAt(w http.ResponseWriter, r *http.Request) {
	tStr := r.URL.Query().Get("t")

	t, err := strconv.ParseFloat(tStr, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, "Error: invalid time %q", tStr)
		return
	}

	v, ok := m.scheduler.ValueAt(timeline.VTime(t))
	m.writeValue(w, timeline.VTime(t), v, ok)
}

func (m *Monitor) step(w http.ResponseWriter, _ *http.Request) {
	t := m.scheduler.CurrentTime()
	v, ok := m.scheduler.NextValue()
	m.writeValue(w, t, v, ok)
}

func (m *Monitor) stepBack(w http.ResponseWriter, _ *http.Request) {
	t := m.scheduler.CurrentTime()
	v, ok := m.scheduler.PrevValue()
	m.writeValue(w, t, v, ok)
}

func (m *Monitor) writeValue(
	w http.ResponseWriter,
	t timeline.VTime,
	v any,
	ok bool,
) {
	rsp := valueRsp{
		Time:       float64(t),
		Dispatched: ok,
	}
	if ok {
		rsp.Value = fmt.Sprintf("%v", v)
	}

	writeJSON(w, rsp)
}

func (m *Monitor) interrupt(w http.ResponseWriter, _ *http.Request) {
	m.interruptRequested.Store(true)
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	writeJSON(w, m.progressBars)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
