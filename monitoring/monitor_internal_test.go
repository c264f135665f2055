package monitoring

import (
	"encoding/json"
	"net/http/httptest"

	"github.com/reelworks/reel/timeline"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func sampleScheduler() *timeline.Scheduler {
	sum := func(a, b any) any {
		return a.(float64) + b.(float64)
	}

	cutA, _ := timeline.NewCut(0, 10, timeline.Const(1.0))
	cutB, _ := timeline.NewCut(3, 10, timeline.Const(2.0))
	cutB.WithBlend(sum)

	trackA, _ := timeline.NewTrack([]*timeline.Cut{cutA})
	trackB, _ := timeline.NewTrack([]*timeline.Cut{cutB})

	return timeline.NewScheduler(
		[]*timeline.Track{trackA, trackB},
		timeline.NewLinearGenerator(0, 1),
	)
}

var _ = Describe("Monitor", func() {
	var m *Monitor

	BeforeEach(func() {
		m = NewMonitor()
		m.RegisterScheduler(sampleScheduler())
	})

	It("should report the current time", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/now", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Body.String()).To(ContainSubstring("\"now\":0.0"))
	})

	It("should list tracks", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/tracks", nil)

		m.router().ServeHTTP(w, r)

		var rsp []trackRsp
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(HaveLen(2))
		Expect(rsp[0].NumCuts).To(Equal(1))
		Expect(rsp[1].Start).To(BeNumerically("==", 3))
	})

	It("should list the cuts of a track", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/track/1", nil)

		m.router().ServeHTTP(w, r)

		var rsp []cutRsp
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp).To(HaveLen(1))
		Expect(rsp[0].HasBlend).To(BeTrue())
	})

	It("should 404 on an unknown track", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/track/7", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(404))
	})

	It("should evaluate the schedule at a queried time", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/value?t=5", nil)

		m.router().ServeHTTP(w, r)

		var rsp valueRsp
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Dispatched).To(BeTrue())
		Expect(rsp.Value).To(Equal("3"))
	})

	It("should reject a malformed time", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/value?t=abc", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Code).To(Equal(400))
	})

	It("should drive single steps", func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/step", nil)

		m.router().ServeHTTP(w, r)

		var rsp valueRsp
		Expect(json.Unmarshal(w.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Time).To(BeNumerically("==", 0))
		Expect(rsp.Dispatched).To(BeTrue())

		Expect(m.scheduler.CurrentTime()).To(BeNumerically("==", 1))
	})

	It("should record an interrupt request", func() {
		Expect(m.InterruptRequested()).To(BeFalse())

		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/interrupt", nil)

		m.router().ServeHTTP(w, r)

		Expect(m.InterruptRequested()).To(BeTrue())
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("run", 10)
		bar.IncrementFinished(3)

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/progress", nil)

		m.router().ServeHTTP(w, r)

		Expect(w.Body.String()).To(ContainSubstring("\"finished\":3"))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(BeEmpty())
	})
})
