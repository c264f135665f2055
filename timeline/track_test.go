package timeline

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustCut(start, stop VTime) *Cut {
	c, err := NewCut(start, stop, Const("x"))
	if err != nil {
		panic(err)
	}
	return c
}

var _ = Describe("Track", func() {
	It("should build from non-overlapping cuts", func() {
		tr, err := NewTrack([]*Cut{
			mustCut(0, 1),
			mustCut(1, 2),
			mustCut(3, 20),
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Len()).To(Equal(3))
	})

	It("should sort the cuts by start time", func() {
		tr, err := NewTrack([]*Cut{
			mustCut(3, 20),
			mustCut(0, 1),
			mustCut(1, 2),
		})

		Expect(err).ToNot(HaveOccurred())
		Expect(tr.Cuts()[0].Start()).To(BeNumerically("==", 0))
		Expect(tr.Cuts()[2].Start()).To(BeNumerically("==", 3))
	})

	It("should refuse overlapping cuts", func() {
		tr, err := NewTrack([]*Cut{
			mustCut(0, 1),
			mustCut(0.5, 2),
		})

		Expect(tr).To(BeNil())
		Expect(err).To(MatchError(ErrOverlappingCuts))
	})

	It("should refuse overlapping cuts regardless of input order", func() {
		tr, err := NewTrack([]*Cut{
			mustCut(0.5, 2),
			mustCut(0, 1),
		})

		Expect(tr).To(BeNil())
		Expect(err).To(MatchError(ErrOverlappingCuts))
	})

	It("should accept cuts that share a boundary", func() {
		_, err := NewTrack([]*Cut{
			mustCut(0, 1),
			mustCut(1, 2),
		})

		Expect(err).ToNot(HaveOccurred())
	})

	It("should report the span", func() {
		tr, _ := NewTrack([]*Cut{
			mustCut(3, 20),
			mustCut(0, 1),
		})

		start, stop, ok := tr.Span()

		Expect(ok).To(BeTrue())
		Expect(start).To(BeNumerically("==", 0))
		Expect(stop).To(BeNumerically("==", 20))
	})

	It("should report no span when empty", func() {
		tr, _ := NewTrack(nil)

		_, _, ok := tr.Span()

		Expect(ok).To(BeFalse())
	})

	Describe("Active", func() {
		var tr *Track

		BeforeEach(func() {
			var err error
			tr, err = NewTrack([]*Cut{
				mustCut(0, 1),
				mustCut(1, 2),
				mustCut(3, 20),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should match the start of an interval", func() {
			Expect(tr.Active(0).Stop()).To(BeNumerically("==", 1))
			Expect(tr.Active(3).Stop()).To(BeNumerically("==", 20))
		})

		It("should match inside an interval", func() {
			Expect(tr.Active(0.1).Stop()).To(BeNumerically("==", 1))
			Expect(tr.Active(10).Stop()).To(BeNumerically("==", 20))
		})

		It("should give a shared boundary to the later cut", func() {
			Expect(tr.Active(1).Stop()).To(BeNumerically("==", 2))
		})

		It("should not match the stop of the last interval", func() {
			Expect(tr.Active(20)).To(BeNil())
		})

		It("should not match a gap", func() {
			Expect(tr.Active(2.5)).To(BeNil())
		})

		It("should not match outside the track", func() {
			Expect(tr.Active(-0.1)).To(BeNil())
			Expect(tr.Active(20.1)).To(BeNil())
		})

		It("should not match a NaN query", func() {
			Expect(tr.Active(VTime(math.NaN()))).To(BeNil())
		})
	})

	It("should agree with a linear scan on random interval sets", func() {
		rng := rand.New(rand.NewSource(42))

		for trial := 0; trial < 20; trial++ {
			cuts := make([]*Cut, 0, 200)
			t := VTime(0)
			for i := 0; i < 200; i++ {
				start := t + VTime(rng.Float64())
				stop := start + VTime(rng.Float64()*3)
				cuts = append(cuts, mustCut(start, stop))
				t = stop
			}

			rng.Shuffle(len(cuts), func(i, j int) {
				cuts[i], cuts[j] = cuts[j], cuts[i]
			})

			tr, err := NewTrack(cuts)
			Expect(err).ToNot(HaveOccurred())

			_, span, _ := tr.Span()
			for i := 0; i < 2000; i++ {
				q := VTime(rng.Float64()) * (span + 1)

				var want *Cut
				for _, c := range tr.Cuts() {
					if intervalPosition(c, q) == within {
						want = c
						break
					}
				}

				Expect(tr.Active(q)).To(BeIdenticalTo(want))
			}
		}
	})
})
