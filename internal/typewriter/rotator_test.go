package typewriter

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rotator", func() {
	It("rejects an empty phrase list", func() {
		_, err := New(nil, DefaultTiming())
		Expect(err).To(MatchError(ErrNoPhrases))
	})

	It("rejects non-positive step delays", func() {
		_, err := New([]string{"x"}, Timing{Type: 0, Delete: time.Millisecond})
		Expect(err).To(MatchError(ErrInvalidTiming))
	})

	It("starts typing the first phrase from empty", func() {
		r, err := New([]string{"Go", "Rust"}, DefaultTiming())
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Text()).To(BeEmpty())
		Expect(r.Index()).To(BeZero())
		Expect(r.Phase()).To(Equal(Typing))
		Expect(r.Delay()).To(Equal(90 * time.Millisecond))
	})

	It("produces the cyclic type/hold/delete/hold sequence", func() {
		r, err := New([]string{"A", "BC"}, DefaultTiming())
		Expect(err).NotTo(HaveOccurred())

		got := []string{r.Text()}
		for i := 0; i < 22; i++ {
			got = append(got, r.Step())
		}

		cycle := []string{"A", "A", "", "", "B", "BC", "BC", "B", "", ""}
		want := []string{""}
		for len(want) < len(got) {
			want = append(want, cycle...)
		}
		Expect(got).To(Equal(want[:len(got)]))
	})

	DescribeTable("uses the phase delay",
		func(steps int, phase Phase, delay time.Duration) {
			r, _ := New([]string{"AB"}, DefaultTiming())
			for i := 0; i < steps; i++ {
				r.Step()
			}
			Expect(r.Phase()).To(Equal(phase))
			Expect(r.Delay()).To(Equal(delay))
		},
		Entry("typing", 1, Typing, 90*time.Millisecond),
		Entry("holding the full phrase", 2, PausedAfterType, 1200*time.Millisecond),
		Entry("deleting", 3, Deleting, 45*time.Millisecond),
		Entry("holding the empty text", 5, PausedAfterDelete, 300*time.Millisecond),
		Entry("typing the next round", 6, Typing, 90*time.Millisecond),
	)

	It("types runes, not bytes", func() {
		r, _ := New([]string{"héllo"}, DefaultTiming())
		r.Step()
		r.Step()
		Expect(r.Text()).To(Equal("hé"))
	})

	It("survives an empty phrase in the list", func() {
		r, _ := New([]string{"", "x"}, DefaultTiming())
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			seen[r.Step()] = true
		}
		Expect(seen).To(HaveKey("x"))
	})

	It("renders a cursor affordance without changing the text", func() {
		r, _ := New([]string{"Hi"}, DefaultTiming())
		r.Step()
		Expect(r.Cursor(true)).To(Equal("H|"))
		Expect(r.Cursor(false)).To(Equal("H "))
		Expect(r.Text()).To(Equal("H"))
	})

	It("resets to the initial state", func() {
		r, _ := New([]string{"A", "B"}, DefaultTiming())
		for i := 0; i < 7; i++ {
			r.Step()
		}
		r.Reset()
		Expect(r.Index()).To(BeZero())
		Expect(r.Text()).To(BeEmpty())
		Expect(r.Phase()).To(Equal(Typing))
	})
})
