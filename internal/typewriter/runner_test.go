package typewriter

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/sched"
)

var _ = Describe("Runner", func() {
	var (
		clock *sched.Manual
		rot   *Rotator
		run   *Runner
		seen  []string
	)

	BeforeEach(func() {
		var err error
		clock = sched.NewManual()
		rot, err = New([]string{"A", "BC"}, DefaultTiming())
		Expect(err).NotTo(HaveOccurred())
		run = NewRunner(rot, clock)
		seen = nil
		run.OnChange(func(text string) { seen = append(seen, text) })
	})

	It("keeps exactly one timer pending", func() {
		run.Start()
		run.Start()
		Expect(clock.Pending()).To(Equal(1))

		for i := 0; i < 15; i++ {
			Expect(clock.Step()).To(BeTrue())
			Expect(clock.Pending()).To(Equal(1))
		}
	})

	It("respects the per-phase delays exactly", func() {
		run.Start()

		clock.Advance(89 * time.Millisecond)
		Expect(seen).To(BeEmpty())
		clock.Advance(time.Millisecond)
		Expect(seen).To(Equal([]string{"A"}))

		clock.Advance(1199 * time.Millisecond)
		Expect(seen).To(HaveLen(1))
		clock.Advance(time.Millisecond)
		Expect(seen).To(Equal([]string{"A", "A"}))

		clock.Advance(45 * time.Millisecond)
		Expect(seen).To(Equal([]string{"A", "A", ""}))

		clock.Advance(300 * time.Millisecond)
		Expect(rot.Index()).To(Equal(1))
		Expect(rot.Phase()).To(Equal(Typing))
	})

	It("never mutates state after Stop", func() {
		run.Start()
		clock.Advance(90 * time.Millisecond)
		Expect(rot.Text()).To(Equal("A"))

		run.Stop()
		Expect(clock.Pending()).To(BeZero())

		phase, text := rot.Phase(), rot.Text()
		clock.Advance(time.Minute)
		Expect(seen).To(HaveLen(1))
		Expect(rot.Phase()).To(Equal(phase))
		Expect(rot.Text()).To(Equal(text))
		Expect(run.Running()).To(BeFalse())
	})

	It("can stop from inside an observer", func() {
		run.OnChange(func(string) { run.Stop() })
		run.Start()
		clock.Advance(time.Second)
		Expect(seen).To(HaveLen(1))
		Expect(clock.Pending()).To(BeZero())
	})
})
