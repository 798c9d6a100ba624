package particles

import (
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/sched"
)

var _ = Describe("Mount", func() {
	const frame = 16 * time.Millisecond

	var (
		clock *sched.Manual
		field *Field
		rec   *recorder
	)

	acquire := func() (Surface, bool) { return rec, true }

	BeforeEach(func() {
		var err error
		clock = sched.NewManual()
		field, err = NewField(DefaultOptions(), rand.New(rand.NewPCG(9, 9)))
		Expect(err).NotTo(HaveOccurred())
		field.Resize(1280, 720, 1)
		rec = &recorder{}
	})

	It("renders the first frame immediately and keeps one request live", func() {
		m := NewMount(field, acquire, clock, frame)
		Expect(m.Frames()).To(Equal(1))
		Expect(clock.Pending()).To(Equal(1))

		clock.Advance(10 * frame)
		Expect(m.Frames()).To(Equal(11))
		Expect(clock.Pending()).To(Equal(1))
	})

	It("freezes the frame count while hidden", func() {
		m := NewMount(field, acquire, clock, frame)
		clock.Advance(3 * frame)

		m.SetVisible(false)
		frozen := m.Frames()
		Expect(clock.Pending()).To(BeZero())
		Expect(m.Running()).To(BeFalse())

		clock.Advance(time.Second)
		Expect(m.Frames()).To(Equal(frozen))
	})

	It("resumes exactly once when shown again", func() {
		m := NewMount(field, acquire, clock, frame)
		m.SetVisible(false)
		before := m.Frames()

		m.SetVisible(true)
		m.SetVisible(true)
		Expect(m.Frames()).To(Equal(before + 1))
		Expect(clock.Pending()).To(Equal(1))

		clock.Advance(frame)
		Expect(m.Frames()).To(Equal(before + 2))
		Expect(clock.Pending()).To(Equal(1))
	})

	It("stays inert when no surface can be acquired", func() {
		m := NewMount(field, func() (Surface, bool) { return nil, false }, clock, frame)
		Expect(m.Attached()).To(BeFalse())
		Expect(m.Frames()).To(BeZero())
		Expect(clock.Pending()).To(BeZero())

		m.SetVisible(true)
		m.PointerMove(10, 10)
		m.Resize(10, 10, 1)
		Expect(clock.Pending()).To(BeZero())
		Expect(field.Pointer().Active).To(BeFalse())
	})

	It("leaves nothing scheduled after unmount", func() {
		m := NewMount(field, acquire, clock, frame)
		clock.Advance(2 * frame)
		m.Unmount()
		frames := m.Frames()

		Expect(clock.Pending()).To(BeZero())
		m.SetVisible(true)
		m.PointerMove(1, 1)
		clock.Advance(time.Second)
		Expect(m.Frames()).To(Equal(frames))
		Expect(field.Pointer().Active).To(BeFalse())

		Expect(m.Unmount).NotTo(Panic())
	})

	It("forwards pointer and blur events", func() {
		m := NewMount(field, acquire, clock, frame)
		m.PointerMove(100, 200)
		Expect(field.Pointer()).To(Equal(Pointer{X: 100, Y: 200, Active: true}))

		m.Blur()
		Expect(field.Pointer().Active).To(BeFalse())
	})

	It("regenerates nodes on resize", func() {
		m := NewMount(field, acquire, clock, frame)
		m.Resize(400, 300, 2)
		Expect(field.Nodes()).To(HaveLen(30))
		Expect(field.LinkDistance()).To(Equal(105.0))

		clock.Advance(frame)
		for _, n := range field.Nodes() {
			Expect(n.X).To(BeNumerically("<=", 400))
			Expect(n.Y).To(BeNumerically("<=", 300))
		}
	})
})
