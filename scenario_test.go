package cdlist_test

import (
	"math/rand"

	"github.com/mgnsk/cdlist"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("a new list", func() {
	var list *cdlist.List[int]

	BeforeEach(func() {
		list = cdlist.New[int](cdlist.WithInvariantChecks(true))
	})

	Specify("it is empty", func() {
		Expect(list.IsEmpty()).To(BeTrue())
		Expect(list.Len()).To(BeZero())

		_, ok := list.PopFront()
		Expect(ok).To(BeFalse())

		_, ok = list.PopBack()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("pushing to the back", func() {
	var list *cdlist.List[int]

	BeforeEach(func() {
		list = cdlist.New[int](cdlist.WithInvariantChecks(true))
		list.PushBack(1)
		list.PushBack(2)
		list.PushBack(3)
	})

	AfterEach(func() {
		list.Clear()
		Expect(list.IsEmpty()).To(BeTrue())
		Expect(cdlist.CheckInvariants(list)).To(Succeed())
	})

	Specify("the ends can be peeked", func() {
		front, ok := list.PeekFront()
		Expect(ok).To(BeTrue())
		Expect(front.Value()).To(Equal(1))

		back, ok := list.PeekBack()
		Expect(ok).To(BeTrue())
		Expect(back.Value()).To(Equal(3))

		Expect(list.Len()).To(Equal(3))
	})

	Specify("values are popped from both ends", func() {
		Expect(mustValue(list.PopFront())).To(Equal(1))
		Expect(mustValue(list.PopBack())).To(Equal(3))
		Expect(mustValue(list.PopFront())).To(Equal(2))
		Expect(list.IsEmpty()).To(BeTrue())
	})

	When("popping from the front", func() {
		Specify("values come out in push order", func() {
			var values []int
			for !list.IsEmpty() {
				values = append(values, mustValue(list.PopFront()))
			}
			Expect(values).To(Equal([]int{1, 2, 3}))
		})
	})
})

var _ = Describe("pushing to the front", func() {
	When("popping from the front", func() {
		Specify("values come out in reverse push order", func() {
			list := cdlist.New[int](cdlist.WithInvariantChecks(true))
			for i := 1; i <= 5; i++ {
				list.PushFront(i)
			}

			var values []int
			for !list.IsEmpty() {
				values = append(values, mustValue(list.PopFront()))
			}
			Expect(values).To(Equal([]int{5, 4, 3, 2, 1}))
		})
	})
})

var _ = Describe("indexed access", func() {
	var list *cdlist.List[int]

	BeforeEach(func() {
		list = cdlist.New[int](cdlist.WithInvariantChecks(true))
	})

	Specify("a value is inserted in the middle", func() {
		list.PushBack(1)
		list.PushBack(2)
		list.PushBack(4)

		Expect(list.InsertAt(2, 3)).To(Succeed())
		Expect(list.Values()).To(Equal([]int{1, 2, 3, 4}))
	})

	Specify("values are removed from the ends", func() {
		for i := 1; i <= 8; i++ {
			list.PushBack(i)
		}

		Expect(mustValue(list.RemoveAt(list.Len() - 1))).To(Equal(8))
		Expect(mustValue(list.RemoveAt(0))).To(Equal(1))
		Expect(mustValue(list.RemoveAt(list.Len() - 1))).To(Equal(7))
		Expect(list.Values()).To(Equal([]int{2, 3, 4, 5, 6}))
	})

	DescribeTable("inserting past the end leaves the list unchanged",
		func(n int) {
			for i := range n {
				list.PushBack(i)
			}
			before := list.Values()

			Expect(list.InsertAt(list.Len()+1, 100)).To(MatchError(cdlist.ErrIndexOutOfRange))
			Expect(list.Len()).To(Equal(n))
			Expect(list.Values()).To(Equal(before))
		},
		Entry("one element", 1),
		Entry("two elements", 2),
		Entry("many elements", 10),
	)

	DescribeTable("insert followed by remove at the same index is identity",
		func(index int) {
			for i := range 6 {
				list.PushBack(i)
			}

			Expect(list.InsertAt(index, 100)).To(Succeed())
			Expect(list.Len()).To(Equal(7))
			Expect(mustValue(list.RemoveAt(index))).To(Equal(100))
			Expect(list.Values()).To(Equal([]int{0, 1, 2, 3, 4, 5}))
		},
		Entry("front", 0),
		Entry("second", 1),
		Entry("middle", 3),
		Entry("before back", 5),
		Entry("back", 6),
	)
})

var _ = Describe("random operation sequences", func() {
	Specify("the list matches a slice model", func() {
		list := cdlist.New[int](cdlist.WithInvariantChecks(true))

		var model []int
		pushes, pops := 0, 0

		for i := range 5000 {
			switch op := rand.Intn(8); op {
			case 0:
				list.PushFront(i)
				model = append([]int{i}, model...)
				pushes++

			case 1:
				list.PushBack(i)
				model = append(model, i)
				pushes++

			case 2:
				v, ok := list.PopFront()
				Expect(ok).To(Equal(len(model) > 0))
				if ok {
					Expect(v).To(Equal(model[0]))
					model = model[1:]
					pops++
				}

			case 3:
				v, ok := list.PopBack()
				Expect(ok).To(Equal(len(model) > 0))
				if ok {
					Expect(v).To(Equal(model[len(model)-1]))
					model = model[:len(model)-1]
					pops++
				}

			case 4, 5:
				index := rand.Intn(len(model) + 2)
				err := list.InsertAt(index, i)
				if index > len(model) {
					Expect(err).To(MatchError(cdlist.ErrIndexOutOfRange))
					break
				}
				Expect(err).NotTo(HaveOccurred())
				model = append(model[:index], append([]int{i}, model[index:]...)...)
				pushes++

			case 6:
				index := rand.Intn(len(model) + 1)
				v, ok := list.RemoveAt(index)
				Expect(ok).To(Equal(index < len(model)))
				if ok {
					Expect(v).To(Equal(model[index]))
					model = append(model[:index], model[index+1:]...)
					pops++
				}

			case 7:
				if front, ok := list.PeekFront(); ok {
					Expect(front.Value()).To(Equal(model[0]))
				}
				if back, ok := list.PeekBack(); ok {
					Expect(back.Value()).To(Equal(model[len(model)-1]))
				}
			}

			Expect(list.Len()).To(Equal(pushes - pops))
			Expect(list.IsEmpty()).To(Equal(list.Len() == 0))
		}

		if len(model) > 0 {
			Expect(list.Values()).To(Equal(model))
		} else {
			Expect(list.Values()).To(BeEmpty())
		}

		list.Clear()
		Expect(cdlist.CheckInvariants(list)).To(Succeed())
	})
})
