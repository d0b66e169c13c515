package grouping_test

import (
	"fmt"
	"math"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/rng"
	"github.com/san-kum/classkit/internal/roster"
)

func class(n, disruptive int) []roster.Student {
	out := make([]roster.Student, n)
	for i := range out {
		out[i] = roster.Student{ID: int64(i + 1), Name: fmt.Sprintf("s%02d", i+1), Disruptive: i < disruptive}
	}
	return out
}

func ids(groups []grouping.Group) []int64 {
	var out []int64
	for _, g := range groups {
		for _, s := range g {
			out = append(out, s.ID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sizes(groups []grouping.Group) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = len(g)
	}
	sort.Ints(out)
	return out
}

func disruptiveCount(g grouping.Group) int {
	n := 0
	for _, s := range g {
		if s.Disruptive {
			n++
		}
	}
	return n
}

var _ = Describe("Make", func() {
	It("splits 10 students into groups of 4, 3 and 3", func() {
		groups, err := grouping.Make(class(10, 0), grouping.ByCount(3), rng.New(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(sizes(groups)).To(Equal([]int{3, 3, 4}))
	})

	It("uses ceil(N/n) groups in size mode", func() {
		groups, err := grouping.Make(class(10, 0), grouping.BySize(4), rng.New(2))
		Expect(err).NotTo(HaveOccurred())
		Expect(groups).To(HaveLen(3))
	})

	It("returns no groups for an empty class", func() {
		groups, err := grouping.Make(nil, grouping.ByCount(4), rng.New(3))
		Expect(err).NotTo(HaveOccurred())
		Expect(groups).To(BeEmpty())
	})

	It("makes no groups for a zero size or count", func() {
		for _, mode := range []grouping.Mode{{}, grouping.BySize(0), grouping.ByCount(0)} {
			groups, err := grouping.Make(class(4, 0), mode, rng.New(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(BeEmpty())
		}
	})

	It("ignores the mode for an empty class", func() {
		groups, err := grouping.Make(nil, grouping.ByCount(0), rng.New(3))
		Expect(err).NotTo(HaveOccurred())
		Expect(groups).To(BeEmpty())

		groups, err = grouping.Make(nil, grouping.BySize(-1), rng.New(3))
		Expect(err).NotTo(HaveOccurred())
		Expect(groups).To(BeEmpty())
	})

	It("rejects a negative size or count", func() {
		_, err := grouping.Make(class(4, 0), grouping.BySize(-2), rng.New(3))
		Expect(err).To(MatchError(grouping.ErrInvalidMode))

		_, err = grouping.Make(class(4, 0), grouping.ByCount(-1), rng.New(3))
		Expect(err).To(MatchError(grouping.ErrInvalidMode))
	})

	It("caps a huge group count at the class size", func() {
		groups, err := grouping.Make(class(2, 1), grouping.ByCount(1<<60), rng.New(6))
		Expect(err).NotTo(HaveOccurred())
		Expect(sizes(groups)).To(Equal([]int{1, 1}))
	})

	It("puts everyone in one group for a huge group size", func() {
		groups, err := grouping.Make(class(5, 0), grouping.BySize(math.MaxInt), rng.New(6))
		Expect(err).NotTo(HaveOccurred())
		Expect(sizes(groups)).To(Equal([]int{5}))
	})

	It("drops empty groups when there are more groups than students", func() {
		groups, err := grouping.Make(class(3, 0), grouping.ByCount(5), rng.New(4))
		Expect(err).NotTo(HaveOccurred())
		Expect(groups).To(HaveLen(3))
		for _, g := range groups {
			Expect(g).NotTo(BeEmpty())
		}
	})

	It("spreads disruptive students over distinct groups", func() {
		groups, err := grouping.Make(class(10, 3), grouping.ByCount(3), rng.New(5))
		Expect(err).NotTo(HaveOccurred())
		for _, g := range groups {
			Expect(disruptiveCount(g)).To(Equal(1))
		}
	})

	DescribeTable("keeps every student exactly once and balances group sizes",
		func(n, disruptive, k int) {
			students := class(n, disruptive)
			for seed := int64(1); seed <= 25; seed++ {
				groups, err := grouping.Make(students, grouping.ByCount(k), rng.New(seed))
				Expect(err).NotTo(HaveOccurred())
				Expect(ids(groups)).To(Equal(ids([]grouping.Group{students})))

				sz := sizes(groups)
				Expect(sz[len(sz)-1] - sz[0]).To(BeNumerically("<=", 1))

				counts := make([]int, len(groups))
				for i, g := range groups {
					counts[i] = disruptiveCount(g)
				}
				sort.Ints(counts)
				Expect(counts[len(counts)-1] - counts[0]).To(BeNumerically("<=", 1))
			}
		},
		Entry("even split", 12, 0, 4),
		Entry("uneven split", 23, 4, 5),
		Entry("many disruptive", 17, 9, 4),
		Entry("all disruptive", 7, 7, 3),
		Entry("single group", 9, 2, 1),
	)

	It("is reproducible for a fixed seed", func() {
		a, _ := grouping.Make(class(15, 3), grouping.BySize(4), rng.New(99))
		b, _ := grouping.Make(class(15, 3), grouping.BySize(4), rng.New(99))
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Move", func() {
	var groups []grouping.Group

	BeforeEach(func() {
		s := class(5, 0)
		groups = []grouping.Group{{s[0], s[1]}, {s[2]}, {s[3], s[4]}}
	})

	It("moves a student without rebalancing", func() {
		out, err := grouping.Move(groups, 0, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(out[0]).To(HaveLen(1))
		Expect(out[2]).To(HaveLen(3))
		Expect(out[2][2].ID).To(Equal(int64(2)))
	})

	It("leaves the input untouched", func() {
		_, err := grouping.Move(groups, 0, 0, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(groups[0]).To(HaveLen(2))
		Expect(groups[1]).To(HaveLen(1))
	})

	It("prunes a group emptied by the move", func() {
		out, err := grouping.Move(groups, 1, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(2))
		Expect(ids(out)).To(Equal([]int64{1, 2, 3, 4, 5}))
	})

	It("checks bounds", func() {
		_, err := grouping.Move(groups, 3, 0, 0)
		Expect(err).To(MatchError(grouping.ErrOutOfRange))
		_, err = grouping.Move(groups, 0, 5, 1)
		Expect(err).To(MatchError(grouping.ErrOutOfRange))
		_, err = grouping.Move(groups, 0, 0, -1)
		Expect(err).To(MatchError(grouping.ErrOutOfRange))
	})

	It("can fill a freshly added group", func() {
		withEmpty := grouping.AddGroup(groups)
		Expect(withEmpty).To(HaveLen(4))
		Expect(withEmpty[3]).To(BeEmpty())

		out, err := grouping.Move(withEmpty, 2, 0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveLen(4))
		Expect(out[3][0].ID).To(Equal(int64(4)))
	})
})

var _ = Describe("Locate", func() {
	It("finds a student by id", func() {
		s := class(3, 0)
		groups := []grouping.Group{{s[0]}, {s[1], s[2]}}
		g, i, ok := grouping.Locate(groups, 3)
		Expect(ok).To(BeTrue())
		Expect(g).To(Equal(1))
		Expect(i).To(Equal(1))

		_, _, ok = grouping.Locate(groups, 42)
		Expect(ok).To(BeFalse())
	})
})
