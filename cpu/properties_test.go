package cpu_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/as8/cpu"
)

var _ = Describe("Table", func() {
	var tbl *cpu.Table

	BeforeEach(func() {
		var err error
		tbl, err = cpu.Default()
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with operands out of range", func() {
		DescribeTable("matches nothing and emits no bytes",
			func(stmt string) {
				code, err := tbl.Assemble(stmt)
				Expect(err).To(MatchError(cpu.ErrNoMatch(stmt)))
				Expect(code).To(BeEmpty())
			},
			Entry("register index 12", "add r12"),
			Entry("register below R range", "add r3"),
			Entry("register outside c range", "lcn r7"),
			Entry("non-accumulator in A", "mov r2, r3"),
			Entry("number wider than 7 bits", "jmp 128"),
			Entry("unknown register name", "clr pc"),
		)
	})

	Context("with register aliases", func() {
		It("encodes mov acc, sp as mov A, r7", func() {
			alias, err := tbl.Assemble("mov acc, sp")
			Expect(err).NotTo(HaveOccurred())
			canonical, err := tbl.Assemble("mov r6, r7")
			Expect(err).NotTo(HaveOccurred())

			Expect(alias).To(Equal([]byte{0b0010_1111}))
			Expect(alias).To(Equal(canonical))
		})

		DescribeTable("matches the canonical register",
			func(alias, name string) {
				for _, format := range []string{"clr %v", "mov %v, acc", "lcn %v", "add %v, 1"} {
					want, werr := tbl.Assemble(fmt.Sprintf(format, name))
					got, gerr := tbl.Assemble(fmt.Sprintf(format, alias))
					Expect(gerr == nil).To(Equal(werr == nil))
					Expect(got).To(Equal(want))
				}
			},
			Entry("config", "config", "r1"),
			Entry("tos", "tos", "r5"),
			Entry("acc", "acc", "r6"),
			Entry("sp", "sp", "r7"),
		)
	})

	Context("with composite instructions", func() {
		It("concatenates constituent bytes in template order", func() {
			code, err := tbl.Assemble("jz 10")
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal([]byte{0b1000_1010, 0b0111_1000, 0b0110_1000}))
		})

		It("resolves to the composite definition", func() {
			inst, operands, err := tbl.Resolve("jz 10")
			Expect(err).NotTo(HaveOccurred())
			Expect(inst.Composite()).To(BeTrue())
			Expect(inst.Mnemonic).To(Equal("jz"))
			Expect(operands).To(Equal([]int{10}))
		})
	})

	Context("with literal bit patterns", func() {
		It("substitutes each field at its width", func() {
			code, err := tbl.Assemble("add r5, 4")
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal([]byte{0b1000_0100, 0b0100_1000}))

			code, err = tbl.Assemble("add r6, 4")
			Expect(err).NotTo(HaveOccurred())
			Expect(code).To(Equal([]byte{0b1000_0100, 0b0100_1100}))
		})
	})

	It("is deterministic", func() {
		for inst := range tbl.Instructions() {
			first, ferr := tbl.Assemble(inst.Format)
			second, serr := tbl.Assemble(inst.Format)
			Expect(second).To(Equal(first))
			if ferr == nil {
				Expect(serr).NotTo(HaveOccurred())
			} else {
				Expect(serr).To(MatchError(ferr))
			}
		}
	})
})

var _ = Describe("Declaration order", func() {
	It("prefers the earlier of two overlapping definitions", func() {
		tbl, err := cpu.NewTable("put r ; #00000rrr\nput R ; #111111RR")
		Expect(err).NotTo(HaveOccurred())

		code, err := tbl.Assemble("put r5")
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal([]byte{0b0000_0101}))

		swapped, err := cpu.NewTable("put R ; #111111RR\nput r ; #00000rrr")
		Expect(err).NotTo(HaveOccurred())

		code, err = swapped.Assemble("put r5")
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal([]byte{0b1111_1101}))

		// Only the 3 bit definition accepts r0.
		code, err = swapped.Assemble("put r0")
		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal([]byte{0b0000_0000}))
	})
})

var _ = Describe("Definitions", func() {
	It("fail construction when malformed", func() {
		_, err := cpu.NewTable("add R ; #000000RR\nsub R ; #00001RRR")
		var de *cpu.ErrDefinition
		Expect(err).To(BeAssignableToTypeOf(de))
		Expect(err).To(MatchError(cpu.ErrFieldWidth))
	})

	It("fail construction on unknown placeholders", func() {
		_, err := cpu.NewTable("zap ; #0000000z")
		Expect(err).To(MatchError(cpu.ErrPlaceholderUnknown))
	})
})
