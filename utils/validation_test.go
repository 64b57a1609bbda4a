package utils_test

import (
	"HomoCure/utils"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("Validation", func() {
	Describe("RequirePresent", func() {
		It("accepts complete input", func() {
			Expect(utils.RequirePresent("Error", "Please fill in all fields.", map[string]string{
				"name": "Alice",
				"age":  "35",
			})).To(Succeed())
		})

		It("lists every empty field in sorted order", func() {
			err := utils.RequirePresent("Error", "Please fill in all fields.", map[string]string{
				"symptoms": "",
				"name":     "Alice",
				"age":      "",
			})

			var validationErr *utils.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Title).To(Equal("Error"))
			Expect(validationErr.Description).To(Equal("Please fill in all fields."))
			Expect(validationErr.Fields).To(Equal([]string{"age", "symptoms"}))
		})
	})

	Describe("ParseCount", func() {
		DescribeTable("parses whole numbers",
			func(value string, expected int) {
				n, err := utils.ParseCount("Error", "age", value)
				Expect(err).ToNot(HaveOccurred())
				Expect(n).To(Equal(expected))
			},
			Entry("plain", "42", 42),
			Entry("leading zero", "07", 7),
			Entry("surrounding whitespace", " 7 ", 7),
			Entry("negative", "-3", -3),
		)

		DescribeTable("rejects unusable values",
			func(value string) {
				_, err := utils.ParseCount("Error", "duration", value)
				var validationErr *utils.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Fields).To(Equal([]string{"duration"}))
			},
			Entry("empty", ""),
			Entry("text", "two weeks"),
			Entry("blank", "   "),
			Entry("fraction", "1.5"),
		)
	})
})
