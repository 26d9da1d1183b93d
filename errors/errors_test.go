package errors_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/errors"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Errors Suite")
}

const testCode CodeError = 9000

var _ = Describe("Error", func() {
	BeforeEach(func() {
		if !ExistInMapMessage(testCode) {
			RegisterIdFctMessage(testCode, func(code CodeError) string {
				if code == testCode {
					return "test error"
				}
				return ""
			})
		}
	})

	It("carries its code and message", func() {
		e := testCode.Error()
		Expect(e.Code()).To(Equal(testCode.Uint16()))
		Expect(e.Error()).To(Equal("test error"))
	})

	It("chains parent errors into its message", func() {
		parent := fmt.Errorf("dial tcp: connection refused")
		e := testCode.ErrorParent(parent)
		Expect(e.HasParent()).To(BeTrue())
		Expect(e.Error()).To(ContainSubstring("test error"))
		Expect(e.Error()).To(ContainSubstring("connection refused"))
	})

	It("reports IsCode/HasCode correctly through a parent chain", func() {
		inner := testCode.Error()
		outer := New(1, "outer", inner)

		Expect(outer.IsCode(testCode)).To(BeFalse())
		Expect(outer.HasCode(testCode)).To(BeTrue())
	})

	It("IfError returns nil when every parent is nil", func() {
		Expect(testCode.IfError(nil, nil)).To(BeNil())
		Expect(testCode.IfError(nil, fmt.Errorf("boom"))).NotTo(BeNil())
	})
})
