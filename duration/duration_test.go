package duration_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/duration"
)

func TestDuration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Duration Suite")
}

var _ = Describe("Duration", func() {
	It("Seconds matches time.Duration seconds", func() {
		Expect(Seconds(60).Time()).To(Equal(60 * time.Second))
	})

	It("Minutes matches time.Duration minutes", func() {
		Expect(Minutes(2).Time()).To(Equal(2 * time.Minute))
	})

	It("supports arithmetic between two Durations", func() {
		sum := Seconds(60) + Seconds(3)
		Expect(sum.Time()).To(Equal(63 * time.Second))
	})
})
