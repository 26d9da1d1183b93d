package level_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	. "github.com/Pneumaticat/bridge/logger/level"
)

func TestLevel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Level Suite")
}

var _ = Describe("Level", func() {
	It("parses common level names case-insensitively", func() {
		Expect(Parse("debug")).To(Equal(DebugLevel))
		Expect(Parse("WARN")).To(Equal(WarnLevel))
		Expect(Parse("Error")).To(Equal(ErrorLevel))
	})

	It("falls back to InfoLevel for an unknown name", func() {
		Expect(Parse("nonsense")).To(Equal(InfoLevel))
	})

	It("maps onto the equivalent logrus level", func() {
		Expect(DebugLevel.Logrus()).To(Equal(logrus.DebugLevel))
		Expect(FatalLevel.Logrus()).To(Equal(logrus.FatalLevel))
	})
})
