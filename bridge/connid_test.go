package bridge_test

import (
	"encoding/hex"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/bridge"
)

var _ = Describe("NewConnId", func() {
	It("returns a 32-character hex string (128 bits)", func() {
		id, err := NewConnId()
		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(HaveLen(32))

		_, decErr := hex.DecodeString(id)
		Expect(decErr).NotTo(HaveOccurred())
	})

	It("never repeats across invocations", func() {
		seen := map[string]bool{}
		for i := 0; i < 200; i++ {
			id, err := NewConnId()
			Expect(err).NotTo(HaveOccurred())
			Expect(seen[id]).To(BeFalse())
			seen[id] = true
		}
	})
})
