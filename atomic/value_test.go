package atomic_test

import (
	"sync"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/Pneumaticat/bridge/atomic"
)

func TestAtomic(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Atomic Suite")
}

var _ = Describe("Value", func() {
	It("loads the value it was initialized with", func() {
		v := NewValue(true)
		Expect(v.Load()).To(BeTrue())
	})

	It("reflects a Store from another goroutine", func() {
		v := NewValue(false)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Store(true)
		}()
		wg.Wait()

		Expect(v.Load()).To(BeTrue())
	})

	It("CompareAndSwap only swaps when the old value matches", func() {
		v := NewValue(1)
		Expect(v.CompareAndSwap(2, 3)).To(BeFalse())
		Expect(v.Load()).To(Equal(1))

		Expect(v.CompareAndSwap(1, 3)).To(BeTrue())
		Expect(v.Load()).To(Equal(3))
	})
})
