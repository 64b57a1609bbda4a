package cache_test

import (
	"context"
	"sync/atomic"
	"time"

	"HomoCure/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryLocker", func() {
	var locker *cache.MemoryLocker

	BeforeEach(func() {
		locker = cache.NewMemoryLocker()
	})

	It("serializes holders of the same key", func() {
		unlock, err := locker.Lock(context.Background(), "session:1")
		Expect(err).ToNot(HaveOccurred())

		var acquired atomic.Bool
		go func() {
			defer GinkgoRecover()
			release, err := locker.Lock(context.Background(), "session:1")
			Expect(err).ToNot(HaveOccurred())
			acquired.Store(true)
			release()
		}()

		Consistently(acquired.Load).WithTimeout(50 * time.Millisecond).Should(BeFalse())
		unlock()
		Eventually(acquired.Load).WithTimeout(time.Second).Should(BeTrue())
	})

	It("refuses to lock with a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := locker.Lock(ctx, "session:1")
		Expect(err).To(MatchError(context.Canceled))
	})
})
