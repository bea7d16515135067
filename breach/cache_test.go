package breach_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/breach/breachfakes"
)

var _ = Describe("CachingFetcher", func() {
	var (
		logger       *lagertest.TestLogger
		fakeFetcher  *breachfakes.FakeRangeFetcher
		fakeCache    *breachfakes.FakeCache
		fetcher      breach.RangeFetcher
		lines        []string
		fetchErr     error
		ctx          context.Context
		lookupPrefix string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("cache")
		fakeFetcher = &breachfakes.FakeRangeFetcher{}
		fakeCache = &breachfakes.FakeCache{}
		fetcher = breach.NewCachingFetcher(fakeFetcher, fakeCache, time.Hour)
		ctx = context.Background()
		lookupPrefix = "5baa6"

		fakeFetcher.FetchRangeReturns([]string{"AAA:1", "BBB:2"}, nil)
	})

	JustBeforeEach(func() {
		lines, fetchErr = fetcher.FetchRange(ctx, logger, lookupPrefix)
	})

	Context("on a cache miss", func() {
		It("fetches upstream and stores the range", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"AAA:1", "BBB:2"}))

			Expect(fakeCache.GetCallCount()).To(Equal(1))
			_, key := fakeCache.GetArgsForCall(0)
			Expect(key).To(Equal("pass-alert:range:5BAA6"))

			_, _, prefix := fakeFetcher.FetchRangeArgsForCall(0)
			Expect(prefix).To(Equal("5BAA6"))

			Expect(fakeCache.SetCallCount()).To(Equal(1))
			_, key, value, ttl := fakeCache.SetArgsForCall(0)
			Expect(key).To(Equal("pass-alert:range:5BAA6"))
			Expect(value).To(Equal("AAA:1\nBBB:2"))
			Expect(ttl).To(Equal(time.Hour))
		})
	})

	Context("on a cache hit", func() {
		BeforeEach(func() {
			fakeCache.GetReturns("CCC:3\nDDD:4\n", true, nil)
		})

		It("does not go upstream", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"CCC:3", "DDD:4"}))
			Expect(fakeFetcher.FetchRangeCallCount()).To(BeZero())
			Expect(fakeCache.SetCallCount()).To(BeZero())
		})
	})

	Context("when the cache cannot be read", func() {
		BeforeEach(func() {
			fakeCache.GetReturns("", false, errors.New("connection refused"))
		})

		It("falls back to upstream and logs", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(lines).To(Equal([]string{"AAA:1", "BBB:2"}))
			Expect(logger.LogMessages()).To(ContainElement("cache.cached-range.cache-read-failed"))
		})
	})

	Context("when the cache cannot be written", func() {
		BeforeEach(func() {
			fakeCache.SetReturns(errors.New("read only replica"))
		})

		It("still returns the range", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(lines).To(HaveLen(2))
			Expect(logger.LogMessages()).To(ContainElement("cache.cached-range.cache-write-failed"))
		})
	})

	Context("when upstream fails", func() {
		BeforeEach(func() {
			fakeFetcher.FetchRangeReturns(nil, breach.ErrUpstream)
		})

		It("returns the error and caches nothing", func() {
			Expect(fetchErr).To(Equal(breach.ErrUpstream))
			Expect(fakeCache.SetCallCount()).To(BeZero())
		})
	})
})

type fakeStringClient struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func (c *fakeStringClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}

	value, ok := c.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(value, nil)
}

func (c *fakeStringClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.values[key] = value.(string)
	c.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

var _ = Describe("RedisCache", func() {
	var (
		client *fakeStringClient
		cache  breach.Cache
	)

	BeforeEach(func() {
		client = &fakeStringClient{
			values: map[string]string{},
			ttls:   map[string]time.Duration{},
		}
		cache = breach.NewRedisCache(client)
	})

	It("reports a missing key as a miss", func() {
		_, ok, err := cache.Get(context.Background(), "nope")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("stores values with a ttl", func() {
		Expect(cache.Set(context.Background(), "k", "v", time.Minute)).To(Succeed())
		Expect(client.ttls["k"]).To(Equal(time.Minute))

		value, ok, err := cache.Get(context.Background(), "k")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("v"))
	})

	It("returns other redis errors", func() {
		client.getErr = errors.New("LOADING")

		_, ok, err := cache.Get(context.Background(), "k")
		Expect(err).To(MatchError("LOADING"))
		Expect(ok).To(BeFalse())
	})
})
