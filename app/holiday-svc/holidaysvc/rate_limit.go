package holidaysvc

import (
	"golang.org/x/time/rate"
	logger "log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

//clientLimiter is the rate.Limiter of one client ip address and when that client was last seen
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

//clientRateLimiter limits the request rate of each client ip address
type clientRateLimiter struct {
	log               *logger.Logger
	requestsPerSecond rate.Limit
	burst             int
	trustProxy        bool
	mu                sync.Mutex
	limiters          map[string]*clientLimiter
}

//makeClientRateLimiter clientRateLimiter factory. X-Forwarded-For is only used to identify clients when
//trustProxy is set
func makeClientRateLimiter(log *logger.Logger, requestsPerSecond float64, burst int, trustProxy bool) *clientRateLimiter {
	return &clientRateLimiter{
		log:               log,
		requestsPerSecond: rate.Limit(requestsPerSecond),
		burst:             burst,
		trustProxy:        trustProxy,
		limiters:          make(map[string]*clientLimiter),
	}
}

//allow reports whether a request from clientIP may proceed
func (c *clientRateLimiter) allow(clientIP string) bool {
	c.mu.Lock()
	entry, present := c.limiters[clientIP]
	if !present {
		entry = &clientLimiter{limiter: rate.NewLimiter(c.requestsPerSecond, c.burst)}
		c.limiters[clientIP] = entry
	}
	entry.lastSeen = time.Now()
	c.mu.Unlock()
	return entry.limiter.Allow()
}

//sweep removes limiters of clients not seen for idle before now, returns the number removed
func (c *clientRateLimiter) sweep(now time.Time, idle time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for ip, entry := range c.limiters {
		if now.Sub(entry.lastSeen) > idle {
			delete(c.limiters, ip)
			removed++
		}
	}
	return removed
}

//size returns the number of clients currently tracked
func (c *clientRateLimiter) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.limiters)
}

//runSweeper sweeps idle clients every interval until shutdownSignal is received or closed
func (c *clientRateLimiter) runSweeper(interval time.Duration, idle time.Duration, shutdownSignal chan bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			if removed := c.sweep(now, idle); removed > 0 {
				c.log.Printf("removed %d idle client rate limiters", removed)
			}
		case <-shutdownSignal:
			return
		}
	}
}

//middleware rejects requests with 429 once a client exceeds its rate
func (c *clientRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, c.trustProxy)
		if !c.allow(ip) {
			c.log.Printf("rate limited client %s", ip)
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

//clientIP returns the host of RemoteAddr, or the first X-Forwarded-For address when trustProxy is set
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			return strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
