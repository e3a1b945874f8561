package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rhyrak/course-planner/pkg/model"
)

const (
	OutcomeOK         = "ok"
	OutcomeNoSchedule = "no_schedule"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
)

// Recorder records planner and HTTP metrics. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	gatherer prometheus.Gatherer

	generations     *prometheus.CounterVec
	searchNodes     prometheus.Histogram
	searchDuration  prometheus.Histogram
	truncated       prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// New registers the planner metrics on reg. If reg is nil a fresh registry
// is used. Collectors that are already registered are reused.
func New(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	generations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_generate_total",
		Help: "Schedule generation requests by outcome",
	}, []string{"outcome"})
	searchNodes := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_search_nodes",
		Help:    "Search nodes visited per generation",
		Buckets: prometheus.ExponentialBuckets(10, 10, 7),
	})
	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_search_duration_seconds",
		Help:    "Wall time of the combination search",
		Buckets: prometheus.DefBuckets,
	})
	truncated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_search_truncated_total",
		Help: "Searches stopped by the node or time budget",
	})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	var err error
	if generations, err = register(reg, generations); err != nil {
		return nil, err
	}
	if searchNodes, err = register(reg, searchNodes); err != nil {
		return nil, err
	}
	if searchDuration, err = register(reg, searchDuration); err != nil {
		return nil, err
	}
	if truncated, err = register(reg, truncated); err != nil {
		return nil, err
	}
	if requestDuration, err = register(reg, requestDuration); err != nil {
		return nil, err
	}

	return &Recorder{
		gatherer:        reg,
		generations:     generations,
		searchNodes:     searchNodes,
		searchDuration:  searchDuration,
		truncated:       truncated,
		requestDuration: requestDuration,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveGeneration records one generation request. res may be nil when
// the request failed before the search ran.
func (r *Recorder) ObserveGeneration(outcome string, res *model.Result, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(outcome).Inc()
	if res == nil {
		return
	}
	r.searchNodes.Observe(float64(res.Nodes))
	r.searchDuration.Observe(elapsed.Seconds())
	if res.Truncated {
		r.truncated.Inc()
	}
}

func (r *Recorder) ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.requestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(d.Seconds())
}

// UnmatchedPath labels requests that hit no route, so arbitrary URLs do
// not create new series.
const UnmatchedPath = "unmatched"

// Middleware captures request durations by route.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if r == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = UnmatchedPath
		}
		r.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
