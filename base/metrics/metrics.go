package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/sitebid/goapi/base/log"
)

const (
	ddPort = 8125
	// buffer a few counters before sending to the statsd agent
	bufferMetrics = 10
)

// statsCli is the subset of the statsd client the service relies on
type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

var (
	initOnce sync.Once
	client   statsCli
)

func getClient() statsCli {
	initOnce.Do(func() {
		host := viper.GetString("datadog_host")
		if host == "" {
			client = &LogClient{}
			return
		}
		addr := fmt.Sprintf("%s:%d", host, ddPort)
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics go to logs")
			client = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		client = cli
	})
	return client
}

type Metrics struct {
	pkgName string
	cli     statsCli
}

func New(pkgName string) Service {
	return &Metrics{pkgName: pkgName, cli: getClient()}
}

func (m *Metrics) metricKey(key string) string {
	return m.pkgName + "." + key
}

func (m *Metrics) BumpAvg(key string, val float64, tags ...string) {
	_ = m.cli.Gauge(m.metricKey(key), val, parseTags(tags), 1)
}

func (m *Metrics) BumpSum(key string, val float64, tags ...string) {
	_ = m.cli.Count(m.metricKey(key), int64(val), parseTags(tags), 1)
}

func (m *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	_ = m.cli.Histogram(m.metricKey(key), val, parseTags(tags), 1)
}

func (m *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{start: time.Now(), m: m, key: key, tags: tags}
}

type timeTracker struct {
	start time.Time
	m     *Metrics
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	elapsed := float64(time.Since(t.start).Milliseconds())
	_ = t.m.cli.TimeInMilliseconds(t.m.metricKey(t.key), elapsed, parseTags(t.tags), 1)
}

// parseTags folds alternating key/value arguments into datadog tag form
func parseTags(tags []string) []string {
	res := make([]string, 0, len(tags)/2)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}
