package metrics

import (
	"github.com/sitebid/goapi/base/log"
)

// LogClient is the fallback sink used when no datadog agent is
// configured. Metrics show up as debug logs instead of disappearing.
type LogClient struct{}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"name": name, "value": value, "tags": tags}).Debug("gauge")
	return nil
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"name": name, "value": value, "tags": tags}).Debug("count")
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"name": name, "value": value, "tags": tags}).Debug("histogram")
	return nil
}

func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	log.Log().WithFields(log.Fields{"name": name, "value": value, "tags": tags}).Debug("time")
	return nil
}
