package structhash

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	nextConnectionID   prometheus.CounterFunc
	resolutions        prometheus.CounterFunc
	compositeCacheHits prometheus.CounterFunc
	statementsHandled  prometheus.Counter
	hashesComputed     prometheus.Counter
	duplicatesFound    prometheus.Counter

	// Gauges
	openConnections     prometheus.GaugeFunc
	openChannels        prometheus.GaugeFunc
	primitiveStrategies prometheus.GaugeFunc
	cachedComposites    prometheus.GaugeFunc
	indexEntries        prometheus.GaugeFunc
}

func newMetrics(idx *Index) *metrics {
	m := &metrics{
		nextConnectionID: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "next_connection_id",
				Help: "number of connections to this server over its lifetime",
			},
			func() float64 {
				return float64(idx.nextConnectionID)
			},
		),
		resolutions: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "strategy_resolutions",
				Help: "number of strategy resolutions over the registry's lifetime",
			},
			func() float64 {
				return float64(idx.registry.Resolutions())
			},
		),
		compositeCacheHits: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "composite_cache_hits",
				Help: "number of resolutions served from the composite strategy cache",
			},
			func() float64 {
				return float64(idx.registry.CacheHits())
			},
		),
		statementsHandled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_handled",
				Help: "number of statements handled across all connections",
			},
		),
		hashesComputed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hashes_computed",
				Help: "number of hash codes computed",
			},
		),
		duplicatesFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "duplicates_found",
				Help: "number of puts which found an equal entry already stored",
			},
		),
		openConnections: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_connections",
				Help: "number of connections currently open",
			},
			func() float64 {
				return float64(len(idx.connections))
			},
		),
		openChannels: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_channels",
				Help: "number of channels currently open across all connections",
			},
			func() float64 {
				// TODO: synchronize access to idx.connections...
				count := 0
				for _, conn := range idx.connections {
					count += len(conn.channels)
				}
				return float64(count)
			},
		),
		primitiveStrategies: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "primitive_strategies",
				Help: "number of primitive strategies registered",
			},
			func() float64 {
				return float64(idx.registry.NumPrimitives())
			},
		),
		cachedComposites: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "cached_composite_strategies",
				Help: "number of composite strategies in the cache",
			},
			func() float64 {
				return float64(idx.registry.NumCachedComposites())
			},
		),
		indexEntries: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "index_entries",
				Help: "number of entries stored in the index",
			},
			func() float64 {
				return float64(idx.numEntries())
			},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(prometheus.NewProcessCollector(os.Getpid(), ""))
	reg.MustRegister(prometheus.NewGoCollector())

	reg.MustRegister(m.nextConnectionID)
	reg.MustRegister(m.resolutions)
	reg.MustRegister(m.compositeCacheHits)
	reg.MustRegister(m.statementsHandled)
	reg.MustRegister(m.hashesComputed)
	reg.MustRegister(m.duplicatesFound)
	reg.MustRegister(m.openConnections)
	reg.MustRegister(m.openChannels)
	reg.MustRegister(m.primitiveStrategies)
	reg.MustRegister(m.cachedComposites)
	reg.MustRegister(m.indexEntries)
	return m
}
