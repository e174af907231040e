package market

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// IndexQuote is one headline figure of the market pulse.
type IndexQuote struct {
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// Pulse is the market snapshot shown on the dashboard ticker.
type Pulse struct {
	Nifty50   IndexQuote `json:"nifty50"`
	Sensex    IndexQuote `json:"sensex"`
	Gold      IndexQuote `json:"gold"`
	Bond10Y   IndexQuote `json:"bond10y"`
	Source    string     `json:"source"`
	Timestamp time.Time  `json:"timestamp"`
}

// usdToINR converts the Yahoo gold quote (USD per ounce) into the rupee
// figure the ticker shows. A fixed conversion keeps the fallback and live
// paths comparable.
const usdToINR = 83.0

// Service fetches and caches the market pulse. A cron job refreshes the
// cache in the background; readers always get the last good (or fallback)
// snapshot without blocking on the network.
type Service struct {
	client *YahooClient
	log    zerolog.Logger

	mu     sync.RWMutex
	cached Pulse

	cron *cron.Cron
}

// NewService creates the market service.
func NewService(client *YahooClient, log zerolog.Logger) *Service {
	s := &Service{
		client: client,
		log:    log.With().Str("component", "market").Logger(),
	}
	s.cached = fallbackPulse()
	return s
}

// Pulse returns the cached market snapshot.
func (s *Service) Pulse() Pulse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cached
}

// Refresh fetches a fresh pulse and swaps the cache. On any upstream
// failure the fallback snapshot is served instead; the pulse endpoint never
// errors to its clients.
func (s *Service) Refresh() Pulse {
	pulse, err := s.fetchLive()
	if err != nil {
		s.log.Warn().Err(err).Msg("market pulse fetch failed, serving fallback")
		pulse = fallbackPulse()
	}

	s.mu.Lock()
	s.cached = pulse
	s.mu.Unlock()
	return pulse
}

func (s *Service) fetchLive() (Pulse, error) {
	nifty, err := s.quote("NIFTY", 1)
	if err != nil {
		return Pulse{}, err
	}
	sensex, err := s.quote("SENSEX", 1)
	if err != nil {
		return Pulse{}, err
	}
	gold, err := s.quote("GOLD", usdToINR)
	if err != nil {
		return Pulse{}, err
	}

	return Pulse{
		Nifty50: nifty,
		Sensex:  sensex,
		Gold:    gold,
		// No free intraday feed for the 10Y G-Sec yield; a static figure
		// stands in.
		Bond10Y:   IndexQuote{Value: 7.05},
		Source:    "Yahoo Finance",
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *Service) quote(symbol string, scale float64) (IndexQuote, error) {
	last, prev, err := s.client.Quote(symbol)
	if err != nil {
		return IndexQuote{}, err
	}
	last *= scale
	prev *= scale

	q := IndexQuote{Value: roundTo(last, 2)}
	if prev > 0 {
		q.Change = roundTo(last-prev, 2)
		q.ChangePercent = roundTo((last/prev-1)*100, 2)
	}
	return q, nil
}

// History proxies per-symbol daily closes from the upstream feed.
func (s *Service) History(symbol, period string) ([]HistoryPoint, error) {
	if period == "" {
		period = "7d"
	}
	return s.client.History(symbol, period)
}

// StartRefresh begins background refreshing on the given cron spec
// (with-seconds format) and performs one immediate refresh.
func (s *Service) StartRefresh(spec string) error {
	s.Refresh()

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, func() { s.Refresh() }); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.log.Info().Str("cron", spec).Msg("market refresh scheduled")
	return nil
}

// Stop stops the background refresh.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// fallbackPulse is the static snapshot served when the upstream feed is
// unavailable.
func fallbackPulse() Pulse {
	return Pulse{
		Nifty50:   IndexQuote{Value: 22450.5, Change: 123.4, ChangePercent: 0.55},
		Sensex:    IndexQuote{Value: 73891.2, Change: 412.1, ChangePercent: 0.56},
		Gold:      IndexQuote{Value: 73200, Change: -150, ChangePercent: -0.20},
		Bond10Y:   IndexQuote{Value: 7.05},
		Source:    "Mock (fallback)",
		Timestamp: time.Now().UTC(),
	}
}
