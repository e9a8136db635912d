// Package syncclient follows one event from a viewer's seat: it waits for the
// event to unlock, loads the program and keeps it current from the step
// deltas pushed over the websocket.
package syncclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/internal/realtime"
	apperrors "go-gin-event-program/pkg/app_errors"
	"go-gin-event-program/pkg/logger"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultHTTPTimeout  = 10 * time.Second
)

type Config struct {
	// BaseURL is the API root, e.g. http://localhost:5000/api.
	BaseURL string
	// WSURL defaults to ws(s)://<BaseURL host>/ws.
	WSURL  string
	Origin string
	Slug   string
	// PollInterval caps the wait between public view polls while locked.
	PollInterval time.Duration
	HTTPClient   *http.Client
	// Now is the local clock; tests inject a fake one.
	Now func() time.Time
	// NewBackOff builds the reconnect policy.
	NewBackOff func() backoff.BackOff
}

// Snapshot is the state handed to OnChange listeners.
type Snapshot struct {
	Slug      string
	Locked    bool
	Connected bool
	Program   []model.ProgramStep
	Progress  model.Progress
}

type Controller struct {
	cfg Config
	log *zap.Logger

	mu        sync.RWMutex
	locked    bool
	connected bool
	program   []model.ProgramStep
	listeners []func(Snapshot)
}

func New(cfg Config) (*Controller, error) {
	if cfg.Slug == "" {
		return nil, errors.New("slug is required")
	}
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", cfg.BaseURL)
	}
	cfg.BaseURL = base.String()

	if cfg.WSURL == "" {
		ws := url.URL{Scheme: "ws", Host: base.Host, Path: "/ws"}
		if base.Scheme == "https" {
			ws.Scheme = "wss"
		}
		cfg.WSURL = ws.String()
	}
	if cfg.Origin == "" {
		cfg.Origin = base.Scheme + "://" + base.Host
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewBackOff == nil {
		cfg.NewBackOff = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}

	return &Controller{
		cfg:    cfg,
		log:    logger.WithComponent("syncclient").With(zap.String("slug", cfg.Slug)),
		locked: true,
	}, nil
}

// OnChange registers fn to be called after every state change. Listeners
// run on the controller goroutine and must not block.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Controller) Locked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locked
}

// Program returns a copy of the local program.
func (c *Controller) Program() []model.ProgramStep {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.program)
}

func (c *Controller) Progress() model.Progress {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.ProgressOf(c.program)
}

// Run blocks until ctx is cancelled. It returns early only when the event
// does not exist.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.waitUnlocked(ctx); err != nil {
		return err
	}

	b := c.cfg.NewBackOff()
	for {
		err := c.session(ctx, b)
		c.update(func() { c.connected = false })
		if ctx.Err() != nil {
			return nil
		}

		// unpublished or moved back before startAt while we were following it
		if errors.Is(err, apperrors.ErrEventLocked) || errors.Is(err, apperrors.ErrEventNotFound) {
			c.log.Info("Event no longer available, waiting", zap.Error(err))
			if err := c.waitUnlocked(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		wait := b.NextBackOff()
		c.log.Warn("Channel disconnected, reconnecting", zap.Error(err), zap.Duration("backoff", wait))
		if err := sleep(ctx, wait); err != nil {
			return nil
		}
	}
}

// waitUnlocked polls the public view until the event unlocks. The wait
// between polls follows the skew-corrected countdown, capped by PollInterval.
func (c *Controller) waitUnlocked(ctx context.Context) error {
	for {
		var public model.PublicEvent
		err := c.getJSON(ctx, "/events/"+url.PathEscape(c.cfg.Slug)+"/public", &public)
		if errors.Is(err, apperrors.ErrEventNotFound) {
			return err
		}

		wait := c.cfg.PollInterval
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Warn("Public view fetch failed", zap.Error(err))
		} else {
			c.update(func() { c.locked = public.Locked })
			if !public.Locked {
				return nil
			}
			if public.IsPublished {
				if serverNow, perr := time.Parse(time.RFC3339Nano, public.Now); perr == nil {
					clientNow := c.cfg.Now()
					remaining := Remaining(public.StartAt, clientNow, Skew(serverNow, clientNow))
					wait = min(max(remaining, 100*time.Millisecond), wait)
				}
			}
			c.log.Debug("Event locked", zap.Duration("wait", wait))
		}

		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (c *Controller) refresh(ctx context.Context) error {
	var detail model.EventDetail
	err := c.getJSON(ctx, "/events/"+url.PathEscape(c.cfg.Slug)+"/full", &detail)
	if err != nil {
		if errors.Is(err, apperrors.ErrEventLocked) {
			c.update(func() { c.locked = true })
		}
		return err
	}
	c.update(func() {
		c.locked = false
		c.program = detail.Program
	})
	return nil
}

// session dials the channel, joins the event group and applies deltas until
// the connection drops. The full program is fetched only once the server has
// acknowledged the join: every toggle committed before that fetch is in the
// response and every later one arrives as a delta.
func (c *Controller) session(ctx context.Context, b backoff.BackOff) error {
	wsConfig, err := websocket.NewConfig(c.cfg.WSURL, c.cfg.Origin)
	if err != nil {
		return err
	}
	conn, err := wsConfig.DialContext(ctx)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	join, err := realtime.NewFrame(realtime.FrameJoinEvent, "", realtime.JoinPayload{Slug: c.cfg.Slug})
	if err != nil {
		return err
	}
	if err := websocket.JSON.Send(conn, join); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	for {
		var frame realtime.Frame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			return fmt.Errorf("receive: %w", err)
		}

		switch frame.Type {
		case realtime.FrameJoined:
			// deltas received while the fetch is in flight queue on the
			// socket and are replayed over the fetched state in order
			if err := c.refresh(ctx); err != nil {
				return fmt.Errorf("resync: %w", err)
			}
			b.Reset()
			c.update(func() { c.connected = true })
			c.log.Info("Joined event group")
		case realtime.FrameStepUpdated:
			var delta model.StepDelta
			if err := json.Unmarshal(frame.Payload, &delta); err != nil {
				c.log.Warn("Malformed step update", zap.Error(err))
				continue
			}
			c.update(func() { c.program = Merge(c.program, delta) })
		case realtime.FrameError:
			var payload realtime.ErrorPayload
			_ = json.Unmarshal(frame.Payload, &payload)
			c.log.Warn("Channel error", zap.String("code", payload.Code), zap.String("message", payload.Message))
		}
	}
}

// update mutates state under the lock and notifies listeners outside it.
func (c *Controller) update(mutate func()) {
	c.mu.Lock()
	mutate()
	snap := Snapshot{
		Slug:      c.cfg.Slug,
		Locked:    c.locked,
		Connected: c.connected,
		Program:   slices.Clone(c.program),
		Progress:  model.ProgressOf(c.program),
	}
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Controller) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		return nil
	case http.StatusNotFound:
		return apperrors.ErrEventNotFound
	case http.StatusForbidden:
		return apperrors.ErrEventLocked
	default:
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return fmt.Errorf("GET %s: %s %s", path, resp.Status, envelope.Error.Message)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
