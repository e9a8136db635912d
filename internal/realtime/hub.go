// Package realtime pushes step-completion deltas to websocket viewers grouped
// by event slug.
package realtime

import (
	"sync"

	"go-gin-event-program/internal/model"
	"go-gin-event-program/pkg/logger"

	"go.uber.org/zap"
)

const defaultOutboxSize = 32

// Hub owns the slug groups. Only join and leave mutate the membership maps;
// Publish works on a snapshot and never blocks on a slow peer.
type Hub struct {
	mu         sync.RWMutex
	groups     map[string]map[*peer]struct{}
	memberOf   map[*peer]string
	outboxSize int
	log        *zap.Logger
}

func NewHub(outboxSize int) *Hub {
	if outboxSize <= 0 {
		outboxSize = defaultOutboxSize
	}
	return &Hub{
		groups:     make(map[string]map[*peer]struct{}),
		memberOf:   make(map[*peer]string),
		outboxSize: outboxSize,
		log:        logger.WithComponent("realtime"),
	}
}

// join moves p into the group of slug, leaving its previous group if any.
func (h *Hub) join(p *peer, slug string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if previous, ok := h.memberOf[p]; ok {
		if previous == slug {
			return
		}
		h.removeLocked(p, previous)
	}

	group, ok := h.groups[slug]
	if !ok {
		group = make(map[*peer]struct{})
		h.groups[slug] = group
	}
	group[p] = struct{}{}
	h.memberOf[p] = slug
}

func (h *Hub) leave(p *peer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if slug, ok := h.memberOf[p]; ok {
		h.removeLocked(p, slug)
	}
}

func (h *Hub) removeLocked(p *peer, slug string) {
	delete(h.memberOf, p)
	group := h.groups[slug]
	delete(group, p)
	if len(group) == 0 {
		delete(h.groups, slug)
	}
}

// Publish queues frame on every peer joined to slug and returns how many
// peers accepted it. A peer with a full outbox misses the frame.
func (h *Hub) Publish(slug string, frame Frame) int {
	h.mu.RLock()
	members := make([]*peer, 0, len(h.groups[slug]))
	for p := range h.groups[slug] {
		members = append(members, p)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, p := range members {
		if p.send(frame) {
			delivered++
			continue
		}
		h.log.Warn("dropped frame for slow peer", zap.String("slug", slug), zap.String("type", frame.Type))
	}
	return delivered
}

// BroadcastStepUpdate sends the delta of update to the viewers of its event.
// The routing slug is not part of the payload.
func (h *Hub) BroadcastStepUpdate(update *model.StepUpdate) int {
	frame, err := NewFrame(FrameStepUpdated, "", update.Delta)
	if err != nil {
		h.log.Error("marshal step update failed", zap.String("slug", update.EventSlug), zap.Error(err))
		return 0
	}
	return h.Publish(update.EventSlug, frame)
}

// GroupSize reports how many peers are joined to slug.
func (h *Hub) GroupSize(slug string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[slug])
}

func (h *Hub) GroupCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups)
}
