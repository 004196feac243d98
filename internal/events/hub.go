package events

import (
	"sync"

	"go.uber.org/zap"
)

const subscriberBuffer = 16

// Hub fans events out to lot and user subscribers. Sends never block: a
// subscriber that falls behind loses events rather than stalling the bid or
// settlement path.
type Hub struct {
	mu       sync.RWMutex
	lotSubs  map[int]map[chan Event]struct{}
	userSubs map[int]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		lotSubs:  make(map[int]map[chan Event]struct{}),
		userSubs: make(map[int]map[chan Event]struct{}),
	}
}

// SubscribeLot returns a channel of the lot's events and a cancel function.
func (h *Hub) SubscribeLot(lotID int) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	if h.lotSubs[lotID] == nil {
		h.lotSubs[lotID] = make(map[chan Event]struct{})
	}
	h.lotSubs[lotID][ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		if subs, ok := h.lotSubs[lotID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.lotSubs, lotID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}
}

// SubscribeUser returns a channel of the user's private events (wallet
// updates) and a cancel function.
func (h *Hub) SubscribeUser(userID int) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	if h.userSubs[userID] == nil {
		h.userSubs[userID] = make(map[chan Event]struct{})
	}
	h.userSubs[userID][ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		if subs, ok := h.userSubs[userID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.userSubs, userID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}
}

func (h *Hub) PublishLot(lotID int, event Event) {
	event.LotID = lotID
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.lotSubs[lotID] {
		select {
		case ch <- event:
		default:
			zap.L().Warn("dropping event for slow subscriber",
				zap.Int("lotID", lotID), zap.String("type", string(event.Type)))
		}
	}
}

func (h *Hub) PublishUser(userID int, event Event) {
	event.UserID = userID
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.userSubs[userID] {
		select {
		case ch <- event:
		default:
			zap.L().Warn("dropping event for slow subscriber",
				zap.Int("userID", userID), zap.String("type", string(event.Type)))
		}
	}
}
