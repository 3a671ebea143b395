package datasource

import "context"

// Broadcaster receives mode-change events; the websocket hub satisfies it.
type Broadcaster interface {
	Broadcast(ev Event)
}

// RelayModeChanges forwards settings changes to the broadcaster until ctx is
// cancelled, so mode switches made outside a request handler still reach
// every open admin tab.
func RelayModeChanges(ctx context.Context, settings *Settings, b Broadcaster) {
	ch, cancel := settings.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case mode, ok := <-ch:
			if !ok {
				return
			}
			b.Broadcast(Event{Type: EventModeChanged, Mode: mode})
		}
	}
}
