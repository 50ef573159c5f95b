// Package socket provides an in-memory pub/sub hub for real-time
// notification delivery to connected clients.
//
// Subscriptions are keyed, typically by recipient ID, so an emit only
// reaches the clients of one recipient. Delivery is best-effort: events to
// slow consumers are dropped rather than blocking the emitter, and emitting
// with nobody listening returns ErrNoSubscribers. The durable copy of every
// notification lives in the notification record, not here.
//
//	hub := socket.NewHub[socket.Event](16)
//	defer hub.Close()
//
//	sub := hub.Subscribe(ctx, "user-1")
//	go func() {
//		for ev := range sub.Receive(ctx) {
//			render(ev)
//		}
//	}()
//
//	err := hub.Emit(ctx, "user-1", socket.Event{...})
package socket
