// Package events is a small typed event dispatcher.
//
// Listeners registered with Listen run inline during Dispatch; listeners
// registered with ListenQueued run on an ants worker pool and never delay the
// caller. Dispatch itself cannot fail: errors and panics from listeners are
// logged.
//
//	d, err := events.NewDispatcher[UserCreated]("user.created", events.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer d.Close()
//
//	_ = d.ListenQueued(sendWelcomeEmail)
//	d.Dispatch(ctx, UserCreated{ID: id})
package events
