package state

import "log"

// Verbose turns on per-op logging for every canvas.
var Verbose bool

type subscriber struct {
	id uint64
	fn func(Op)
}

// Subscribe registers fn to be called after every mutation. The returned
// func removes the subscription.
func (c *Canvas) Subscribe(fn func(Op)) (cancel func()) {
	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Canvas) emit(op Op) {
	c.seq++
	op.Seq = c.seq
	op.Session = c.session
	if Verbose {
		log.Printf("[CANVAS] %s #%d (history=%d, current=%d)", op.Type, op.Seq, len(c.history), len(c.current.Points))
	}
	for _, s := range c.subs {
		s.fn(op)
	}
}
