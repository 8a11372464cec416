package console

import (
	"catadmin/internal/catalog"
	"sync"
)

// Frame is one Render call.
type Frame struct {
	Rows []catalog.Product
	Info catalog.PageInfo
}

// Recorder is a Renderer and Notifier that keeps everything it is given.
// The interactive mode uses it to pick up what the console produced.
type Recorder struct {
	mu      sync.Mutex
	frames  []Frame
	details []Detail
	notices []Notice
}

func (r *Recorder) Render(rows []catalog.Product, info catalog.PageInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, Frame{Rows: rows, Info: info})
}

func (r *Recorder) RenderDetail(d Detail) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details = append(r.details, d)
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

func (r *Recorder) Details() []Detail {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Detail(nil), r.details...)
}

func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// LastFrame returns the most recent frame, if any.
func (r *Recorder) LastFrame() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// TakeNotices returns and clears the pending notices.
func (r *Recorder) TakeNotices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.notices
	r.notices = nil
	return n
}
