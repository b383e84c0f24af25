//go:build darwin

package nativeloop

import (
	"time"

	"golang.org/x/sys/unix"
)

// probeKernel verifies kqueue is usable by creating and closing an instance.
func probeKernel() error {
	kq, err := unix.Kqueue()
	if err != nil {
		return err
	}
	return unix.Close(kq)
}

// poller wraps a kqueue instance.
type poller struct {
	events [128]unix.Kevent_t
	kq     int
}

func (p *poller) init() error {
	kq, err := unix.Kqueue()
	if err != nil {
		return err
	}
	p.kq = kq
	return nil
}

func (p *poller) close() error {
	return unix.Close(p.kq)
}

func (p *poller) registerRead(fd int) error {
	var ev unix.Kevent_t
	unix.SetKevent(&ev, fd, unix.EVFILT_READ, unix.EV_ADD|unix.EV_ENABLE)
	_, err := unix.Kevent(p.kq, []unix.Kevent_t{ev}, nil, nil)
	return err
}

func (p *poller) unregister(fd int) error {
	var ev unix.Kevent_t
	unix.SetKevent(&ev, fd, unix.EVFILT_READ, unix.EV_DELETE)
	_, err := unix.Kevent(p.kq, []unix.Kevent_t{ev}, nil, nil)
	return err
}

// wait blocks for up to timeoutMs (-1 blocks indefinitely), appending the
// read-ready file descriptors to ready.
func (p *poller) wait(timeoutMs int, ready []int) ([]int, error) {
	var ts *unix.Timespec
	if timeoutMs >= 0 {
		t := unix.NsecToTimespec(int64(timeoutMs) * int64(time.Millisecond))
		ts = &t
	}
	n, err := unix.Kevent(p.kq, nil, p.events[:], ts)
	if err != nil {
		return ready, err
	}
	for i := 0; i < n; i++ {
		ready = append(ready, int(p.events[i].Ident))
	}
	return ready, nil
}

// newWakeFD creates a self-pipe for wake-up notifications. Returns the read
// end and the write end.
func newWakeFD() (int, int, error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return 0, 0, err
	}
	for _, fd := range fds {
		unix.CloseOnExec(fd)
		if err := unix.SetNonblock(fd, true); err != nil {
			_ = unix.Close(fds[0])
			_ = unix.Close(fds[1])
			return 0, 0, err
		}
	}
	return fds[0], fds[1], nil
}

func notifyWakeFD(fd int) error {
	if _, err := unix.Write(fd, []byte{1}); err != nil {
		if err == unix.EAGAIN {
			// Pipe full; a wake-up is already pending.
			return nil
		}
		return err
	}
	return nil
}

func drainWakeFD(fd int) {
	var buf [64]byte
	for {
		if _, err := unix.Read(fd, buf[:]); err != nil {
			return
		}
	}
}
