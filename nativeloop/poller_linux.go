//go:build linux

package nativeloop

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// probeKernel verifies epoll is usable by creating and closing an instance.
func probeKernel() error {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return err
	}
	return unix.Close(fd)
}

// poller wraps an epoll instance.
type poller struct {
	events [128]unix.EpollEvent
	epfd   int
}

func (p *poller) init() error {
	fd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return err
	}
	p.epfd = fd
	return nil
}

func (p *poller) close() error {
	return unix.Close(p.epfd)
}

func (p *poller) registerRead(fd int) error {
	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev)
}

func (p *poller) unregister(fd int) error {
	return unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, fd, nil)
}

// wait blocks for up to timeoutMs (-1 blocks indefinitely), appending the
// read-ready file descriptors to ready.
func (p *poller) wait(timeoutMs int, ready []int) ([]int, error) {
	n, err := unix.EpollWait(p.epfd, p.events[:], timeoutMs)
	if err != nil {
		return ready, err
	}
	for i := 0; i < n; i++ {
		ready = append(ready, int(p.events[i].Fd))
	}
	return ready, nil
}

// newWakeFD creates an eventfd for wake-up notifications. The single fd
// serves as both read and write ends.
func newWakeFD() (int, int, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return 0, 0, err
	}
	return fd, fd, nil
}

func notifyWakeFD(fd int) error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	if _, err := unix.Write(fd, buf[:]); err != nil {
		if err == unix.EAGAIN {
			// Counter saturated; a wake-up is already pending.
			return nil
		}
		return err
	}
	return nil
}

func drainWakeFD(fd int) {
	var buf [8]byte
	for {
		if _, err := unix.Read(fd, buf[:]); err != nil {
			return
		}
	}
}
