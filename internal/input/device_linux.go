//go:build linux

package input

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"unsafe"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
)

// ioctl request encoding from asm-generic/ioctl.h
const iocRead = 2

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<30 | size<<16 | typ<<8 | nr
}

func evioc(nr, size uintptr) uintptr { return ioc(iocRead, 'E', nr, size) }

func ioctl(fd int, req uintptr, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

// queryCaps reads the device name, whether it has gamepad buttons and the range
// of its absolute axes. Failures leave the defaults in place.
func queryCaps(fd int) Caps {
	caps := Caps{Abs: map[uint16]AbsInfo{}}

	name := make([]byte, 256)
	if ioctl(fd, evioc(0x06, uintptr(len(name))), name) == nil {
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		caps.Name = string(name)
	}

	keyBits := make([]byte, keyMax/8+1)
	if ioctl(fd, evioc(0x20+evKey, uintptr(len(keyBits))), keyBits) == nil {
		caps.Gamepad = keyBits[btnSouth/8]&(1<<(btnSouth%8)) != 0
	}

	// struct input_absinfo: value, minimum, maximum, fuzz, flat, resolution.
	info := make([]byte, 24)
	for _, code := range []uint16{absX, absY, absZ, absRX, absRY, absRZ} {
		if ioctl(fd, evioc(0x40+uintptr(code), uintptr(len(info))), info) != nil {
			continue
		}
		caps.Abs[code] = AbsInfo{
			Min: int32(binary.LittleEndian.Uint32(info[4:8])),
			Max: int32(binary.LittleEndian.Uint32(info[8:12])),
		}
	}
	return caps
}

// Start opens every device matching Glob and starts one reader per device.
// It returns ErrNoDevice when nothing could be opened.
func (d *Device) Start(ctx context.Context) error {
	paths, err := filepath.Glob(d.Glob)
	if err != nil {
		return fmt.Errorf("input: glob %q: %w", d.Glob, err)
	}

	ctx, d.cancel = context.WithCancel(ctx)
	d.group, ctx = errgroup.WithContext(ctx)

	opened := 0
	for i, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			d.errorf("open %s: %v", path, err)
			continue
		}
		caps := queryCaps(fd)
		d.AddDevice(i, caps)
		opened++
		d.infof("opened %s %q gamepad=%v", path, caps.Name, caps.Gamepad)

		id, p := i, path
		d.group.Go(func() error {
			defer unix.Close(fd)
			d.read(ctx, fd, id, p)
			return nil
		})
	}
	if opened == 0 {
		d.cancel()
		return fmt.Errorf("%w: nothing readable at %s", ErrNoDevice, d.Glob)
	}
	return nil
}

// read decodes input_event records until ctx is done or the device fails.
func (d *Device) read(ctx context.Context, fd, id int, path string) {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := binary.Size(unix.Timeval{})
	eventSize := tvSize + 2 + 2 + 4
	buf := make([]byte, eventSize*64)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 100); err != nil {
			if err == unix.EINTR {
				continue
			}
			d.lost(id, path, err)
			return
		}
		if pollFds[0].Revents&(unix.POLLERR|unix.POLLHUP) != 0 {
			d.lost(id, path, fmt.Errorf("revents %#x", pollFds[0].Revents))
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			d.lost(id, path, err)
			return
		}

		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			ev := Event{
				Device: id,
				Type:   binary.LittleEndian.Uint16(rec[tvSize : tvSize+2]),
				Code:   binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4]),
				Value:  int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8])),
			}
			if ev.Type == evSyn {
				continue
			}
			select {
			case d.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (d *Device) lost(id int, path string, err error) {
	d.errorf("device %s lost: %v", path, err)
	select {
	case d.removed <- id:
	default:
	}
}
