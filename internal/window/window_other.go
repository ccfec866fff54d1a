//go:build !linux && !freebsd && !windows && !darwin

package window

func Open() (Backend, error) {
	return nil, ErrUnsupported
}
