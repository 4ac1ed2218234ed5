//go:build !unix

package copier

func OpenRaw(path string) (int, error) {
	return -1, ErrRawUnsupported
}

func CloseRaw(fd int) error {
	return ErrRawUnsupported
}

func Raw(in, out int) (int64, error) {
	return 0, ErrRawUnsupported
}
