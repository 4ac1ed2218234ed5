package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

// Summer accumulates a digest of everything written to it
type Summer interface {
	io.Writer
	Algorithm() string
	Hex() string
}

type summer struct {
	hash.Hash
	algorithm string
}

func (s *summer) Algorithm() string {
	return s.algorithm
}

func (s *summer) Hex() string {
	return fmt.Sprintf("%x", s.Sum(nil))
}

func newHash(algorithm string) (hash.Hash, string, error) {
	alg := strings.ToLower(algorithm)
	switch alg {
	case "sha1":
		return sha1.New(), alg, nil
	case "sha256":
		return sha256.New(), alg, nil
	case "sha512":
		return sha512.New(), alg, nil
	case "md5":
		return md5.New(), alg, nil
	default:
		return nil, "", fmt.Errorf("unsupported checksum algorithm '%s': must be one of: sha1, sha256, sha512, md5", algorithm)
	}
}

// New creates a Summer for the specified algorithm
func New(algorithm string) (Summer, error) {
	h, alg, err := newHash(algorithm)
	if err != nil {
		return nil, err
	}
	return &summer{Hash: h, algorithm: alg}, nil
}

// Line renders a digest in the BSD tag style used by md5(1) and shasum --tag,
// e.g. "SHA256 (notes.txt) = 9f86...".
func Line(s Summer, name string) string {
	return fmt.Sprintf("%s (%s) = %s", strings.ToUpper(s.Algorithm()), name, s.Hex())
}

// ComputeChecksum computes the checksum of a file using the specified algorithm
func ComputeChecksum(filePath string, algorithm string) (string, error) {
	s, err := New(algorithm)
	if err != nil {
		return "", err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(s, file); err != nil {
		return "", err
	}
	return s.Hex(), nil
}
