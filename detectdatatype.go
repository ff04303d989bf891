package toolkit

import (
	"bufio"
	"compress/bzip2"
	"compress/zlib"
	"errors"
	"io"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// longest signature above
const sniffLen = 6

func (d DataType) String() string {
	switch d {
	case DataTypeNoCompression:
		return "uncompressed"
	case DataTypeGzip:
		return "gzip"
	case DataTypeZip:
		return "zip"
	case DataTypeXZ:
		return "xz"
	case DataTypeZ:
		return "zlib"
	case DataTypeBZip2:
		return "bzip2"
	}
	return "invalid"
}

// MatchDataType compares the leading bytes of a stream against the known
// signatures. Headers shorter than a signature never match it.
func MatchDataType(header []byte) DataType {
	if len(header) == 0 {
		return DataTypeInvalid
	}

Outer:
	for dt, sig := range byteCodeSigs {
		if len(header) < len(sig) {
			continue
		}
		for position := range sig {
			if header[position] != sig[position] {
				continue Outer
			}
		}
		return dt
	}

	return DataTypeNoCompression
}

// MaybeDecompress peeks at the head of rc and, if it looks compressed, wraps
// it in the matching decompressor. Closing the result closes rc.
func MaybeDecompress(rc io.ReadCloser) (io.ReadCloser, DataType, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, DataTypeInvalid, pfx.Err(err)
	}

	dt := MatchDataType(head)

	var r io.Reader
	switch dt {
	case DataTypeGzip:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		r = gz
	case DataTypeZip:
		zr := zipstream.NewReader(br)
		// Only the first member of an archive is read.
		if _, err := zr.Next(); err != nil {
			return nil, dt, pfx.Err(err)
		}
		r = zr
	case DataTypeBZip2:
		r = bzip2.NewReader(br)
	case DataTypeXZ:
		xr, err := xz.NewReader(br, 0)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		r = xr
	case DataTypeZ:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, dt, pfx.Err(err)
		}
		r = zr
	default:
		// Empty or uncompressed
		r = br
	}

	return &stackedReadCloser{Reader: r, closer: rc}, dt, nil
}

// stackedReadCloser reads from a decoder but closes the underlying source
type stackedReadCloser struct {
	io.Reader
	closer io.Closer
}

func (s *stackedReadCloser) Close() error {
	if c, ok := s.Reader.(io.Closer); ok {
		c.Close()
	}
	return s.closer.Close()
}
