package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// decodeContent wraps the response body in a decompressor matching its
// Content-Encoding. Setting Accept-Encoding by hand disables the transparent
// gzip handling of net/http, so all three advertised encodings land here.
func decodeContent(resp *http.Response) (io.ReadCloser, error) {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))

	switch encoding {
	case "", "identity":
		return io.NopCloser(resp.Body), nil

	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(resp.Body)
		if errors.Is(err, io.EOF) {
			return io.NopCloser(strings.NewReader("")), nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading gzip response: %w", err)
		}
		return zr, nil

	case "deflate":
		br := bufio.NewReader(resp.Body)
		hdr, err := br.Peek(2)
		if len(hdr) == 0 && errors.Is(err, io.EOF) {
			return io.NopCloser(strings.NewReader("")), nil
		}
		// Servers disagree on whether "deflate" means zlib-wrapped or raw.
		if isZlibHeader(hdr) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("reading deflate response: %w", err)
			}
			return zr, nil
		}
		return flate.NewReader(br), nil

	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil

	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

func isZlibHeader(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	return b[0]&0x0f == 8 && (uint16(b[0])<<8|uint16(b[1]))%31 == 0
}
