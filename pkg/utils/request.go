package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies. Transcripts come from files of up to 10 MiB.
const MaxBodyBytes = 10 << 20

// ErrBodyTooLarge is returned when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// DecodeJSON 解析请求体中的单个 JSON 对象，超出 limit 字节时返回 ErrBodyTooLarge。
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any, limit int64) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	decoder := json.NewDecoder(body)

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}

	if decoder.More() {
		return errors.New("invalid request body: trailing data")
	}
	return nil
}
