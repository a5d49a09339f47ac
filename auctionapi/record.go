package auctionapi

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// ResolutionRecord is a sealed resolution result in compact binary (CBOR)
// form, suitable for archiving or handing to another system alongside the
// human-readable JSON.
type ResolutionRecord []byte

// ResolutionRecordBase64 is a base64-encoded record (standard encoding).
type ResolutionRecordBase64 string

// ResolutionRecordGzip is a gzipped record encoded with URL-safe base64 and
// no padding, safe to embed in URLs and query parameters.
type ResolutionRecordGzip string

func (r ResolutionRecordBase64) String() string { return string(r) }

func (r ResolutionRecordGzip) String() string { return string(r) }

// MarshalRecord seals a result into a binary record.
func MarshalRecord(result *ResolutionResult) (ResolutionRecord, error) {
	data, err := cbor.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal resolution record: %w", err)
	}
	return ResolutionRecord(data), nil
}

// UnmarshalRecord decodes a binary record back into a result.
func UnmarshalRecord(record ResolutionRecord) (*ResolutionResult, error) {
	var result ResolutionResult
	if err := cbor.Unmarshal(record, &result); err != nil {
		return nil, fmt.Errorf("unmarshal resolution record: %w", err)
	}
	return &result, nil
}

// EncodeBase64 encodes the record with standard base64.
func (r ResolutionRecord) EncodeBase64() ResolutionRecordBase64 {
	return ResolutionRecordBase64(base64.StdEncoding.EncodeToString(r))
}

// Decode decodes a base64 record back to raw bytes.
func (r ResolutionRecordBase64) Decode() (ResolutionRecord, error) {
	data, err := base64.StdEncoding.DecodeString(string(r))
	if err != nil {
		return nil, fmt.Errorf("decode resolution record: %w", err)
	}
	return ResolutionRecord(data), nil
}

// CompressGzip gzips the record and encodes it with URL-safe base64 without
// padding. Compression uses gzip.BestCompression with no header metadata, so
// the output is deterministic for a given record.
func (r ResolutionRecord) CompressGzip() (ResolutionRecordGzip, error) {
	var buf bytes.Buffer
	writer, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return "", fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err := writer.Write(r); err != nil {
		return "", fmt.Errorf("compress resolution record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close gzip writer: %w", err)
	}
	return ResolutionRecordGzip(base64.RawURLEncoding.EncodeToString(buf.Bytes())), nil
}

// Decompress decodes and un-gzips a compressed record.
func (r ResolutionRecordGzip) Decompress() (ResolutionRecord, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(string(r))
	if err != nil {
		return nil, fmt.Errorf("decode compressed resolution record: %w", err)
	}
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("open gzip reader: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompress resolution record: %w", err)
	}
	return ResolutionRecord(data), nil
}
