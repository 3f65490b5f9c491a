package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefix for export digests. The version suffix leaves room for
// future algorithm migration without ambiguity.
const DomainExport = "latchc/export/v1"

// hashWithDomain computes SHA-256 over domain + 0x00 + data. The null
// separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ExportDigest computes a content digest over a generated artifact set.
// Two exports of the same IR yield the same digest, which is how callers
// observe that regeneration was a no-op.
func ExportDigest(files map[string]string) (string, error) {
	obj := make(Object, len(files))
	for name, content := range files {
		obj[name] = String(content)
	}
	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("ExportDigest: marshal artifact set: %w", err)
	}
	return hashWithDomain(DomainExport, canonical), nil
}
