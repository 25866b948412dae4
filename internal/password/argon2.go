// Package password implements argon2id password hashing with
// PHC-encoded output.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Params defines argon2id cost parameters.
type Params struct {
	Time          uint32
	MemKiB        uint32
	Par           uint8
	SaltLen       uint32
	KeyLen        uint32
	MaxConcurrent int
}

// DefaultParams returns OWASP-recommended argon2id parameters.
func DefaultParams() Params {
	return Params{
		Time:          1,
		MemKiB:        64 * 1024,
		Par:           4,
		SaltLen:       16,
		KeyLen:        32,
		MaxConcurrent: 4,
	}
}

// Dummy is a fixed argon2id hash with no matching account. The login
// path verifies against it when the email lookup misses, so both
// failure paths perform one hash computation and stay
// indistinguishable by timing. It can never match a real password.
const Dummy = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// Hard ceilings for parameters embedded in stored hashes. Verification
// refuses anything above these so an attacker-controlled hash string
// cannot cause pathological resource usage.
const (
	maxVerifyMemKiB = 1 << 20 // 1 GiB
	maxVerifyTime   = 16
	maxVerifyPar    = 64
)

// Hasher hashes and verifies passwords using argon2id. A semaphore
// bounds concurrent hash computations independently of request
// concurrency, so a burst of logins cannot monopolize CPU and memory.
type Hasher struct {
	params Params
	sem    chan struct{}
}

// NewHasher creates a Hasher, clamping unset or unsafe parameters to
// sane minimums.
func NewHasher(params Params) *Hasher {
	if params.Time == 0 {
		params.Time = 1
	}
	if params.MemKiB < 8*1024 {
		params.MemKiB = 8 * 1024
	}
	if params.Par == 0 {
		params.Par = 1
	}
	if params.SaltLen < 8 {
		params.SaltLen = 16
	}
	if params.KeyLen < 16 {
		params.KeyLen = 32
	}
	if params.MaxConcurrent <= 0 {
		params.MaxConcurrent = 4
	}

	return &Hasher{
		params: params,
		sem:    make(chan struct{}, params.MaxConcurrent),
	}
}

// Hash returns a PHC-encoded argon2id hash of password computed with a
// fresh random salt. Two calls on the same password yield different
// encodings. The only failure mode is entropy-source exhaustion.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := h.compute([]byte(password), salt, h.params.Time, h.params.MemKiB, h.params.Par, h.params.KeyLen)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemKiB,
		h.params.Time,
		h.params.Par,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	)

	return encoded, nil
}

// Verify reports whether password matches encodedHash. The hash is
// recomputed with the salt and parameters embedded in the encoding and
// compared in constant time. A malformed or out-of-bounds stored hash
// fails verification; it never crashes the caller.
func (h *Hasher) Verify(password, encodedHash string) bool {
	params, salt, expected, err := decode(encodedHash)
	if err != nil {
		return false
	}

	key := h.compute([]byte(password), salt, params.Time, params.MemKiB, params.Par, uint32(len(expected)))

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func (h *Hasher) compute(password, salt []byte, time, memKiB uint32, par uint8, keyLen uint32) []byte {
	h.sem <- struct{}{}
	defer func() { <-h.sem }()

	return argon2.IDKey(password, salt, time, memKiB, par, keyLen)
}

// decode parses a PHC-encoded argon2id hash into params, salt and digest.
func decode(encoded string) (Params, []byte, []byte, error) {
	// $argon2id$v=19$m=65536,t=1,p=4$<salt_b64>$<digest_b64>
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Params{}, nil, nil, fmt.Errorf("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Params{}, nil, nil, fmt.Errorf("unsupported argon2 version")
	}

	var mem, time, par uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &time, &par); err != nil {
		return Params{}, nil, nil, fmt.Errorf("malformed argon2id params")
	}
	if mem == 0 || mem > maxVerifyMemKiB || time == 0 || time > maxVerifyTime || par == 0 || par > maxVerifyPar {
		return Params{}, nil, nil, fmt.Errorf("argon2id params out of bounds")
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil || len(salt) < 8 || len(salt) > 64 {
		return Params{}, nil, nil, fmt.Errorf("malformed argon2id salt")
	}
	digest, err := b64.DecodeString(parts[5])
	if err != nil || len(digest) < 16 || len(digest) > 128 {
		return Params{}, nil, nil, fmt.Errorf("malformed argon2id digest")
	}

	params := Params{
		Time:    time,
		MemKiB:  mem,
		Par:     uint8(par),
		SaltLen: uint32(len(salt)),
		KeyLen:  uint32(len(digest)),
	}

	return params, salt, digest, nil
}
