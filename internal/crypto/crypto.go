// Package crypto provides the cryptographic operations for the diary:
// PBKDF2 key stretching, AES-256-GCM authenticated encryption of record
// content, and the SHA-256 digest used for account passwords.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the size of AES-256 keys in bytes.
	KeySize = 32

	// NonceSize is the size of GCM nonces in bytes.
	NonceSize = 12

	// TagSize is the size of GCM authentication tags in bytes.
	TagSize = 16

	// KDFIterations is the PBKDF2 iteration count for key stretching.
	KDFIterations = 100000
)

// kdfSalt is the application-wide key derivation salt. The same password
// always stretches to the same key, so previously encrypted content stays
// readable across sessions.
var kdfSalt = []byte("offline-diary-salt")

var (
	// ErrDecryptionFailed is returned when authenticated decryption rejects
	// the ciphertext: wrong password, tampered data, or a malformed envelope.
	ErrDecryptionFailed = errors.New("decryption failed: authentication error")

	// ErrInvalidEnvelope is returned when an envelope cannot be decoded.
	ErrInvalidEnvelope = errors.New("invalid envelope encoding")
)

// Envelope is the self-describing unit produced by Encrypt: the nonce and
// the ciphertext+tag, both base64 so the envelope can be stored alongside
// plain string fields.
type Envelope struct {
	IV   string `json:"iv"`
	Data string `json:"data"`
}

// Encode serializes the envelope to a JSON string for storage in a record's
// content field.
func (e *Envelope) Encode() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}

// ParseEnvelope decodes a JSON envelope previously produced by Encode.
func ParseEnvelope(s string) (*Envelope, error) {
	var e Envelope
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return nil, ErrInvalidEnvelope
	}
	if e.IV == "" || e.Data == "" {
		return nil, ErrInvalidEnvelope
	}
	return &e, nil
}

// DeriveKey stretches a password into a 32-byte AES key using
// PBKDF2-SHA256. Deterministic: the same password yields the same key on
// every call.
func DeriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), kdfSalt, KDFIterations, KeySize, sha256.New)
}

// Encrypt performs authenticated encryption of plaintext under a key derived
// from password. A fresh random nonce is generated per call.
func Encrypt(plaintext, password string) (*Envelope, error) {
	key := DeriveKey(password)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return &Envelope{
		IV:   base64.StdEncoding.EncodeToString(nonce),
		Data: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// Decrypt reverses Encrypt using the envelope's own nonce. It returns
// ErrDecryptionFailed when the password is wrong, the data was tampered
// with, or the envelope is malformed.
func Decrypt(env *Envelope, password string) (string, error) {
	nonce, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(nonce) != NonceSize || len(ciphertext) < TagSize {
		return "", ErrDecryptionFailed
	}

	key := DeriveKey(password)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create GCM: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// HashPassword returns the lowercase hex SHA-256 digest of a password. It is
// used only for login verification, never for deriving encryption keys;
// DeriveKey is the deliberately slow counterpart.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a candidate password against a stored digest in
// constant time.
func VerifyPassword(password, storedHash string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
