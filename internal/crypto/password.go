package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMismatch пароль не соответствует хешу
var ErrMismatch = errors.New("password does not match")

// Params параметры Argon2id
type Params struct {
	Time    uint32 // количество итераций (time cost)
	Memory  uint32 // объем памяти в KB
	Threads uint8  // количество параллельных потоков
	KeyLen  uint32 // длина выходного ключа в байтах
	SaltLen uint32 // размер соли в байтах
}

// DefaultParams параметры для устройства пользователя
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// Hasher хеширует пароли с секретом устройства.
// Секрет подмешивается к паролю, поэтому хеш бесполезен вне устройства.
type Hasher struct {
	secret []byte
	params Params
}

// NewHasher создает Hasher с секретом устройства
func NewHasher(secret string, params Params) *Hasher {
	return &Hasher{secret: []byte(secret), params: params}
}

// GenerateSalt генерирует криптографически случайную соль указанного размера
func GenerateSalt(size uint32) ([]byte, error) {
	salt := make([]byte, size)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// Hash возвращает хеш в формате $argon2id$v=19$m=..,t=..,p=..$salt$key
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	salt, err := GenerateSalt(h.params.SaltLen)
	if err != nil {
		return "", err
	}

	key := h.derive(password, salt, h.params)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify проверяет пароль против хеша за постоянное время.
// Параметры берутся из самого хеша, а не из Hasher.
func (h *Hasher) Verify(password, encoded string) error {
	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return err
	}

	computed := h.derive(password, salt, params)
	if subtle.ConstantTimeCompare(computed, key) != 1 {
		return ErrMismatch
	}
	return nil
}

// derive вычисляет ключ из пароля и секрета устройства
func (h *Hasher) derive(password string, salt []byte, p Params) []byte {
	input := make([]byte, 0, len(password)+len(h.secret))
	input = append(input, password...)
	input = append(input, h.secret...)
	return argon2.IDKey(input, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

func decodeHash(encoded string) (Params, []byte, []byte, error) {
	var p Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return p, nil, nil, fmt.Errorf("invalid hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return p, nil, nil, fmt.Errorf("invalid hash version: %w", err)
	}
	if version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("invalid hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("invalid hash salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("invalid hash key: %w", err)
	}

	p.SaltLen = uint32(len(salt))
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}

// RandomToken возвращает base64url строку из n случайных байт
func RandomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
