package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/crypto/hkdf"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/migrations"
)

// keySize Длина ключа AES-256.
const keySize = 32

var keyInfo = []byte("camera-recording-monitor/devices/password")

// ApplyMigrations Применяет встроенные миграции таблицы устройств.
func ApplyMigrations(DatabaseURI string) error {
	d, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("ошибка чтения встроенных миграций: %w", err)
	}

	// мигратор работает через отдельное соединение драйвера postgres
	m, err := migrate.NewWithSourceInstance("iofs", d, DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подготовки миграций", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка подготовки миграций: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Log.Warn("Ошибка закрытия источника миграций", logger.String("err", srcErr.Error()))
		}
		if dbErr != nil {
			logger.Log.Warn("Ошибка закрытия соединения мигратора", logger.String("err", dbErr.Error()))
		}
	}()

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Debug("Схема таблицы устройств актуальна")
			return nil
		}
		return fmt.Errorf("ошибка применения миграции: %w", err)
	}

	version, dirty, verErr := m.Version()
	if verErr == nil {
		logger.Log.Info("Миграции применены", logger.Int("version", int(version)), logger.Bool("dirty", dirty))
	}
	return nil
}

// DeriveKey Получает ключ AES-256 из секрета конфигурации (HKDF-SHA256).
func DeriveKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("секрет для шифрования учётных данных не задан")
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, keyInfo), key); err != nil {
		return nil, fmt.Errorf("получение ключа: %w", err)
	}

	return key, nil
}

// newGCM AES-256-GCM для ключа из DeriveKey.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("создание AES блока: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("создание GCM режима: %w", err)
	}

	return aesGCM, nil
}

// EncryptAES шифрует пароль устройства AES-256-GCM и возвращает base64 строку nonce+ciphertext.
// aad привязывает шифртекст к записи: пароль, перенесённый в чужую строку, не расшифруется.
func EncryptAES(plaintext, key, aad []byte) (string, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("генерация nonce: %w", err)
	}

	return base64.StdEncoding.EncodeToString(aesGCM.Seal(nonce, nonce, plaintext, aad)), nil
}

// DecryptAES Обратная операция к EncryptAES с тем же aad.
func DecryptAES(encryptedText string, key, aad []byte) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encryptedText)
	if err != nil {
		return "", fmt.Errorf("декодирование base64: %w", err)
	}

	aesGCM, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonceSize := aesGCM.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("шифртекст короче nonce")
	}

	plaintext, err := aesGCM.Open(nil, data[:nonceSize], data[nonceSize:], aad)
	if err != nil {
		return "", fmt.Errorf("расшифровка не удалась: %w", err)
	}

	return string(plaintext), nil
}
