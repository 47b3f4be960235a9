package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage/postgres/utils"
)

const (
	loadDevicesQuery = `SELECT site_name, device_name, host, port, username, password
			  FROM devices ORDER BY id`

	upsertDeviceQuery = `INSERT INTO devices (site_name, device_name, host, port, username, password)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (host, port) DO UPDATE
			  SET site_name = EXCLUDED.site_name,
			      device_name = EXCLUDED.device_name,
			      username = EXCLUDED.username,
			      password = EXCLUDED.password,
			      updated_at = NOW()`
)

// PgStorage Список устройств в PostgreSQL. Пароли устройств хранятся зашифрованными AES-256-GCM.
type PgStorage struct {
	DB  *sql.DB
	key []byte
}

// NewPgStorage Конструктор поверх открытого соединения.
func NewPgStorage(db *sql.DB, key []byte) *PgStorage {
	return &PgStorage{DB: db, key: key}
}

// InitStorage Инициализация хранилища.
func InitStorage(DatabaseURI, secretKey string) (*PgStorage, error) {
	key, err := utils.DeriveKey(secretKey)
	if err != nil {
		return nil, err
	}

	// открываем соединение с БД
	pg, err := sql.Open("pgx", DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подключения к БД PostgreSQL", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка подключения к БД PostgreSQL: %w", err)
	}

	// проверяем, "живое" ли соединение
	if err = pg.Ping(); err != nil {
		logger.Log.Error("Ошибка при попытке подключения к БД PostgreSQL", logger.String("err", err.Error()))
		_ = pg.Close()
		return nil, fmt.Errorf("нет связи с БД PostgreSQL: %w", err)
	}

	// применяем миграции
	err = utils.ApplyMigrations(DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка применения миграций к БД PostgreSQL", logger.String("err", err.Error()))
		_ = pg.Close()
		return nil, fmt.Errorf("ошибка применения миграций к БД PostgreSQL: %w", err)
	}

	logger.Log.Info("Список устройств хранится в БД PostgreSQL")
	return NewPgStorage(pg, key), nil
}

// LoadDevices Возвращает все устройства в порядке добавления.
func (pg *PgStorage) LoadDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := pg.DB.QueryContext(ctx, loadDevicesQuery)
	if err != nil {
		logger.Log.Error("Ошибка при получении списка устройств", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при получении списка устройств: %w", err)
	}
	defer rows.Close()

	var devices []*models.Device

	for rows.Next() {
		var (
			site, name, host, port, username, encrypted string
		)

		if err = rows.Scan(&site, &name, &host, &port, &username, &encrypted); err != nil {
			return nil, fmt.Errorf("ошибка чтения строки списка устройств: %w", err)
		}

		password := ""
		if encrypted != "" {
			password, err = utils.DecryptAES(encrypted, pg.key, passwordAAD(host, port))
			if err != nil {
				// изменился SECRET_KEY или пароль перенесён из другой строки
				return nil, fmt.Errorf("ошибка расшифровки пароля устройства %s:%s: %w", host, port, err)
			}
		}

		devices = append(devices, models.NewDevice(site, name, host, port, username, password))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при получении списка устройств: %w", err)
	}

	return devices, nil
}

// AddDevices Добавляет или обновляет устройства (ключ - адрес и порт). Возвращает число записанных.
func (pg *PgStorage) AddDevices(ctx context.Context, devices []*models.Device) (int, error) {
	tx, err := pg.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, upsertDeviceQuery)
	if err != nil {
		return 0, fmt.Errorf("ошибка подготовки запроса: %w", err)
	}
	defer stmt.Close()

	for _, d := range devices {
		encrypted := ""
		if d.Password != "" {
			encrypted, err = utils.EncryptAES([]byte(d.Password), pg.key, passwordAAD(d.Host, d.Port))
			if err != nil {
				return 0, fmt.Errorf("ошибка шифрования пароля устройства %s: %w", d.About(false), err)
			}
		}

		if _, err = stmt.ExecContext(ctx, d.SiteName, d.DeviceName, d.Host, d.Port, d.Username, encrypted); err != nil {
			return 0, fmt.Errorf("ошибка записи устройства %s: %w", d.About(false), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return len(devices), nil
}

// Ping Проверяет соединение с БД.
func (pg *PgStorage) Ping(ctx context.Context) error {
	return pg.DB.PingContext(ctx)
}

// Close Закрывает соединение с БД.
func (pg *PgStorage) Close() error {
	return pg.DB.Close()
}

// passwordAAD Дополнительные данные шифрования пароля: адрес устройства (ключ таблицы).
func passwordAAD(host, port string) []byte {
	return []byte(net.JoinHostPort(host, port))
}
