package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/camera-recording-monitor/internal/logger"
	"github.com/trsv-dev/camera-recording-monitor/internal/models"
	"github.com/trsv-dev/camera-recording-monitor/internal/storage/postgres/utils"
)

// init Инициализирует logger для тестов.
func init() {
	logger.InitLogger("error", "stdout")
}

func testKey(t *testing.T) []byte {
	t.Helper()

	key, err := utils.DeriveKey("test-secret")
	require.NoError(t, err)

	return key
}

// decryptsTo Проверяет, что аргумент запроса - зашифрованный пароль.
type decryptsTo struct {
	key  []byte
	aad  []byte
	want string
}

func (d decryptsTo) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	plain, err := utils.DecryptAES(s, d.key, d.aad)
	return err == nil && plain == d.want
}

var deviceColumns = []string{"site_name", "device_name", "host", "port", "username", "password"}

// TestLoadDevices Проверяет чтение и расшифровку списка устройств.
func TestLoadDevices(t *testing.T) {
	key := testKey(t)

	encrypted, err := utils.EncryptAES([]byte("s3cret"), key, passwordAAD("10.0.0.1", "80"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		mockSetup   func(mock sqlmock.Sqlmock)
		expectError bool
		validate    func(t *testing.T, devices []*models.Device)
	}{
		{
			name: "успешное чтение",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(loadDevicesQuery)).
					WillReturnRows(sqlmock.NewRows(deviceColumns).
						AddRow("HQ", "Lobby", "10.0.0.1", "80", "root", encrypted).
						AddRow("HQ", "Public", "10.0.0.2", "80", "anonymous", ""))
			},
			validate: func(t *testing.T, devices []*models.Device) {
				require.Len(t, devices, 2)
				assert.Equal(t, models.NewDevice("HQ", "Lobby", "10.0.0.1", "80", "root", "s3cret"), devices[0])
				assert.Empty(t, devices[1].Password)
			},
		},
		{
			name: "пустая таблица",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(loadDevicesQuery)).
					WillReturnRows(sqlmock.NewRows(deviceColumns))
			},
			validate: func(t *testing.T, devices []*models.Device) {
				assert.Empty(t, devices)
			},
		},
		{
			name: "ошибка запроса",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(loadDevicesQuery)).
					WillReturnError(errors.New("connection reset"))
			},
			expectError: true,
		},
		{
			name: "пароль зашифрован другим ключом",
			mockSetup: func(mock sqlmock.Sqlmock) {
				other, _ := utils.DeriveKey("another-secret")
				foreign, _ := utils.EncryptAES([]byte("s3cret"), other, passwordAAD("10.0.0.1", "80"))

				mock.ExpectQuery(regexp.QuoteMeta(loadDevicesQuery)).
					WillReturnRows(sqlmock.NewRows(deviceColumns).
						AddRow("HQ", "Lobby", "10.0.0.1", "80", "root", foreign))
			},
			expectError: true,
		},
		{
			name: "пароль перенесён из строки другого устройства",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(loadDevicesQuery)).
					WillReturnRows(sqlmock.NewRows(deviceColumns).
						AddRow("HQ", "Dock", "10.0.0.9", "80", "root", encrypted))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mockSetup(mock)

			devices, err := NewPgStorage(db, key).LoadDevices(context.Background())

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				tt.validate(t, devices)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// TestAddDevices Проверяет импорт устройств с шифрованием паролей.
func TestAddDevices(t *testing.T) {
	key := testKey(t)

	devices := []*models.Device{
		models.NewDevice("HQ", "Lobby", "10.0.0.1", "80", "root", "s3cret"),
		models.NewDevice("HQ", "Public", "10.0.0.2", "80", "anonymous", ""),
	}

	t.Run("успешный импорт", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(regexp.QuoteMeta(upsertDeviceQuery))
		prep.ExpectExec().
			WithArgs("HQ", "Lobby", "10.0.0.1", "80", "root", decryptsTo{key: key, aad: []byte("10.0.0.1:80"), want: "s3cret"}).
			WillReturnResult(sqlmock.NewResult(1, 1))
		prep.ExpectExec().
			WithArgs("HQ", "Public", "10.0.0.2", "80", "anonymous", "").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		n, err := NewPgStorage(db, key).AddDevices(context.Background(), devices)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка записи откатывает транзакцию", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		prep := mock.ExpectPrepare(regexp.QuoteMeta(upsertDeviceQuery))
		prep.ExpectExec().WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		n, err := NewPgStorage(db, key).AddDevices(context.Background(), devices)

		require.Error(t, err)
		assert.Zero(t, n)
		assert.NotContains(t, err.Error(), "s3cret")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestPing Проверяет проверку соединения.
func TestPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("down"))

	pg := NewPgStorage(db, testKey(t))

	assert.NoError(t, pg.Ping(context.Background()))
	assert.Error(t, pg.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
