package interpreters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// TestClassify Проверяет определение VMS по встроенной таблице.
func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.VMSType
	}{
		{
			name: "ACS Edge",
			body: "root.RemoteService.ServerList.S0.Host=dispatcher.AXIS.com\n",
			want: models.VMSACSEdge,
		},
		{
			name: "YourSix",
			body: "root.RemoteService.ServerList.S0.Host=cloud.yoursix.com\n",
			want: models.VMSYourSix,
		},
		{
			name: "первое правило побеждает",
			body: "S0=cloud.yoursix.com\nS1=axis.com\n",
			want: models.VMSACSEdge,
		},
		{
			name: "нет совпадений",
			body: "root.RemoteService.ServerList.S0.Host=\n",
			want: models.VMSUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultVMSRules().Classify(tt.body))
		})
	}
}

// TestLoadVMSRules Проверяет загрузку таблицы правил из файла.
func TestLoadVMSRules(t *testing.T) {
	dir := t.TempDir()

	t.Run("корректный файл", func(t *testing.T) {
		path := filepath.Join(dir, "rules.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"token":"yoursix.com","vms":"YourSix"},{"token":"axis.com","vms":"acsedge"}]`), 0o600))

		rules, err := LoadVMSRules(path)

		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, models.VMSYourSix, rules.Classify("yoursix.com axis.com"))
	})

	t.Run("неизвестная VMS", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"token":"milestone.com","vms":"Milestone"}]`), 0o600))

		_, err := LoadVMSRules(path)
		assert.Error(t, err)
	})

	t.Run("пустой признак", func(t *testing.T) {
		path := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"token":" ","vms":"YourSix"}]`), 0o600))

		_, err := LoadVMSRules(path)
		assert.Error(t, err)
	})

	t.Run("нет файла", func(t *testing.T) {
		_, err := LoadVMSRules(filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})
}
