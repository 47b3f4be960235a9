package interpreters

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/trsv-dev/camera-recording-monitor/internal/models"
)

// VMSRule Признак VMS в списке удалённых серверов устройства.
type VMSRule struct {
	Token string         `json:"token"`
	VMS   models.VMSType `json:"vms"`
}

// VMSRules Упорядоченная таблица правил. Побеждает первое совпадение.
type VMSRules []VMSRule

// DefaultVMSRules Встроенная таблица правил.
func DefaultVMSRules() VMSRules {
	return VMSRules{
		{Token: "axis.com", VMS: models.VMSACSEdge},
		{Token: "yoursix.com", VMS: models.VMSYourSix},
	}
}

// Classify Определяет VMS по тексту ответа param.cgi без учёта регистра.
func (r VMSRules) Classify(body string) models.VMSType {
	lower := strings.ToLower(body)

	for _, rule := range r {
		if rule.Token == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(rule.Token)) {
			return rule.VMS
		}
	}

	return models.VMSUnknown
}

// LoadVMSRules Читает таблицу правил из JSON файла вида [{"token": "axis.com", "vms": "ACSEdge"}].
func LoadVMSRules(path string) (VMSRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения правил VMS %s: %w", path, err)
	}

	var rules VMSRules
	if err = json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("ошибка разбора правил VMS %s: %w", path, err)
	}

	if len(rules) == 0 {
		return nil, errors.New("таблица правил VMS пуста")
	}

	for i, rule := range rules {
		if strings.TrimSpace(rule.Token) == "" {
			return nil, fmt.Errorf("правило VMS %d: пустой признак", i)
		}
	}

	return rules, nil
}
