package interpreters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

func recordingList(statuses ...string) string {
	body := `<?xml version="1.0"?><root><recordings totalnumberofrecordings="1" numberofrecordings="1">`
	for _, s := range statuses {
		body += `<recording diskid="SD_DISK" recordingid="20240101_000000_ABCD" recordingstatus="` + s + `"/>`
	}

	return body + `</recordings></root>`
}

// TestParseRecordingList Проверяет определение активной записи.
func TestParseRecordingList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "идёт запись", body: recordingList("paused", "recording"), want: true},
		{name: "регистр не важен", body: recordingList("Recording"), want: true},
		{name: "нет активных", body: recordingList("paused", "idle"), want: false},
		{name: "нет записей", body: recordingList(), want: false},
		{name: "атрибут на другом элементе", body: `<root><track recordingstatus="recording"/></root>`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecordingList(tt.body)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestParseRecordingListMalformed Проверяет ответы, не являющиеся XML.
func TestParseRecordingListMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "текст", body: "Error: no such recording"},
		{name: "незакрытый элемент", body: "<root><recordings>"},
		{name: "текст перед элементом", body: "Unauthorized <html/>"},
		{name: "текст после элемента", body: "<root/>trailing garbage"},
		{name: "несколько корневых элементов", body: "<a/><b/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecordingList(tt.body)

			require.Error(t, err)
			assert.False(t, got)
			assert.Equal(t, errs.KindProtocol, errs.Kind(err))
		})
	}
}
