package interpreters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChrisTrenkamp/goxpath"
	"github.com/ChrisTrenkamp/goxpath/tree/xmltree"

	"github.com/trsv-dev/camera-recording-monitor/internal/errs"
)

const recordingListEndpoint = "record/list"

var (
	rootElementXPath     = goxpath.MustParse("/*")
	rootTextXPath        = goxpath.MustParse("/text()")
	recordingStatusXPath = goxpath.MustParse("//recording/@recordingstatus")
)

// ParseRecordingList Разбирает ответ record/list.cgi. Камера пишет, если хотя бы одна
// запись находится в состоянии recording.
func ParseRecordingList(body string) (bool, error) {
	doc, err := xmltree.ParseXML(strings.NewReader(body))
	if err != nil {
		return false, errs.NewErrMalformedResponse(recordingListEndpoint, err)
	}

	roots, err := rootElementXPath.ExecNode(doc)
	if err != nil {
		return false, errs.NewErrMalformedResponse(recordingListEndpoint, err)
	}
	if len(roots) != 1 {
		return false, errs.NewErrMalformedResponse(recordingListEndpoint,
			fmt.Errorf("ожидается один корневой элемент, получено %d", len(roots)))
	}

	// текст вне корневого элемента: html-страница ошибки или обрезанный ответ
	texts, err := rootTextXPath.ExecNode(doc)
	if err != nil {
		return false, errs.NewErrMalformedResponse(recordingListEndpoint, err)
	}
	for _, text := range texts {
		if strings.TrimSpace(text.ResValue()) != "" {
			return false, errs.NewErrMalformedResponse(recordingListEndpoint, errors.New("текст вне корневого элемента"))
		}
	}

	statuses, err := recordingStatusXPath.ExecNode(doc)
	if err != nil {
		return false, errs.NewErrMalformedResponse(recordingListEndpoint, err)
	}

	for _, status := range statuses {
		if strings.EqualFold(strings.TrimSpace(status.ResValue()), "recording") {
			return true, nil
		}
	}

	return false, nil
}
