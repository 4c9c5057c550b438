package errors

import (
	"fmt"

	"github.com/okay-you-very-pro/oyvp/internal/settings"
)

// LoadNotice describes a load that had to discard an unusable settings file.
// A clean load or a first run needs no notice.
func LoadNotice(result settings.LoadResult) (Notice, bool) {
	if result.Outcome != settings.DefaultedOnError {
		return Notice{}, false
	}
	return Notice{
		Type: MessageTypeWarning,
		Text: fmt.Sprintf("settings at %s could not be read, using defaults: %v", result.Path, result.Err),
	}, true
}

// SaveNotice describes a save that did not reach the disk.
func SaveNotice(result settings.SaveResult) (Notice, bool) {
	if result.OK() {
		return Notice{}, false
	}
	return Notice{
		Type: MessageTypeError,
		Text: fmt.Sprintf("could not save settings to %s: %v", result.Path, result.Err),
	}, true
}

// ReportLoad delivers the notice for result, if any, and reports whether it did.
func ReportLoad(h ErrorHandler, result settings.LoadResult) bool {
	n, ok := LoadNotice(result)
	if ok {
		Deliver(h, n)
	}
	return ok
}

// ReportSave delivers the notice for result, if any, and reports whether it did.
func ReportSave(h ErrorHandler, result settings.SaveResult) bool {
	n, ok := SaveNotice(result)
	if ok {
		Deliver(h, n)
	}
	return ok
}
