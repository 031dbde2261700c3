package tui

import (
	"fmt"

	"github.com/pkg/errors"
	"max.ks1230/yachtfleet/internal/model/customerr"
)

const (
	msgRequiredFields = "Kérlek töltsd ki a kötelező mezőket (Yacht Name, Date, Amount)!"
	msgBadDate        = "A dátum formátuma nem megfelelő! (yyyy-MM-dd)"
	msgBadAmount      = "Az összegnek pozitív számnak kell lennie."
	msgCreateFailed   = "Hiba a fájl létrehozásakor: %v"
	msgSaveFailed     = "Hiba a fájl mentésekor: %v"
	msgLoadFailed     = "Hiba az adatok betöltésekor: %v"
)

// loadedMsg reports the end of the initial load.
type loadedMsg struct {
	err error
}

// userMessage turns an error from the expense service into the text shown in
// the error dialog.
func userMessage(err error) string {
	switch {
	case errors.Is(err, customerr.ErrEmptyRequiredField):
		return msgRequiredFields
	case errors.Is(err, customerr.ErrInvalidDateFormat):
		return msgBadDate
	case errors.Is(err, customerr.ErrInvalidAmount):
		return msgBadAmount
	}

	var fileErr *customerr.FileError
	if errors.As(err, &fileErr) {
		switch fileErr.Op {
		case customerr.OpCreate:
			return fmt.Sprintf(msgCreateFailed, fileErr.Err)
		case customerr.OpWrite:
			return fmt.Sprintf(msgSaveFailed, fileErr.Err)
		}
	}
	return fmt.Sprintf(msgLoadFailed, errors.Cause(err))
}
