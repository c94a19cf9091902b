package compat

import "fmt"

var messages = map[string]string{
	"SWT_Yes":               "Yes",
	"SWT_No":                "No",
	"SWT_OK":                "OK",
	"SWT_Cancel":            "Cancel",
	"SWT_Abort":             "Abort",
	"SWT_Retry":             "Retry",
	"SWT_Ignore":            "Ignore",
	"SWT_Sample":            "Sample",
	"SWT_A_Sample_Text":     "A Sample Text",
	"SWT_Selection":         "Selection",
	"SWT_Current_Selection": "Current Selection",
	"SWT_Character_set":     "Character set",
	"SWT_Font":              "Font",
	"SWT_Extended_style":    "Extended style",
	"SWT_Size":              "Size",
	"SWT_Style":             "Style",
}

// Message returns the user interface string for key, or key itself when it is unknown. It returns ErrNullArgument
// for an empty key.
func Message(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("compat: %w: message key", ErrNullArgument)
	}
	if msg, ok := messages[key]; ok {
		return msg, nil
	}
	return key, nil
}
