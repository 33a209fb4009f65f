package menu

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".yaml": true,
	".yml":  true,
}

var (
	ErrEmptyMenu = errors.New("menu has no days")
)

func ValidateFileExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}

// ValidateDays checks a catalog definition before it is served.
// Item IDs must be stable across dates: the same ID may appear on
// several days but must describe the same dish every time.
func ValidateDays(days []Day) error {
	if len(days) == 0 {
		return ErrEmptyMenu
	}

	seenKeys := make(map[string]bool, len(days))
	seenItems := make(map[int]Item)

	for _, d := range days {
		if strings.TrimSpace(d.Key) == "" {
			return errors.New("day key is required")
		}
		if seenKeys[d.Key] {
			return fmt.Errorf("duplicate day %q", d.Key)
		}
		seenKeys[d.Key] = true

		onDay := make(map[int]bool, len(d.Items))
		for _, item := range d.Items {
			if item.Price < 0 {
				return fmt.Errorf("item %d on %q has a negative price", item.ID, d.Key)
			}
			if onDay[item.ID] {
				return fmt.Errorf("item %d listed twice on %q", item.ID, d.Key)
			}
			onDay[item.ID] = true

			if prev, ok := seenItems[item.ID]; ok && prev != item {
				return fmt.Errorf("item %d differs between days", item.ID)
			}
			seenItems[item.ID] = item
		}
	}

	return nil
}
