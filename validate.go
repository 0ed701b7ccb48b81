package vibe

import "fmt"

// Validate checks that the catalog can back the track views: at least one
// track, every track with a unique non-empty ID and a title.
func (c Catalog) Validate() error {
	if len(c.tracks) == 0 {
		return fmt.Errorf("catalog has no tracks: %w", ErrValidation)
	}
	seen := make(map[string]struct{}, len(c.tracks))
	for i, t := range c.tracks {
		if t.ID == "" {
			return fmt.Errorf("track %d: empty id: %w", i, ErrValidation)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("track %d: duplicate id %q: %w", i, t.ID, ErrValidation)
		}
		seen[t.ID] = struct{}{}
		if t.Title == "" {
			return fmt.Errorf("track %q: empty title: %w", t.ID, ErrValidation)
		}
	}
	return nil
}

// Validate checks that a ChatConfig can be sent to a provider.
func (c ChatConfig) Validate() error {
	if c.SystemInstruction == "" {
		return fmt.Errorf("system instruction must not be empty: %w", ErrValidation)
	}
	return nil
}
