package basesets

import (
	"time"

	"basemedia/core/baseset"
	"basemedia/feature/basesets/store"
)

// SetView is the API representation of a set.
type SetView struct {
	// Index is the position among the visible sets, -1 when not visible.
	Index       int    `json:"index"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	ShortID     uint32 `json:"short_id"`
	Version     int    `json:"version"`
	Description string `json:"description"`
	Fallback    bool   `json:"fallback"`
	Files       int    `json:"files"`
	ValidFiles  int    `json:"valid_files"`
	FoundFiles  int    `json:"found_files"`
	Missing     int    `json:"missing"`
	Corrupt     int    `json:"corrupt"`
	State       string `json:"state"`
	Active      bool   `json:"active"`
	Digest      string `json:"md5"`
}

func newView(reg *baseset.Registry, set *baseset.Set, state, lang string) SetView {
	missing := set.NumMissing()
	return SetView{
		Index:       -1,
		Name:        set.Name,
		ShortName:   set.ShortName,
		ShortID:     set.ShortID,
		Version:     set.Version,
		Description: set.Description(lang),
		Fallback:    set.Fallback,
		Files:       set.NumFiles(),
		ValidFiles:  set.ValidFiles,
		FoundFiles:  set.FoundFiles,
		Missing:     missing,
		Corrupt:     set.NumInvalid() - missing,
		State:       state,
		Active:      reg.Active() == set,
		Digest:      set.Digest().String(),
	}
}

// Views returns the visible sets of reg in list order. With all set, the
// remaining accepted sets and every superseded set follow.
func Views(reg *baseset.Registry, lang string, all bool) []SetView {
	visible := reg.Visible()
	views := make([]SetView, 0, len(visible))
	for i, set := range visible {
		v := newView(reg, set, store.StateAccepted, lang)
		v.Index = i
		views = append(views, v)
	}
	if !all {
		return views
	}

	shown := make(map[baseset.SetID]bool, len(visible))
	for _, set := range visible {
		shown[set.ID()] = true
	}
	for _, set := range reg.Accepted() {
		if !shown[set.ID()] {
			views = append(views, newView(reg, set, store.StateAccepted, lang))
		}
	}
	for _, set := range reg.Superseded() {
		views = append(views, newView(reg, set, store.StateSuperseded, lang))
	}
	return views
}

// Records converts the accepted and superseded sets of reg into store rows.
func Records(reg *baseset.Registry, scannedAt time.Time) []store.SetRecord {
	var records []store.SetRecord
	add := func(set *baseset.Set, state string) {
		records = append(records, store.SetRecord{
			Kind:       reg.Kind().Name,
			Name:       set.Name,
			ShortName:  set.ShortName,
			Version:    set.Version,
			TotalFiles: set.NumFiles(),
			ValidFiles: set.ValidFiles,
			FoundFiles: set.FoundFiles,
			State:      state,
			Active:     reg.Active() == set,
			ScannedAt:  scannedAt,
		})
	}
	for _, set := range reg.Accepted() {
		add(set, store.StateAccepted)
	}
	for _, set := range reg.Superseded() {
		add(set, store.StateSuperseded)
	}
	return records
}
