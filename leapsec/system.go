package leapsec

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed leapseconds.txt
var systemTable []byte

var (
	systemOnce  sync.Once
	systemRules *Rules
)

// System returns the process wide rules, loaded from the bundled table on
// first use. Leap seconds registered on them are seen by every caller.
// System panics if the bundled table is malformed.
func System() *Rules {
	systemOnce.Do(func() {
		r, err := Load("System", bytes.NewReader(systemTable))
		if err != nil {
			panic(err)
		}
		systemRules = r
	})
	return systemRules
}
