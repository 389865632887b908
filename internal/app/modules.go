package app

import (
	"github.com/vk/seedgridgo/internal/registry"
	"github.com/vk/seedgridgo/internal/seedtrack"
	"github.com/vk/seedgridgo/modules/seedselect"
)

// coreModules is the definitive list of node modules compiled into the
// binary, all sharing the process-wide seed tracker.
func coreModules(tracker *seedtrack.Tracker) []registry.Module {
	return []registry.Module{
		seedselect.NewModule(tracker),
	}
}
