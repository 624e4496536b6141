package app

import (
	"github.com/vk/pybundle/collectors/datascan"
	"github.com/vk/pybundle/collectors/extscan"
	"github.com/vk/pybundle/collectors/sourcescan"
	"github.com/vk/pybundle/internal/registry"
)

// coreCollectors is the definitive list of collector modules compiled into
// the pybundle binary.
var coreCollectors = []registry.Module{
	&sourcescan.Module{},
	&datascan.Module{},
	&extscan.Module{},
}
