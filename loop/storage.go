package loop

import (
	"reflect"
	"unsafe"
)

// Storage holds the singleton components shared by the systems of a
// scheduler. Each component type has at most one instance.
type Storage struct {
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// AddSingleton stores a copy of component, replacing any existing instance
// of the same type. Pointers handed out for the old instance go stale.
func (s *Storage) AddSingleton(component any) {
	if component == nil {
		panic("cannot add nil singleton")
	}
	componentType := reflect.TypeOf(component)
	value := reflect.New(componentType)
	value.Elem().Set(reflect.ValueOf(component))

	s.singletons[componentType] = &singletonEntry{
		dataPtr: value.UnsafePointer(),
	}
}

func (s *Storage) getSingletonEntry(componentType reflect.Type) *singletonEntry {
	return s.singletons[componentType]
}
